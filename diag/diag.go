// Package diag provides the structured diagnostic sinks used by the
// runtimes. Sinks are plain slog loggers so applications can route
// framework diagnostics anywhere slog can write.
package diag

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Discard returns a sink that drops everything. This is the default for
// both runtimes.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Stderr returns a text sink on standard error at the given level.
func Stderr(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Writer returns a text sink on an arbitrary writer.
func Writer(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Record is one captured diagnostic.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Recorder captures diagnostics for assertions in tests.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Logger returns a sink writing into the recorder.
func (r *Recorder) Logger() *slog.Logger {
	return slog.New(&recorderHandler{rec: r})
}

// Records returns a copy of everything captured so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Messages returns just the captured messages, in order.
func (r *Recorder) Messages() []string {
	records := r.Records()
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Message
	}
	return out
}

// CountContaining returns how many captured messages contain substr.
func (r *Recorder) CountContaining(substr string) int {
	n := 0
	for _, msg := range r.Messages() {
		if strings.Contains(msg, substr) {
			n++
		}
	}
	return n
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}

func (r *Recorder) append(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
}

type recorderHandler struct {
	rec   *Recorder
	attrs []slog.Attr
}

func (h *recorderHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *recorderHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]string)
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})
	h.rec.append(Record{Level: r.Level, Message: r.Message, Attrs: attrs})
	return nil
}

func (h *recorderHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &recorderHandler{rec: h.rec, attrs: merged}
}

func (h *recorderHandler) WithGroup(string) slog.Handler {
	return h
}
