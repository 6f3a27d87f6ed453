package command

import (
	"context"
	"log/slog"
)

// AsyncHandler executes commands for the async runtime: pure actions are
// buffered like the sync handler's, futures are collected and spawned as
// goroutines.
type AsyncHandler[M any] struct {
	core[M]
	futures   []Future[M]
	fallibles []FallibleFuture[M]
	log       *slog.Logger
}

// NewAsyncHandler creates an async handler reporting diagnostics to
// log. A nil log discards them.
func NewAsyncHandler[M any](log *slog.Logger) *AsyncHandler[M] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &AsyncHandler[M]{log: log}
}

// Execute runs pure actions immediately and queues futures for
// SpawnPending.
func (h *AsyncHandler[M]) Execute(cmd Command[M]) {
	for _, a := range cmd.actions {
		if h.executeSync(a) {
			continue
		}
		switch a.kind {
		case kindAsync:
			h.futures = append(h.futures, a.future)
		case kindAsyncFallible:
			h.fallibles = append(h.fallibles, a.fallible)
		}
	}
}

// HasPendingFutures reports whether any futures await spawning.
func (h *AsyncHandler[M]) HasPendingFutures() bool {
	return len(h.futures) > 0 || len(h.fallibles) > 0
}

// PendingFutureCount returns the number of futures awaiting spawning.
func (h *AsyncHandler[M]) PendingFutureCount() int {
	return len(h.futures) + len(h.fallibles)
}

// SpawnPending launches every queued future as a goroutine. Messages are
// delivered to msgs, failures of fallible futures to errs. Deliveries
// are abandoned once ctx is cancelled. When the error buffer is full the
// oldest pending error is evicted so the newest is never lost.
func (h *AsyncHandler[M]) SpawnPending(ctx context.Context, msgs chan<- M, errs chan error) {
	futures := h.futures
	fallibles := h.fallibles
	h.futures = nil
	h.fallibles = nil

	for _, fut := range futures {
		go func(fut Future[M]) {
			m, ok := fut(ctx)
			if !ok || ctx.Err() != nil {
				return
			}
			select {
			case msgs <- m:
			case <-ctx.Done():
			}
		}(fut)
	}

	for _, fut := range fallibles {
		go func(fut FallibleFuture[M]) {
			m, ok, err := fut(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				h.deliverError(ctx, errs, err)
				return
			}
			if ok {
				select {
				case msgs <- m:
				case <-ctx.Done():
				}
			}
		}(fut)
	}
}

func (h *AsyncHandler[M]) deliverError(ctx context.Context, errs chan error, err error) {
	for {
		select {
		case errs <- err:
			return
		case <-ctx.Done():
			return
		default:
		}
		select {
		case <-errs:
			h.log.Warn("error channel full, dropping oldest pending error")
		default:
		}
	}
}
