// loom-demo drives a small counter application through the headless
// runtime and prints what the terminal would show: scripted input goes
// in, rendered frames and a frame diff come out.
//
// Usage: loom-demo [--ansi] [--json] [--ticks n]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tuilab/loom/backend"
	"github.com/tuilab/loom/cell"
	"github.com/tuilab/loom/command"
	"github.com/tuilab/loom/config"
	"github.com/tuilab/loom/diag"
	"github.com/tuilab/loom/input"
	"github.com/tuilab/loom/runtime"
	"github.com/tuilab/loom/theme"
)

type demoState struct {
	count int
}

type demoApp struct {
	runtime.Base[demoState, string]
}

func (demoApp) Init() (demoState, command.Command[string]) {
	return demoState{}, command.None[string]()
}

func (demoApp) Update(s *demoState, m string) command.Command[string] {
	switch m {
	case "inc":
		s.count++
	case "dec":
		s.count--
	case "quit":
		return command.Quit[string]()
	}
	return command.None[string]()
}

func (demoApp) View(s *demoState, f *backend.Frame) {
	th := theme.Default()
	f.SetString(1, 0, "loom counter demo", th.FocusedBoldStyle())
	f.SetString(1, 2, fmt.Sprintf("count: %d", s.count), cell.Style{})
	f.SetString(1, 4, "keys: + - q", th.PlaceholderStyle())
}

func (demoApp) OnTick(s *demoState) (string, bool) {
	return "inc", true
}

func (demoApp) HandleEvent(s *demoState, ev input.Event) (string, bool) {
	if !ev.IsKey() {
		return "", false
	}
	switch ev.Key.Rune {
	case '+':
		return "inc", true
	case '-':
		return "dec", true
	case 'q':
		return "quit", true
	}
	return "", false
}

func main() {
	ansiOut := flag.Bool("ansi", false, "print frames with ANSI styling")
	jsonOut := flag.Bool("json", false, "print the final frame as JSON")
	ticks := flag.Int("ticks", 3, "number of ticks to run")
	debugMode := flag.Bool("debug", false, "log runtime diagnostics to stderr")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loom-demo: %v\n", err)
		os.Exit(1)
	}

	sink := diag.Discard()
	if *debugMode || cfg.Debug {
		sink = diag.Stderr(slog.LevelDebug)
	}

	rc := cfg.Runtime()
	rc.History = max(rc.History, *ticks+2)
	r, err := runtime.NewRuntimeWith[demoState, string](demoApp{}, 40, 6, rc, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loom-demo: %v\n", err)
		os.Exit(1)
	}

	display := r.Display
	if *ansiOut {
		display = r.DisplayANSI
	}

	fmt.Println("initial frame:")
	fmt.Println(display())

	for i := range *ticks {
		r.Tick()
		fmt.Printf("after tick %d:\n%s\n", i+1, display())
	}

	// scripted input: two decrements through the event queue
	r.Send(input.Char('-'))
	r.Send(input.Char('-'))
	r.Tick()
	fmt.Printf("after keys '--':\n%s\n", display())

	if hist := r.Capture().History(); len(hist) >= 2 {
		diff, err := r.Capture().DiffFrom(&hist[len(hist)-2])
		if err == nil {
			fmt.Println("last frame diff:")
			fmt.Println(diff.String())
		}
	}

	if *jsonOut {
		out, err := r.Capture().JSONPretty()
		if err != nil {
			fmt.Fprintf(os.Stderr, "loom-demo: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	}
}
