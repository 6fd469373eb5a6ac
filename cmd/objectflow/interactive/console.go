// Package interactive provides the interactive command-line interface
// for objectflow.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/objectflow/objectflow-go/pkg/inspect"
	"github.com/objectflow/objectflow-go/pkg/log"
	"github.com/objectflow/objectflow-go/pkg/model"
)

// Engine is the part of the running simulation the console drives.
type Engine interface {
	// Do runs fn with exclusive access to the registry.
	Do(fn func())

	// Tick advances the clock n steps and returns the activations.
	Tick(n int) (int, error)

	// Now returns the current logical time.
	Now() model.Time
}

// Console handles interactive mode for objectflow.
type Console struct {
	engine    Engine
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	recorder  *log.Recorder
	rl        *readline.Instance
	closeOnce sync.Once
	closeErr  error
}

// New creates a console bound to a readline prompt.
func New(engine Engine, reg *model.Registry, recorder *log.Recorder) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "flow> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	c := NewConsole(engine, reg, recorder)
	c.rl = rl
	return c, nil
}

// NewConsole creates a console without a terminal. Commands are fed
// through Execute.
func NewConsole(engine Engine, reg *model.Registry, recorder *log.Recorder) *Console {
	return &Console{
		engine:    engine,
		inspector: inspect.NewInspector(reg),
		formatter: inspect.NewFormatter(),
		recorder:  recorder,
	}
}

// Stdout returns a writer that properly coordinates with the readline input.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Close releases the terminal. A Run blocked reading a line returns.
// Close is safe to call more than once and from another goroutine.
func (c *Console) Close() error {
	if c.rl == nil {
		return nil
	}
	c.closeOnce.Do(func() {
		c.closeErr = c.rl.Close()
	})
	return c.closeErr
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.Close()

	w := c.rl.Stdout()
	c.printHelp(w)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(w, "Exiting...")
			cancel()
			return
		}

		if !c.Execute(line, w) {
			fmt.Fprintln(w, "Exiting...")
			cancel()
			return
		}
	}
}

// Execute runs one command line, writing output to w. It returns false
// when the command asks to quit.
func (c *Console) Execute(line string, w io.Writer) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp(w)

	case "inspect", "show", "i":
		c.cmdInspect(w, args)

	case "read", "r":
		c.cmdRead(w, args)

	case "write", "w":
		c.cmdWrite(w, args)

	case "pull":
		c.cmdLink(w, args, "pull")

	case "push":
		c.cmdLink(w, args, "push")

	case "tick", "t":
		c.cmdTick(w, args)

	case "time":
		fmt.Fprintf(w, "Now: %d\n", c.engine.Now())

	case "trace":
		c.cmdTrace(w, args)

	case "quit", "exit", "q":
		return false

	default:
		fmt.Fprintf(w, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (c *Console) printHelp(w io.Writer) {
	fmt.Fprintln(w, `
ObjectFlow Commands:
  Inspection:
    inspect [path]      - Show all objects (or one object/resource)
    read <path>         - Read a resource value
    write <path> <val>  - Write a resource value (runs the object's hooks)

  Links:
    pull <object>       - Pull the object's input link
    push <object>       - Push the object's default value to its output links

  Time:
    tick [n]            - Advance the clock n steps (default 1)
    time                - Show the current logical time

  Trace:
    trace [n]           - Show the last n recorded events (default 20)
    trace clear         - Drop recorded events

  General:
    help                - Show this help
    quit                - Exit

  Path Format:
    type/instance[/resource[/instance]] - e.g., 43000/0/27002 or relay/0/inputValue`)
}

func parsePath(w io.Writer, arg string) (*inspect.Path, bool) {
	path, err := inspect.ParsePath(arg)
	if err != nil {
		fmt.Fprintf(w, "Invalid path: %v\n", err)
		return nil, false
	}
	return path, true
}

// cmdInspect handles the inspect command.
func (c *Console) cmdInspect(w io.Writer, args []string) {
	if len(args) == 0 {
		var out string
		c.engine.Do(func() {
			out = c.formatter.FormatTree(c.inspector.Tree())
		})
		fmt.Fprint(w, out)
		return
	}

	path, ok := parsePath(w, args[0])
	if !ok {
		return
	}

	if !path.IsPartial {
		c.cmdRead(w, args[:1])
		return
	}

	var (
		info *inspect.ObjectInfo
		err  error
	)
	c.engine.Do(func() {
		info, err = c.inspector.InspectObject(path)
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprint(w, c.formatter.FormatObject(info))
}

// cmdRead handles the read command.
func (c *Console) cmdRead(w io.Writer, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(w, "Usage: read <path>")
		fmt.Fprintln(w, "  Example: read relay/0/inputValue")
		return
	}

	path, ok := parsePath(w, args[0])
	if !ok {
		return
	}

	var (
		value model.Value
		err   error
	)
	c.engine.Do(func() {
		value, err = c.inspector.ReadValue(path)
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s = %s\n", path, c.formatter.FormatValue(value))
}

// cmdWrite handles the write command.
func (c *Console) cmdWrite(w io.Writer, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(w, "Usage: write <path> <value>")
		fmt.Fprintln(w, "  Example: write counter/0/currentValue 10")
		return
	}

	path, ok := parsePath(w, args[0])
	if !ok {
		return
	}

	text := strings.Join(args[1:], " ")
	var (
		value model.Value
		err   error
	)
	c.engine.Do(func() {
		value, err = c.inspector.WriteValue(path, text)
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s = %s\n", path, c.formatter.FormatValue(value))
}

// cmdLink handles the pull and push commands.
func (c *Console) cmdLink(w io.Writer, args []string, op string) {
	if len(args) < 1 {
		fmt.Fprintf(w, "Usage: %s <object>\n", op)
		return
	}

	path, ok := parsePath(w, args[0])
	if !ok {
		return
	}

	var err error
	c.engine.Do(func() {
		if op == "pull" {
			err = c.inspector.Pull(path)
		} else {
			err = c.inspector.Push(path)
		}
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s %d/%d done\n", op, path.ObjectType, path.ObjectInstance)
}

// cmdTick handles the tick command.
func (c *Console) cmdTick(w io.Writer, args []string) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			fmt.Fprintf(w, "Invalid tick count: %s\n", args[0])
			return
		}
		n = v
	}

	fired, err := c.engine.Tick(n)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	fmt.Fprintf(w, "Now: %d (%d activations)\n", c.engine.Now(), fired)
}

// cmdTrace handles the trace command.
func (c *Console) cmdTrace(w io.Writer, args []string) {
	if c.recorder == nil {
		fmt.Fprintln(w, "Tracing disabled")
		return
	}

	limit := 20
	if len(args) > 0 {
		if args[0] == "clear" {
			c.recorder.Reset()
			fmt.Fprintln(w, "Trace cleared")
			return
		}
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			fmt.Fprintf(w, "Invalid count: %s\n", args[0])
			return
		}
		limit = v
	}

	events := c.recorder.Events(log.Filter{})
	if len(events) > limit {
		events = events[len(events)-limit:]
	}
	if len(events) == 0 {
		fmt.Fprintln(w, "No events recorded")
		return
	}
	for _, e := range events {
		fmt.Fprintln(w, formatEvent(e))
	}
}

// formatEvent renders one trace event on a single line.
func formatEvent(e log.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %s", e.Category, e.Object)
	if e.Resource != nil {
		fmt.Fprintf(&b, " %s", e.Resource)
	}
	if e.Peer != nil {
		if e.Category == log.CategoryPull {
			fmt.Fprintf(&b, " <- %s", e.Peer)
		} else {
			fmt.Fprintf(&b, " -> %s", e.Peer)
		}
	}
	if e.Value != nil {
		fmt.Fprintf(&b, " = %s", e.Value.Text)
	}
	if e.Interval != nil {
		fmt.Fprintf(&b, " now=%d elapsed=%d", e.Interval.Now, e.Interval.Elapsed)
	}
	if e.Error != nil {
		fmt.Fprintf(&b, " error: %s", e.Error.Message)
	}
	return b.String()
}
