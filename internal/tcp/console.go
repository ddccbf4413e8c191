package tcp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/domain"
)

// sendEvent is tolerated silently while listening.
const sendEvent = "SEND"

// Console drives a Connection from one event per line.
type Console struct {
	conn    *Connection
	reader  *bufio.Reader
	writer  io.Writer
	palette *tui.Palette
	logger  *slog.Logger
	prompt  bool
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithPalette colors state names and errors.
func WithPalette(p *tui.Palette) ConsoleOption {
	return func(c *Console) { c.palette = p }
}

// WithPrompt prints "> " before each read. Use it when the input is a terminal.
func WithPrompt(enabled bool) ConsoleOption {
	return func(c *Console) { c.prompt = enabled }
}

// WithConsoleLogger sets the logger for rejected events.
func WithConsoleLogger(logger *slog.Logger) ConsoleOption {
	return func(c *Console) { c.logger = logger }
}

// NewConsole creates a console over conn.
func NewConsole(conn *Connection, r io.Reader, w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		conn:   conn,
		reader: bufio.NewReader(r),
		writer: w,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.palette == nil {
		c.palette = tui.NewPlainPalette(w)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Run processes events until EOF, a blank line or ctx is cancelled.
// Rejected events are reported and the loop continues. Cancellation does not
// wait for the pending read; a later Run picks up the line it returns.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.prompt && c.pending == nil {
			fmt.Fprint(c.writer, "> ")
		}

		line, err := c.readLine(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if line == "" || line == "\n" {
			return nil
		}

		event, serr := sanitizeEvent(line)
		if serr != nil {
			fmt.Fprintln(c.writer, c.palette.Error("Error: "+serr.Error()))
		} else {
			c.Handle(event)
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	if c.pending == nil {
		ch := make(chan readResult, 1)
		c.pending = ch
		go func() {
			line, err := c.reader.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-c.pending:
		c.pending = nil
		return r.line, r.err
	}
}

// Handle applies a single event and writes the report.
func (c *Console) Handle(event string) {
	if event == sendEvent && c.conn.StateName() == Listen {
		return
	}

	symbol := domain.Symbol(event)
	if !IsEvent(symbol) {
		fmt.Fprintln(c.writer, c.palette.Error("Error: unexpected Event: "+event))
		return
	}

	if err := c.conn.Transition(symbol); err != nil {
		c.logger.Warn("event rejected", "event", event, "state", c.conn.StateName(), "err", err)
		fmt.Fprintln(c.writer, c.palette.Error("FSMException: "+rejection(err)))
		return
	}

	if c.conn.StateName() == Established {
		switch symbol {
		case SData:
			fmt.Fprintf(c.writer, "DATA Sent count %d\n", c.conn.Sent)
		case RData:
			fmt.Fprintf(c.writer, "DATA Received count %d\n", c.conn.Received)
		}
	}
	fmt.Fprintf(c.writer, "event received is %s current state is %s\n", event, c.palette.State(c.conn.StateName()))
}

// rejection words a refused event the way the connection console always has.
func rejection(err error) string {
	var be *domain.BehavioralError
	if !errors.As(err, &be) {
		return err.Error()
	}
	if errors.Is(be, domain.ErrCursorUnset) {
		return "Current state is not set."
	}
	return fmt.Sprintf("Transition cant be happened from state %q on event %q", be.State, string(be.Symbol))
}
