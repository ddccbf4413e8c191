package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// InterruptError is the cancellation cause of a SignalContext.
type InterruptError struct {
	Signal os.Signal
}

func (e *InterruptError) Error() string {
	return "interrupted by " + e.Signal.String()
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM with an
// *InterruptError as its cause. The stop function releases the signal
// handler.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			cancel(&InterruptError{Signal: sig})
		case <-ctx.Done():
		}
	}()

	return ctx, func() { cancel(context.Canceled) }
}

// Interrupted returns the signal that cancelled ctx, or nil.
func Interrupted(ctx context.Context) os.Signal {
	var ie *InterruptError
	if errors.As(context.Cause(ctx), &ie) {
		return ie.Signal
	}
	return nil
}
