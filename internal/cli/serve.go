package cli

import (
	"context"

	httpAdapter "github.com/aretw0/automata/internal/adapters/http"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	Options
	Addr        string
	Definitions []string
	Metrics     bool
}

// Serve exposes the TCP machine and the given definitions over HTTP until
// ctx is cancelled.
func Serve(ctx context.Context, opts ServeOptions) error {
	o := opts.withDefaults()

	reg, err := BuildRegistry(opts.Definitions...)
	if err != nil {
		return err
	}

	handlerOpts := []httpAdapter.Option{httpAdapter.WithLogger(o.Logger)}
	hooks := observability.LoggingHooks(o.Logger)
	if opts.Metrics {
		promReg := prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(promReg)
		if err != nil {
			return err
		}
		hooks = observability.Combine(hooks, metrics.Hooks())
		handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(promReg))
	}
	handlerOpts = append(handlerOpts, httpAdapter.WithHooks(hooks))

	o.Logger.Info("serving machines", "machines", reg.Names(), "metrics", opts.Metrics)
	err = httpAdapter.ListenAndServe(ctx, opts.Addr, httpAdapter.NewHandler(reg, handlerOpts...), o.Logger)
	if sig := Interrupted(ctx); sig != nil {
		o.Logger.Info("server stopped", "signal", sig.String())
	}
	return err
}
