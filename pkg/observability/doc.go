/*
Package observability turns machine lifecycle events into metrics and logs.

Machines report every confirmed transition, rejection and reset through
domain.LifecycleHooks. This package provides ready-made hook sets: Prometheus
counters (Metrics), structured logs (LoggingHooks), and Combine to attach
several of them to one machine.

	metrics, _ := observability.NewMetrics(prometheus.DefaultRegisterer)
	m := automata.NewMealy("tcp", automata.WithLifecycleHooks(
		observability.Combine(metrics.Hooks(), observability.LoggingHooks(logger)),
	))
*/
package observability
