package observability

import (
	"log/slog"

	"github.com/aretw0/automata/pkg/domain"
)

// LoggingHooks logs transitions and resets at debug level and rejections as
// warnings.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(e *domain.TransitionEvent) {
			logger.Debug("transition",
				"machine", e.Machine,
				"from", e.FromName,
				"symbol", e.Symbol,
				"to", e.ToName,
				"fallback", e.Fallback,
			)
		},
		OnReject: func(e *domain.RejectEvent) {
			logger.Warn("transition rejected",
				"machine", e.Machine,
				"state", e.StateName,
				"symbol", e.Symbol,
				"err", e.Err,
			)
		},
		OnReset: func(e *domain.ResetEvent) {
			logger.Debug("reset", "machine", e.Machine, "state", e.InitialName)
		},
	}
}

// Combine fans every event out to each set of hooks in order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var combined domain.LifecycleHooks
	for _, h := range hooks {
		if h.OnTransition != nil {
			prev, next := combined.OnTransition, h.OnTransition
			combined.OnTransition = func(e *domain.TransitionEvent) {
				if prev != nil {
					prev(e)
				}
				next(e)
			}
		}
		if h.OnReject != nil {
			prev, next := combined.OnReject, h.OnReject
			combined.OnReject = func(e *domain.RejectEvent) {
				if prev != nil {
					prev(e)
				}
				next(e)
			}
		}
		if h.OnReset != nil {
			prev, next := combined.OnReset, h.OnReset
			combined.OnReset = func(e *domain.ResetEvent) {
				if prev != nil {
					prev(e)
				}
				next(e)
			}
		}
	}
	return combined
}
