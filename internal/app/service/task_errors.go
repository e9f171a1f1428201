package service

import (
	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/pkg/metrics"
	"bridge_sdk/internal/pkg/reactive"
)

// TaskErrorHandler is the failure policy for initializer and synchronizer runs:
// the error is logged and counted, nothing is retried, and the shared state keeps
// its last published value.
func TaskErrorHandler(logger port.Logger) reactive.ErrorHandler {
	return func(name string, err error) {
		metrics.TaskFailures.WithLabelValues(name).Inc()
		logger.Error("Background task failed", "task", name, "error", err)
	}
}
