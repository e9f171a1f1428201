package service

import (
	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/domain/entity"
)

// ResolveEnvironment validates both selectors. An invalid selector is logged and
// left unset; an empty one is simply unset. It never fails.
func ResolveEnvironment(sel entity.EnvironmentSelectors, logger port.Logger) entity.ResolvedEnvironment {
	var resolved entity.ResolvedEnvironment

	network, err := entity.ParseNetwork(sel.Network)
	if err != nil {
		logger.Error("Wrong PUBLIC_NETWORK environment variable", "value", sel.Network, "error", err)
	}
	resolved.Network = network

	environment, err := entity.ParseEnvironment(sel.Environment)
	if err != nil {
		logger.Error("Wrong PUBLIC_ENVIRONMENT environment variable", "value", sel.Environment, "error", err)
	}
	resolved.Environment = environment

	return resolved
}
