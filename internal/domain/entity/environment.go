package entity

import "fmt"

// Network selects which set of bridge deployments the SDK talks to.
// The zero value means the selector was absent.
type Network string

const (
	NetworkUnset   Network = ""
	NetworkTestnet Network = "testnet"
	NetworkMainnet Network = "mainnet"
	NetworkLocal   Network = "local"
)

// Environment selects the deployment environment of the bridge backend.
// The zero value means the selector was absent.
type Environment string

const (
	EnvironmentUnset      Environment = ""
	EnvironmentStaging    Environment = "staging"
	EnvironmentProduction Environment = "production"
)

// InvalidSelectorError reports a selector value outside its enumeration.
type InvalidSelectorError struct {
	Field string
	Value string
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("invalid %s selector %q", e.Field, e.Value)
}

// ParseNetwork validates raw against the Network enumeration.
// Empty input yields NetworkUnset without an error.
func ParseNetwork(raw string) (Network, error) {
	switch n := Network(raw); n {
	case NetworkUnset, NetworkTestnet, NetworkMainnet, NetworkLocal:
		return n, nil
	default:
		return NetworkUnset, &InvalidSelectorError{Field: "network", Value: raw}
	}
}

// ParseEnvironment validates raw against the Environment enumeration.
// Empty input yields EnvironmentUnset without an error.
func ParseEnvironment(raw string) (Environment, error) {
	switch e := Environment(raw); e {
	case EnvironmentUnset, EnvironmentStaging, EnvironmentProduction:
		return e, nil
	default:
		return EnvironmentUnset, &InvalidSelectorError{Field: "environment", Value: raw}
	}
}

// EnvironmentSelectors are the raw, unvalidated selector strings from process configuration.
type EnvironmentSelectors struct {
	Network     string `yaml:"network"`
	Environment string `yaml:"environment"`
}

// ResolvedEnvironment holds validated selectors; invalid ones are left unset.
type ResolvedEnvironment struct {
	Network     Network
	Environment Environment
}
