package service

import (
	"errors"
	"testing"

	"bridge_sdk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment_InvalidNetworkValidEnvironment(t *testing.T) {
	log := &recordingLogger{}

	got := ResolveEnvironment(entity.EnvironmentSelectors{Network: "invalid", Environment: "production"}, log)

	assert.Equal(t, entity.ResolvedEnvironment{
		Network:     entity.NetworkUnset,
		Environment: entity.EnvironmentProduction,
	}, got)

	errs := log.byLevel("error")
	require.Len(t, errs, 1)
	assert.Equal(t, "Wrong PUBLIC_NETWORK environment variable", errs[0].msg)
	assert.Contains(t, errs[0].args, "invalid")
}

func TestResolveEnvironment_Network(t *testing.T) {
	tests := []struct {
		raw        string
		want       entity.Network
		diagnostic bool
	}{
		{raw: "", want: entity.NetworkUnset},
		{raw: "testnet", want: entity.NetworkTestnet},
		{raw: "mainnet", want: entity.NetworkMainnet},
		{raw: "local", want: entity.NetworkLocal},
		{raw: "Mainnet", want: entity.NetworkUnset, diagnostic: true},
		{raw: " mainnet", want: entity.NetworkUnset, diagnostic: true},
		{raw: "production", want: entity.NetworkUnset, diagnostic: true},
	}

	for _, tt := range tests {
		t.Run("network="+tt.raw, func(t *testing.T) {
			log := &recordingLogger{}
			got := ResolveEnvironment(entity.EnvironmentSelectors{Network: tt.raw}, log)

			assert.Equal(t, tt.want, got.Network)
			assert.Equal(t, entity.EnvironmentUnset, got.Environment)
			if tt.diagnostic {
				assert.Len(t, log.byLevel("error"), 1)
			} else {
				assert.Empty(t, log.byLevel("error"))
			}
		})
	}
}

func TestResolveEnvironment_Environment(t *testing.T) {
	tests := []struct {
		raw        string
		want       entity.Environment
		diagnostic bool
	}{
		{raw: "", want: entity.EnvironmentUnset},
		{raw: "staging", want: entity.EnvironmentStaging},
		{raw: "production", want: entity.EnvironmentProduction},
		{raw: "prod", want: entity.EnvironmentUnset, diagnostic: true},
		{raw: "mainnet", want: entity.EnvironmentUnset, diagnostic: true},
	}

	for _, tt := range tests {
		t.Run("environment="+tt.raw, func(t *testing.T) {
			log := &recordingLogger{}
			got := ResolveEnvironment(entity.EnvironmentSelectors{Environment: tt.raw}, log)

			assert.Equal(t, tt.want, got.Environment)
			if tt.diagnostic {
				errs := log.byLevel("error")
				require.Len(t, errs, 1)
				assert.Equal(t, "Wrong PUBLIC_ENVIRONMENT environment variable", errs[0].msg)
			} else {
				assert.Empty(t, log.byLevel("error"))
			}
		})
	}
}

func TestParseSelectors_TypedError(t *testing.T) {
	_, err := entity.ParseNetwork("nope")
	var selErr *entity.InvalidSelectorError
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, "network", selErr.Field)
	assert.Equal(t, "nope", selErr.Value)

	_, err = entity.ParseEnvironment("nope")
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, "environment", selErr.Field)
}
