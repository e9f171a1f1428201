package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/domain/entity"
	"bridge_sdk/internal/infrastructure/configloader"
)

const (
	defaultProviderConnectionTimeout = 10 * time.Second
)

// bridgeSDKFactory implements port.SDKFactory.
// It keeps domain connections between SDK constructions and only redials a
// domain when its provider list changed.
type bridgeSDKFactory struct {
	clients           map[string]*EVMClient
	mu                sync.Mutex
	logger            port.Logger
	connectionTimeout time.Duration
}

// NewBridgeSDKFactory creates a new SDK factory.
func NewBridgeSDKFactory(cfg *configloader.Config, logger port.Logger) port.SDKFactory {
	timeout := defaultProviderConnectionTimeout
	if cfg != nil && cfg.SDK.ConnectionTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.SDK.ConnectionTimeoutSeconds) * time.Second
	}
	return &bridgeSDKFactory{
		clients:           make(map[string]*EVMClient),
		logger:            logger,
		connectionTimeout: timeout,
	}
}

// Create builds a BridgeSDK with one connection per domain that has providers.
// Domains without providers are kept in the config but get no connection.
func (f *bridgeSDKFactory) Create(ctx context.Context, cfg entity.ClientConfig) (port.SDK, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	connections := make(map[string]*EVMClient, len(cfg.Chains))
	for domain, entry := range cfg.Chains {
		if len(entry.Providers) == 0 {
			f.logger.Warn("Domain has no RPC providers, it will not be reachable", "domain", domain)
			continue
		}

		client, err := f.clientFor(ctx, domain, entry.Providers)
		if err != nil {
			return nil, fmt.Errorf("failed to connect domain %s: %w", domain, err)
		}
		connections[domain] = client
	}

	// Forget domains that left the config. Their connections are not closed:
	// an SDK built earlier may still be published and using them.
	for domain := range f.clients {
		if _, ok := cfg.Chains[domain]; !ok {
			delete(f.clients, domain)
		}
	}

	f.logger.Info("Bridge SDK created", "domains", len(cfg.Chains), "connected", len(connections))
	return newBridgeSDK(cfg, connections), nil
}

// clientFor must be called with f.mu held.
func (f *bridgeSDKFactory) clientFor(ctx context.Context, domain string, providers []string) (*EVMClient, error) {
	if client, exists := f.clients[domain]; exists {
		if client.ServesProviders(providers) {
			f.logger.Debug("Reusing cached EVM client", "domain", domain)
			return client, nil
		}
		delete(f.clients, domain)
	}

	f.logger.Debug("Creating new EVM client", "domain", domain, "rpc_primary", providers[0])
	client, err := DialEVMClient(ctx, domain, providers, f.connectionTimeout)
	if err != nil {
		f.logger.Error("Failed to create EVM client", "domain", domain, "error", err)
		return nil, err
	}

	f.clients[domain] = client
	return client, nil
}
