package client

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
)

// EVMClient is an RPC connection to one bridge domain.
type EVMClient struct {
	ethClient *ethclient.Client
	domain    string
	rpcURL    string
	providers []string
}

// DialEVMClient connects to the first reachable provider of a domain, trying them in order.
func DialEVMClient(ctx context.Context, domain string, providers []string, connectionTimeout time.Duration) (*EVMClient, error) {
	if len(providers) == 0 {
		return nil, fmt.Errorf("no RPC providers configured for domain %s", domain)
	}

	var lastErr error
	for _, rpcURL := range providers {
		dialCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
		client, err := ethclient.DialContext(dialCtx, rpcURL)
		cancel()

		if err == nil {
			return &EVMClient{
				ethClient: client,
				domain:    domain,
				rpcURL:    rpcURL,
				providers: slices.Clone(providers),
			}, nil
		}
		lastErr = fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}

	return nil, fmt.Errorf("all RPC connection attempts failed for domain %s: %w", domain, lastErr)
}

// Domain returns the domain id this client is connected to.
func (c *EVMClient) Domain() string { return c.domain }

// RPCURL returns the provider the connection was established with.
func (c *EVMClient) RPCURL() string { return c.rpcURL }

// ServesProviders reports whether the client was dialed from exactly this provider list.
func (c *EVMClient) ServesProviders(providers []string) bool {
	return slices.Equal(c.providers, providers)
}

// Eth exposes the underlying go-ethereum client.
func (c *EVMClient) Eth() *ethclient.Client { return c.ethClient }

// Close releases the connection.
func (c *EVMClient) Close() {
	c.ethClient.Close()
}
