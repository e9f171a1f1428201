package client

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
)

// SignerClient is a bridge sub-client. It shares the domain connections of its SDK
// and keeps its own active signer address.
type SignerClient struct {
	name        string
	connections map[string]*EVMClient

	mu     sync.RWMutex
	signer common.Address
	hasSig bool
}

func newSignerClient(name string, connections map[string]*EVMClient) *SignerClient {
	return &SignerClient{name: name, connections: connections}
}

// ChangeSignerAddress implements port.SignerAdopter.
func (c *SignerClient) ChangeSignerAddress(ctx context.Context, address string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !common.IsHexAddress(address) {
		return fmt.Errorf("invalid signer address %q", address)
	}

	c.mu.Lock()
	c.signer = common.HexToAddress(address)
	c.hasSig = true
	c.mu.Unlock()
	return nil
}

// SignerAddress returns the checksummed active signer, or "" if none was adopted yet.
func (c *SignerClient) SignerAddress() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.hasSig {
		return ""
	}
	return c.signer.Hex()
}

// Connection returns the RPC connection for a domain.
func (c *SignerClient) Connection(domain string) (*EVMClient, bool) {
	conn, ok := c.connections[domain]
	return conn, ok
}

// BridgeSDK is the concrete bridge client built from an entity.ClientConfig.
type BridgeSDK struct {
	cfg         entity.ClientConfig
	connections map[string]*EVMClient
	base        *SignerClient
	router      *SignerClient
}

var (
	_ port.SDK          = (*BridgeSDK)(nil)
	_ port.SDKDescriber = (*BridgeSDK)(nil)
)

func newBridgeSDK(cfg entity.ClientConfig, connections map[string]*EVMClient) *BridgeSDK {
	return &BridgeSDK{
		cfg:         cfg,
		connections: connections,
		base:        newSignerClient(port.SubClientBase, connections),
		router:      newSignerClient(port.SubClientRouter, connections),
	}
}

// BaseClient implements port.SDK.
func (s *BridgeSDK) BaseClient() port.SignerAdopter {
	if s.base == nil {
		return nil
	}
	return s.base
}

// RouterClient implements port.SDK.
func (s *BridgeSDK) RouterClient() port.SignerAdopter {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Base returns the concrete base sub-client.
func (s *BridgeSDK) Base() *SignerClient { return s.base }

// Router returns the concrete router sub-client.
func (s *BridgeSDK) Router() *SignerClient { return s.router }

// Config returns the configuration the SDK was built with.
func (s *BridgeSDK) Config() entity.ClientConfig { return s.cfg }

// Summary implements port.SDKDescriber.
func (s *BridgeSDK) Summary() entity.SDKSummary {
	domains := s.cfg.Domains()
	sort.Strings(domains)

	summary := entity.SDKSummary{
		Network:     s.cfg.Network,
		Environment: s.cfg.Environment,
		Domains:     domains,
	}
	for _, sub := range []*SignerClient{s.base, s.router} {
		if sub == nil {
			continue
		}
		summary.SubClients = append(summary.SubClients, entity.SubClientSummary{
			Name:          sub.name,
			SignerAddress: sub.SignerAddress(),
		})
	}
	return summary
}
