package port

import (
	"context"

	"bridge_sdk/internal/domain/entity"
)

// Sub-client names, in the order signer adoption visits them.
const (
	SubClientBase   = "base"
	SubClientRouter = "router"
)

// SignerAdopter is a sub-client that can switch the address it signs for.
type SignerAdopter interface {
	ChangeSignerAddress(ctx context.Context, address string) error
}

// SDK is a constructed bridge client. Either sub-client may be absent (nil).
type SDK interface {
	BaseClient() SignerAdopter
	RouterClient() SignerAdopter
}

// SDKDescriber is implemented by SDKs that can report a read-only summary of themselves.
type SDKDescriber interface {
	Summary() entity.SDKSummary
}

// SDKFactory constructs an SDK from a client configuration.
type SDKFactory interface {
	Create(ctx context.Context, cfg entity.ClientConfig) (SDK, error)
}

// NamedSubClient pairs a sub-client with its name.
type NamedSubClient struct {
	Name   string
	Client SignerAdopter
}

// SubClients lists the sub-clients present on sdk in fixed adoption order.
func SubClients(sdk SDK) []NamedSubClient {
	if sdk == nil {
		return nil
	}
	out := make([]NamedSubClient, 0, 2)
	if c := sdk.BaseClient(); c != nil {
		out = append(out, NamedSubClient{Name: SubClientBase, Client: c})
	}
	if c := sdk.RouterClient(); c != nil {
		out = append(out, NamedSubClient{Name: SubClientRouter, Client: c})
	}
	return out
}
