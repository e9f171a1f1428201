package port

import "bridge_sdk/internal/domain/entity"

// SDKStateReader gives read access to the published SDK.
type SDKStateReader interface {
	Current() SDK
	Publishes() uint64
}

// ClientConfigReader returns the config of the last published SDK.
type ClientConfigReader interface {
	LastConfig() (entity.ClientConfig, bool)
}

// WalletStore holds the connected wallet identity and accepts wallet events.
type WalletStore interface {
	Current() entity.WalletIdentity
	Connect(identity entity.WalletIdentity) error
	Disconnect()
}
