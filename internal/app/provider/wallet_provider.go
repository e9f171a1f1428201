package provider

import (
	"fmt"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/domain/entity"
	"bridge_sdk/internal/pkg/reactive"

	"github.com/ethereum/go-ethereum/common"
)

// WalletProvider holds the connected wallet identity and publishes changes to it.
type WalletProvider struct {
	signal *reactive.Signal[entity.WalletIdentity]
	logger port.Logger
}

// NewWalletProvider creates a provider with no wallet connected.
func NewWalletProvider(logger port.Logger) *WalletProvider {
	return &WalletProvider{
		signal: reactive.NewSignal(entity.WalletIdentity{}),
		logger: logger,
	}
}

// Signal returns the wallet identity signal.
func (p *WalletProvider) Signal() *reactive.Signal[entity.WalletIdentity] { return p.signal }

// Current returns the connected wallet identity.
func (p *WalletProvider) Current() entity.WalletIdentity { return p.signal.Load() }

// LoadInitial connects the wallet supplied by source, if it has one.
func (p *WalletProvider) LoadInitial(source port.WalletSource) error {
	identity, err := source.GetWallet()
	if err != nil {
		return fmt.Errorf("failed to load initial wallet: %w", err)
	}
	if !identity.Connected() {
		return nil
	}
	return p.Connect(identity)
}

// Connect replaces the wallet identity. The address, when present, must be a hex address.
// Setting the identity already held is a no-op.
func (p *WalletProvider) Connect(identity entity.WalletIdentity) error {
	if identity.Address != "" && !common.IsHexAddress(identity.Address) {
		return fmt.Errorf("invalid wallet address %q", identity.Address)
	}
	if p.signal.Load() == identity {
		return nil
	}

	p.signal.Set(identity)
	p.logger.Info("Wallet identity changed",
		"address", identity.Address,
		"has_provider", identity.Provider != "",
		"has_web3_provider", identity.Web3Provider != "",
		"has_signer", identity.Signer != "")
	return nil
}

// Disconnect clears the wallet identity.
func (p *WalletProvider) Disconnect() {
	if p.signal.Load() == (entity.WalletIdentity{}) {
		return
	}
	p.signal.Set(entity.WalletIdentity{})
	p.logger.Info("Wallet disconnected")
}
