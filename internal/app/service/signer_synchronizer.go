package service

import (
	"context"
	"fmt"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/app/state"
	"bridge_sdk/internal/domain/entity"
	"bridge_sdk/internal/pkg/metrics"
	"bridge_sdk/internal/pkg/reactive"
)

// TaskSignerSync is the effect name of the signer synchronizer.
const TaskSignerSync = "signer_synchronizer"

// SignerSynchronizer pushes the connected wallet address into every sub-client
// of the published SDK whenever the SDK instance or the wallet changes.
type SignerSynchronizer struct {
	state  *state.SDKState
	wallet *reactive.Signal[entity.WalletIdentity]
	logger port.Logger
}

// NewSignerSynchronizer creates a synchronizer.
func NewSignerSynchronizer(sdkState *state.SDKState, wallet *reactive.Signal[entity.WalletIdentity], logger port.Logger) *SignerSynchronizer {
	return &SignerSynchronizer{state: sdkState, wallet: wallet, logger: logger}
}

// Effect returns the reactive task that keeps the signer in sync.
func (s *SignerSynchronizer) Effect(onError reactive.ErrorHandler) *reactive.Effect {
	return reactive.NewEffect(TaskSignerSync, s.deps, s.run, reactive.WithErrorHandler(onError))
}

// Sources returns what the effect must be subscribed to.
func (s *SignerSynchronizer) Sources() []reactive.Source {
	return []reactive.Source{s.state, s.wallet}
}

// deps holds the SDK by identity, so republishing the same instance does not retrigger.
func (s *SignerSynchronizer) deps() []any {
	w := s.wallet.Load()
	return []any{s.state.Current(), w.Address, w.Provider, w.Web3Provider, w.Signer}
}

func (s *SignerSynchronizer) run(ctx context.Context) error {
	return s.Sync(ctx, s.state.Current(), s.wallet.Load())
}

// Sync adopts wallet.Address on every sub-client of sdk, in fixed order, then
// republishes sdk. The first failing sub-client aborts the run.
func (s *SignerSynchronizer) Sync(ctx context.Context, sdk port.SDK, wallet entity.WalletIdentity) error {
	if sdk == nil || !wallet.Connected() {
		return nil
	}
	metrics.TaskRuns.WithLabelValues(TaskSignerSync).Inc()

	for _, sub := range port.SubClients(sdk) {
		if err := sub.Client.ChangeSignerAddress(ctx, wallet.Address); err != nil {
			metrics.SignerAdoptions.WithLabelValues(sub.Name, "error").Inc()
			return fmt.Errorf("failed to change signer address on %s client: %w", sub.Name, err)
		}
		metrics.SignerAdoptions.WithLabelValues(sub.Name, "ok").Inc()
	}

	s.state.Publish(sdk)
	metrics.Publishes.WithLabelValues(TaskSignerSync).Inc()

	s.logger.Info("[Signer address]", "address", wallet.Address)
	return nil
}
