package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/app/state"
	"bridge_sdk/internal/domain/entity"
	"bridge_sdk/internal/pkg/metrics"
	"bridge_sdk/internal/pkg/reactive"

	"github.com/google/uuid"
)

// TaskInitializer is the effect name of the SDK initializer.
const TaskInitializer = "sdk_initializer"

// SDKInitializer builds a client config from the chain and asset directories and
// publishes a freshly constructed SDK every time either list changes.
type SDKInitializer struct {
	chains       *reactive.Signal[[]entity.ChainRecord]
	assets       *reactive.Signal[[]entity.AssetRecord]
	selectors    entity.EnvironmentSelectors
	factory      port.SDKFactory
	state        *state.SDKState
	logger       port.Logger
	discardStale bool

	generation atomic.Uint64

	// publishMu makes the SDK publish and lastConfig one step.
	publishMu  sync.Mutex
	lastConfig *entity.ClientConfig
}

// NewSDKInitializer creates an initializer. A nil list in either signal means
// "not loaded yet". With discardStale set, a run whose construction finishes
// after a newer run started drops its SDK instead of publishing it.
func NewSDKInitializer(
	chains *reactive.Signal[[]entity.ChainRecord],
	assets *reactive.Signal[[]entity.AssetRecord],
	selectors entity.EnvironmentSelectors,
	factory port.SDKFactory,
	sdkState *state.SDKState,
	logger port.Logger,
	discardStale bool,
) *SDKInitializer {
	return &SDKInitializer{
		chains:       chains,
		assets:       assets,
		selectors:    selectors,
		factory:      factory,
		state:        sdkState,
		logger:       logger,
		discardStale: discardStale,
	}
}

// Effect returns the reactive task that re-initializes the SDK on directory changes.
func (i *SDKInitializer) Effect(onError reactive.ErrorHandler) *reactive.Effect {
	return reactive.NewEffect(TaskInitializer, i.deps, i.run, reactive.WithErrorHandler(onError))
}

// Sources returns what the effect must be subscribed to.
func (i *SDKInitializer) Sources() []reactive.Source {
	return []reactive.Source{i.chains, i.assets}
}

func (i *SDKInitializer) deps() []any {
	return []any{i.chains.Version(), i.assets.Version()}
}

func (i *SDKInitializer) run(ctx context.Context) error {
	return i.Initialize(ctx, i.chains.Load(), i.assets.Load())
}

// Initialize performs one initialization run with the given lists.
// It does nothing while either list is nil.
func (i *SDKInitializer) Initialize(ctx context.Context, chains []entity.ChainRecord, assets []entity.AssetRecord) error {
	if chains == nil || assets == nil {
		i.logger.Debug("Directory not loaded yet, skipping SDK initialization",
			"chains_loaded", chains != nil, "assets_loaded", assets != nil)
		return nil
	}

	gen := i.generation.Add(1)
	runID := uuid.NewString()
	metrics.TaskRuns.WithLabelValues(TaskInitializer).Inc()

	if dups := DuplicateDomains(chains); len(dups) > 0 {
		i.logger.Warn("Several chains share a domain id, the last one wins", "run_id", runID, "domains", dups)
	}

	cfg := BuildClientConfig(chains, assets, i.selectors, i.logger)

	sdk, err := i.factory.Create(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create SDK for %d domains (run %s): %w", len(cfg.Chains), runID, err)
	}

	i.publishMu.Lock()
	if i.discardStale && gen != i.generation.Load() {
		i.publishMu.Unlock()
		metrics.StaleResults.Inc()
		i.logger.Info("Discarding SDK from a superseded initialization", "run_id", runID, "generation", gen)
		return nil
	}
	i.state.Publish(sdk)
	i.lastConfig = &cfg
	i.publishMu.Unlock()

	metrics.Publishes.WithLabelValues(TaskInitializer).Inc()
	metrics.ConfiguredDomains.Set(float64(len(cfg.Chains)))

	i.logger.Info("[SDK config]",
		"run_id", runID,
		"domains", len(cfg.Chains),
		"network", cfg.Network,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"config", cfg)
	return nil
}

// LastConfig returns the config of the most recent published SDK.
func (i *SDKInitializer) LastConfig() (entity.ClientConfig, bool) {
	i.publishMu.Lock()
	cfg := i.lastConfig
	i.publishMu.Unlock()
	if cfg == nil {
		return entity.ClientConfig{}, false
	}
	return *cfg, true
}
