package provider

import (
	"context"
	"fmt"
	"time"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/domain/entity"
	"bridge_sdk/internal/pkg/metrics"
	"bridge_sdk/internal/pkg/reactive"
	"bridge_sdk/internal/pkg/utils"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

const (
	listChains = "chains"
	listAssets = "assets"
)

// DirectoryProvider loads the chain and asset lists and publishes them as signals.
// Both signals hold nil until their list has been loaded once. A list is only
// republished when its content changed, so an identical refetch does not
// retrigger anything downstream.
type DirectoryProvider struct {
	chainSource port.ChainSource
	assetSource port.AssetSource
	chains      *reactive.Signal[[]entity.ChainRecord]
	assets      *reactive.Signal[[]entity.AssetRecord]
	cache       *cache.Cache // list -> loaded slice (expiring), list+":digest" -> content digest
	listTTL     time.Duration
	logger      port.Logger
}

// NewDirectoryProvider creates a provider. Loaded lists are reused for cacheTTL
// before a refresh goes back to the source; a zero cacheTTL reloads on every refresh.
func NewDirectoryProvider(chainSource port.ChainSource, assetSource port.AssetSource, cacheTTL, cleanupInterval time.Duration, logger port.Logger) *DirectoryProvider {
	return &DirectoryProvider{
		chainSource: chainSource,
		assetSource: assetSource,
		chains:      reactive.NewSignal[[]entity.ChainRecord](nil),
		assets:      reactive.NewSignal[[]entity.AssetRecord](nil),
		cache:       cache.New(cacheTTL, cleanupInterval),
		listTTL:     cacheTTL,
		logger:      logger,
	}
}

// Chains returns the chain list signal.
func (p *DirectoryProvider) Chains() *reactive.Signal[[]entity.ChainRecord] { return p.chains }

// Assets returns the asset list signal.
func (p *DirectoryProvider) Assets() *reactive.Signal[[]entity.AssetRecord] { return p.assets }

// Refresh loads both lists concurrently, skipping a list whose cached copy is
// still fresh. The lists are independent: a failure loading one does not stop
// the other from being published.
func (p *DirectoryProvider) Refresh(ctx context.Context) error {
	return p.refresh(ctx, false)
}

func (p *DirectoryProvider) refresh(ctx context.Context, force bool) error {
	var g errgroup.Group
	g.Go(func() error {
		return refreshList(ctx, p, listChains, force, p.chainSource.LoadChains, p.chains)
	})
	g.Go(func() error {
		return refreshList(ctx, p, listAssets, force, p.assetSource.LoadAssets, p.assets)
	})
	return g.Wait()
}

// Run refreshes once, then every interval until ctx is done. A zero interval
// means a single load. Every tick goes back to the sources regardless of the
// cache TTL.
func (p *DirectoryProvider) Run(ctx context.Context, interval time.Duration) error {
	if err := p.Refresh(ctx); err != nil {
		p.logger.Error("Initial directory load failed", "error", err)
	}
	if interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.refresh(ctx, true); err != nil {
				p.logger.Warn("Directory refresh failed, keeping previous lists", "error", err)
			}
		}
	}
}

func refreshList[T any](
	ctx context.Context,
	p *DirectoryProvider,
	name string,
	force bool,
	load func(context.Context) ([]T, error),
	signal *reactive.Signal[[]T],
) error {
	if p.listTTL > 0 && !force {
		if _, fresh := p.cache.Get(name); fresh {
			p.logger.Debug("Directory list still fresh, skipping load", "list", name)
			return nil
		}
	}

	list, err := load(ctx)
	if err != nil {
		metrics.DirectoryFetches.WithLabelValues(name, "error").Inc()
		return fmt.Errorf("failed to load %s: %w", name, err)
	}
	metrics.DirectoryFetches.WithLabelValues(name, "ok").Inc()
	if list == nil {
		list = []T{}
	}

	digest, err := utils.Digest(list)
	if err != nil {
		return fmt.Errorf("failed to digest %s: %w", name, err)
	}
	if p.listTTL > 0 {
		p.cache.Set(name, list, cache.DefaultExpiration)
	}

	if prev, ok := p.cache.Get(name + ":digest"); ok && prev.(string) == digest {
		p.logger.Debug("Directory list unchanged", "list", name, "count", len(list))
		return nil
	}
	p.cache.Set(name+":digest", digest, cache.NoExpiration)

	signal.Set(list)
	p.logger.Info("Directory list published", "list", name, "count", len(list))
	return nil
}
