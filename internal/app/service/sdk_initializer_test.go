package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"bridge_sdk/internal/app/state"
	"bridge_sdk/internal/domain/entity"
	"bridge_sdk/internal/pkg/reactive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type initializerFixture struct {
	chains  *reactive.Signal[[]entity.ChainRecord]
	assets  *reactive.Signal[[]entity.AssetRecord]
	state   *state.SDKState
	factory *fakeFactory
	log     *recordingLogger
	init    *SDKInitializer
}

func newInitializerFixture(selectors entity.EnvironmentSelectors, discardStale bool) *initializerFixture {
	f := &initializerFixture{
		chains:  reactive.NewSignal[[]entity.ChainRecord](nil),
		assets:  reactive.NewSignal[[]entity.AssetRecord](nil),
		state:   state.NewSDKState(),
		factory: &fakeFactory{},
		log:     &recordingLogger{},
	}
	f.init = NewSDKInitializer(f.chains, f.assets, selectors, f.factory, f.state, f.log, discardStale)
	return f
}

func TestSDKInitializer_NoPublishUntilBothListsLoaded(t *testing.T) {
	f := newInitializerFixture(entity.EnvironmentSelectors{}, false)
	ctx := context.Background()

	require.NoError(t, f.init.Initialize(ctx, nil, nil))
	require.NoError(t, f.init.Initialize(ctx, []entity.ChainRecord{chain(1, "d", "https://1")}, nil))
	require.NoError(t, f.init.Initialize(ctx, nil, []entity.AssetRecord{}))

	assert.Nil(t, f.state.Current())
	assert.Equal(t, uint64(0), f.state.Publishes())
	assert.Empty(t, f.factory.created())

	_, ok := f.init.LastConfig()
	assert.False(t, ok)
}

func TestSDKInitializer_PublishesOnceWhenBothPresent(t *testing.T) {
	f := newInitializerFixture(entity.EnvironmentSelectors{Network: "mainnet", Environment: "staging"}, false)
	effect := f.init.Effect(TaskErrorHandler(f.log))
	ctx := context.Background()

	effect.Trigger(ctx) // both absent
	effect.Wait()
	f.chains.Set([]entity.ChainRecord{chain(1, "6648936", "https://eth")})
	effect.Trigger(ctx) // assets still absent
	effect.Wait()
	assert.Equal(t, uint64(0), f.state.Publishes())

	f.assets.Set([]entity.AssetRecord{})
	effect.Trigger(ctx)
	effect.Wait()
	assert.False(t, effect.Trigger(ctx), "nothing changed")
	effect.Wait()

	assert.Equal(t, uint64(1), f.state.Publishes())
	require.NotNil(t, f.state.Current())

	created := f.factory.created()
	require.Len(t, created, 1)
	cfg := created[0]
	assert.Equal(t, entity.DefaultSDKLogLevel, cfg.LogLevel)
	assert.Equal(t, entity.NetworkMainnet, cfg.Network)
	assert.Equal(t, entity.EnvironmentStaging, cfg.Environment)
	assert.Contains(t, cfg.Chains, "6648936")

	last, ok := f.init.LastConfig()
	require.True(t, ok)
	assert.Equal(t, cfg, last)
	assert.Contains(t, f.log.messages(), "[SDK config]")
}

func TestSDKInitializer_EmptyListsStillPublish(t *testing.T) {
	f := newInitializerFixture(entity.EnvironmentSelectors{}, false)

	require.NoError(t, f.init.Initialize(context.Background(), []entity.ChainRecord{}, []entity.AssetRecord{}))

	assert.Equal(t, uint64(1), f.state.Publishes())
	created := f.factory.created()
	require.Len(t, created, 1)
	assert.Empty(t, created[0].Chains)
}

func TestSDKInitializer_InvalidSelectorDoesNotBlockPublish(t *testing.T) {
	f := newInitializerFixture(entity.EnvironmentSelectors{Network: "bogus"}, false)

	require.NoError(t, f.init.Initialize(context.Background(), []entity.ChainRecord{}, []entity.AssetRecord{}))

	assert.Equal(t, uint64(1), f.state.Publishes())
	assert.Equal(t, entity.NetworkUnset, f.factory.created()[0].Network)
	assert.Len(t, f.log.byLevel("error"), 1)
}

func TestSDKInitializer_FactoryFailureKeepsPreviousState(t *testing.T) {
	f := newInitializerFixture(entity.EnvironmentSelectors{}, false)
	ctx := context.Background()

	require.NoError(t, f.init.Initialize(ctx, []entity.ChainRecord{}, []entity.AssetRecord{}))
	previous := f.state.Current()

	boom := errors.New("dial failed")
	f.factory.err = boom
	err := f.init.Initialize(ctx, []entity.ChainRecord{chain(1, "d", "https://1")}, []entity.AssetRecord{})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Same(t, previous, f.state.Current())
	assert.Equal(t, uint64(1), f.state.Publishes())
}

func TestSDKInitializer_FailureReachesErrorHandler(t *testing.T) {
	f := newInitializerFixture(entity.EnvironmentSelectors{}, false)
	f.factory.err = errors.New("dial failed")
	f.chains.Set([]entity.ChainRecord{})
	f.assets.Set([]entity.AssetRecord{})

	effect := f.init.Effect(TaskErrorHandler(f.log))
	effect.Trigger(context.Background())
	effect.Wait()

	errs := f.log.byLevel("error")
	require.Len(t, errs, 1)
	assert.Equal(t, "Background task failed", errs[0].msg)
	assert.Contains(t, errs[0].args, TaskInitializer)
	assert.Nil(t, f.state.Current())
}

func TestSDKInitializer_RebuildsOnEveryChange(t *testing.T) {
	f := newInitializerFixture(entity.EnvironmentSelectors{}, false)
	effect := f.init.Effect(nil)
	ctx := context.Background()

	f.chains.Set([]entity.ChainRecord{chain(1, "a", "https://1")})
	f.assets.Set([]entity.AssetRecord{})
	effect.Trigger(ctx)
	effect.Wait()

	f.chains.Set([]entity.ChainRecord{chain(1, "a", "https://1"), chain(2, "b", "https://2")})
	effect.Trigger(ctx)
	effect.Wait()

	assert.Equal(t, uint64(2), f.state.Publishes())
	last, ok := f.init.LastConfig()
	require.True(t, ok)
	assert.Len(t, last.Chains, 2)
}

func TestSDKInitializer_LastPublishWinsWithoutStaleCheck(t *testing.T) {
	f := newInitializerFixture(entity.EnvironmentSelectors{}, false)
	slow := make(chan struct{})
	f.factory.gate = map[int]chan struct{}{1: slow}

	ctx := context.Background()
	done := make(chan error, 1)
	go func() {
		done <- f.init.Initialize(ctx, []entity.ChainRecord{chain(1, "old", "https://1")}, []entity.AssetRecord{})
	}()
	require.Eventually(t, func() bool { return len(f.factory.created()) == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, f.init.Initialize(ctx,
		[]entity.ChainRecord{chain(1, "new-a", "https://1"), chain(2, "new-b", "https://2")},
		[]entity.AssetRecord{}))

	close(slow)
	require.NoError(t, <-done)

	// the older, slower run finished last and overwrote the newer result
	current := f.state.Current().(*fakeSDK)
	assert.Contains(t, current.cfg.Chains, "old")
	assert.Equal(t, uint64(2), f.state.Publishes())
}

func TestSDKInitializer_DiscardsStaleResult(t *testing.T) {
	f := newInitializerFixture(entity.EnvironmentSelectors{}, true)
	slow := make(chan struct{})
	f.factory.gate = map[int]chan struct{}{1: slow}

	ctx := context.Background()
	done := make(chan error, 1)
	go func() {
		done <- f.init.Initialize(ctx, []entity.ChainRecord{chain(1, "old", "https://1")}, []entity.AssetRecord{})
	}()
	require.Eventually(t, func() bool { return len(f.factory.created()) == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, f.init.Initialize(ctx,
		[]entity.ChainRecord{chain(1, "new-a", "https://1"), chain(2, "new-b", "https://2")},
		[]entity.AssetRecord{}))

	close(slow)
	require.NoError(t, <-done)

	current := f.state.Current().(*fakeSDK)
	assert.Contains(t, current.cfg.Chains, "new-a")
	assert.NotContains(t, current.cfg.Chains, "old")
	assert.Equal(t, uint64(1), f.state.Publishes())

	last, ok := f.init.LastConfig()
	require.True(t, ok)
	assert.Len(t, last.Chains, 2)
}

func TestSDKInitializer_WarnsOnDuplicateDomains(t *testing.T) {
	f := newInitializerFixture(entity.EnvironmentSelectors{}, false)

	require.NoError(t, f.init.Initialize(context.Background(),
		[]entity.ChainRecord{chain(1, "dup", "https://1"), chain(2, "dup", "https://2")},
		[]entity.AssetRecord{}))

	warns := f.log.byLevel("warn")
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0].msg, "share a domain id")
}

func TestSDKInitializer_LastConfigMatchesPublishedSDK(t *testing.T) {
	f := newInitializerFixture(entity.EnvironmentSelectors{}, false)
	ctx := context.Background()

	var wg sync.WaitGroup
	for n := 1; n <= 20; n++ {
		chains := make([]entity.ChainRecord, 0, n)
		for i := 0; i < n; i++ {
			chains = append(chains, chain(int64(i+1), fmt.Sprintf("d%d", i), "https://rpc"))
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.init.Initialize(ctx, chains, []entity.AssetRecord{}))
		}()
	}
	wg.Wait()

	current := f.state.Current().(*fakeSDK)
	last, ok := f.init.LastConfig()
	require.True(t, ok)
	assert.Equal(t, current.cfg, last)
	assert.Equal(t, uint64(20), f.state.Publishes())
}
