package service

import (
	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/domain/entity"

	"github.com/samber/lo"
)

// BuildClientConfig assembles the full client config: per-domain chains, the
// resolved network and environment, and the default SDK log level.
func BuildClientConfig(chains []entity.ChainRecord, assets []entity.AssetRecord, selectors entity.EnvironmentSelectors, logger port.Logger) entity.ClientConfig {
	env := ResolveEnvironment(selectors, logger)
	return entity.ClientConfig{
		Chains:      BuildChainsConfig(chains, assets),
		LogLevel:    entity.DefaultSDKLogLevel,
		Network:     env.Network,
		Environment: env.Environment,
	}
}

// BuildChainsConfig maps the chain and asset directories to the per-domain SDK config.
// It is pure: the result depends only on its arguments, and the map is built from scratch.
//
// Chains without a domain id are skipped, since the SDK cannot address them.
// When two chains share a domain id the later one wins.
func BuildChainsConfig(chains []entity.ChainRecord, assets []entity.AssetRecord) entity.ChainsConfig {
	out := make(entity.ChainsConfig, len(chains))

	for _, chain := range chains {
		if chain.DomainID == "" {
			continue
		}

		out[chain.DomainID] = entity.ChainConfigEntry{
			Providers: lo.Compact(chain.RPCURLs()), // drops empty URLs, never nil
			Assets:    assetsOnChain(chain.ChainID, assets),
		}
	}

	return out
}

func assetsOnChain(chainID int64, assets []entity.AssetRecord) []entity.AssetEntry {
	out := make([]entity.AssetEntry, 0)
	for _, asset := range assets {
		contract, ok := asset.ContractOn(chainID)
		if !ok {
			continue
		}

		symbol := contract.Symbol
		if symbol == "" {
			symbol = asset.Symbol
		}
		name := asset.Name
		if name == "" {
			name = symbol
		}

		out = append(out, entity.AssetEntry{
			Name:    name,
			Address: contract.ContractAddress,
			Symbol:  symbol,
		})
	}
	return out
}

// DuplicateDomains returns domain ids claimed by more than one chain, in first-seen order.
func DuplicateDomains(chains []entity.ChainRecord) []string {
	ids := lo.FilterMap(chains, func(chain entity.ChainRecord, _ int) (string, bool) {
		return chain.DomainID, chain.DomainID != ""
	})
	return lo.FindDuplicates(ids)
}
