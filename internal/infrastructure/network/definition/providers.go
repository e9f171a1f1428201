package networkdefinition

import (
	"context"
	"slices"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/domain/entity"
)

// NetworkDefinition is a chain known to the service out of the box.
// DomainID is empty for chains the bridge does not serve.
type NetworkDefinition struct {
	ChainID                   int64
	Name                      string
	DomainID                  string
	RPCURLs                   []string
	WrappedNativeSymbol       string
	WrappedNativeTokenAddress string
}

// Predefined network definitions
var ( //nolint:gochecknoglobals // Global for definitions
	Ethereum = NetworkDefinition{
		ChainID:                   1,
		Name:                      "Ethereum Mainnet",
		DomainID:                  "6648936",
		RPCURLs:                   []string{"https://ethereum-rpc.publicnode.com", "https://rpc.ankr.com/eth", "https://ethereum.publicnode.com"},
		WrappedNativeSymbol:       "WETH",
		WrappedNativeTokenAddress: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
	}
	BSC = NetworkDefinition{
		ChainID:                   56,
		Name:                      "BNB Smart Chain",
		DomainID:                  "6450786",
		RPCURLs:                   []string{"https://1rpc.io/bnb", "https://bsc-dataseed2.binance.org/", "https://bsc.publicnode.com"},
		WrappedNativeSymbol:       "WBNB",
		WrappedNativeTokenAddress: "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c",
	}
	Polygon = NetworkDefinition{
		ChainID:                   137,
		Name:                      "Polygon PoS",
		DomainID:                  "1886350457",
		RPCURLs:                   []string{"https://polygon-rpc.com/", "https://rpc.ankr.com/polygon", "https://polygon.publicnode.com"},
		WrappedNativeSymbol:       "WMATIC",
		WrappedNativeTokenAddress: "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270",
	}
	Arbitrum = NetworkDefinition{
		ChainID:                   42161,
		Name:                      "Arbitrum One",
		DomainID:                  "1634886255",
		RPCURLs:                   []string{"https://arb1.arbitrum.io/rpc", "https://arbitrum.llamarpc.com", "https://arbitrum.publicnode.com"},
		WrappedNativeSymbol:       "WETH",
		WrappedNativeTokenAddress: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1",
	}
	Avalanche = NetworkDefinition{
		ChainID:                   43114,
		Name:                      "Avalanche C-Chain",
		DomainID:                  "1635148152",
		RPCURLs:                   []string{"https://api.avax.network/ext/bc/C/rpc", "https://avalanche.public-rpc.com", "https://rpc.ankr.com/avalanche"},
		WrappedNativeSymbol:       "WAVAX",
		WrappedNativeTokenAddress: "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7",
	}
	Base = NetworkDefinition{
		ChainID:                   8453,
		Name:                      "Base Mainnet",
		DomainID:                  "1650553709",
		RPCURLs:                   []string{"https://1rpc.io/base", "https://base.publicnode.com", "https://base.llamarpc.com"},
		WrappedNativeSymbol:       "WETH",
		WrappedNativeTokenAddress: "0x4200000000000000000000000000000000000006",
	}
	Gnosis = NetworkDefinition{
		ChainID:                   100,
		Name:                      "Gnosis Chain",
		DomainID:                  "6778479",
		RPCURLs:                   []string{"https://0xrpc.io/gno", "https://rpc.ankr.com/gnosis", "https://gnosis.publicnode.com"},
		WrappedNativeSymbol:       "WXDAI",
		WrappedNativeTokenAddress: "0xe91D153E0b41518A2Ce8DD3D7944Fa863463A97d",
	}
	Linea = NetworkDefinition{
		ChainID:                   59144,
		Name:                      "Linea Mainnet",
		DomainID:                  "1818848877",
		RPCURLs:                   []string{"https://rpc.linea.build", "https://linea.blockpi.network/v1/rpc/public"},
		WrappedNativeSymbol:       "WETH",
		WrappedNativeTokenAddress: "0xe5D7C2a44FfDDf6b295A15c148167daaAf5Cf34f",
	}
	Metis = NetworkDefinition{
		ChainID:  1088,
		Name:     "Metis Andromeda Mainnet",
		DomainID: "1835365481",
		RPCURLs:  []string{"https://andromeda.metis.io/?owner=1088"},
	}
	Optimism = NetworkDefinition{
		ChainID:                   10,
		Name:                      "OP Mainnet",
		DomainID:                  "1869640809",
		RPCURLs:                   []string{"https://op-pokt.nodies.app", "https://optimism.publicnode.com", "https://rpc.ankr.com/optimism"},
		WrappedNativeSymbol:       "WETH",
		WrappedNativeTokenAddress: "0x4200000000000000000000000000000000000006",
	}
	PolygonZkEVM = NetworkDefinition{
		ChainID:                   1101,
		Name:                      "Polygon zkEVM",
		DomainID:                  "2053862260",
		RPCURLs:                   []string{"https://zkevm-rpc.com", "https://rpc.ankr.com/polygon_zkevm"},
		WrappedNativeSymbol:       "WETH",
		WrappedNativeTokenAddress: "0x4F9A0e7FD2Bf6067db6994CF12E4495Df938E6e9",
	}
	ZkSync = NetworkDefinition{ // zkSync Era
		ChainID:                   324,
		Name:                      "zkSync Era Mainnet",
		DomainID:                  "2053862243",
		RPCURLs:                   []string{"https://mainnet.era.zksync.io"},
		WrappedNativeSymbol:       "WETH",
		WrappedNativeTokenAddress: "0x5AEa5775959fBC2557Cc8789bC1bf90A239D9a91",
	}
	// Known chains the bridge has no domain for. They stay in the directory so
	// wallets connected to them are recognised, but get no SDK config.
	Fantom = NetworkDefinition{
		ChainID:                   250,
		Name:                      "Fantom Opera",
		RPCURLs:                   []string{"https://1rpc.io/ftm", "https://fantom.publicnode.com", "https://rpc.ankr.com/fantom"},
		WrappedNativeSymbol:       "WFTM",
		WrappedNativeTokenAddress: "0x21be370D5312f44cB42ce377BC9b8a0cEF1A4C83",
	}
	Scroll = NetworkDefinition{
		ChainID:                   534352,
		Name:                      "Scroll",
		RPCURLs:                   []string{"https://rpc.scroll.io", "https://scroll.blockpi.network/v1/rpc/public"},
		WrappedNativeSymbol:       "WETH",
		WrappedNativeTokenAddress: "0x5300000000000000000000000000000000000004",
	}
	Zora = NetworkDefinition{
		ChainID:                   7777777,
		Name:                      "Zora Mainnet",
		RPCURLs:                   []string{"https://zora.drpc.org", "https://rpc.zora.energy", "https://1rpc.io/zora"},
		WrappedNativeSymbol:       "WETH",
		WrappedNativeTokenAddress: "0x4200000000000000000000000000000000000006",
	}
)

// allKnownDefinitions lists the built-in chains in directory order.
var allKnownDefinitions = []NetworkDefinition{
	Ethereum,
	Optimism,
	BSC,
	Gnosis,
	Polygon,
	ZkSync,
	Metis,
	PolygonZkEVM,
	Base,
	Arbitrum,
	Avalanche,
	Linea,
	Fantom,
	Scroll,
	Zora,
}

// NetworkDefinitionProvider serves the built-in chain and asset lists.
// It implements port.ChainSource and port.AssetSource.
type NetworkDefinitionProvider struct {
	logger port.Logger
	defs   []NetworkDefinition
}

var (
	_ port.ChainSource = (*NetworkDefinitionProvider)(nil)
	_ port.AssetSource = (*NetworkDefinitionProvider)(nil)
)

// NewNetworkDefinitionProvider creates a provider over the built-in definitions.
func NewNetworkDefinitionProvider(log port.Logger) *NetworkDefinitionProvider {
	p := &NetworkDefinitionProvider{
		logger: log,
		defs:   allKnownDefinitions,
	}

	routable := 0
	for _, def := range p.defs {
		if def.DomainID != "" {
			routable++
		}
	}
	p.logger.Debug("Built-in network definitions loaded", "chains", len(p.defs), "routable", routable)
	return p
}

// LoadChains implements port.ChainSource.
func (p *NetworkDefinitionProvider) LoadChains(_ context.Context) ([]entity.ChainRecord, error) {
	chains := make([]entity.ChainRecord, 0, len(p.defs))
	for _, def := range p.defs {
		chains = append(chains, entity.ChainRecord{
			ChainID:  def.ChainID,
			DomainID: def.DomainID,
			Name:     def.Name,
			ProviderParams: []entity.ProviderParams{{
				ChainName: def.Name,
				RPCURLs:   slices.Clone(def.RPCURLs),
			}},
		})
	}
	return chains, nil
}

// LoadAssets implements port.AssetSource. Wrapped native tokens that share a
// symbol are grouped into one asset with a contract per chain.
func (p *NetworkDefinitionProvider) LoadAssets(_ context.Context) ([]entity.AssetRecord, error) {
	assets := make([]entity.AssetRecord, 0)
	index := make(map[string]int)

	for _, def := range p.defs {
		if def.WrappedNativeTokenAddress == "" {
			continue
		}
		i, ok := index[def.WrappedNativeSymbol]
		if !ok {
			i = len(assets)
			index[def.WrappedNativeSymbol] = i
			assets = append(assets, entity.AssetRecord{Symbol: def.WrappedNativeSymbol})
		}
		assets[i].Contracts = append(assets[i].Contracts, entity.AssetContract{
			ChainID:         def.ChainID,
			ContractAddress: def.WrappedNativeTokenAddress,
		})
	}
	return assets, nil
}
