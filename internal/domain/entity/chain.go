package entity

// ChainRecord describes one chain as supplied by the chain directory.
// DomainID is the routable network identifier used by the bridge; an empty
// DomainID means the chain cannot be addressed and is ignored by the builder.
type ChainRecord struct {
	ChainID        int64            `json:"chain_id" yaml:"chainId"`
	DomainID       string           `json:"domain_id,omitempty" yaml:"domainId,omitempty"`
	Name           string           `json:"name,omitempty" yaml:"name,omitempty"`
	ProviderParams []ProviderParams `json:"provider_params,omitempty" yaml:"providerParams,omitempty"`
}

// ProviderParams holds the wallet-style provider parameters of a chain.
// RPCURLs may contain empty entries; they are dropped when building the config.
type ProviderParams struct {
	ChainName string   `json:"chainName,omitempty" yaml:"chainName,omitempty"`
	RPCURLs   []string `json:"rpcUrls,omitempty" yaml:"rpcUrls,omitempty"`
}

// RPCURLs returns provider_params[0].rpcUrls, or nil when any link of that path is missing.
func (c ChainRecord) RPCURLs() []string {
	if len(c.ProviderParams) == 0 {
		return nil
	}
	return c.ProviderParams[0].RPCURLs
}
