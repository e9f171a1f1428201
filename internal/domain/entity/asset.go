package entity

// AssetRecord is a token known to the asset directory together with its
// deployments on every chain it exists on.
type AssetRecord struct {
	Symbol    string          `json:"symbol" yaml:"symbol"`
	Name      string          `json:"name,omitempty" yaml:"name,omitempty"`
	Contracts []AssetContract `json:"contracts,omitempty" yaml:"contracts,omitempty"`
}

// AssetContract is the deployment of an asset on a single chain.
type AssetContract struct {
	ChainID         int64  `json:"chain_id" yaml:"chainId"`
	ContractAddress string `json:"contract_address" yaml:"contractAddress"`
	Symbol          string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
}

// ContractOn returns the first contract deployed on chainID.
func (a AssetRecord) ContractOn(chainID int64) (AssetContract, bool) {
	for _, c := range a.Contracts {
		if c.ChainID == chainID {
			return c, true
		}
	}
	return AssetContract{}, false
}
