package entity

// SubClientSummary describes one sub-client of a constructed SDK.
type SubClientSummary struct {
	Name          string `json:"name"`
	SignerAddress string `json:"signerAddress,omitempty"`
}

// SDKSummary is a read-only view of a published SDK instance.
type SDKSummary struct {
	Network     Network            `json:"network,omitempty"`
	Environment Environment        `json:"environment,omitempty"`
	Domains     []string           `json:"domains"`
	SubClients  []SubClientSummary `json:"subClients"`
}
