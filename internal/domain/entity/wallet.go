package entity

// Handle is an opaque reference to a wallet-side object (provider, signer).
// The core only checks whether it is present and whether it changed.
type Handle string

// WalletIdentity is the state of the connected wallet.
type WalletIdentity struct {
	Address      string `json:"address,omitempty"`
	Web3Provider Handle `json:"web3Provider,omitempty"`
	Provider     Handle `json:"provider,omitempty"`
	Signer       Handle `json:"signer,omitempty"`
}

// Connected reports whether an account address is available.
func (w WalletIdentity) Connected() bool {
	return w.Address != ""
}
