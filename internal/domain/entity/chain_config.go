package entity

// DefaultSDKLogLevel is the log level every ClientConfig is built with.
const DefaultSDKLogLevel = "info"

// AssetEntry is an asset as seen by the SDK on one domain.
type AssetEntry struct {
	Name              string  `json:"name" yaml:"name"`
	Address           string  `json:"address" yaml:"address"`
	Symbol            string  `json:"symbol" yaml:"symbol"`
	MainnetEquivalent *string `json:"mainnetEquivalent,omitempty" yaml:"mainnetEquivalent,omitempty"` // always nil for now
}

// ChainConfigEntry is the per-domain part of the SDK configuration.
type ChainConfigEntry struct {
	Providers []string     `json:"providers" yaml:"providers"`
	Assets    []AssetEntry `json:"assets" yaml:"assets"`
}

// ChainsConfig maps a domain id to its configuration entry.
type ChainsConfig map[string]ChainConfigEntry

// ClientConfig is everything the SDK factory needs to construct a client.
// It is built once per initialization run and never modified afterwards.
type ClientConfig struct {
	Chains      ChainsConfig `json:"chains" yaml:"chains"`
	LogLevel    string       `json:"logLevel" yaml:"logLevel"`
	Network     Network      `json:"network,omitempty" yaml:"network,omitempty"`
	Environment Environment  `json:"environment,omitempty" yaml:"environment,omitempty"`
}

// Domains returns the domain ids present in the config, in no particular order.
func (c ClientConfig) Domains() []string {
	out := make([]string, 0, len(c.Chains))
	for domain := range c.Chains {
		out = append(out, domain)
	}
	return out
}
