package directoryloader

import (
	"time"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/infrastructure/configloader"
	"bridge_sdk/internal/infrastructure/httpclient"
	networkdefinition "bridge_sdk/internal/infrastructure/network/definition"

	"go.uber.org/zap"
)

// Source kinds, as reported by SelectSources.
const (
	KindURL     = "url"
	KindFile    = "file"
	KindBuiltin = "builtin"
)

// Sources are the chain and asset sources picked for a configuration.
type Sources struct {
	Chains     port.ChainSource
	Assets     port.AssetSource
	ChainsKind string
	AssetsKind string
}

// SelectSources picks a source for each list independently: a URL wins over a
// file, and with neither the built-in definitions are used.
func SelectSources(cfg *configloader.Config, zapLogger *zap.Logger, logger port.Logger) Sources {
	dir := cfg.Directory

	var remote *httpclient.DirectoryClient
	if dir.ChainsURL != "" || dir.AssetsURL != "" {
		remote = httpclient.NewDirectoryClient(
			dir.ChainsURL,
			dir.AssetsURL,
			time.Duration(dir.RequestTimeoutMillis)*time.Millisecond,
			cfg.RpcClient.RateLimit,
			cfg.RpcClient.BurstLimit,
			zapLogger,
			httpclient.WithRetry(uint(dir.RetryAttempts), 0),
		)
	}

	var files *FileLoader
	if dir.ChainsFile != "" || dir.AssetsFile != "" {
		files = NewFileLoader(dir.ChainsFile, dir.AssetsFile, logger)
	}

	var builtin *networkdefinition.NetworkDefinitionProvider
	if (dir.ChainsURL == "" && dir.ChainsFile == "") || (dir.AssetsURL == "" && dir.AssetsFile == "") {
		builtin = networkdefinition.NewNetworkDefinitionProvider(logger)
	}

	var out Sources
	switch {
	case dir.ChainsURL != "":
		out.Chains, out.ChainsKind = remote, KindURL
	case dir.ChainsFile != "":
		out.Chains, out.ChainsKind = files, KindFile
	default:
		out.Chains, out.ChainsKind = builtin, KindBuiltin
	}
	switch {
	case dir.AssetsURL != "":
		out.Assets, out.AssetsKind = remote, KindURL
	case dir.AssetsFile != "":
		out.Assets, out.AssetsKind = files, KindFile
	default:
		out.Assets, out.AssetsKind = builtin, KindBuiltin
	}

	logger.Info("Directory sources selected", "chains", out.ChainsKind, "assets", out.AssetsKind)
	return out
}
