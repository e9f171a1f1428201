package directoryloader

import (
	"context"
	"fmt"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/domain/entity"
	"bridge_sdk/internal/pkg/utils"
)

// FileLoader reads chain and asset lists from JSON files.
// An empty path makes the matching Load method fail.
type FileLoader struct {
	chainsPath string
	assetsPath string
	logger     port.Logger
}

var (
	_ port.ChainSource = (*FileLoader)(nil)
	_ port.AssetSource = (*FileLoader)(nil)
)

// NewFileLoader creates a new FileLoader.
func NewFileLoader(chainsPath, assetsPath string, logger port.Logger) *FileLoader {
	return &FileLoader{chainsPath: chainsPath, assetsPath: assetsPath, logger: logger}
}

// LoadChains implements port.ChainSource. Chains whose domain id is missing are
// kept: it is up to the config builder to skip them.
func (l *FileLoader) LoadChains(_ context.Context) ([]entity.ChainRecord, error) {
	if l.chainsPath == "" {
		return nil, fmt.Errorf("chains file is not configured")
	}
	chains, err := utils.ReadJSONFile[[]entity.ChainRecord](l.chainsPath)
	if err != nil {
		return nil, err
	}
	if chains == nil {
		chains = []entity.ChainRecord{}
	}

	unroutable := 0
	for _, c := range chains {
		if c.DomainID == "" {
			unroutable++
		}
	}
	l.logger.Info("Chains loaded from file", "path", l.chainsPath, "count", len(chains), "without_domain", unroutable)
	return chains, nil
}

// LoadAssets implements port.AssetSource.
func (l *FileLoader) LoadAssets(_ context.Context) ([]entity.AssetRecord, error) {
	if l.assetsPath == "" {
		return nil, fmt.Errorf("assets file is not configured")
	}
	assets, err := utils.ReadJSONFile[[]entity.AssetRecord](l.assetsPath)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []entity.AssetRecord{}
	}

	for _, a := range assets {
		if len(a.Contracts) == 0 {
			l.logger.Warn("Asset has no contracts and will not appear on any chain", "path", l.assetsPath, "symbol", a.Symbol)
		}
	}
	l.logger.Info("Assets loaded from file", "path", l.assetsPath, "count", len(assets))
	return assets, nil
}
