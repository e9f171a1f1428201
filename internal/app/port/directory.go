package port

import (
	"context"

	"bridge_sdk/internal/domain/entity"
)

// ChainSource loads the chain list from wherever the directory keeps it.
type ChainSource interface {
	LoadChains(ctx context.Context) ([]entity.ChainRecord, error)
}

// AssetSource loads the asset list from wherever the directory keeps it.
type AssetSource interface {
	LoadAssets(ctx context.Context) ([]entity.AssetRecord, error)
}
