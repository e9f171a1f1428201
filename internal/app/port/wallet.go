package port

import "bridge_sdk/internal/domain/entity"

// WalletSource supplies the wallet identity the service starts with.
type WalletSource interface {
	GetWallet() (entity.WalletIdentity, error)
}
