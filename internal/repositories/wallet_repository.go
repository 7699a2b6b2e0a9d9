package repositories

import "walletdesk/internal/models"

// WalletRepository is the persistence contract for wallet records.
//
// GetByIDForUpdate takes a row lock and is only meaningful inside
// ExecuteInTransaction; callers use it to serialize read-modify-write cycles
// on a single wallet's balance.
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByID(id uint) (*models.Wallet, error)
	GetByIDForUpdate(id uint) (*models.Wallet, error)
	GetByCustomerID(customerID uint) ([]*models.Wallet, error)
	GetByCustomerIDAndCurrency(customerID uint, currency models.Currency) ([]*models.Wallet, error)
	GetByCurrency(currency models.Currency) ([]*models.Wallet, error)
	GetByActiveForShopping(active bool) ([]*models.Wallet, error)
	GetByActiveForWithdraw(active bool) ([]*models.Wallet, error)
	GetAll() ([]*models.Wallet, error)
	Update(wallet *models.Wallet) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
	ExecuteInTransaction(fn func(WalletRepository) error) error
}
