package repositories

import (
	"fmt"

	"walletdesk/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository builds a gorm-backed wallet store.
func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(wallet *models.Wallet) error {
	if err := r.db.Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) GetByID(id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.First(&wallet, id).Error; err != nil {
		return nil, translateError(err, "wallet", id, "", "")
	}
	return &wallet, nil
}

// GetByIDForUpdate loads the wallet under SELECT ... FOR UPDATE so concurrent
// balance mutations against the same row serialize.
func (r *walletRepository) GetByIDForUpdate(id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&wallet, id).Error
	if err != nil {
		return nil, translateError(err, "wallet", id, "", "")
	}
	return &wallet, nil
}

func (r *walletRepository) GetByCustomerID(customerID uint) ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	if err := r.db.Where("customer_id = ?", customerID).Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to get wallets by customer: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) GetByCustomerIDAndCurrency(customerID uint, currency models.Currency) ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	err := r.db.Where("customer_id = ? AND currency = ?", customerID, currency).Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get wallets by customer and currency: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) GetByCurrency(currency models.Currency) ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	if err := r.db.Where("currency = ?", currency).Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to get wallets by currency: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) GetByActiveForShopping(active bool) ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	if err := r.db.Where("active_for_shopping = ?", active).Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to get wallets by shopping flag: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) GetByActiveForWithdraw(active bool) ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	if err := r.db.Where("active_for_withdraw = ?", active).Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to get wallets by withdraw flag: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) GetAll() ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	if err := r.db.Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to get wallets: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) Update(wallet *models.Wallet) error {
	if err := r.db.Save(wallet).Error; err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Wallet{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "wallet", id, "", "")
	}
	return nil
}

func (r *walletRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Wallet{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check wallet existence: %w", err)
	}
	return count > 0, nil
}

func (r *walletRepository) ExecuteInTransaction(fn func(WalletRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&walletRepository{db: tx})
	})
}
