package repositories

import (
	"fmt"

	"walletdesk/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository builds a gorm-backed transaction store.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(txn *models.Transaction) error {
	if err := r.db.Create(txn).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.db.First(&txn, id).Error; err != nil {
		return nil, translateError(err, "transaction", id, "", "")
	}
	return &txn, nil
}

// GetByIDForUpdate locks the transaction row so two concurrent approvals of
// the same transaction serialize instead of both observing PENDING.
func (r *transactionRepository) GetByIDForUpdate(id uint) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&txn, id).Error
	if err != nil {
		return nil, translateError(err, "transaction", id, "", "")
	}
	return &txn, nil
}

func (r *transactionRepository) GetByWalletID(walletID uint) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.Where("wallet_id = ?", walletID).Order("created_at DESC").Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions by wallet: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) GetByWalletIDAndStatus(walletID uint, status models.TransactionStatus) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.Where("wallet_id = ? AND status = ?", walletID, status).
		Order("created_at DESC").Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions by wallet and status: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) GetByWalletIDAndType(walletID uint, txType models.TransactionType) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.Where("wallet_id = ? AND type = ?", walletID, txType).
		Order("created_at DESC").Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions by wallet and type: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) GetByStatus(status models.TransactionStatus) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions by status: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) GetByType(txType models.TransactionType) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.Where("type = ?", txType).Order("created_at DESC").Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions by type: %w", err)
	}
	return txns, nil
}

// GetByCustomerID joins through wallet ownership; transactions do not
// reference customers directly.
func (r *transactionRepository) GetByCustomerID(customerID uint) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.
		Joins("JOIN wallets ON wallets.id = transactions.wallet_id").
		Where("wallets.customer_id = ?", customerID).
		Order("transactions.created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions by customer: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) GetAll() ([]*models.Transaction, error) {
	var txns []*models.Transaction
	if err := r.db.Order("created_at DESC").Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) Update(txn *models.Transaction) error {
	if err := r.db.Save(txn).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) ExecuteInTransaction(fn func(TransactionRepository, WalletRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&transactionRepository{db: tx}, &walletRepository{db: tx})
	})
}
