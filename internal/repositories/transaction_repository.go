package repositories

import "walletdesk/internal/models"

// TransactionRepository is the persistence contract for transaction records.
// Transactions are never deleted; the only mutation after creation is the
// status flip performed by the lifecycle service through Update.
//
// ExecuteInTransaction yields transaction- and wallet-scoped stores bound to
// the same database transaction, so an approval can flip the status and move
// the balance as one atomic unit.
type TransactionRepository interface {
	Create(txn *models.Transaction) error
	GetByID(id uint) (*models.Transaction, error)
	GetByIDForUpdate(id uint) (*models.Transaction, error)
	GetByWalletID(walletID uint) ([]*models.Transaction, error)
	GetByWalletIDAndStatus(walletID uint, status models.TransactionStatus) ([]*models.Transaction, error)
	GetByWalletIDAndType(walletID uint, txType models.TransactionType) ([]*models.Transaction, error)
	GetByStatus(status models.TransactionStatus) ([]*models.Transaction, error)
	GetByType(txType models.TransactionType) ([]*models.Transaction, error)
	GetByCustomerID(customerID uint) ([]*models.Transaction, error)
	GetAll() ([]*models.Transaction, error)
	Update(txn *models.Transaction) error
	ExecuteInTransaction(fn func(TransactionRepository, WalletRepository) error) error
}
