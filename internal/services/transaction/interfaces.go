package transaction

import (
	"context"

	"walletdesk/internal/models"

	"github.com/shopspring/decimal"
)

// Service manages the transaction lifecycle and its read side.
type Service interface {
	// CreateDeposit records a PENDING deposit intent. The wallet must
	// exist and be active for shopping. The balance is not touched.
	CreateDeposit(ctx context.Context, walletID uint, amount decimal.Decimal,
		oppositePartyType models.OppositePartyType, oppositeParty string) (*models.Transaction, error)

	// CreateWithdraw records a PENDING withdrawal intent. The wallet must
	// exist, be active for withdraw, and currently cover the amount. The
	// check is advisory only; nothing is reserved until approval.
	CreateWithdraw(ctx context.Context, walletID uint, amount decimal.Decimal,
		oppositePartyType models.OppositePartyType, oppositeParty string) (*models.Transaction, error)

	// Approve flips a PENDING transaction to APPROVED and applies the
	// ledger mutation atomically; a ledger failure rolls the status back.
	Approve(ctx context.Context, id uint) (*models.Transaction, error)

	// Deny flips a PENDING transaction to DENIED. No ledger effect.
	Deny(ctx context.Context, id uint) (*models.Transaction, error)

	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	ListByWallet(ctx context.Context, walletID uint) ([]*models.Transaction, error)
	ListByWalletAndStatus(ctx context.Context, walletID uint, status models.TransactionStatus) ([]*models.Transaction, error)
	ListByWalletAndType(ctx context.Context, walletID uint, txType models.TransactionType) ([]*models.Transaction, error)
	ListByStatus(ctx context.Context, status models.TransactionStatus) ([]*models.Transaction, error)
	ListByType(ctx context.Context, txType models.TransactionType) ([]*models.Transaction, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*models.Transaction, error)
	ListPending(ctx context.Context) ([]*models.Transaction, error)
	ListAll(ctx context.Context) ([]*models.Transaction, error)
}
