package ledger

import (
	"context"

	"walletdesk/internal/models"
	"walletdesk/internal/repositories"

	"github.com/shopspring/decimal"
)

// Service mutates wallet balances under per-wallet serialization.
type Service interface {
	// SetBalance unconditionally overwrites the balance. No negativity
	// check is performed; this is an administrative override.
	SetBalance(ctx context.Context, walletID uint, amount decimal.Decimal) (*models.Wallet, error)

	// Credit adds amount to the balance. Amount must be positive.
	Credit(ctx context.Context, walletID uint, amount decimal.Decimal) (*models.Wallet, error)

	// Debit subtracts amount from the balance, failing with
	// InsufficientFunds when balance < amount. Amount must be positive.
	Debit(ctx context.Context, walletID uint, amount decimal.Decimal) (*models.Wallet, error)

	// IsOwnedBy reports whether the wallet belongs to the customer;
	// false, not an error, when the wallet is absent.
	IsOwnedBy(ctx context.Context, walletID, customerID uint) (bool, error)

	// CreditTx and DebitTx apply the same mutations against a
	// caller-owned store transaction; the caller commits or rolls back.
	CreditTx(repo repositories.WalletRepository, walletID uint, amount decimal.Decimal) (*models.Wallet, error)
	DebitTx(repo repositories.WalletRepository, walletID uint, amount decimal.Decimal) (*models.Wallet, error)
}

// CacheInvalidator drops cached wallet reads after a committed mutation.
type CacheInvalidator interface {
	InvalidateWallet(ctx context.Context, walletID uint) error
}
