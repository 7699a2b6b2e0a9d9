package ledger

import (
	"context"
	"errors"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories"

	"github.com/shopspring/decimal"
)

type service struct {
	repo    repositories.WalletRepository
	cache   CacheInvalidator
	metrics MetricsCollector
}

// NewService creates a new ledger service. Cache is optional; metrics falls
// back to a no-op collector when nil.
func NewService(repo repositories.WalletRepository, cache CacheInvalidator, metrics MetricsCollector) Service {
	if repo == nil {
		panic("repo is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
	}
}

func (s *service) SetBalance(ctx context.Context, walletID uint, amount decimal.Decimal) (*models.Wallet, error) {
	var wallet *models.Wallet
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		w, err := tx.GetByIDForUpdate(walletID)
		if err != nil {
			return err
		}
		w.Balance = amount
		if err := tx.Update(w); err != nil {
			return err
		}
		wallet = w
		return nil
	})
	if err != nil {
		s.metrics.RecordError("set_balance", errType(err))
		return nil, err
	}

	s.invalidate(ctx, walletID)
	s.metrics.RecordMutation("set_balance", amount)
	return wallet, nil
}

func (s *service) Credit(ctx context.Context, walletID uint, amount decimal.Decimal) (*models.Wallet, error) {
	var wallet *models.Wallet
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		w, err := s.CreditTx(tx, walletID, amount)
		if err != nil {
			return err
		}
		wallet = w
		return nil
	})
	if err != nil {
		s.metrics.RecordError("credit", errType(err))
		return nil, err
	}

	s.invalidate(ctx, walletID)
	s.metrics.RecordMutation("credit", amount)
	return wallet, nil
}

func (s *service) Debit(ctx context.Context, walletID uint, amount decimal.Decimal) (*models.Wallet, error) {
	var wallet *models.Wallet
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		w, err := s.DebitTx(tx, walletID, amount)
		if err != nil {
			return err
		}
		wallet = w
		return nil
	})
	if err != nil {
		s.metrics.RecordError("debit", errType(err))
		return nil, err
	}

	s.invalidate(ctx, walletID)
	s.metrics.RecordMutation("debit", amount)
	return wallet, nil
}

// CreditTx applies a credit against a caller-owned store transaction. The
// row lock taken by GetByIDForUpdate holds until the caller commits.
func (s *service) CreditTx(repo repositories.WalletRepository, walletID uint, amount decimal.Decimal) (*models.Wallet, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	w, err := repo.GetByIDForUpdate(walletID)
	if err != nil {
		return nil, err
	}

	w.Balance = w.Balance.Add(amount)
	if err := repo.Update(w); err != nil {
		return nil, err
	}
	return w, nil
}

// DebitTx applies a debit against a caller-owned store transaction, failing
// with InsufficientFunds when the locked balance cannot cover the amount.
func (s *service) DebitTx(repo repositories.WalletRepository, walletID uint, amount decimal.Decimal) (*models.Wallet, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	w, err := repo.GetByIDForUpdate(walletID)
	if err != nil {
		return nil, err
	}

	if w.Balance.Cmp(amount) < 0 {
		return nil, domain.NewInsufficientFunds(w.Balance, amount)
	}

	w.Balance = w.Balance.Sub(amount)
	if err := repo.Update(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *service) IsOwnedBy(ctx context.Context, walletID, customerID uint) (bool, error) {
	w, err := s.repo.GetByID(walletID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return w.CustomerID == customerID, nil
}

func (s *service) invalidate(ctx context.Context, walletID uint) {
	if s.cache != nil {
		// Best effort; a stale read heals on the next invalidation.
		_ = s.cache.InvalidateWallet(ctx, walletID)
	}
}

func errType(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	default:
		return "store_failure"
	}
}
