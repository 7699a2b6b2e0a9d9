package transaction

import (
	"context"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories"
	"walletdesk/internal/services/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type service struct {
	txns    repositories.TransactionRepository
	wallets repositories.WalletRepository
	ledger  ledger.Service
	cache   ledger.CacheInvalidator
}

// NewService creates a new transaction lifecycle service. Cache is optional.
func NewService(
	txns repositories.TransactionRepository,
	wallets repositories.WalletRepository,
	ledgerSvc ledger.Service,
	cache ledger.CacheInvalidator,
) Service {
	if txns == nil {
		panic("transaction repo is required")
	}
	if wallets == nil {
		panic("wallet repo is required")
	}
	if ledgerSvc == nil {
		panic("ledger service is required")
	}
	return &service{
		txns:    txns,
		wallets: wallets,
		ledger:  ledgerSvc,
		cache:   cache,
	}
}

func (s *service) CreateDeposit(ctx context.Context, walletID uint, amount decimal.Decimal,
	oppositePartyType models.OppositePartyType, oppositeParty string) (*models.Transaction, error) {

	if err := validateCreate(amount, oppositePartyType); err != nil {
		return nil, err
	}

	wallet, err := s.wallets.GetByID(walletID)
	if err != nil {
		return nil, err
	}
	if !wallet.ActiveForShopping {
		return nil, domain.NewInvalidState("wallet is not active for shopping")
	}

	txn := s.newTransaction(walletID, amount, models.TransactionTypeDeposit, oppositePartyType, oppositeParty)
	if err := s.txns.Create(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *service) CreateWithdraw(ctx context.Context, walletID uint, amount decimal.Decimal,
	oppositePartyType models.OppositePartyType, oppositeParty string) (*models.Transaction, error) {

	if err := validateCreate(amount, oppositePartyType); err != nil {
		return nil, err
	}

	wallet, err := s.wallets.GetByID(walletID)
	if err != nil {
		return nil, err
	}
	if !wallet.ActiveForWithdraw {
		return nil, domain.NewInvalidState("wallet is not active for withdraw")
	}

	// Advisory check against the current balance. Nothing is held, so a
	// later approval re-checks under the row lock.
	if wallet.Balance.Cmp(amount) < 0 {
		return nil, domain.NewInsufficientFunds(wallet.Balance, amount)
	}

	txn := s.newTransaction(walletID, amount, models.TransactionTypeWithdraw, oppositePartyType, oppositeParty)
	if err := s.txns.Create(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// Approve flips the status and applies the ledger mutation in one store
// transaction. The transaction row is locked first so concurrent approvals
// of the same id serialize; the wallet row lock inside CreditTx/DebitTx does
// the same for the balance. Any failure rolls both writes back.
func (s *service) Approve(ctx context.Context, id uint) (*models.Transaction, error) {
	var approved *models.Transaction
	err := s.txns.ExecuteInTransaction(func(ttx repositories.TransactionRepository, wtx repositories.WalletRepository) error {
		txn, err := ttx.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if !txn.IsPending() {
			return domain.NewInvalidState("transaction is not pending")
		}

		txn.Status = models.TransactionStatusApproved
		if err := ttx.Update(txn); err != nil {
			return err
		}

		switch txn.Type {
		case models.TransactionTypeDeposit:
			if _, err := s.ledger.CreditTx(wtx, txn.WalletID, txn.Amount); err != nil {
				return err
			}
		case models.TransactionTypeWithdraw:
			if _, err := s.ledger.DebitTx(wtx, txn.WalletID, txn.Amount); err != nil {
				return err
			}
		}

		approved = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, approved.WalletID)
	return approved, nil
}

func (s *service) Deny(ctx context.Context, id uint) (*models.Transaction, error) {
	var denied *models.Transaction
	err := s.txns.ExecuteInTransaction(func(ttx repositories.TransactionRepository, _ repositories.WalletRepository) error {
		txn, err := ttx.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if !txn.IsPending() {
			return domain.NewInvalidState("transaction is not pending")
		}

		txn.Status = models.TransactionStatusDenied
		if err := ttx.Update(txn); err != nil {
			return err
		}

		denied = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return denied, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	return s.txns.GetByID(id)
}

func (s *service) ListByWallet(ctx context.Context, walletID uint) ([]*models.Transaction, error) {
	return s.txns.GetByWalletID(walletID)
}

func (s *service) ListByWalletAndStatus(ctx context.Context, walletID uint, status models.TransactionStatus) ([]*models.Transaction, error) {
	return s.txns.GetByWalletIDAndStatus(walletID, status)
}

func (s *service) ListByWalletAndType(ctx context.Context, walletID uint, txType models.TransactionType) ([]*models.Transaction, error) {
	return s.txns.GetByWalletIDAndType(walletID, txType)
}

func (s *service) ListByStatus(ctx context.Context, status models.TransactionStatus) ([]*models.Transaction, error) {
	return s.txns.GetByStatus(status)
}

func (s *service) ListByType(ctx context.Context, txType models.TransactionType) ([]*models.Transaction, error) {
	return s.txns.GetByType(txType)
}

func (s *service) ListByCustomer(ctx context.Context, customerID uint) ([]*models.Transaction, error) {
	return s.txns.GetByCustomerID(customerID)
}

func (s *service) ListPending(ctx context.Context) ([]*models.Transaction, error) {
	return s.txns.GetByStatus(models.TransactionStatusPending)
}

func (s *service) ListAll(ctx context.Context) ([]*models.Transaction, error) {
	return s.txns.GetAll()
}

func (s *service) newTransaction(walletID uint, amount decimal.Decimal, txType models.TransactionType,
	oppositePartyType models.OppositePartyType, oppositeParty string) *models.Transaction {
	return &models.Transaction{
		WalletID:          walletID,
		Amount:            amount,
		Type:              txType,
		OppositePartyType: oppositePartyType,
		OppositeParty:     oppositeParty,
		Status:            models.TransactionStatusPending,
		Reference:         uuid.NewString(),
	}
}

func (s *service) invalidate(ctx context.Context, walletID uint) {
	if s.cache != nil {
		_ = s.cache.InvalidateWallet(ctx, walletID)
	}
}

func validateCreate(amount decimal.Decimal, oppositePartyType models.OppositePartyType) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if !oppositePartyType.Valid() {
		return domain.NewInvalidState("invalid opposite party type")
	}
	return nil
}
