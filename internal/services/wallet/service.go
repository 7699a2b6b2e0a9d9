// Package wallet manages wallet records: creation, activity flags, deletion
// and the read side. Balances are out of its reach; only the ledger service
// mutates money.
package wallet

import (
	"context"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories"

	"github.com/shopspring/decimal"
)

// Cache is the read cache in front of the wallet store.
type Cache interface {
	GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error)
	CacheWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, walletID uint) error
}

// Service manages wallet records.
type Service interface {
	Create(ctx context.Context, customerID uint, name string, currency models.Currency) (*models.Wallet, error)
	GetByID(ctx context.Context, id uint) (*models.Wallet, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*models.Wallet, error)
	ListByCustomerAndCurrency(ctx context.Context, customerID uint, currency models.Currency) ([]*models.Wallet, error)
	ListByCurrency(ctx context.Context, currency models.Currency) ([]*models.Wallet, error)
	ListByActiveForShopping(ctx context.Context, active bool) ([]*models.Wallet, error)
	ListByActiveForWithdraw(ctx context.Context, active bool) ([]*models.Wallet, error)
	ListAll(ctx context.Context) ([]*models.Wallet, error)
	UpdateStatus(ctx context.Context, walletID uint, activeForShopping, activeForWithdraw bool) (*models.Wallet, error)
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type service struct {
	repo      repositories.WalletRepository
	customers repositories.CustomerRepository
	cache     Cache
}

// NewService creates a new wallet management service. Cache is optional.
func NewService(repo repositories.WalletRepository, customers repositories.CustomerRepository, cache Cache) Service {
	if repo == nil {
		panic("repo is required")
	}
	if customers == nil {
		panic("customer repo is required")
	}
	return &service{
		repo:      repo,
		customers: customers,
		cache:     cache,
	}
}

// Create opens a wallet for an existing customer. The balance starts at zero
// no matter what the caller supplies.
func (s *service) Create(ctx context.Context, customerID uint, name string, currency models.Currency) (*models.Wallet, error) {
	if !currency.Valid() {
		return nil, domain.NewInvalidState("unsupported currency")
	}

	ok, err := s.customers.Exists(customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewNotFound("customer", customerID)
	}

	wallet := &models.Wallet{
		CustomerID:        customerID,
		Name:              name,
		Currency:          currency,
		ActiveForShopping: true,
		ActiveForWithdraw: true,
		Balance:           decimal.Zero,
	}
	if err := s.repo.Create(wallet); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.CacheWallet(ctx, wallet)
	}
	return wallet, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.Wallet, error) {
	if s.cache != nil {
		if w, err := s.cache.GetWallet(ctx, id); err == nil && w != nil {
			return w, nil
		}
	}

	wallet, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.CacheWallet(ctx, wallet)
	}
	return wallet, nil
}

func (s *service) ListByCustomer(ctx context.Context, customerID uint) ([]*models.Wallet, error) {
	return s.repo.GetByCustomerID(customerID)
}

func (s *service) ListByCustomerAndCurrency(ctx context.Context, customerID uint, currency models.Currency) ([]*models.Wallet, error) {
	return s.repo.GetByCustomerIDAndCurrency(customerID, currency)
}

func (s *service) ListByCurrency(ctx context.Context, currency models.Currency) ([]*models.Wallet, error) {
	return s.repo.GetByCurrency(currency)
}

func (s *service) ListByActiveForShopping(ctx context.Context, active bool) ([]*models.Wallet, error) {
	return s.repo.GetByActiveForShopping(active)
}

func (s *service) ListByActiveForWithdraw(ctx context.Context, active bool) ([]*models.Wallet, error) {
	return s.repo.GetByActiveForWithdraw(active)
}

func (s *service) ListAll(ctx context.Context) ([]*models.Wallet, error) {
	return s.repo.GetAll()
}

// UpdateStatus flips the activity flags gating transaction creation.
func (s *service) UpdateStatus(ctx context.Context, walletID uint, activeForShopping, activeForWithdraw bool) (*models.Wallet, error) {
	wallet, err := s.repo.GetByID(walletID)
	if err != nil {
		return nil, err
	}

	wallet.ActiveForShopping = activeForShopping
	wallet.ActiveForWithdraw = activeForWithdraw
	if err := s.repo.Update(wallet); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateWallet(ctx, walletID)
	}
	return wallet, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateWallet(ctx, id)
	}
	return nil
}

func (s *service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.repo.Exists(id)
}
