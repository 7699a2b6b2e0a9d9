package transaction

import (
	"context"
	"sync"
	"testing"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories"
	"walletdesk/internal/repositories/memory"
	"walletdesk/internal/services/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   *memory.Store
	wallets repositories.WalletRepository
	svc     Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	wallets := store.Wallets()
	txns := store.Transactions()
	ledgerSvc := ledger.NewService(wallets, nil, nil)
	return &fixture{
		store:   store,
		wallets: wallets,
		svc:     NewService(txns, wallets, ledgerSvc, nil),
	}
}

func (f *fixture) seedWallet(t *testing.T, balance string) *models.Wallet {
	t.Helper()
	w := &models.Wallet{
		CustomerID:        1,
		Name:              "main",
		Currency:          models.CurrencyTRY,
		ActiveForShopping: true,
		ActiveForWithdraw: true,
		Balance:           decimal.RequireFromString(balance),
	}
	require.NoError(t, f.wallets.Create(w))
	return w
}

func (f *fixture) balance(t *testing.T, walletID uint) decimal.Decimal {
	t.Helper()
	w, err := f.wallets.GetByID(walletID)
	require.NoError(t, err)
	return w.Balance
}

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreateDeposit(t *testing.T) {
	t.Run("records a pending intent without touching the balance", func(t *testing.T) {
		f := newFixture(t)
		w := f.seedWallet(t, "100.00")

		txn, err := f.svc.CreateDeposit(context.Background(), w.ID, amt("50.00"), models.OppositePartyIBAN, "TR330006100519786457841326")
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusPending, txn.Status)
		assert.Equal(t, models.TransactionTypeDeposit, txn.Type)
		assert.NotEmpty(t, txn.Reference)
		assert.True(t, f.balance(t, w.ID).Equal(amt("100.00")))
	})

	t.Run("rejects a wallet closed for shopping", func(t *testing.T) {
		f := newFixture(t)
		w := f.seedWallet(t, "100.00")
		w.ActiveForShopping = false
		require.NoError(t, f.wallets.Update(w))

		_, err := f.svc.CreateDeposit(context.Background(), w.ID, amt("50.00"), models.OppositePartyIBAN, "TR33")
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("rejects a missing wallet", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateDeposit(context.Background(), 42, amt("50.00"), models.OppositePartyIBAN, "TR33")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		f := newFixture(t)
		w := f.seedWallet(t, "100.00")

		_, err := f.svc.CreateDeposit(context.Background(), w.ID, amt("0"), models.OppositePartyIBAN, "TR33")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = f.svc.CreateDeposit(context.Background(), w.ID, amt("-1.00"), models.OppositePartyIBAN, "TR33")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("rejects an unknown opposite party type", func(t *testing.T) {
		f := newFixture(t)
		w := f.seedWallet(t, "100.00")

		_, err := f.svc.CreateDeposit(context.Background(), w.ID, amt("10.00"), models.OppositePartyType("CASH"), "desk 4")
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestCreateWithdraw(t *testing.T) {
	t.Run("rejects a wallet closed for withdraw", func(t *testing.T) {
		f := newFixture(t)
		w := f.seedWallet(t, "100.00")
		w.ActiveForWithdraw = false
		require.NoError(t, f.wallets.Update(w))

		_, err := f.svc.CreateWithdraw(context.Background(), w.ID, amt("50.00"), models.OppositePartyIBAN, "TR33")
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("rejects an amount over the current balance and persists nothing", func(t *testing.T) {
		f := newFixture(t)
		w := f.seedWallet(t, "100.00")

		_, err := f.svc.CreateWithdraw(context.Background(), w.ID, amt("300.00"), models.OppositePartyIBAN, "TR33")
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		txns, err := f.svc.ListByWallet(context.Background(), w.ID)
		require.NoError(t, err)
		assert.Empty(t, txns)
		assert.True(t, f.balance(t, w.ID).Equal(amt("100.00")))
	})

	t.Run("allows withdrawing the full balance", func(t *testing.T) {
		f := newFixture(t)
		w := f.seedWallet(t, "100.00")

		txn, err := f.svc.CreateWithdraw(context.Background(), w.ID, amt("100.00"), models.OppositePartyPayment, "order-991")
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusPending, txn.Status)
	})
}

func TestApproveAndDeny(t *testing.T) {
	t.Run("full lifecycle moves the balance only at approval", func(t *testing.T) {
		f := newFixture(t)
		w := f.seedWallet(t, "100.00")
		ctx := context.Background()

		dep, err := f.svc.CreateDeposit(ctx, w.ID, amt("50.00"), models.OppositePartyIBAN, "TR33")
		require.NoError(t, err)
		assert.True(t, f.balance(t, w.ID).Equal(amt("100.00")))

		approved, err := f.svc.Approve(ctx, dep.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusApproved, approved.Status)
		assert.True(t, f.balance(t, w.ID).Equal(amt("150.00")))

		wd, err := f.svc.CreateWithdraw(ctx, w.ID, amt("30.00"), models.OppositePartyPayment, "order-17")
		require.NoError(t, err)
		assert.True(t, f.balance(t, w.ID).Equal(amt("150.00")))

		_, err = f.svc.Approve(ctx, wd.ID)
		require.NoError(t, err)
		assert.True(t, f.balance(t, w.ID).Equal(amt("120.00")))
	})

	t.Run("deny never touches the balance", func(t *testing.T) {
		f := newFixture(t)
		w := f.seedWallet(t, "100.00")
		ctx := context.Background()

		dep, err := f.svc.CreateDeposit(ctx, w.ID, amt("50.00"), models.OppositePartyIBAN, "TR33")
		require.NoError(t, err)

		denied, err := f.svc.Deny(ctx, dep.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusDenied, denied.Status)
		assert.True(t, f.balance(t, w.ID).Equal(amt("100.00")))
	})

	t.Run("approved and denied are terminal", func(t *testing.T) {
		f := newFixture(t)
		w := f.seedWallet(t, "100.00")
		ctx := context.Background()

		dep, err := f.svc.CreateDeposit(ctx, w.ID, amt("50.00"), models.OppositePartyIBAN, "TR33")
		require.NoError(t, err)
		_, err = f.svc.Approve(ctx, dep.ID)
		require.NoError(t, err)

		_, err = f.svc.Approve(ctx, dep.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		_, err = f.svc.Deny(ctx, dep.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidState)

		// Double approval must not double-credit.
		assert.True(t, f.balance(t, w.ID).Equal(amt("150.00")))
	})

	t.Run("approving a missing transaction fails", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Approve(context.Background(), 42)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("a failed debit rolls the approval back", func(t *testing.T) {
		f := newFixture(t)
		w := f.seedWallet(t, "100.00")
		ctx := context.Background()

		wd, err := f.svc.CreateWithdraw(ctx, w.ID, amt("80.00"), models.OppositePartyIBAN, "TR33")
		require.NoError(t, err)

		// Drain the wallet between creation and approval.
		drained, err := f.wallets.GetByID(w.ID)
		require.NoError(t, err)
		drained.Balance = amt("10.00")
		require.NoError(t, f.wallets.Update(drained))

		_, err = f.svc.Approve(ctx, wd.ID)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		// The status flip was rolled back with the balance mutation, so the
		// transaction is still reviewable.
		stored, err := f.svc.GetByID(ctx, wd.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusPending, stored.Status)
		assert.True(t, f.balance(t, w.ID).Equal(amt("10.00")))
	})
}

func TestApprove_ConcurrentWithdrawals(t *testing.T) {
	f := newFixture(t)
	w := f.seedWallet(t, "100.00")
	ctx := context.Background()

	first, err := f.svc.CreateWithdraw(ctx, w.ID, amt("80.00"), models.OppositePartyIBAN, "TR33")
	require.NoError(t, err)
	second, err := f.svc.CreateWithdraw(ctx, w.ID, amt("80.00"), models.OppositePartyIBAN, "TR34")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []uint{first.ID, second.ID} {
		wg.Add(1)
		go func(i int, id uint) {
			defer wg.Done()
			_, errs[i] = f.svc.Approve(ctx, id)
		}(i, id)
	}
	wg.Wait()

	// Exactly one approval wins; the loser fails on the re-check under lock.
	if errs[0] == nil {
		assert.ErrorIs(t, errs[1], domain.ErrInsufficientFunds)
	} else {
		assert.ErrorIs(t, errs[0], domain.ErrInsufficientFunds)
		assert.NoError(t, errs[1])
	}
	assert.True(t, f.balance(t, w.ID).Equal(amt("20.00")))
}

func TestListQueries(t *testing.T) {
	f := newFixture(t)
	w := f.seedWallet(t, "100.00")
	ctx := context.Background()

	dep, err := f.svc.CreateDeposit(ctx, w.ID, amt("10.00"), models.OppositePartyIBAN, "TR33")
	require.NoError(t, err)
	_, err = f.svc.CreateWithdraw(ctx, w.ID, amt("20.00"), models.OppositePartyPayment, "order-1")
	require.NoError(t, err)
	_, err = f.svc.Approve(ctx, dep.ID)
	require.NoError(t, err)

	pending, err := f.svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	deposits, err := f.svc.ListByWalletAndType(ctx, w.ID, models.TransactionTypeDeposit)
	require.NoError(t, err)
	assert.Len(t, deposits, 1)

	approved, err := f.svc.ListByStatus(ctx, models.TransactionStatusApproved)
	require.NoError(t, err)
	assert.Len(t, approved, 1)

	byCustomer, err := f.svc.ListByCustomer(ctx, w.CustomerID)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 2)

	all, err := f.svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
