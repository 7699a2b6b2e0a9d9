package wallet

import (
	"context"
	"testing"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is an always-consistent map cache for exercising the read path.
type fakeCache struct {
	wallets map[uint]*models.Wallet
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{wallets: make(map[uint]*models.Wallet)}
}

func (c *fakeCache) GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error) {
	w, ok := c.wallets[walletID]
	if !ok {
		return nil, nil
	}
	c.hits++
	return w, nil
}

func (c *fakeCache) CacheWallet(ctx context.Context, wallet *models.Wallet) error {
	c.wallets[wallet.ID] = wallet
	return nil
}

func (c *fakeCache) InvalidateWallet(ctx context.Context, walletID uint) error {
	delete(c.wallets, walletID)
	return nil
}

func newWalletFixture(t *testing.T) (*memory.Store, Service) {
	t.Helper()
	store := memory.NewStore()
	return store, NewService(store.Wallets(), store.Customers(), nil)
}

func seedCustomer(t *testing.T, store *memory.Store) *models.Customer {
	t.Helper()
	c := &models.Customer{NationalID: "12345678901", Name: "Ayse", Surname: "Yilmaz"}
	require.NoError(t, store.Customers().Create(c))
	return c
}

func TestWalletCreate(t *testing.T) {
	t.Run("starts at zero balance with both flags on", func(t *testing.T) {
		store, svc := newWalletFixture(t)
		c := seedCustomer(t, store)

		w, err := svc.Create(context.Background(), c.ID, "daily", models.CurrencyTRY)
		require.NoError(t, err)
		assert.True(t, w.Balance.IsZero())
		assert.True(t, w.ActiveForShopping)
		assert.True(t, w.ActiveForWithdraw)
		assert.True(t, w.UsableBalance().IsZero())
	})

	t.Run("rejects an unknown customer", func(t *testing.T) {
		_, svc := newWalletFixture(t)
		_, err := svc.Create(context.Background(), 42, "daily", models.CurrencyTRY)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rejects an unsupported currency", func(t *testing.T) {
		store, svc := newWalletFixture(t)
		c := seedCustomer(t, store)
		_, err := svc.Create(context.Background(), c.ID, "daily", models.Currency("GBP"))
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestWalletQueries(t *testing.T) {
	store, svc := newWalletFixture(t)
	c := seedCustomer(t, store)
	ctx := context.Background()

	_, err := svc.Create(ctx, c.ID, "try wallet", models.CurrencyTRY)
	require.NoError(t, err)
	usd, err := svc.Create(ctx, c.ID, "usd wallet", models.CurrencyUSD)
	require.NoError(t, err)

	byCustomer, err := svc.ListByCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 2)

	usdOnly, err := svc.ListByCustomerAndCurrency(ctx, c.ID, models.CurrencyUSD)
	require.NoError(t, err)
	require.Len(t, usdOnly, 1)
	assert.Equal(t, usd.ID, usdOnly[0].ID)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestWalletUpdateStatus(t *testing.T) {
	store, svc := newWalletFixture(t)
	c := seedCustomer(t, store)
	ctx := context.Background()

	w, err := svc.Create(ctx, c.ID, "daily", models.CurrencyEUR)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, w.ID, false, true)
	require.NoError(t, err)
	assert.False(t, updated.ActiveForShopping)
	assert.True(t, updated.ActiveForWithdraw)

	closed, err := svc.ListByActiveForShopping(ctx, false)
	require.NoError(t, err)
	assert.Len(t, closed, 1)
}

func TestWalletDelete(t *testing.T) {
	store, svc := newWalletFixture(t)
	c := seedCustomer(t, store)
	ctx := context.Background()

	w, err := svc.Create(ctx, c.ID, "daily", models.CurrencyTRY)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, w.ID))
	_, err = svc.GetByID(ctx, w.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, w.ID), domain.ErrNotFound)
}

func TestWalletCacheReadPath(t *testing.T) {
	store := memory.NewStore()
	cache := newFakeCache()
	svc := NewService(store.Wallets(), store.Customers(), cache)
	c := seedCustomer(t, store)
	ctx := context.Background()

	w, err := svc.Create(ctx, c.ID, "daily", models.CurrencyTRY)
	require.NoError(t, err)

	// Create primed the cache, so the read hits it.
	_, err = svc.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)

	// Status updates invalidate; the next read refills from the store.
	_, err = svc.UpdateStatus(ctx, w.ID, false, false)
	require.NoError(t, err)
	got, err := svc.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.False(t, got.ActiveForShopping)
	assert.Equal(t, 1, cache.hits)
}
