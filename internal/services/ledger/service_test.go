package ledger

import (
	"context"
	"testing"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories"
	"walletdesk/internal/repositories/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWallet(t *testing.T, wallets repositories.WalletRepository, balance string) *models.Wallet {
	t.Helper()
	w := &models.Wallet{
		CustomerID:        1,
		Name:              "main",
		Currency:          models.CurrencyTRY,
		ActiveForShopping: true,
		ActiveForWithdraw: true,
		Balance:           decimal.RequireFromString(balance),
	}
	require.NoError(t, wallets.Create(w))
	return w
}

func TestLedger_Credit(t *testing.T) {
	store := memory.NewStore()
	wallets := store.Wallets()
	svc := NewService(wallets, nil, nil)
	w := seedWallet(t, wallets, "100.00")

	updated, err := svc.Credit(context.Background(), w.ID, decimal.RequireFromString("50.25"))
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.RequireFromString("150.25")))

	stored, err := wallets.GetByID(w.ID)
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(decimal.RequireFromString("150.25")))
}

func TestLedger_Debit(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		amount      string
		wantErr     error
		wantBalance string
	}{
		{
			name:        "successful debit",
			balance:     "100.00",
			amount:      "30.00",
			wantBalance: "70.00",
		},
		{
			name:        "debit to exactly zero",
			balance:     "100.00",
			amount:      "100.00",
			wantBalance: "0.00",
		},
		{
			name:        "insufficient funds leaves balance unchanged",
			balance:     "100.00",
			amount:      "100.01",
			wantErr:     domain.ErrInsufficientFunds,
			wantBalance: "100.00",
		},
		{
			name:        "zero amount rejected",
			balance:     "100.00",
			amount:      "0.00",
			wantErr:     domain.ErrInvalidAmount,
			wantBalance: "100.00",
		},
		{
			name:        "negative amount rejected",
			balance:     "100.00",
			amount:      "-5.00",
			wantErr:     domain.ErrInvalidAmount,
			wantBalance: "100.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			wallets := store.Wallets()
			svc := NewService(wallets, nil, nil)
			w := seedWallet(t, wallets, tt.balance)

			_, err := svc.Debit(context.Background(), w.ID, decimal.RequireFromString(tt.amount))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			stored, err := wallets.GetByID(w.ID)
			require.NoError(t, err)
			assert.True(t, stored.Balance.Equal(decimal.RequireFromString(tt.wantBalance)),
				"balance %s, want %s", stored.Balance, tt.wantBalance)
		})
	}
}

func TestLedger_SetBalance(t *testing.T) {
	store := memory.NewStore()
	wallets := store.Wallets()
	svc := NewService(wallets, nil, nil)
	w := seedWallet(t, wallets, "100.00")

	// Administrative override: zero is allowed and no delta check applies.
	updated, err := svc.SetBalance(context.Background(), w.ID, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, updated.Balance.IsZero())
}

func TestLedger_MutateMissingWallet(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Wallets(), nil, nil)

	_, err := svc.Credit(context.Background(), 42, decimal.RequireFromString("10.00"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Debit(context.Background(), 42, decimal.RequireFromString("10.00"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedger_IsOwnedBy(t *testing.T) {
	store := memory.NewStore()
	wallets := store.Wallets()
	svc := NewService(wallets, nil, nil)
	w := seedWallet(t, wallets, "0.00")

	owned, err := svc.IsOwnedBy(context.Background(), w.ID, w.CustomerID)
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = svc.IsOwnedBy(context.Background(), w.ID, w.CustomerID+1)
	require.NoError(t, err)
	assert.False(t, owned)

	// Absent wallet is "not owned", not an error.
	owned, err = svc.IsOwnedBy(context.Background(), 999, w.CustomerID)
	require.NoError(t, err)
	assert.False(t, owned)
}

type recordingMetrics struct {
	mutations []string
	errors    []string
}

func (m *recordingMetrics) RecordMutation(op string, amount decimal.Decimal) {
	m.mutations = append(m.mutations, op)
}

func (m *recordingMetrics) RecordError(op, errType string) {
	m.errors = append(m.errors, op+":"+errType)
}

func TestLedger_Metrics(t *testing.T) {
	store := memory.NewStore()
	wallets := store.Wallets()
	metrics := &recordingMetrics{}
	svc := NewService(wallets, nil, metrics)
	w := seedWallet(t, wallets, "10.00")

	_, err := svc.Credit(context.Background(), w.ID, decimal.RequireFromString("5.00"))
	require.NoError(t, err)
	_, err = svc.Debit(context.Background(), w.ID, decimal.RequireFromString("100.00"))
	require.Error(t, err)

	assert.Equal(t, []string{"credit"}, metrics.mutations)
	assert.Equal(t, []string{"debit:insufficient_funds"}, metrics.errors)
}
