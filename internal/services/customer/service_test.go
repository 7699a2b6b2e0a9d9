package customer

import (
	"context"
	"testing"

	"walletdesk/internal/domain"
	"walletdesk/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCreate(t *testing.T) {
	svc := NewService(memory.NewStore().Customers())
	ctx := context.Background()

	created, err := svc.Create(ctx, "12345678901", "Ayse", "Yilmaz")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// The national id is the login identifier; duplicates are rejected.
	_, err = svc.Create(ctx, "12345678901", "Someone", "Else")
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentifier)
}

func TestCustomerLookup(t *testing.T) {
	svc := NewService(memory.NewStore().Customers())
	ctx := context.Background()

	created, err := svc.Create(ctx, "12345678901", "Ayse", "Yilmaz")
	require.NoError(t, err)

	byID, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ayse", byID.Name)

	byNationalID, err := svc.GetByNationalID(ctx, "12345678901")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byNationalID.ID)

	_, err = svc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerUpdate(t *testing.T) {
	svc := NewService(memory.NewStore().Customers())
	ctx := context.Background()

	created, err := svc.Create(ctx, "12345678901", "Ayse", "Yilmaz")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, "Ayse", "Demir")
	require.NoError(t, err)
	assert.Equal(t, "Demir", updated.Surname)
	// The national id survives any update.
	assert.Equal(t, "12345678901", updated.NationalID)
}

func TestCustomerDelete(t *testing.T) {
	svc := NewService(memory.NewStore().Customers())
	ctx := context.Background()

	created, err := svc.Create(ctx, "12345678901", "Ayse", "Yilmaz")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
