package employee

import (
	"context"
	"testing"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markingHasher prefixes instead of hashing so tests can see what was stored.
type markingHasher struct{}

func (markingHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func newEmployeeService() Service {
	return NewService(memory.NewStore().Employees(), markingHasher{})
}

func TestEmployeeCreate(t *testing.T) {
	svc := newEmployeeService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "EMP-1", "Mehmet", "Kaya", "s3cret", models.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, "hashed:s3cret", created.Password)
	assert.Equal(t, models.RoleEmployee, created.Role)

	_, err = svc.Create(ctx, "EMP-1", "Other", "Person", "pw", models.RoleManager)
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentifier)

	_, err = svc.Create(ctx, "EMP-2", "Other", "Person", "pw", models.EmployeeRole("INTERN"))
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestEmployeeUpdate(t *testing.T) {
	svc := newEmployeeService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "EMP-1", "Mehmet", "Kaya", "s3cret", models.RoleEmployee)
	require.NoError(t, err)

	t.Run("promotes without changing the password when none is given", func(t *testing.T) {
		updated, err := svc.Update(ctx, created.ID, "Mehmet", "Kaya", "", models.RoleManager)
		require.NoError(t, err)
		assert.Equal(t, models.RoleManager, updated.Role)
		assert.Equal(t, "hashed:s3cret", updated.Password)
	})

	t.Run("rehashes a supplied password", func(t *testing.T) {
		updated, err := svc.Update(ctx, created.ID, "Mehmet", "Kaya", "newpw", models.RoleManager)
		require.NoError(t, err)
		assert.Equal(t, "hashed:newpw", updated.Password)
	})

	t.Run("keeps the employee code", func(t *testing.T) {
		updated, err := svc.Update(ctx, created.ID, "Mehmet", "Kaya", "", models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, "EMP-1", updated.EmployeeCode)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, "Mehmet", "Kaya", "", models.EmployeeRole("OWNER"))
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestEmployeeQueries(t *testing.T) {
	svc := newEmployeeService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "EMP-1", "Mehmet", "Kaya", "pw", models.RoleEmployee)
	require.NoError(t, err)
	admin, err := svc.Create(ctx, "ADM-1", "Zeynep", "Arslan", "pw", models.RoleAdmin)
	require.NoError(t, err)

	admins, err := svc.ListByRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, admin.ID, admins[0].ID)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byCode, err := svc.GetByEmployeeCode(ctx, "ADM-1")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, byCode.ID)
}

func TestEmployeeDelete(t *testing.T) {
	svc := newEmployeeService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "EMP-1", "Mehmet", "Kaya", "pw", models.RoleEmployee)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
