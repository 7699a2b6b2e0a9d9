package auth

import (
	"context"
	"testing"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories"
	"walletdesk/internal/repositories/memory"
	"walletdesk/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T, verifier CredentialVerifier) (repositories.CustomerRepository, repositories.EmployeeRepository, Service) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	store := memory.NewStore()
	customers := store.Customers()
	employees := store.Employees()
	return customers, employees, NewService(customers, employees, verifier)
}

func TestLogin_Customer(t *testing.T) {
	customers, _, svc := newAuthFixture(t, InsecureVerifier{})
	c := &models.Customer{NationalID: "12345678901", Name: "Ayse", Surname: "Yilmaz"}
	require.NoError(t, customers.Create(c))

	result, err := svc.Login(context.Background(), "12345678901", "anything at all")
	require.NoError(t, err)
	assert.Equal(t, models.IdentityCustomer, result.Identity.Kind)
	assert.Equal(t, c.ID, result.Identity.CustomerID)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
}

func TestLogin_Employee(t *testing.T) {
	verifier := BcryptVerifier{}
	_, employees, svc := newAuthFixture(t, verifier)

	hashed, err := verifier.Hash("hunter2")
	require.NoError(t, err)
	e := &models.Employee{EmployeeCode: "EMP-1", Name: "Mehmet", Surname: "Kaya", Password: hashed, Role: models.RoleManager}
	require.NoError(t, employees.Create(e))

	t.Run("correct password resolves the employee with role", func(t *testing.T) {
		result, err := svc.Login(context.Background(), "EMP-1", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, models.IdentityEmployee, result.Identity.Kind)
		assert.Equal(t, models.RoleManager, result.Identity.Role)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "EMP-1", "wrong")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestLogin_UnknownIdentifier(t *testing.T) {
	_, _, svc := newAuthFixture(t, InsecureVerifier{})
	_, err := svc.Login(context.Background(), "nobody", "pw")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestLogin_BcryptRejectsCustomers(t *testing.T) {
	// Customers have no stored credential, so the strict verifier can never
	// pass them.
	customers, _, svc := newAuthFixture(t, BcryptVerifier{})
	require.NoError(t, customers.Create(&models.Customer{NationalID: "12345678901", Name: "Ayse", Surname: "Yilmaz"}))

	_, err := svc.Login(context.Background(), "12345678901", "anything")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestRefresh(t *testing.T) {
	_, employees, svc := newAuthFixture(t, InsecureVerifier{})
	e := &models.Employee{EmployeeCode: "EMP-1", Name: "Mehmet", Surname: "Kaya", Password: "pw", Role: models.RoleEmployee}
	require.NoError(t, employees.Create(e))

	login, err := svc.Login(context.Background(), "EMP-1", "pw")
	require.NoError(t, err)

	t.Run("refresh token yields a new pair", func(t *testing.T) {
		result, err := svc.Refresh(context.Background(), login.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, models.IdentityEmployee, result.Identity.Kind)
	})

	t.Run("access token is rejected by the refresh endpoint", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), login.AccessToken)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("role changes surface on rotation", func(t *testing.T) {
		stored, err := employees.GetByID(e.ID)
		require.NoError(t, err)
		stored.Role = models.RoleAdmin
		require.NoError(t, employees.Update(stored))

		result, err := svc.Refresh(context.Background(), login.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, result.Identity.Role)
	})

	t.Run("deleted principal loses access", func(t *testing.T) {
		require.NoError(t, employees.Delete(e.ID))
		_, err := svc.Refresh(context.Background(), login.RefreshToken)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	identity := models.EmployeeIdentity(9, models.RoleManager)
	access, refresh, err := utils.GenerateTokens(identity, "EMP-9")
	require.NoError(t, err)

	claims, err := utils.ParseToken(access)
	require.NoError(t, err)
	assert.Equal(t, utils.TokenTypeAccess, claims.TokenType)
	assert.Equal(t, identity, claims.Identity())

	claims, err = utils.ParseToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, utils.TokenTypeRefresh, claims.TokenType)
}

func TestVerifiers(t *testing.T) {
	t.Run("insecure accepts anything", func(t *testing.T) {
		v := InsecureVerifier{}
		stored, err := v.Hash("plain")
		require.NoError(t, err)
		assert.Equal(t, "plain", stored)
		assert.NoError(t, v.Verify(stored, "completely different"))
		assert.NoError(t, v.Verify("", ""))
	})

	t.Run("bcrypt verifies and rejects", func(t *testing.T) {
		v := BcryptVerifier{}
		stored, err := v.Hash("plain")
		require.NoError(t, err)
		assert.NotEqual(t, "plain", stored)
		assert.NoError(t, v.Verify(stored, "plain"))
		assert.ErrorIs(t, v.Verify(stored, "other"), domain.ErrUnauthenticated)
		assert.ErrorIs(t, v.Verify("", "plain"), domain.ErrUnauthenticated)
	})
}
