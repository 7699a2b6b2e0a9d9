// Package auth resolves caller identities and enforces per-operation
// permissions. Identity is always passed explicitly into core operations;
// nothing here reads ambient state.
package auth

import (
	"context"
	"errors"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories"
	"walletdesk/internal/utils"
)

// LoginResult carries the resolved identity and its token pair.
type LoginResult struct {
	Identity     models.Identity
	AccessToken  string
	RefreshToken string
}

// Service authenticates callers by their login identifier.
type Service interface {
	// Login resolves the identifier as a customer national id first, then
	// as an employee code, verifies the credential, and issues tokens.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
}

type service struct {
	customers repositories.CustomerRepository
	employees repositories.EmployeeRepository
	verifier  CredentialVerifier
}

// NewService creates a new auth service.
func NewService(
	customers repositories.CustomerRepository,
	employees repositories.EmployeeRepository,
	verifier CredentialVerifier,
) Service {
	if customers == nil {
		panic("customer repo is required")
	}
	if employees == nil {
		panic("employee repo is required")
	}
	if verifier == nil {
		panic("verifier is required")
	}
	return &service{
		customers: customers,
		employees: employees,
		verifier:  verifier,
	}
}

func (s *service) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	// Customers carry no stored credential; the verifier decides whether
	// that passes (the insecure default) or not (bcrypt).
	customer, err := s.customers.GetByNationalID(identifier)
	if err == nil {
		if err := s.verifier.Verify("", password); err != nil {
			return nil, domain.ErrUnauthenticated
		}
		return s.issue(models.CustomerIdentity(customer.ID), customer.NationalID)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	employee, err := s.employees.GetByEmployeeCode(identifier)
	if err == nil {
		if err := s.verifier.Verify(employee.Password, password); err != nil {
			return nil, domain.ErrUnauthenticated
		}
		return s.issue(models.EmployeeIdentity(employee.ID, employee.Role), employee.EmployeeCode)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	// Same failure for unknown identifier and bad credential.
	return nil, domain.ErrUnauthenticated
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if claims.TokenType != utils.TokenTypeRefresh {
		return nil, domain.ErrUnauthenticated
	}

	identity := claims.Identity()
	if !identity.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}

	// Re-resolve so revoked principals lose access at rotation time.
	switch identity.Kind {
	case models.IdentityCustomer:
		if _, err := s.customers.GetByID(identity.CustomerID); err != nil {
			return nil, domain.ErrUnauthenticated
		}
	case models.IdentityEmployee:
		employee, err := s.employees.GetByID(identity.EmployeeID)
		if err != nil {
			return nil, domain.ErrUnauthenticated
		}
		identity = models.EmployeeIdentity(employee.ID, employee.Role)
	}

	return s.issue(identity, claims.Subject)
}

func (s *service) issue(identity models.Identity, subject string) (*LoginResult, error) {
	access, refresh, err := utils.GenerateTokens(identity, subject)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Identity:     identity,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
