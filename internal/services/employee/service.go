// Package employee handles back-office employee administration. Every
// operation here is admin-gated at the authorization layer.
package employee

import (
	"context"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories"
)

// Service manages employee records. The employee code is the login
// identifier and never changes after creation; the role may.
type Service interface {
	Create(ctx context.Context, code, name, surname, password string, role models.EmployeeRole) (*models.Employee, error)
	GetByID(ctx context.Context, id uint) (*models.Employee, error)
	GetByEmployeeCode(ctx context.Context, code string) (*models.Employee, error)
	ListByRole(ctx context.Context, role models.EmployeeRole) ([]*models.Employee, error)
	ListAll(ctx context.Context) ([]*models.Employee, error)
	Update(ctx context.Context, id uint, name, surname, password string, role models.EmployeeRole) (*models.Employee, error)
	Delete(ctx context.Context, id uint) error
}

// PasswordHasher prepares a password for storage. The insecure default keeps
// it verbatim; see the auth package for the verification side of the gap.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type service struct {
	repo   repositories.EmployeeRepository
	hasher PasswordHasher
}

// NewService creates a new employee service.
func NewService(repo repositories.EmployeeRepository, hasher PasswordHasher) Service {
	if repo == nil {
		panic("repo is required")
	}
	if hasher == nil {
		panic("hasher is required")
	}
	return &service{repo: repo, hasher: hasher}
}

func (s *service) Create(ctx context.Context, code, name, surname, password string, role models.EmployeeRole) (*models.Employee, error) {
	if !role.Valid() {
		return nil, domain.NewInvalidState("invalid employee role")
	}

	taken, err := s.repo.ExistsByEmployeeCode(code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.NewDuplicateIdentifier("employee code", code)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		EmployeeCode: code,
		Name:         name,
		Surname:      surname,
		Password:     hashed,
		Role:         role,
	}
	if err := s.repo.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	return s.repo.GetByID(id)
}

func (s *service) GetByEmployeeCode(ctx context.Context, code string) (*models.Employee, error) {
	return s.repo.GetByEmployeeCode(code)
}

func (s *service) ListByRole(ctx context.Context, role models.EmployeeRole) ([]*models.Employee, error) {
	return s.repo.GetByRole(role)
}

func (s *service) ListAll(ctx context.Context) ([]*models.Employee, error) {
	return s.repo.GetAll()
}

// Update changes everything but the employee code.
func (s *service) Update(ctx context.Context, id uint, name, surname, password string, role models.EmployeeRole) (*models.Employee, error) {
	if !role.Valid() {
		return nil, domain.NewInvalidState("invalid employee role")
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	employee.Name = name
	employee.Surname = surname
	employee.Role = role
	if password != "" {
		hashed, err := s.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		employee.Password = hashed
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(id)
}
