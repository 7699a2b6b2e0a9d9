// Package customer handles customer onboarding and maintenance.
package customer

import (
	"context"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories"
)

// Service manages customer records. The national id is the login identifier
// and never changes after onboarding.
type Service interface {
	Create(ctx context.Context, nationalID, name, surname string) (*models.Customer, error)
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	GetByNationalID(ctx context.Context, nationalID string) (*models.Customer, error)
	ListAll(ctx context.Context) ([]*models.Customer, error)
	Update(ctx context.Context, id uint, name, surname string) (*models.Customer, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo repositories.CustomerRepository
}

// NewService creates a new customer service.
func NewService(repo repositories.CustomerRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, nationalID, name, surname string) (*models.Customer, error) {
	taken, err := s.repo.ExistsByNationalID(nationalID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.NewDuplicateIdentifier("national id", nationalID)
	}

	customer := &models.Customer{
		NationalID: nationalID,
		Name:       name,
		Surname:    surname,
	}
	if err := s.repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	return s.repo.GetByID(id)
}

func (s *service) GetByNationalID(ctx context.Context, nationalID string) (*models.Customer, error) {
	return s.repo.GetByNationalID(nationalID)
}

func (s *service) ListAll(ctx context.Context) ([]*models.Customer, error) {
	return s.repo.GetAll()
}

// Update changes the display fields only; the national id is immutable.
func (s *service) Update(ctx context.Context, id uint, name, surname string) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	customer.Name = name
	customer.Surname = surname
	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(id)
}
