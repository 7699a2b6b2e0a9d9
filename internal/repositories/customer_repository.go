package repositories

import "walletdesk/internal/models"

// CustomerRepository is the persistence contract for customer records.
type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByNationalID(nationalID string) (*models.Customer, error)
	GetAll() ([]*models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
	ExistsByNationalID(nationalID string) (bool, error)
}
