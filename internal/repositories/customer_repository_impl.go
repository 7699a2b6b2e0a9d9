package repositories

import (
	"fmt"

	"walletdesk/internal/models"

	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository builds a gorm-backed customer store.
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return translateError(err, "customer", customer.ID, "national id", customer.NationalID)
	}
	return nil
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, translateError(err, "customer", id, "", "")
	}
	return &customer, nil
}

func (r *customerRepository) GetByNationalID(nationalID string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("national_id = ?", nationalID).First(&customer).Error
	if err != nil {
		return nil, translateError(err, "customer", nationalID, "", "")
	}
	return &customer, nil
}

func (r *customerRepository) GetAll() ([]*models.Customer, error) {
	var customers []*models.Customer
	if err := r.db.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return customers, nil
}

func (r *customerRepository) Update(customer *models.Customer) error {
	if err := r.db.Save(customer).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (r *customerRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "customer", id, "", "")
	}
	return nil
}

func (r *customerRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return count > 0, nil
}

func (r *customerRepository) ExistsByNationalID(nationalID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Where("national_id = ?", nationalID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check national id: %w", err)
	}
	return count > 0, nil
}
