package repositories

import "walletdesk/internal/models"

// EmployeeRepository is the persistence contract for employee records.
type EmployeeRepository interface {
	Create(employee *models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetByEmployeeCode(code string) (*models.Employee, error)
	GetByRole(role models.EmployeeRole) ([]*models.Employee, error)
	GetAll() ([]*models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uint) error
	ExistsByEmployeeCode(code string) (bool, error)
}
