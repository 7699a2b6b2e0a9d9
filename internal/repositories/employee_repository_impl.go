package repositories

import (
	"fmt"

	"walletdesk/internal/models"

	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository builds a gorm-backed employee store.
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(employee *models.Employee) error {
	if err := r.db.Create(employee).Error; err != nil {
		return translateError(err, "employee", employee.ID, "employee code", employee.EmployeeCode)
	}
	return nil
}

func (r *employeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, id).Error; err != nil {
		return nil, translateError(err, "employee", id, "", "")
	}
	return &employee, nil
}

func (r *employeeRepository) GetByEmployeeCode(code string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Where("employee_code = ?", code).First(&employee).Error
	if err != nil {
		return nil, translateError(err, "employee", code, "", "")
	}
	return &employee, nil
}

func (r *employeeRepository) GetByRole(role models.EmployeeRole) ([]*models.Employee, error) {
	var employees []*models.Employee
	if err := r.db.Where("role = ?", role).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to get employees by role: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) GetAll() ([]*models.Employee, error) {
	var employees []*models.Employee
	if err := r.db.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) Update(employee *models.Employee) error {
	if err := r.db.Save(employee).Error; err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Employee{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "employee", id, "", "")
	}
	return nil
}

func (r *employeeRepository) ExistsByEmployeeCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).Where("employee_code = ?", code).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check employee code: %w", err)
	}
	return count > 0, nil
}
