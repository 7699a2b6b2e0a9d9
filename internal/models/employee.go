package models

import "time"

// EmployeeRole is the authorization tier of a back-office employee.
type EmployeeRole string

const (
	RoleEmployee EmployeeRole = "EMPLOYEE"
	RoleManager  EmployeeRole = "MANAGER"
	RoleAdmin    EmployeeRole = "ADMIN"
)

func (r EmployeeRole) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Employee is a back-office operator. EmployeeCode is the unique login
// identifier and is immutable after creation.
type Employee struct {
	ID           uint         `gorm:"primarykey" json:"id"`
	EmployeeCode string       `gorm:"uniqueIndex;not null" json:"employee_code"`
	Name         string       `gorm:"not null" json:"name"`
	Surname      string       `gorm:"not null" json:"surname"`
	Password     string       `gorm:"not null" json:"-"`
	Role         EmployeeRole `gorm:"type:varchar(16);not null;default:'EMPLOYEE'" json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
