package models

import "time"

// Customer is a wallet owner. NationalID is the unique login identifier and is
// immutable after onboarding.
type Customer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	NationalID string    `gorm:"uniqueIndex;not null" json:"national_id"`
	Name       string    `gorm:"not null" json:"name"`
	Surname    string    `gorm:"not null" json:"surname"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
