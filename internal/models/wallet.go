package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Currency is the set of currencies a wallet can be denominated in.
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyTRY, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// Wallet is a currency-denominated balance owned by exactly one customer.
// Balance is mutated only through the ledger service; every committed
// mutation keeps it non-negative.
type Wallet struct {
	ID                uint            `gorm:"primarykey" json:"id"`
	CustomerID        uint            `gorm:"index;not null" json:"customer_id"`
	Name              string          `gorm:"not null" json:"name"`
	Currency          Currency        `gorm:"type:varchar(3);not null" json:"currency"`
	ActiveForShopping bool            `gorm:"not null;default:true" json:"active_for_shopping"`
	ActiveForWithdraw bool            `gorm:"not null;default:true" json:"active_for_withdraw"`
	Balance           decimal.Decimal `gorm:"type:numeric(19,2);not null" json:"balance"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// BeforeCreate forces new wallets to start empty regardless of caller input.
func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	w.Balance = decimal.Zero
	return nil
}

// UsableBalance is the portion of the balance available to spend. There is no
// hold or reservation mechanism yet, so it always equals the stored balance.
func (w *Wallet) UsableBalance() decimal.Decimal {
	return w.Balance
}
