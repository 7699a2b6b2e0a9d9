package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money flowing into or out of a wallet.
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeWithdraw
}

// OppositePartyType classifies the external counterparty of a transaction.
type OppositePartyType string

const (
	OppositePartyIBAN    OppositePartyType = "IBAN"
	OppositePartyPayment OppositePartyType = "PAYMENT"
)

func (t OppositePartyType) Valid() bool {
	return t == OppositePartyIBAN || t == OppositePartyPayment
}

// TransactionStatus is the lifecycle state of a transaction. Transitions fire
// from PENDING only; APPROVED and DENIED are terminal.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusApproved TransactionStatus = "APPROVED"
	TransactionStatusDenied   TransactionStatus = "DENIED"
)

// Transaction records a requested deposit or withdrawal against a wallet.
// Creation only records intent; the wallet balance moves at approval time.
type Transaction struct {
	ID                uint              `gorm:"primarykey" json:"id"`
	WalletID          uint              `gorm:"index;not null" json:"wallet_id"`
	Amount            decimal.Decimal   `gorm:"type:numeric(19,2);not null" json:"amount"`
	Type              TransactionType   `gorm:"type:varchar(16);not null" json:"type"`
	OppositePartyType OppositePartyType `gorm:"type:varchar(16);not null" json:"opposite_party_type"`
	OppositeParty     string            `gorm:"not null" json:"opposite_party"`
	Status            TransactionStatus `gorm:"type:varchar(16);not null;default:'PENDING'" json:"status"`
	Reference         string            `gorm:"uniqueIndex;not null" json:"reference"` // external reference id
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// IsPending reports whether the transaction can still be approved or denied.
func (t *Transaction) IsPending() bool {
	return t.Status == TransactionStatusPending
}
