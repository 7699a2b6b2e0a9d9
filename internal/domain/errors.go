// Package domain defines the error taxonomy shared by every service. All of
// these are recoverable at the request-handling boundary; store-level I/O
// failures propagate as plain wrapped errors instead.
package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for errors.Is matching. The typed errors below carry the
// structured payload and report themselves as the matching sentinel.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidState        = errors.New("invalid state")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// NotFoundError reports a missing entity by name and identifier.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFound builds a NotFoundError for the given entity and id.
func NewNotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidStateError reports an operation attempted against an entity in the
// wrong state, such as approving a non-pending transaction.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string { return e.Reason }

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

// NewInvalidState builds an InvalidStateError with the given reason.
func NewInvalidState(reason string) error {
	return &InvalidStateError{Reason: reason}
}

// InsufficientFundsError reports a debit or withdrawal that exceeds the
// wallet's balance.
type InsufficientFundsError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: available %s, requested %s",
		e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientFundsError) Is(target error) bool { return target == ErrInsufficientFunds }

// NewInsufficientFunds builds an InsufficientFundsError.
func NewInsufficientFunds(available, requested decimal.Decimal) error {
	return &InsufficientFundsError{Available: available, Requested: requested}
}

// DuplicateIdentifierError reports a uniqueness violation on a login
// identifier such as a national id or employee code.
type DuplicateIdentifierError struct {
	Field string
	Value string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("%s %q is already in use", e.Field, e.Value)
}

func (e *DuplicateIdentifierError) Is(target error) bool { return target == ErrDuplicateIdentifier }

// NewDuplicateIdentifier builds a DuplicateIdentifierError.
func NewDuplicateIdentifier(field, value string) error {
	return &DuplicateIdentifierError{Field: field, Value: value}
}

// ForbiddenError reports a resolved identity lacking permission for an
// operation.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

// NewForbidden builds a ForbiddenError with the given reason.
func NewForbidden(reason string) error {
	return &ForbiddenError{Reason: reason}
}
