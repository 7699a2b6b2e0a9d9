package auth

import (
	"walletdesk/internal/domain"
	"walletdesk/internal/models"
)

// The authorization gate: one check per operation class, evaluated against
// the explicit caller identity. Anonymous callers fail with Unauthenticated;
// resolved callers lacking the required tier fail with Forbidden. Staff means
// an employee of any role; only ADMIN manages employees.

// CanCreateWalletFor allows customers to open wallets for themselves and
// staff to open wallets for anyone.
func CanCreateWalletFor(id models.Identity, customerID uint) error {
	if !id.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	if id.IsStaff() {
		return nil
	}
	if id.IsCustomer() && id.CustomerID == customerID {
		return nil
	}
	return domain.NewForbidden("customers may only open wallets for themselves")
}

// CanCreateTransaction allows any authenticated caller to submit a deposit
// or withdrawal request.
func CanCreateTransaction(id models.Identity) error {
	if !id.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	return nil
}

// CanReviewTransactions gates approve and deny to staff.
func CanReviewTransactions(id models.Identity) error {
	return requireStaff(id, "only employees may approve or deny transactions")
}

// CanViewCustomerScope allows customers to read their own wallets,
// transactions and profile, and staff to read anyone's.
func CanViewCustomerScope(id models.Identity, customerID uint) error {
	if !id.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	if id.IsStaff() {
		return nil
	}
	if id.IsCustomer() && id.CustomerID == customerID {
		return nil
	}
	return domain.NewForbidden("customers may only view their own records")
}

// CanViewAll gates cross-customer queries (all wallets/transactions and the
// by-status, by-type, by-currency filters) to staff.
func CanViewAll(id models.Identity) error {
	return requireStaff(id, "only employees may run back-office queries")
}

// CanMutateBalance gates direct set/credit/debit of a wallet balance to
// staff.
func CanMutateBalance(id models.Identity) error {
	return requireStaff(id, "only employees may mutate balances directly")
}

// CanAdministerWallet gates activity-flag updates and wallet deletion to
// staff.
func CanAdministerWallet(id models.Identity) error {
	return requireStaff(id, "only employees may administer wallets")
}

// CanOnboardCustomer allows staff to onboard customers; self-service signup
// is also open to unauthenticated callers.
func CanOnboardCustomer(id models.Identity) error {
	return nil
}

// CanManageCustomers gates customer update and delete to staff.
func CanManageCustomers(id models.Identity) error {
	return requireStaff(id, "only employees may manage customers")
}

// CanManageEmployees gates employee create/update/delete to ADMIN.
func CanManageEmployees(id models.Identity) error {
	if !id.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	if id.IsAdmin() {
		return nil
	}
	return domain.NewForbidden("only admins may manage employees")
}

func requireStaff(id models.Identity, reason string) error {
	if !id.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	if id.IsStaff() {
		return nil
	}
	return domain.NewForbidden(reason)
}
