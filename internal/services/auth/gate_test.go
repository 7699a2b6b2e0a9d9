package auth

import (
	"testing"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"

	"github.com/stretchr/testify/assert"
)

var (
	anon     = models.Anonymous()
	owner    = models.CustomerIdentity(7)
	stranger = models.CustomerIdentity(8)
	employee = models.EmployeeIdentity(1, models.RoleEmployee)
	manager  = models.EmployeeIdentity(2, models.RoleManager)
	admin    = models.EmployeeIdentity(3, models.RoleAdmin)
)

func TestGatePermissions(t *testing.T) {
	tests := []struct {
		name    string
		check   func(models.Identity) error
		caller  models.Identity
		wantErr error
	}{
		{"anonymous cannot create transactions", CanCreateTransaction, anon, domain.ErrUnauthenticated},
		{"customers can create transactions", CanCreateTransaction, owner, nil},
		{"employees can create transactions", CanCreateTransaction, employee, nil},

		{"anonymous cannot review", CanReviewTransactions, anon, domain.ErrUnauthenticated},
		{"customers cannot review", CanReviewTransactions, owner, domain.ErrForbidden},
		{"employees can review", CanReviewTransactions, employee, nil},
		{"managers can review", CanReviewTransactions, manager, nil},
		{"admins can review", CanReviewTransactions, admin, nil},

		{"customers cannot run back-office queries", CanViewAll, owner, domain.ErrForbidden},
		{"employees can run back-office queries", CanViewAll, employee, nil},

		{"customers cannot mutate balances", CanMutateBalance, owner, domain.ErrForbidden},
		{"employees can mutate balances", CanMutateBalance, employee, nil},

		{"customers cannot administer wallets", CanAdministerWallet, owner, domain.ErrForbidden},
		{"employees can administer wallets", CanAdministerWallet, employee, nil},

		{"anonymous can onboard customers", CanOnboardCustomer, anon, nil},
		{"employees can onboard customers", CanOnboardCustomer, employee, nil},

		{"customers cannot manage customers", CanManageCustomers, owner, domain.ErrForbidden},
		{"employees can manage customers", CanManageCustomers, employee, nil},

		{"anonymous cannot manage employees", CanManageEmployees, anon, domain.ErrUnauthenticated},
		{"customers cannot manage employees", CanManageEmployees, owner, domain.ErrForbidden},
		{"employees cannot manage employees", CanManageEmployees, employee, domain.ErrForbidden},
		{"managers cannot manage employees", CanManageEmployees, manager, domain.ErrForbidden},
		{"admins can manage employees", CanManageEmployees, admin, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.caller)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGateOwnerScopedChecks(t *testing.T) {
	tests := []struct {
		name    string
		check   func(models.Identity, uint) error
		caller  models.Identity
		target  uint
		wantErr error
	}{
		{"anonymous cannot open wallets", CanCreateWalletFor, anon, 7, domain.ErrUnauthenticated},
		{"customer opens own wallet", CanCreateWalletFor, owner, 7, nil},
		{"customer cannot open another's wallet", CanCreateWalletFor, stranger, 7, domain.ErrForbidden},
		{"employee opens anyone's wallet", CanCreateWalletFor, employee, 7, nil},

		{"anonymous cannot view", CanViewCustomerScope, anon, 7, domain.ErrUnauthenticated},
		{"customer views own records", CanViewCustomerScope, owner, 7, nil},
		{"customer cannot view another's records", CanViewCustomerScope, stranger, 7, domain.ErrForbidden},
		{"employee views anyone's records", CanViewCustomerScope, employee, 7, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.caller, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
