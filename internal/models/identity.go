package models

// IdentityKind tags the resolved caller identity.
type IdentityKind string

const (
	IdentityAnonymous IdentityKind = "ANONYMOUS"
	IdentityCustomer  IdentityKind = "CUSTOMER"
	IdentityEmployee  IdentityKind = "EMPLOYEE"
)

// Identity is the resolved caller of a core operation: a customer, an employee
// with a role, or nobody. It is passed explicitly into every role-checked
// operation; the core never reads the caller from ambient state.
type Identity struct {
	Kind       IdentityKind
	CustomerID uint         // set when Kind == IdentityCustomer
	EmployeeID uint         // set when Kind == IdentityEmployee
	Role       EmployeeRole // set when Kind == IdentityEmployee
}

// Anonymous returns the unauthenticated identity.
func Anonymous() Identity {
	return Identity{Kind: IdentityAnonymous}
}

// CustomerIdentity returns the identity of the given customer.
func CustomerIdentity(customerID uint) Identity {
	return Identity{Kind: IdentityCustomer, CustomerID: customerID}
}

// EmployeeIdentity returns the identity of the given employee.
func EmployeeIdentity(employeeID uint, role EmployeeRole) Identity {
	return Identity{Kind: IdentityEmployee, EmployeeID: employeeID, Role: role}
}

// IsCustomer reports whether the caller is a customer.
func (i Identity) IsCustomer() bool { return i.Kind == IdentityCustomer }

// IsStaff reports whether the caller is an employee of any role.
func (i Identity) IsStaff() bool { return i.Kind == IdentityEmployee }

// IsAdmin reports whether the caller is an employee with the ADMIN role.
func (i Identity) IsAdmin() bool {
	return i.Kind == IdentityEmployee && i.Role == RoleAdmin
}

// IsAuthenticated reports whether any identity resolved at all.
func (i Identity) IsAuthenticated() bool { return i.Kind != IdentityAnonymous }
