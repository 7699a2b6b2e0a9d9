package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the JWT payload carried by access and refresh tokens. It holds
// everything needed to rebuild the caller Identity without a database hit.
type UserClaims struct {
	jwt.RegisteredClaims
	Kind       IdentityKind `json:"kind"`
	CustomerID uint         `json:"customer_id,omitempty"`
	EmployeeID uint         `json:"employee_id,omitempty"`
	Role       EmployeeRole `json:"role,omitempty"`
	TokenType  string       `json:"token_type"` // "access" or "refresh"
}

// Identity rebuilds the caller identity encoded in the claims.
func (c *UserClaims) Identity() Identity {
	switch c.Kind {
	case IdentityCustomer:
		return CustomerIdentity(c.CustomerID)
	case IdentityEmployee:
		return EmployeeIdentity(c.EmployeeID, c.Role)
	default:
		return Anonymous()
	}
}
