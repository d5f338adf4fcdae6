// Package common contains shared constants and sentinel errors used across
// Iron Bank server components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the session
// token on inbound requests.
const AccessTokenHeaderName = "access_token"

// Roles a user may hold.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Account types.
const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
)

// Transaction directions.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// DefaultCurrency is assigned to accounts opened without an explicit currency.
const DefaultCurrency = "ZAR"
