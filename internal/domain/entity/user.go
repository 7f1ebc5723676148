package entity

import "time"

// Roles válidos para User.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Estados de cuenta.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// User representa un revendedor (customer) o un administrador del storefront.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Username     string
	Email        string
	Phone        string
	BusinessName string
	Whatsapp     string
	Referral     string // código de referido usado en el registro (puede ir vacío)
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // customer, admin
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
