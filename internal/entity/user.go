package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

type User struct {
	ID          uuid.UUID `json:"id"           validate:"required"`
	Email       string    `json:"email"        validate:"required,email,max=100"`
	Username    string    `json:"username"     validate:"required,max=50"`
	FullName    string    `json:"full_name"    validate:"required,max=100"`
	Role        Role      `json:"role"         validate:"required,oneof=admin seller buyer"`
	IsActive    bool      `json:"is_active"`
	CompanyName string    `json:"company_name" validate:"max=100"`
	Phone       string    `json:"phone"        validate:"max=20"`
	Address     string    `json:"address"      validate:"max=500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileUpdate keys follow the frontend contract for PUT /auth/profile, not
// the backend's snake_case. Only non-nil fields reach the wire; everything
// else is dropped before serialization.
type ProfileUpdate struct {
	FirstName   *string        `json:"firstName,omitempty"`
	LastName    *string        `json:"lastName,omitempty"`
	Company     *string        `json:"company,omitempty"`
	Profile     map[string]any `json:"profile,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

type UserUpdate struct {
	Email       *string `json:"email,omitempty"        validate:"omitempty,email"`
	FullName    *string `json:"full_name,omitempty"    validate:"omitempty,max=100"`
	Role        *Role   `json:"role,omitempty"         validate:"omitempty,oneof=admin seller buyer"`
	IsActive    *bool   `json:"is_active,omitempty"`
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,max=100"`
	Phone       *string `json:"phone,omitempty"        validate:"omitempty,max=20"`
	Address     *string `json:"address,omitempty"      validate:"omitempty,max=500"`
}

type UserStats struct {
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	MemberSince time.Time       `json:"member_since"`
}

type ProfilePicture struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}
