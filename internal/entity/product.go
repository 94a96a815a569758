package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID             uuid.UUID       `json:"id"              validate:"required"`
	Name           string          `json:"name"            validate:"required,max=255"`
	AlternateNames []string        `json:"alternate_names"`
	Description    string          `json:"description"     validate:"max=2000"`
	Price          decimal.Decimal `json:"price"`
	StockQuantity  int             `json:"stock_quantity"  validate:"gte=0"`
	Category       string          `json:"category"        validate:"required,max=100"`
	Tags           []string        `json:"tags"`
	Images         []string        `json:"images"`
	SellerID       uuid.UUID       `json:"seller_id"       validate:"required"`
	SellerName     string          `json:"seller_name"     validate:"max=100"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type ProductCreate struct {
	Name           string          `json:"name"            validate:"required,max=255"`
	AlternateNames []string        `json:"alternate_names,omitempty"`
	Description    string          `json:"description"     validate:"max=2000"`
	Price          decimal.Decimal `json:"price"`
	StockQuantity  int             `json:"stock_quantity"  validate:"gte=0"`
	Category       string          `json:"category"        validate:"required,max=100"`
	Tags           []string        `json:"tags,omitempty"`
	Images         []string        `json:"images,omitempty"`
}

type ProductUpdate struct {
	Name           *string          `json:"name,omitempty"            validate:"omitempty,max=255"`
	AlternateNames []string         `json:"alternate_names,omitempty"`
	Description    *string          `json:"description,omitempty"     validate:"omitempty,max=2000"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	StockQuantity  *int             `json:"stock_quantity,omitempty"  validate:"omitempty,gte=0"`
	Category       *string          `json:"category,omitempty"        validate:"omitempty,max=100"`
	Tags           []string         `json:"tags,omitempty"`
	Images         []string         `json:"images,omitempty"`
}
