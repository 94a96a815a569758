package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart lines share the OrderItem shape: checkout turns them into order
// items unchanged.
type Cart struct {
	ID          uuid.UUID       `json:"id"           validate:"required"`
	UserID      uuid.UUID       `json:"user_id"      validate:"required"`
	Items       []*OrderItem    `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
