package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID              uuid.UUID       `json:"id"               validate:"required"`
	BuyerID         uuid.UUID       `json:"buyer_id"         validate:"required"`
	BuyerName       string          `json:"buyer_name"       validate:"max=100"`
	SellerID        uuid.UUID       `json:"seller_id"        validate:"required"`
	SellerName      string          `json:"seller_name"      validate:"max=100"`
	Items           []*OrderItem    `json:"items"            validate:"required,min=1,dive"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          OrderStatus     `json:"status"           validate:"required,oneof=pending confirmed shipped delivered cancelled"`
	ShippingAddress string          `json:"shipping_address" validate:"required,max=500"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ProductID   uuid.UUID       `json:"product_id"   validate:"required"`
	ProductName string          `json:"product_name" validate:"required,max=255"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"     validate:"required,gte=1"`
	SellerID    uuid.UUID       `json:"seller_id"    validate:"required"`
}

type OrderCreate struct {
	Items           []*OrderItem `json:"items"            validate:"required,min=1,dive"`
	ShippingAddress string       `json:"shipping_address" validate:"required,max=500"`
}

type ShippingUpdate struct {
	ShippingAddress string `json:"shipping_address,omitempty"`
	Carrier         string `json:"carrier,omitempty"`
	TrackingNumber  string `json:"tracking_number,omitempty"`
}

type TrackingEvent struct {
	Status    OrderStatus `json:"status"`
	Location  string      `json:"location,omitempty"`
	Note      string      `json:"note,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type OrderTracking struct {
	OrderID        uuid.UUID        `json:"order_id"`
	Status         OrderStatus      `json:"status"`
	Carrier        string           `json:"carrier,omitempty"`
	TrackingNumber string           `json:"tracking_number,omitempty"`
	History        []*TrackingEvent `json:"history"`
}

type OrderStats struct {
	TotalOrders  int             `json:"total_orders"`
	ByStatus     map[string]int  `json:"by_status"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
