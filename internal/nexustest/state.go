package nexustest

import (
	"slices"
	"strings"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reset drops every stored record and live session, returning the server
// to its just-constructed state between tests.
func (s *Server) Reset() {
	s.mu.Lock()
	clear(s.users)
	clear(s.products)
	clear(s.orders)
	clear(s.carts)
	clear(s.tracking)
	clear(s.resetTokens)
	s.mu.Unlock()

	s.sessions.Purge()
}

// SeedUser puts a user directly into the store, bypassing the register
// endpoint, and returns the stored user together with a live bearer token.
func (s *Server) SeedUser(email, password string, role entity.Role) (*entity.User, string) {
	now := time.Now().UTC()
	username, _, _ := strings.Cut(email, "@")

	user := entity.User{
		ID:        uuid.New(),
		Email:     email,
		Username:  username,
		FullName:  username,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.users[user.ID] = &userRecord{user: user, password: password}
	s.mu.Unlock()

	return &user, s.issueToken(user.ID)
}

// SeedProduct puts an active product into the store on behalf of the given
// seller.
func (s *Server) SeedProduct(sellerID uuid.UUID, name string, price decimal.Decimal, stock int) *entity.Product {
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	product := entity.Product{
		ID:            uuid.New(),
		Name:          name,
		Price:         price,
		StockQuantity: stock,
		SellerID:      sellerID,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if record, ok := s.users[sellerID]; ok {
		product.SellerName = record.user.FullName
	}

	s.products[product.ID] = &product
	return cloneProduct(&product)
}

// SeedOrder puts a pending order with a fresh tracking record into the store.
func (s *Server) SeedOrder(buyerID, sellerID uuid.UUID, shippingAddress string, items ...*entity.OrderItem) *entity.Order {
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	order := entity.Order{
		ID:              uuid.New(),
		BuyerID:         buyerID,
		SellerID:        sellerID,
		Items:           cloneItems(items),
		TotalAmount:     itemsTotal(items),
		Status:          entity.OrderStatusPending,
		ShippingAddress: shippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if record, ok := s.users[buyerID]; ok {
		order.BuyerName = record.user.FullName
	}
	if record, ok := s.users[sellerID]; ok {
		order.SellerName = record.user.FullName
	}

	s.orders[order.ID] = &order
	s.tracking[order.ID] = &entity.OrderTracking{
		OrderID: order.ID,
		Status:  order.Status,
		History: []*entity.TrackingEvent{{
			Status:    entity.OrderStatusPending,
			Note:      "Order placed",
			Timestamp: now,
		}},
	}

	return cloneOrder(&order)
}

// ResetTokenFor issues a password reset token for the given email, the way
// the forgot-password endpoint does internally.
func (s *Server) ResetTokenFor(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.userByEmailLocked(email)
	if !ok {
		return "", false
	}

	token := uuid.NewString()
	s.resetTokens[token] = record.user.ID
	return token, true
}

func (s *Server) userByEmailLocked(email string) (*userRecord, bool) {
	for _, record := range s.users {
		if record.user.Email == email {
			return record, true
		}
	}
	return nil, false
}

func itemsTotal(items []*entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func cloneItems(items []*entity.OrderItem) []*entity.OrderItem {
	out := make([]*entity.OrderItem, len(items))
	for i, item := range items {
		cp := *item
		out[i] = &cp
	}
	return out
}

func cloneOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Items = cloneItems(o.Items)
	return &cp
}

func cloneCart(c *entity.Cart) *entity.Cart {
	cp := *c
	cp.Items = cloneItems(c.Items)
	return &cp
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.AlternateNames = slices.Clone(p.AlternateNames)
	cp.Tags = slices.Clone(p.Tags)
	cp.Images = slices.Clone(p.Images)
	return &cp
}

func cloneTracking(t *entity.OrderTracking) *entity.OrderTracking {
	cp := *t
	cp.History = make([]*entity.TrackingEvent, len(t.History))
	for i, event := range t.History {
		ev := *event
		cp.History[i] = &ev
	}
	return &cp
}
