package nexustest

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var _statusTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderStatusPending:   {entity.OrderStatusConfirmed, entity.OrderStatusCancelled},
	entity.OrderStatusConfirmed: {entity.OrderStatusShipped, entity.OrderStatusCancelled},
	entity.OrderStatusShipped:   {entity.OrderStatusDelivered},
}

type statusUpdateInput struct {
	Status entity.OrderStatus `json:"status"`
	Notes  string             `json:"notes"`
}

type cancelInput struct {
	Reason string `json:"reason"`
}

func (s *Server) createOrderHandler(c *gin.Context) {
	var input entity.OrderCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if len(input.Items) == 0 || input.ShippingAddress == "" {
		s.detail(c, http.StatusUnprocessableEntity, "Field required")
		return
	}

	user := currentUser(c)
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	order := entity.Order{
		ID:              uuid.New(),
		BuyerID:         user.ID,
		BuyerName:       user.FullName,
		SellerID:        input.Items[0].SellerID,
		Items:           cloneItems(input.Items),
		TotalAmount:     itemsTotal(input.Items),
		Status:          entity.OrderStatusPending,
		ShippingAddress: input.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if record, ok := s.users[order.SellerID]; ok {
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

	if cart, ok := s.carts[user.ID]; ok {
		cart.Items = []*entity.OrderItem{}
		cart.TotalAmount = decimal.Zero
		cart.UpdatedAt = now
	}

	c.JSON(http.StatusOK, cloneOrder(&order))
}

func (s *Server) listOrdersHandler(c *gin.Context) {
	s.listOrdersScoped(c, currentUser(c))
}

// sellerOrdersHandler serves the seller dashboard: sellers see their own
// sales, admins see everything.
func (s *Server) sellerOrdersHandler(c *gin.Context) {
	s.listOrdersScoped(c, currentUser(c))
}

func (s *Server) listOrdersScoped(c *gin.Context, user *entity.User) {
	page, err := queryInt(c, "page", _defaultPage)
	if err != nil || page < 1 {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid page")
		return
	}
	limit, err := queryInt(c, "limit", _defaultLimit)
	if err != nil || limit < 0 {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid limit")
		return
	}
	status := entity.OrderStatus(c.Query("status"))
	if status != "" && !validStatus(status) {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid status")
		return
	}

	s.mu.RLock()
	matched := make([]*entity.Order, 0, len(s.orders))
	for _, order := range s.visibleOrdersLocked(user) {
		if status != "" && order.Status != status {
			continue
		}
		matched = append(matched, cloneOrder(order))
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b *entity.Order) int {
		if cmp := b.CreatedAt.Compare(a.CreatedAt); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	c.JSON(http.StatusOK, window(matched, (page-1)*limit, limit))
}

func (s *Server) visibleOrdersLocked(user *entity.User) []*entity.Order {
	visible := make([]*entity.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if s.orderVisible(order, user) {
			visible = append(visible, order)
		}
	}
	return visible
}

func (s *Server) orderVisible(order *entity.Order, user *entity.User) bool {
	switch user.Role {
	case entity.RoleBuyer:
		return order.BuyerID == user.ID
	case entity.RoleSeller:
		return order.SellerID == user.ID
	default:
		return true
	}
}

func (s *Server) getOrderHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid order ID")
		return
	}

	user := currentUser(c)

	s.mu.RLock()
	order, ok := s.orders[id]
	if ok && s.orderVisible(order, user) {
		order = cloneOrder(order)
	} else {
		ok = false
	}
	s.mu.RUnlock()

	if !ok {
		s.detail(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) updateOrderStatusHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid order ID")
		return
	}

	var input statusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if !validStatus(input.Status) {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid status")
		return
	}

	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		s.detail(c, http.StatusNotFound, "Order not found")
		return
	}
	if user.Role == entity.RoleSeller && order.SellerID != user.ID {
		s.detail(c, http.StatusForbidden, "Not authorized to update this order")
		return
	}
	if !slices.Contains(_statusTransitions[order.Status], input.Status) {
		s.detail(c, http.StatusBadRequest, "Invalid status transition")
		return
	}

	s.transitionLocked(order, input.Status, input.Notes)

	c.JSON(http.StatusOK, cloneOrder(order))
}

func (s *Server) cancelOrderHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid order ID")
		return
	}

	var input cancelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok || !s.orderVisible(order, user) {
		s.detail(c, http.StatusNotFound, "Order not found")
		return
	}
	if user.Role == entity.RoleSeller {
		s.detail(c, http.StatusForbidden, "Insufficient permissions")
		return
	}
	if order.Status != entity.OrderStatusPending && order.Status != entity.OrderStatusConfirmed {
		s.detail(c, http.StatusBadRequest, "Order cannot be cancelled")
		return
	}

	note := input.Reason
	if note == "" {
		note = "Order cancelled"
	}
	s.transitionLocked(order, entity.OrderStatusCancelled, note)

	c.JSON(http.StatusOK, cloneOrder(order))
}

func (s *Server) orderTrackingHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid order ID")
		return
	}

	user := currentUser(c)

	s.mu.RLock()
	order, ok := s.orders[id]
	track, hasTrack := s.tracking[id]
	if ok && hasTrack && s.orderVisible(order, user) {
		track = cloneTracking(track)
	} else {
		ok = false
	}
	s.mu.RUnlock()

	if !ok {
		s.detail(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, track)
}

func (s *Server) updateShippingHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid order ID")
		return
	}

	var input entity.ShippingUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		s.detail(c, http.StatusNotFound, "Order not found")
		return
	}
	if user.Role == entity.RoleSeller && order.SellerID != user.ID {
		s.detail(c, http.StatusForbidden, "Not authorized to update this order")
		return
	}

	if input.ShippingAddress != "" {
		order.ShippingAddress = input.ShippingAddress
	}
	order.UpdatedAt = time.Now().UTC()

	if track, ok := s.tracking[id]; ok {
		if input.Carrier != "" {
			track.Carrier = input.Carrier
		}
		if input.TrackingNumber != "" {
			track.TrackingNumber = input.TrackingNumber
		}
	}

	c.JSON(http.StatusOK, cloneOrder(order))
}

func (s *Server) orderStatsHandler(c *gin.Context) {
	var start, end time.Time
	if raw := c.Query("start_date"); raw != "" {
		v, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			s.detail(c, http.StatusUnprocessableEntity, "Invalid start_date")
			return
		}
		start = v
	}
	if raw := c.Query("end_date"); raw != "" {
		v, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			s.detail(c, http.StatusUnprocessableEntity, "Invalid end_date")
			return
		}
		end = v
	}

	user := currentUser(c)

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := entity.OrderStats{
		ByStatus:     make(map[string]int),
		TotalRevenue: decimal.Zero,
	}
	for _, order := range s.visibleOrdersLocked(user) {
		if !start.IsZero() && order.CreatedAt.Before(start) {
			continue
		}
		if !end.IsZero() && order.CreatedAt.After(end) {
			continue
		}
		stats.TotalOrders++
		stats.ByStatus[string(order.Status)]++
		if order.Status != entity.OrderStatusCancelled {
			stats.TotalRevenue = stats.TotalRevenue.Add(order.TotalAmount)
		}
	}

	c.JSON(http.StatusOK, stats)
}

func (s *Server) transitionLocked(order *entity.Order, status entity.OrderStatus, note string) {
	now := time.Now().UTC()
	order.Status = status
	order.UpdatedAt = now

	track, ok := s.tracking[order.ID]
	if !ok {
		track = &entity.OrderTracking{OrderID: order.ID}
		s.tracking[order.ID] = track
	}
	track.Status = status
	track.History = append(track.History, &entity.TrackingEvent{
		Status:    status,
		Note:      note,
		Timestamp: now,
	})
}

func validStatus(status entity.OrderStatus) bool {
	switch status {
	case entity.OrderStatusPending, entity.OrderStatusConfirmed, entity.OrderStatusShipped,
		entity.OrderStatusDelivered, entity.OrderStatusCancelled:
		return true
	}
	return false
}
