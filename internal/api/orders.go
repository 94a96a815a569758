package api

import (
	"context"
	"net/http"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/httpclient"

	"github.com/google/uuid"
)

// OrdersService proxies the backend's order endpoints.
type OrdersService struct {
	http *httpclient.Client
}

type (
	statusUpdateRequest struct {
		Status entity.OrderStatus `json:"status"`
		Notes  string             `json:"notes,omitempty"`
	}

	cancelRequest struct {
		Reason string `json:"reason,omitempty"`
	}
)

func (s *OrdersService) List(ctx context.Context, params OrderListParams) ([]*entity.Order, error) {
	const op = "api.OrdersService.List"

	var orders []*entity.Order
	err := s.http.DoJSON(ctx, "orders.list", http.MethodGet, "/orders", params.Values(), nil, &orders)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch orders")
	}

	return orders, nil
}

func (s *OrdersService) Get(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	const op = "api.OrdersService.Get"

	var order entity.Order
	err := s.http.DoJSON(ctx, "orders.get", http.MethodGet, "/orders/"+id.String(), nil, nil, &order)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch order")
	}

	return &order, nil
}

func (s *OrdersService) Create(ctx context.Context, input *entity.OrderCreate) (*entity.Order, error) {
	const op = "api.OrdersService.Create"

	var order entity.Order
	err := s.http.DoJSON(ctx, "orders.create", http.MethodPost, "/orders", nil, input, &order)
	if err != nil {
		return nil, apiError(op, err, "Failed to create order")
	}

	return &order, nil
}

func (s *OrdersService) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.OrderStatus,
	notes string,
) (*entity.Order, error) {
	const op = "api.OrdersService.UpdateStatus"

	body := statusUpdateRequest{Status: status, Notes: notes}

	var order entity.Order
	err := s.http.DoJSON(
		ctx, "orders.update_status", http.MethodPut, "/orders/"+id.String()+"/status", nil, body, &order,
	)
	if err != nil {
		return nil, apiError(op, err, "Failed to update order status")
	}

	return &order, nil
}

func (s *OrdersService) Cancel(ctx context.Context, id uuid.UUID, reason string) (*entity.Order, error) {
	const op = "api.OrdersService.Cancel"

	body := cancelRequest{Reason: reason}

	var order entity.Order
	err := s.http.DoJSON(
		ctx, "orders.cancel", http.MethodPut, "/orders/"+id.String()+"/cancel", nil, body, &order,
	)
	if err != nil {
		return nil, apiError(op, err, "Failed to cancel order")
	}

	return &order, nil
}

func (s *OrdersService) Tracking(ctx context.Context, id uuid.UUID) (*entity.OrderTracking, error) {
	const op = "api.OrdersService.Tracking"

	var tracking entity.OrderTracking
	err := s.http.DoJSON(
		ctx, "orders.tracking", http.MethodGet, "/orders/"+id.String()+"/tracking", nil, nil, &tracking,
	)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch tracking info")
	}

	return &tracking, nil
}

func (s *OrdersService) UpdateShipping(
	ctx context.Context,
	id uuid.UUID,
	input *entity.ShippingUpdate,
) (*entity.Order, error) {
	const op = "api.OrdersService.UpdateShipping"

	var order entity.Order
	err := s.http.DoJSON(
		ctx, "orders.update_shipping", http.MethodPut, "/orders/"+id.String()+"/shipping", nil, input, &order,
	)
	if err != nil {
		return nil, apiError(op, err, "Failed to update shipping info")
	}

	return &order, nil
}

// ListByStatus merges status into the list query, so
// ListByStatus(ctx, "shipped", OrderListParams{Page: 2}) issues
// GET /orders?page=2&status=shipped.
func (s *OrdersService) ListByStatus(
	ctx context.Context,
	status entity.OrderStatus,
	params OrderListParams,
) ([]*entity.Order, error) {
	const op = "api.OrdersService.ListByStatus"

	params.Status = status

	var orders []*entity.Order
	err := s.http.DoJSON(ctx, "orders.list_by_status", http.MethodGet, "/orders", params.Values(), nil, &orders)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch orders")
	}

	return orders, nil
}

func (s *OrdersService) SellerOrders(ctx context.Context, params OrderListParams) ([]*entity.Order, error) {
	const op = "api.OrdersService.SellerOrders"

	var orders []*entity.Order
	err := s.http.DoJSON(ctx, "orders.seller", http.MethodGet, "/orders/seller", params.Values(), nil, &orders)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch seller orders")
	}

	return orders, nil
}

func (s *OrdersService) Stats(ctx context.Context, params StatsParams) (*entity.OrderStats, error) {
	const op = "api.OrdersService.Stats"

	var stats entity.OrderStats
	err := s.http.DoJSON(ctx, "orders.stats", http.MethodGet, "/orders/stats", params.Values(), nil, &stats)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch order stats")
	}

	return &stats, nil
}
