package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/httpclient"

	"github.com/google/uuid"
)

// CartService proxies the buyer's cart endpoints.
type CartService struct {
	http *httpclient.Client
}

func (s *CartService) Get(ctx context.Context) (*entity.Cart, error) {
	const op = "api.CartService.Get"

	var cart entity.Cart
	err := s.http.DoJSON(ctx, "cart.get", http.MethodGet, "/cart", nil, nil, &cart)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch cart")
	}

	return &cart, nil
}

// Add sends product and quantity as query parameters; the endpoint takes
// no body.
func (s *CartService) Add(
	ctx context.Context,
	productID uuid.UUID,
	quantity int,
) (*entity.MessageResponse, error) {
	const op = "api.CartService.Add"

	query := url.Values{}
	query.Set("product_id", productID.String())
	query.Set("quantity", strconv.Itoa(quantity))

	var msg entity.MessageResponse
	err := s.http.DoJSON(ctx, "cart.add", http.MethodPost, "/cart/add", query, nil, &msg)
	if err != nil {
		return nil, apiError(op, err, "Failed to add item to cart")
	}

	return &msg, nil
}
