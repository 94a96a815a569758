package api

import (
	"context"
	"net/http"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/httpclient"

	"github.com/google/uuid"
)

// ProductsService proxies the backend's product catalog endpoints.
type ProductsService struct {
	http *httpclient.Client
}

func (s *ProductsService) List(ctx context.Context, params ProductListParams) ([]*entity.Product, error) {
	const op = "api.ProductsService.List"

	var products []*entity.Product
	err := s.http.DoJSON(ctx, "products.list", http.MethodGet, "/products", params.Values(), nil, &products)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch products")
	}

	return products, nil
}

func (s *ProductsService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	const op = "api.ProductsService.Get"

	var product entity.Product
	err := s.http.DoJSON(ctx, "products.get", http.MethodGet, "/products/"+id.String(), nil, nil, &product)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch product")
	}

	return &product, nil
}

func (s *ProductsService) Create(ctx context.Context, input *entity.ProductCreate) (*entity.Product, error) {
	const op = "api.ProductsService.Create"

	var product entity.Product
	err := s.http.DoJSON(ctx, "products.create", http.MethodPost, "/products", nil, input, &product)
	if err != nil {
		return nil, apiError(op, err, "Failed to create product")
	}

	return &product, nil
}

func (s *ProductsService) Update(
	ctx context.Context,
	id uuid.UUID,
	input *entity.ProductUpdate,
) (*entity.Product, error) {
	const op = "api.ProductsService.Update"

	var product entity.Product
	err := s.http.DoJSON(ctx, "products.update", http.MethodPut, "/products/"+id.String(), nil, input, &product)
	if err != nil {
		return nil, apiError(op, err, "Failed to update product")
	}

	return &product, nil
}

func (s *ProductsService) Delete(ctx context.Context, id uuid.UUID) (*entity.MessageResponse, error) {
	const op = "api.ProductsService.Delete"

	var msg entity.MessageResponse
	err := s.http.DoJSON(ctx, "products.delete", http.MethodDelete, "/products/"+id.String(), nil, nil, &msg)
	if err != nil {
		return nil, apiError(op, err, "Failed to delete product")
	}

	return &msg, nil
}
