package api

import (
	"context"
	"net/http"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/httpclient"
)

// AdminService proxies endpoints restricted to the admin role.
type AdminService struct {
	http *httpclient.Client
}

func (s *AdminService) Users(ctx context.Context, params UserListParams) ([]*entity.User, error) {
	const op = "api.AdminService.Users"

	var users []*entity.User
	err := s.http.DoJSON(ctx, "admin.users", http.MethodGet, "/admin/users", params.Values(), nil, &users)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch users")
	}

	return users, nil
}

func (s *AdminService) Analytics(ctx context.Context) (*entity.Analytics, error) {
	const op = "api.AdminService.Analytics"

	var analytics entity.Analytics
	err := s.http.DoJSON(ctx, "admin.analytics", http.MethodGet, "/admin/analytics", nil, nil, &analytics)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch analytics")
	}

	return &analytics, nil
}
