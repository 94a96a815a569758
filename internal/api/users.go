package api

import (
	"context"
	"io"
	"net/http"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/httpclient"

	"github.com/google/uuid"
)

// UsersService proxies the backend's user administration and
// self-service endpoints.
type UsersService struct {
	http *httpclient.Client
}

func (s *UsersService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	const op = "api.UsersService.Get"

	var user entity.User
	err := s.http.DoJSON(ctx, "users.get", http.MethodGet, "/users/"+id.String(), nil, nil, &user)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch user")
	}

	return &user, nil
}

func (s *UsersService) List(ctx context.Context, params UserListParams) ([]*entity.User, error) {
	const op = "api.UsersService.List"

	var users []*entity.User
	err := s.http.DoJSON(ctx, "users.list", http.MethodGet, "/users", params.Values(), nil, &users)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch users")
	}

	return users, nil
}

func (s *UsersService) Update(
	ctx context.Context,
	id uuid.UUID,
	input *entity.UserUpdate,
) (*entity.User, error) {
	const op = "api.UsersService.Update"

	var user entity.User
	err := s.http.DoJSON(ctx, "users.update", http.MethodPut, "/users/"+id.String(), nil, input, &user)
	if err != nil {
		return nil, apiError(op, err, "Failed to update user")
	}

	return &user, nil
}

func (s *UsersService) Delete(ctx context.Context, id uuid.UUID) (*entity.MessageResponse, error) {
	const op = "api.UsersService.Delete"

	var msg entity.MessageResponse
	err := s.http.DoJSON(ctx, "users.delete", http.MethodDelete, "/users/"+id.String(), nil, nil, &msg)
	if err != nil {
		return nil, apiError(op, err, "Failed to delete user")
	}

	return &msg, nil
}

func (s *UsersService) UploadProfilePicture(
	ctx context.Context,
	filename string,
	file io.Reader,
) (*entity.ProfilePicture, error) {
	const op = "api.UsersService.UploadProfilePicture"

	var picture entity.ProfilePicture
	err := s.http.DoMultipart(
		ctx, "users.upload_picture", "/users/me/profile-picture", "file", filename, file, &picture,
	)
	if err != nil {
		return nil, apiError(op, err, "Failed to upload profile picture")
	}

	return &picture, nil
}

func (s *UsersService) MyStats(ctx context.Context) (*entity.UserStats, error) {
	const op = "api.UsersService.MyStats"

	var stats entity.UserStats
	err := s.http.DoJSON(ctx, "users.my_stats", http.MethodGet, "/users/me/stats", nil, nil, &stats)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch user stats")
	}

	return &stats, nil
}
