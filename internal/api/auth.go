package api

import (
	"context"
	"net/http"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/httpclient"
)

// AuthService proxies the backend's auth endpoints and keeps the shared
// token store in sync with login state.
type AuthService struct {
	http   *httpclient.Client
	tokens *TokenStore
}

func (s *AuthService) Register(ctx context.Context, input *entity.RegisterInput) (*entity.Token, error) {
	const op = "api.AuthService.Register"

	var token entity.Token
	err := s.http.DoJSON(ctx, "auth.register", http.MethodPost, "/auth/register", nil, input, &token)
	if err != nil {
		return nil, apiError(op, err, "Registration failed")
	}

	s.tokens.Set(token.AccessToken)

	return &token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.Token, error) {
	const op = "api.AuthService.Login"

	input := entity.LoginInput{Email: email, Password: password}

	var token entity.Token
	err := s.http.DoJSON(ctx, "auth.login", http.MethodPost, "/auth/login", nil, input, &token)
	if err != nil {
		return nil, apiError(op, err, "Login failed")
	}

	s.tokens.Set(token.AccessToken)

	return &token, nil
}

// Logout drops the stored token. The backend keeps no session state, so
// no request is sent.
func (s *AuthService) Logout() {
	s.tokens.Clear()
}

func (s *AuthService) Me(ctx context.Context) (*entity.User, error) {
	const op = "api.AuthService.Me"

	var user entity.User
	err := s.http.DoJSON(ctx, "auth.me", http.MethodGet, "/auth/me", nil, nil, &user)
	if err != nil {
		return nil, apiError(op, err, "Failed to fetch profile")
	}

	return &user, nil
}

// UpdateProfile sends only the fields set on input; a nil or empty input
// sends {}.
func (s *AuthService) UpdateProfile(ctx context.Context, input *entity.ProfileUpdate) (*entity.User, error) {
	const op = "api.AuthService.UpdateProfile"

	if input == nil {
		input = &entity.ProfileUpdate{}
	}

	var user entity.User
	err := s.http.DoJSON(ctx, "auth.update_profile", http.MethodPut, "/auth/profile", nil, input, &user)
	if err != nil {
		return nil, apiError(op, err, "Failed to update profile")
	}

	return &user, nil
}

func (s *AuthService) ChangePassword(
	ctx context.Context,
	currentPassword, newPassword string,
) (*entity.MessageResponse, error) {
	const op = "api.AuthService.ChangePassword"

	input := entity.ChangePasswordInput{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}

	var msg entity.MessageResponse
	err := s.http.DoJSON(ctx, "auth.change_password", http.MethodPut, "/auth/change-password", nil, input, &msg)
	if err != nil {
		return nil, apiError(op, err, "Failed to change password")
	}

	return &msg, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (*entity.MessageResponse, error) {
	const op = "api.AuthService.ForgotPassword"

	input := entity.ForgotPasswordInput{Email: email}

	var msg entity.MessageResponse
	err := s.http.DoJSON(ctx, "auth.forgot_password", http.MethodPost, "/auth/forgot-password", nil, input, &msg)
	if err != nil {
		return nil, apiError(op, err, "Failed to send reset email")
	}

	return &msg, nil
}

func (s *AuthService) ResetPassword(
	ctx context.Context,
	token, newPassword string,
) (*entity.MessageResponse, error) {
	const op = "api.AuthService.ResetPassword"

	input := entity.ResetPasswordInput{Token: token, NewPassword: newPassword}

	var msg entity.MessageResponse
	err := s.http.DoJSON(ctx, "auth.reset_password", http.MethodPost, "/auth/reset-password", nil, input, &msg)
	if err != nil {
		return nil, apiError(op, err, "Failed to reset password")
	}

	return &msg, nil
}
