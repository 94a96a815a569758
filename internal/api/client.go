// Package api wraps the B2B Nexus REST backend. Every method issues
// exactly one HTTP request and returns the decoded response unchanged.
package api

import (
	"sync"

	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/httpclient"
)

type (
	// TokenStore holds the bearer token shared by every service.
	// Safe for concurrent use.
	TokenStore struct {
		mu    sync.RWMutex
		token string
	}

	Client struct {
		Auth     *AuthService
		Orders   *OrdersService
		Users    *UsersService
		Products *ProductsService
		Cart     *CartService
		Admin    *AdminService
	}
)

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *TokenStore) Clear() {
	s.Set("")
}

func New(http *httpclient.Client, tokens *TokenStore) *Client {
	return &Client{
		Auth:     &AuthService{http: http, tokens: tokens},
		Orders:   &OrdersService{http: http},
		Users:    &UsersService{http: http},
		Products: &ProductsService{http: http},
		Cart:     &CartService{http: http},
		Admin:    &AdminService{http: http},
	}
}
