// Package nexustest is an in-memory double of the B2B Nexus backend for
// integration tests and local development. It serves the real API's routes,
// role rules and {"detail": ...} error envelopes over gin, with all state
// held in process maps and bearer sessions kept in an LRU cache.
package nexustest

import (
	"fmt"
	"sync"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/cache"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/logger"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/metric"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	_sessionCapacity = 256
	_sessionTTL      = 1 * time.Hour

	_defaultPage  = 1
	_defaultLimit = 20

	_ctxUserKey = "nexustest.user"
)

type Server struct {
	router   *gin.Engine
	log      logger.Logger
	sessions *cache.LRUCache[string, uuid.UUID]

	mu          sync.RWMutex
	users       map[uuid.UUID]*userRecord
	products    map[uuid.UUID]*entity.Product
	orders      map[uuid.UUID]*entity.Order
	carts       map[uuid.UUID]*entity.Cart
	tracking    map[uuid.UUID]*entity.OrderTracking
	resetTokens map[string]uuid.UUID
}

type userRecord struct {
	user     entity.User
	password string
}

func NewServer(log logger.Logger, cacheMetrics metric.Cache) (*Server, error) {
	sessions, err := cache.NewLRUCache[string, uuid.UUID]("sessions", _sessionCapacity, log, cacheMetrics)
	if err != nil {
		return nil, fmt.Errorf("nexustest.NewServer: create session cache: %w", err)
	}

	s := &Server{
		log:         log,
		sessions:    sessions,
		users:       make(map[uuid.UUID]*userRecord),
		products:    make(map[uuid.UUID]*entity.Product),
		orders:      make(map[uuid.UUID]*entity.Order),
		carts:       make(map[uuid.UUID]*entity.Cart),
		tracking:    make(map[uuid.UUID]*entity.OrderTracking),
		resetTokens: make(map[string]uuid.UUID),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.Use(s.requestIDMiddleware())
	router.Use(s.loggingMiddleware())
	router.Use(gin.Recovery())

	s.router = router
	s.setupRoutes()

	return s, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.router
}

func (s *Server) detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

func currentUser(c *gin.Context) *entity.User {
	user := c.MustGet(_ctxUserKey).(entity.User)
	return &user
}

func (s *Server) issueToken(userID uuid.UUID) string {
	token := uuid.NewString()
	s.sessions.Put(token, userID, _sessionTTL)
	return token
}
