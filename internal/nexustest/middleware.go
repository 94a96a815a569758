package nexustest

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = s.log.GenerateRequestID()
		}
		ctx := s.log.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)

		s.log.LogAttrs(c.Request.Context(), logger.InfoLevel, "HTTP request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.String("duration", latency.String()),
		)
	}
}

func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			s.detail(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		userID, ok := s.sessions.Get(token)
		if !ok {
			s.detail(c, http.StatusUnauthorized, "Token expired")
			c.Abort()
			return
		}

		s.mu.RLock()
		record, ok := s.users[userID]
		s.mu.RUnlock()
		if !ok {
			s.detail(c, http.StatusUnauthorized, "User not found")
			c.Abort()
			return
		}

		c.Set(_ctxUserKey, record.user)
		c.Next()
	}
}

func (s *Server) requireRole(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(roles, currentUser(c).Role) {
			s.detail(c, http.StatusForbidden, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
