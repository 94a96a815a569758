package nexustest

import (
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *Server) listUsersHandler(c *gin.Context) {
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
	role := entity.Role(c.Query("role"))
	search := strings.ToLower(c.Query("search"))

	s.mu.RLock()
	matched := make([]*entity.User, 0, len(s.users))
	for _, record := range s.users {
		user := record.user
		if role != "" && user.Role != role {
			continue
		}
		if search != "" && !userMatches(&user, search) {
			continue
		}
		matched = append(matched, &user)
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b *entity.User) int {
		if cmp := a.CreatedAt.Compare(b.CreatedAt); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	c.JSON(http.StatusOK, window(matched, (page-1)*limit, limit))
}

func userMatches(u *entity.User, search string) bool {
	return strings.Contains(strings.ToLower(u.Email), search) ||
		strings.Contains(strings.ToLower(u.Username), search) ||
		strings.Contains(strings.ToLower(u.FullName), search)
}

func (s *Server) getUserHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid user ID")
		return
	}

	s.mu.RLock()
	record, ok := s.users[id]
	var user entity.User
	if ok {
		user = record.user
	}
	s.mu.RUnlock()

	if !ok {
		s.detail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) updateUserHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid user ID")
		return
	}

	var input entity.UserUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	actor := currentUser(c)
	if actor.Role != entity.RoleAdmin && actor.ID != id {
		s.detail(c, http.StatusForbidden, "Insufficient permissions")
		return
	}
	if actor.Role != entity.RoleAdmin && (input.Role != nil || input.IsActive != nil) {
		s.detail(c, http.StatusForbidden, "Insufficient permissions")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[id]
	if !ok {
		s.detail(c, http.StatusNotFound, "User not found")
		return
	}

	if input.Email != nil && *input.Email != record.user.Email {
		if _, exists := s.userByEmailLocked(*input.Email); exists {
			s.detail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		record.user.Email = *input.Email
	}
	if input.FullName != nil {
		record.user.FullName = *input.FullName
	}
	if input.Role != nil {
		record.user.Role = *input.Role
	}
	if input.IsActive != nil {
		record.user.IsActive = *input.IsActive
	}
	if input.CompanyName != nil {
		record.user.CompanyName = *input.CompanyName
	}
	if input.Phone != nil {
		record.user.Phone = *input.Phone
	}
	if input.Address != nil {
		record.user.Address = *input.Address
	}
	record.user.UpdatedAt = time.Now().UTC()

	c.JSON(http.StatusOK, record.user)
}

func (s *Server) deleteUserHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid user ID")
		return
	}

	s.mu.Lock()
	_, ok := s.users[id]
	delete(s.users, id)
	delete(s.carts, id)
	s.mu.Unlock()

	if !ok {
		s.detail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, entity.MessageResponse{Message: "User deleted successfully"})
}

func (s *Server) uploadProfilePictureHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		s.detail(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	user := currentUser(c)
	url := "/static/profile-pictures/" + user.ID.String() + filepath.Ext(file.Filename)

	c.JSON(http.StatusOK, entity.ProfilePicture{
		Message: "Profile picture uploaded successfully",
		URL:     url,
	})
}

func (s *Server) myStatsHandler(c *gin.Context) {
	user := currentUser(c)

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := entity.UserStats{
		TotalSpent:  decimal.Zero,
		MemberSince: user.CreatedAt,
	}
	for _, order := range s.orders {
		if order.BuyerID != user.ID {
			continue
		}
		stats.TotalOrders++
		if order.Status != entity.OrderStatusCancelled {
			stats.TotalSpent = stats.TotalSpent.Add(order.TotalAmount)
		}
	}

	c.JSON(http.StatusOK, stats)
}
