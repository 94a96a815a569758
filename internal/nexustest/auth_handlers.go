package nexustest

import (
	"net/http"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) registerHandler(c *gin.Context) {
	var input entity.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if input.Email == "" || input.Username == "" || input.Password == "" || input.FullName == "" {
		s.detail(c, http.StatusUnprocessableEntity, "Field required")
		return
	}

	role := input.Role
	if role == "" {
		role = entity.RoleBuyer
	}
	switch role {
	case entity.RoleAdmin, entity.RoleSeller, entity.RoleBuyer:
	default:
		s.detail(c, http.StatusUnprocessableEntity, "Invalid role")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.userByEmailLocked(input.Email); ok {
		s.detail(c, http.StatusBadRequest, "Email already registered")
		return
	}
	for _, record := range s.users {
		if record.user.Username == input.Username {
			s.detail(c, http.StatusBadRequest, "Username already taken")
			return
		}
	}

	now := time.Now().UTC()
	user := entity.User{
		ID:          uuid.New(),
		Email:       input.Email,
		Username:    input.Username,
		FullName:    input.FullName,
		Role:        role,
		IsActive:    true,
		CompanyName: input.CompanyName,
		Phone:       input.Phone,
		Address:     input.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.users[user.ID] = &userRecord{user: user, password: input.Password}

	c.JSON(http.StatusOK, entity.Token{
		AccessToken: s.issueToken(user.ID),
		TokenType:   "bearer",
		User:        &user,
	})
}

func (s *Server) loginHandler(c *gin.Context) {
	var input entity.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	s.mu.RLock()
	record, ok := s.userByEmailLocked(input.Email)
	if !ok || record.password != input.Password {
		s.mu.RUnlock()
		s.detail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	user := record.user
	s.mu.RUnlock()

	if !user.IsActive {
		s.detail(c, http.StatusUnauthorized, "Account deactivated")
		return
	}
	c.JSON(http.StatusOK, entity.Token{
		AccessToken: s.issueToken(user.ID),
		TokenType:   "bearer",
		User:        &user,
	})
}

func (s *Server) meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// updateProfileHandler merges the whitelisted keys of an arbitrary JSON
// object into the current user. Unknown keys are accepted and discarded.
func (s *Server) updateProfileHandler(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[user.ID]
	if !ok {
		s.detail(c, http.StatusNotFound, "User not found")
		return
	}

	if v, ok := updates["full_name"].(string); ok {
		record.user.FullName = v
	}
	if v, ok := updates["phone"].(string); ok {
		record.user.Phone = v
	}
	if v, ok := updates["address"].(string); ok {
		record.user.Address = v
	}
	if v, ok := updates["company_name"].(string); ok {
		record.user.CompanyName = v
	}
	if v, ok := updates["company"].(string); ok {
		record.user.CompanyName = v
	}
	record.user.UpdatedAt = time.Now().UTC()

	c.JSON(http.StatusOK, record.user)
}

func (s *Server) changePasswordHandler(c *gin.Context) {
	var input entity.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if input.NewPassword == "" {
		s.detail(c, http.StatusUnprocessableEntity, "Field required")
		return
	}

	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[user.ID]
	if !ok {
		s.detail(c, http.StatusNotFound, "User not found")
		return
	}
	if record.password != input.CurrentPassword {
		s.detail(c, http.StatusBadRequest, "Current password is incorrect")
		return
	}

	record.password = input.NewPassword
	c.JSON(http.StatusOK, entity.MessageResponse{Message: "Password updated successfully"})
}

// forgotPasswordHandler answers the same message whether or not the email is
// known, so account existence does not leak.
func (s *Server) forgotPasswordHandler(c *gin.Context) {
	var input entity.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	s.mu.Lock()
	if record, ok := s.userByEmailLocked(input.Email); ok {
		s.resetTokens[uuid.NewString()] = record.user.ID
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, entity.MessageResponse{
		Message: "If an account exists for that email, a reset link has been sent",
	})
}

func (s *Server) resetPasswordHandler(c *gin.Context) {
	var input entity.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if input.NewPassword == "" {
		s.detail(c, http.StatusUnprocessableEntity, "Field required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.resetTokens[input.Token]
	if !ok {
		s.detail(c, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}
	record, ok := s.users[userID]
	if !ok {
		s.detail(c, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}

	record.password = input.NewPassword
	delete(s.resetTokens, input.Token)

	c.JSON(http.StatusOK, entity.MessageResponse{Message: "Password reset successful"})
}
