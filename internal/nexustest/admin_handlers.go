package nexustest

import (
	"net/http"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (s *Server) adminUsersHandler(c *gin.Context) {
	s.listUsersHandler(c)
}

// analyticsHandler sums revenue over every order regardless of status,
// matching the marketplace dashboard's headline numbers.
func (s *Server) analyticsHandler(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	analytics := entity.Analytics{
		TotalUsers:   len(s.users),
		TotalOrders:  len(s.orders),
		TotalRevenue: decimal.Zero,
	}
	for _, product := range s.products {
		if product.IsActive {
			analytics.TotalProducts++
		}
	}
	for _, order := range s.orders {
		analytics.TotalRevenue = analytics.TotalRevenue.Add(order.TotalAmount)
	}

	c.JSON(http.StatusOK, analytics)
}
