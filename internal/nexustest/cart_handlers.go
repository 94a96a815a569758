package nexustest

import (
	"net/http"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *Server) getCartHandler(c *gin.Context) {
	user := currentUser(c)

	s.mu.Lock()
	cart := s.cartForLocked(user.ID)
	cart = cloneCart(cart)
	s.mu.Unlock()

	c.JSON(http.StatusOK, cart)
}

// addToCartHandler reads product_id and quantity from the query string; the
// endpoint takes no body.
func (s *Server) addToCartHandler(c *gin.Context) {
	rawID := c.Query("product_id")
	if rawID == "" {
		s.detail(c, http.StatusUnprocessableEntity, "Field required")
		return
	}
	productID, err := uuid.Parse(rawID)
	if err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid product ID")
		return
	}
	quantity, err := queryInt(c, "quantity", 1)
	if err != nil || quantity < 1 {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid quantity")
		return
	}

	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok || !product.IsActive {
		s.detail(c, http.StatusNotFound, "Product not found")
		return
	}
	if product.StockQuantity < quantity {
		s.detail(c, http.StatusBadRequest, "Insufficient stock")
		return
	}

	cart := s.cartForLocked(user.ID)

	var line *entity.OrderItem
	for _, item := range cart.Items {
		if item.ProductID == productID {
			line = item
			break
		}
	}
	if line != nil {
		line.Quantity += quantity
	} else {
		cart.Items = append(cart.Items, &entity.OrderItem{
			ProductID:   productID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    quantity,
			SellerID:    product.SellerID,
		})
	}

	cart.TotalAmount = itemsTotal(cart.Items)
	cart.UpdatedAt = time.Now().UTC()

	c.JSON(http.StatusOK, entity.MessageResponse{Message: "Item added to cart successfully"})
}

func (s *Server) cartForLocked(userID uuid.UUID) *entity.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = &entity.Cart{
			ID:          uuid.New(),
			UserID:      userID,
			Items:       []*entity.OrderItem{},
			TotalAmount: decimal.Zero,
			UpdatedAt:   time.Now().UTC(),
		}
		s.carts[userID] = cart
	}
	return cart
}
