package nexustest

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *Server) createProductHandler(c *gin.Context) {
	var input entity.ProductCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if input.Name == "" || input.Category == "" {
		s.detail(c, http.StatusUnprocessableEntity, "Field required")
		return
	}

	user := currentUser(c)
	now := time.Now().UTC()

	product := entity.Product{
		ID:             uuid.New(),
		Name:           input.Name,
		AlternateNames: input.AlternateNames,
		Description:    input.Description,
		Price:          input.Price,
		StockQuantity:  input.StockQuantity,
		Category:       input.Category,
		Tags:           input.Tags,
		Images:         input.Images,
		SellerID:       user.ID,
		SellerName:     user.FullName,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.mu.Lock()
	s.products[product.ID] = &product
	s.mu.Unlock()

	c.JSON(http.StatusOK, cloneProduct(&product))
}

func (s *Server) listProductsHandler(c *gin.Context) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil || skip < 0 {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid skip")
		return
	}
	limit, err := queryInt(c, "limit", _defaultLimit)
	if err != nil || limit < 0 {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid limit")
		return
	}

	var minPrice, maxPrice *decimal.Decimal
	if raw := c.Query("min_price"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			s.detail(c, http.StatusUnprocessableEntity, "Invalid min_price")
			return
		}
		minPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			s.detail(c, http.StatusUnprocessableEntity, "Invalid max_price")
			return
		}
		maxPrice = &v
	}

	category := c.Query("category")
	search := strings.ToLower(c.Query("search"))

	s.mu.RLock()
	matched := make([]*entity.Product, 0, len(s.products))
	for _, product := range s.products {
		if !product.IsActive {
			continue
		}
		if category != "" && product.Category != category {
			continue
		}
		if search != "" && !productMatches(product, search) {
			continue
		}
		if minPrice != nil && product.Price.LessThan(*minPrice) {
			continue
		}
		if maxPrice != nil && product.Price.GreaterThan(*maxPrice) {
			continue
		}
		matched = append(matched, cloneProduct(product))
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b *entity.Product) int {
		if cmp := a.CreatedAt.Compare(b.CreatedAt); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	c.JSON(http.StatusOK, window(matched, skip, limit))
}

func productMatches(p *entity.Product, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	for _, name := range p.AlternateNames {
		if strings.Contains(strings.ToLower(name), search) {
			return true
		}
	}
	for _, tag := range p.Tags {
		if strings.EqualFold(tag, search) {
			return true
		}
	}
	return false
}

func (s *Server) getProductHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid product ID")
		return
	}

	s.mu.RLock()
	product, ok := s.products[id]
	if ok && product.IsActive {
		product = cloneProduct(product)
	} else {
		ok = false
	}
	s.mu.RUnlock()

	if !ok {
		s.detail(c, http.StatusNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) updateProductHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid product ID")
		return
	}

	var input entity.ProductUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		s.detail(c, http.StatusNotFound, "Product not found")
		return
	}
	if user.Role == entity.RoleSeller && product.SellerID != user.ID {
		s.detail(c, http.StatusForbidden, "Not authorized to update this product")
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.AlternateNames != nil {
		product.AlternateNames = slices.Clone(input.AlternateNames)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Tags != nil {
		product.Tags = slices.Clone(input.Tags)
	}
	if input.Images != nil {
		product.Images = slices.Clone(input.Images)
	}
	product.UpdatedAt = time.Now().UTC()

	c.JSON(http.StatusOK, cloneProduct(product))
}

func (s *Server) deleteProductHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		s.detail(c, http.StatusUnprocessableEntity, "Invalid product ID")
		return
	}

	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		s.detail(c, http.StatusNotFound, "Product not found")
		return
	}
	if user.Role == entity.RoleSeller && product.SellerID != user.ID {
		s.detail(c, http.StatusForbidden, "Not authorized to delete this product")
		return
	}

	product.IsActive = false
	product.UpdatedAt = time.Now().UTC()

	c.JSON(http.StatusOK, entity.MessageResponse{Message: "Product deleted successfully"})
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func window[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
