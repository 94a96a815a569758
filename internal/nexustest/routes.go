package nexustest

import (
	"net/http"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/gin-gonic/gin"
)

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := s.router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.registerHandler)
		auth.POST("/login", s.loginHandler)
		auth.GET("/me", s.authRequired(), s.meHandler)
		auth.PUT("/profile", s.authRequired(), s.updateProfileHandler)
		auth.PUT("/change-password", s.authRequired(), s.changePasswordHandler)
		auth.POST("/forgot-password", s.forgotPasswordHandler)
		auth.POST("/reset-password", s.resetPasswordHandler)
	}

	users := api.Group("/users", s.authRequired())
	{
		users.GET("", s.requireRole(entity.RoleAdmin), s.listUsersHandler)
		users.GET("/me/stats", s.myStatsHandler)
		users.POST("/me/profile-picture", s.uploadProfilePictureHandler)
		users.GET("/:user_id", s.getUserHandler)
		users.PUT("/:user_id", s.updateUserHandler)
		users.DELETE("/:user_id", s.requireRole(entity.RoleAdmin), s.deleteUserHandler)
	}

	products := api.Group("/products")
	{
		products.GET("", s.listProductsHandler)
		products.GET("/:product_id", s.getProductHandler)

		sellers := products.Group("", s.authRequired(), s.requireRole(entity.RoleSeller, entity.RoleAdmin))
		sellers.POST("", s.createProductHandler)
		sellers.PUT("/:product_id", s.updateProductHandler)
		sellers.DELETE("/:product_id", s.deleteProductHandler)
	}

	cart := api.Group("/cart", s.authRequired(), s.requireRole(entity.RoleBuyer))
	{
		cart.GET("", s.getCartHandler)
		cart.POST("/add", s.addToCartHandler)
	}

	orders := api.Group("/orders", s.authRequired())
	{
		orders.GET("", s.listOrdersHandler)
		orders.POST("", s.requireRole(entity.RoleBuyer), s.createOrderHandler)
		orders.GET("/stats", s.orderStatsHandler)
		orders.GET("/seller", s.requireRole(entity.RoleSeller, entity.RoleAdmin), s.sellerOrdersHandler)
		orders.GET("/:order_id", s.getOrderHandler)
		orders.PUT("/:order_id/status", s.requireRole(entity.RoleSeller, entity.RoleAdmin), s.updateOrderStatusHandler)
		orders.PUT("/:order_id/cancel", s.cancelOrderHandler)
		orders.GET("/:order_id/tracking", s.orderTrackingHandler)
		orders.PUT("/:order_id/shipping", s.requireRole(entity.RoleSeller, entity.RoleAdmin), s.updateShippingHandler)
	}

	admin := api.Group("/admin", s.authRequired(), s.requireRole(entity.RoleAdmin))
	{
		admin.GET("/users", s.adminUsersHandler)
		admin.GET("/analytics", s.analyticsHandler)
	}
}
