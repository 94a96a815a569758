package api_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/api"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/nexustest"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/httpclient"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/logger"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/metric"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// IntegrationTestSuite drives the full client through an in-process
// backend double, so every request crosses a real HTTP boundary.
type IntegrationTestSuite struct {
	suite.Suite

	backend *nexustest.Server
	server  *httptest.Server
	log     logger.Logger
	metrics metric.Factory
}

func (s *IntegrationTestSuite) SetupSuite() {
	testLogger, err := logger.NewAdapter(logger.Settings{
		Filename: filepath.Join(s.T().TempDir(), "integration.log"),
		Service:  "nexus-integration",
		Env:      "test",
	})
	s.Require().NoError(err)
	s.log = testLogger
	s.metrics = metric.NewFactory()

	backend, err := nexustest.NewServer(testLogger, s.metrics.Cache())
	s.Require().NoError(err)
	s.backend = backend
	s.server = httptest.NewServer(backend.Engine())
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *IntegrationTestSuite) TearDownTest() {
	s.backend.Reset()
}

// newClient builds a client with its own token store, so tests can act
// as several identities at once.
func (s *IntegrationTestSuite) newClient() (*api.Client, *api.TokenStore) {
	tokens := api.NewTokenStore()
	httpClient, err := httpclient.New(
		s.server.URL+"/api",
		&http.Client{Timeout: 10 * time.Second},
		s.log,
		s.metrics.HTTP(),
		s.metrics.Retry(),
		httpclient.UserAgent("nexus-integration/1.0"),
		httpclient.WithTokenSource(tokens.Token),
	)
	s.Require().NoError(err)

	return api.New(httpClient, tokens), tokens
}

func (s *IntegrationTestSuite) register(ctx context.Context, role entity.Role) (*api.Client, *entity.User, string) {
	client, _ := s.newClient()

	suffix := uuid.NewString()[:8]
	password := gofakeit.Password(true, true, true, false, false, 16)

	token, err := client.Auth.Register(ctx, &entity.RegisterInput{
		Email:    fmt.Sprintf("%s.%s@nexus.dev", role, suffix),
		Username: fmt.Sprintf("%s_%s", role, suffix),
		Password: password,
		FullName: gofakeit.Name(),
		Role:     role,
	})
	s.Require().NoError(err)
	s.Require().NotNil(token.User)

	return client, token.User, password
}

func (s *IntegrationTestSuite) adminClient() (*api.Client, *entity.User) {
	client, tokens := s.newClient()

	suffix := uuid.NewString()[:8]
	user, token := s.backend.SeedUser("admin."+suffix+"@nexus.dev", "adm1n-pa55", entity.RoleAdmin)
	tokens.Set(token)

	return client, user
}

func (s *IntegrationTestSuite) requireAPIError(err error, sentinel error, message string) {
	s.Require().Error(err)
	s.Require().ErrorIs(err, sentinel)

	var apiErr *entity.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Require().Equal(message, apiErr.Message)
}

func (s *IntegrationTestSuite) TestRegisterLoginMe() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	buyer, registered, password := s.register(ctx, entity.RoleBuyer)

	me, err := buyer.Auth.Me(ctx)
	s.Require().NoError(err)
	s.Require().Equal(registered.ID, me.ID)
	s.Require().Equal(registered.Email, me.Email)
	s.Require().Equal(entity.RoleBuyer, me.Role)
	s.Require().True(me.IsActive)

	buyer.Auth.Logout()
	_, err = buyer.Auth.Me(ctx)
	s.requireAPIError(err, entity.ErrUnauthorized, "Invalid token")

	_, err = buyer.Auth.Login(ctx, registered.Email, "wrong-pa55word")
	s.requireAPIError(err, entity.ErrUnauthorized, "Invalid credentials")

	token, err := buyer.Auth.Login(ctx, registered.Email, password)
	s.Require().NoError(err)
	s.Require().Equal("bearer", token.TokenType)

	me, err = buyer.Auth.Me(ctx)
	s.Require().NoError(err)
	s.Require().Equal(registered.ID, me.ID)
}

func (s *IntegrationTestSuite) TestProductLifecycle() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seller, sellerUser, _ := s.register(ctx, entity.RoleSeller)

	cable, err := seller.Products.Create(ctx, &entity.ProductCreate{
		Name:          "Steel cable 10mm",
		Description:   "Galvanized, sold per 100m drum",
		Price:         decimal.RequireFromString("149.90"),
		StockQuantity: 40,
		Category:      "industrial",
		Tags:          []string{"cable", "rigging"},
	})
	s.Require().NoError(err)
	s.Require().Equal(sellerUser.ID, cable.SellerID)
	s.Require().True(cable.IsActive)

	_, err = seller.Products.Create(ctx, &entity.ProductCreate{
		Name:          "Label printer",
		Description:   "Thermal, 300dpi",
		Price:         decimal.RequireFromString("89.00"),
		StockQuantity: 15,
		Category:      "office",
	})
	s.Require().NoError(err)

	anonymous, _ := s.newClient()

	all, err := anonymous.Products.List(ctx, api.ProductListParams{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)

	industrial, err := anonymous.Products.List(ctx, api.ProductListParams{Category: "industrial"})
	s.Require().NoError(err)
	s.Require().Len(industrial, 1)
	s.Require().Equal(cable.ID, industrial[0].ID)

	found, err := anonymous.Products.List(ctx, api.ProductListParams{Search: "steel"})
	s.Require().NoError(err)
	s.Require().Len(found, 1)

	fetched, err := anonymous.Products.Get(ctx, cable.ID)
	s.Require().NoError(err)
	s.Require().Equal(cable.Name, fetched.Name)
	s.Require().True(fetched.Price.Equal(decimal.RequireFromString("149.90")))

	updated, err := seller.Products.Update(ctx, cable.ID, &entity.ProductUpdate{
		Price: decimalPtr(decimal.RequireFromString("139.90")),
	})
	s.Require().NoError(err)
	s.Require().True(updated.Price.Equal(decimal.RequireFromString("139.90")))

	msg, err := seller.Products.Delete(ctx, cable.ID)
	s.Require().NoError(err)
	s.Require().Equal("Product deleted successfully", msg.Message)

	_, err = anonymous.Products.Get(ctx, cable.ID)
	s.requireAPIError(err, entity.ErrNotFound, "Product not found")

	buyer, _, _ := s.register(ctx, entity.RoleBuyer)
	_, err = buyer.Products.Create(ctx, &entity.ProductCreate{
		Name:     "Not allowed",
		Price:    decimal.RequireFromString("1.00"),
		Category: "misc",
	})
	s.requireAPIError(err, entity.ErrForbidden, "Insufficient permissions")
}

func (s *IntegrationTestSuite) TestCartCheckout() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seller, sellerUser, _ := s.register(ctx, entity.RoleSeller)
	buyer, buyerUser, _ := s.register(ctx, entity.RoleBuyer)

	product, err := seller.Products.Create(ctx, &entity.ProductCreate{
		Name:          "Pallet wrap",
		Description:   "500mm stretch film",
		Price:         decimal.RequireFromString("19.99"),
		StockQuantity: 10,
		Category:      "packaging",
	})
	s.Require().NoError(err)

	msg, err := buyer.Cart.Add(ctx, product.ID, 2)
	s.Require().NoError(err)
	s.Require().Equal("Item added to cart successfully", msg.Message)

	_, err = buyer.Cart.Add(ctx, product.ID, 3)
	s.Require().NoError(err)

	cart, err := buyer.Cart.Get(ctx)
	s.Require().NoError(err)
	s.Require().Equal(buyerUser.ID, cart.UserID)
	s.Require().Len(cart.Items, 1)
	s.Require().Equal(5, cart.Items[0].Quantity)
	s.Require().True(cart.TotalAmount.Equal(decimal.RequireFromString("99.95")))

	_, err = buyer.Cart.Add(ctx, product.ID, 50)
	s.requireAPIError(err, entity.ErrInvalidData, "Insufficient stock")

	order, err := buyer.Orders.Create(ctx, &entity.OrderCreate{
		Items:           cart.Items,
		ShippingAddress: gofakeit.Address().Address,
	})
	s.Require().NoError(err)
	s.Require().Equal(entity.OrderStatusPending, order.Status)
	s.Require().Equal(buyerUser.ID, order.BuyerID)
	s.Require().Equal(sellerUser.ID, order.SellerID)
	s.Require().True(order.TotalAmount.Equal(decimal.RequireFromString("99.95")))

	cart, err = buyer.Cart.Get(ctx)
	s.Require().NoError(err)
	s.Require().Empty(cart.Items)
	s.Require().True(cart.TotalAmount.IsZero())
}

func (s *IntegrationTestSuite) TestOrderStatusFlow() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seller, _, _ := s.register(ctx, entity.RoleSeller)
	buyer, _, _ := s.register(ctx, entity.RoleBuyer)

	order := s.placeOrder(ctx, seller, buyer)

	confirmed, err := seller.Orders.UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed, "Packing now")
	s.Require().NoError(err)
	s.Require().Equal(entity.OrderStatusConfirmed, confirmed.Status)

	_, err = seller.Orders.UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered, "")
	s.requireAPIError(err, entity.ErrInvalidData, "Invalid status transition")

	_, err = seller.Orders.UpdateShipping(ctx, order.ID, &entity.ShippingUpdate{
		Carrier:        "DHL",
		TrackingNumber: "JD014600003RU",
	})
	s.Require().NoError(err)

	shipped, err := seller.Orders.UpdateStatus(ctx, order.ID, entity.OrderStatusShipped, "Handed to carrier")
	s.Require().NoError(err)
	s.Require().Equal(entity.OrderStatusShipped, shipped.Status)

	tracking, err := buyer.Orders.Tracking(ctx, order.ID)
	s.Require().NoError(err)
	s.Require().Equal(entity.OrderStatusShipped, tracking.Status)
	s.Require().Equal("DHL", tracking.Carrier)
	s.Require().Equal("JD014600003RU", tracking.TrackingNumber)

	delivered, err := seller.Orders.UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered, "Signed for")
	s.Require().NoError(err)
	s.Require().Equal(entity.OrderStatusDelivered, delivered.Status)

	tracking, err = buyer.Orders.Tracking(ctx, order.ID)
	s.Require().NoError(err)
	s.Require().Len(tracking.History, 4)
	s.Require().Equal(entity.OrderStatusPending, tracking.History[0].Status)
	s.Require().Equal(entity.OrderStatusDelivered, tracking.History[3].Status)

	_, err = buyer.Orders.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled, "")
	s.requireAPIError(err, entity.ErrForbidden, "Insufficient permissions")
}

func (s *IntegrationTestSuite) TestOrderCancellation() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seller, _, _ := s.register(ctx, entity.RoleSeller)
	buyer, _, _ := s.register(ctx, entity.RoleBuyer)

	order := s.placeOrder(ctx, seller, buyer)

	cancelled, err := buyer.Orders.Cancel(ctx, order.ID, "Ordered twice by mistake")
	s.Require().NoError(err)
	s.Require().Equal(entity.OrderStatusCancelled, cancelled.Status)

	tracking, err := buyer.Orders.Tracking(ctx, order.ID)
	s.Require().NoError(err)
	last := tracking.History[len(tracking.History)-1]
	s.Require().Equal("Ordered twice by mistake", last.Note)

	_, err = buyer.Orders.Cancel(ctx, order.ID, "")
	s.requireAPIError(err, entity.ErrInvalidData, "Order cannot be cancelled")

	second := s.placeOrder(ctx, seller, buyer)
	_, err = seller.Orders.Cancel(ctx, second.ID, "Out of stock")
	s.requireAPIError(err, entity.ErrForbidden, "Insufficient permissions")
}

func (s *IntegrationTestSuite) TestOrderScoping() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seller, _, _ := s.register(ctx, entity.RoleSeller)
	buyer, _, _ := s.register(ctx, entity.RoleBuyer)
	other, _, _ := s.register(ctx, entity.RoleBuyer)

	order := s.placeOrder(ctx, seller, buyer)

	mine, err := buyer.Orders.List(ctx, api.OrderListParams{})
	s.Require().NoError(err)
	s.Require().Len(mine, 1)

	theirs, err := other.Orders.List(ctx, api.OrderListParams{})
	s.Require().NoError(err)
	s.Require().Empty(theirs)

	_, err = other.Orders.Get(ctx, order.ID)
	s.requireAPIError(err, entity.ErrNotFound, "Order not found")

	sales, err := seller.Orders.SellerOrders(ctx, api.OrderListParams{})
	s.Require().NoError(err)
	s.Require().Len(sales, 1)
	s.Require().Equal(order.ID, sales[0].ID)

	pending, err := buyer.Orders.ListByStatus(ctx, entity.OrderStatusPending, api.OrderListParams{})
	s.Require().NoError(err)
	s.Require().Len(pending, 1)

	shipped, err := buyer.Orders.ListByStatus(ctx, entity.OrderStatusShipped, api.OrderListParams{})
	s.Require().NoError(err)
	s.Require().Empty(shipped)

	_, err = buyer.Orders.SellerOrders(ctx, api.OrderListParams{})
	s.requireAPIError(err, entity.ErrForbidden, "Insufficient permissions")
}

func (s *IntegrationTestSuite) TestStatsAndAnalytics() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seller, _, _ := s.register(ctx, entity.RoleSeller)
	buyer, _, _ := s.register(ctx, entity.RoleBuyer)

	kept := s.placeOrder(ctx, seller, buyer)
	dropped := s.placeOrder(ctx, seller, buyer)

	_, err := buyer.Orders.Cancel(ctx, dropped.ID, "Duplicate")
	s.Require().NoError(err)

	stats, err := buyer.Orders.Stats(ctx, api.StatsParams{})
	s.Require().NoError(err)
	s.Require().Equal(2, stats.TotalOrders)
	s.Require().Equal(1, stats.ByStatus["pending"])
	s.Require().Equal(1, stats.ByStatus["cancelled"])
	s.Require().True(stats.TotalRevenue.Equal(kept.TotalAmount))

	empty, err := buyer.Orders.Stats(ctx, api.StatsParams{
		StartDate: time.Now().Add(time.Hour),
	})
	s.Require().NoError(err)
	s.Require().Equal(0, empty.TotalOrders)

	userStats, err := buyer.Users.MyStats(ctx)
	s.Require().NoError(err)
	s.Require().Equal(2, userStats.TotalOrders)
	s.Require().True(userStats.TotalSpent.Equal(kept.TotalAmount))

	admin, _ := s.adminClient()
	analytics, err := admin.Admin.Analytics(ctx)
	s.Require().NoError(err)
	s.Require().Equal(3, analytics.TotalUsers)
	s.Require().Equal(2, analytics.TotalProducts)
	s.Require().Equal(2, analytics.TotalOrders)
	s.Require().True(analytics.TotalRevenue.Equal(kept.TotalAmount.Add(dropped.TotalAmount)))

	_, err = buyer.Admin.Analytics(ctx)
	s.requireAPIError(err, entity.ErrForbidden, "Insufficient permissions")
}

func (s *IntegrationTestSuite) TestUserAdministration() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, _ := s.adminClient()
	buyer, buyerUser, _ := s.register(ctx, entity.RoleBuyer)
	_, sellerUser, _ := s.register(ctx, entity.RoleSeller)

	all, err := admin.Admin.Users(ctx, api.UserListParams{})
	s.Require().NoError(err)
	s.Require().Len(all, 3)

	found, err := admin.Users.List(ctx, api.UserListParams{Search: buyerUser.Username})
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Require().Equal(buyerUser.ID, found[0].ID)

	sellers, err := admin.Users.List(ctx, api.UserListParams{Role: entity.RoleSeller})
	s.Require().NoError(err)
	s.Require().Len(sellers, 1)
	s.Require().Equal(sellerUser.ID, sellers[0].ID)

	_, err = buyer.Users.List(ctx, api.UserListParams{})
	s.requireAPIError(err, entity.ErrForbidden, "Insufficient permissions")

	renamed, err := buyer.Users.Update(ctx, buyerUser.ID, &entity.UserUpdate{
		FullName: strPtr("Procurement Desk"),
	})
	s.Require().NoError(err)
	s.Require().Equal("Procurement Desk", renamed.FullName)

	role := entity.RoleSeller
	_, err = buyer.Users.Update(ctx, buyerUser.ID, &entity.UserUpdate{Role: &role})
	s.requireAPIError(err, entity.ErrForbidden, "Insufficient permissions")

	promoted, err := admin.Users.Update(ctx, buyerUser.ID, &entity.UserUpdate{
		Role:        &role,
		CompanyName: strPtr("Nexus Trading GmbH"),
	})
	s.Require().NoError(err)
	s.Require().Equal(entity.RoleSeller, promoted.Role)
	s.Require().Equal("Nexus Trading GmbH", promoted.CompanyName)

	msg, err := admin.Users.Delete(ctx, buyerUser.ID)
	s.Require().NoError(err)
	s.Require().Equal("User deleted successfully", msg.Message)

	_, err = admin.Users.Get(ctx, buyerUser.ID)
	s.requireAPIError(err, entity.ErrNotFound, "User not found")
}

func (s *IntegrationTestSuite) TestProfileAndPasswordFlows() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	buyer, buyerUser, password := s.register(ctx, entity.RoleBuyer)

	updated, err := buyer.Auth.UpdateProfile(ctx, &entity.ProfileUpdate{
		Company: strPtr("Nexus Trading GmbH"),
	})
	s.Require().NoError(err)
	s.Require().Equal("Nexus Trading GmbH", updated.CompanyName)

	_, err = buyer.Auth.ChangePassword(ctx, "not-the-password", "replacement-pa55")
	s.requireAPIError(err, entity.ErrInvalidData, "Current password is incorrect")

	msg, err := buyer.Auth.ChangePassword(ctx, password, "replacement-pa55")
	s.Require().NoError(err)
	s.Require().Equal("Password updated successfully", msg.Message)

	buyer.Auth.Logout()
	_, err = buyer.Auth.Login(ctx, buyerUser.Email, password)
	s.requireAPIError(err, entity.ErrUnauthorized, "Invalid credentials")

	_, err = buyer.Auth.Login(ctx, buyerUser.Email, "replacement-pa55")
	s.Require().NoError(err)

	msg, err = buyer.Auth.ForgotPassword(ctx, buyerUser.Email)
	s.Require().NoError(err)
	s.Require().Equal("If an account exists for that email, a reset link has been sent", msg.Message)

	resetToken, ok := s.backend.ResetTokenFor(buyerUser.Email)
	s.Require().True(ok)

	msg, err = buyer.Auth.ResetPassword(ctx, resetToken, "rotated-pa55word")
	s.Require().NoError(err)
	s.Require().Equal("Password reset successful", msg.Message)

	_, err = buyer.Auth.ResetPassword(ctx, resetToken, "rotated-again")
	s.requireAPIError(err, entity.ErrInvalidData, "Invalid or expired reset token")

	_, err = buyer.Auth.Login(ctx, buyerUser.Email, "rotated-pa55word")
	s.Require().NoError(err)
}

func (s *IntegrationTestSuite) TestProfilePictureUpload() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	buyer, buyerUser, _ := s.register(ctx, entity.RoleBuyer)

	picture, err := buyer.Users.UploadProfilePicture(
		ctx,
		"avatar.png",
		bytes.NewReader([]byte("fake png bytes")),
	)
	s.Require().NoError(err)
	s.Require().Equal("Profile picture uploaded successfully", picture.Message)
	s.Require().Equal("/static/profile-pictures/"+buyerUser.ID.String()+".png", picture.URL)
}

// placeOrder runs a buyer through add-to-cart and checkout against a
// fresh product from the given seller.
func (s *IntegrationTestSuite) placeOrder(ctx context.Context, seller, buyer *api.Client) *entity.Order {
	product, err := seller.Products.Create(ctx, &entity.ProductCreate{
		Name:          gofakeit.ProductName(),
		Description:   gofakeit.Sentence(8),
		Price:         decimal.NewFromFloat(gofakeit.Price(10, 200)),
		StockQuantity: 100,
		Category:      "industrial",
	})
	s.Require().NoError(err)

	_, err = buyer.Cart.Add(ctx, product.ID, 2)
	s.Require().NoError(err)

	cart, err := buyer.Cart.Get(ctx)
	s.Require().NoError(err)

	order, err := buyer.Orders.Create(ctx, &entity.OrderCreate{
		Items:           cart.Items,
		ShippingAddress: gofakeit.Address().Address,
	})
	s.Require().NoError(err)

	return order
}

func TestIntegration(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(IntegrationTestSuite))
}
