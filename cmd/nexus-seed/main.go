//nolint:mnd
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/api"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/app"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/config"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/logger"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var _categories = []string{"electronics", "office", "industrial", "packaging", "safety"}

func main() {
	apiURL := flag.String("api-url", "http://localhost:8000/api", "Backend base URL to seed")
	numProducts := flag.Int("products", 10, "Number of products to create")
	numBuyers := flag.Int("buyers", 3, "Number of buyer accounts to register")
	numOrders := flag.Int("orders", 5, "Number of orders to place")
	interval := flag.Duration("interval", 500*time.Millisecond, "Interval between placing orders")
	metricsPort := flag.String("metrics-port", "", "Expose Prometheus metrics on this port; empty disables")
	logFile := flag.String("log-file", "./logs/nexus-seed.log", "Structured log destination")

	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	seedLogger, err := logger.NewAdapter(logger.Settings{
		Filename: *logFile,
		Service:  "nexus-seed",
		Env:      "local",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	container, err := app.New(seedConfig(*apiURL), seedLogger)
	if err != nil {
		log.Fatalf("Failed to build API client: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	if *metricsPort != "" {
		app.ServeMetrics(ctx, eg, &config.Metrics{
			Host:              "0.0.0.0",
			Port:              *metricsPort,
			ReadTimeout:       5 * time.Second,
			WriteTimeout:      5 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
		}, container.Metrics, seedLogger)
	}

	log.Printf(
		"Seeding %s: %d products, %d buyers, %d orders every %v\n",
		*apiURL, *numProducts, *numBuyers, *numOrders, *interval,
	)

	s := &seeder{client: container.Client}
	if err := s.run(ctx, *numProducts, *numBuyers, *numOrders, *interval); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	cancel()
	if err := eg.Wait(); err != nil {
		log.Printf("Metrics server stopped: %v", err)
	}
	log.Println("Seeding complete.")
}

func seedConfig(apiURL string) *config.Config {
	return &config.Config{
		App: config.App{Name: "nexus-seed", Version: "dev"},
		API: config.API{
			BaseURL:   apiURL,
			Timeout:   30 * time.Second,
			UserAgent: "nexus-seed/1.0",
		},
		Retry: config.Retry{
			MaxAttempts:    3,
			BaseRetryDelay: 100 * time.Millisecond,
			MaxRetryDelay:  2 * time.Second,
			SlowThreshold:  time.Second,
		},
		Env: "local",
	}
}

type seeder struct {
	client *api.Client

	seller   *account
	buyers   []*account
	products []*entity.Product
}

type account struct {
	email    string
	password string
}

func (s *seeder) run(ctx context.Context, numProducts, numBuyers, numOrders int, interval time.Duration) error {
	if err := s.registerAccounts(ctx, numBuyers); err != nil {
		return err
	}
	if err := s.createProducts(ctx, numProducts); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ordersPlaced := 0
	for ordersPlaced < numOrders {
		if err := s.placeOrder(ctx, ordersPlaced); err != nil {
			log.Printf("Failed to place order: %v", err)
		} else {
			ordersPlaced++
		}

		if ordersPlaced >= numOrders {
			break
		}

		select {
		case <-ctx.Done():
			log.Println("Shutting down seeder...")
			return nil
		case <-ticker.C:
		}
	}

	log.Printf("Placed all %d orders. Exiting.\n", numOrders)
	return nil
}

func (s *seeder) registerAccounts(ctx context.Context, numBuyers int) error {
	seller, err := s.register(ctx, entity.RoleSeller)
	if err != nil {
		return fmt.Errorf("register seller: %w", err)
	}
	s.seller = seller
	log.Printf("Registered seller %s", seller.email)

	for range numBuyers {
		buyer, err := s.register(ctx, entity.RoleBuyer)
		if err != nil {
			return fmt.Errorf("register buyer: %w", err)
		}
		s.buyers = append(s.buyers, buyer)
		log.Printf("Registered buyer %s", buyer.email)
	}
	return nil
}

func (s *seeder) register(ctx context.Context, role entity.Role) (*account, error) {
	suffix := uuid.NewString()[:8]
	acc := &account{
		email:    fmt.Sprintf("seed.%s.%s@nexus.dev", role, suffix),
		password: gofakeit.Password(true, true, true, false, false, 16),
	}

	input := &entity.RegisterInput{
		Email:    acc.email,
		Username: fmt.Sprintf("seed_%s_%s", role, suffix),
		Password: acc.password,
		FullName: gofakeit.Name(),
		Role:     role,
		Phone:    gofakeit.Phone(),
		Address:  gofakeit.Address().Address,
	}
	if role == entity.RoleSeller {
		input.CompanyName = gofakeit.Company()
	}

	if _, err := s.client.Auth.Register(ctx, input); err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *seeder) createProducts(ctx context.Context, numProducts int) error {
	if _, err := s.client.Auth.Login(ctx, s.seller.email, s.seller.password); err != nil {
		return fmt.Errorf("seller login: %w", err)
	}

	for range numProducts {
		product, err := s.client.Products.Create(ctx, &entity.ProductCreate{
			Name:          gofakeit.ProductName(),
			Description:   gofakeit.Sentence(12),
			Price:         decimal.NewFromFloat(gofakeit.Price(10, 500)),
			StockQuantity: gofakeit.Number(50, 500),
			Category:      gofakeit.RandomString(_categories),
			Tags:          []string{gofakeit.Word(), gofakeit.Word()},
		})
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		s.products = append(s.products, product)
	}

	log.Printf("Created %d products", len(s.products))
	return nil
}

func (s *seeder) placeOrder(ctx context.Context, seq int) error {
	buyer := s.buyers[seq%len(s.buyers)]
	if _, err := s.client.Auth.Login(ctx, buyer.email, buyer.password); err != nil {
		return fmt.Errorf("buyer login: %w", err)
	}

	for range gofakeit.Number(1, 3) {
		product := s.products[gofakeit.Number(0, len(s.products)-1)]
		if _, err := s.client.Cart.Add(ctx, product.ID, gofakeit.Number(1, 4)); err != nil {
			return fmt.Errorf("add to cart: %w", err)
		}
	}

	cart, err := s.client.Cart.Get(ctx)
	if err != nil {
		return fmt.Errorf("fetch cart: %w", err)
	}

	order, err := s.client.Orders.Create(ctx, &entity.OrderCreate{
		Items:           cart.Items,
		ShippingAddress: gofakeit.Address().Address,
	})
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	log.Printf("Placed order %s for %s", order.ID, buyer.email)

	return s.advanceOrder(ctx, order)
}

// advanceOrder pushes some orders along the fulfillment flow so seeded data
// covers every status.
func (s *seeder) advanceOrder(ctx context.Context, order *entity.Order) error {
	roll := gofakeit.Number(1, 10)
	switch {
	case roll <= 2:
		if _, err := s.client.Orders.Cancel(ctx, order.ID, "Changed my mind"); err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}
		log.Printf("Cancelled order %s", order.ID)

	case roll <= 6:
		if _, err := s.client.Auth.Login(ctx, s.seller.email, s.seller.password); err != nil {
			return fmt.Errorf("seller login: %w", err)
		}
		if _, err := s.client.Orders.UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed, "Confirmed by seed"); err != nil {
			return fmt.Errorf("confirm order: %w", err)
		}
		if roll >= 5 {
			if _, err := s.client.Orders.UpdateShipping(ctx, order.ID, &entity.ShippingUpdate{
				Carrier:        gofakeit.Company(),
				TrackingNumber: gofakeit.UUID(),
			}); err != nil {
				return fmt.Errorf("update shipping: %w", err)
			}
			if _, err := s.client.Orders.UpdateStatus(ctx, order.ID, entity.OrderStatusShipped, "Shipped by seed"); err != nil {
				return fmt.Errorf("ship order: %w", err)
			}
		}
	}
	return nil
}
