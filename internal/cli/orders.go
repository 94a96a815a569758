package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/api"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func (c *CLI) newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Browse and manage orders",
	}

	cmd.AddCommand(
		c.newOrdersListCmd(),
		c.newOrdersGetCmd(),
		c.newOrdersCreateCmd(),
		c.newOrdersStatusCmd(),
		c.newOrdersCancelCmd(),
		c.newOrdersTrackCmd(),
		c.newOrdersShipCmd(),
		c.newOrdersStatsCmd(),
		c.newOrdersSellerCmd(),
	)

	return cmd
}

func orderListFlags(cmd *cobra.Command, params *api.OrderListParams) {
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size")
	cmd.Flags().StringVar((*string)(&params.Status), "status", "", "filter by status")
}

func parseOrderID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid order ID %q", arg)
	}
	return id, nil
}

func (c *CLI) newOrdersListCmd() *cobra.Command {
	var params api.OrderListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := c.client.Orders.List(cmd.Context(), params)
			if err != nil {
				return err
			}
			return c.printOrders(orders)
		},
	}

	orderListFlags(cmd, &params)
	return cmd
}

func (c *CLI) newOrdersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}

			order, err := c.client.Orders.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printOrder(order)
		},
	}
}

// newOrdersCreateCmd builds an order from --item product-id:quantity pairs,
// pulling the price and seller from each product.
func (c *CLI) newOrdersCreateCmd() *cobra.Command {
	var (
		items   []string
		address string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Place an order for specific products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := &entity.OrderCreate{ShippingAddress: address}

			for _, arg := range items {
				item, err := c.resolveItem(cmd, arg)
				if err != nil {
					return err
				}
				input.Items = append(input.Items, item)
			}

			order, err := c.client.Orders.Create(cmd.Context(), input)
			if err != nil {
				return err
			}

			c.success("Order %s placed, total %s", order.ID, money(order.TotalAmount))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "product to order as <product-id>:<quantity>, repeatable")
	cmd.Flags().StringVar(&address, "address", "", "shipping address")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}

func (c *CLI) resolveItem(cmd *cobra.Command, arg string) (*entity.OrderItem, error) {
	rawID, rawQty, _ := strings.Cut(arg, ":")

	productID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("invalid item %q: bad product ID", arg)
	}

	quantity := 1
	if rawQty != "" {
		quantity, err = strconv.Atoi(rawQty)
		if err != nil || quantity < 1 {
			return nil, fmt.Errorf("invalid item %q: bad quantity", arg)
		}
	}

	product, err := c.client.Products.Get(cmd.Context(), productID)
	if err != nil {
		return nil, err
	}

	return &entity.OrderItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    quantity,
		SellerID:    product.SellerID,
	}, nil
}

func (c *CLI) newOrdersStatusCmd() *cobra.Command {
	var (
		status string
		notes  string
	)

	cmd := &cobra.Command{
		Use:   "status <order-id>",
		Short: "Move an order to a new status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}

			order, err := c.client.Orders.UpdateStatus(cmd.Context(), id, entity.OrderStatus(status), notes)
			if err != nil {
				return err
			}

			c.success("Order %s is now %s", order.ID, colorStatus(order.Status))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "new status: pending, confirmed, shipped, delivered or cancelled")
	cmd.Flags().StringVar(&notes, "notes", "", "note attached to the status change")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func (c *CLI) newOrdersCancelCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}

			order, err := c.client.Orders.Cancel(cmd.Context(), id, reason)
			if err != nil {
				return err
			}

			c.success("Order %s cancelled", order.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "cancellation reason")
	return cmd
}

func (c *CLI) newOrdersTrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <order-id>",
		Short: "Show tracking history for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}

			tracking, err := c.client.Orders.Tracking(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printTracking(tracking)
		},
	}
}

func (c *CLI) newOrdersShipCmd() *cobra.Command {
	input := &entity.ShippingUpdate{}

	cmd := &cobra.Command{
		Use:   "ship <order-id>",
		Short: "Update shipping details for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}

			order, err := c.client.Orders.UpdateShipping(cmd.Context(), id, input)
			if err != nil {
				return err
			}

			c.success("Shipping updated for order %s", order.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.ShippingAddress, "address", "", "new shipping address")
	cmd.Flags().StringVar(&input.Carrier, "carrier", "", "carrier name")
	cmd.Flags().StringVar(&input.TrackingNumber, "tracking-number", "", "carrier tracking number")

	return cmd
}

func (c *CLI) newOrdersStatsCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show order statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var params api.StatsParams

			if start != "" {
				t, err := time.Parse(time.DateOnly, start)
				if err != nil {
					return fmt.Errorf("invalid --start date %q, expected YYYY-MM-DD", start)
				}
				params.StartDate = t
			}
			if end != "" {
				t, err := time.Parse(time.DateOnly, end)
				if err != nil {
					return fmt.Errorf("invalid --end date %q, expected YYYY-MM-DD", end)
				}
				params.EndDate = t
			}

			stats, err := c.client.Orders.Stats(cmd.Context(), params)
			if err != nil {
				return err
			}

			c.printOrderStats(stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "end date, YYYY-MM-DD")

	return cmd
}

func (c *CLI) newOrdersSellerCmd() *cobra.Command {
	var params api.OrderListParams

	cmd := &cobra.Command{
		Use:   "seller",
		Short: "List orders for your products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := c.client.Orders.SellerOrders(cmd.Context(), params)
			if err != nil {
				return err
			}
			return c.printOrders(orders)
		},
	}

	orderListFlags(cmd, &params)
	return cmd
}
