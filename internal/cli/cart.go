package cli

import (
	"errors"
	"fmt"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/spf13/cobra"
)

func (c *CLI) newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your shopping cart",
	}

	cmd.AddCommand(
		c.newCartShowCmd(),
		c.newCartAddCmd(),
		c.newCartCheckoutCmd(),
	)

	return cmd
}

func (c *CLI) newCartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart contents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cart, err := c.client.Cart.Get(cmd.Context())
			if err != nil {
				return err
			}
			return c.printCart(cart)
		},
	}
}

func (c *CLI) newCartAddCmd() *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			msg, err := c.client.Cart.Add(cmd.Context(), id, quantity)
			if err != nil {
				return err
			}

			c.success("%s", msg.Message)
			return nil
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 1, "number of units")
	return cmd
}

// newCartCheckoutCmd turns the current cart into an order: cart lines and
// order items share the same shape, so they go through unchanged.
func (c *CLI) newCartCheckoutCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for everything in the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cart, err := c.client.Cart.Get(cmd.Context())
			if err != nil {
				return err
			}
			if len(cart.Items) == 0 {
				return errors.New("cart is empty, nothing to order")
			}

			order, err := c.client.Orders.Create(cmd.Context(), &entity.OrderCreate{
				Items:           cart.Items,
				ShippingAddress: address,
			})
			if err != nil {
				return err
			}

			c.success("Order %s placed, total %s", order.ID, money(order.TotalAmount))
			fmt.Fprintln(c.out, "Track it with: nexus orders track", order.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "shipping address")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}
