package cli

import (
	"fmt"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/api"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (c *CLI) newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Marketplace administration",
	}

	cmd.AddCommand(
		c.newAdminUsersCmd(),
		c.newAdminAnalyticsCmd(),
		c.newAdminDashboardCmd(),
	)

	return cmd
}

func (c *CLI) newAdminUsersCmd() *cobra.Command {
	var params api.UserListParams

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List all registered users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := c.client.Admin.Users(cmd.Context(), params)
			if err != nil {
				return err
			}
			return c.printUsers(users)
		},
	}

	userListFlags(cmd, &params)
	return cmd
}

func (c *CLI) newAdminAnalyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show marketplace totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			analytics, err := c.client.Admin.Analytics(cmd.Context())
			if err != nil {
				return err
			}

			c.printAnalytics(analytics)
			return nil
		},
	}
}

// newAdminDashboardCmd fetches analytics, order statistics and the latest
// orders concurrently and prints them as one report.
func (c *CLI) newAdminDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show an overview of the marketplace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				analytics *entity.Analytics
				stats     *entity.OrderStats
				recent    []*entity.Order
			)

			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.Go(func() error {
				var err error
				analytics, err = c.client.Admin.Analytics(ctx)
				return err
			})
			eg.Go(func() error {
				var err error
				stats, err = c.client.Orders.Stats(ctx, api.StatsParams{})
				return err
			})
			eg.Go(func() error {
				var err error
				recent, err = c.client.Orders.List(ctx, api.OrderListParams{Limit: 5})
				return err
			})
			if err := eg.Wait(); err != nil {
				return err
			}

			c.printAnalytics(analytics)
			fmt.Fprintln(c.out)
			c.printOrderStats(stats)
			fmt.Fprintln(c.out)
			c.heading("Latest orders")
			return c.printOrders(recent)
		},
	}
}
