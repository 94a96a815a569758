package cli

import (
	"fmt"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/api"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func (c *CLI) newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Look up and manage users",
	}

	cmd.AddCommand(
		c.newUsersListCmd(),
		c.newUsersGetCmd(),
		c.newUsersUpdateCmd(),
		c.newUsersDeleteCmd(),
		c.newUsersStatsCmd(),
	)

	return cmd
}

func parseUserID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID %q", arg)
	}
	return id, nil
}

func userListFlags(cmd *cobra.Command, params *api.UserListParams) {
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size")
	cmd.Flags().StringVar((*string)(&params.Role), "role", "", "filter by role")
	cmd.Flags().StringVar(&params.Search, "search", "", "search emails, usernames and names")
}

func (c *CLI) newUsersListCmd() *cobra.Command {
	var params api.UserListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := c.client.Users.List(cmd.Context(), params)
			if err != nil {
				return err
			}
			return c.printUsers(users)
		},
	}

	userListFlags(cmd, &params)
	return cmd
}

func (c *CLI) newUsersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			user, err := c.client.Users.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			c.printUser(user)
			return nil
		},
	}
}

func (c *CLI) newUsersUpdateCmd() *cobra.Command {
	var (
		email    string
		fullName string
		role     string
		active   bool
		company  string
		phone    string
		address  string
	)

	cmd := &cobra.Command{
		Use:   "update <user-id>",
		Short: "Change user fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			input := &entity.UserUpdate{}
			if cmd.Flags().Changed("email") {
				input.Email = &email
			}
			if cmd.Flags().Changed("full-name") {
				input.FullName = &fullName
			}
			if cmd.Flags().Changed("role") {
				r := entity.Role(role)
				input.Role = &r
			}
			if cmd.Flags().Changed("active") {
				input.IsActive = &active
			}
			if cmd.Flags().Changed("company") {
				input.CompanyName = &company
			}
			if cmd.Flags().Changed("phone") {
				input.Phone = &phone
			}
			if cmd.Flags().Changed("address") {
				input.Address = &address
			}

			user, err := c.client.Users.Update(cmd.Context(), id, input)
			if err != nil {
				return err
			}

			c.success("User %s updated", user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&fullName, "full-name", "", "display name")
	cmd.Flags().StringVar(&role, "role", "", "account role")
	cmd.Flags().BoolVar(&active, "active", true, "whether the account is active")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&address, "address", "", "default shipping address")

	return cmd
}

func (c *CLI) newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			msg, err := c.client.Users.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			c.success("%s", msg.Message)
			return nil
		},
	}
}

func (c *CLI) newUsersStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your purchase statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.client.Users.MyStats(cmd.Context())
			if err != nil {
				return err
			}

			c.printUserStats(stats)
			return nil
		},
	}
}
