package cli

import (
	"fmt"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/spf13/cobra"
)

func (c *CLI) newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Register, log in and manage credentials",
	}

	cmd.AddCommand(
		c.newRegisterCmd(),
		c.newLoginCmd(),
		c.newLogoutCmd(),
		c.newMeCmd(),
		c.newChangePasswordCmd(),
		c.newForgotPasswordCmd(),
		c.newResetPasswordCmd(),
	)

	return cmd
}

func (c *CLI) newRegisterCmd() *cobra.Command {
	input := &entity.RegisterInput{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and start a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := c.client.Auth.Register(cmd.Context(), input)
			if err != nil {
				return err
			}
			c.persistSession(token.AccessToken)

			if token.User != nil {
				c.success("Registered as %s (%s)", token.User.Email, token.User.Role)
			} else {
				c.success("Registered")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "account email")
	cmd.Flags().StringVar(&input.Username, "username", "", "unique username")
	cmd.Flags().StringVar(&input.Password, "password", "", "account password")
	cmd.Flags().StringVar(&input.FullName, "full-name", "", "display name")
	cmd.Flags().StringVar((*string)(&input.Role), "role", "buyer", "account role: buyer, seller or admin")
	cmd.Flags().StringVar(&input.CompanyName, "company", "", "company name")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&input.Address, "address", "", "default shipping address")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("full-name")

	return cmd
}

func (c *CLI) newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := c.client.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			c.persistSession(token.AccessToken)

			if token.User != nil {
				c.success("Logged in as %s (%s)", token.User.Email, token.User.Role)
			} else {
				c.success("Logged in")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (c *CLI) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session token",
		RunE: func(_ *cobra.Command, _ []string) error {
			c.client.Auth.Logout()
			if err := clearSession(); err != nil {
				return err
			}
			c.success("Logged out")
			return nil
		},
	}
}

func (c *CLI) newMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.client.Auth.Me(cmd.Context())
			if err != nil {
				return err
			}
			c.printUser(user)
			return nil
		},
	}
}

func (c *CLI) newChangePasswordCmd() *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := c.client.Auth.ChangePassword(cmd.Context(), current, next)
			if err != nil {
				return err
			}
			c.success("%s", msg.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "current password")
	cmd.Flags().StringVar(&next, "new", "", "new password")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}

func (c *CLI) newForgotPasswordCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset link",
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := c.client.Auth.ForgotPassword(cmd.Context(), email)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, msg.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (c *CLI) newResetPasswordCmd() *cobra.Command {
	var token, next string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password using a reset token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := c.client.Auth.ResetPassword(cmd.Context(), token, next)
			if err != nil {
				return err
			}
			c.success("%s", msg.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "reset token from the email")
	cmd.Flags().StringVar(&next, "new", "", "new password")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}

func (c *CLI) persistSession(token string) {
	if err := saveSession(token); err != nil {
		c.log.Warnw("failed to persist session", "error", err)
		fmt.Fprintln(c.out, "Warning: session not saved, you will need to log in again next run.")
	}
}
