package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/spf13/cobra"
)

func (c *CLI) newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the current profile",
	}

	cmd.AddCommand(
		c.newProfileUpdateCmd(),
		c.newProfilePictureCmd(),
	)

	return cmd
}

func (c *CLI) newProfileUpdateCmd() *cobra.Command {
	var firstName, lastName, company string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := &entity.ProfileUpdate{}
			if cmd.Flags().Changed("first-name") {
				input.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				input.LastName = &lastName
			}
			if cmd.Flags().Changed("company") {
				input.Company = &company
			}

			user, err := c.client.Auth.UpdateProfile(cmd.Context(), input)
			if err != nil {
				return err
			}

			c.success("Profile updated")
			c.printUser(user)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&company, "company", "", "company name")

	return cmd
}

func (c *CLI) newProfilePictureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "picture <file>",
		Short: "Upload a profile picture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open picture: %w", err)
			}
			defer file.Close()

			picture, err := c.client.Users.UploadProfilePicture(cmd.Context(), filepath.Base(args[0]), file)
			if err != nil {
				return err
			}

			c.success("%s", picture.Message)
			fmt.Fprintln(c.out, "URL:", picture.URL)
			return nil
		},
	}
}
