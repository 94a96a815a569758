package cli

import (
	"fmt"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/api"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (c *CLI) newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse and manage the catalog",
	}

	cmd.AddCommand(
		c.newProductsListCmd(),
		c.newProductsGetCmd(),
		c.newProductsCreateCmd(),
		c.newProductsUpdateCmd(),
		c.newProductsDeleteCmd(),
	)

	return cmd
}

func parseProductID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid product ID %q", arg)
	}
	return id, nil
}

func (c *CLI) newProductsListCmd() *cobra.Command {
	var (
		params   api.ProductListParams
		minPrice string
		maxPrice string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if minPrice != "" {
				v, err := decimal.NewFromString(minPrice)
				if err != nil {
					return fmt.Errorf("invalid --min-price %q", minPrice)
				}
				params.MinPrice = &v
			}
			if maxPrice != "" {
				v, err := decimal.NewFromString(maxPrice)
				if err != nil {
					return fmt.Errorf("invalid --max-price %q", maxPrice)
				}
				params.MaxPrice = &v
			}

			products, err := c.client.Products.List(cmd.Context(), params)
			if err != nil {
				return err
			}
			return c.printProducts(products)
		},
	}

	cmd.Flags().IntVar(&params.Skip, "skip", 0, "number of products to skip")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size")
	cmd.Flags().StringVar(&params.Category, "category", "", "filter by category")
	cmd.Flags().StringVar(&params.Search, "search", "", "search in names, descriptions and tags")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "minimum price")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "maximum price")

	return cmd
}

func (c *CLI) newProductsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			product, err := c.client.Products.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			c.printProduct(product)
			return nil
		},
	}
}

func (c *CLI) newProductsCreateCmd() *cobra.Command {
	var (
		input entity.ProductCreate
		price string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a product to the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("invalid --price %q", price)
			}
			input.Price = v

			product, err := c.client.Products.Create(cmd.Context(), &input)
			if err != nil {
				return err
			}

			c.success("Product %s created", product.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "product name")
	cmd.Flags().StringVar(&input.Description, "description", "", "product description")
	cmd.Flags().StringVar(&price, "price", "", "unit price")
	cmd.Flags().IntVar(&input.StockQuantity, "stock", 0, "stock quantity")
	cmd.Flags().StringVar(&input.Category, "category", "", "product category")
	cmd.Flags().StringSliceVar(&input.Tags, "tags", nil, "comma separated tags")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func (c *CLI) newProductsUpdateCmd() *cobra.Command {
	var (
		name        string
		description string
		price       string
		stock       int
		category    string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Change product fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			input := &entity.ProductUpdate{}
			if cmd.Flags().Changed("name") {
				input.Name = &name
			}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}
			if cmd.Flags().Changed("price") {
				v, err := decimal.NewFromString(price)
				if err != nil {
					return fmt.Errorf("invalid --price %q", price)
				}
				input.Price = &v
			}
			if cmd.Flags().Changed("stock") {
				input.StockQuantity = &stock
			}
			if cmd.Flags().Changed("category") {
				input.Category = &category
			}
			if cmd.Flags().Changed("tags") {
				input.Tags = tags
			}

			product, err := c.client.Products.Update(cmd.Context(), id, input)
			if err != nil {
				return err
			}

			c.success("Product %s updated", product.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	cmd.Flags().StringVar(&price, "price", "", "unit price")
	cmd.Flags().IntVar(&stock, "stock", 0, "stock quantity")
	cmd.Flags().StringVar(&category, "category", "", "product category")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma separated tags")

	return cmd
}

func (c *CLI) newProductsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Remove a product from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			msg, err := c.client.Products.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			c.success("%s", msg.Message)
			return nil
		},
	}
}
