package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-console/command"
	"github.com/goliatone/go-console/core"
	"github.com/goliatone/go-console/query"
)

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage products",
	}
	cmd.AddCommand(
		newProductsListCmd(),
		newProductsCreateCmd(),
		newProductsUpdateCmd(),
		newProductsDeleteCmd(),
		newProductsPurgeCmd(),
	)
	return cmd
}

type productFlags struct {
	sku         string
	name        string
	description string
	price       string
	active      string
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sku, "sku", "", "Product SKU")
	cmd.Flags().StringVar(&f.name, "name", "", "Product name")
	cmd.Flags().StringVar(&f.description, "description", "", "Product description")
	cmd.Flags().StringVar(&f.price, "price", "", "Product price (empty clears the value)")
	cmd.Flags().StringVar(&f.active, "active", "", "Active flag: true or false (empty keeps the server default)")
}

func (f *productFlags) input() (core.ProductInput, error) {
	price, err := core.ParseOptionalPrice(f.price)
	if err != nil {
		return core.ProductInput{}, err
	}
	return core.ProductInput{
		SKU:         f.sku,
		Name:        core.OptionalString(f.name),
		Description: core.OptionalString(f.description),
		Price:       price,
		Active:      core.ParseOptionalBool(f.active),
	}, nil
}

func newProductsListCmd() *cobra.Command {
	var (
		filters productFlags
		page    int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildConsole(ctx)
			if err != nil {
				return err
			}

			msg := query.ListProductsMessage{Query: core.ListQuery{
				SKU:         filters.sku,
				Name:        filters.name,
				Description: filters.description,
				Active:      core.ParseOptionalBool(filters.active),
				Page:        page,
				Limit:       c.Config().PageSize,
			}}
			if err := msg.Validate(); err != nil {
				return err
			}
			result, err := c.Facade().Queries().ListProducts.Query(ctx, msg)
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), result)
			return nil
		},
	}
	filters.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "Page to fetch")
	return cmd
}

func newProductsCreateCmd() *cobra.Command {
	var flags productFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildConsole(ctx)
			if err != nil {
				return err
			}
			input, err := flags.input()
			if err != nil {
				return err
			}

			product, err := dispatch[command.CreateProductMessage, core.Product](
				ctx,
				c.Facade().Commands().CreateProduct.Execute,
				command.CreateProductMessage{Input: input},
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created product %d (%s)\n", product.ID, product.SKU)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newProductsUpdateCmd() *cobra.Command {
	var flags productFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildConsole(ctx)
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("product id must be numeric: %q", args[0])
			}
			input, err := flags.input()
			if err != nil {
				return err
			}

			product, err := dispatch[command.UpdateProductMessage, core.Product](
				ctx,
				c.Facade().Commands().UpdateProduct.Execute,
				command.UpdateProductMessage{ProductID: id, Input: input},
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated product %d (%s)\n", product.ID, product.SKU)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newProductsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildConsole(ctx)
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("product id must be numeric: %q", args[0])
			}

			msg := command.DeleteProductMessage{ProductID: id}
			if err := msg.Validate(); err != nil {
				return err
			}
			if err := c.Facade().Commands().DeleteProduct.Execute(ctx, msg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted product %d\n", id)
			return nil
		},
	}
}

func newProductsPurgeCmd() *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every product (requires --confirm)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildConsole(ctx)
			if err != nil {
				return err
			}
			purge := c.Purger(stdoutAlertSink{out: cmd.OutOrStdout()})
			return purge.Run(ctx, confirm)
		},
	}
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the bulk delete")
	return cmd
}
