package main

import (
	"context"
	"fmt"

	"inventory/internal/dto"
	"inventory/internal/ui"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// entityCommand builds "<name> list|get|delete"; add and update are
// attached by the caller since their flags differ per entity.
func entityCommand(g *globals, name string, list func(ctx context.Context) (*ui.Table, error),
	get func(ctx context.Context, id int64) (interface{}, error),
	del func(ctx context.Context, id int64) (string, error)) *cobra.Command {
	cmd := &cobra.Command{Use: name, Short: "manage " + name}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "list all " + name,
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				t, err := list(c.Context())
				if err != nil {
					return err
				}
				return t.Render(g.out)
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "show one row",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				v, err := get(c.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(g.out, v)
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "delete one row (succeeds for absent ids)",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				msg, err := del(c.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintln(g.out, msg)
				return nil
			},
		},
	)
	return cmd
}

func rowsTable(columns []string, rows [][]string, ids []int64) *ui.Table {
	t := ui.NewTable(columns...)
	out := make([]ui.Row, len(rows))
	for i := range rows {
		out[i] = ui.Row{ID: ids[i], Cells: rows[i]}
	}
	t.SetRows(out)
	return t
}

// ─── Products ────────────────────────────────────────────────────────────────

func productsCommand(g *globals) *cobra.Command {
	cmd := entityCommand(g, "products",
		func(ctx context.Context) (*ui.Table, error) {
			list, err := g.client().ListProducts(ctx)
			if err != nil {
				return nil, err
			}
			rows, ids := make([][]string, 0, len(list)), make([]int64, 0, len(list))
			for _, p := range list {
				rows = append(rows, []string{fmt.Sprint(p.ID), fmt.Sprint(p.SKUID), p.Name, p.Price.StringFixed(2), fmt.Sprint(p.Quantity), fmt.Sprint(p.SupplierID)})
				ids = append(ids, p.ID)
			}
			return rowsTable([]string{"ID", "SKU", "Name", "Price", "Quantity", "Supplier"}, rows, ids), nil
		},
		func(ctx context.Context, id int64) (interface{}, error) { return g.client().GetProduct(ctx, id) },
		func(ctx context.Context, id int64) (string, error) { return g.client().DeleteProduct(ctx, id) },
	)

	var (
		req   dto.ProductRequest
		price string
	)
	bind := func(c *cobra.Command) {
		c.Flags().Int64Var(&req.SKUID, "sku-id", 0, "SKU id")
		c.Flags().StringVar(&req.Name, "name", "", "product name")
		c.Flags().StringVar(&price, "price", "", "unit price")
		c.Flags().IntVar(&req.Quantity, "quantity", 0, "units in stock")
		c.Flags().Int64Var(&req.SupplierID, "supplier-id", 0, "supplier id")
	}
	parsePrice := func() error {
		if price == "" {
			return nil
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return fmt.Errorf("--price: %q is not a number", price)
		}
		req.Price = d
		return nil
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "create a product",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := parsePrice(); err != nil {
				return err
			}
			msg, err := g.client().CreateProduct(c.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(g.out, msg)
			return nil
		},
	}
	bind(add)

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "update a product; flags not given keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cur, err := g.client().GetProduct(c.Context(), id)
			if err != nil {
				return err
			}
			merged := dto.ProductRequest{SKUID: cur.SKUID, Name: cur.Name, Price: cur.Price, Quantity: cur.Quantity, SupplierID: cur.SupplierID}
			if err := parsePrice(); err != nil {
				return err
			}
			f := c.Flags()
			if f.Changed("sku-id") {
				merged.SKUID = req.SKUID
			}
			if f.Changed("name") {
				merged.Name = req.Name
			}
			if f.Changed("price") {
				merged.Price = req.Price
			}
			if f.Changed("quantity") {
				merged.Quantity = req.Quantity
			}
			if f.Changed("supplier-id") {
				merged.SupplierID = req.SupplierID
			}
			msg, err := g.client().UpdateProduct(c.Context(), id, merged)
			if err != nil {
				return err
			}
			fmt.Fprintln(g.out, msg)
			return nil
		},
	}
	bind(update)

	cmd.AddCommand(add, update)
	return cmd
}

// ─── SKUs ────────────────────────────────────────────────────────────────────

func skusCommand(g *globals) *cobra.Command {
	cmd := entityCommand(g, "skus",
		func(ctx context.Context) (*ui.Table, error) {
			list, err := g.client().ListSKUs(ctx)
			if err != nil {
				return nil, err
			}
			rows, ids := make([][]string, 0, len(list)), make([]int64, 0, len(list))
			for _, s := range list {
				rows = append(rows, []string{fmt.Sprint(s.ID), s.Name, s.Location, fmt.Sprint(s.Capacity)})
				ids = append(ids, s.ID)
			}
			return rowsTable([]string{"ID", "Name", "Location", "Capacity"}, rows, ids), nil
		},
		func(ctx context.Context, id int64) (interface{}, error) { return g.client().GetSKU(ctx, id) },
		func(ctx context.Context, id int64) (string, error) { return g.client().DeleteSKU(ctx, id) },
	)

	var req dto.SKURequest
	bind := func(c *cobra.Command) {
		c.Flags().StringVar(&req.Name, "name", "", "SKU name")
		c.Flags().StringVar(&req.Location, "location", "", "where the SKU is stored")
		c.Flags().IntVar(&req.Capacity, "capacity", 0, "storage capacity in units")
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "create a SKU",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			msg, err := g.client().CreateSKU(c.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(g.out, msg)
			return nil
		},
	}
	bind(add)

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "update a SKU; flags not given keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cur, err := g.client().GetSKU(c.Context(), id)
			if err != nil {
				return err
			}
			merged := dto.SKURequest{Name: cur.Name, Location: cur.Location, Capacity: cur.Capacity}
			f := c.Flags()
			if f.Changed("name") {
				merged.Name = req.Name
			}
			if f.Changed("location") {
				merged.Location = req.Location
			}
			if f.Changed("capacity") {
				merged.Capacity = req.Capacity
			}
			msg, err := g.client().UpdateSKU(c.Context(), id, merged)
			if err != nil {
				return err
			}
			fmt.Fprintln(g.out, msg)
			return nil
		},
	}
	bind(update)

	cmd.AddCommand(add, update)
	return cmd
}

// ─── Suppliers ───────────────────────────────────────────────────────────────

func suppliersCommand(g *globals) *cobra.Command {
	cmd := entityCommand(g, "suppliers",
		func(ctx context.Context) (*ui.Table, error) {
			list, err := g.client().ListSuppliers(ctx)
			if err != nil {
				return nil, err
			}
			rows, ids := make([][]string, 0, len(list)), make([]int64, 0, len(list))
			for _, s := range list {
				rows = append(rows, []string{fmt.Sprint(s.ID), s.Name, s.Email})
				ids = append(ids, s.ID)
			}
			return rowsTable([]string{"ID", "Name", "Email"}, rows, ids), nil
		},
		func(ctx context.Context, id int64) (interface{}, error) { return g.client().GetSupplier(ctx, id) },
		func(ctx context.Context, id int64) (string, error) { return g.client().DeleteSupplier(ctx, id) },
	)

	var req dto.SupplierRequest
	bind := func(c *cobra.Command) {
		c.Flags().StringVar(&req.Name, "name", "", "supplier name")
		c.Flags().StringVar(&req.Email, "email", "", "supplier email")
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "create a supplier",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			msg, err := g.client().CreateSupplier(c.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(g.out, msg)
			return nil
		},
	}
	bind(add)

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "update a supplier; flags not given keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cur, err := g.client().GetSupplier(c.Context(), id)
			if err != nil {
				return err
			}
			merged := dto.SupplierRequest{Name: cur.Name, Email: cur.Email}
			if c.Flags().Changed("name") {
				merged.Name = req.Name
			}
			if c.Flags().Changed("email") {
				merged.Email = req.Email
			}
			msg, err := g.client().UpdateSupplier(c.Context(), id, merged)
			if err != nil {
				return err
			}
			fmt.Fprintln(g.out, msg)
			return nil
		},
	}
	bind(update)

	cmd.AddCommand(add, update)
	return cmd
}

// ─── Orders ──────────────────────────────────────────────────────────────────

func ordersCommand(g *globals) *cobra.Command {
	cmd := entityCommand(g, "orders",
		func(ctx context.Context) (*ui.Table, error) {
			list, err := g.client().ListOrders(ctx)
			if err != nil {
				return nil, err
			}
			rows, ids := make([][]string, 0, len(list)), make([]int64, 0, len(list))
			for _, o := range list {
				rows = append(rows, []string{fmt.Sprint(o.ID), fmt.Sprint(o.ProductID), fmt.Sprint(o.Quantity), o.CustomerName, o.CustomerEmail})
				ids = append(ids, o.ID)
			}
			return rowsTable([]string{"ID", "Product", "Quantity", "Customer", "Email"}, rows, ids), nil
		},
		func(ctx context.Context, id int64) (interface{}, error) { return g.client().GetOrder(ctx, id) },
		func(ctx context.Context, id int64) (string, error) { return g.client().DeleteOrder(ctx, id) },
	)

	var req dto.OrderRequest
	bind := func(c *cobra.Command) {
		c.Flags().Int64Var(&req.ProductID, "product-id", 0, "ordered product id")
		c.Flags().IntVar(&req.Quantity, "quantity", 0, "units ordered")
		c.Flags().StringVar(&req.CustomerName, "customer-name", "", "customer name")
		c.Flags().StringVar(&req.CustomerEmail, "customer-email", "", "customer email")
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "create an order",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			msg, err := g.client().CreateOrder(c.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(g.out, msg)
			return nil
		},
	}
	bind(add)

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "change only the given fields of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var patch dto.UpdateOrderRequest
			f := c.Flags()
			if f.Changed("product-id") {
				patch.ProductID = &req.ProductID
			}
			if f.Changed("quantity") {
				patch.Quantity = &req.Quantity
			}
			if f.Changed("customer-name") {
				patch.CustomerName = &req.CustomerName
			}
			if f.Changed("customer-email") {
				patch.CustomerEmail = &req.CustomerEmail
			}
			msg, err := g.client().UpdateOrder(c.Context(), id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(g.out, msg)
			return nil
		},
	}
	bind(update)

	cmd.AddCommand(add, update)
	return cmd
}
