package ui

import (
	"context"
	"strconv"

	"inventory/internal/client"
	"inventory/internal/dto"
)

// view is one entity tab: its table, its form and the calls behind it.
type view struct {
	name    string // command name, plural
	noun    string // for messages
	table   *Table
	form    Form
	partial bool // update sends only supplied fields

	list   func(ctx context.Context) ([]Row, error)
	create func(ctx context.Context, v Values) (string, error)
	update func(ctx context.Context, id int64, v Values) (string, error)
	remove func(ctx context.Context, id int64) (string, error)
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func buildViews(c *client.Client) []*view {
	return []*view{productsView(c), skusView(c), suppliersView(c), ordersView(c)}
}

func productsView(c *client.Client) *view {
	toReq := func(v Values) dto.ProductRequest {
		return dto.ProductRequest{
			SKUID:      v.Int("sku_id"),
			Name:       v.String("name"),
			Price:      v.Decimal("price"),
			Quantity:   int(v.Int("quantity")),
			SupplierID: v.Int("supplier_id"),
		}
	}
	return &view{
		name:  "products",
		noun:  "product",
		table: NewTable("ID", "SKU", "Name", "Price", "Quantity", "Supplier"),
		form: Form{Fields: []Field{
			{Name: "sku_id", Kind: KindInteger, Required: true},
			{Name: "name", Kind: KindText, Required: true},
			{Name: "price", Kind: KindDecimal, Required: true},
			{Name: "quantity", Kind: KindInteger, Required: true},
			{Name: "supplier_id", Kind: KindInteger, Required: true},
		}},
		list: func(ctx context.Context) ([]Row, error) {
			list, err := c.ListProducts(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]Row, 0, len(list))
			for _, p := range list {
				values := map[string]string{
					"sku_id":      itoa(p.SKUID),
					"name":        p.Name,
					"price":       p.Price.StringFixed(2),
					"quantity":    itoa(int64(p.Quantity)),
					"supplier_id": itoa(p.SupplierID),
				}
				rows = append(rows, Row{
					ID:     p.ID,
					Cells:  []string{itoa(p.ID), values["sku_id"], p.Name, values["price"], values["quantity"], values["supplier_id"]},
					Values: values,
				})
			}
			return rows, nil
		},
		create: func(ctx context.Context, v Values) (string, error) { return c.CreateProduct(ctx, toReq(v)) },
		update: func(ctx context.Context, id int64, v Values) (string, error) { return c.UpdateProduct(ctx, id, toReq(v)) },
		remove: c.DeleteProduct,
	}
}

func skusView(c *client.Client) *view {
	toReq := func(v Values) dto.SKURequest {
		return dto.SKURequest{Name: v.String("name"), Location: v.String("location"), Capacity: int(v.Int("capacity"))}
	}
	return &view{
		name:  "skus",
		noun:  "SKU",
		table: NewTable("ID", "Name", "Location", "Capacity"),
		form: Form{Fields: []Field{
			{Name: "name", Kind: KindText, Required: true},
			{Name: "location", Kind: KindText, Required: true},
			{Name: "capacity", Kind: KindInteger, Required: true},
		}},
		list: func(ctx context.Context) ([]Row, error) {
			list, err := c.ListSKUs(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]Row, 0, len(list))
			for _, s := range list {
				values := map[string]string{"name": s.Name, "location": s.Location, "capacity": itoa(int64(s.Capacity))}
				rows = append(rows, Row{
					ID:     s.ID,
					Cells:  []string{itoa(s.ID), s.Name, s.Location, values["capacity"]},
					Values: values,
				})
			}
			return rows, nil
		},
		create: func(ctx context.Context, v Values) (string, error) { return c.CreateSKU(ctx, toReq(v)) },
		update: func(ctx context.Context, id int64, v Values) (string, error) { return c.UpdateSKU(ctx, id, toReq(v)) },
		remove: c.DeleteSKU,
	}
}

func suppliersView(c *client.Client) *view {
	toReq := func(v Values) dto.SupplierRequest {
		return dto.SupplierRequest{Name: v.String("name"), Email: v.String("email")}
	}
	return &view{
		name:  "suppliers",
		noun:  "supplier",
		table: NewTable("ID", "Name", "Email"),
		form: Form{Fields: []Field{
			{Name: "name", Kind: KindText, Required: true},
			{Name: "email", Kind: KindEmail, Required: true},
		}},
		list: func(ctx context.Context) ([]Row, error) {
			list, err := c.ListSuppliers(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]Row, 0, len(list))
			for _, s := range list {
				rows = append(rows, Row{
					ID:     s.ID,
					Cells:  []string{itoa(s.ID), s.Name, s.Email},
					Values: map[string]string{"name": s.Name, "email": s.Email},
				})
			}
			return rows, nil
		},
		create: func(ctx context.Context, v Values) (string, error) { return c.CreateSupplier(ctx, toReq(v)) },
		update: func(ctx context.Context, id int64, v Values) (string, error) { return c.UpdateSupplier(ctx, id, toReq(v)) },
		remove: c.DeleteSupplier,
	}
}

func ordersView(c *client.Client) *view {
	return &view{
		name:    "orders",
		noun:    "order",
		partial: true,
		table:   NewTable("ID", "Product", "Quantity", "Customer", "Email"),
		form: Form{Fields: []Field{
			{Name: "product_id", Kind: KindInteger, Required: true},
			{Name: "quantity", Kind: KindInteger, Required: true},
			{Name: "customer_name", Kind: KindText, Required: true},
			{Name: "customer_email", Kind: KindEmail, Required: true},
		}},
		list: func(ctx context.Context) ([]Row, error) {
			list, err := c.ListOrders(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]Row, 0, len(list))
			for _, o := range list {
				rows = append(rows, Row{
					ID:    o.ID,
					Cells: []string{itoa(o.ID), itoa(o.ProductID), itoa(int64(o.Quantity)), o.CustomerName, o.CustomerEmail},
				})
			}
			return rows, nil
		},
		create: func(ctx context.Context, v Values) (string, error) {
			return c.CreateOrder(ctx, dto.OrderRequest{
				ProductID:     v.Int("product_id"),
				Quantity:      int(v.Int("quantity")),
				CustomerName:  v.String("customer_name"),
				CustomerEmail: v.String("customer_email"),
			})
		},
		update: func(ctx context.Context, id int64, v Values) (string, error) {
			var req dto.UpdateOrderRequest
			if v.Has("product_id") {
				n := v.Int("product_id")
				req.ProductID = &n
			}
			if v.Has("quantity") {
				n := int(v.Int("quantity"))
				req.Quantity = &n
			}
			if v.Has("customer_name") {
				s := v.String("customer_name")
				req.CustomerName = &s
			}
			if v.Has("customer_email") {
				s := v.String("customer_email")
				req.CustomerEmail = &s
			}
			return c.UpdateOrder(ctx, id, req)
		},
		remove: c.DeleteOrder,
	}
}
