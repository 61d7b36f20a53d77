package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"inventory/internal/client"
	"inventory/internal/dto"
)

const helpText = `Commands:
  view products|skus|suppliers|orders|analytics   switch view and load it
  refresh                                         reload the current view
  select <id> [<id>...]                           add rows to the selection
  clear                                           clear the selection
  add key=value ...                               create a row in the current view
  update key=value ...                            update the one selected row
  delete                                          delete the one selected row
  sell product_id=<id> quantity=<n> [price=<p>]   record a sale
  sales [<product_id>]                            list sales of a product
  analytics                                       show capacity and sales charts
  cancel                                          abort requests in flight
  help                                            show this text
  quit                                            leave
Values containing spaces go in double quotes: name="Acme Ltd".`

var saleForm = Form{Fields: []Field{
	{Name: "product_id", Kind: KindInteger, Required: true},
	{Name: "quantity", Kind: KindInteger, Required: true},
	{Name: "price", Kind: KindDecimal},
}}

// App is the console front end. Run owns the terminal: it reads commands,
// dispatches backend calls and renders their results, all from one
// goroutine.
type App struct {
	client  *client.Client
	in      io.Reader
	out     io.Writer
	disp    *Dispatcher
	views   []*view
	current *view // nil while the analytics view is shown
	queue   []string
}

// NewApp builds an App. timeout bounds each backend call.
func NewApp(c *client.Client, in io.Reader, out io.Writer, timeout time.Duration) *App {
	views := buildViews(c)
	return &App{
		client:  c,
		in:      in,
		out:     out,
		disp:    NewDispatcher(timeout),
		views:   views,
		current: views[0],
	}
}

// Run loads the first view and processes commands until quit, end of input
// or ctx cancellation. Commands typed while a request is in flight wait
// their turn; cancel, help and quit act immediately.
func (a *App) Run(ctx context.Context) error {
	defer a.disp.Close()
	done := make(chan struct{})
	defer close(done)
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(a.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
	}()

	a.refresh(a.current)

	inputOpen := true
	for {
		if a.disp.Pending() == 0 && len(a.queue) > 0 {
			line := a.queue[0]
			a.queue = a.queue[1:]
			if a.handle(line) {
				return nil
			}
			continue
		}
		if !inputOpen && a.disp.Pending() == 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			a.disp.Cancel()
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				inputOpen = false
				lines = nil
				continue
			}
			if isImmediate(line) {
				if a.handle(line) {
					return nil
				}
				continue
			}
			a.queue = append(a.queue, line)
		case c := <-a.disp.Completions():
			c.Apply()
		}
	}
}

func isImmediate(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "cancel", "help", "quit", "exit":
		return true
	}
	return false
}

// handle runs one command line and reports whether the App should stop.
func (a *App) handle(line string) bool {
	cmd, err := parseCommand(line)
	if err != nil {
		a.printf("Error: %v\n", err)
		return false
	}

	switch cmd.verb {
	case "":
	case "quit", "exit":
		if n := a.disp.Cancel(); n > 0 {
			a.printf("Cancelled %d request(s)\n", n)
		}
		return true
	case "help":
		a.printf("%s\n", helpText)
	case "cancel":
		a.printf("Cancelled %d request(s)\n", a.disp.Cancel())
	case "view":
		a.cmdView(cmd)
	case "refresh":
		if a.current == nil {
			a.analytics()
		} else {
			a.refresh(a.current)
		}
	case "select":
		a.cmdSelect(cmd)
	case "clear":
		if v := a.tableView("Clear"); v != nil {
			v.table.ClearSelection()
			a.render(v)
		}
	case "add":
		a.cmdAdd(cmd)
	case "update":
		a.cmdUpdate(cmd)
	case "delete":
		a.cmdDelete()
	case "sell":
		a.cmdSell(cmd)
	case "sales":
		a.cmdSales(cmd)
	case "analytics":
		a.current = nil
		a.analytics()
	default:
		a.printf("Unknown command %q, type help\n", cmd.verb)
	}
	return false
}

func (a *App) cmdView(cmd command) {
	if len(cmd.args) != 1 {
		a.printf("Usage: view products|skus|suppliers|orders|analytics\n")
		return
	}
	name := strings.ToLower(cmd.args[0])
	if name == "analytics" {
		a.current = nil
		a.analytics()
		return
	}
	for _, v := range a.views {
		if v.name == name {
			a.current = v
			a.refresh(v)
			return
		}
	}
	a.printf("Unknown view %q\n", name)
}

func (a *App) cmdSelect(cmd command) {
	v := a.tableView("Select")
	if v == nil {
		return
	}
	ids := make([]int64, 0, len(cmd.args))
	for _, arg := range cmd.args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			a.printf("Select failed: %q is not a row id\n", arg)
			return
		}
		ids = append(ids, id)
	}
	if err := v.table.Select(ids...); err != nil {
		a.printf("Select failed: %v\n", err)
		return
	}
	a.render(v)
}

func (a *App) cmdAdd(cmd command) {
	v := a.tableView("Add")
	if v == nil {
		return
	}
	action := "Add " + v.noun
	values, err := v.form.Parse(cmd.kv)
	if err != nil {
		a.printf("%s failed: %v\n", action, err)
		return
	}
	a.write(action, v, func(ctx context.Context) (string, error) { return v.create(ctx, values) })
}

func (a *App) cmdUpdate(cmd command) {
	v := a.tableView("Update")
	if v == nil {
		return
	}
	action := "Update " + v.noun
	row, err := v.table.Selected()
	if err != nil {
		a.selectionFailed(action, v.table, err)
		return
	}

	var values Values
	if v.partial {
		values, err = v.form.optional().Parse(cmd.kv)
	} else {
		merged := make(map[string]string, len(row.Values)+len(cmd.kv))
		for k, val := range row.Values {
			merged[k] = val
		}
		for k, val := range cmd.kv {
			merged[k] = val
		}
		values, err = v.form.Parse(merged)
	}
	if err != nil {
		a.printf("%s failed: %v\n", action, err)
		return
	}
	a.write(action, v, func(ctx context.Context) (string, error) { return v.update(ctx, row.ID, values) })
}

func (a *App) selectionFailed(action string, t *Table, err error) {
	if errors.Is(err, ErrMultipleSelection) {
		ids := t.SelectedIDs()
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = itoa(id)
		}
		a.printf("%s failed: select exactly one row (%v: ids %s)\n", action, err, strings.Join(parts, ", "))
		return
	}
	a.printf("%s failed: select exactly one row (%v)\n", action, err)
}

func (a *App) cmdDelete() {
	v := a.tableView("Delete")
	if v == nil {
		return
	}
	action := "Delete " + v.noun
	row, err := v.table.Selected()
	if err != nil {
		a.selectionFailed(action, v.table, err)
		return
	}
	a.write(action, v, func(ctx context.Context) (string, error) { return v.remove(ctx, row.ID) })
}

func (a *App) cmdSell(cmd command) {
	if _, ok := cmd.kv["product_id"]; !ok {
		if id, ok := a.selectedProduct(); ok {
			cmd.kv["product_id"] = itoa(id)
		}
	}
	values, err := saleForm.Parse(cmd.kv)
	if err != nil {
		a.printf("Record sale failed: %v\n", err)
		return
	}
	req := dto.CreateSaleRequest{ProductID: values.Int("product_id"), Quantity: int(values.Int("quantity"))}
	if values.Has("price") {
		p := values.Decimal("price")
		req.Price = &p
	}

	products := a.views[0]
	a.write("Record sale", products, func(ctx context.Context) (string, error) {
		return a.client.RecordSale(ctx, req)
	})
}

func (a *App) cmdSales(cmd command) {
	var productID int64
	switch {
	case len(cmd.args) == 1:
		id, err := strconv.ParseInt(cmd.args[0], 10, 64)
		if err != nil {
			a.printf("List sales failed: %q is not a product id\n", cmd.args[0])
			return
		}
		productID = id
	default:
		id, ok := a.selectedProduct()
		if !ok {
			a.printf("Usage: sales <product_id>\n")
			return
		}
		productID = id
	}

	a.disp.Go("List sales", func(ctx context.Context) (interface{}, error) {
		return a.client.ListSales(ctx, productID)
	}, func(value interface{}, err error) {
		if err != nil {
			a.fail("List sales", err)
			return
		}
		sales := value.([]dto.SaleResponse)
		t := NewTable("ID", "Quantity", "Total", "Date")
		rows := make([]Row, 0, len(sales))
		for _, s := range sales {
			rows = append(rows, Row{ID: s.ID, Cells: []string{itoa(s.ID), itoa(int64(s.Quantity)), s.Price.StringFixed(2), s.SaleDate}})
		}
		t.SetRows(rows)
		a.printf("Sales of product %d\n", productID)
		_ = t.Render(a.out)
	})
}

type analyticsResult struct {
	capacity  []dto.CapacityRow
	unitsSold []dto.UnitsSoldRow
}

func (a *App) analytics() {
	a.disp.Go("Load analytics", func(ctx context.Context) (interface{}, error) {
		capacity, err := a.client.CapacityAnalytics(ctx)
		if err != nil {
			return nil, err
		}
		sold, err := a.client.SalesAnalytics(ctx)
		if err != nil {
			return nil, err
		}
		return analyticsResult{capacity: capacity, unitsSold: sold}, nil
	}, func(value interface{}, err error) {
		if err != nil {
			a.fail("Load analytics", err)
			return
		}
		res := value.(analyticsResult)

		salesChart := BarChart{Title: "Units sold per product", Series: []string{"sold"}}
		for _, r := range res.unitsSold {
			salesChart.Bars = append(salesChart.Bars, Bar{Label: r.ProductName, Values: []int{r.TotalSold}})
		}
		capChart := BarChart{Title: "SKU capacity", Series: []string{"total", "used"}}
		for _, r := range res.capacity {
			capChart.Bars = append(capChart.Bars, Bar{Label: r.SKUName, Values: []int{r.TotalCapacity, r.UsedCapacity}})
		}
		_ = salesChart.Render(a.out)
		a.printf("\n")
		_ = capChart.Render(a.out)
	})
}

// write runs a mutating call and, on success, reloads v.
func (a *App) write(action string, v *view, call func(ctx context.Context) (string, error)) {
	a.disp.Go(action, func(ctx context.Context) (interface{}, error) {
		return call(ctx)
	}, func(value interface{}, err error) {
		if err != nil {
			a.fail(action, err)
			return
		}
		a.printf("%s\n", value.(string))
		if a.current == v {
			a.refresh(v)
		}
	})
}

func (a *App) refresh(v *view) {
	a.disp.Go("Refresh "+v.name, func(ctx context.Context) (interface{}, error) {
		return v.list(ctx)
	}, func(value interface{}, err error) {
		if err != nil {
			a.fail("Refresh "+v.name, err)
			return
		}
		v.table.SetRows(value.([]Row))
		if a.current == v {
			a.render(v)
		}
	})
}

func (a *App) render(v *view) {
	a.printf("== %s ==\n", strings.ToUpper(v.name[:1])+v.name[1:])
	_ = v.table.Render(a.out)
}

// tableView returns the current entity view, or reports that action needs one.
func (a *App) tableView(action string) *view {
	if a.current == nil {
		a.printf("%s failed: switch to an entity view first\n", action)
		return nil
	}
	return a.current
}

func (a *App) selectedProduct() (int64, bool) {
	if a.current == nil || a.current.name != "products" {
		return 0, false
	}
	row, err := a.current.table.Selected()
	if err != nil {
		return 0, false
	}
	return row.ID, true
}

func (a *App) fail(action string, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		a.printf("%s failed: timed out\n", action)
	case errors.Is(err, context.Canceled):
		a.printf("%s cancelled\n", action)
	default:
		a.printf("%s failed: %v\n", action, err)
	}
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

