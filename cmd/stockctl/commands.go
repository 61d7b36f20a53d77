package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"inventory/internal/config"
	"inventory/internal/dto"
	"inventory/internal/infra"
	"inventory/internal/ui"
	"inventory/internal/worker"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func shellCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "interactive console with entity tables and analytics charts",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintln(g.out, "Connected to", g.apiURL, "- type help for commands")
			err := ui.NewApp(g.client(), c.InOrStdin(), g.out, g.timeout).Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

func sellCommand(g *globals) *cobra.Command {
	var (
		req   dto.CreateSaleRequest
		price string
	)
	cmd := &cobra.Command{
		Use:   "sell",
		Short: "record a sale and decrement stock",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if price != "" {
				d, err := decimal.NewFromString(price)
				if err != nil {
					return fmt.Errorf("--price: %q is not a number", price)
				}
				req.Price = &d
			}
			msg, err := g.client().RecordSale(c.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(g.out, msg)
			return nil
		},
	}
	cmd.Flags().Int64Var(&req.ProductID, "product-id", 0, "product sold")
	cmd.Flags().IntVar(&req.Quantity, "quantity", 0, "units sold")
	cmd.Flags().StringVar(&price, "price", "", "unit price (defaults to the product's price)")
	_ = cmd.MarkFlagRequired("product-id")
	_ = cmd.MarkFlagRequired("quantity")
	return cmd
}

func salesCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "sales <product_id>",
		Short: "list the sales of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			sales, err := g.client().ListSales(c.Context(), id)
			if err != nil {
				return err
			}
			rows, ids := make([][]string, 0, len(sales)), make([]int64, 0, len(sales))
			for _, s := range sales {
				rows = append(rows, []string{fmt.Sprint(s.ID), fmt.Sprint(s.Quantity), s.Price.StringFixed(2), s.SaleDate})
				ids = append(ids, s.ID)
			}
			return rowsTable([]string{"ID", "Quantity", "Total", "Date"}, rows, ids).Render(g.out)
		},
	}
}

func analyticsCommand(g *globals) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "show SKU capacity usage and units sold per product",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cl := g.client()
			capacity, err := cl.CapacityAnalytics(c.Context())
			if err != nil {
				return err
			}
			sold, err := cl.SalesAnalytics(c.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(g.out, map[string]interface{}{"capacity": capacity, "units_sold": sold})
			}

			salesChart := ui.BarChart{Title: "Units sold per product", Series: []string{"sold"}}
			for _, r := range sold {
				salesChart.Bars = append(salesChart.Bars, ui.Bar{Label: r.ProductName, Values: []int{r.TotalSold}})
			}
			capChart := ui.BarChart{Title: "SKU capacity", Series: []string{"total", "used"}}
			for _, r := range capacity {
				capChart.Bars = append(capChart.Bars, ui.Bar{Label: r.SKUName, Values: []int{r.TotalCapacity, r.UsedCapacity}})
			}
			if err := salesChart.Render(g.out); err != nil {
				return err
			}
			fmt.Fprintln(g.out)
			return capChart.Render(g.out)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw rows as JSON")
	return cmd
}

func reportCommand(g *globals) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "download the PDF stock report",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			n, err := g.client().StockReport(c.Context(), f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(path)
				return err
			}
			fmt.Fprintf(g.out, "Wrote %s (%d bytes)\n", path, n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "output", "o", "stock-report.pdf", "where to write the PDF")
	return cmd
}

// deadLettersCommand reads Redis directly; the API only reports the count
// in /health.
func deadLettersCommand(g *globals) *cobra.Command {
	var (
		redisURL string
		limit    int64
	)
	cmd := &cobra.Command{
		Use:   "dead-letters",
		Short: "list stock alerts that exhausted their retries",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if redisURL == "" {
				return errors.New("--redis-url (or REDIS_URL) is required")
			}
			rdb, err := infra.NewRedis(redisURL)
			if err != nil {
				return err
			}
			defer rdb.Close()

			letters, err := worker.DeadLetters(c.Context(), rdb, worker.QueueStockAlert, limit)
			if err != nil {
				return err
			}
			if len(letters) == 0 {
				fmt.Fprintln(g.out, "No dead letters")
				return nil
			}
			tw := tabwriter.NewWriter(g.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FAILED AT\tTYPE\tATTEMPTS\tREASON\tPAYLOAD")
			for _, dl := range letters {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", dl.FailedAt.Format(time.RFC3339), dl.JobType, dl.Attempts, dl.Reason, dl.Payload)
			}
			return tw.Flush()
		},
	}
	redisDefault := ""
	if cfg, err := config.Load(); err == nil {
		redisDefault = cfg.RedisURL
	}
	cmd.Flags().StringVar(&redisURL, "redis-url", redisDefault, "Redis holding the alert queue")
	cmd.Flags().Int64Var(&limit, "limit", 20, "newest entries to show")
	return cmd
}
