// Command stockctl is the console client for the inventory API: one-shot
// subcommands for scripting plus an interactive shell.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"inventory/internal/client"
	"inventory/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type globals struct {
	apiURL  string
	timeout time.Duration
	out     io.Writer
}

func (g *globals) client() *client.Client { return client.New(g.apiURL, g.timeout) }

func newRootCmd(out io.Writer) *cobra.Command {
	g := &globals{out: out}

	cfg, err := config.LoadClient()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load client config, using defaults")
		cfg = &config.ClientConfig{APIURL: "http://localhost:8000", APITimeout: 10 * time.Second}
	}

	root := &cobra.Command{
		Use:          "stockctl",
		Short:        "console client for the inventory API",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&g.apiURL, "api-url", cfg.APIURL, "base URL of the inventory API")
	root.PersistentFlags().DurationVar(&g.timeout, "timeout", cfg.APITimeout, "timeout for each API call")

	root.AddCommand(
		shellCommand(g),
		productsCommand(g),
		skusCommand(g),
		suppliersCommand(g),
		ordersCommand(g),
		sellCommand(g),
		salesCommand(g),
		analyticsCommand(g),
		reportCommand(g),
		deadLettersCommand(g),
	)
	return root
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid id", arg)
	}
	return id, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
