package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/menucart/internal/catalog"
	"github.com/angelmondragon/menucart/internal/configurator"
	"github.com/angelmondragon/menucart/internal/quantity"
	"github.com/angelmondragon/menucart/pkg/config"
	"github.com/angelmondragon/menucart/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "catalog", Format: logger.FormatConsole})

	_ = godotenv.Load()

	cmd := flag.String("cmd", "validate", "catalog command: validate|list|quote")
	path := flag.String("path", "", "catalog file (defaults to MENUCART_CATALOG_PATH)")
	product := flag.String("product", "", "product id (for quote)")
	options := flag.String("options", "", `selection as JSON, e.g. {"toppings":["salami"]} (for quote)`)
	amount := flag.String("amount", "", "amount (for quote)")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	if *path == "" {
		*path = cfg.Catalog.Path
	}
	ctx = logg.WithFields(ctx, map[string]any{"cmd": *cmd, "path": *path})

	menu, err := catalog.Load(*path)
	requireResource(ctx, logg, "catalog", err)

	switch *cmd {
	case "validate":
		fmt.Printf("catalog ok: %d products\n", menu.Len())

	case "list":
		for _, p := range menu.Products() {
			fmt.Printf("%-20s %-40s %s\n", p.ID, p.Name, p.BasePrice.StringFixed(2))
			for _, c := range p.Categories {
				ids := make([]string, 0, len(c.Options))
				for _, o := range c.Options {
					mark := ""
					if o.Default {
						mark = "*"
					}
					ids = append(ids, fmt.Sprintf("%s%s(%s)", o.ID, mark, o.Price.String()))
				}
				fmt.Printf("    %-16s %-6s %s\n", c.ID, c.Type, strings.Join(ids, " "))
			}
		}

	case "quote":
		p, err := menu.Product(*product)
		requireResource(ctx, logg, "product", err)

		bounds := quantity.Bounds{Min: cfg.Amount.Min, Max: cfg.Amount.Max, Default: cfg.Amount.Default}
		quote, err := configurator.New(p, bounds)
		requireResource(ctx, logg, "configurator", err)

		if *options != "" {
			var sel catalog.Selection
			if err := json.Unmarshal([]byte(*options), &sel); err != nil {
				fmt.Fprintf(os.Stderr, "invalid -options: %v\n", err)
				os.Exit(1)
			}
			requireResource(ctx, logg, "selection", quote.Merge(sel))
		}
		if *amount != "" && !quote.SetAmount(*amount) {
			fmt.Fprintf(os.Stderr, "amount %q rejected, must be between %d and %d\n", *amount, bounds.Min, bounds.Max)
			os.Exit(1)
		}

		out, _ := json.MarshalIndent(map[string]any{
			"product":     p.ID,
			"amount":      quote.Quantity().Value(),
			"priceSingle": quote.UnitPrice().String(),
			"price":       quote.Price().String(),
			"markers":     quote.Markers(),
		}, "", "  ")
		fmt.Println(string(out))

	default:
		fmt.Fprintf(os.Stderr, "unknown -cmd %q\n", *cmd)
		os.Exit(1)
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, name string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("failed to prepare %s", name), err)
	os.Exit(1)
}
