package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/iudanet/stockpile/internal/report"
)

func (c *Cli) runReport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	sortKey := fs.String("sort", string(report.SortName), "sort key: name, price-asc, price-desc, recent")
	filterKey := fs.String("filter", string(report.FilterAll), "filter: all, active, archived")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sortBy, err := parseSort(*sortKey)
	if err != nil {
		return err
	}
	filterBy, err := parseFilter(*filterKey)
	if err != nil {
		return err
	}

	if err := c.requireStore(ctx); err != nil {
		return err
	}

	// Забираем весь каталог, поиск и фильтр применяются в памяти
	if err := c.catalog.Fetch(ctx, ""); err != nil {
		return fmt.Errorf("failed to fetch products: %w", err)
	}
	snap := c.catalog.Snapshot()

	view := report.Derive(snap.Products, report.Options{
		Term:              strings.Join(fs.Args(), " "),
		Filter:            filterBy,
		Sort:              sortBy,
		LowStockThreshold: c.cfg.LowStockThreshold,
	})

	c.io.Println("=== Inventory Report ===")
	c.io.Println()

	for i, p := range view.Items {
		c.io.Printf("%d. %-30s %10s x %d\n", i+1, p.Name, report.FormatBRL(p.Price), p.Quantity)
	}
	if len(view.Items) > 0 {
		c.io.Println()
	}

	c.io.Printf("Products:        %d\n", view.Metrics.TotalProducts)
	c.io.Printf("Total units:     %d\n", view.Metrics.TotalUnits)
	c.io.Printf("Low stock (<%d): %d\n", c.cfg.LowStockThreshold, view.Metrics.LowStock)
	c.io.Printf("Inventory value: %s\n", report.FormatBRL(view.Metrics.InventoryValue))
	c.io.Printf("Average price:   %s\n", report.FormatBRL(view.Metrics.AvgPrice))

	return nil
}

func parseSort(key string) (report.Sort, error) {
	switch report.Sort(key) {
	case report.SortName, report.SortPriceAsc, report.SortPriceDesc, report.SortRecent:
		return report.Sort(key), nil
	default:
		return "", fmt.Errorf("unknown sort key: %s. Use: name, price-asc, price-desc, or recent", key)
	}
}

func parseFilter(key string) (report.Filter, error) {
	switch report.Filter(key) {
	case report.FilterAll, report.FilterActive, report.FilterArchived:
		return report.Filter(key), nil
	default:
		return "", fmt.Errorf("unknown filter: %s. Use: all, active, or archived", key)
	}
}
