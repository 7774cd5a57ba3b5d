package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/stockpile/internal/report"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	if err := c.requireStore(ctx); err != nil {
		return err
	}

	term := strings.TrimSpace(strings.Join(args, " "))

	if err := c.catalog.Fetch(ctx, term); err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	snap := c.catalog.Snapshot()

	if len(snap.Products) == 0 {
		if term != "" {
			c.io.Printf("No products matching %q.\n", term)
		} else {
			c.io.Println("No products yet. Use 'stockpile add' to add your first product.")
		}
		return nil
	}

	c.io.Printf("Found %d product(s):\n", len(snap.Products))
	c.io.Println()

	for i, p := range snap.Products {
		c.io.Printf("%d. %s\n", i+1, p.Name)
		c.io.Printf("   ID:       %s\n", p.ID)
		c.io.Printf("   Price:    %s\n", report.FormatBRL(p.Price))
		c.io.Printf("   Quantity: %d\n", p.Quantity)
		if p.Archived {
			c.io.Println("   Archived: yes")
		}
		c.io.Println()
	}

	// Сводка по выведенному списку
	view := report.Derive(snap.Products, report.Options{
		LowStockThreshold: c.cfg.LowStockThreshold,
	})
	c.io.Printf("Total units: %d, low stock: %d\n", view.Metrics.TotalUnits, view.Metrics.LowStock)

	return nil
}
