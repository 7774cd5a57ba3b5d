package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runAdjust(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: stockpile adjust <id> <delta>")
	}

	if err := c.requireStore(ctx); err != nil {
		return err
	}

	delta, err := parseQuantity(args[1])
	if err != nil {
		return err
	}

	product, err := c.catalog.ChangeStock(ctx, args[0], delta, "")
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}

	if product == nil {
		c.io.Println("Product not found.")
		return nil
	}

	c.io.Printf("✓ Stock adjusted. %s now has %d unit(s).\n", product.Name, product.Quantity)

	return nil
}
