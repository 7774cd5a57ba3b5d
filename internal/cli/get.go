package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product ID. Usage: stockpile get <id>")
	}

	if err := c.requireStore(ctx); err != nil {
		return err
	}

	product, err := c.manager.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	// Отсутствие записи не ошибка чтения
	if product == nil {
		c.io.Println("Product not found.")
		return nil
	}

	c.printProduct(product)
	c.io.Printf("Created:     %s\n", time.UnixMilli(product.CreatedAt).Format(time.RFC3339))
	c.io.Printf("Updated:     %s\n", time.UnixMilli(product.UpdatedAt).Format(time.RFC3339))

	return nil
}
