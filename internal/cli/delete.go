package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product ID. Usage: stockpile delete <id>")
	}

	if err := c.requireStore(ctx); err != nil {
		return err
	}

	// Удаление идемпотентно: несуществующий ID не ошибка
	if err := c.catalog.Remove(ctx, args[0], ""); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	c.io.Println("✓ Product deleted.")

	return nil
}
