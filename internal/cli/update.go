package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product ID. Usage: stockpile update <id>")
	}

	if err := c.requireStore(ctx); err != nil {
		return err
	}

	product, err := c.manager.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product %s does not exist", args[0])
	}

	c.io.Println("=== Update Product ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	name, err := c.io.ReadInput(fmt.Sprintf("Name [%s]: ", product.Name))
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name != "" {
		product.Name = name
	}

	description, err := c.io.ReadInput(fmt.Sprintf("Description [%s]: ", product.Description))
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}
	if description != "" {
		product.Description = description
	}

	priceInput, err := c.io.ReadInput(fmt.Sprintf("Price [%.2f]: ", product.Price))
	if err != nil {
		return fmt.Errorf("failed to read price: %w", err)
	}
	if priceInput != "" {
		price, err := parsePrice(priceInput)
		if err != nil {
			return err
		}
		product.Price = price
	}

	archivedInput, err := c.io.ReadInput(fmt.Sprintf("Archived (y/n) [%s]: ", yesNo(product.Archived)))
	if err != nil {
		return fmt.Errorf("failed to read archived flag: %w", err)
	}
	switch strings.ToLower(archivedInput) {
	case "y", "yes":
		product.Archived = true
	case "n", "no":
		product.Archived = false
	case "":
		// Оставляем как есть
	default:
		return fmt.Errorf("invalid answer %q, expected y or n", archivedInput)
	}

	// Количество через update не меняется, только через adjust
	if err := c.catalog.Save(ctx, product, ""); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Product updated successfully!")

	return nil
}

func yesNo(v bool) string {
	if v {
		return "y"
	}
	return "n"
}
