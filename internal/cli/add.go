package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/stockpile/internal/models"
)

func (c *Cli) runAdd(ctx context.Context) error {
	if err := c.requireStore(ctx); err != nil {
		return err
	}

	c.io.Println("=== Add Product ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	priceInput, err := c.io.ReadInput("Price: ")
	if err != nil {
		return fmt.Errorf("failed to read price: %w", err)
	}
	price, err := parsePrice(priceInput)
	if err != nil {
		return err
	}

	quantityInput, err := c.io.ReadInput("Initial quantity: ")
	if err != nil {
		return fmt.Errorf("failed to read quantity: %w", err)
	}
	quantity, err := parseQuantity(quantityInput)
	if err != nil {
		return err
	}

	product := &models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}

	// Валидацию выполняет репозиторий, сюда вернется ValidationError
	if err := c.catalog.Add(ctx, product, ""); err != nil {
		return fmt.Errorf("failed to add product: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Product added successfully!")
	c.io.Printf("ID: %s\n", product.ID)

	return nil
}
