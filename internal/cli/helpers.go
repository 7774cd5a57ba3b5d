package cli

import (
	"fmt"
	"strconv"

	"github.com/iudanet/stockpile/internal/models"
	"github.com/iudanet/stockpile/internal/report"
)

// parsePrice parses a user-typed price value
func parsePrice(input string) (float64, error) {
	price, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", input)
	}
	return price, nil
}

// parseQuantity parses a user-typed quantity or delta value
func parseQuantity(input string) (int64, error) {
	quantity, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", input)
	}
	return quantity, nil
}

// printProduct prints the detail view of a single product
func (c *Cli) printProduct(p *models.Product) {
	c.io.Printf("ID:          %s\n", p.ID)
	c.io.Printf("Name:        %s\n", p.Name)
	if p.Description != "" {
		c.io.Printf("Description: %s\n", p.Description)
	}
	c.io.Printf("Price:       %s\n", report.FormatBRL(p.Price))
	c.io.Printf("Quantity:    %d\n", p.Quantity)
	if p.Archived {
		c.io.Println("Archived:    yes")
	}
}
