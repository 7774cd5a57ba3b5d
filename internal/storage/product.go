package storage

import (
	"context"

	"github.com/iudanet/stockpile/internal/models"
)

//go:generate moq -out product_mock.go . ProductRepository

// ProductRepository defines interface for product persistence
// All methods operate against the currently open per-user store and
// return ErrStoreNotOpen when no store is held.
type ProductRepository interface {
	// List retrieves products whose name contains term, ordered by name ascending
	// Empty term returns the full catalog in the same order
	List(ctx context.Context, term string) ([]*models.Product, error)

	// Get retrieves a single product by ID
	// Returns (nil, nil) if the product does not exist
	Get(ctx context.Context, id string) (*models.Product, error)

	// Create validates the candidate and inserts it
	// Assigns an ID when absent and stamps created_at/updated_at
	// Returns *models.ValidationError on constraint violation, nothing is written
	Create(ctx context.Context, product *models.Product) error

	// Update re-validates and rewrites name, description, price and the
	// archived flag. Quantity is never written through this path, it is
	// mutated only via AdjustStock.
	// Returns ErrProductNotFound if the ID does not exist
	Update(ctx context.Context, product *models.Product) error

	// Delete removes the product. Deleting a non-existent ID is not an error
	Delete(ctx context.Context, id string) error

	// AdjustStock atomically applies quantity = max(0, quantity + delta)
	// and stamps updated_at in a single statement.
	// Returns the post-adjustment product, or (nil, nil) if the ID does not exist
	AdjustStock(ctx context.Context, id string, delta int64) (*models.Product, error)
}
