package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/stockpile/internal/models"
	"github.com/iudanet/stockpile/internal/storage"
)

// List retrieves products whose name contains term, ordered by name ascending
// Empty term returns the full catalog in the same order
func (s *Storage) List(ctx context.Context, term string) ([]*models.Product, error) {
	query := `
		SELECT id, name, description, price, quantity, archived,
		       created_at, updated_at
		FROM products
		ORDER BY name ASC
	`

	var rows *sql.Rows
	var err error

	if term != "" {
		query = `
			SELECT id, name, description, price, quantity, archived,
			       created_at, updated_at
			FROM products
			WHERE name LIKE ?
			ORDER BY name ASC
		`
		rows, err = s.db.QueryContext(ctx, query, "%"+term+"%")
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	return s.scanProducts(rows)
}

// Get retrieves a single product by ID
// Returns (nil, nil) if the product does not exist
func (s *Storage) Get(ctx context.Context, id string) (*models.Product, error) {
	query := `
		SELECT id, name, description, price, quantity, archived,
		       created_at, updated_at
		FROM products
		WHERE id = ?
	`

	product, err := s.scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// Create validates the candidate and inserts it
// Assigns an ID when absent and stamps created_at/updated_at
func (s *Storage) Create(ctx context.Context, product *models.Product) error {
	// Валидация до любой записи: невалидный кандидат не трогает базу
	product.Normalize()
	if err := product.Validate(); err != nil {
		return err
	}

	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	now := time.Now().UnixMilli()
	product.CreatedAt = now
	product.UpdatedAt = now

	query := `
		INSERT INTO products (
			id, name, description, price, quantity, archived,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		descriptionToNull(product.Description),
		product.Price,
		product.Quantity,
		boolToInt(product.Archived),
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// Update re-validates and rewrites name, description, price and the
// archived flag, stamping updated_at.
//
// Колонка quantity в запросе отсутствует: остаток меняется только через
// AdjustStock, каким бы ни было входящее значение Quantity.
func (s *Storage) Update(ctx context.Context, product *models.Product) error {
	product.Normalize()
	if err := product.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE products
		SET name = ?, description = ?, price = ?, archived = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		product.Name,
		descriptionToNull(product.Description),
		product.Price,
		boolToInt(product.Archived),
		time.Now().UnixMilli(),
		product.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrProductNotFound
	}

	return nil
}

// Delete removes the product. Deleting a non-existent ID is not an error
func (s *Storage) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// AdjustStock atomically applies quantity = max(0, quantity + delta) and
// stamps updated_at. The clamp and the addition happen in one UPDATE, so
// concurrent adjustments cannot interleave read-modify-write.
// Returns the post-adjustment product, or (nil, nil) if the ID does not exist
func (s *Storage) AdjustStock(ctx context.Context, id string, delta int64) (*models.Product, error) {
	query := `
		UPDATE products
		SET quantity = MAX(0, quantity + ?), updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query, delta, time.Now().UnixMilli(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	// Отсутствие товара для adjust не ошибка, возвращаем nil
	if rows == 0 {
		return nil, nil
	}

	return s.Get(ctx, id)
}

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanProduct reads a single product row
func (s *Storage) scanProduct(row scanner) (*models.Product, error) {
	product := &models.Product{}
	var description sql.NullString
	var archived int

	err := row.Scan(
		&product.ID,
		&product.Name,
		&description,
		&product.Price,
		&product.Quantity,
		&archived,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Description = description.String
	product.Archived = intToBool(archived)

	return product, nil
}

// scanProducts is a helper function to scan multiple products from rows
func (s *Storage) scanProducts(rows *sql.Rows) ([]*models.Product, error) {
	var products []*models.Product

	for rows.Next() {
		product, err := s.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return products, nil
}

// Helper functions for bool/int and nullable description conversion
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// descriptionToNull stores an empty description as NULL
func descriptionToNull(description string) sql.NullString {
	return sql.NullString{String: description, Valid: description != ""}
}
