// Package catalog holds the in-memory view of the product list. The cache
// is never authoritative: the store is the source of truth, and every
// mutation re-fetches the list instead of patching the cache in place.
package catalog

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/iudanet/stockpile/internal/models"
	"github.com/iudanet/stockpile/internal/storage"
)

// Status describes the state of the last fetch
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Snapshot is a copy of the cached state for presentation
type Snapshot struct {
	Products []*models.Product
	Status   Status
	Err      string
}

// Service caches the last successful repository list result.
// Fetches are sequence-stamped: a result that arrives after a later
// fetch has already been applied is discarded (last-write-wins).
type Service struct {
	repo storage.ProductRepository

	seq atomic.Uint64

	mu       sync.Mutex
	applied  uint64
	products []*models.Product
	status   Status
	errMsg   string
}

// NewService creates a catalog service over the given repository
func NewService(repo storage.ProductRepository) *Service {
	return &Service{
		repo:   repo,
		status: StatusIdle,
	}
}

// Fetch replaces the cache with the repository list result.
// On failure the previous cache is retained and the error is recorded
// in the snapshot; the error is also returned for direct handling.
func (s *Service) Fetch(ctx context.Context, term string) error {
	// Номер берем до вызова репозитория: более поздний Fetch
	// имеет больший номер, даже если завершится раньше
	seq := s.seq.Add(1)

	s.mu.Lock()
	s.status = StatusLoading
	s.mu.Unlock()

	products, err := s.repo.List(ctx, term)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Устаревший результат (и устаревшую ошибку) отбрасываем целиком
	if seq < s.applied {
		return nil
	}
	s.applied = seq

	if err != nil {
		s.status = StatusError
		s.errMsg = err.Error()
		return err
	}

	s.products = products
	s.status = StatusSuccess
	s.errMsg = ""

	return nil
}

// Add creates the product and re-fetches the catalog
// Repository errors propagate to the caller, the cache stays intact
func (s *Service) Add(ctx context.Context, product *models.Product, term string) error {
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	return s.Fetch(ctx, term)
}

// Save updates the product and re-fetches the catalog
func (s *Service) Save(ctx context.Context, product *models.Product, term string) error {
	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}
	return s.Fetch(ctx, term)
}

// Remove deletes the product and re-fetches the catalog
func (s *Service) Remove(ctx context.Context, id string, term string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.Fetch(ctx, term)
}

// ChangeStock adjusts the product quantity and re-fetches the catalog
// Returns the post-adjustment product, or nil if the ID does not exist
func (s *Service) ChangeStock(ctx context.Context, id string, delta int64, term string) (*models.Product, error) {
	updated, err := s.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}

	if err := s.Fetch(ctx, term); err != nil {
		return updated, err
	}

	return updated, nil
}

// Snapshot returns a copy of the cached product list and fetch status
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]*models.Product, len(s.products))
	copy(products, s.products)

	return Snapshot{
		Products: products,
		Status:   s.status,
		Err:      s.errMsg,
	}
}
