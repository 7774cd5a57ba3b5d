package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/iudanet/stockpile/internal/models"
	"github.com/iudanet/stockpile/internal/storage"
)

// unsafeSubjectChars matches everything we do not allow in a store name
var unsafeSubjectChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// maxSubjectLen ограничивает длину имени хранилища
const maxSubjectLen = 64

// SanitizeSubject maps an arbitrary subject string to a filesystem-safe
// namespace token: only [A-Za-z0-9_-], at most 64 characters.
// Collisions after sanitization are accepted as out of scope.
func SanitizeSubject(subject string) string {
	safe := unsafeSubjectChars.ReplaceAllString(subject, "_")
	if len(safe) > maxSubjectLen {
		safe = safe[:maxSubjectLen]
	}
	return safe
}

// Manager owns the single process-wide store handle and binds it to the
// authenticated subject. At most one user's store is open at a time.
//
// Manager implements storage.ProductRepository by delegating every call
// to the currently open store, so the repository can be injected once and
// follow the open/reset lifecycle transparently.
type Manager struct {
	mu      sync.Mutex
	dir     string
	subject string
	storage *Storage
}

// NewManager creates a manager that places per-user stores under dir
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// OpenForUser opens (creating if absent) the store for the given subject
// and holds the handle. Calling it again for the same subject is a no-op
// returning the held handle. Calling it for a different subject while a
// store is held fails with storage.ErrStoreAlreadyOpen.
func (m *Manager) OpenForUser(ctx context.Context, subject string) (*Storage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.storage != nil {
		// Идемпотентное открытие для того же пользователя
		if m.subject == subject {
			return m.storage, nil
		}
		return nil, storage.ErrStoreAlreadyOpen
	}

	// Одно хранилище на пользователя, имя детерминированное:
	// повторное открытие того же subject попадает в те же данные
	dbPath := filepath.Join(m.dir, fmt.Sprintf("inventory-%s.db", SanitizeSubject(subject)))

	s, err := New(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store for user: %w", err)
	}

	m.subject = subject
	m.storage = s

	return s, nil
}

// Reset closes and discards the current handle without deleting the
// underlying data. Used on sign-out; repository calls made before the
// next OpenForUser fail with storage.ErrStoreNotOpen.
func (m *Manager) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.storage == nil {
		return nil
	}

	err := m.storage.Close()
	m.storage = nil
	m.subject = ""

	if err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}

	return nil
}

// Subject returns the subject whose store is currently open
// Returns empty string when no store is held
func (m *Manager) Subject() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.subject
}

// current returns the held store or storage.ErrStoreNotOpen
func (m *Manager) current() (*Storage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.storage == nil {
		return nil, storage.ErrStoreNotOpen
	}
	return m.storage, nil
}

// List implements storage.ProductRepository
func (m *Manager) List(ctx context.Context, term string) ([]*models.Product, error) {
	s, err := m.current()
	if err != nil {
		return nil, err
	}
	return s.List(ctx, term)
}

// Get implements storage.ProductRepository
func (m *Manager) Get(ctx context.Context, id string) (*models.Product, error) {
	s, err := m.current()
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Create implements storage.ProductRepository
func (m *Manager) Create(ctx context.Context, product *models.Product) error {
	s, err := m.current()
	if err != nil {
		return err
	}
	return s.Create(ctx, product)
}

// Update implements storage.ProductRepository
func (m *Manager) Update(ctx context.Context, product *models.Product) error {
	s, err := m.current()
	if err != nil {
		return err
	}
	return s.Update(ctx, product)
}

// Delete implements storage.ProductRepository
func (m *Manager) Delete(ctx context.Context, id string) error {
	s, err := m.current()
	if err != nil {
		return err
	}
	return s.Delete(ctx, id)
}

// AdjustStock implements storage.ProductRepository
func (m *Manager) AdjustStock(ctx context.Context, id string, delta int64) (*models.Product, error) {
	s, err := m.current()
	if err != nil {
		return nil, err
	}
	return s.AdjustStock(ctx, id, delta)
}
