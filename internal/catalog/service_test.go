package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockpile/internal/models"
)

// fakeRepo реализует storage.ProductRepository через подменяемые функции
type fakeRepo struct {
	listFunc        func(ctx context.Context, term string) ([]*models.Product, error)
	getFunc         func(ctx context.Context, id string) (*models.Product, error)
	createFunc      func(ctx context.Context, product *models.Product) error
	updateFunc      func(ctx context.Context, product *models.Product) error
	deleteFunc      func(ctx context.Context, id string) error
	adjustStockFunc func(ctx context.Context, id string, delta int64) (*models.Product, error)
}

func (f *fakeRepo) List(ctx context.Context, term string) ([]*models.Product, error) {
	return f.listFunc(ctx, term)
}

func (f *fakeRepo) Get(ctx context.Context, id string) (*models.Product, error) {
	return f.getFunc(ctx, id)
}

func (f *fakeRepo) Create(ctx context.Context, product *models.Product) error {
	return f.createFunc(ctx, product)
}

func (f *fakeRepo) Update(ctx context.Context, product *models.Product) error {
	return f.updateFunc(ctx, product)
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFunc(ctx, id)
}

func (f *fakeRepo) AdjustStock(ctx context.Context, id string, delta int64) (*models.Product, error) {
	return f.adjustStockFunc(ctx, id, delta)
}

func staticList(products ...*models.Product) func(context.Context, string) ([]*models.Product, error) {
	return func(ctx context.Context, term string) ([]*models.Product, error) {
		return products, nil
	}
}

func TestService_Fetch_Success(t *testing.T) {
	ctx := context.Background()
	widget := &models.Product{ID: "1", Name: "Widget"}

	s := NewService(&fakeRepo{listFunc: staticList(widget)})

	require.NoError(t, s.Fetch(ctx, ""))

	snap := s.Snapshot()
	assert.Equal(t, StatusSuccess, snap.Status)
	assert.Empty(t, snap.Err)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Widget", snap.Products[0].Name)
}

func TestService_Fetch_ErrorRetainsCache(t *testing.T) {
	ctx := context.Background()
	widget := &models.Product{ID: "1", Name: "Widget"}

	failing := false
	repo := &fakeRepo{
		listFunc: func(ctx context.Context, term string) ([]*models.Product, error) {
			if failing {
				return nil, errors.New("disk exploded")
			}
			return []*models.Product{widget}, nil
		},
	}

	s := NewService(repo)
	require.NoError(t, s.Fetch(ctx, ""))

	// Сбой не затирает последний успешно полученный список
	failing = true
	err := s.Fetch(ctx, "")
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Equal(t, StatusError, snap.Status)
	assert.Contains(t, snap.Err, "disk exploded")
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Widget", snap.Products[0].Name)
}

func TestService_Fetch_LastWriteWins(t *testing.T) {
	ctx := context.Background()

	older := []*models.Product{{ID: "1", Name: "Stale"}}
	newer := []*models.Product{{ID: "2", Name: "Fresh"}}

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	var mu sync.Mutex
	calls := 0

	repo := &fakeRepo{
		listFunc: func(ctx context.Context, term string) ([]*models.Product, error) {
			mu.Lock()
			calls++
			n := calls
			mu.Unlock()

			// Первый запрос зависает и завершается последним
			if n == 1 {
				close(firstStarted)
				<-releaseFirst
				return older, nil
			}
			return newer, nil
		},
	}

	s := NewService(repo)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Fetch(ctx, "")
	}()

	// Дожидаемся пока первый fetch уйдет в репозиторий,
	// затем выполняем и применяем второй
	<-firstStarted
	require.NoError(t, s.Fetch(ctx, ""))

	// Отпускаем первый: его устаревший результат должен быть отброшен
	close(releaseFirst)
	wg.Wait()

	snap := s.Snapshot()
	assert.Equal(t, StatusSuccess, snap.Status)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Fresh", snap.Products[0].Name)
}

func TestService_Add_RefetchesCatalog(t *testing.T) {
	ctx := context.Background()

	var created *models.Product
	listCalls := 0

	repo := &fakeRepo{
		createFunc: func(ctx context.Context, product *models.Product) error {
			created = product
			return nil
		},
		listFunc: func(ctx context.Context, term string) ([]*models.Product, error) {
			listCalls++
			return []*models.Product{created}, nil
		},
	}

	s := NewService(repo)

	widget := &models.Product{Name: "Widget"}
	require.NoError(t, s.Add(ctx, widget, ""))

	assert.Equal(t, 1, listCalls)

	snap := s.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Widget", snap.Products[0].Name)
}

func TestService_Add_ErrorPropagatesAndCacheIntact(t *testing.T) {
	ctx := context.Background()
	widget := &models.Product{ID: "1", Name: "Widget"}

	listCalls := 0
	repo := &fakeRepo{
		listFunc: func(ctx context.Context, term string) ([]*models.Product, error) {
			listCalls++
			return []*models.Product{widget}, nil
		},
		createFunc: func(ctx context.Context, product *models.Product) error {
			return &models.ValidationError{Field: "name", Reason: "cannot be empty"}
		},
	}

	s := NewService(repo)
	require.NoError(t, s.Fetch(ctx, ""))

	err := s.Add(ctx, &models.Product{}, "")

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)

	// Ошибка мутации не трогает кэш и не вызывает повторный fetch
	assert.Equal(t, 1, listCalls)

	snap := s.Snapshot()
	assert.Equal(t, StatusSuccess, snap.Status)
	require.Len(t, snap.Products, 1)
}

func TestService_ChangeStock(t *testing.T) {
	ctx := context.Background()
	adjusted := &models.Product{ID: "1", Name: "Widget", Quantity: 0}

	repo := &fakeRepo{
		adjustStockFunc: func(ctx context.Context, id string, delta int64) (*models.Product, error) {
			assert.Equal(t, "1", id)
			assert.Equal(t, int64(-10), delta)
			return adjusted, nil
		},
		listFunc: staticList(adjusted),
	}

	s := NewService(repo)

	got, err := s.ChangeStock(ctx, "1", -10, "")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(0), got.Quantity)
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()

	deleted := ""
	repo := &fakeRepo{
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
		listFunc: staticList(),
	}

	s := NewService(repo)

	require.NoError(t, s.Remove(ctx, "1", ""))
	assert.Equal(t, "1", deleted)

	snap := s.Snapshot()
	assert.Equal(t, StatusSuccess, snap.Status)
	assert.Empty(t, snap.Products)
}
