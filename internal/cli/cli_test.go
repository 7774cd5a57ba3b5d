package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockpile/internal/catalog"
	"github.com/iudanet/stockpile/internal/config"
	"github.com/iudanet/stockpile/internal/identity"
	"github.com/iudanet/stockpile/internal/storage"
	"github.com/iudanet/stockpile/internal/storage/sqlite"
)

// fakeIO подсовывает заранее заданные ответы и копит вывод
type fakeIO struct {
	inputs  []string
	secrets []string
	out     strings.Builder
}

func (f *fakeIO) Println(a ...any) {
	f.out.WriteString(fmt.Sprintln(a...))
}

func (f *fakeIO) Printf(format string, a ...any) {
	f.out.WriteString(fmt.Sprintf(format, a...))
}

func (f *fakeIO) ReadInput(prompt string) (string, error) {
	if len(f.inputs) == 0 {
		return "", fmt.Errorf("no scripted input for prompt %q", prompt)
	}
	input := f.inputs[0]
	f.inputs = f.inputs[1:]
	return input, nil
}

func (f *fakeIO) ReadSecret(prompt string) (string, error) {
	if len(f.secrets) == 0 {
		return "", fmt.Errorf("no scripted secret for prompt %q", prompt)
	}
	secret := f.secrets[0]
	f.secrets = f.secrets[1:]
	return secret, nil
}

// memSessions хранит сессию в памяти
type memSessions struct {
	session *storage.SessionData
}

func (m *memSessions) SaveSession(ctx context.Context, session *storage.SessionData) error {
	m.session = session
	return nil
}

func (m *memSessions) GetSession(ctx context.Context) (*storage.SessionData, error) {
	if m.session == nil {
		return nil, storage.ErrSessionNotFound
	}
	return m.session, nil
}

func (m *memSessions) DeleteSession(ctx context.Context) error {
	if m.session == nil {
		return storage.ErrSessionNotFound
	}
	m.session = nil
	return nil
}

func setupTestCli(t *testing.T, io *fakeIO, sessions *memSessions) *Cli {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	manager := sqlite.NewManager(t.TempDir())
	t.Cleanup(func() {
		_ = manager.Reset()
	})

	return New(io, cfg, identity.NewResolver(""), sessions, manager, catalog.NewService(manager))
}

func authenticated() *memSessions {
	return &memSessions{session: &storage.SessionData{Subject: "test-user"}}
}

func TestCli_RequiresAuthentication(t *testing.T) {
	ctx := context.Background()

	for _, command := range []string{"add", "list", "report"} {
		t.Run(command, func(t *testing.T) {
			io := &fakeIO{}
			c := setupTestCli(t, io, &memSessions{})

			err := c.Run(ctx, command, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not authenticated")
		})
	}
}

func TestCli_UnknownCommand(t *testing.T) {
	io := &fakeIO{}
	c := setupTestCli(t, io, &memSessions{})

	err := c.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestCli_AddAndList(t *testing.T) {
	ctx := context.Background()

	io := &fakeIO{inputs: []string{"Widget", "A fine widget", "9.90", "5"}}
	c := setupTestCli(t, io, authenticated())

	require.NoError(t, c.Run(ctx, "add", nil))
	assert.Contains(t, io.out.String(), "Product added successfully")

	require.NoError(t, c.Run(ctx, "list", nil))
	assert.Contains(t, io.out.String(), "Widget")
	assert.Contains(t, io.out.String(), "Found 1 product(s)")
}

func TestCli_Add_InvalidPrice(t *testing.T) {
	ctx := context.Background()

	io := &fakeIO{inputs: []string{"Widget", "", "free", "5"}}
	c := setupTestCli(t, io, authenticated())

	err := c.Run(ctx, "add", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid price")
}

func TestCli_AdjustClampsToZero(t *testing.T) {
	ctx := context.Background()

	io := &fakeIO{inputs: []string{"Widget", "", "9.90", "5"}}
	c := setupTestCli(t, io, authenticated())
	require.NoError(t, c.Run(ctx, "add", nil))

	snap := c.catalog.Snapshot()
	require.Len(t, snap.Products, 1)
	id := snap.Products[0].ID

	require.NoError(t, c.Run(ctx, "adjust", []string{id, "-10"}))
	assert.Contains(t, io.out.String(), "now has 0 unit(s)")
}

func TestCli_Adjust_UnknownID(t *testing.T) {
	ctx := context.Background()

	io := &fakeIO{}
	c := setupTestCli(t, io, authenticated())

	require.NoError(t, c.Run(ctx, "adjust", []string{"no-such-id", "1"}))
	assert.Contains(t, io.out.String(), "Product not found")
}

func TestCli_Report(t *testing.T) {
	ctx := context.Background()

	io := &fakeIO{inputs: []string{
		"Widget", "", "10", "2",
		"Gadget", "", "5", "0",
	}}
	c := setupTestCli(t, io, authenticated())
	require.NoError(t, c.Run(ctx, "add", nil))
	require.NoError(t, c.Run(ctx, "add", nil))

	require.NoError(t, c.Run(ctx, "report", nil))

	out := io.out.String()
	assert.Contains(t, out, "Products:        2")
	assert.Contains(t, out, "Total units:     2")
	assert.Contains(t, out, "Inventory value: R$ 20,00")
	assert.Contains(t, out, "Average price:   R$ 7,50")
}

func TestCli_Report_InvalidSort(t *testing.T) {
	io := &fakeIO{}
	c := setupTestCli(t, io, authenticated())

	err := c.Run(context.Background(), "report", []string{"-sort", "sideways"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort key")
}

func TestCli_LogoutWithoutSession(t *testing.T) {
	io := &fakeIO{}
	c := setupTestCli(t, io, &memSessions{})

	// Logout без сессии проходит молча
	require.NoError(t, c.Run(context.Background(), "logout", nil))
	assert.Contains(t, io.out.String(), "Logged out")
}

func TestCli_Status(t *testing.T) {
	ctx := context.Background()

	io := &fakeIO{}
	c := setupTestCli(t, io, &memSessions{})

	require.NoError(t, c.Run(ctx, "status", nil))
	assert.Contains(t, io.out.String(), "Not authenticated")

	io2 := &fakeIO{}
	c2 := setupTestCli(t, io2, authenticated())
	require.NoError(t, c2.Run(ctx, "status", nil))
	assert.Contains(t, io2.out.String(), "test-user")
}
