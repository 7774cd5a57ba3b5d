// Package cli implements the stockpile commands. Every product command
// requires a session: the stored subject is resolved to its per-user
// store before the repository is touched.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/stockpile/internal/catalog"
	"github.com/iudanet/stockpile/internal/config"
	"github.com/iudanet/stockpile/internal/identity"
	"github.com/iudanet/stockpile/internal/iocli"
	"github.com/iudanet/stockpile/internal/storage"
	"github.com/iudanet/stockpile/internal/storage/sqlite"
)

type Cli struct {
	io       iocli.IO
	cfg      *config.Config
	resolver *identity.Resolver
	sessions storage.SessionStorage
	manager  *sqlite.Manager
	catalog  *catalog.Service
}

func New(
	io iocli.IO,
	cfg *config.Config,
	resolver *identity.Resolver,
	sessions storage.SessionStorage,
	manager *sqlite.Manager,
	catalogService *catalog.Service,
) *Cli {
	return &Cli{
		io:       io,
		cfg:      cfg,
		resolver: resolver,
		sessions: sessions,
		manager:  manager,
		catalog:  catalogService,
	}
}

// Run dispatches a single command
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "adjust":
		return c.runAdjust(ctx, args)
	case "report":
		return c.runReport(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireStore ensures a session exists and the subject's store is open.
// Открытие идемпотентно: повторный вызов для той же сессии просто
// возвращает уже открытое хранилище.
func (c *Cli) requireStore(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return fmt.Errorf("not authenticated. Please run 'stockpile login' first")
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	if _, err := c.manager.OpenForUser(ctx, session.Subject); err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	return nil
}

// PrintUsage prints the command summary
func PrintUsage() {
	fmt.Println("Usage: stockpile [flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                     paste OIDC tokens and open your inventory")
	fmt.Println("  logout                    drop the session and close the inventory")
	fmt.Println("  status                    show the current session")
	fmt.Println("  add                       add a product interactively")
	fmt.Println("  list [term]               list products, optionally filtered by name")
	fmt.Println("  get <id>                  show a single product")
	fmt.Println("  update <id>               edit a product interactively")
	fmt.Println("  delete <id>               remove a product")
	fmt.Println("  adjust <id> <delta>       change stock, e.g. adjust 42 -3")
	fmt.Println("  report [flags] [term]     aggregate metrics with sort/filter")
	fmt.Println()
	fmt.Println("Run 'stockpile -h' for global flags.")
}
