package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/stockpile/internal/catalog"
	"github.com/iudanet/stockpile/internal/cli"
	"github.com/iudanet/stockpile/internal/config"
	"github.com/iudanet/stockpile/internal/identity"
	"github.com/iudanet/stockpile/internal/iocli"
	"github.com/iudanet/stockpile/internal/storage/boltdb"
	"github.com/iudanet/stockpile/internal/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Конфигурация: defaults -> .env -> env, флаги поверх
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	showVersion := flag.Bool("version", false, "Show version information")
	dataDir := flag.String("data-dir", cfg.DataDir, "Directory for per-user inventory databases")
	sessionPath := flag.String("session", cfg.SessionPath, "Path to the local session database")
	issuer := flag.String("issuer", cfg.Issuer, "Identity provider base URL for the userinfo fallback")
	lowStock := flag.Int64("low-stock", cfg.LowStockThreshold, "Quantity below which a product counts as low stock")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg.DataDir = *dataDir
	cfg.SessionPath = *sessionPath
	cfg.Issuer = *issuer
	cfg.LowStockThreshold = *lowStock

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()

	// Открываем локальное хранилище сессии
	sessions, err := boltdb.New(ctx, cfg.SessionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			slog.Error("failed to close session database", "error", err)
		}
	}()

	// Менеджер пользовательских хранилищ, он же репозиторий товаров
	manager := sqlite.NewManager(cfg.DataDir)
	defer func() {
		if err := manager.Reset(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	resolver := identity.NewResolver(cfg.Issuer)
	catalogService := catalog.NewService(manager)

	c := cli.New(iocli.NewStdio(), cfg, resolver, sessions, manager, catalogService)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("stockpile version %s\n", Version)
	fmt.Printf("Build date: %s\n", BuildDate)
	fmt.Printf("Git commit: %s\n", GitCommit)
}
