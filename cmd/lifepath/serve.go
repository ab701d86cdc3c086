package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"lifepath/internal/catalog"
	"lifepath/internal/config"
	"lifepath/internal/logging"
	"lifepath/internal/scoring"
	"lifepath/internal/server"
	"lifepath/internal/session"
	"lifepath/internal/session/statestore"
	"lifepath/internal/share"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	gray  = color.New(color.FgHiBlack).SprintFunc()
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Debug {
		logging.SetDefaultLevel(logging.DebugLevel)
	}
	_ = logging.NewComponentLogger("serve")

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		sessionStore statestore.Store
		shareStore   share.Store
	)
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()

		pgSessions := statestore.NewPostgres(pool, logging.NewComponentLogger("statestore"))
		if err := pgSessions.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("session schema: %w", err)
		}
		pgShares := share.NewPostgres(pool)
		if err := pgShares.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("share schema: %w", err)
		}
		sessionStore = pgSessions
		shareStore = pgShares
	} else {
		sessionStore = statestore.NewFile(cfg.DataDir)
		shareStore = share.NewMemory()
	}

	sessions := session.NewManager(cat, sessionStore, logging.NewComponentLogger("session"))
	scorer := scoring.NewClient(cfg.ScorerURL, cfg.ScorerTimeout, logging.NewComponentLogger("scoring"))
	shares, err := share.NewService(shareStore, cfg.ShareTTL, logging.NewComponentLogger("share"))
	if err != nil {
		return err
	}

	srv := server.New(server.Options{
		Addr:           cfg.Addr(),
		Debug:          cfg.Debug,
		AllowedOrigins: cfg.AllowedOrigins,
		MetricsEnabled: cfg.MetricsEnabled,
	}, sessions, scorer, shares, logging.NewComponentLogger("server"))

	printBanner(cfg, cat)
	return srv.Run(ctx)
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.Default(), nil
}

func printBanner(cfg config.Config, cat *catalog.Catalog) {
	fmt.Printf("%s lifepath %s\n", green("●"), version)
	fmt.Printf("  %s %s\n", gray("listen"), cyan(cfg.Addr()))
	fmt.Printf("  %s %d questions, %d cards\n", gray("catalog"), len(cat.Questions()), len(cat.Cards()))
	if cfg.DatabaseURL != "" {
		fmt.Printf("  %s postgres\n", gray("store"))
	} else {
		fmt.Printf("  %s file (%s)\n", gray("store"), cfg.DataDir)
	}
	if cfg.ScorerURL != "" {
		fmt.Printf("  %s %s\n", gray("scorer"), cfg.ScorerURL)
	} else {
		fmt.Printf("  %s local fallback\n", gray("scorer"))
	}
}
