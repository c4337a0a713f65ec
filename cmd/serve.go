package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/pathway/internal/devserver"
	"github.com/abhisek/pathway/internal/devserver/postgres"
	"github.com/abhisek/pathway/internal/logger"
	"github.com/abhisek/pathway/internal/printer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local roadmap provider for development",
	Long: `Serve the roadmap provider API on a local address.

Steps come from a YAML seed file (or a built-in sample roadmap). Progress
is kept in memory unless --database-url (or DATABASE_URL) points at
PostgreSQL.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8089", "Listen address")
	serveCmd.Flags().String("seed", "", "YAML seed file (default: built-in sample roadmap)")
	serveCmd.Flags().String("session-token", "", "Accepted session token (default: random)")
	serveCmd.Flags().String("database-url", "", "PostgreSQL URL for persistent progress (default $DATABASE_URL)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	seedPath, _ := cmd.Flags().GetString("seed")
	token, _ := cmd.Flags().GetString("session-token")
	dbURL, _ := cmd.Flags().GetString("database-url")
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if token == "" {
		token = os.Getenv("PATHWAY_SESSION_TOKEN")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closer, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Output: os.Stderr,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	steps, err := devserver.LoadSeed(seedPath)
	if err != nil {
		return printer.Error("Could not load the seed roadmap", err.Error())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo devserver.Repository = devserver.NewMemoryRepository()
	storage := "memory"
	if dbURL != "" {
		pg, err := postgres.Connect(ctx, dbURL)
		if err != nil {
			return printer.Error("Could not connect to PostgreSQL", err.Error(),
				"Check --database-url or DATABASE_URL")
		}
		defer pg.Close()
		repo, storage = pg, "postgres"
	}
	if err := repo.Seed(ctx, steps); err != nil {
		return fmt.Errorf("seed steps: %w", err)
	}

	srv := devserver.New(repo, devserver.Options{
		SessionCookie: cfg.Provider.SessionCookie,
		SessionToken:  token,
		RoadmapPath:   cfg.Provider.RoadmapPath,
		ProgressPath:  cfg.Provider.ProgressPath,
		Log:           log,
	})

	printer.Success("Serving %d steps on http://%s (%s storage)\n", len(steps), addr, storage)
	printer.Info("Session cookie: %s=%s\n", srv.CookieName(), srv.Token())
	printer.Dim("Point the client at it with PATHWAY_PROVIDER_URL=http://%s PATHWAY_SESSION_TOKEN=%s\n", addr, srv.Token())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("devserver shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
