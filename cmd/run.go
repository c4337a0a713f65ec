package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/pathway/internal/app"
	"github.com/abhisek/pathway/internal/metrics"
	roadmapscreen "github.com/abhisek/pathway/internal/screens/roadmap"
)

// runApp builds dependencies and launches the TUI. When a metrics
// address is configured a Prometheus endpoint runs alongside it.
func runApp(cmd *cobra.Command) error {
	viewFlag, _ := cmd.Flags().GetString("view")
	mode, err := parseViewMode(viewFlag)
	if err != nil {
		return err
	}
	noSplash, _ := cmd.Flags().GetBool("no-splash")

	d, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	opts := app.Options{
		Session:     d.sess,
		Log:         d.log,
		DefaultView: mode,
		SkipWelcome: noSplash,
	}

	if d.cfg.Metrics.Addr == "" {
		return app.Run(opts)
	}

	srv := &http.Server{
		Addr:              d.cfg.Metrics.Addr,
		Handler:           metrics.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		d.log.Info("metrics listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		runErr := app.Run(opts)
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		return errors.Join(runErr, srv.Shutdown(shutdownCtx))
	})
	return g.Wait()
}

func parseViewMode(s string) (roadmapscreen.ViewMode, error) {
	switch s {
	case "", "list":
		return roadmapscreen.ViewList, nil
	case "tree":
		return roadmapscreen.ViewTree, nil
	default:
		return roadmapscreen.ViewList, fmt.Errorf("invalid view %q: must be list or tree", s)
	}
}
