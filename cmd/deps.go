package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathway/internal/config"
	"github.com/abhisek/pathway/internal/logger"
	"github.com/abhisek/pathway/internal/provider"
	"github.com/abhisek/pathway/internal/session"
	"github.com/abhisek/pathway/internal/store"
)

// deps holds everything a command needs to talk to the provider.
type deps struct {
	cfg   config.Config
	log   *slog.Logger
	store *store.Store
	sess  *session.Session

	closers []io.Closer
}

func (d *deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i].Close())
	}
	return errors.Join(errs...)
}

// loadConfig reads config.yaml, then env vars, then persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	if v, _ := cmd.Flags().GetString("provider-url"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// newLogger writes to the configured log file. The terminal belongs to
// the TUI and the command output.
func newLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	file := cfg.Log.File
	if file == "" {
		f, err := logger.DefaultFile()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
		file = f
	}
	return logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       file,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
}

// loadDeps opens the journal and builds the session.
func loadDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	d := &deps{cfg: cfg}
	log, closer, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	d.log = log
	d.closers = append(d.closers, closer)

	dbPath, err := resolveDBPath(cmd, cfg.Store.Path)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	d.store = st
	d.closers = append(d.closers, st)

	p, err := provider.New(cfg.Provider, st.EventRepo(), log)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("roadmap provider: %w", err)
	}
	d.sess = session.New(p, log, session.Options{RollbackOnFailure: cfg.Progress.RollbackOnFailure})
	return d, nil
}
