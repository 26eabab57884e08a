package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/signmaster/internal/app"
	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/config"
	"github.com/abhisek/signmaster/internal/enrich"
	"github.com/abhisek/signmaster/internal/logging"
	"github.com/abhisek/signmaster/internal/progress"
	"github.com/abhisek/signmaster/internal/screens"
	"github.com/abhisek/signmaster/internal/session"
	"github.com/abhisek/signmaster/internal/store"
)

// env is what every command needs: configuration, storage and catalogs.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *store.Store
	registry *catalog.Registry
	progress *progress.Store
	closers  []io.Closer
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i].Close()
	}
}

// loadConfig reads configuration and applies the persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{ConfigFile: path})
	if err != nil {
		return nil, err
	}
	if d, _ := cmd.Flags().GetString("domain"); d != "" {
		cfg.DefaultDomain = strings.ToLower(d)
	}
	return cfg, nil
}

// setup loads config, points logs at logOut (or the log file when nil),
// opens the store and loads the catalogs.
func setup(cmd *cobra.Command, logOut io.Writer) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg}

	if logOut == nil {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		e.closers = append(e.closers, f)
		logOut = f
	}
	e.logger = logging.Setup(cfg.Log, logOut)

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.store = st
	e.closers = append(e.closers, st)

	reg, err := catalog.Load()
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("load catalogs: %w", err)
	}
	if cfg.CatalogDir != "" {
		if err := reg.LoadDir(cfg.CatalogDir); err != nil {
			e.Close()
			return nil, fmt.Errorf("load catalogs from %s: %w", cfg.CatalogDir, err)
		}
	}
	e.registry = reg
	e.progress = progress.NewStore(st.KV())

	e.logger.Debug("signmaster ready", "db", dbPath, "domains", reg.Domains())
	return e, nil
}

// enrichClient returns the lookup client, or nil when lookups are disabled.
func (e *env) enrichClient() (enrich.Source, error) {
	if !e.cfg.Enrich.Enabled {
		return nil, nil
	}
	ec := e.cfg.Enrich.ClientConfig()
	ec.UserAgent = fmt.Sprintf("signmaster/%s (https://github.com/abhisek/signmaster)", version)
	client, err := enrich.NewClient(ec, e.logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd, nil)
	if err != nil {
		return err
	}
	defer e.Close()

	src, err := e.enrichClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Online lookup not configured:", err)
		fmt.Fprintln(os.Stderr, "Sign lookups will be unavailable.")
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	svc := &screens.Services{
		Registry:      e.registry,
		Progress:      e.progress,
		Attempts:      e.store.AttemptRepo(),
		Engine:        session.NewEngine(e.progress, rng),
		Enrich:        src,
		DefaultDomain: e.cfg.DefaultDomain,
		QuizSize:      e.cfg.Quiz.Size,
		Rand:          rng,
	}

	return app.Run(svc)
}
