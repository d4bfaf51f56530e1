package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dbmrq/cookbook/internal/api"
	"github.com/dbmrq/cookbook/internal/config"
	cberrors "github.com/dbmrq/cookbook/internal/errors"
	"github.com/dbmrq/cookbook/internal/logging"
	"github.com/dbmrq/cookbook/internal/saved"
	"github.com/dbmrq/cookbook/internal/storage"
)

// env holds everything a command needs to talk to the recipe API and the
// saved-recipes store.
type env struct {
	cfg     *config.Config
	logger  *logging.Logger
	backend storage.Backend
	store   *saved.Store
	client  *api.Client

	// watchPath is the file backing the store, or "" when the backend has
	// no single file to watch.
	watchPath string

	closeLog bool
}

// loadConfig reads the config named by the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, configError(err)
	}
	return cfg, nil
}

// configError converts a loader failure into an error that prints with a
// suggestion. Only the first validation problem is reported.
func configError(err error) error {
	var invalid config.ValidationErrors
	if errors.As(err, &invalid) && len(invalid) > 0 {
		first := invalid[0]
		return cberrors.ConfigValidationError(first.Field, first.Message, first.Options)
	}

	var le *config.LoadError
	if !errors.As(err, &le) {
		return err
	}
	if errors.Is(le.Err, os.ErrNotExist) {
		return cberrors.ConfigMissing(le.Path)
	}
	return cberrors.ConfigParseError(le.Path, le.Err)
}

// openEnv loads configuration, starts logging and opens storage. The store is
// loaded before openEnv returns. Callers must call Close.
func openEnv(ctx context.Context, cmd *cobra.Command) (context.Context, *env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return ctx, nil, err
	}

	e := &env{cfg: cfg}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logConfig := cfg.LoggerConfig()
	if verbose {
		logConfig.Level = logging.LevelDebug
	}
	// Never log to the console: the TUI owns the terminal.
	logConfig.Console = false
	if err := logging.InitGlobal(logConfig); err != nil {
		// Non-fatal: continue without file logging.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	} else {
		e.closeLog = true
	}

	ctx = logging.WithSessionID(ctx, logging.NewSessionID())
	e.logger = logging.FromContext(ctx)
	e.logger.Info("cookbook starting", "version", Version, "command", cmd.Name(), "verbose", verbose)

	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		cfg.Storage.Driver = storage.DriverMemory
	}
	backend, err := storage.Open(cfg.StorageOptions())
	if err != nil {
		e.Close()
		return ctx, nil, err
	}
	e.backend = backend
	if fb, ok := backend.(*storage.FileBackend); ok {
		e.watchPath = fb.Path(cfg.Storage.Key)
	}

	e.store = saved.New(backend, saved.WithKey(cfg.Storage.Key), saved.WithLogger(e.logger))
	e.store.Load(ctx)

	e.client = api.NewClient()
	e.client.BaseURL = cfg.API.BaseURL
	e.client.TTL = cfg.API.CacheTTL
	e.client.HTTPClient = &http.Client{Timeout: cfg.API.Timeout}
	e.client.UserAgent = "cookbook/" + Version
	e.client.SetLogger(e.logger)

	return ctx, e, nil
}

// Close releases storage and flushes the log file.
func (e *env) Close() {
	if e.backend != nil {
		if err := e.backend.Close(); err != nil {
			e.logger.Warn("failed to close storage", "error", err)
		}
	}
	if e.closeLog {
		_ = logging.CloseGlobal()
	}
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// isTerminal returns true if w is a terminal.
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
