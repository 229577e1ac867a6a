package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"getthingsdone/internal/config"
	"getthingsdone/internal/logging"
	"getthingsdone/internal/store"
	"getthingsdone/internal/todo"
)

// app is the wired state shared by the commands.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	kv     store.KeyValue
	list   *todo.List
}

// newApp loads configuration, opens the storage backend and loads the list.
// mutate, when set, adjusts the config after loading (flag overrides).
func newApp(ctx context.Context, configPath string, logOut io.Writer, mutate func(*config.Config)) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if mutate != nil {
		mutate(cfg)
	}

	logger, err := logging.New(logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	kv, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	list := todo.New(kv,
		todo.WithKey(cfg.Storage.Key),
		todo.WithLocale(cfg.Locale()),
		todo.WithSingleEdit(cfg.List.SingleEdit),
		todo.WithLogger(logger),
	)
	if err := list.Load(ctx); err != nil {
		kv.Close()
		return nil, err
	}

	logger.Info("storage ready", "backend", cfg.Storage.Backend, "key", cfg.Storage.Key, "todos", len(list.Tasks()))
	return &app{cfg: cfg, logger: logger, kv: kv, list: list}, nil
}

func (a *app) Close() error {
	return a.kv.Close()
}
