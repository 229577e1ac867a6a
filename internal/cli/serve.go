package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"getthingsdone/internal/config"
	"getthingsdone/internal/handlers"
)

func newServeCmd(configPath *string, assets Assets) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the to-do list web page",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, *configPath, os.Stderr, func(cfg *config.Config) {
				if port != "" {
					cfg.Server.Port = port
				}
			})
			if err != nil {
				return err
			}
			defer a.Close()

			router, err := newRouter(a, assets)
			if err != nil {
				return err
			}

			return serve(ctx, a, router)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides config and PORT)")
	return cmd
}

func newRouter(a *app, assets Assets) (http.Handler, error) {
	tmpl, err := handlers.ParseTemplates(assets.Templates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	h := handlers.New(a.list, tmpl, a.logger)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  a.logger.StandardLog(),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Static files
	staticSub, err := fs.Sub(assets.Static, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static files: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	h.Routes(r)
	return r, nil
}

func serve(ctx context.Context, a *app, handler http.Handler) error {
	server := &http.Server{
		Addr:              ":" + a.cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting server", "url", "http://localhost:"+a.cfg.Server.Port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
