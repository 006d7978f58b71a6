package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Redwards2/MeijerShoppingList/internal/api"
	"github.com/Redwards2/MeijerShoppingList/internal/shopping"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve shopping sessions over HTTP and WebSocket",
		Long: `Serve starts the HTTP API. Each POST /api/sessions creates an independent
session; all sessions share the reference catalog in the data directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.settings.ServerAddr
			}
			if !a.flags.verbose {
				a.logger = newLogger(cmd.ErrOrStderr(), slog.LevelInfo)
			}

			pantry, err := a.attachPantry()
			if err != nil {
				return err
			}
			defer pantry.Detach()

			// Collaborators are shared; each session gets its own engine.
			opts, err := a.sessionOptions(pantry, a.settings.PersistSnapshots)
			if err != nil {
				return err
			}
			registry := shopping.NewRegistry(func() *shopping.Session {
				return shopping.NewSession(opts)
			})

			srv := &http.Server{
				Addr:              addr,
				Handler:           api.RegisterRoutes(registry, a.logger),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("shoplist listening", "addr", addr, "data_dir", a.settings.DataDir)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return exitError(exitSysError, fmt.Errorf("server error: %w", err))
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			a.logger.Info("shutting down")
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return exitError(exitSysError, fmt.Errorf("shutdown: %w", err))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr from config)")
	return cmd
}
