package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		gin.SetMode(gin.ReleaseMode)

		pages, renderer, closeRepo, err := buildPages(ctx)
		if err != nil {
			return err
		}
		defer closeRepo()

		srv, err := server.NewServer(appConfig, pages, renderer, logger)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info().Str("addr", srv.Addr).Str("backend", pages.Content().Backend()).Msg("server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info().Msg("shutting down server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info().Msg("server exiting")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
