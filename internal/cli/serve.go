package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"cardtext/handler"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the text generation API as a standalone HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			svc, err := cfg.newService()
			if err != nil {
				return err
			}
			h, err := handler.NewHandler(svc)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			addr := net.JoinHostPort("", strconv.Itoa(cfg.Port))
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("cli: listen on %s: %w", addr, err)
			}
			return serve(ctx, ln, h)
		},
	}
	cmd.Flags().Int(keyPort, defaultPort, "listen port (PORT is also honoured)")
	_ = v.BindPFlag(keyPort, cmd.Flags().Lookup(keyPort))
	return cmd
}

// serve runs the HTTP server on ln until ctx is canceled, then drains
// in-flight requests.
func serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("text generation API listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("cli: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("text generation API shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
