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
	"syscall"
	"time"

	"bookshelf/internal/config"
	"bookshelf/internal/controller"
	apphttp "bookshelf/internal/http"
	"bookshelf/internal/httpx"
	"bookshelf/internal/loop"
	"bookshelf/internal/presenter"
	"bookshelf/internal/store"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bookshelf page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.cfg
			if addr != "" {
				cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
			}
			err = serve(ctx, cfg, rootOpts.logger, ln)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides BOOKSHELF_ADDR")
	return cmd
}

// serve runs the event loop and the HTTP server on ln until ctx is done or
// either of them fails.
func serve(ctx context.Context, cfg config.Config, logger *slog.Logger, ln net.Listener) error {
	be, err := openBackend(ctx, cfg)
	if err != nil {
		_ = ln.Close()
		return err
	}
	defer be.Close()

	l := loop.New()
	page, err := presenter.NewPage(l, cfg.NotifyDelay)
	if err != nil {
		_ = ln.Close()
		return err
	}
	ctrl := controller.New(be.shelf, page)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.Run(gctx) })

	var loadErr error
	if err := l.Do(gctx, func() { loadErr = ctrl.Load(gctx) }); err != nil {
		_ = ln.Close()
		return errors.Join(err, g.Wait())
	}
	if loadErr != nil {
		// The page starts empty; the store may recover on the next request.
		logger.Error("initial load failed", "err", loadErr)
	}

	srv := &http.Server{
		Handler:      newHandler(gctx, cfg, logger, l, ctrl, page, be.shelf),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g.Go(func() error {
		logger.Info("starting server", "addr", ln.Addr().String(), "store", cfg.Store)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newHandler(ctx context.Context, cfg config.Config, logger *slog.Logger, l *loop.Loop, ctrl *controller.Controller, page *presenter.Presenter, shelf *store.Shelf) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	apphttp.NewShelfHandler(l, ctrl, page, shelf, logger).Routes(mux)

	limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	return httpx.Chain(mux,
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(logger),
		httpx.AccessLogMiddleware(logger),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		limiter.Middleware,
	)
}
