package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nathanbeddoewebdev/ecoprint/internal/api"
	"nathanbeddoewebdev/ecoprint/internal/cache"
	"nathanbeddoewebdev/ecoprint/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPort     = "8080"
	shutdownTimeout = 5 * time.Second

	defaultChartCacheTTL = 10 * time.Minute
)

// NewCommand returns the "serve" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimator over HTTP",
		Long: "Start an HTTP server exposing the estimator as a JSON API.\n\n" +
			"Routes:\n" +
			"  GET  /api/health\n" +
			"  GET  /api/regions\n" +
			"  GET  /api/estimate?pageSize=...&monthlyVisits=...\n" +
			"  POST /api/estimate          (JSON object with the same fields)\n" +
			"  GET  /api/chart.png         (same query parameters, plus width/height)\n" +
			"  GET  /api/chart.svg\n\n" +
			"Environment variables are read from .env when present:\n" +
			"  PORT       listen port (default 8080, overridden by --addr)\n" +
			"  GIN_MODE   gin mode (default release)",
		Args:         cobra.NoArgs,
		RunE:         runServe,
		SilenceUsage: true,
	}

	cmd.Flags().String("addr", "", "Listen address (default :$PORT)")
	cmd.Flags().String("env-file", ".env", "Environment file to load if it exists")
	cmd.Flags().Float64("rate", api.DefaultOptions().RateLimit, "Requests per second allowed per client IP (0 disables)")
	cmd.Flags().Float64("burst", api.DefaultOptions().Burst, "Burst size per client IP")
	cmd.Flags().Duration("chart-cache-ttl", defaultChartCacheTTL, "How long rendered charts are cached on disk (0 disables)")
	cmd.Flags().String("chart-cache-dir", "", "Chart cache directory (default user cache dir)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := logging.Component(*zerolog.Ctx(cmd.Context()), "api")

	envFile, _ := cmd.Flags().GetString("env-file")
	loadEnv(logger, envFile)
	setupGinMode()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = ":" + envOr("PORT", defaultPort)
	}

	rate, _ := cmd.Flags().GetFloat64("rate")
	burst, _ := cmd.Flags().GetFloat64("burst")
	cacheTTL, _ := cmd.Flags().GetDuration("chart-cache-ttl")
	cacheDir, _ := cmd.Flags().GetString("chart-cache-dir")
	if cacheDir == "" {
		cacheDir = cache.DefaultDir()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(logger, api.Options{
			RateLimit:  rate,
			Burst:      burst,
			ChartCache: cache.New(cacheDir, cacheTTL),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", ln.Addr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, logger, srv, ln)
}

// run serves on ln until ctx is cancelled, then shuts the server down.
func run(ctx context.Context, logger zerolog.Logger, srv *http.Server, ln net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", ln.Addr().String()).Msg("server started")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// loadEnv reads path into the environment without overriding variables that
// are already set. A missing file is normal.
func loadEnv(logger zerolog.Logger, path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("no env file, using environment variables")
			return
		}
		logger.Warn().Err(err).Str("path", path).Msg("failed to load env file")
	}
}

func setupGinMode() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
