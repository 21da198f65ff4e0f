package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"devstats/internal/controllers"
	"devstats/internal/providers"
	"devstats/internal/storage/interfaces"
	"devstats/internal/structures"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	WebServer *http.Server
	conf      *structures.Config
	logger    providers.Logger
}

func NewApp(healthController *controllers.HealthController, store interfaces.EnquiryStoreInterface, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) (*App, error) {
	// API chain: metrics -> request log -> CORS -> gzip -> routes
	api := gzhttp.GzipHandler(router.Handler())
	api = newCors(conf.Cors).Handler(api)
	api = providers.RequestLoggerMiddleware(logger, api)
	api = providers.MetricsMiddleware(metrics, api)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", api)

	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	rows, err := store.Count()
	if err != nil {
		logger.Errorf(providers.TypeApp, "Enquiry file %s is unreadable: %s", conf.Enquiries.FilePath, err)
	} else {
		logger.Infof(providers.TypeApp, "Enquiry file %s holds %d enquiries", conf.Enquiries.FilePath, rows)
		metrics.SetEnquiryRows(rows)
	}

	return &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: conf.Upstream.Timeout + 10*time.Second,
			IdleTimeout:  60 * time.Second,
		},
		conf:   conf,
		logger: logger,
	}, nil
}

func newCors(conf structures.CorsConfig) *cors.Cors {
	if len(conf.AllowedOrigins) == 0 {
		return cors.AllowAll()
	}
	return cors.New(cors.Options{
		AllowedOrigins: conf.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", providers.RequestIDHeader},
		ExposedHeaders: []string{providers.RequestIDHeader},
	})
}

// Run serves until SIGINT or SIGTERM and then drains in-flight requests.
func (a *App) Run() error {
	defer a.logger.Close()

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Infof(providers.TypeApp, "Listening HTTP clients on %s", a.WebServer.Addr)
		if err := a.WebServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-stop:
		a.logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.WebServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}
