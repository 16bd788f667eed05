package di

import (
	"fmt"

	"SarosAnalytics/internal/domain/repository"
	"SarosAnalytics/internal/handler/api"
	internalrepo "SarosAnalytics/internal/repository"
	"SarosAnalytics/pkg/config"
	xhttp "SarosAnalytics/pkg/http"
	"SarosAnalytics/pkg/http/middleware"
	applogger "SarosAnalytics/pkg/logger"
	"SarosAnalytics/pkg/metrics"
	"SarosAnalytics/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus recorder, or nil when metrics are disabled.
func ProvideMetrics(cfg *config.Config) *metrics.Recorder {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.New()
}

// ProvidePortfolioSource creates the hardcoded portfolio source.
func ProvidePortfolioSource() repository.PortfolioSource {
	return internalrepo.NewMockPortfolioSource()
}

// ProvideHTTPHandler creates the portfolio route handler.
func ProvideHTTPHandler(l *applogger.Logger, src repository.PortfolioSource) xhttp.Handler {
	return api.NewPortfolioEchoHandler(l, src)
}

// ProvideHTTPServer creates the Echo server configured from YAML.
func ProvideHTTPServer(cfg *config.Config, h xhttp.Handler, l *applogger.Logger, rec *metrics.Recorder) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(&middleware.CORSConfig{
			AllowOrigins: cfg.CORS.AllowOrigins,
			AllowMethods: cfg.CORS.AllowMethods,
			AllowHeaders: cfg.CORS.AllowHeaders,
		}),
		xhttp.WithLogger(l),
	}
	if rec != nil {
		opts = append(opts, xhttp.WithMetrics(rec, cfg.Metrics.Path))
	}
	return xhttp.NewServer(h, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, srv *xhttp.Server, l *applogger.Logger) *server.App {
	return server.New(cfg, srv, l)
}
