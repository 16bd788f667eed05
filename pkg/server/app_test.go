package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"SarosAnalytics/pkg/config"
	xhttp "SarosAnalytics/pkg/http"
	applogger "SarosAnalytics/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthOnly struct{}

func (healthOnly) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
}

func newApp(t *testing.T, port int) *App {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	srv := xhttp.NewServer(healthOnly{}, xhttp.WithHost("127.0.0.1"), xhttp.WithPort(port))
	return New(cfg, srv, applogger.Nop())
}

func TestRunContextServesUntilCancelled(t *testing.T) {
	app := newApp(t, 0)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- app.RunContext(ctx) }()

	require.Eventually(t, func() bool {
		addr := app.Addr()
		if addr == "" {
			return false
		}
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not shut down")
	}
}

func TestRunContextBindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	app := newApp(t, ln.Addr().(*net.TCPAddr).Port)
	err = app.RunContext(context.Background())
	require.Error(t, err)
}
