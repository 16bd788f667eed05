package api

import (
	"net/http"

	models "SarosAnalytics/internal/domain/models"
	domrepo "SarosAnalytics/internal/domain/repository"
	xhttp "SarosAnalytics/pkg/http"
	"SarosAnalytics/pkg/http/middleware"
	xlogger "SarosAnalytics/pkg/logger"
	"SarosAnalytics/pkg/solana"

	"github.com/labstack/echo/v4"
)

// PortfolioEchoHandler serves the dashboard's read-only portfolio endpoints.
type PortfolioEchoHandler struct {
	logger *xlogger.Logger
	source domrepo.PortfolioSource
}

func NewPortfolioEchoHandler(logger *xlogger.Logger, source domrepo.PortfolioSource) *PortfolioEchoHandler {
	return &PortfolioEchoHandler{logger: logger, source: source}
}

func (h *PortfolioEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("/api")
	g.GET("/positions", h.Positions)
	g.GET("/positions/:id/analytics", h.PositionAnalytics)
	g.GET("/portfolio-summary", h.PortfolioSummary)
	g.GET("/analytics", h.Analytics)
	g.GET("/pools/:id", h.PoolInfo)
}

func (h *PortfolioEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, models.NewHealthStatus())
}

func (h *PortfolioEchoHandler) Positions(c echo.Context) error {
	wallet := h.wallet(c, "fetching positions")
	return c.JSON(http.StatusOK, h.source.Positions(c.Request().Context(), wallet))
}

func (h *PortfolioEchoHandler) PortfolioSummary(c echo.Context) error {
	wallet := h.wallet(c, "fetching portfolio summary")
	return c.JSON(http.StatusOK, h.source.Summary(c.Request().Context(), wallet))
}

func (h *PortfolioEchoHandler) Analytics(c echo.Context) error {
	wallet := h.wallet(c, "fetching analytics data")
	return c.JSON(http.StatusOK, h.source.Analytics(c.Request().Context(), wallet))
}

func (h *PortfolioEchoHandler) PositionAnalytics(c echo.Context) error {
	id := c.Param("id")
	h.logger.Info("fetching position analytics",
		xlogger.String("position_id", id),
		xlogger.String("request_id", middleware.GetRequestID(c)),
	)
	return c.JSON(http.StatusOK, h.source.PositionAnalytics(c.Request().Context(), id))
}

func (h *PortfolioEchoHandler) PoolInfo(c echo.Context) error {
	id := c.Param("id")
	h.logger.Info("fetching pool info",
		xlogger.String("pool_id", id),
		xlogger.String("request_id", middleware.GetRequestID(c)),
	)
	return c.JSON(http.StatusOK, h.source.PoolInfo(c.Request().Context(), id))
}

// wallet reads the optional wallet query and logs it. It never fails the
// request: a bind problem is logged and the wallet treated as absent.
func (h *PortfolioEchoHandler) wallet(c echo.Context, msg string) string {
	q := &models.WalletQuery{}
	if err := xhttp.BindQuery(c, q); err != nil {
		h.logger.Debug("wallet query ignored", xlogger.Error(err))
		q.Wallet = ""
	}
	present := xhttp.HasQuery(c, "wallet")

	h.logger.Info(msg,
		xlogger.String("wallet", q.Wallet),
		xlogger.Bool("wallet_present", present),
		xlogger.Bool("wallet_pubkey", solana.IsPublicKey(q.Wallet)),
		xlogger.String("request_id", middleware.GetRequestID(c)),
	)
	return q.Wallet
}
