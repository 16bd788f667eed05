package repository

import (
	"context"

	"SarosAnalytics/internal/domain/models"
)

// PortfolioSource supplies portfolio views for a wallet. Every call returns
// freshly built values that the caller owns.
type PortfolioSource interface {
	Positions(ctx context.Context, wallet string) []models.Position
	Summary(ctx context.Context, wallet string) models.PortfolioSummary
	Analytics(ctx context.Context, wallet string) []models.AnalyticsDataPoint
	PositionAnalytics(ctx context.Context, positionID string) models.PositionAnalytics
	PoolInfo(ctx context.Context, poolID string) models.PoolInfo
}
