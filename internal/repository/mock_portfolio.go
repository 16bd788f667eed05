package repository

import (
	"context"
	"time"

	"SarosAnalytics/internal/domain/models"
	"SarosAnalytics/internal/domain/repository"
	"SarosAnalytics/pkg/util"
)

// analyticsStart is the first day of the fixed seven-day analytics window.
var analyticsStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// MockPortfolioSource implements PortfolioSource with hardcoded data.
// The wallet argument is accepted everywhere and never consulted.
type MockPortfolioSource struct{}

// NewMockPortfolioSource creates the hardcoded portfolio source.
func NewMockPortfolioSource() repository.PortfolioSource {
	return &MockPortfolioSource{}
}

func (s *MockPortfolioSource) Positions(_ context.Context, _ string) []models.Position {
	return []models.Position{
		{
			ID:              "1",
			Pair:            "SOL/USDC",
			Liquidity:       12500.50,
			FeesEarned:      125.75,
			ImpermanentLoss: -2.3,
			APR:             15.4,
			Status:          models.StatusActive,
		},
		{
			ID:              "2",
			Pair:            "RAY/SOL",
			Liquidity:       8300.25,
			FeesEarned:      67.80,
			ImpermanentLoss: 1.2,
			APR:             18.7,
			Status:          models.StatusActive,
		},
		{
			ID:              "3",
			Pair:            "ORCA/USDC",
			Liquidity:       5600.00,
			FeesEarned:      34.20,
			ImpermanentLoss: -0.8,
			APR:             12.1,
			Status:          models.StatusInactive,
		},
	}
}

// Summary is a fixed literal; it is not derived from Positions.
func (s *MockPortfolioSource) Summary(_ context.Context, _ string) models.PortfolioSummary {
	return models.PortfolioSummary{
		TotalLiquidity:  26400.75,
		TotalFeesEarned: 227.75,
		AverageAPR:      15.4,
		TotalPositions:  3,
	}
}

func (s *MockPortfolioSource) Analytics(_ context.Context, _ string) []models.AnalyticsDataPoint {
	liquidity := []float64{10000, 12000, 15000, 18000, 20000, 22000, 26400}
	fees := []float64{50, 75, 90, 110, 125, 140, 227}
	volume := []float64{25000, 30000, 35000, 28000, 42000, 38000, 45000}

	days := util.DaySeries(analyticsStart, len(liquidity))
	points := make([]models.AnalyticsDataPoint, 0, len(days))
	for i, day := range days {
		points = append(points, models.AnalyticsDataPoint{
			Date:      day,
			Liquidity: liquidity[i],
			Fees:      fees[i],
			Volume:    volume[i],
		})
	}
	return points
}

func (s *MockPortfolioSource) PositionAnalytics(_ context.Context, positionID string) models.PositionAnalytics {
	return models.PositionAnalytics{
		PositionID:      positionID,
		TotalFees:       125.75,
		DailyFees:       5.25,
		ImpermanentLoss: -2.3,
		TotalReturn:     98.45,
		BinDistribution: []models.BinLiquidity{
			{BinID: 1, Liquidity: 1000, Price: 95.5},
			{BinID: 2, Liquidity: 2000, Price: 96.0},
			{BinID: 3, Liquidity: 1500, Price: 96.5},
		},
	}
}

func (s *MockPortfolioSource) PoolInfo(_ context.Context, poolID string) models.PoolInfo {
	return models.PoolInfo{
		PoolID:         poolID,
		TokenA:         models.TokenInfo{Symbol: "SOL", Mint: "So11111111111111111111111111111111111111112"},
		TokenB:         models.TokenInfo{Symbol: "USDC", Mint: "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU"},
		CurrentBin:     8388608,
		BinStep:        100,
		TotalLiquidity: 1250000,
		Volume24h:      450000,
		Fees24h:        2250,
	}
}
