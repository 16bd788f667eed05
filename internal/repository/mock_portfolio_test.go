package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SarosAnalytics/internal/domain/models"
)

func TestPositionsFixed(t *testing.T) {
	src := NewMockPortfolioSource()
	ctx := context.Background()

	got := src.Positions(ctx, "")
	require.Len(t, got, 3)

	assert.Equal(t, models.Position{
		ID: "1", Pair: "SOL/USDC", Liquidity: 12500.5, FeesEarned: 125.75,
		ImpermanentLoss: -2.3, APR: 15.4, Status: models.StatusActive,
	}, got[0])
	assert.Equal(t, "RAY/SOL", got[1].Pair)
	assert.Equal(t, "ORCA/USDC", got[2].Pair)
	assert.Equal(t, models.StatusInactive, got[2].Status)

	for _, wallet := range []string{"ABC123", "So11111111111111111111111111111111111111112", " "} {
		assert.Equal(t, got, src.Positions(ctx, wallet), "wallet %q", wallet)
	}
}

func TestPositionsFreshPerCall(t *testing.T) {
	src := NewMockPortfolioSource()
	ctx := context.Background()

	first := src.Positions(ctx, "w")
	first[0].Liquidity = 0
	first[1].Status = "gone"

	second := src.Positions(ctx, "w")
	assert.Equal(t, 12500.5, second[0].Liquidity)
	assert.Equal(t, models.StatusActive, second[1].Status)
}

func TestSummaryFixed(t *testing.T) {
	s := NewMockPortfolioSource().Summary(context.Background(), "anything")
	assert.Equal(t, 26400.75, s.TotalLiquidity)
	assert.Equal(t, 227.75, s.TotalFeesEarned)
	assert.Equal(t, 15.4, s.AverageAPR)
	assert.EqualValues(t, 3, s.TotalPositions)
}

func TestAnalyticsSeries(t *testing.T) {
	points := NewMockPortfolioSource().Analytics(context.Background(), "")
	require.Len(t, points, 7)

	assert.Equal(t, "2024-01-01", points[0].Date)
	assert.Equal(t, "2024-01-07", points[6].Date)
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].Date, points[i].Date)
	}
	assert.Equal(t, models.AnalyticsDataPoint{Date: "2024-01-07", Liquidity: 26400, Fees: 227, Volume: 45000}, points[6])
	assert.Equal(t, 28000.0, points[3].Volume)
}

func TestPositionAnalyticsEchoesID(t *testing.T) {
	pa := NewMockPortfolioSource().PositionAnalytics(context.Background(), "42")
	assert.Equal(t, "42", pa.PositionID)
	require.Len(t, pa.BinDistribution, 3)
	assert.Equal(t, 96.0, pa.BinDistribution[1].Price)
}

func TestPoolInfoEchoesID(t *testing.T) {
	p := NewMockPortfolioSource().PoolInfo(context.Background(), "pool-1")
	assert.Equal(t, "pool-1", p.PoolID)
	assert.Equal(t, "SOL", p.TokenA.Symbol)
	assert.Equal(t, "USDC", p.TokenB.Symbol)
	assert.EqualValues(t, 8388608, p.CurrentBin)
}
