package models

// Position status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Position is a single liquidity-provision record. Money is USD, rates are percent.
type Position struct {
	ID              string  `json:"id"`
	Pair            string  `json:"pair"`
	Liquidity       float64 `json:"liquidity"`
	FeesEarned      float64 `json:"fees_earned"`
	ImpermanentLoss float64 `json:"impermanent_loss"` // signed
	APR             float64 `json:"apr"`
	Status          string  `json:"status"`
}

// PortfolioSummary aggregates a wallet's positions.
type PortfolioSummary struct {
	TotalLiquidity  float64 `json:"total_liquidity"`
	TotalFeesEarned float64 `json:"total_fees_earned"`
	AverageAPR      float64 `json:"average_apr"`
	TotalPositions  uint32  `json:"total_positions"`
}

// AnalyticsDataPoint is one day of the analytics time series.
type AnalyticsDataPoint struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Liquidity float64 `json:"liquidity"`
	Fees      float64 `json:"fees"`
	Volume    float64 `json:"volume"`
}

// BinLiquidity is the liquidity parked in a single DLMM price bin.
type BinLiquidity struct {
	BinID     int     `json:"bin_id"`
	Liquidity float64 `json:"liquidity"`
	Price     float64 `json:"price"`
}

// PositionAnalytics is the per-position earnings breakdown.
type PositionAnalytics struct {
	PositionID      string         `json:"position_id"`
	TotalFees       float64        `json:"total_fees"`
	DailyFees       float64        `json:"daily_fees"`
	ImpermanentLoss float64        `json:"impermanent_loss"`
	TotalReturn     float64        `json:"total_return"`
	BinDistribution []BinLiquidity `json:"bin_distribution"`
}

type TokenInfo struct {
	Symbol string `json:"symbol"`
	Mint   string `json:"mint"`
}

// PoolInfo describes a DLMM pool.
type PoolInfo struct {
	PoolID         string    `json:"pool_id"`
	TokenA         TokenInfo `json:"token_a"`
	TokenB         TokenInfo `json:"token_b"`
	CurrentBin     int64     `json:"current_bin"`
	BinStep        int       `json:"bin_step"`
	TotalLiquidity float64   `json:"total_liquidity"`
	Volume24h      float64   `json:"volume_24h"`
	Fees24h        float64   `json:"fees_24h"`
}
