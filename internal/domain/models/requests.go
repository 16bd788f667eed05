package models

// WalletQuery is the optional query accepted by the portfolio endpoints.
// The wallet is logged but does not select data.
type WalletQuery struct {
	Wallet string `query:"wallet" json:"wallet"`
}
