package models

import "time"

// Portfolio represents a tracked crypto portfolio: the token holdings of one
// wallet plus headline metrics. Populated by the valuation collaborators; the
// risk engine only reads ID and TotalValueUSD.
type Portfolio struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	WalletAddress string         `json:"wallet_address"`
	TotalValueUSD float64        `json:"total_value_usd"`
	Tokens        []TokenBalance `json:"tokens"`
	RiskScore     float64        `json:"risk_score"` // 0-100 composite, higher is riskier
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TokenBalance is a single token position within a portfolio.
type TokenBalance struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Balance       float64   `json:"balance"`
	ValueUSD      float64   `json:"value_usd"`
	PriceUSD      float64   `json:"price_usd"`
	Change24h     float64   `json:"change_24h"` // percent
	WalletAddress string    `json:"wallet_address"`
	Timestamp     time.Time `json:"timestamp"`
}

// DashboardSummary is the headline block of the user dashboard. Values are
// summed across portfolios and must be sanitized before serialization.
type DashboardSummary struct {
	TotalPortfolioValue float64 `json:"total_portfolio_value"`
	PortfolioCount      int     `json:"portfolio_count"`
	AvgRiskScore        float64 `json:"avg_risk_score"`
	TotalAlerts         int     `json:"total_alerts"`
}
