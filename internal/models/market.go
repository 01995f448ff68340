package models

import "time"

// MarketData is a point-in-time quote for a traded symbol, as returned by the
// market-data collaborator.
type MarketData struct {
	Symbol     string    `json:"symbol"`
	Price      float64   `json:"price"`
	Volume24h  float64   `json:"volume_24h"`
	MarketCap  float64   `json:"market_cap"`
	Change24h  float64   `json:"change_24h"` // percent
	Volatility float64   `json:"volatility"`
	Timestamp  time.Time `json:"timestamp"`
}

// SentimentData is an aggregated sentiment reading for a symbol.
type SentimentData struct {
	Symbol         string    `json:"symbol"`
	Source         string    `json:"source"`          // news, reddit, aggregated
	SentimentScore float64   `json:"sentiment_score"` // -1 to 1
	Confidence     float64   `json:"confidence"`      // 0 to 1
	Volume         int       `json:"volume"`          // sample count behind the score
	Timestamp      time.Time `json:"timestamp"`
}

// YieldOpportunity is a yield-farming pool surfaced by the discovery collaborator.
type YieldOpportunity struct {
	Protocol    string    `json:"protocol"`
	PoolAddress string    `json:"pool_address"`
	TokenPair   string    `json:"token_pair"`
	APY         float64   `json:"apy"`
	TVL         float64   `json:"tvl"`
	RiskScore   float64   `json:"risk_score"`
	Fees24h     float64   `json:"fees_24h"`
	Timestamp   time.Time `json:"timestamp"`
}

// AlertSeverity categorizes alert urgency.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is a portfolio monitoring notification.
type Alert struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	AlertType   string        `json:"alert_type"`
	Message     string        `json:"message"`
	Severity    AlertSeverity `json:"severity"`
	TriggeredAt time.Time     `json:"triggered_at"`
	Resolved    bool          `json:"resolved"`
}
