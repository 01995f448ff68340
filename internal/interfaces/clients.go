package interfaces

import (
	"context"

	"github.com/aegislabs/aegis/internal/models"
)

// MarketDataClient fetches quotes from an upstream market-data API.
type MarketDataClient interface {
	// GetQuotes returns current quotes for the given symbols.
	GetQuotes(ctx context.Context, symbols []string) ([]*models.MarketData, error)
}

// WalletClient reads token balances for a wallet address from chain data.
type WalletClient interface {
	// GetTokenBalances returns the wallet's current token holdings.
	GetTokenBalances(ctx context.Context, walletAddress string) ([]models.TokenBalance, error)
}
