// Package coins describes the coin platform as seen by this server: the
// remote query API and the on-chain transaction surface, reduced to
// exactly the operations the tools call.
package coins

import (
	"context"
	"encoding/json"
)

// Querier is the read side of the platform. Responses are returned as the
// platform's raw JSON payloads; the server renders them without
// interpreting their shape.
type Querier interface {
	GetCoin(ctx context.Context, q CoinQuery) (json.RawMessage, error)
	GetCoins(ctx context.Context, qs []CoinQuery) (json.RawMessage, error)
	GetCoinHolders(ctx context.Context, q PageQuery) (json.RawMessage, error)
	GetCoinSwaps(ctx context.Context, q PageQuery) (json.RawMessage, error)
	GetCoinComments(ctx context.Context, q PageQuery) (json.RawMessage, error)
	GetProfile(ctx context.Context, identifier string) (json.RawMessage, error)
	GetProfileCoins(ctx context.Context, q ProfileCoinsQuery) (json.RawMessage, error)
	GetProfileBalances(ctx context.Context, q ProfileQuery) (json.RawMessage, error)
	Explore(ctx context.Context, list ExploreList, q ExploreQuery) (json.RawMessage, error)
}

// Writer is the state-mutating side of the platform. Every call submits a
// transaction signed by the configured identity and blocks until mined.
type Writer interface {
	CreateCoin(ctx context.Context, req CreateCoinRequest) (*TxReceipt, error)
	UpdateCoinURI(ctx context.Context, req UpdateURIRequest) (*TxReceipt, error)
	UpdatePayoutRecipient(ctx context.Context, req UpdatePayoutRequest) (*TxReceipt, error)
	Trade(ctx context.Context, req TradeRequest) (*TxReceipt, error)
}

// Platform is the full remote surface this server mediates.
type Platform interface {
	Querier
	Writer
}
