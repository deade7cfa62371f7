package coins

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// CoinQuery identifies one coin on one chain.
type CoinQuery struct {
	Address string
	ChainID int64
}

// PageQuery is the cursor-paginated per-coin query shape shared by the
// holders, swaps and comments feeds.
type PageQuery struct {
	Address string
	ChainID int64
	After   string
	Count   int
}

// ProfileQuery addresses a profile by wallet address or @handle.
type ProfileQuery struct {
	Identifier string
	Count      int
	After      string
}

// ProfileCoinsQuery lists coins created by a profile.
type ProfileCoinsQuery struct {
	Identifier        string
	Count             int
	After             string
	ChainIDs          []int64
	PlatformReferrers []string
}

// ExploreQuery is the fixed pagination contract of the explore feeds.
type ExploreQuery struct {
	Count int
	After string
}

// ExploreList selects one of the platform's curated coin feeds.
type ExploreList string

const (
	ExploreTopGainers       ExploreList = "TOP_GAINERS"
	ExploreTopVolume24h     ExploreList = "TOP_VOLUME_24H"
	ExploreMostValuable     ExploreList = "MOST_VALUABLE"
	ExploreNew              ExploreList = "NEW"
	ExploreLastTraded       ExploreList = "LAST_TRADED"
	ExploreLastTradedUnique ExploreList = "LAST_TRADED_UNIQUE"
)

// LegKind marks one side of a trade as native coin or token contract.
type LegKind string

const (
	LegETH   LegKind = "eth"
	LegERC20 LegKind = "erc20"
)

// TradeLeg is one side of a trade. Token is meaningful only when Kind is
// LegERC20.
type TradeLeg struct {
	Kind  LegKind
	Token common.Address
}

// Currency selects the pricing currency a new coin deploys against.
type Currency string

const (
	CurrencyZora Currency = "ZORA"
	CurrencyETH  Currency = "ETH"
)

// CreateCoinRequest deploys a new coin through the platform factory.
type CreateCoinRequest struct {
	Name             string
	Symbol           string
	URI              string
	PayoutRecipient  common.Address
	PlatformReferrer common.Address
	ChainID          int64
	Currency         Currency
	// GasMultiplier is a percentage applied to the gas estimate; 120
	// submits with 20% headroom.
	GasMultiplier int
}

// UpdateURIRequest repoints a coin's metadata URI.
type UpdateURIRequest struct {
	Coin   common.Address
	NewURI string
}

// UpdatePayoutRequest changes where creator earnings accrue.
type UpdatePayoutRequest struct {
	Coin               common.Address
	NewPayoutRecipient common.Address
}

// TradeRequest swaps between the native coin and coins/tokens. AmountIn
// is in the sell leg's smallest denomination.
type TradeRequest struct {
	Sell      TradeLeg
	Buy       TradeLeg
	AmountIn  *big.Int
	Slippage  float64
	Sender    common.Address
	Recipient common.Address
}

// TxReceipt is the normalized result of a submitted transaction.
type TxReceipt struct {
	TxHash      string   `json:"txHash"`
	Status      uint64   `json:"status"`
	BlockNumber *big.Int `json:"blockNumber"`
	GasUsed     uint64   `json:"gasUsed"`
	Coin        string   `json:"coin,omitempty"`
}
