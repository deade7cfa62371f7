package tools

import (
	"context"

	"github.com/zoralabs/coins-mcp/internal/coins"
)

// BuildRegistry populates the full tool surface: diagnostics, the coin
// and profile queries, the six explore feeds, and the four write tools.
// The registry is complete after this call; nothing registers later.
func BuildRegistry(env *Env) (*Registry, error) {
	chainDefault := float64(env.ChainID)

	specs := []*Spec{
		{
			Name:        "health",
			Title:       "Coins server health",
			Description: "Returns server and environment diagnostics (API key present, wallet, RPC, chain).",
			Handler:     healthHandler,
		},
		{
			Name:        "get_coin",
			Title:       "Get coin details",
			Description: "Fetch metadata, market data & creator info for a coin.",
			Fields: []Field{
				{Name: "address", Type: FieldString, Required: true, MinLen: 1, Description: "Coin contract address"},
				{Name: "chainId", Type: FieldInteger, Default: chainDefault, Description: "Chain id (defaults to the configured chain)"},
			},
			Handler: getCoinHandler,
		},
		{
			Name:        "get_coins",
			Title:       "Get multiple coins",
			Description: "Batch fetch coins by address and chainId.",
			Fields: []Field{
				{Name: "coins", Type: FieldObjectList, Required: true, MinLen: 1, Description: "Coins to fetch", Elem: []Field{
					{Name: "collectionAddress", Type: FieldString, Required: true, MinLen: 1, Description: "Coin contract address"},
					{Name: "chainId", Type: FieldInteger, Default: chainDefault, Description: "Chain id"},
				}},
			},
			Handler: getCoinsHandler,
		},
		{
			Name:        "get_coin_holders",
			Title:       "Get coin holders",
			Description: "List holders of a coin with balances and profile data.",
			Fields:      coinPageFields(chainDefault, "count"),
			Handler:     getCoinHoldersHandler,
		},
		{
			Name:        "get_coin_swaps",
			Title:       "Get coin swaps",
			Description: "Fetch recent buy/sell swap activity for a coin.",
			Fields:      coinPageFields(chainDefault, "first"),
			Handler:     getCoinSwapsHandler,
		},
		{
			Name:        "get_coin_comments",
			Title:       "Get coin comments",
			Description: "Fetch comments associated with a coin (paginated).",
			Fields:      coinPageFields(chainDefault, "count"),
			Handler:     getCoinCommentsHandler,
		},
		{
			Name:        "get_profile",
			Title:       "Get profile",
			Description: "Fetch profile for a wallet or @handle.",
			Fields: []Field{
				{Name: "identifier", Type: FieldString, Required: true, MinLen: 1, Description: "Wallet address or @handle"},
			},
			Handler: getProfileHandler,
		},
		{
			Name:        "get_profile_coins",
			Title:       "Get profile-created coins",
			Description: "List coins created by a profile.",
			Fields: []Field{
				{Name: "identifier", Type: FieldString, Required: true, MinLen: 1, Description: "Wallet address or @handle"},
				{Name: "count", Type: FieldInteger, Min: f64(1), Max: f64(100), Description: "Items per page (1-100)"},
				{Name: "after", Type: FieldString, Description: "Pagination cursor"},
				{Name: "chainIds", Type: FieldIntegerList, Description: "Restrict to these chain ids"},
				{Name: "platformReferrerAddress", Type: FieldStringList, Description: "Restrict to these platform referrers"},
			},
			Handler: getProfileCoinsHandler,
		},
		{
			Name:        "get_profile_balances",
			Title:       "Get profile balances",
			Description: "List coin balances for a wallet or handle.",
			Fields: []Field{
				{Name: "identifier", Type: FieldString, Required: true, MinLen: 1, Description: "Wallet address or @handle"},
				{Name: "count", Type: FieldInteger, Min: f64(1), Max: f64(100), Description: "Items per page (1-100)"},
				{Name: "after", Type: FieldString, Description: "Pagination cursor"},
			},
			Handler: getProfileBalancesHandler,
		},

		exploreSpec("explore_top_gainers", "Top gainers (24h)",
			"Coins with highest market cap delta over last 24h.", coins.ExploreTopGainers),
		exploreSpec("explore_top_volume_24h", "Top 24h volume",
			"Coins with highest trading volume in last 24 hours.", coins.ExploreTopVolume24h),
		exploreSpec("explore_most_valuable", "Most valuable",
			"Coins with highest market capitalization.", coins.ExploreMostValuable),
		exploreSpec("explore_new", "New coins",
			"Most recently created coins.", coins.ExploreNew),
		exploreSpec("explore_last_traded", "Last traded",
			"Coins most recently traded.", coins.ExploreLastTraded),
		exploreSpec("explore_last_traded_unique", "Last traded (unique traders)",
			"Coins most recently traded by unique traders.", coins.ExploreLastTradedUnique),

		{
			Name:        "create_coin",
			Title:       "Create a new coin",
			Description: "Deploy a new coin. Requires PRIVATE_KEY; only Base mainnet is supported currently.",
			Write:       true,
			Fields: []Field{
				{Name: "name", Type: FieldString, Required: true, MinLen: 1, Description: "Coin name"},
				{Name: "symbol", Type: FieldString, Required: true, MinLen: 1, Description: "Ticker symbol"},
				{Name: "uri", Type: FieldString, Required: true, MinLen: 1, Description: "Metadata URI (validated on chain)"},
				{Name: "payoutRecipient", Type: FieldString, Required: true, MinLen: 1, Description: "Address receiving creator earnings"},
				{Name: "platformReferrer", Type: FieldString, Description: "Optional platform referrer address"},
				{Name: "chainId", Type: FieldInteger, Default: chainDefault, Description: "Chain id"},
				{Name: "currency", Type: FieldString, Enum: []string{string(coins.CurrencyZora), string(coins.CurrencyETH)}, Default: string(coins.CurrencyZora), Description: "Deploy currency"},
				{Name: "gasMultiplier", Type: FieldInteger, Min: f64(50), Max: f64(500), Default: float64(120), Description: "Percent applied to the gas estimate"},
			},
			Handler: createCoinHandler,
		},
		{
			Name:        "update_coin_uri",
			Title:       "Update coin metadata URI",
			Description: "Update the token metadata URI for an existing coin. Requires owner wallet.",
			Write:       true,
			Fields: []Field{
				{Name: "coin", Type: FieldString, Required: true, MinLen: 1, Description: "Coin contract address"},
				{Name: "newURI", Type: FieldString, Required: true, MinLen: 1, Description: "New metadata URI"},
			},
			Handler: updateCoinURIHandler,
		},
		{
			Name:        "update_payout_recipient",
			Title:       "Update payout recipient",
			Description: "Change the payout recipient address (creator earnings). Requires owner wallet.",
			Write:       true,
			Fields: []Field{
				{Name: "coin", Type: FieldString, Required: true, MinLen: 1, Description: "Coin contract address"},
				{Name: "newPayoutRecipient", Type: FieldString, Required: true, MinLen: 1, Description: "New payout recipient address"},
			},
			Handler: updatePayoutRecipientHandler,
		},
		{
			Name:        "trade_coin",
			Title:       "Trade coin",
			Description: "Swap ETH or ERC20 for a coin (or back). Requires PRIVATE_KEY (EOA).",
			Write:       true,
			Fields: []Field{
				{Name: "sellType", Type: FieldString, Required: true, Enum: []string{string(coins.LegETH), string(coins.LegERC20)}, Description: "Sell side: native coin or token"},
				{Name: "sellAddress", Type: FieldString, Description: "Token address (required when sellType is erc20)"},
				{Name: "sellDecimals", Type: FieldInteger, Min: f64(0), Max: f64(36), Description: "Sell token decimals (default 18)"},
				{Name: "buyType", Type: FieldString, Required: true, Enum: []string{string(coins.LegETH), string(coins.LegERC20)}, Description: "Buy side: native coin or token"},
				{Name: "buyAddress", Type: FieldString, Description: "Token address (required when buyType is erc20)"},
				{Name: "amount", Type: FieldString, Required: true, MinLen: 1, Description: "Human-readable sell amount, e.g. \"0.001\""},
				{Name: "slippage", Type: FieldNumber, Min: f64(0), Max: f64(0.99), Default: 0.05, Description: "Max acceptable slippage (0-0.99)"},
				{Name: "recipient", Type: FieldString, Description: "Receiver of the bought side (defaults to the wallet)"},
				{Name: "sender", Type: FieldString, Description: "Sender (defaults to the wallet)"},
			},
			Handler: tradeCoinHandler,
		},
	}

	registry := NewRegistry()
	for _, s := range specs {
		if err := registry.Register(s); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// coinPageFields is the shared contract of the per-coin paginated feeds.
// countField is "count" except for swaps, where the platform API calls it
// "first".
func coinPageFields(chainDefault float64, countField string) []Field {
	return []Field{
		{Name: "address", Type: FieldString, Required: true, MinLen: 1, Description: "Coin contract address"},
		{Name: "chainId", Type: FieldInteger, Default: chainDefault, Description: "Chain id"},
		{Name: "after", Type: FieldString, Description: "Pagination cursor"},
		{Name: countField, Type: FieldInteger, Min: f64(1), Max: f64(100), Description: "Items per page (1-100)"},
	}
}

// exploreSpec instantiates one curated feed tool; all six share the same
// {count, after} pagination contract.
func exploreSpec(name, title, description string, list coins.ExploreList) *Spec {
	return &Spec{
		Name:        name,
		Title:       title,
		Description: description,
		Fields: []Field{
			{Name: "count", Type: FieldInteger, Min: f64(1), Max: f64(100), Description: "Items per page (1-100)"},
			{Name: "after", Type: FieldString, Description: "Pagination cursor"},
		},
		Handler: func(ctx context.Context, env *Env, args Args) (any, error) {
			return env.Query.Explore(ctx, list, coins.ExploreQuery{
				Count: args.Int("count"),
				After: args.String("after"),
			})
		},
	}
}
