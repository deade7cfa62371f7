package tools

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/zoralabs/coins-mcp/internal/coins"
)

func healthHandler(ctx context.Context, env *Env, args Args) (any, error) {
	var wallet any
	if addr := env.WalletAddress(); addr != "" {
		wallet = addr
	}
	return map[string]any{
		"server": map[string]any{
			"name":    env.ServerName,
			"version": env.ServerVersion,
		},
		"apiKeyConfigured": env.APIKeyConfigured,
		"rpcUrl":           env.RPCURL,
		"chainId":          env.ChainID,
		"walletAddress":    wallet,
	}, nil
}

func getCoinHandler(ctx context.Context, env *Env, args Args) (any, error) {
	return env.Query.GetCoin(ctx, coins.CoinQuery{
		Address: args.String("address"),
		ChainID: args.Int64("chainId"),
	})
}

func getCoinsHandler(ctx context.Context, env *Env, args Args) (any, error) {
	entries := args.ObjectList("coins")
	queries := make([]coins.CoinQuery, 0, len(entries))
	for _, entry := range entries {
		queries = append(queries, coins.CoinQuery{
			Address: entry.String("collectionAddress"),
			ChainID: entry.Int64("chainId"),
		})
	}
	return env.Query.GetCoins(ctx, queries)
}

func pageQuery(args Args, countField string) coins.PageQuery {
	return coins.PageQuery{
		Address: args.String("address"),
		ChainID: args.Int64("chainId"),
		After:   args.String("after"),
		Count:   args.Int(countField),
	}
}

func getCoinHoldersHandler(ctx context.Context, env *Env, args Args) (any, error) {
	return env.Query.GetCoinHolders(ctx, pageQuery(args, "count"))
}

func getCoinSwapsHandler(ctx context.Context, env *Env, args Args) (any, error) {
	return env.Query.GetCoinSwaps(ctx, pageQuery(args, "first"))
}

func getCoinCommentsHandler(ctx context.Context, env *Env, args Args) (any, error) {
	return env.Query.GetCoinComments(ctx, pageQuery(args, "count"))
}

func getProfileHandler(ctx context.Context, env *Env, args Args) (any, error) {
	return env.Query.GetProfile(ctx, args.String("identifier"))
}

func getProfileCoinsHandler(ctx context.Context, env *Env, args Args) (any, error) {
	return env.Query.GetProfileCoins(ctx, coins.ProfileCoinsQuery{
		Identifier:        args.String("identifier"),
		Count:             args.Int("count"),
		After:             args.String("after"),
		ChainIDs:          args.Int64List("chainIds"),
		PlatformReferrers: args.StringList("platformReferrerAddress"),
	})
}

func getProfileBalancesHandler(ctx context.Context, env *Env, args Args) (any, error) {
	return env.Query.GetProfileBalances(ctx, coins.ProfileQuery{
		Identifier: args.String("identifier"),
		Count:      args.Int("count"),
		After:      args.String("after"),
	})
}

func createCoinHandler(ctx context.Context, env *Env, args Args) (any, error) {
	req := coins.CreateCoinRequest{
		Name:            args.String("name"),
		Symbol:          args.String("symbol"),
		URI:             args.String("uri"),
		PayoutRecipient: common.HexToAddress(args.String("payoutRecipient")),
		ChainID:         args.Int64("chainId"),
		Currency:        coins.Currency(args.String("currency")),
		GasMultiplier:   args.Int("gasMultiplier"),
	}
	if ref := args.String("platformReferrer"); ref != "" {
		req.PlatformReferrer = common.HexToAddress(ref)
	}
	return env.Write.CreateCoin(ctx, req)
}

func updateCoinURIHandler(ctx context.Context, env *Env, args Args) (any, error) {
	return env.Write.UpdateCoinURI(ctx, coins.UpdateURIRequest{
		Coin:   common.HexToAddress(args.String("coin")),
		NewURI: args.String("newURI"),
	})
}

func updatePayoutRecipientHandler(ctx context.Context, env *Env, args Args) (any, error) {
	return env.Write.UpdatePayoutRecipient(ctx, coins.UpdatePayoutRequest{
		Coin:               common.HexToAddress(args.String("coin")),
		NewPayoutRecipient: common.HexToAddress(args.String("newPayoutRecipient")),
	})
}
