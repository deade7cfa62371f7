package tools

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/zoralabs/coins-mcp/internal/amount"
	"github.com/zoralabs/coins-mcp/internal/coins"
)

// defaultTokenDecimals is assumed for token sell legs when the caller
// does not supply sellDecimals. Tokens with non-18 decimals need an
// explicit value or amounts come out wrong.
const defaultTokenDecimals = 18

// tradeCoinHandler resolves the two trade legs, normalizes the sell
// amount into the leg's smallest denomination, and submits the swap. Any
// ambiguous leg stops the call before a transaction is built.
func tradeCoinHandler(ctx context.Context, env *Env, args Args) (any, error) {
	sell, err := resolveLeg(args.String("sellType"), "sellAddress", args.String("sellAddress"))
	if err != nil {
		return nil, err
	}

	buy, err := resolveLeg(args.String("buyType"), "buyAddress", args.String("buyAddress"))
	if err != nil {
		return nil, err
	}

	amountIn, err := resolveAmount(args, sell)
	if err != nil {
		return nil, err
	}

	sender := env.Signer.Address
	if s := args.String("sender"); s != "" {
		sender = common.HexToAddress(s)
	}
	recipient := env.Signer.Address
	if r := args.String("recipient"); r != "" {
		recipient = common.HexToAddress(r)
	}

	return env.Write.Trade(ctx, coins.TradeRequest{
		Sell:      sell,
		Buy:       buy,
		AmountIn:  amountIn,
		Slippage:  args.Float("slippage"),
		Sender:    sender,
		Recipient: recipient,
	})
}

// resolveLeg turns a leg type plus optional token address into a concrete
// trade leg. Token legs require a non-empty address.
func resolveLeg(kind, addrField, addr string) (coins.TradeLeg, error) {
	switch coins.LegKind(kind) {
	case coins.LegETH:
		return coins.TradeLeg{Kind: coins.LegETH}, nil
	case coins.LegERC20:
		if addr == "" {
			return coins.TradeLeg{}, validationErr(addrField, "required when the leg type is %q", coins.LegERC20)
		}
		return coins.TradeLeg{Kind: coins.LegERC20, Token: common.HexToAddress(addr)}, nil
	default:
		// The enum contract rejects other values before the handler runs.
		return coins.TradeLeg{}, validationErr(addrField, "unsupported leg type %q", kind)
	}
}

// resolveAmount scales the human-readable amount by the sell leg's
// precision: 18 for the native coin, sellDecimals (default 18) for
// tokens.
func resolveAmount(args Args, sell coins.TradeLeg) (amountIn *big.Int, err error) {
	raw := args.String("amount")
	if sell.Kind == coins.LegETH {
		amountIn, err = amount.ParseEther(raw)
	} else {
		decimals := defaultTokenDecimals
		if args.Has("sellDecimals") {
			decimals = args.Int("sellDecimals")
		}
		amountIn, err = amount.ParseUnits(raw, decimals)
	}
	if err != nil {
		return nil, validationErr("amount", "%v", err)
	}
	return amountIn, nil
}
