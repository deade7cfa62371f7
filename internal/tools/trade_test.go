package tools

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoralabs/coins-mcp/internal/coins"
)

func TestTradeCoinEthForToken(t *testing.T) {
	d, fake := newTestDispatcher(t, true)

	_, err := d.Invoke(context.Background(), "trade_coin", map[string]any{
		"sellType":   "eth",
		"buyType":    "erc20",
		"buyAddress": "0x00000000000000000000000000000000000000AA",
		"amount":     "0.01",
		"slippage":   0.1,
	})
	require.NoError(t, err)
	require.Equal(t, 1, fake.writeCalls, "exactly one trade submission")

	trade := fake.lastTrade
	require.NotNil(t, trade)
	assert.Equal(t, coins.LegETH, trade.Sell.Kind)
	assert.Equal(t, coins.LegERC20, trade.Buy.Kind)
	assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000AA"), trade.Buy.Token)

	want, _ := new(big.Int).SetString("10000000000000000", 10)
	assert.Zero(t, trade.AmountIn.Cmp(want), "0.01 ETH in wei")
	assert.Equal(t, 0.1, trade.Slippage)

	// Both parties default to the wallet.
	wallet := common.HexToAddress(testSignerAddr)
	assert.Equal(t, wallet, trade.Sender)
	assert.Equal(t, wallet, trade.Recipient)
}

func TestTradeCoinSlippageDefault(t *testing.T) {
	d, fake := newTestDispatcher(t, true)

	_, err := d.Invoke(context.Background(), "trade_coin", map[string]any{
		"sellType":   "eth",
		"buyType":    "erc20",
		"buyAddress": "0xaa",
		"amount":     "1",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.05, fake.lastTrade.Slippage)
}

func TestTradeCoinTokenSellScalesByDecimals(t *testing.T) {
	t.Run("explicit decimals", func(t *testing.T) {
		d, fake := newTestDispatcher(t, true)

		_, err := d.Invoke(context.Background(), "trade_coin", map[string]any{
			"sellType":     "erc20",
			"sellAddress":  "0xbb",
			"sellDecimals": float64(6),
			"buyType":      "eth",
			"amount":       "1.5",
		})
		require.NoError(t, err)
		assert.Equal(t, "1500000", fake.lastTrade.AmountIn.String())
		assert.Equal(t, coins.LegERC20, fake.lastTrade.Sell.Kind)
		assert.Equal(t, coins.LegETH, fake.lastTrade.Buy.Kind)
	})

	t.Run("defaults to 18", func(t *testing.T) {
		d, fake := newTestDispatcher(t, true)

		_, err := d.Invoke(context.Background(), "trade_coin", map[string]any{
			"sellType":    "erc20",
			"sellAddress": "0xbb",
			"buyType":     "eth",
			"amount":      "2",
		})
		require.NoError(t, err)
		assert.Equal(t, "2000000000000000000", fake.lastTrade.AmountIn.String())
	})
}

func TestTradeCoinLegAddressRequired(t *testing.T) {
	cases := []struct {
		name  string
		args  map[string]any
		field string
	}{
		{
			"erc20 sell without address",
			map[string]any{"sellType": "erc20", "buyType": "eth", "amount": "1"},
			"sellAddress",
		},
		{
			"erc20 buy without address",
			map[string]any{"sellType": "eth", "buyType": "erc20", "amount": "1"},
			"buyAddress",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, fake := newTestDispatcher(t, true)

			_, err := d.Invoke(context.Background(), "trade_coin", tc.args)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Zero(t, fake.calls())
		})
	}
}

func TestTradeCoinRejectsBadAmounts(t *testing.T) {
	for _, amount := range []string{"-1", "1,5", "abc", "1.2.3", ""} {
		t.Run("amount "+amount, func(t *testing.T) {
			d, fake := newTestDispatcher(t, true)

			_, err := d.Invoke(context.Background(), "trade_coin", map[string]any{
				"sellType":   "eth",
				"buyType":    "erc20",
				"buyAddress": "0xaa",
				"amount":     amount,
			})
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Zero(t, fake.calls())
		})
	}
}

func TestTradeCoinRejectsExcessPrecision(t *testing.T) {
	d, fake := newTestDispatcher(t, true)

	// 7 fractional digits against 6 decimals would silently lose value.
	_, err := d.Invoke(context.Background(), "trade_coin", map[string]any{
		"sellType":     "erc20",
		"sellAddress":  "0xbb",
		"sellDecimals": float64(6),
		"buyType":      "eth",
		"amount":       "0.0000001",
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "amount", vErr.Field)
	assert.Zero(t, fake.calls())
}

func TestTradeCoinExplicitParties(t *testing.T) {
	d, fake := newTestDispatcher(t, true)

	_, err := d.Invoke(context.Background(), "trade_coin", map[string]any{
		"sellType":   "eth",
		"buyType":    "erc20",
		"buyAddress": "0xaa",
		"amount":     "1",
		"sender":     "0x00000000000000000000000000000000000000C1",
		"recipient":  "0x00000000000000000000000000000000000000C2",
	})
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000C1"), fake.lastTrade.Sender)
	assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000C2"), fake.lastTrade.Recipient)
}

func TestTradeCoinRejectsSlippageOutOfRange(t *testing.T) {
	d, fake := newTestDispatcher(t, true)

	_, err := d.Invoke(context.Background(), "trade_coin", map[string]any{
		"sellType":   "eth",
		"buyType":    "erc20",
		"buyAddress": "0xaa",
		"amount":     "1",
		"slippage":   0.995,
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "slippage", vErr.Field)
	assert.Zero(t, fake.calls())
}
