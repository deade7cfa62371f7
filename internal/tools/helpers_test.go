package tools

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/zoralabs/coins-mcp/internal/chain"
	"github.com/zoralabs/coins-mcp/internal/coins"
)

const testSignerKey = "0000000000000000000000000000000000000000000000000000000000000001"
const testSignerAddr = "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"

// fakePlatform is a call-count spy over both halves of the platform.
type fakePlatform struct {
	queryCalls int
	writeCalls int

	lastCoin         coins.CoinQuery
	lastBatch        []coins.CoinQuery
	lastPage         coins.PageQuery
	lastIdentifier   string
	lastProfileCoins coins.ProfileCoinsQuery
	lastProfile      coins.ProfileQuery
	lastExplore      coins.ExploreList
	lastExploreQuery coins.ExploreQuery

	lastCreate *coins.CreateCoinRequest
	lastURI    *coins.UpdateURIRequest
	lastPayout *coins.UpdatePayoutRequest
	lastTrade  *coins.TradeRequest

	err error
}

var okPayload = json.RawMessage(`{"ok":true}`)

func (f *fakePlatform) query() (json.RawMessage, error) {
	f.queryCalls++
	if f.err != nil {
		return nil, f.err
	}
	return okPayload, nil
}

func (f *fakePlatform) write() (*coins.TxReceipt, error) {
	f.writeCalls++
	if f.err != nil {
		return nil, f.err
	}
	return &coins.TxReceipt{
		TxHash:      "0xhash",
		Status:      1,
		BlockNumber: big.NewInt(100),
		GasUsed:     90000,
	}, nil
}

func (f *fakePlatform) GetCoin(ctx context.Context, q coins.CoinQuery) (json.RawMessage, error) {
	f.lastCoin = q
	return f.query()
}

func (f *fakePlatform) GetCoins(ctx context.Context, qs []coins.CoinQuery) (json.RawMessage, error) {
	f.lastBatch = qs
	return f.query()
}

func (f *fakePlatform) GetCoinHolders(ctx context.Context, q coins.PageQuery) (json.RawMessage, error) {
	f.lastPage = q
	return f.query()
}

func (f *fakePlatform) GetCoinSwaps(ctx context.Context, q coins.PageQuery) (json.RawMessage, error) {
	f.lastPage = q
	return f.query()
}

func (f *fakePlatform) GetCoinComments(ctx context.Context, q coins.PageQuery) (json.RawMessage, error) {
	f.lastPage = q
	return f.query()
}

func (f *fakePlatform) GetProfile(ctx context.Context, identifier string) (json.RawMessage, error) {
	f.lastIdentifier = identifier
	return f.query()
}

func (f *fakePlatform) GetProfileCoins(ctx context.Context, q coins.ProfileCoinsQuery) (json.RawMessage, error) {
	f.lastProfileCoins = q
	return f.query()
}

func (f *fakePlatform) GetProfileBalances(ctx context.Context, q coins.ProfileQuery) (json.RawMessage, error) {
	f.lastProfile = q
	return f.query()
}

func (f *fakePlatform) Explore(ctx context.Context, list coins.ExploreList, q coins.ExploreQuery) (json.RawMessage, error) {
	f.lastExplore = list
	f.lastExploreQuery = q
	return f.query()
}

func (f *fakePlatform) CreateCoin(ctx context.Context, req coins.CreateCoinRequest) (*coins.TxReceipt, error) {
	f.lastCreate = &req
	return f.write()
}

func (f *fakePlatform) UpdateCoinURI(ctx context.Context, req coins.UpdateURIRequest) (*coins.TxReceipt, error) {
	f.lastURI = &req
	return f.write()
}

func (f *fakePlatform) UpdatePayoutRecipient(ctx context.Context, req coins.UpdatePayoutRequest) (*coins.TxReceipt, error) {
	f.lastPayout = &req
	return f.write()
}

func (f *fakePlatform) Trade(ctx context.Context, req coins.TradeRequest) (*coins.TxReceipt, error) {
	f.lastTrade = &req
	return f.write()
}

func (f *fakePlatform) calls() int {
	return f.queryCalls + f.writeCalls
}

// newTestEnv builds an Env backed by the spy. The spy stays wired as the
// writer even without a signer so gated calls that leak through would be
// counted.
func newTestEnv(t *testing.T, withSigner bool) (*Env, *fakePlatform) {
	t.Helper()
	fake := &fakePlatform{}
	env := &Env{
		ServerName:       "coins-mcp",
		ServerVersion:    "0.1.0",
		ChainID:          8453,
		RPCURL:           "https://mainnet.base.org",
		APIKeyConfigured: true,
		Query:            fake,
		Write:            fake,
	}
	if withSigner {
		signer, err := chain.NewSigner(testSignerKey)
		require.NoError(t, err)
		env.Signer = signer
	}
	return env, fake
}

func newTestDispatcher(t *testing.T, withSigner bool) (*Dispatcher, *fakePlatform) {
	t.Helper()
	env, fake := newTestEnv(t, withSigner)
	registry, err := BuildRegistry(env)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewDispatcher(registry, env, logger), fake
}

// validCallArgs returns a minimal passing argument set for every tool.
func validCallArgs() map[string]map[string]any {
	return map[string]map[string]any{
		"health":    {},
		"get_coin":  {"address": "0xabc"},
		"get_coins": {"coins": []any{map[string]any{"collectionAddress": "0xabc"}}},
		"get_coin_holders":     {"address": "0xabc"},
		"get_coin_swaps":       {"address": "0xabc"},
		"get_coin_comments":    {"address": "0xabc"},
		"get_profile":          {"identifier": "@creator"},
		"get_profile_coins":    {"identifier": "@creator"},
		"get_profile_balances": {"identifier": "@creator"},
		"explore_top_gainers":        {},
		"explore_top_volume_24h":     {},
		"explore_most_valuable":      {},
		"explore_new":                {},
		"explore_last_traded":        {},
		"explore_last_traded_unique": {},
		"create_coin": {
			"name":            "Sample",
			"symbol":          "SMP",
			"uri":             "ipfs://meta",
			"payoutRecipient": "0x00000000000000000000000000000000000000A1",
		},
		"update_coin_uri": {
			"coin":   "0x00000000000000000000000000000000000000A2",
			"newURI": "ipfs://new",
		},
		"update_payout_recipient": {
			"coin":               "0x00000000000000000000000000000000000000A2",
			"newPayoutRecipient": "0x00000000000000000000000000000000000000A3",
		},
		"trade_coin": {
			"sellType":   "eth",
			"buyType":    "erc20",
			"buyAddress": "0x00000000000000000000000000000000000000AA",
			"amount":     "0.01",
		},
	}
}
