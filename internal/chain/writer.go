package chain

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"

	"github.com/zoralabs/coins-mcp/internal/coins"
)

// Platform contract addresses on Base mainnet.
var (
	factoryAddress = common.HexToAddress("0x777777751622c0d3258f214F9DF38E35BF45baF3")
	routerAddress  = common.HexToAddress("0x6fF5693b99212Da76ad316178A184AB56D299b43")

	// Deploy currencies: the platform token, or WETH when pricing in ETH.
	zoraTokenAddress = common.HexToAddress("0x1111111111166b7FE7bd91427724B487980aFc69")
	wethAddress      = common.HexToAddress("0x4200000000000000000000000000000000000006")

	// Native coin sentinel for the router's token arguments.
	nativeToken = common.Address{}
)

const factoryABI = `[
  {"inputs":[{"name":"payoutRecipient","type":"address"},{"name":"uri","type":"string"},{"name":"name","type":"string"},{"name":"symbol","type":"string"},{"name":"platformReferrer","type":"address"},{"name":"currency","type":"address"}],"name":"deploy","outputs":[{"name":"coin","type":"address"}],"stateMutability":"payable","type":"function"},
  {"anonymous":false,"inputs":[{"indexed":true,"name":"caller","type":"address"},{"indexed":true,"name":"payoutRecipient","type":"address"},{"indexed":true,"name":"coin","type":"address"},{"name":"uri","type":"string"},{"name":"name","type":"string"},{"name":"symbol","type":"string"}],"name":"CoinCreated","type":"event"}
]`

const coinABI = `[
  {"inputs":[{"name":"newURI","type":"string"}],"name":"setContractURI","outputs":[],"stateMutability":"nonpayable","type":"function"},
  {"inputs":[{"name":"newPayoutRecipient","type":"address"}],"name":"setPayoutRecipient","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const routerABI = `[
  {"inputs":[{"name":"sellToken","type":"address"},{"name":"buyToken","type":"address"},{"name":"amountIn","type":"uint256"},{"name":"slippageBps","type":"uint256"},{"name":"recipient","type":"address"}],"name":"swap","outputs":[{"name":"amountOut","type":"uint256"}],"stateMutability":"payable","type":"function"}
]`

// Backend is the subset of the RPC client the writer needs. Satisfied by
// *ethclient.Client.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Writer submits the platform's state-mutating operations as signed
// transactions and waits for their receipts.
type Writer struct {
	backend Backend
	signer  *Signer
	chainID *big.Int
	logger  *logrus.Logger

	factory *bind.BoundContract
	router  *bind.BoundContract

	factoryParsed abi.ABI
	coinParsed    abi.ABI
	routerParsed  abi.ABI
}

// NewWriter builds the write side of the platform. signer must be
// non-nil; callers gate on its presence before constructing a Writer.
func NewWriter(backend Backend, signer *Signer, chainID int64, logger *logrus.Logger) (*Writer, error) {
	if signer == nil {
		return nil, fmt.Errorf("writer requires a signing identity")
	}
	if logger == nil {
		logger = logrus.New()
	}

	factoryParsed, err := abi.JSON(strings.NewReader(factoryABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse factory ABI: %w", err)
	}
	coinParsed, err := abi.JSON(strings.NewReader(coinABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse coin ABI: %w", err)
	}
	routerParsed, err := abi.JSON(strings.NewReader(routerABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse router ABI: %w", err)
	}

	return &Writer{
		backend:       backend,
		signer:        signer,
		chainID:       big.NewInt(chainID),
		logger:        logger,
		factory:       bind.NewBoundContract(factoryAddress, factoryParsed, backend, backend, backend),
		router:        bind.NewBoundContract(routerAddress, routerParsed, backend, backend, backend),
		factoryParsed: factoryParsed,
		coinParsed:    coinParsed,
		routerParsed:  routerParsed,
	}, nil
}

func (w *Writer) CreateCoin(ctx context.Context, req coins.CreateCoinRequest) (*coins.TxReceipt, error) {
	currency := currencyAddress(req.Currency)

	auth, err := w.transactOpts(ctx)
	if err != nil {
		return nil, err
	}

	args := []interface{}{req.PayoutRecipient, req.URI, req.Name, req.Symbol, req.PlatformReferrer, currency}
	if req.GasMultiplier > 0 {
		data, err := w.factoryParsed.Pack("deploy", args...)
		if err != nil {
			return nil, fmt.Errorf("failed to encode deploy call: %w", err)
		}
		gas, err := w.estimateGas(ctx, factoryAddress, data, nil)
		if err != nil {
			return nil, fmt.Errorf("gas estimation for deploy failed: %w", err)
		}
		auth.GasLimit = applyGasMultiplier(gas, req.GasMultiplier)
	}

	w.logger.WithFields(logrus.Fields{
		"name":   req.Name,
		"symbol": req.Symbol,
	}).Info("deploying coin")

	tx, err := w.factory.Transact(auth, "deploy", args...)
	if err != nil {
		return nil, fmt.Errorf("deploy transaction failed: %w", err)
	}

	return w.wait(ctx, tx)
}

func (w *Writer) UpdateCoinURI(ctx context.Context, req coins.UpdateURIRequest) (*coins.TxReceipt, error) {
	auth, err := w.transactOpts(ctx)
	if err != nil {
		return nil, err
	}

	coin := bind.NewBoundContract(req.Coin, w.coinParsed, w.backend, w.backend, w.backend)
	tx, err := coin.Transact(auth, "setContractURI", req.NewURI)
	if err != nil {
		return nil, fmt.Errorf("setContractURI transaction failed: %w", err)
	}

	return w.wait(ctx, tx)
}

func (w *Writer) UpdatePayoutRecipient(ctx context.Context, req coins.UpdatePayoutRequest) (*coins.TxReceipt, error) {
	auth, err := w.transactOpts(ctx)
	if err != nil {
		return nil, err
	}

	coin := bind.NewBoundContract(req.Coin, w.coinParsed, w.backend, w.backend, w.backend)
	tx, err := coin.Transact(auth, "setPayoutRecipient", req.NewPayoutRecipient)
	if err != nil {
		return nil, fmt.Errorf("setPayoutRecipient transaction failed: %w", err)
	}

	return w.wait(ctx, tx)
}

func (w *Writer) Trade(ctx context.Context, req coins.TradeRequest) (*coins.TxReceipt, error) {
	auth, err := w.transactOpts(ctx)
	if err != nil {
		return nil, err
	}

	sellToken := legToken(req.Sell)
	buyToken := legToken(req.Buy)
	if req.Sell.Kind == coins.LegETH {
		// Selling the native coin attaches the amount as call value.
		auth.Value = req.AmountIn
	}

	w.logger.WithFields(logrus.Fields{
		"sell":     req.Sell.Kind,
		"buy":      req.Buy.Kind,
		"amountIn": req.AmountIn.String(),
	}).Info("submitting trade")

	tx, err := w.router.Transact(auth, "swap",
		sellToken, buyToken, req.AmountIn, slippageBps(req.Slippage), req.Recipient)
	if err != nil {
		return nil, fmt.Errorf("swap transaction failed: %w", err)
	}

	return w.wait(ctx, tx)
}

func (w *Writer) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(w.signer.Key, w.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transactor: %w", err)
	}
	auth.Context = ctx
	return auth, nil
}

func (w *Writer) estimateGas(ctx context.Context, to common.Address, data []byte, value *big.Int) (uint64, error) {
	return w.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  w.signer.Address,
		To:    &to,
		Value: value,
		Data:  data,
	})
}

func (w *Writer) wait(ctx context.Context, tx *types.Transaction) (*coins.TxReceipt, error) {
	receipt, err := bind.WaitMined(ctx, w.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("waiting for transaction %s: %w", tx.Hash().Hex(), err)
	}
	return w.toReceipt(receipt), nil
}

func (w *Writer) toReceipt(r *types.Receipt) *coins.TxReceipt {
	out := &coins.TxReceipt{
		TxHash:      r.TxHash.Hex(),
		Status:      r.Status,
		BlockNumber: r.BlockNumber,
		GasUsed:     r.GasUsed,
	}
	if coin, ok := coinFromLogs(w.factoryParsed, r.Logs); ok {
		out.Coin = coin.Hex()
	}
	return out
}

// coinFromLogs extracts the deployed coin address from the factory's
// CoinCreated event, when present.
func coinFromLogs(factory abi.ABI, logs []*types.Log) (common.Address, bool) {
	event, ok := factory.Events["CoinCreated"]
	if !ok {
		return common.Address{}, false
	}
	for _, log := range logs {
		if log.Address != factoryAddress || len(log.Topics) < 4 {
			continue
		}
		if log.Topics[0] == event.ID {
			return common.BytesToAddress(log.Topics[3].Bytes()), true
		}
	}
	return common.Address{}, false
}

func currencyAddress(c coins.Currency) common.Address {
	if c == coins.CurrencyETH {
		return wethAddress
	}
	return zoraTokenAddress
}

func legToken(leg coins.TradeLeg) common.Address {
	if leg.Kind == coins.LegETH {
		return nativeToken
	}
	return leg.Token
}

func applyGasMultiplier(gas uint64, multiplier int) uint64 {
	return gas * uint64(multiplier) / 100
}

func slippageBps(slippage float64) *big.Int {
	return big.NewInt(int64(math.Round(slippage * 10000)))
}
