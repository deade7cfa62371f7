package tools

import (
	"github.com/zoralabs/coins-mcp/internal/chain"
	"github.com/zoralabs/coins-mcp/internal/coins"
)

// Env is the process-wide context handlers read from. Built once at
// startup, never mutated afterwards.
type Env struct {
	ServerName       string
	ServerVersion    string
	ChainID          int64
	RPCURL           string
	APIKeyConfigured bool

	// Signer is nil when no private key was configured; its presence
	// enables the write tools.
	Signer *chain.Signer

	Query coins.Querier
	// Write is non-nil exactly when Signer is non-nil.
	Write coins.Writer
}

// WalletAddress returns the signing address in hex, or "" without a
// signer.
func (e *Env) WalletAddress() string {
	if e.Signer == nil {
		return ""
	}
	return e.Signer.Address.Hex()
}
