// Package chain holds the signing identity and the on-chain write path:
// coin deployment, metadata updates and trades submitted through the
// platform's contracts.
package chain

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer is the key material and derived address used to authorize
// state-mutating calls.
type Signer struct {
	Key     *ecdsa.PrivateKey
	Address common.Address
}

// NewSigner parses a hex-encoded private key. A leading 0x prefix is
// accepted and stripped.
func NewSigner(hexKey string) (*Signer, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, fmt.Errorf("private key is empty")
	}

	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &Signer{
		Key:     key,
		Address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}
