// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package key

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/tokenforge/tokenforge-cli/pkg/constants"
)

var (
	ErrMissingPrivateKey     = errors.New("no deployer private key was provided")
	ErrPlaceholderPrivateKey = errors.New("the deployer private key is still set to the placeholder value")
)

// SoftKey wraps an in-memory secp256k1 signing key together with its
// derived EVM address.
type SoftKey struct {
	privKey *ecdsa.PrivateKey
	addr    common.Address
}

// Parse validates a raw hex private key and wraps it. A leading 0x prefix
// is accepted. The placeholder shipped in .env.example is rejected before
// any parsing so that callers never reach the network with it.
func Parse(raw string) (*SoftKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrMissingPrivateKey
	}
	if raw == constants.PrivateKeyPlaceholder {
		return nil, ErrPlaceholderPrivateKey
	}
	privKey, err := crypto.HexToECDSA(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid deployer private key: %w", err)
	}
	return &SoftKey{
		privKey: privKey,
		addr:    crypto.PubkeyToAddress(privKey.PublicKey),
	}, nil
}

// Resolve picks the private key source with flag > key file > environment
// precedence and parses the result.
func Resolve(flagValue string, keyFilePath string, envValue string) (*SoftKey, error) {
	switch {
	case flagValue != "":
		return Parse(flagValue)
	case keyFilePath != "":
		raw, err := os.ReadFile(keyFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed reading key file %s: %w", keyFilePath, err)
		}
		return Parse(string(raw))
	default:
		return Parse(envValue)
	}
}

func (k *SoftKey) PrivKey() *ecdsa.PrivateKey {
	return k.privKey
}

// PrivKeyHex returns the key as unprefixed hex, the format the scaffolded
// toolchain expects in its environment.
func (k *SoftKey) PrivKeyHex() string {
	return common.Bytes2Hex(crypto.FromECDSA(k.privKey))
}

func (k *SoftKey) Address() common.Address {
	return k.addr
}
