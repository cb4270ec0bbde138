// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

// FormatEther renders a wei amount as a decimal ether string.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	ether := new(big.Float).Quo(
		new(big.Float).SetInt(wei),
		new(big.Float).SetFloat64(params.Ether),
	)
	return ether.Text('f', -1)
}

// ParseEther converts a positive decimal ether amount to wei.
func ParseEther(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	intPart, fracPart, _ := strings.Cut(amount, ".")
	if intPart == "" && fracPart == "" {
		return nil, fmt.Errorf("empty ether amount")
	}
	if len(fracPart) > 18 {
		return nil, fmt.Errorf("ether amount %s has more than 18 decimal places", amount)
	}
	wei, ok := new(big.Int).SetString(intPart+fracPart+strings.Repeat("0", 18-len(fracPart)), 10)
	if !ok || strings.ContainsAny(amount, "+-") {
		return nil, fmt.Errorf("invalid ether amount %s", amount)
	}
	if wei.Sign() == 0 {
		return nil, fmt.Errorf("ether amount must be greater than zero")
	}
	return wei, nil
}

// FormatUnits renders a token amount scaled down by the given number of
// decimals.
func FormatUnits(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	value := new(big.Float).Quo(
		new(big.Float).SetInt(amount),
		new(big.Float).SetInt(scale),
	)
	return value.Text('f', -1)
}
