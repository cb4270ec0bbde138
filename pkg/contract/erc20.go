// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/tokenforge/tokenforge-cli/pkg/utils"
)

// TokenInfo is the result of the one-shot monitoring read against a
// deployed token contract.
type TokenInfo struct {
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply *big.Int
}

type tokenCaller struct {
	bound *bind.BoundContract
}

func newTokenCaller(client *ethclient.Client, contractAddressStr string) (*tokenCaller, error) {
	parsed, err := tokenABI()
	if err != nil {
		return nil, fmt.Errorf("failure parsing token abi: %w", err)
	}
	contractAddress := common.HexToAddress(contractAddressStr)
	return &tokenCaller{
		bound: bind.NewBoundContract(contractAddress, parsed, client, client, client),
	}, nil
}

func (c *tokenCaller) call(method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}
	ctx, cancel := utils.GetAPIContext()
	defer cancel()
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, fmt.Errorf("failure calling %s: %w", method, err)
	}
	return out, nil
}

// GetTokenInfo reads name, symbol, decimals and totalSupply from the token
// at the given address.
func GetTokenInfo(
	client *ethclient.Client,
	contractAddressStr string,
) (TokenInfo, error) {
	caller, err := newTokenCaller(client, contractAddressStr)
	if err != nil {
		return TokenInfo{}, err
	}
	info := TokenInfo{}
	out, err := caller.call("name")
	if err != nil {
		return TokenInfo{}, err
	}
	info.Name = *abi.ConvertType(out[0], new(string)).(*string)
	out, err = caller.call("symbol")
	if err != nil {
		return TokenInfo{}, err
	}
	info.Symbol = *abi.ConvertType(out[0], new(string)).(*string)
	out, err = caller.call("decimals")
	if err != nil {
		return TokenInfo{}, err
	}
	info.Decimals = *abi.ConvertType(out[0], new(uint8)).(*uint8)
	out, err = caller.call("totalSupply")
	if err != nil {
		return TokenInfo{}, err
	}
	info.TotalSupply = *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return info, nil
}

// GetTokenBalance returns the token balance of holder on the token at the
// given address.
func GetTokenBalance(
	client *ethclient.Client,
	contractAddressStr string,
	holderStr string,
) (*big.Int, error) {
	caller, err := newTokenCaller(client, contractAddressStr)
	if err != nil {
		return nil, err
	}
	out, err := caller.call("balanceOf", common.HexToAddress(holderStr))
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}
