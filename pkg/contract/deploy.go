// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	_ "embed"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/tokenforge/tokenforge-cli/pkg/evm"
)

//go:embed contracts/Token.bin
var tokenBin string

//go:embed contracts/Token.abi
var tokenABIJSON string

func tokenABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(tokenABIJSON))
}

// DeployERC20 submits the embedded token creation bytecode with the given
// constructor arguments and waits for the deployment to be mined.
func DeployERC20(
	client *ethclient.Client,
	privateKeyStr string,
	name string,
	symbol string,
	initialSupply *big.Int,
) (common.Address, *types.Transaction, *types.Receipt, error) {
	parsed, err := tokenABI()
	if err != nil {
		return common.Address{}, nil, nil, fmt.Errorf("failure parsing token abi: %w", err)
	}
	txOpts, err := evm.GetTxOptsWithSigner(client, privateKeyStr)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	address, tx, _, err := bind.DeployContract(
		txOpts,
		parsed,
		common.FromHex(strings.TrimSpace(tokenBin)),
		client,
		name,
		symbol,
		initialSupply,
	)
	if err != nil {
		return common.Address{}, tx, nil, evm.TransactionError(tx, err, "failure deploying token contract")
	}
	receipt, success, err := evm.WaitForTransaction(client, tx)
	if err != nil {
		return address, tx, nil, err
	}
	if !success {
		return address, tx, receipt, fmt.Errorf(
			"token contract deployment failed: got receipt status %d expected %d",
			receipt.Status,
			types.ReceiptStatusSuccessful,
		)
	}
	return address, tx, receipt, nil
}
