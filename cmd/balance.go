// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge-cli/pkg/cobrautils"
	"github.com/tokenforge/tokenforge-cli/pkg/contract"
	"github.com/tokenforge/tokenforge-cli/pkg/evm"
	"github.com/tokenforge/tokenforge-cli/pkg/utils"
	"github.com/tokenforge/tokenforge-cli/pkg/ux"
)

var (
	balanceRPCURL       string
	balanceTokenAddress string
)

// tokenforge balance
func newBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Query the native or token balance of an address",
		RunE:  addressBalance,
		Args:  cobrautils.MaximumNArgs(1),
	}
	cmd.Flags().StringVar(&balanceRPCURL, "rpc", "", "query the given rpc endpoint")
	cmd.Flags().StringVar(&balanceTokenAddress, "token", "", "report the balance of the given token contract instead of the native balance")
	return cmd
}

func addressBalance(_ *cobra.Command, args []string) error {
	var (
		address common.Address
		err     error
	)
	if len(args) == 1 {
		if !common.IsHexAddress(args[0]) {
			return fmt.Errorf("invalid address %s", args[0])
		}
		address = common.HexToAddress(args[0])
	} else {
		address, err = app.Prompt.CaptureAddress("Address to query")
		if err != nil {
			return err
		}
	}
	client, err := evm.GetClient(resolveRPCURL(balanceRPCURL))
	if err != nil {
		return err
	}
	if balanceTokenAddress != "" {
		if !common.IsHexAddress(balanceTokenAddress) {
			return fmt.Errorf("invalid token contract address %s", balanceTokenAddress)
		}
		info, err := contract.GetTokenInfo(client, balanceTokenAddress)
		if err != nil {
			return err
		}
		balance, err := contract.GetTokenBalance(client, balanceTokenAddress, address.Hex())
		if err != nil {
			return err
		}
		ux.Logger.PrintToUser(
			"Balance of %s: %s %s",
			address.Hex(),
			utils.FormatUnits(balance, info.Decimals),
			info.Symbol,
		)
		return nil
	}
	balance, err := evm.GetAddressBalance(client, address.Hex())
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("Balance of %s: %s ETH", address.Hex(), utils.FormatEther(balance))
	return nil
}
