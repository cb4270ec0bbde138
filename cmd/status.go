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

var statusRPCURL string

// tokenforge status
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <contractAddress>",
		Short: "Read the state of a deployed token",
		Long: `The status command performs a one-shot read of a deployed token
contract, reporting its name, symbol and total supply.`,
		RunE: tokenStatus,
		Args: cobrautils.ExactArgs(1),
	}
	cmd.Flags().StringVar(&statusRPCURL, "rpc", "", "query the given rpc endpoint")
	return cmd
}

func tokenStatus(_ *cobra.Command, args []string) error {
	contractAddress := args[0]
	if !common.IsHexAddress(contractAddress) {
		return fmt.Errorf("invalid contract address %s", contractAddress)
	}
	client, err := evm.GetClient(resolveRPCURL(statusRPCURL))
	if err != nil {
		return err
	}
	deployed, err := evm.ContractAlreadyDeployed(client, contractAddress)
	if err != nil {
		return err
	}
	if !deployed {
		return fmt.Errorf("no contract code found at %s", contractAddress)
	}
	info, err := contract.GetTokenInfo(client, contractAddress)
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("Token: %s (%s)", info.Name, info.Symbol)
	ux.Logger.PrintToUser("Address: %s", common.HexToAddress(contractAddress).Hex())
	ux.Logger.PrintToUser("Total supply: %s", utils.FormatUnits(info.TotalSupply, info.Decimals))
	return nil
}
