// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge-cli/pkg/cobrautils"
	"github.com/tokenforge/tokenforge-cli/pkg/constants"
	"github.com/tokenforge/tokenforge-cli/pkg/evm"
	"github.com/tokenforge/tokenforge-cli/pkg/key"
	"github.com/tokenforge/tokenforge-cli/pkg/utils"
	"github.com/tokenforge/tokenforge-cli/pkg/ux"
)

type fundFlags struct {
	rpcURL     string
	privateKey string
	keyFile    string
	amount     string
}

var fundArgs fundFlags

// tokenforge fund
func newFundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund <address>",
		Short: "Send native coin from the deployer account to an address",
		Long: `The fund command transfers native coin from the configured deployer
account to the given address. Useful on development networks to top up a
fresh account before it deploys or interacts with tokens.`,
		RunE: fundTargetAddress,
		Args: cobrautils.ExactArgs(1),
	}
	cmd.Flags().StringVar(&fundArgs.rpcURL, "rpc", "", "send through the given rpc endpoint")
	cmd.Flags().StringVar(&fundArgs.privateKey, "key", "", "private key of the funding account")
	cmd.Flags().StringVar(&fundArgs.keyFile, "key-file", "", "file containing the funding account private key")
	cmd.Flags().StringVar(&fundArgs.amount, "amount", "1", "amount to send, in ether")
	return cmd
}

func fundTargetAddress(_ *cobra.Command, args []string) error {
	if !common.IsHexAddress(args[0]) {
		return fmt.Errorf("invalid address %s", args[0])
	}
	targetAddress := common.HexToAddress(args[0])
	amount, err := utils.ParseEther(fundArgs.amount)
	if err != nil {
		return err
	}
	deployerKey, err := key.Resolve(
		fundArgs.privateKey,
		fundArgs.keyFile,
		os.Getenv(constants.PrivateKeyEnvVar),
	)
	if err != nil {
		return err
	}
	client, err := evm.GetClient(resolveRPCURL(fundArgs.rpcURL))
	if err != nil {
		return err
	}
	if err := evm.FundAddress(client, deployerKey.PrivKeyHex(), targetAddress.Hex(), amount); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser(
		"Sent %s ETH from %s to %s",
		utils.FormatEther(amount),
		deployerKey.Address().Hex(),
		targetAddress.Hex(),
	)
	return nil
}
