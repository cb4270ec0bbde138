// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge-cli/pkg/cobrautils"
	"github.com/tokenforge/tokenforge-cli/pkg/constants"
	"github.com/tokenforge/tokenforge-cli/pkg/contract"
	"github.com/tokenforge/tokenforge-cli/pkg/evm"
	"github.com/tokenforge/tokenforge-cli/pkg/key"
	"github.com/tokenforge/tokenforge-cli/pkg/models"
	"github.com/tokenforge/tokenforge-cli/pkg/utils"
	"github.com/tokenforge/tokenforge-cli/pkg/ux"
)

type deployFlags struct {
	rpcURL      string
	privateKey  string
	keyFile     string
	tokenName   string
	tokenSymbol string
	supply      uint64
}

var deployArgs deployFlags

// tokenforge deploy
func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the embedded token directly through RPC",
		Long: `The deploy command submits the embedded compiled token contract directly
through the configured JSON-RPC endpoint, without scaffolding any project
files. It is equivalent to create --quick.`,
		RunE: deployToken,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().StringVar(&deployArgs.rpcURL, "rpc", "", "deploy through the given rpc endpoint")
	cmd.Flags().StringVar(&deployArgs.privateKey, "key", "", "private key to use as contract deployer")
	cmd.Flags().StringVar(&deployArgs.keyFile, "key-file", "", "file containing the deployer private key")
	cmd.Flags().StringVar(&deployArgs.tokenName, "token-name", constants.DefaultTokenName, "set the token name")
	cmd.Flags().StringVar(&deployArgs.tokenSymbol, "symbol", constants.DefaultTokenSymbol, "set the token symbol")
	cmd.Flags().Uint64Var(&deployArgs.supply, "supply", constants.DefaultTokenSupply, "set the initial token supply in whole tokens")
	return cmd
}

func deployToken(_ *cobra.Command, _ []string) error {
	deployerKey, err := key.Resolve(
		deployArgs.privateKey,
		deployArgs.keyFile,
		os.Getenv(constants.PrivateKeyEnvVar),
	)
	if err != nil {
		return err
	}
	return quickDeploy(
		resolveRPCURL(deployArgs.rpcURL),
		resolveNetworkLabel(),
		deployerKey,
		deployArgs.tokenName,
		deployArgs.tokenSymbol,
		deployArgs.supply,
	)
}

// quickDeploy submits the embedded token creation transaction and records
// the result. The deployer key has already been validated at this point.
func quickDeploy(
	rpcURL string,
	networkLabel string,
	deployerKey *key.SoftKey,
	tokenName string,
	tokenSymbol string,
	supply uint64,
) error {
	client, err := evm.GetClient(rpcURL)
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("Deployer: %s", deployerKey.Address().Hex())
	balance, err := evm.GetAddressBalance(client, deployerKey.Address().Hex())
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("Deployer balance: %s ETH", utils.FormatEther(balance))

	spinSession := ux.NewUserSpinner()
	spinner := spinSession.SpinToUser("Deploying %s (%s) to %s", tokenName, tokenSymbol, networkLabel)
	address, tx, _, err := contract.DeployERC20(
		client,
		deployerKey.PrivKeyHex(),
		tokenName,
		tokenSymbol,
		new(big.Int).SetUint64(supply),
	)
	if err != nil {
		ux.SpinFailWithError(spinner, "", err)
		spinSession.Stop()
		return err
	}
	ux.SpinComplete(spinner)
	spinSession.Stop()

	ux.Logger.GreenCheckmarkToUser("Token deployed to %s", address.Hex())
	ux.Logger.PrintToUser("Transaction: %s", tx.Hash().Hex())

	deployment := models.NewDeployment(
		address,
		deployerKey.Address(),
		tx.Hash(),
		networkLabel,
		tokenName,
		tokenSymbol,
		supply,
	)
	recordPath, err := app.SaveDeploymentRecord(deployment)
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("Deployment record: %s", recordPath)
	return nil
}
