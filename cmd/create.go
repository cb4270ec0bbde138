// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge-cli/pkg/cobrautils"
	"github.com/tokenforge/tokenforge-cli/pkg/constants"
	"github.com/tokenforge/tokenforge-cli/pkg/key"
	"github.com/tokenforge/tokenforge-cli/pkg/scaffold"
	"github.com/tokenforge/tokenforge-cli/pkg/toolchain"
	"github.com/tokenforge/tokenforge-cli/pkg/utils"
	"github.com/tokenforge/tokenforge-cli/pkg/ux"
)

type createFlags struct {
	rpcURL      string
	privateKey  string
	keyFile     string
	quick       bool
	tokenName   string
	tokenSymbol string
	supply      uint64
	skipGit     bool
}

var createArgs createFlags

// tokenforge create
func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [projectName]",
		Short: "Scaffold a Hardhat token project and deploy it",
		Long: `The create command generates a complete Hardhat project for the bundled
ERC-20 token, installs its dependencies, compiles the contract, deploys it
to the configured network and performs a one-shot confirmation read.

With --quick, no project files are generated at all: the embedded compiled
token is deployed directly through the RPC endpoint.`,
		RunE: createProject,
		Args: cobrautils.MaximumNArgs(1),
	}
	cmd.Flags().StringVar(&createArgs.rpcURL, "rpc", "", "deploy through the given rpc endpoint")
	cmd.Flags().StringVar(&createArgs.privateKey, "key", "", "private key to use as contract deployer")
	cmd.Flags().StringVar(&createArgs.keyFile, "key-file", "", "file containing the deployer private key")
	cmd.Flags().BoolVar(&createArgs.quick, "quick", false, "skip scaffolding and deploy the embedded token directly")
	cmd.Flags().StringVar(&createArgs.tokenName, "token-name", constants.DefaultTokenName, "set the token name")
	cmd.Flags().StringVar(&createArgs.tokenSymbol, "symbol", constants.DefaultTokenSymbol, "set the token symbol")
	cmd.Flags().Uint64Var(&createArgs.supply, "supply", constants.DefaultTokenSupply, "set the initial token supply in whole tokens")
	cmd.Flags().BoolVar(&createArgs.skipGit, "skip-git", false, "do not initialize a git repository in the project")
	return cmd
}

func createProject(_ *cobra.Command, args []string) error {
	deployerKey, err := key.Resolve(
		createArgs.privateKey,
		createArgs.keyFile,
		os.Getenv(constants.PrivateKeyEnvVar),
	)
	if err != nil {
		return err
	}
	rpcURL := resolveRPCURL(createArgs.rpcURL)
	networkLabel := resolveNetworkLabel()

	if createArgs.quick {
		return quickDeploy(
			rpcURL,
			networkLabel,
			deployerKey,
			createArgs.tokenName,
			createArgs.tokenSymbol,
			createArgs.supply,
		)
	}

	projectName := ""
	if len(args) == 1 {
		projectName = args[0]
	} else {
		projectName, err = app.Prompt.CaptureString("Project name")
		if err != nil {
			return err
		}
	}

	if err := toolchain.CheckToolchain(); err != nil {
		return err
	}

	project := scaffold.NewProject(projectName, ".", rpcURL, networkLabel)
	project.TokenName = createArgs.tokenName
	project.TokenSymbol = createArgs.tokenSymbol
	project.InitialSupply = createArgs.supply

	if utils.DirectoryExists(project.Dir) {
		nonEmpty, err := utils.NonEmptyDirectory(project.Dir)
		if err != nil {
			return err
		}
		if nonEmpty {
			regenerate, err := app.Prompt.CaptureYesNo(
				fmt.Sprintf("Directory %s already exists and is not empty. Regenerate its files?", project.Dir),
			)
			if err != nil {
				return err
			}
			if !regenerate {
				ux.Logger.PrintToUser("Aborted.")
				return nil
			}
		}
	}

	if err := project.CreateLayout(); err != nil {
		return err
	}
	if err := project.WriteFiles(); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Project scaffolded at %s", project.Dir)

	pipeline := toolchain.NewPipeline(
		toolchain.NewRunner(),
		project.Dir,
		networkLabel,
		deployerKey.PrivKeyHex(),
	)
	ux.Logger.PrintToUser("Installing toolchain dependencies...")
	if err := pipeline.Install(); err != nil {
		return err
	}
	ux.Logger.PrintToUser("Compiling %s...", constants.ContractFileName)
	if err := pipeline.Compile(); err != nil {
		return err
	}
	ux.Logger.PrintToUser("Deploying %s to %s...", project.TokenName, networkLabel)
	if err := pipeline.Deploy(); err != nil {
		return err
	}

	deployment, err := app.LoadDeploymentRecord(project.DeploymentRecordPath())
	if err != nil {
		return err
	}
	if err := deployment.Validate(); err != nil {
		return err
	}
	if _, err := app.SaveDeploymentRecord(deployment); err != nil {
		return err
	}
	ux.Logger.PrintLineSeparator()
	ux.Logger.GreenCheckmarkToUser("%s (%s) deployed to %s", deployment.TokenName, deployment.TokenSymbol, deployment.ContractAddress)
	ux.Logger.PrintToUser("Transaction: %s", deployment.TxHash)
	ux.Logger.PrintToUser("Deployment record: %s", project.DeploymentRecordPath())
	ux.Logger.PrintLineSeparator()

	// confirmation read is best effort, the deployment already succeeded
	if err := pipeline.Monitor(); err != nil {
		ux.Logger.RedXToUser("monitoring step failed: %s", err)
	}

	if !createArgs.skipGit {
		if err := scaffold.InitRepo(project.Dir); err != nil {
			ux.Logger.RedXToUser("git init failed: %s", err)
		}
	}
	return nil
}
