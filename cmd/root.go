// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge-cli/pkg/application"
	"github.com/tokenforge/tokenforge-cli/pkg/cobrautils"
	"github.com/tokenforge/tokenforge-cli/pkg/config"
	"github.com/tokenforge/tokenforge-cli/pkg/constants"
	"github.com/tokenforge/tokenforge-cli/pkg/prompts"
	"github.com/tokenforge/tokenforge-cli/pkg/utils"
	"github.com/tokenforge/tokenforge-cli/pkg/ux"
)

var (
	app *application.TokenForge

	baseDir  string
	logLevel string

	Version = ""
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "tokenforge",
		Long: `TokenForge is a command line tool for launching ERC-20 tokens. It
scaffolds a ready-to-run Hardhat project, drives the toolchain to compile
and deploy the token, and can also deploy the bundled token contract
directly through a JSON-RPC endpoint without scaffolding anything.

To get started, run tokenforge create myToken.`,
		PersistentPreRunE: setupEnv,
		Version:           Version,
	}
	cobrautils.ConfigureRootCmd(rootCmd)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level for the application log file")

	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newBalanceCmd())
	rootCmd.AddCommand(newFundCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func setupEnv(*cobra.Command, []string) error {
	baseDir = utils.UserHomePath(constants.BaseDirName)
	logDir := filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logDir, constants.DefaultPerms755); err != nil {
		return fmt.Errorf("failed creating log directory: %w", err)
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	logFile, err := os.OpenFile(
		filepath.Join(logDir, constants.LogFileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		constants.WriteReadReadPerms,
	)
	if err != nil {
		return fmt.Errorf("failed opening log file: %w", err)
	}
	log := zerolog.New(logFile).Level(level).With().Timestamp().Logger()

	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)

	conf := config.New()
	conf.SetConfig(log, filepath.Join(baseDir, constants.ConfigFileName))

	app = application.New()
	app.Setup(baseDir, log, conf, prompts.NewPrompter())
	return nil
}

// resolveRPCURL picks the RPC endpoint with flag > environment > config
// file > default precedence.
func resolveRPCURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if fromEnv := os.Getenv(constants.RPCURLEnvVar); fromEnv != "" {
		return fromEnv
	}
	if fromConf := app.Conf.GetConfigStringValue(constants.ConfigRPCURLKey); fromConf != "" {
		return fromConf
	}
	return constants.DefaultRPCURL
}

func resolveNetworkLabel() string {
	if fromConf := app.Conf.GetConfigStringValue(constants.ConfigNetworkLabelKey); fromConf != "" {
		return fromConf
	}
	return constants.DefaultNetworkLabel
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobrautils.HandleErrors(NewRootCmd().Execute())
}
