// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge-cli/pkg/cobrautils"
	"github.com/tokenforge/tokenforge-cli/pkg/constants"
	"github.com/tokenforge/tokenforge-cli/pkg/ux"
)

var settableConfigKeys = []string{
	constants.ConfigRPCURLKey,
	constants.ConfigNetworkLabelKey,
}

// tokenforge config
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify persistent TokenForge defaults",
		Long: `Customize the defaults TokenForge stores in its config file, such as
the RPC endpoint used when --rpc is not given.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())
	return cmd
}

// tokenforge config set
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: fmt.Sprintf("Persist a config value (keys: %s)", strings.Join(settableConfigKeys, ", ")),
		RunE:  setConfigValue,
		Args:  cobrautils.ExactArgs(2),
	}
}

// tokenforge config get
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a persisted config value",
		RunE:  getConfigValue,
		Args:  cobrautils.ExactArgs(1),
	}
}

func validateConfigKey(key string) error {
	for _, settable := range settableConfigKeys {
		if key == settable {
			return nil
		}
	}
	return fmt.Errorf("unknown config key %q, expected one of %s", key, strings.Join(settableConfigKeys, ", "))
}

func setConfigValue(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := validateConfigKey(key); err != nil {
		return err
	}
	if err := app.Conf.SetConfigValue(key, value); err != nil {
		return fmt.Errorf("failed saving config: %w", err)
	}
	ux.Logger.GreenCheckmarkToUser("%s set to %s in %s", key, value, app.Conf.GetConfigPath())
	return nil
}

func getConfigValue(_ *cobra.Command, args []string) error {
	key := args[0]
	if err := validateConfigKey(key); err != nil {
		return err
	}
	if !app.Conf.ConfigValueIsSet(key) {
		ux.Logger.PrintToUser("%s is not set", key)
		return nil
	}
	ux.Logger.PrintToUser("%s", app.Conf.GetConfigStringValue(key))
	return nil
}
