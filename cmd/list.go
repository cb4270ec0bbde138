// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge-cli/pkg/cobrautils"
	"github.com/tokenforge/tokenforge-cli/pkg/ux"
)

// tokenforge list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded token deployments",
		RunE:  listDeployments,
		Args:  cobrautils.ExactArgs(0),
	}
}

func listDeployments(_ *cobra.Command, _ []string) error {
	deployments, err := app.ListDeploymentRecords()
	if err != nil {
		return err
	}
	if len(deployments) == 0 {
		ux.Logger.PrintToUser("No deployments recorded yet. Run tokenforge create to deploy a token.")
		return nil
	}
	t := ux.DefaultTable("Deployments", table.Row{"Token", "Symbol", "Address", "Network", "Deployed"})
	for _, deployment := range deployments {
		t.AppendRow(table.Row{
			deployment.TokenName,
			deployment.TokenSymbol,
			deployment.ContractAddress,
			deployment.Network,
			deployment.Timestamp,
		})
	}
	ux.Logger.PrintToUser("%s", t.Render())
	return nil
}
