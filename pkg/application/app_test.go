// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tokenforge/tokenforge-cli/pkg/config"
	"github.com/tokenforge/tokenforge-cli/pkg/models"
)

func testApp(t *testing.T) *TokenForge {
	t.Helper()
	app := New()
	app.Setup(t.TempDir(), zerolog.Nop(), config.New(), nil)
	return app
}

func testDeployment() models.Deployment {
	return models.Deployment{
		ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		Deployer:        "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		TxHash:          "0x1111111111111111111111111111111111111111111111111111111111111111",
		Network:         "localhost",
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		TokenName:       "MyToken",
		TokenSymbol:     "MTK",
		InitialSupply:   1_000_000,
	}
}

func TestAppDirs(t *testing.T) {
	app := testApp(t)
	base := app.GetBaseDir()
	require.Equal(t, filepath.Join(base, "logs"), app.GetLogDir())
	require.Equal(t, filepath.Join(base, "deployments"), app.GetDeploymentsDir())
	require.Equal(t, filepath.Join(base, "config.json"), app.GetConfigPath())
}

func TestDeploymentRecordRoundTrip(t *testing.T) {
	app := testApp(t)
	deployment := testDeployment()

	path, err := app.SaveDeploymentRecord(deployment)
	require.NoError(t, err)
	require.FileExists(t, path)

	loaded, err := app.LoadDeploymentRecord(path)
	require.NoError(t, err)
	require.Equal(t, deployment, loaded)
}

func TestWriteDeploymentRecordRejectsInvalid(t *testing.T) {
	app := testApp(t)
	deployment := testDeployment()
	deployment.ContractAddress = "garbage"
	err := app.WriteDeploymentRecord(deployment, filepath.Join(app.GetBaseDir(), "bad.json"))
	require.ErrorIs(t, err, models.ErrInvalidContractAddress)
	require.NoFileExists(t, filepath.Join(app.GetBaseDir(), "bad.json"))
}

func TestListDeploymentRecords(t *testing.T) {
	app := testApp(t)

	// no deployments dir yet
	deployments, err := app.ListDeploymentRecords()
	require.NoError(t, err)
	require.Empty(t, deployments)

	first := testDeployment()
	_, err = app.SaveDeploymentRecord(first)
	require.NoError(t, err)

	second := testDeployment()
	second.TokenSymbol = "FRG"
	second.ContractAddress = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
	_, err = app.SaveDeploymentRecord(second)
	require.NoError(t, err)

	// an unreadable record is skipped, not fatal
	require.NoError(t, os.WriteFile(
		filepath.Join(app.GetDeploymentsDir(), "corrupt.json"),
		[]byte("{"),
		0o644,
	))

	deployments, err = app.ListDeploymentRecords()
	require.NoError(t, err)
	require.Len(t, deployments, 2)
}
