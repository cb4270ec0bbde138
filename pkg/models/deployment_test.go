// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/tokenforge/tokenforge-cli/pkg/constants"
)

func TestNewDeployment(t *testing.T) {
	contractAddr := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	deployer := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	txHash := common.HexToHash("0x01")

	d := NewDeployment(contractAddr, deployer, txHash, "", "MyToken", "MTK", 1_000_000)
	require.NoError(t, d.Validate())
	require.Equal(t, contractAddr.Hex(), d.ContractAddress)
	require.Equal(t, deployer.Hex(), d.Deployer)
	require.Equal(t, constants.DefaultNetworkLabel, d.Network)

	ts, err := time.Parse(time.RFC3339, d.Timestamp)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestDeploymentValidate(t *testing.T) {
	valid := Deployment{
		ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		Deployer:        "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		Network:         "localhost",
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	require.NoError(t, valid.Validate())

	badContract := valid
	badContract.ContractAddress = "not-an-address"
	require.ErrorIs(t, badContract.Validate(), ErrInvalidContractAddress)

	badDeployer := valid
	badDeployer.Deployer = "0x123"
	require.ErrorIs(t, badDeployer.Validate(), ErrInvalidDeployerAddress)

	badTimestamp := valid
	badTimestamp.Timestamp = "yesterday"
	require.Error(t, badTimestamp.Validate())

	noNetwork := valid
	noNetwork.Network = ""
	require.ErrorIs(t, noNetwork.Validate(), ErrMissingNetworkLabel)
}
