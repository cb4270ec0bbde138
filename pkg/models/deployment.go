// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tokenforge/tokenforge-cli/pkg/constants"
)

// Deployment is the record written to disk after a successful contract
// deployment. Timestamp is RFC 3339.
type Deployment struct {
	ContractAddress string `json:"contractAddress"`
	Deployer        string `json:"deployer"`
	TxHash          string `json:"txHash"`
	Network         string `json:"network"`
	Timestamp       string `json:"timestamp"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	InitialSupply   uint64 `json:"initialSupply"`
}

func NewDeployment(
	contractAddress common.Address,
	deployer common.Address,
	txHash common.Hash,
	network string,
	tokenName string,
	tokenSymbol string,
	initialSupply uint64,
) Deployment {
	if network == "" {
		network = constants.DefaultNetworkLabel
	}
	return Deployment{
		ContractAddress: contractAddress.Hex(),
		Deployer:        deployer.Hex(),
		TxHash:          txHash.Hex(),
		Network:         network,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		TokenName:       tokenName,
		TokenSymbol:     tokenSymbol,
		InitialSupply:   initialSupply,
	}
}

func (d Deployment) Validate() error {
	if !common.IsHexAddress(d.ContractAddress) {
		return ErrInvalidContractAddress
	}
	if !common.IsHexAddress(d.Deployer) {
		return ErrInvalidDeployerAddress
	}
	if _, err := time.Parse(time.RFC3339, d.Timestamp); err != nil {
		return err
	}
	if d.Network == "" {
		return ErrMissingNetworkLabel
	}
	return nil
}
