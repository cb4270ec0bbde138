// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import "errors"

var (
	ErrInvalidContractAddress = errors.New("deployment record contains an invalid contract address")
	ErrInvalidDeployerAddress = errors.New("deployment record contains an invalid deployer address")
	ErrMissingNetworkLabel    = errors.New("deployment record is missing the network label")
)
