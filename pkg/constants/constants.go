// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

import "time"

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".tokenforge"
	LogDir      = "logs"
	LogFileName = "tokenforge.log"

	DeploymentsDirName = "deployments"
	ConfigFileName     = "config.json"

	DefaultProjectName = "my-token"
	ContractsDirName   = "contracts"
	ScriptsDirName     = "scripts"

	PackageJSONFileName   = "package.json"
	HardhatConfigFileName = "hardhat.config.js"
	ContractFileName      = "Token.sol"
	DeployScriptFileName  = "deploy.js"
	MonitorScriptFileName = "monitor.js"
	EnvExampleFileName    = ".env.example"
	GitIgnoreFileName     = ".gitignore"
	DeploymentFileName    = "deployment.json"

	NpmBin = "npm"
	NpxBin = "npx"

	DefaultRPCURL       = "http://127.0.0.1:8545"
	DefaultNetworkLabel = "localhost"

	RPCURLEnvVar          = "TOKENFORGE_RPC_URL"
	PrivateKeyEnvVar      = "DEPLOYER_PRIVATE_KEY"
	PrivateKeyPlaceholder = "your_private_key_here"

	DefaultTokenName   = "MyToken"
	DefaultTokenSymbol = "MTK"
	DefaultTokenSupply = uint64(1_000_000)

	ConfigRPCURLKey       = "rpc-url"
	ConfigNetworkLabelKey = "network-label"

	APIRequestTimeout      = 30 * time.Second
	APIRequestLargeTimeout = 2 * time.Minute
)
