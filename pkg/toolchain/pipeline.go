// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package toolchain

import (
	"github.com/tokenforge/tokenforge-cli/pkg/constants"
)

// Pipeline drives the external toolchain through the fixed
// install -> compile -> deploy sequence. Each step blocks until the
// subprocess exits, and the first non-zero exit aborts the sequence.
type Pipeline struct {
	runner       Runner
	projectDir   string
	networkLabel string
	env          []string
}

func NewPipeline(runner Runner, projectDir string, networkLabel string, deployerKeyHex string) *Pipeline {
	if networkLabel == "" {
		networkLabel = constants.DefaultNetworkLabel
	}
	env := []string{}
	if deployerKeyHex != "" {
		env = append(env, constants.PrivateKeyEnvVar+"="+deployerKeyHex)
	}
	return &Pipeline{
		runner:       runner,
		projectDir:   projectDir,
		networkLabel: networkLabel,
		env:          env,
	}
}

func (p *Pipeline) Install() error {
	return p.runner.Run(p.projectDir, p.env, constants.NpmBin, "install")
}

func (p *Pipeline) Compile() error {
	return p.runner.Run(p.projectDir, p.env, constants.NpxBin, "hardhat", "compile")
}

func (p *Pipeline) Deploy() error {
	return p.runner.Run(
		p.projectDir,
		p.env,
		constants.NpxBin,
		"hardhat", "run", "scripts/"+constants.DeployScriptFileName,
		"--network", p.networkLabel,
	)
}

// Monitor runs the generated monitoring script. Callers treat its failure
// as non-fatal.
func (p *Pipeline) Monitor() error {
	return p.runner.Run(
		p.projectDir,
		p.env,
		constants.NpxBin,
		"hardhat", "run", "scripts/"+constants.MonitorScriptFileName,
		"--network", p.networkLabel,
	)
}

// Run executes install, compile and deploy in order, stopping at the
// first failure.
func (p *Pipeline) Run() error {
	for _, step := range []func() error{p.Install, p.Compile, p.Deploy} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
