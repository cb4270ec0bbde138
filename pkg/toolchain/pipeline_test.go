// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package toolchain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenforge/tokenforge-cli/pkg/constants"
)

type recordedCall struct {
	dir  string
	env  []string
	bin  string
	args []string
}

type fakeRunner struct {
	calls   []recordedCall
	failOn  string
	failErr error
}

func (r *fakeRunner) Run(dir string, env []string, bin string, args ...string) error {
	call := recordedCall{dir: dir, env: env, bin: bin, args: args}
	r.calls = append(r.calls, call)
	if r.failOn != "" && strings.Contains(bin+" "+strings.Join(args, " "), r.failOn) {
		if r.failErr != nil {
			return r.failErr
		}
		return errors.New("exit status 1")
	}
	return nil
}

func TestPipelineRunsStepsInOrder(t *testing.T) {
	runner := &fakeRunner{}
	p := NewPipeline(runner, "/tmp/proj", "localhost", "deadbeef")
	require.NoError(t, p.Run())
	require.Len(t, runner.calls, 3)

	require.Equal(t, constants.NpmBin, runner.calls[0].bin)
	require.Equal(t, []string{"install"}, runner.calls[0].args)

	require.Equal(t, constants.NpxBin, runner.calls[1].bin)
	require.Equal(t, []string{"hardhat", "compile"}, runner.calls[1].args)

	require.Equal(t, constants.NpxBin, runner.calls[2].bin)
	require.Equal(
		t,
		[]string{"hardhat", "run", "scripts/deploy.js", "--network", "localhost"},
		runner.calls[2].args,
	)

	for _, call := range runner.calls {
		require.Equal(t, "/tmp/proj", call.dir)
		require.Contains(t, call.env, constants.PrivateKeyEnvVar+"=deadbeef")
	}
}

func TestPipelineStopsAtFirstFailure(t *testing.T) {
	stepErr := errors.New("exit status 1")
	runner := &fakeRunner{failOn: "compile", failErr: stepErr}
	p := NewPipeline(runner, "/tmp/proj", "localhost", "deadbeef")
	err := p.Run()
	require.ErrorIs(t, err, stepErr)
	// install and compile ran, deploy must not have been attempted
	require.Len(t, runner.calls, 2)
}

func TestPipelineInstallFailureSkipsEverything(t *testing.T) {
	runner := &fakeRunner{failOn: "install"}
	p := NewPipeline(runner, "/tmp/proj", "localhost", "deadbeef")
	require.Error(t, p.Run())
	require.Len(t, runner.calls, 1)
}

func TestPipelineMonitor(t *testing.T) {
	runner := &fakeRunner{}
	p := NewPipeline(runner, "/tmp/proj", "", "")
	require.NoError(t, p.Monitor())
	require.Len(t, runner.calls, 1)
	require.Equal(
		t,
		[]string{"hardhat", "run", "scripts/monitor.js", "--network", constants.DefaultNetworkLabel},
		runner.calls[0].args,
	)
	// no key, no env entry
	require.Empty(t, runner.calls[0].env)
}

func TestRunnerReportsFailedCommand(t *testing.T) {
	runner := NewRunner()
	err := runner.Run(t.TempDir(), nil, "false")
	require.Error(t, err)
	require.Contains(t, err.Error(), `command "false" failed`)
}
