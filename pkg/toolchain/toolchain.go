// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/tokenforge/tokenforge-cli/pkg/constants"
	"github.com/tokenforge/tokenforge-cli/pkg/utils"
)

// Runner executes one external toolchain command inside a project
// directory. It exists as an interface so the pipeline can be tested
// without a node toolchain installed.
type Runner interface {
	Run(dir string, env []string, bin string, args ...string) error
}

type execRunner struct{}

func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(dir string, env []string, bin string, args ...string) error {
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin = os.Stdin
	_, stderr := utils.SetupRealtimeCLIOutput(cmd, true, true)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf(
			"command %q failed: %w: %s",
			strings.Join(append([]string{bin}, args...), " "),
			err,
			strings.TrimSpace(stderr.String()),
		)
	}
	return nil
}

// CheckToolchain verifies that the node package toolchain is reachable
// before anything is scaffolded or executed.
func CheckToolchain() error {
	for _, bin := range []string{constants.NpmBin, constants.NpxBin} {
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf(
				"%s not found in PATH, install Node.js to scaffold and deploy projects: %w",
				bin,
				err,
			)
		}
	}
	return nil
}
