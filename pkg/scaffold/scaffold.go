// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/tokenforge/tokenforge-cli/pkg/constants"
)

//go:embed templates
var templates embed.FS

// Project holds everything the scaffold templates are parameterized on.
// Identical Project values always produce byte-identical files.
type Project struct {
	Name          string
	Dir           string
	RPCURL        string
	NetworkLabel  string
	TokenName     string
	TokenSymbol   string
	InitialSupply uint64
}

type projectFile struct {
	template string
	relPath  []string
}

var projectFiles = []projectFile{
	{"package.json.tmpl", []string{constants.PackageJSONFileName}},
	{"hardhat.config.js.tmpl", []string{constants.HardhatConfigFileName}},
	{"Token.sol.tmpl", []string{constants.ContractsDirName, constants.ContractFileName}},
	{"deploy.js.tmpl", []string{constants.ScriptsDirName, constants.DeployScriptFileName}},
	{"monitor.js.tmpl", []string{constants.ScriptsDirName, constants.MonitorScriptFileName}},
	{"env.example.tmpl", []string{constants.EnvExampleFileName}},
	{"gitignore.tmpl", []string{constants.GitIgnoreFileName}},
}

func NewProject(name string, parentDir string, rpcURL string, networkLabel string) Project {
	if name == "" {
		name = constants.DefaultProjectName
	}
	if rpcURL == "" {
		rpcURL = constants.DefaultRPCURL
	}
	if networkLabel == "" {
		networkLabel = constants.DefaultNetworkLabel
	}
	return Project{
		Name:          name,
		Dir:           filepath.Join(parentDir, name),
		RPCURL:        rpcURL,
		NetworkLabel:  networkLabel,
		TokenName:     constants.DefaultTokenName,
		TokenSymbol:   constants.DefaultTokenSymbol,
		InitialSupply: constants.DefaultTokenSupply,
	}
}

// CreateLayout creates the project directory and its subdirectories.
// Creation is idempotent: an already existing layout is not an error.
func (p Project) CreateLayout() error {
	for _, dir := range []string{
		p.Dir,
		filepath.Join(p.Dir, constants.ContractsDirName),
		filepath.Join(p.Dir, constants.ScriptsDirName),
	} {
		if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
			return fmt.Errorf("failed creating directory %s: %w", dir, err)
		}
	}
	return nil
}

// WriteFiles renders every project template into the project directory,
// overwriting whatever is already there.
func (p Project) WriteFiles() error {
	for _, f := range projectFiles {
		contents, err := p.Render(f.template)
		if err != nil {
			return err
		}
		dst := filepath.Join(append([]string{p.Dir}, f.relPath...)...)
		if err := os.WriteFile(dst, contents, constants.WriteReadReadPerms); err != nil {
			return fmt.Errorf("failed writing %s: %w", dst, err)
		}
	}
	return nil
}

// Render renders one named project template with the project parameters.
func (p Project) Render(templateName string) ([]byte, error) {
	raw, err := templates.ReadFile("templates/" + templateName)
	if err != nil {
		return nil, fmt.Errorf("unknown project template %s: %w", templateName, err)
	}
	tmpl, err := template.New(templateName).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed parsing template %s: %w", templateName, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("failed rendering template %s: %w", templateName, err)
	}
	return buf.Bytes(), nil
}

func (p Project) DeploymentRecordPath() string {
	return filepath.Join(p.Dir, constants.DeploymentFileName)
}
