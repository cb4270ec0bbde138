// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tokenforge/tokenforge-cli/pkg/config"
	"github.com/tokenforge/tokenforge-cli/pkg/constants"
	"github.com/tokenforge/tokenforge-cli/pkg/models"
	"github.com/tokenforge/tokenforge-cli/pkg/prompts"
)

type TokenForge struct {
	Log     zerolog.Logger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
}

func New() *TokenForge {
	return &TokenForge{}
}

func (app *TokenForge) Setup(baseDir string, log zerolog.Logger, conf *config.Config, prompt prompts.Prompter) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
}

func (app *TokenForge) GetBaseDir() string {
	return app.baseDir
}

func (app *TokenForge) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *TokenForge) GetLogPath() string {
	return filepath.Join(app.GetLogDir(), constants.LogFileName)
}

func (app *TokenForge) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.ConfigFileName)
}

func (app *TokenForge) GetDeploymentsDir() string {
	return filepath.Join(app.baseDir, constants.DeploymentsDirName)
}

// WriteDeploymentRecord validates and serializes a deployment record to
// the given path.
func (app *TokenForge) WriteDeploymentRecord(deployment models.Deployment, path string) error {
	if err := deployment.Validate(); err != nil {
		return err
	}
	jsonBytes, err := json.MarshalIndent(deployment, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(jsonBytes, '\n'), constants.WriteReadReadPerms)
}

// SaveDeploymentRecord writes a deployment record into the tool's
// deployments directory and returns the file path.
func (app *TokenForge) SaveDeploymentRecord(deployment models.Deployment) (string, error) {
	if err := os.MkdirAll(app.GetDeploymentsDir(), constants.DefaultPerms755); err != nil {
		return "", fmt.Errorf("failed creating deployments dir: %w", err)
	}
	name := fmt.Sprintf(
		"%s-%s.json",
		strings.ToLower(deployment.TokenSymbol),
		time.Now().UTC().Format("20060102-150405"),
	)
	path := filepath.Join(app.GetDeploymentsDir(), name)
	return path, app.WriteDeploymentRecord(deployment, path)
}

func (app *TokenForge) LoadDeploymentRecord(path string) (models.Deployment, error) {
	jsonBytes, err := os.ReadFile(path)
	if err != nil {
		return models.Deployment{}, err
	}
	var deployment models.Deployment
	err = json.Unmarshal(jsonBytes, &deployment)
	return deployment, err
}

// ListDeploymentRecords loads every record found in the deployments
// directory. A missing directory yields an empty list.
func (app *TokenForge) ListDeploymentRecords() ([]models.Deployment, error) {
	entries, err := os.ReadDir(app.GetDeploymentsDir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	deployments := []models.Deployment{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		deployment, err := app.LoadDeploymentRecord(filepath.Join(app.GetDeploymentsDir(), entry.Name()))
		if err != nil {
			app.Log.Warn().Str("file", entry.Name()).Err(err).Msg("skipping unreadable deployment record")
			continue
		}
		deployments = append(deployments, deployment)
	}
	return deployments, nil
}
