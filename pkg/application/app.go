// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/alexcolls/solana-playground/pkg/config"
	"github.com/alexcolls/solana-playground/pkg/constants"
	"github.com/alexcolls/solana-playground/pkg/models"
	"github.com/alexcolls/solana-playground/pkg/prompts"
	"github.com/alexcolls/solana-playground/pkg/solanaclient"
	"github.com/alexcolls/solana-playground/pkg/utils"
)

// Sugar carries everything a command needs: logger, CLI configuration,
// the prompt collaborator and the network collaborator. Commands receive
// it injected, tests swap the collaborators for mocks.
type Sugar struct {
	Log     *zap.SugaredLogger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
	Solana  solanaclient.Client
}

func New() *Sugar {
	return &Sugar{}
}

func (app *Sugar) Setup(
	baseDir string,
	log *zap.Logger,
	conf *config.Config,
	prompt prompts.Prompter,
	solana solanaclient.Client,
) {
	app.baseDir = baseDir
	app.Log = log.Sugar()
	app.Conf = conf
	app.Prompt = prompt
	app.Solana = solana
}

func (app *Sugar) GetBaseDir() string {
	return app.baseDir
}

func (app *Sugar) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

// GetConfigDataPath is the well-known location of the candy machine
// config document. The CLI config file may override it.
func (app *Sugar) GetConfigDataPath() string {
	if app.Conf != nil && app.Conf.ConfigValueIsSet(config.ConfigDataPathKey) {
		return app.Conf.GetConfigStringValue(config.ConfigDataPathKey)
	}
	return filepath.Join(app.baseDir, constants.ConfigDataFileName)
}

func (app *Sugar) ConfigDataExists() bool {
	return utils.FileExists(app.GetConfigDataPath())
}

// WriteConfigData persists the serialized document. The write goes
// through a temp file in the target directory followed by a rename, so a
// crash mid-write never leaves a partial config behind.
func (app *Sugar) WriteConfigData(data []byte) error {
	path := app.GetConfigDataPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, constants.WriteReadReadPerms); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func (app *Sugar) LoadConfigData() (*models.ConfigData, error) {
	jsonBytes, err := os.ReadFile(app.GetConfigDataPath())
	if err != nil {
		return nil, err
	}

	var data models.ConfigData
	if err := json.Unmarshal(jsonBytes, &data); err != nil {
		return nil, fmt.Errorf("failed to parse config data: %w", err)
	}
	return &data, nil
}
