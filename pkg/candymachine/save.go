// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package candymachine

import (
	"fmt"

	"github.com/alexcolls/solana-playground/pkg/application"
	"github.com/alexcolls/solana-playground/pkg/models"
	"github.com/alexcolls/solana-playground/pkg/ux"
)

const (
	overwriteOption = "Overwrite the file"
	logOption       = "Log to console"
)

// SaveConfigData persists the finished config, asking what to do when a
// config file already exists. When the operator chooses to log instead,
// nothing on disk changes and the exact file bytes go to the console.
func SaveConfigData(app *application.Sugar, data *models.ConfigData) error {
	pretty, err := data.Pretty()
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	ux.Logger.PrintToUser("")
	ux.Logger.PrintToUser("[2/2] 📝 Saving the config file")
	ux.Logger.PrintToUser("")

	path := app.GetConfigDataPath()
	saveFile := true
	if app.ConfigDataExists() {
		choice, err := app.Prompt.CaptureList(
			fmt.Sprintf(
				"The file %q already exists. Do you want to overwrite it with the new config or log the new config to the console?",
				path,
			),
			[]string{overwriteOption, logOption},
		)
		if err != nil {
			return err
		}
		saveFile = choice == overwriteOption
	}

	if !saveFile {
		ux.Logger.PrintToUser("Logging config to console:")
		ux.Logger.PrintToUser("")
		ux.Logger.PrintToUser("%s", string(pretty))
		return nil
	}

	ux.Logger.PrintToUser("Saving config to file: %q", path)
	if err := app.WriteConfigData(pretty); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", path, err)
	}
	ux.Logger.GreenCheckmarkToUser("Successfully generated the config file.")
	return nil
}
