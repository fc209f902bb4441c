// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexcolls/solana-playground/pkg/ux"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "path",
		Short:        "Print the path of the candy machine config file",
		SilenceUsage: true,
		RunE:         printPath,
	}
}

func printPath(*cobra.Command, []string) error {
	path := app.GetConfigDataPath()
	ux.Logger.PrintToUser("%s", path)
	if !app.ConfigDataExists() {
		ux.Logger.PrintToUser("No config file exists yet, run `sugar config create` to make one.")
		return nil
	}
	data, err := app.LoadConfigData()
	if err != nil {
		return fmt.Errorf("config file exists but could not be read: %w", err)
	}
	ux.Logger.GreenCheckmarkToUser("Found a config for %s items.", ux.FormatCount(data.Number))
	return nil
}
