// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"errors"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/alexcolls/solana-playground/pkg/candymachine"
	"github.com/alexcolls/solana-playground/pkg/ux"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Interactively build a candy machine config",
		Long: `Walks through the candy machine options one question at a time and
produces a complete config. The finished config is either saved to the
config file or logged to the console.`,
		SilenceUsage: true,
		RunE:         createConfig,
	}
}

func createConfig(*cobra.Command, []string) error {
	data, err := candymachine.CreateConfigData(app)
	if err != nil {
		if isUserCancellation(err) {
			ux.Logger.PrintToUser("Cancelled, no config was created.")
			return nil
		}
		return err
	}

	candymachine.PrintSummary(data)

	if err := candymachine.SaveConfigData(app, data); err != nil {
		if isUserCancellation(err) {
			ux.Logger.PrintToUser("Cancelled, the config was not saved.")
			return nil
		}
		return err
	}
	return nil
}

// isUserCancellation reports whether the error came from the operator
// aborting a prompt (ctrl-c or closed stdin) rather than a failure.
func isUserCancellation(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}
