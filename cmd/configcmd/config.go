// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexcolls/solana-playground/pkg/application"
)

var app *application.Sugar

func NewCmd(injectedApp *application.Sugar) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the candy machine config file",
		Long: `Create and inspect the candy machine configuration file that the
rest of the Sugar tooling consumes.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newPathCmd())

	return cmd
}
