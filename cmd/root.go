// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexcolls/solana-playground/cmd/configcmd"
	"github.com/alexcolls/solana-playground/pkg/application"
	"github.com/alexcolls/solana-playground/pkg/config"
	"github.com/alexcolls/solana-playground/pkg/constants"
	"github.com/alexcolls/solana-playground/pkg/prompts"
	"github.com/alexcolls/solana-playground/pkg/solanaclient"
	"github.com/alexcolls/solana-playground/pkg/ux"
)

var (
	app *application.Sugar

	Version = "0.1.0"

	cfgFile        string
	logLevel       string
	rpcURL         string
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "sugar",
		Long: `Sugar - Candy Machine toolkit for Solana NFT drops.

Sugar walks you through preparing a candy machine deploy, starting with
an interactive config maker that produces the config.json the rest of
the tooling consumes.

QUICK START:

  # Create a candy machine config interactively
  sugar config create

  # Show where the config file lives
  sugar config path

For detailed command help, use: sugar <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sugar/cli.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level for the application log file")
	rootCmd.PersistentFlags().StringVar(&rpcURL, "rpc-url", "", "Solana RPC endpoint used for on-chain account checks")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if interactive input is required (also enabled when stdin is not a TTY or CI=1)")

	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(_ *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	cf := config.New()

	// If --non-interactive is set, propagate to env so IsInteractive() sees it.
	// TTY detection still works automatically without the flag.
	if nonInteractive {
		_ = os.Setenv(prompts.EnvNonInteractive, "1")
	}
	prompter := prompts.NewPrompterForMode(nonInteractive)

	initConfig(log)

	endpoint := rpcURL
	if endpoint == "" {
		if cf.ConfigValueIsSet(config.RPCURLKey) {
			endpoint = cf.GetConfigStringValue(config.RPCURLKey)
		} else {
			endpoint = constants.DefaultRPCEndpoint
		}
	}
	solana := solanaclient.New(endpoint)

	app.Setup(baseDir, log, cf, prompter, solana)
	return nil
}

func setupEnv() (string, error) {
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	if err := os.MkdirAll(baseDir, constants.DefaultPerms755); err != nil {
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (*zap.Logger, error) {
	logDir := filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logDir, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(level)
	logConfig.OutputPaths = []string{filepath.Join(logDir, constants.LogFileName)}
	logConfig.ErrorOutputPaths = []string{filepath.Join(logDir, constants.LogFileName)}
	log, err := logConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}

	// User output goes to stdout, logs go to the log file
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in the CLI config file and matching env variables.
// Priority: flags > env vars > config file > defaults
func initConfig(log *zap.Logger) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(filepath.Join(home, constants.BaseDirName))
		viper.SetConfigType("json")
		viper.SetConfigName(strings.TrimSuffix(constants.CLIConfigFileName, ".json"))
	}

	viper.SetEnvPrefix("SUGAR")
	viper.AutomaticEnv()

	// No config file is normal, most users don't have one
	if err := viper.ReadInConfig(); err == nil {
		log.Sugar().Debugw("using config file", "config-file", viper.ConfigFileUsed())
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
