package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rootstock-community/create-rsk-dapp/configs"
	"github.com/rootstock-community/create-rsk-dapp/internal/deploy"
	"github.com/rootstock-community/create-rsk-dapp/internal/logger"
	"github.com/rootstock-community/create-rsk-dapp/internal/project"
)

const appName = "create-rsk-dapp"

// version is overridden at build time with -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     appName,
	Short:   "Scaffold and deploy full-stack Rootstock dapp projects",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Initialize(slog.LevelWarn)

		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if execPath, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(execPath))
		}
		viper.AddConfigPath(".")

		// The config file only provides defaults; flags cover everything.
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				slog.Debug("no config file found, relying on flags and defaults")
			} else {
				const errMsg = "error reading config file"
				slog.With("err", err.Error()).Error(errMsg)
				return errors.Join(err, errors.New(errMsg))
			}
		} else {
			slog.With("config_file", viper.ConfigFileUsed()).Debug("config file loaded")
		}

		if err := viper.Unmarshal(&configs.Values); err != nil {
			const errMsg = "unable to decode application config"
			slog.With("err", err.Error()).Error(errMsg)
			return errors.Join(err, errors.New(errMsg))
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation prints usage and exits 0.
		return cmd.Help()
	},
}

func main() {
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(project.CMD)
	rootCmd.AddCommand(deploy.CMD)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
