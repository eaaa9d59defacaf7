// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the coinage CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the coinage CLI.
var rootCmd = &cobra.Command{
	Use:   "coinage",
	Short: "Watch Twitter for fresh -ussy coinages",
	Long: `coinage queries the Twitter recent-search API for new coinages built from
single-consonant stems and the suffix "ussy", resolves each hit's author,
and prints one attestation per post for lexical-innovation fieldwork.

Credentials come from the environment (see .secrets); runtime settings come
from flags or an optional coinage.yaml config file.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./coinage.yaml or ~/.config/coinage/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("coinage")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "coinage"))
		}
	}

	viper.SetEnvPrefix("COINAGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
