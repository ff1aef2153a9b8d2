// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the model-builder CLI.
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

// rootCmd is the base command for the model-builder CLI.
var rootCmd = &cobra.Command{
	Use:   "model-builder",
	Short: "Build a 3D structural-analysis model from a spreadsheet and plan drawings",
	Long: `model-builder converts a building's structural layout — a spreadsheet of
per-story section properties plus 2D CAD plan drawings — into a populated 3D
structural-analysis model: stories at correct elevations, material and section
definitions, and column/wall/beam/slab elements extruded through every story.

Two workflows are available: build merges one shared whole-building plan with
the full section table; build-levels reads one plan drawing per story. Both
record every engine call into a local model database that inspect can
summarize.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./model-builder.yaml or ~/.config/model-builder/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("model-builder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "model-builder"))
		}
	}

	viper.SetEnvPrefix("MODEL_BUILDER")
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
