// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/model-builder/internal/builder"
)

var levelsCmd = &cobra.Command{
	Use:   "build-levels",
	Short: "Build the model from one plan drawing per story",
	Long: `Build-levels reads the story and section tables from the spreadsheet, then
looks for one plan drawing per story at <plans-dir>/<level>.dxf and extrudes
each drawing into its own story band. Stories without a drawing are skipped
with a warning; an unreadable drawing aborts the run.`,
	RunE: runBuildLevels,
}

func runBuildLevels(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	if cfg.PlansDir == "" {
		return fmt.Errorf("plans directory required: set --plans-dir or the plans_dir config key")
	}

	b, cleanup, err := newBuilder(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	in, err := builder.LoadWorkbook(cfg.SpreadsheetPath, colorFunc(cmd))
	if err != nil {
		return err
	}

	result, err := b.RunLevels(in)
	if err != nil {
		return err
	}
	return reportRejected(result, os.Stdout)
}

func init() {
	addRunFlags(levelsCmd)
	levelsCmd.Flags().String("plans-dir", "", "directory of per-story plan drawings named <level>.dxf")

	rootCmd.AddCommand(levelsCmd)
}
