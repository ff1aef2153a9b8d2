// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/model-builder/internal/builder"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Parse the spreadsheet and print the tables as YAML",
	Long: `Tables reads every input table from the spreadsheet — stories (reordered
bottom-up), materials, and the section property tables — and prints them as
YAML. Useful for checking the workbook before a build run; no engine calls
are made.`,
	RunE: runTables,
}

func runTables(cmd *cobra.Command, args []string) error {
	path := stringSetting(cmd, "spreadsheet", "spreadsheet")
	if path == "" {
		return fmt.Errorf("spreadsheet required: set --spreadsheet or the spreadsheet config key")
	}

	in, err := builder.LoadWorkbook(path, colorFunc(cmd))
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(in)
}

func init() {
	tablesCmd.Flags().String("spreadsheet", "", "input .xlsx workbook with story and section tables")
	tablesCmd.Flags().Int64("color-seed", 0, "seed for random story colors (0 = fixed palette)")

	rootCmd.AddCommand(tablesCmd)
}
