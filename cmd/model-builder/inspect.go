// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/model-builder/internal/engine"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize the runs recorded in a model database",
	Long: `Inspect lists every build run recorded in the model database with its
story, material, and element counts. Opening the database for inspection
does not add a run.`,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("model-db")

	rec, err := engine.OpenRecorder(dbPath)
	if err != nil {
		return err
	}
	defer rec.Close()

	runs, err := rec.Runs()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %5s  %8s  %10s  %7s  %6s  %6s\n",
		"Run", "Created", "Units", "Stories", "Materials", "Frames", "Areas", "Loads")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %5d  %8d  %10d  %7d  %6d  %6d\n",
			r.ID, r.CreatedAt, r.UnitCode, r.Stories, r.Materials, r.Frames, r.Areas, r.Loads)
	}
	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(runs))
	return nil
}

func init() {
	inspectCmd.Flags().String("model-db", "model.db", "SQLite database recording engine calls")

	rootCmd.AddCommand(inspectCmd)
}
