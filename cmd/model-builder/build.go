// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/model-builder/internal/builder"
	"github.com/pdiddy/model-builder/internal/engine"
	"github.com/pdiddy/model-builder/internal/plan"
	"github.com/pdiddy/model-builder/internal/units"
	"github.com/pdiddy/model-builder/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the full model from one whole-building plan",
	Long: `Build reads the story and section tables from the spreadsheet, parses the
shared whole-building plan drawing, extrudes every plan primitive through the
full story stack, and creates the resulting elements through the engine
boundary. Story labels are recovered from element elevations.

Engine calls are recorded into the model database given by --model-db.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	if cfg.PlanPath == "" {
		return fmt.Errorf("plan drawing required: set --plan or the plan config key")
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

	p, err := plan.Open(cfg.PlanPath)
	if err != nil {
		return err
	}

	result, err := b.Run(in, p)
	if err != nil {
		return err
	}
	return reportRejected(result, os.Stdout)
}

// --- shared helpers ---

// reportRejected notes rejected elements on the way out. Rejections are
// local failures, already logged and counted batch by batch, and the
// partial model is still usable, so the command exits zero. Non-zero
// exits are reserved for fatal errors: unreadable inputs, an empty
// story table, a definition-stage status.
func reportRejected(result builder.Result, w io.Writer) error {
	if n := result.Failed(); n > 0 {
		fmt.Fprintf(w, "completed with %d rejected element(s), see batch summaries above\n", n)
	}
	return nil
}

// configFromFlags resolves the run configuration: flag value first, then
// the viper config file / environment, then the built-in default.
func configFromFlags(cmd *cobra.Command) (types.BuildConfig, error) {
	cfg := types.BuildConfig{
		SpreadsheetPath: stringSetting(cmd, "spreadsheet", "spreadsheet"),
		PlanPath:        stringSetting(cmd, "plan", "plan"),
		PlansDir:        stringSetting(cmd, "plans-dir", "plans_dir"),
		Units:           types.UnitSystem(stringSetting(cmd, "units", "units")),
		DeadPattern:     stringSetting(cmd, "dead-pattern", "dead_pattern"),
		LivePattern:     stringSetting(cmd, "live-pattern", "live_pattern"),
		Layers:          types.DefaultLayers(),
	}

	if cmd.Flags().Changed("base-elevation") {
		cfg.BaseElevation, _ = cmd.Flags().GetFloat64("base-elevation")
	} else {
		cfg.BaseElevation = viper.GetFloat64("base_elevation")
	}

	// Layer names are config-file-only overrides.
	if err := viper.UnmarshalKey("layers", &cfg.Layers); err != nil {
		return cfg, fmt.Errorf("parsing layers config: %w", err)
	}

	if cfg.SpreadsheetPath == "" {
		return cfg, fmt.Errorf("spreadsheet required: set --spreadsheet or the spreadsheet config key")
	}
	if cfg.DeadPattern == "" {
		cfg.DeadPattern = "SDL"
	}
	if cfg.LivePattern == "" {
		cfg.LivePattern = "Live"
	}
	return cfg, nil
}

func stringSetting(cmd *cobra.Command, flag, key string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(key)
}

// newBuilder opens the recorder and assembles a Builder around it. The
// returned cleanup closes the recorder.
func newBuilder(cmd *cobra.Command, cfg types.BuildConfig) (*builder.Builder, func(), error) {
	u, err := units.ForSystem(cfg.Units)
	if err != nil {
		return nil, nil, err
	}

	dbPath, _ := cmd.Flags().GetString("model-db")
	rec, err := engine.OpenRecorder(dbPath)
	if err != nil {
		return nil, nil, err
	}

	b := &builder.Builder{
		Modeler: rec,
		Units:   u,
		Config:  cfg,
		Out:     os.Stdout,
	}
	return b, func() { rec.Close() }, nil
}

func colorFunc(cmd *cobra.Command) builder.ColorFunc {
	if seed, _ := cmd.Flags().GetInt64("color-seed"); seed != 0 {
		return builder.RandomColors(seed)
	}
	return builder.PaletteColors()
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("spreadsheet", "", "input .xlsx workbook with story and section tables")
	cmd.Flags().String("units", "US", "unit system: US (ft input, lb-in model) or Metric (m input, N-mm model)")
	cmd.Flags().Float64("base-elevation", 0, "elevation of the lowest story floor, in story input units")
	cmd.Flags().String("model-db", "model.db", "SQLite database recording engine calls")
	cmd.Flags().String("dead-pattern", "", "load pattern for slab superimposed dead load (default SDL)")
	cmd.Flags().String("live-pattern", "", "load pattern for slab live load (default Live)")
	cmd.Flags().Int64("color-seed", 0, "seed for random story colors (0 = fixed palette)")
}

func init() {
	addRunFlags(buildCmd)
	buildCmd.Flags().String("plan", "", "shared whole-building plan drawing (.dxf)")

	rootCmd.AddCommand(buildCmd)
}
