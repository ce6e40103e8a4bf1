package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gduarte/massing/pkg/errors"
	"github.com/gduarte/massing/pkg/loader"
	"github.com/gduarte/massing/pkg/pipeline"
	"github.com/gduarte/massing/pkg/settings"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	module      float64 // construction module in cm (0 = persisted default)
	height      float64 // floor height in cm (0 = persisted default)
	tolerance   float64 // optimizer area tolerance (0 = persisted default)
	passes      int     // optimization passes (0 = persisted default)
	noOptimize  bool    // skip the wall-sharing pass
	formats     string  // comma-separated export formats
	output      string  // output file (single format) or base path (multiple)
	noCache     bool    // disable result caching
	refresh     bool    // recompute even if cached
	interactive bool    // prompt for module and height before solving
}

// solveCommand creates the solve command, the main entry point of the CLI.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{}

	cmd := &cobra.Command{
		Use:   "solve <program.csv|program.xlsx>",
		Short: "Turn a room program into module-aligned footprints",
		Long: `Turn a room program into module-aligned footprints.

The program file lists one room per row: a free-text name and a target area
in square meters. Each room is classified by name, given a footprint that
matches its type's proportion conventions, snapped to the construction
module, and then nudged so rooms share wall lengths. Circulation rows are
counted but not massed.

Results are cached locally for faster subsequent runs.

Examples:
  massing solve rooms.csv
  massing solve rooms.xlsx -f json,html -o plan
  massing solve rooms.csv --module 120 --no-optimize`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.module, "module", 0, "construction module in cm (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "floor height in cm (default from config)")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", 0, "max area drift per room during optimization (default from config)")
	cmd.Flags().IntVar(&opts.passes, "passes", 0, "optimization passes (default from config)")
	cmd.Flags().BoolVar(&opts.noOptimize, "no-optimize", false, "keep raw solver dimensions, skip wall sharing")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "export format(s): json, csv, html (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for module and floor height")

	return cmd
}

// runSolve loads the program, runs the pipeline, and presents the results.
func (c *CLI) runSolve(ctx context.Context, input string, opts *solveOpts) error {
	logger := loggerFromContext(ctx)

	popts, err := c.buildOptions(opts)
	if err != nil {
		return err
	}

	logger.Infof("Loading %s", input)
	track := newProgress(logger)
	prog, err := loader.Load(input)
	if err != nil {
		return err
	}
	printWarnings(prog.Warnings)
	if len(prog.Rooms) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no valid rooms in %s", input)
	}
	popts.Rooms = prog.Rooms

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, fmt.Sprintf("Solving %d rooms...", len(prog.Rooms)))
	spinner.Start()

	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError("Solve failed")
		return err
	}
	spinner.Stop()
	track.done(fmt.Sprintf("Solved %d rooms", len(result.Solved.Records)))

	solved := result.Solved
	printWarnings(solved.Warnings)
	printRecordsTable(solved.Records)
	printBatchStats(solved.Batch, result.CacheInfo.SolveHit)
	if solved.Dropped > 0 {
		printDetail("%d circulation room(s) excluded from massing", solved.Dropped)
	}
	printNewline()

	return writeArtifacts(result.Artifacts, parseFormats(opts.formats), input, opts.output)
}

// buildOptions merges persisted defaults with explicit flags into pipeline
// options. Flags win; the interactive prompt wins over both.
func (c *CLI) buildOptions(opts *solveOpts) (pipeline.Options, error) {
	store, err := settings.NewStore("")
	if err != nil {
		return pipeline.Options{}, err
	}
	saved, err := store.Load()
	if err != nil {
		c.Logger.Warnf("Ignoring settings file: %v", err)
		saved = settings.Default()
	}

	popts := pipeline.Options{
		ModuleCM:      saved.ModuleCM,
		HeightCM:      saved.HeightCM,
		AreaTolerance: saved.AreaTolerance,
		MaxPasses:     saved.Passes,
		SkipOptimize:  opts.noOptimize,
		Refresh:       opts.refresh,
		Formats:       parseFormats(opts.formats),
		Logger:        c.Logger,
	}
	if opts.module != 0 {
		popts.ModuleCM = opts.module
	}
	if opts.height != 0 {
		popts.HeightCM = opts.height
	}
	if opts.tolerance != 0 {
		popts.AreaTolerance = opts.tolerance
	}
	if opts.passes != 0 {
		popts.MaxPasses = opts.passes
	}

	if opts.interactive {
		confirmed, err := runSetupPrompt(popts.ModuleCM, popts.HeightCM)
		if err != nil {
			return pipeline.Options{}, err
		}
		if confirmed == nil {
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "setup cancelled")
		}
		popts.ModuleCM = confirmed.ModuleCM
		popts.HeightCM = confirmed.HeightCM
	}

	// No -f flag means terminal output only, but the pipeline needs at
	// least one format for its artifact stage.
	if len(popts.Formats) == 0 {
		popts.Formats = []string{pipeline.FormatJSON}
	}
	return popts, nil
}

// writeArtifacts writes rendered artifacts to files. formats is what the
// user asked for with -f; with neither -f nor -o the JSON artifact exists
// only for caching and nothing is written.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) error {
	if len(formats) == 0 {
		if output == "" {
			// Terminal-only run; suggest the export next step.
			printDetail("export with: massing solve %s -f json,csv,html", input)
			return nil
		}
		formats = []string{pipeline.FormatJSON}
	}

	base := basePath(output, input)
	for _, format := range formats {
		path := base + "." + format
		if output != "" && len(formats) == 1 {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.json, .csv, .html), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
