package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seqmap/pkg/io"
	"github.com/matzehuels/seqmap/pkg/layout"
	"github.com/matzehuels/seqmap/pkg/pipeline"
)

// layoutSuffix marks files written by the layout command.
const layoutSuffix = ".layout.json"

// layoutCommand creates the layout command for computing map layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
		vp      viewportFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [document.json]",
		Short: "Compute the map layout of a sequence document",
		Long: `Compute the map layout of a sequence document.

The layout command stacks every feature kind into rows, wraps the sequence
into blocks for the linear map and places arcs on the rings of the circular
map. The output is a layout.json file (same format as 'render -f json')
that 'render' accepts in place of a document.

Results are cached for faster subsequent runs.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocuments,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := vp.options(cmd, cfg)
			opts.Refresh = refresh
			runner, err := c.newRunner(cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()
			return c.runLayout(cmd.Context(), runner, args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached layout exists")
	vp.register(cmd)

	return cmd
}

// runLayout loads the document, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options, output string) error {
	doc, err := io.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Laying out %s (%d bp)", doc.Name, doc.Sequence.Len()))
	spinner.Start()

	l, cacheHit, err := runner.LayoutWithCacheInfo(ctx, doc, opts)
	if err != nil {
		spinner.Fail("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()
	prog.done("computed layout", "features", len(l.Features), "cached", cacheHit)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = trimInput(input) + layoutSuffix
	}
	if err := layout.WriteFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(pipeline.StatsOf(l), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}

// trimInput strips the layout suffix or the plain extension from path.
func trimInput(path string) string {
	if strings.HasSuffix(path, layoutSuffix) {
		return strings.TrimSuffix(path, layoutSuffix)
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}
