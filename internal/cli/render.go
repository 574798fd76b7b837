package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/io"
	"github.com/matzehuels/seqmap/pkg/layout"
	"github.com/matzehuels/seqmap/pkg/pipeline"
	"github.com/matzehuels/seqmap/pkg/selection"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// renderFlags holds the render-only command-line flags.
type renderFlags struct {
	output         string
	formats        string
	view           string
	window         bool
	detailed       bool
	noCache        bool
	anchorCircular int
	anchorLinear   int
	selectRange    string
	reverse        bool
}

// renderCommand creates the render command for generating outputs from a
// document or a computed layout.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		rf renderFlags
		vp viewportFlags
	)

	cmd := &cobra.Command{
		Use:   "render [document.json | layout.json]",
		Short: "Render a sequence map to JSON, SVG, PDF, PNG or an overlap graph",
		Long: `Render a sequence map.

The input is either a sequence document or a *.layout.json file written by
'layout'. Documents are laid out first; layouts are rendered as they are,
ignoring the viewport flags.

Formats: json, svg, pdf, png, dot (overlap graph source), overlap (overlap
graph as SVG). PDF and PNG need rsvg-convert on the PATH.

--select takes 0-based bases as START:END, or "all". With --reverse the
selection runs counter-clockwise from START to END.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocuments,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := vp.options(cmd, cfg)
			opts.Formats = parseFormats(rf.formats)
			opts.View = rf.view
			opts.Window = rf.window
			opts.Detailed = rf.detailed
			opts.Anchors = anchor.Index{Circular: rf.anchorCircular, Linear: rf.anchorLinear}
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			sel, err := parseSelection(rf.selectRange, rf.reverse)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cfg, rf.noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()
			return c.runRender(cmd.Context(), runner, args[0], opts, sel, rf.output)
		},
	}

	cmd.Flags().StringVarP(&rf.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&rf.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png, dot, overlap (comma-separated)")
	cmd.Flags().StringVar(&rf.view, "view", pipeline.DefaultView, "map view: circular, linear")
	cmd.Flags().BoolVar(&rf.window, "window", false, "only draw the linear blocks visible around the linear anchor")
	cmd.Flags().BoolVar(&rf.detailed, "detailed", false, "label overlap graph nodes with rows and ranges")
	cmd.Flags().BoolVar(&rf.noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVar(&rf.anchorCircular, "anchor-circular", 0, "base at the top of the circular map")
	cmd.Flags().IntVar(&rf.anchorLinear, "anchor-linear", 0, "base centered in the linear window")
	cmd.Flags().StringVar(&rf.selectRange, "select", "", "selection to draw: START:END or all")
	cmd.Flags().BoolVar(&rf.reverse, "reverse", false, "draw the selection counter-clockwise")
	vp.register(cmd)
	_ = cmd.RegisterFlagCompletionFunc("format", completeList(formatNames()))
	_ = cmd.RegisterFlagCompletionFunc("view", completeOne(viewNames...))

	return cmd
}

// runRender lays out the input when needed and writes every format.
func (c *CLI) runRender(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options, sel *selection.Selection, output string) error {
	opts.Logger = c.Logger

	spinner := newSpinner(ctx, os.Stderr, "Rendering "+strings.Join(opts.Formats, ", "))

	if strings.HasSuffix(input, layoutSuffix) {
		l, err := layout.ReadFile(input)
		if err != nil {
			return fmt.Errorf("load layout %s: %w", input, err)
		}
		if opts.Selection, err = deriveSelection(l, sel); err != nil {
			return err
		}
		spinner.Start()
		artifacts, hit, err := runner.RenderWithCacheInfo(ctx, l, opts)
		if err != nil {
			spinner.Fail("Render failed")
			return fmt.Errorf("render: %w", err)
		}
		spinner.Stop()
		return writeArtifacts(artifactWriteParams{
			artifacts: artifacts,
			formats:   opts.Formats,
			input:     input,
			output:    output,
			stats:     pipeline.StatsOf(l),
			cacheHit:  hit,
		})
	}

	doc, err := io.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}
	if sel != nil {
		derived := derive(doc.Sequence, *sel)
		opts.Selection = &derived
	}

	spinner.Start()
	result, err := runner.Execute(ctx, doc, opts)
	if err != nil {
		spinner.Fail("Render failed")
		return err
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		stats:     result.Stats,
		cacheHit:  result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	})
}

// =============================================================================
// Selection Flags
// =============================================================================

// parseSelection reads the --select flag. An empty flag means no selection.
func parseSelection(s string, reverse bool) (*selection.Selection, error) {
	if s == "" {
		return nil, nil
	}
	if s == "all" {
		return &selection.Selection{Clockwise: true, Ref: selection.RefAll}, nil
	}
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "selection %q: want START:END or all", s)
	}
	start, err := strconv.Atoi(from)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "selection start %q", from)
	}
	end, err := strconv.Atoi(to)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "selection end %q", to)
	}
	return &selection.Selection{Start: start, End: end, Clockwise: !reverse}, nil
}

// deriveSelection fills the derived fields of sel against the layout's
// sequence.
func deriveSelection(l layout.Layout, sel *selection.Selection) (*selection.Selection, error) {
	if sel == nil {
		return nil, nil
	}
	topology, ok := seq.ParseTopology(l.Topology)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "layout topology %q", l.Topology)
	}
	derived := derive(seq.New(l.Bases, topology), *sel)
	return &derived, nil
}

// derive folds sel into s and computes its length and bases.
func derive(s seq.Sequence, sel selection.Selection) selection.Selection {
	e := selection.New(s, nil)
	applySelection(e, sel)
	return e.Selection()
}

// applySelection replaces the engine's selection with sel, keeping a
// whole-sequence selection anchored at its start.
func applySelection(e *selection.Engine, sel selection.Selection) {
	if !sel.IsAll() {
		e.SetSelection(sel)
		return
	}
	e.SetSelection(selection.Selection{Start: sel.Start, End: sel.Start, Clockwise: true})
	e.SelectAll()
}

// =============================================================================
// Output
// =============================================================================

// artifactWriteParams describes one batch of rendered outputs.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	stats     pipeline.Stats
	cacheHit  bool
}

// writeArtifacts writes each format next to the input, or to output when
// there is exactly one format.
func writeArtifacts(p artifactWriteParams) error {
	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := artifactPath(p.input, p.output, format, len(p.formats))
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Rendered %d file(s)", len(paths))
	for _, path := range paths {
		printFile(path)
	}
	printStats(p.stats, p.cacheHit)
	return nil
}

// artifactPath picks the file written for format.
func artifactPath(input, output, format string, count int) string {
	if output != "" && count == 1 {
		return output
	}
	return basePath(output, input) + "." + pipeline.FileExtension(format)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return trimInput(input)
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
