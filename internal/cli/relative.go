package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/errors"
	fpio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/relative"
	"github.com/matzehuels/floorplan/pkg/render"
	"github.com/matzehuels/floorplan/pkg/render/treeviz"
)

// relativeOptions holds the flags of the relative command.
type relativeOptions struct {
	tolerance  float64
	maxGap     float64
	floor      string
	dryRun     bool
	json       bool
	tree       string
	treeFormat string
	scale      float64
	out        output
}

// relativeCommand converts a floor to relative positions.
func (c *CLI) relativeCommand() *cobra.Command {
	opts := relativeOptions{scale: 2}

	cmd := &cobra.Command{
		Use:   "relative [file] [anchor]",
		Short: "Rewrite absolute positions as positions relative to neighbours",
		Long: `Rewrite the anchor's floor so that rooms are positioned relative to each
other, starting from the anchor room, which keeps its absolute position.

Rooms that touch no converted room keep their "at (x, y)" and are listed as
unresolved. Without an anchor argument an interactive picker is shown.

The resulting assignment tree can be drawn with --tree:

  floorplan relative house.floorplan Kitchen --dry-run --tree plan.svg`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor := ""
			if len(args) == 2 {
				anchor = args[1]
			}
			return c.runRelative(cmd, args[0], anchor, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", 0, "adjacency tolerance (default from config)")
	cmd.Flags().Float64Var(&opts.maxGap, "max-gap", 0, "ignore neighbours further away than this (0 = unlimited)")
	cmd.Flags().StringVar(&opts.floor, "floor", "", "floor to pick the anchor from (default: first floor)")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "print the assignments instead of the rewritten document")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the assignments as JSON (implies --dry-run)")
	cmd.Flags().StringVar(&opts.tree, "tree", "", "draw the assignment tree to this file")
	cmd.Flags().StringVar(&opts.treeFormat, "tree-format", "", "tree format: dot, svg, pdf, png (default: from --tree extension)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	opts.out.register(cmd)

	return cmd
}

func (c *CLI) runRelative(cmd *cobra.Command, path, anchor string, opts relativeOptions) error {
	src, doc, err := c.readDocument(path)
	if err != nil {
		return err
	}
	if anchor == "" {
		floor, err := floorForPicker(doc, opts.floor)
		if err != nil {
			return err
		}
		if anchor, err = pickAnchor(floor); err != nil {
			return err
		}
	}

	tk := c.toolkit()
	if cmd.Flags().Changed("max-gap") {
		tk.MaxGap = opts.maxGap
	}

	prog := newProgress(c.Logger)
	res, err := tk.ConvertToRelative(src, anchor, opts.tolerance)
	if err != nil {
		return err
	}
	if res.Applied {
		prog.done(fmt.Sprintf("Converted %d rooms relative to %s", len(res.Assignments), anchor))
	}

	plan := &relative.Plan{Anchor: anchor, Assignments: res.Assignments, Unresolved: res.Unresolved}
	if opts.tree != "" {
		if err := c.writeTree(cmd.Context(), plan, opts); err != nil {
			return err
		}
	}

	if opts.dryRun || opts.json {
		for _, msg := range res.Errors {
			c.printWarning("%s", msg)
		}
		if opts.json {
			return fpio.WritePlan(plan, c.Out)
		}
		c.printPlan(plan)
		return nil
	}
	return c.report(res, opts.out, path)
}

// floorForPicker returns the named floor, or the first floor.
func floorForPicker(doc *dsl.Document, name string) (*dsl.Floor, error) {
	if name == "" {
		if len(doc.Floors) == 0 {
			return nil, errors.New(errors.ErrCodeFloorNotFound, "document has no floors")
		}
		return doc.Floors[0], nil
	}
	floor, ok := doc.Floor(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeFloorNotFound, "no floor named %q", name)
	}
	return floor, nil
}

func (c *CLI) printPlan(plan *relative.Plan) {
	rows := [][]string{{plan.Anchor, "anchor", "", "", ""}}
	for _, a := range plan.Assignments {
		align := string(a.Alignment)
		if align == "" {
			align = iconNone
		}
		rows = append(rows, []string{a.Room, string(a.Direction), a.Reference, dsl.FormatNumber(a.Gap), align})
	}
	for _, name := range plan.Unresolved {
		rows = append(rows, []string{name, "unresolved", "", "", ""})
	}
	c.printTable("plan", []string{"Room", "Direction", "Reference", "Gap", "Align"}, rows, func(row int) bool { return row == 0 })
}

// treeCommand draws a plan saved with "relative --json".
func (c *CLI) treeCommand() *cobra.Command {
	opts := relativeOptions{scale: 2}

	cmd := &cobra.Command{
		Use:   "tree [plan.json]",
		Short: "Draw a saved relative-position plan",
		Long: `Draw the assignment tree of a plan saved with "relative --json".

  floorplan relative house.floorplan Kitchen --json > plan.json
  floorplan tree plan.json -o plan.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := fpio.ImportPlan(args[0])
			if err != nil {
				return err
			}
			if opts.tree == "" {
				_, err := io.WriteString(c.Out, treeviz.ToDOT(plan, treeviz.Options{Detailed: true}))
				return err
			}
			return c.writeTree(cmd.Context(), plan, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.tree, "output", "o", "", "output file (default: DOT on stdout)")
	cmd.Flags().StringVarP(&opts.treeFormat, "format", "f", "", "output format: dot, svg, pdf, png (default: from --output extension)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	return cmd
}

// writeTree draws the assignment tree to opts.tree.
func (c *CLI) writeTree(ctx context.Context, plan *relative.Plan, opts relativeOptions) error {
	name := opts.treeFormat
	if name == "" {
		name = filepath.Ext(opts.tree)
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return err
	}

	dot := treeviz.ToDOT(plan, treeviz.Options{Detailed: true, Title: "anchor " + plan.Anchor})
	data := []byte(dot)
	if format != render.FormatDOT {
		spin := newSpinnerWithContext(ctx, c.Err, "Rendering tree...")
		spin.Start()
		svg, err := treeviz.RenderSVG(ctx, dot)
		if err == nil {
			data, err = render.Convert(svg, format, opts.scale)
		}
		spin.Stop()
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(opts.tree, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.tree, err)
	}
	c.printFile(opts.tree)
	return nil
}
