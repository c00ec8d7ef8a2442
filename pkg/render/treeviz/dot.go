package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/relative"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds gap and alignment to edge labels.
	Detailed bool

	// Title is drawn above the diagram when set.
	Title string
}

// ToDOT converts a plan to Graphviz DOT source.
func ToDOT(plan *relative.Plan, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph plan {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [penwidth=2, fillcolor=\"#fff4d6\"];\n", plan.Anchor)
	for _, a := range plan.Assignments {
		fmt.Fprintf(&buf, "  %q;\n", a.Room)
	}
	for _, name := range plan.Unresolved {
		fmt.Fprintf(&buf, "  %q [style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n", name)
	}

	buf.WriteString("\n")
	for _, a := range plan.Assignments {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", a.Reference, a.Room, edgeLabel(a, opts.Detailed))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeLabel(a relative.Assignment, detailed bool) string {
	if !detailed {
		return string(a.Direction)
	}
	parts := []string{string(a.Direction)}
	if a.Gap != 0 {
		parts = append(parts, "gap "+dsl.FormatNumber(a.Gap))
	}
	if a.Alignment != spatial.AlignNone {
		parts = append(parts, "align "+string(a.Alignment))
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-sized svg element with one
// whose width and height match the view box.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
