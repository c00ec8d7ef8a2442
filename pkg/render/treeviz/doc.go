// Package treeviz draws a relative-position plan as a tree diagram.
//
// The anchor room is the root; every assignment is an edge from the
// reference room to the room placed relative to it, labelled with the
// direction (and gap and alignment in detailed mode). Unresolved rooms are
// drawn unattached with a dashed outline.
//
//	dot := treeviz.ToDOT(plan, treeviz.Options{Detailed: true})
//	svg, err := treeviz.RenderSVG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package treeviz
