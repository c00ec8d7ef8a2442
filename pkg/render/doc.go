// Package render converts rendered diagrams between output formats.
//
// Diagrams are produced as SVG (see the [treeviz] subpackage). [ToPDF] and
// [ToPNG] convert that SVG with the external rsvg-convert tool from librsvg:
//
//	svg, err := treeviz.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [Format] and [Convert] let callers pick the output by name, as the CLI's
// --format flag does.
package render
