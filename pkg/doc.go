// Package pkg provides the libraries behind the floorplan tool.
//
// # Overview
//
// Floorplan documents describe rooms by absolute coordinates ("at (10, 0)")
// or relative to each other ("right-of Kitchen"). These packages infer the
// relative layout of a floor and rewrite documents with minimal text edits,
// so comments and formatting survive.
//
// # Architecture
//
//	source text
//	     ↓
//	[dsl] parse into AST + CST with byte spans
//	     ↓
//	[resolve] sizes and positions → [spatial] bounds
//	     ↓
//	[spatial] relationships → [relative] assignment plan
//	     ↓
//	[locate] spans → [edit] queued text edits → rewritten text
//
// # Main Packages
//
//   - [dsl]: lexer, parser and formatting helpers
//   - [spatial]: bounds, directions and the relationship analyzer
//   - [resolve]: size variables and relative-position resolution
//   - [relative]: assignment builder, validator and Convert
//   - [locate]: finds rooms and the byte spans of their clauses
//   - [edit]: edit sessions with structural intents
//   - [tools]: high-level actions and TOML batch plans
//
// Supporting packages: [config], [errors], [observability], [io] for JSON
// plans, [render] and [render/treeviz] for drawing plans, [buildinfo].
//
// # Quick Start
//
//	doc, _ := dsl.Parse(src)
//	res, err := relative.Convert(doc, "Kitchen", relative.Options{})
//	if err != nil {
//	    var verr *relative.ValidationError
//	    // errors.As(err, &verr) lists every problem
//	}
//	fmt.Print(res.Text)
package pkg
