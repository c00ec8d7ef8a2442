// Package dsl parses floorplan documents into a concrete syntax tree and a
// typed room tree.
//
// # Overview
//
// A floorplan document declares floors, each holding rooms. A room is placed
// either absolutely with "at (x, y)" or relative to another room with a
// direction clause such as "right-of Kitchen gap 2 align bottom":
//
//	floorplan {
//	    define Standard (10 x 12)
//	    floor ground {
//	        room Kitchen at (0, 0) size (10 x 8) walls [top: solid, right: open, bottom: solid, left: solid]
//	        room Pantry size (4 x 8) walls [top: solid, right: solid, bottom: solid, left: door] right-of Kitchen
//	        room Den size Standard walls [top: solid, right: solid, bottom: solid, left: solid] below Kitchen label "Den"
//	    }
//	}
//
// Coordinates grow to the right (x) and downwards (y). Sub-rooms, declared in
// a "composed of [ ... ]" block, are positioned relative to their parent.
//
// # Concrete Syntax Tree
//
// [Parse] returns a [Document] whose CST field is the root [Node] of a
// full-fidelity tree: every token and every subtree exposes its byte range
// ([Node.Offset], [Node.End]) and source text. Whitespace and '#' comments are
// hidden tokens; they stay in the text but have no node. The tree is
// read-only. Edits are made to the text, and the text must be parsed again
// before further structural queries.
//
// Every typed element ([Room], [Floor], [WallSpec], ...) links back to the
// CST node it was built from through its Node field.
package dsl
