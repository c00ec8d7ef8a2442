// Package locate finds rooms and byte spans in a parsed floorplan.
//
// Everything here is a read-only query over the concrete syntax tree built
// by [dsl.Parse]. Span finders return ok == false when the tokens they look
// for are absent; callers treat that as "not applicable".
//
// The spans returned refer to the document the tree was parsed from and
// become invalid once any edit is applied to that text.
package locate
