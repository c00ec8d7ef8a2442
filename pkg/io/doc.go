// Package io provides JSON import and export for relative-position plans.
//
// # JSON Format
//
// A plan names its anchor, the rooms placed relative to it in placement
// order, and the rooms that could not be placed:
//
//	{
//	  "anchor": "Kitchen",
//	  "rooms": [
//	    {"room": "Pantry", "direction": "right-of", "reference": "Kitchen"},
//	    {"room": "Den", "direction": "below", "reference": "Kitchen", "gap": 1, "align": "center"}
//	  ],
//	  "unresolved": ["Shed"]
//	}
//
// Each reference must be the anchor or a room listed before it, so a plan
// read back with [ReadPlan] describes a tree rooted at the anchor.
//
// # Relations
//
// [WriteRelations] exports the output of the adjacency finder in the same
// style, for tooling that wants to choose positions itself.
package io
