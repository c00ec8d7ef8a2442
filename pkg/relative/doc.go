// Package relative rewrites absolutely positioned rooms as a chain of
// relative position clauses anchored at one room.
//
// # Building a plan
//
// [Build] starts from the anchor and repeatedly gives each unplaced room its
// best relationship (see [spatial.FindAdjacent]) to a room that is already
// placed. Every clause therefore names a room whose position is known when
// the document is resolved, and the assignments form a tree rooted at the
// anchor. Rooms that never touch the placed set are reported as unresolved.
//
// # Converting a document
//
// [Convert] runs the whole pipeline on a parsed document: [Validate] the
// floor, extract bounds, build the plan, then replace each assigned room's
// "at (x, y)" with its relative clause. Rooms whose clause would not
// reproduce their current position (an unaligned neighbour, a diagonal with
// unequal gaps) keep their absolute position.
package relative
