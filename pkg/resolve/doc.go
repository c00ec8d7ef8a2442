// Package resolve turns a parsed floorplan into absolute geometry.
//
// [NewVariables] builds the table of named sizes declared with "define".
// [Positions] places a group of sibling rooms: rooms with an explicit
// "at (x, y)" keep it, rooms with a relative clause are placed next to their
// reference once that reference is placed. Rooms that cannot be placed
// (unknown reference, reference cycle, no position at all) are reported in
// [Layout.Unresolved] rather than failing the whole layout.
//
// [Place] is the single placement rule shared by the resolver and by code
// that needs to check whether a relative clause reproduces a position.
package resolve
