package dsl

// Wall sides in the order they are conventionally written.
var WallSides = []string{"top", "right", "bottom", "left"}

// WallTypes accepted in a wall specification.
var WallTypes = []string{"solid", "open", "door", "window"}

// Point is an absolute or parent-relative position.
type Point struct {
	X, Y float64
}

// Size is a room or variable extent.
type Size struct {
	Width, Height float64
}

// Define is a named size variable ("define Standard (10 x 12)").
type Define struct {
	Name string
	Size Size
	Node *Node
}

// WallSpec is one "side: type" entry of a walls clause.
type WallSpec struct {
	Side string
	Type string
	Node *Node
}

// RelativePosition is a "direction reference [gap N] [align A]" clause.
type RelativePosition struct {
	Direction string
	Reference string
	Gap       *float64 // nil when no gap was written
	Alignment string   // empty when no align was written
	Node      *Node
}

// GapOrZero returns the gap, or 0 when none was written.
func (r *RelativePosition) GapOrZero() float64 {
	if r.Gap == nil {
		return 0
	}
	return *r.Gap
}

// Room is a room or sub-room declaration.
type Room struct {
	Name     string
	Position *Point // nil unless "at (x, y)" is present
	Size     *Size  // nil when sized by a variable
	SizeRef  string // variable name when sized by a variable
	Walls    []WallSpec
	Label    *string
	Relative *RelativePosition
	SubRooms []*Room

	Sub    bool  // declared with "sub-room" or nested in "composed of"
	Parent *Room // enclosing room for sub-rooms
	Floor  *Floor
	Node   *Node
}

// Wall returns the wall type on the given side, if specified.
func (r *Room) Wall(side string) (string, bool) {
	for _, w := range r.Walls {
		if w.Side == side {
			return w.Type, true
		}
	}
	return "", false
}

// Floor is a named group of rooms.
type Floor struct {
	Name  string
	Rooms []*Room
	Node  *Node
}

// Document is a parsed floorplan with its source text and CST.
type Document struct {
	Source  string
	CST     *Node
	Defines []*Define
	Floors  []*Floor
}

// Floor returns the floor with the given name.
func (d *Document) Floor(name string) (*Floor, bool) {
	for _, f := range d.Floors {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Define returns the size variable with the given name.
func (d *Document) Define(name string) (*Define, bool) {
	for _, v := range d.Defines {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}
