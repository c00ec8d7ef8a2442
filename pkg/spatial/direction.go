package spatial

// Direction is where a subject room lies relative to its reference room.
type Direction string

// Directions, cardinal first.
const (
	None         Direction = ""
	RightOf      Direction = "right-of"
	LeftOf       Direction = "left-of"
	Below        Direction = "below"
	Above        Direction = "above"
	AboveLeftOf  Direction = "above-left-of"
	AboveRightOf Direction = "above-right-of"
	BelowLeftOf  Direction = "below-left-of"
	BelowRightOf Direction = "below-right-of"
)

// Directions lists every direction, cardinal first.
var Directions = []Direction{RightOf, LeftOf, Below, Above, AboveLeftOf, AboveRightOf, BelowLeftOf, BelowRightOf}

// ParseDirection converts a keyword into a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if string(d) == s {
			return d, true
		}
	}
	return None, false
}

// IsHorizontal reports whether d places rooms side by side.
func (d Direction) IsHorizontal() bool { return d == RightOf || d == LeftOf }

// IsVertical reports whether d stacks rooms on top of each other.
func (d Direction) IsVertical() bool { return d == Above || d == Below }

// IsCardinal reports whether d is one of the four axis directions.
func (d Direction) IsCardinal() bool { return d.IsHorizontal() || d.IsVertical() }

// IsDiagonal reports whether d is a corner direction.
func (d Direction) IsDiagonal() bool { return d != None && !d.IsCardinal() }

// DefaultAlignment is the alignment a resolver assumes when a clause names
// none: top for horizontal neighbours, left for vertical ones.
func (d Direction) DefaultAlignment() Alignment {
	switch {
	case d.IsHorizontal():
		return AlignTop
	case d.IsVertical():
		return AlignLeft
	default:
		return AlignNone
	}
}

// Alignment qualifies a cardinal relationship: which edges (or centers) of
// the two rooms line up.
type Alignment string

const (
	AlignNone   Alignment = ""
	AlignTop    Alignment = "top"
	AlignBottom Alignment = "bottom"
	AlignLeft   Alignment = "left"
	AlignRight  Alignment = "right"
	AlignCenter Alignment = "center"
)

// ParseAlignment converts a keyword into an Alignment. The empty string
// parses as AlignNone.
func ParseAlignment(s string) (Alignment, bool) {
	switch a := Alignment(s); a {
	case AlignNone, AlignTop, AlignBottom, AlignLeft, AlignRight, AlignCenter:
		return a, true
	}
	return AlignNone, false
}

// ValidFor reports whether the alignment can qualify direction d.
// top and bottom qualify horizontal adjacency; left and right qualify
// vertical adjacency; center qualifies both. Diagonals take none.
func (a Alignment) ValidFor(d Direction) bool {
	switch a {
	case AlignNone:
		return true
	case AlignTop, AlignBottom:
		return d.IsHorizontal()
	case AlignLeft, AlignRight:
		return d.IsVertical()
	case AlignCenter:
		return d.IsCardinal()
	}
	return false
}
