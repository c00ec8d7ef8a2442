package locate

import "github.com/matzehuels/floorplan/pkg/dsl"

// Flatten returns the leaf tokens under n in source order.
func Flatten(n *dsl.Node) []*dsl.Node {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return []*dsl.Node{n}
	}
	var out []*dsl.Node
	for _, c := range n.Children {
		out = append(out, Flatten(c)...)
	}
	return out
}

// ownLeaves flattens a room without descending into its sub-rooms.
func ownLeaves(room *dsl.Room) []*dsl.Node {
	var out []*dsl.Node
	for _, c := range room.Node.Children {
		if c.Kind == dsl.KindSubRooms {
			continue
		}
		out = append(out, Flatten(c)...)
	}
	return out
}

// NameToken returns the identifier following the room keyword.
func NameToken(room *dsl.Room) (*dsl.Node, bool) {
	leaves := ownLeaves(room)
	if len(leaves) < 2 || !leaves[1].Is(dsl.TokenIdent, "") {
		return nil, false
	}
	return leaves[1], true
}

// PositionSpan returns the span of the "at (x, y)" clause. It finds the at
// keyword and scans forward to the closing parenthesis, giving up if a size
// keyword comes first.
func PositionSpan(room *dsl.Room) (dsl.Span, bool) {
	leaves := ownLeaves(room)
	start := -1
	for i, l := range leaves {
		if l.IsKeyword(dsl.KwAt) {
			start = i
			break
		}
	}
	if start < 0 {
		return dsl.Span{}, false
	}
	for _, l := range leaves[start+1:] {
		if l.IsKeyword(dsl.KwSize) {
			return dsl.Span{}, false
		}
		if l.Is(dsl.TokenRParen, "") {
			return dsl.Span{Offset: leaves[start].Offset, End: l.End}, true
		}
	}
	return dsl.Span{}, false
}

// PositionNumbers returns the x and y number tokens of the position clause.
func PositionNumbers(room *dsl.Room) (x, y *dsl.Node, ok bool) {
	span, ok := PositionSpan(room)
	if !ok {
		return nil, nil, false
	}
	return twoNumbers(leavesIn(ownLeaves(room), span))
}

// SizeSpan returns the span of the "size ..." clause.
func SizeSpan(room *dsl.Room) (dsl.Span, bool) {
	n := room.Node.Child(dsl.KindSize)
	if n == nil {
		return dsl.Span{}, false
	}
	return n.Span(), true
}

// SizeNumbers returns the width and height number tokens of a literal size.
// Rooms sized by a variable have none.
func SizeNumbers(room *dsl.Room) (w, h *dsl.Node, ok bool) {
	n := room.Node.Child(dsl.KindSize)
	if n == nil {
		return nil, nil, false
	}
	return twoNumbers(Flatten(n))
}

// WallsEnd returns the offset just after the walls clause's closing bracket.
func WallsEnd(room *dsl.Room) (int, bool) {
	n := room.Node.Child(dsl.KindWalls)
	if n == nil {
		return 0, false
	}
	return n.End, true
}

// WallsCloseBracket returns the ']' ending the walls clause.
func WallsCloseBracket(room *dsl.Room) (*dsl.Node, bool) {
	n := room.Node.Child(dsl.KindWalls)
	if n == nil || len(n.Children) == 0 {
		return nil, false
	}
	last := n.Children[len(n.Children)-1]
	if !last.Is(dsl.TokenRBracket, "") {
		return nil, false
	}
	return last, true
}

// WallTypeToken returns the wall type token of the given side.
func WallTypeToken(room *dsl.Room, side string) (*dsl.Node, bool) {
	n := room.Node.Child(dsl.KindWalls)
	if n == nil {
		return nil, false
	}
	for _, spec := range n.Children {
		if spec.Kind != dsl.KindWallSpec {
			continue
		}
		leaves := Flatten(spec)
		if len(leaves) == 3 && leaves[0].Text == side {
			return leaves[2], true
		}
	}
	return nil, false
}

// RelativeSpan returns the span of the relative position clause.
func RelativeSpan(room *dsl.Room) (dsl.Span, bool) {
	n := room.Node.Child(dsl.KindRelative)
	if n == nil {
		return dsl.Span{}, false
	}
	return n.Span(), true
}

// RelativeRemovalSpan returns the relative clause together with the
// whitespace separating it from the preceding token, so deleting the span
// leaves no double spaces behind.
func RelativeRemovalSpan(room *dsl.Room) (dsl.Span, bool) {
	span, ok := RelativeSpan(room)
	if !ok {
		return dsl.Span{}, false
	}
	leaves := ownLeaves(room)
	for i, l := range leaves {
		if l.Offset == span.Offset && i > 0 {
			return dsl.Span{Offset: leaves[i-1].End, End: span.End}, true
		}
	}
	return dsl.Span{}, false
}

// ReferenceToken returns the room name token inside the relative clause.
func ReferenceToken(room *dsl.Room) (*dsl.Node, bool) {
	n := room.Node.Child(dsl.KindRelative)
	if n == nil {
		return nil, false
	}
	leaves := Flatten(n)
	if len(leaves) < 2 || !leaves[1].Is(dsl.TokenIdent, "") {
		return nil, false
	}
	return leaves[1], true
}

// RelativeInsertPoint is where a new relative or label clause goes: the end
// of an existing relative clause, else the end of the walls clause.
func RelativeInsertPoint(room *dsl.Room) (int, bool) {
	if span, ok := RelativeSpan(room); ok {
		return span.End, true
	}
	return WallsEnd(room)
}

// LabelString returns the string literal token of the label clause.
func LabelString(room *dsl.Room) (*dsl.Node, bool) {
	n := room.Node.Child(dsl.KindLabel)
	if n == nil {
		return nil, false
	}
	for _, l := range Flatten(n) {
		if l.Is(dsl.TokenString, "") {
			return l, true
		}
	}
	return nil, false
}

// FloorCloseBrace returns the '}' ending a floor.
func FloorCloseBrace(floor *dsl.Floor) (*dsl.Node, bool) {
	if floor.Node == nil || len(floor.Node.Children) == 0 {
		return nil, false
	}
	last := floor.Node.Children[len(floor.Node.Children)-1]
	if !last.Is(dsl.TokenRBrace, "") {
		return nil, false
	}
	return last, true
}

func leavesIn(leaves []*dsl.Node, span dsl.Span) []*dsl.Node {
	var out []*dsl.Node
	for _, l := range leaves {
		if l.Offset >= span.Offset && l.End <= span.End {
			out = append(out, l)
		}
	}
	return out
}

func twoNumbers(leaves []*dsl.Node) (a, b *dsl.Node, ok bool) {
	var nums []*dsl.Node
	for _, l := range leaves {
		if l.Is(dsl.TokenNumber, "") {
			nums = append(nums, l)
		}
	}
	if len(nums) != 2 {
		return nil, nil, false
	}
	return nums[0], nums[1], true
}
