package dsl

// NodeKind identifies the grammar rule a CST node was built from.
type NodeKind int

const (
	KindToken NodeKind = iota // leaf
	KindDocument
	KindDefine
	KindFloor
	KindRoom
	KindPosition
	KindSize
	KindWalls
	KindWallSpec
	KindRelative
	KindLabel
	KindSubRooms
)

var kindNames = [...]string{
	KindToken:    "token",
	KindDocument: "document",
	KindDefine:   "define",
	KindFloor:    "floor",
	KindRoom:     "room",
	KindPosition: "position",
	KindSize:     "size",
	KindWalls:    "walls",
	KindWallSpec: "wallspec",
	KindRelative: "relative",
	KindLabel:    "label",
	KindSubRooms: "subrooms",
}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Span is a half-open byte range [Offset, End) in the source text.
type Span struct {
	Offset int
	End    int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Offset }

// Node is a concrete syntax tree node. Leaves (Kind == KindToken) carry a
// token; inner nodes cover the range from their first to their last leaf.
//
// Nodes are owned by the parser and must not be modified.
type Node struct {
	Kind     NodeKind
	Token    TokenKind // leaves only
	Offset   int       // inclusive
	End      int       // exclusive
	Text     string    // source text of [Offset, End)
	Parent   *Node
	Children []*Node
}

// IsLeaf reports whether the node is a token.
func (n *Node) IsLeaf() bool { return n.Kind == KindToken }

// Span returns the node's byte range.
func (n *Node) Span() Span { return Span{Offset: n.Offset, End: n.End} }

// Is reports whether n is a leaf of the given token kind and text.
// An empty text matches any token of that kind.
func (n *Node) Is(kind TokenKind, text string) bool {
	return n != nil && n.IsLeaf() && n.Token == kind && (text == "" || n.Text == text)
}

// IsKeyword reports whether n is the keyword leaf kw.
func (n *Node) IsKeyword(kw string) bool { return n.Is(TokenKeyword, kw) }

// Child returns the first direct child of the given kind, or nil.
func (n *Node) Child(kind NodeKind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}
