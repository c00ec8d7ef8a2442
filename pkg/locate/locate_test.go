package locate

import (
	"slices"
	"testing"

	"github.com/matzehuels/floorplan/pkg/dsl"
)

const plan = `floorplan {
  define Std (3 x 3)
  floor ground {
    room Kitchen at (0, 0) size (10 x 8) walls [top: solid, left: door] label "Cook"
    room Pantry size (4 x 8) walls [top: solid] right-of Kitchen gap 1
    room Den at (0, 8) size Std walls [top: open] composed of [
      sub-room Closet at (1, 1) size (1 x 1) walls [top: solid]
    ]
  }
  floor upper {
    room Attic at (0, 0) size (5 x 5) walls [top: solid] label "Dusty" below-left-of Den
  }
}
`

func parse(t *testing.T) *dsl.Document {
	t.Helper()
	doc, err := dsl.Parse(plan)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func room(t *testing.T, doc *dsl.Document, name string) *dsl.Room {
	t.Helper()
	r, ok := FindRoom(doc, name)
	if !ok {
		t.Fatalf("room %s not found", name)
	}
	return r
}

func text(span dsl.Span) string { return plan[span.Offset:span.End] }

func TestAllRooms(t *testing.T) {
	doc := parse(t)
	var names []string
	for _, r := range AllRooms(doc) {
		names = append(names, r.Name)
	}
	want := []string{"Kitchen", "Pantry", "Den", "Closet", "Attic"}
	if !slices.Equal(names, want) {
		t.Errorf("AllRooms = %v, want %v", names, want)
	}

	if _, ok := FindRoom(doc, "Closet"); !ok {
		t.Error("FindRoom should find nested sub-rooms")
	}
	if _, ok := FindRoom(doc, "Garage"); ok {
		t.Error("FindRoom found a missing room")
	}
	if f, ok := FloorOf(doc, "Attic"); !ok || f.Name != "upper" {
		t.Errorf("FloorOf(Attic) = %v, %v", f, ok)
	}
	if _, ok := FloorOf(doc, "Closet"); ok {
		t.Error("FloorOf should only consider top-level rooms")
	}
	if refs := ReferencesTo(doc, "Kitchen"); len(refs) != 1 || refs[0].Name != "Pantry" {
		t.Errorf("ReferencesTo(Kitchen) = %v", refs)
	}
}

func TestFloorScopedLookup(t *testing.T) {
	src := `floorplan {
  floor ground {
    room Hall at (50, 50) size (4 x 4) walls [top: solid]
  }
  floor upper {
    room Bath at (0, 0) size (4 x 4) walls [top: solid]
    room Hall at (10, 0) size (4 x 4) walls [top: solid] right-of Bath
    room Hall at (0, 8) size (4 x 4) walls [top: solid] composed of [
      sub-room Bath at (1, 1) size (1 x 1) walls [top: solid]
    ]
  }
}`
	doc, err := dsl.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	upper, _ := doc.Floor("upper")

	r, ok := FindRoomIn(upper, "Hall")
	if !ok || r.Floor != upper || r.Position.X != 10 {
		t.Errorf("FindRoomIn(upper, Hall) = %+v, %v", r, ok)
	}
	if r, _ := FindRoom(doc, "Hall"); r.Floor.Name != "ground" {
		t.Errorf("FindRoom should search floors in order, got %s", r.Floor.Name)
	}
	if _, ok := FindRoomIn(upper, "Kitchen"); ok {
		t.Error("FindRoomIn found a missing room")
	}
	if refs := ReferencesIn(upper, "Bath"); len(refs) != 1 || refs[0].Floor != upper {
		t.Errorf("ReferencesIn(upper, Bath) = %v", refs)
	}

	if got := DuplicateNames(upper); !slices.Equal(got, []string{"Hall", "Bath"}) {
		t.Errorf("DuplicateNames(upper) = %v", got)
	}
	ground, _ := doc.Floor("ground")
	if got := DuplicateNames(ground); len(got) != 0 {
		t.Errorf("DuplicateNames(ground) = %v", got)
	}
}

func TestFlatten(t *testing.T) {
	doc := parse(t)
	leaves := Flatten(room(t, doc, "Pantry").Node)
	var texts []string
	for _, l := range leaves {
		texts = append(texts, l.Text)
	}
	want := []string{"room", "Pantry", "size", "(", "4", "x", "8", ")", "walls", "[", "top", ":", "solid", "]", "right-of", "Kitchen", "gap", "1"}
	if !slices.Equal(texts, want) {
		t.Errorf("Flatten = %v, want %v", texts, want)
	}
	if Flatten(nil) != nil {
		t.Error("Flatten(nil) should be nil")
	}
}

func TestPositionSpan(t *testing.T) {
	doc := parse(t)

	span, ok := PositionSpan(room(t, doc, "Kitchen"))
	if !ok || text(span) != "at (0, 0)" {
		t.Errorf("Kitchen position = %q, %v", text(span), ok)
	}
	if _, ok := PositionSpan(room(t, doc, "Pantry")); ok {
		t.Error("Pantry has no position clause")
	}

	// Den's sub-room has a position too; it must not be mistaken for Den's.
	span, ok = PositionSpan(room(t, doc, "Den"))
	if !ok || text(span) != "at (0, 8)" {
		t.Errorf("Den position = %q, %v", text(span), ok)
	}

	x, y, ok := PositionNumbers(room(t, doc, "Den"))
	if !ok || x.Text != "0" || y.Text != "8" {
		t.Errorf("Den numbers = %v %v %v", x, y, ok)
	}
}

func TestPositionSpanGuardsOnSize(t *testing.T) {
	// A hand-built room whose position clause is missing its ')'.
	leaf := func(kind dsl.TokenKind, s string, off int) *dsl.Node {
		return &dsl.Node{Kind: dsl.KindToken, Token: kind, Text: s, Offset: off, End: off + len(s)}
	}
	n := &dsl.Node{Kind: dsl.KindRoom, Children: []*dsl.Node{
		leaf(dsl.TokenKeyword, "room", 0),
		leaf(dsl.TokenIdent, "Broken", 5),
		leaf(dsl.TokenKeyword, "at", 12),
		leaf(dsl.TokenLParen, "(", 15),
		leaf(dsl.TokenNumber, "1", 16),
		leaf(dsl.TokenKeyword, "size", 18),
		leaf(dsl.TokenLParen, "(", 23),
		leaf(dsl.TokenRParen, ")", 30),
	}}
	if _, ok := PositionSpan(&dsl.Room{Name: "Broken", Node: n}); ok {
		t.Error("PositionSpan should stop at the size keyword")
	}
}

func TestSizeNumbers(t *testing.T) {
	doc := parse(t)
	w, h, ok := SizeNumbers(room(t, doc, "Kitchen"))
	if !ok || w.Text != "10" || h.Text != "8" {
		t.Errorf("Kitchen size numbers = %v %v %v", w, h, ok)
	}
	if _, _, ok := SizeNumbers(room(t, doc, "Den")); ok {
		t.Error("variable-sized room should have no size numbers")
	}
	span, ok := SizeSpan(room(t, doc, "Den"))
	if !ok || text(span) != "size Std" {
		t.Errorf("Den size span = %q", text(span))
	}
}

func TestWalls(t *testing.T) {
	doc := parse(t)
	kitchen := room(t, doc, "Kitchen")

	tok, ok := WallTypeToken(kitchen, "left")
	if !ok || tok.Text != "door" {
		t.Errorf("left wall = %v, %v", tok, ok)
	}
	if _, ok := WallTypeToken(kitchen, "right"); ok {
		t.Error("Kitchen has no right wall spec")
	}

	end, ok := WallsEnd(kitchen)
	if !ok || plan[end-1] != ']' {
		t.Errorf("WallsEnd = %d", end)
	}
	br, ok := WallsCloseBracket(kitchen)
	if !ok || br.End != end {
		t.Errorf("WallsCloseBracket = %v", br)
	}
}

func TestRelative(t *testing.T) {
	doc := parse(t)
	pantry := room(t, doc, "Pantry")

	span, ok := RelativeSpan(pantry)
	if !ok || text(span) != "right-of Kitchen gap 1" {
		t.Errorf("RelativeSpan = %q", text(span))
	}
	rm, ok := RelativeRemovalSpan(pantry)
	if !ok || text(rm) != " right-of Kitchen gap 1" {
		t.Errorf("RelativeRemovalSpan = %q", text(rm))
	}
	ref, ok := ReferenceToken(pantry)
	if !ok || ref.Text != "Kitchen" {
		t.Errorf("ReferenceToken = %v", ref)
	}
	if at, _ := RelativeInsertPoint(pantry); at != span.End {
		t.Errorf("insert point = %d, want end of relative clause %d", at, span.End)
	}

	kitchen := room(t, doc, "Kitchen")
	wallsEnd, _ := WallsEnd(kitchen)
	if at, _ := RelativeInsertPoint(kitchen); at != wallsEnd {
		t.Errorf("insert point = %d, want end of walls %d", at, wallsEnd)
	}

	// The relative clause after a label.
	attic := room(t, doc, "Attic")
	rm, ok = RelativeRemovalSpan(attic)
	if !ok || text(rm) != " below-left-of Den" {
		t.Errorf("Attic removal span = %q", text(rm))
	}
}

func TestLabelAndNames(t *testing.T) {
	doc := parse(t)

	lbl, ok := LabelString(room(t, doc, "Kitchen"))
	if !ok || lbl.Text != `"Cook"` {
		t.Errorf("LabelString = %v", lbl)
	}
	if _, ok := LabelString(room(t, doc, "Pantry")); ok {
		t.Error("Pantry has no label")
	}

	name, ok := NameToken(room(t, doc, "Closet"))
	if !ok || name.Text != "Closet" {
		t.Errorf("NameToken = %v", name)
	}

	floor, _ := doc.Floor("ground")
	brace, ok := FloorCloseBrace(floor)
	if !ok || plan[brace.Offset] != '}' {
		t.Errorf("FloorCloseBrace = %v", brace)
	}
}
