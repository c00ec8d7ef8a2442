package dsl

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{-3, "-3"},
		{2.5, "2.5"},
		{0.1 + 0.2, "0.3"},
		{-0.00001, "0"},
		{1.23456, "1.2346"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoomLineRoundTrip(t *testing.T) {
	label := "Study nook"
	line := RoomLine{
		Name:     "Study",
		Position: &Point{X: 12, Y: 0.5},
		Size:     Size{Width: 4, Height: 6},
		Walls:    map[string]string{"left": "door"},
		Label:    &label,
	}
	want := `room Study at (12, 0.5) size (4 x 6) walls [top: solid, right: solid, bottom: solid, left: door] label "Study nook"`
	if got := line.String(); got != want {
		t.Fatalf("String() =\n%s\nwant\n%s", got, want)
	}

	doc, err := Parse("floorplan { floor f { " + line.String() + " } }")
	if err != nil {
		t.Fatalf("generated line does not parse: %v", err)
	}
	r := doc.Floors[0].Rooms[0]
	if r.Name != "Study" || *r.Position != (Point{12, 0.5}) || *r.Label != label {
		t.Errorf("parsed room = %+v", r)
	}
}
