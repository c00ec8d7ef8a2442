package resolve

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

func mustParse(t *testing.T, src string) *dsl.Document {
	t.Helper()
	doc, err := dsl.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestPlace(t *testing.T) {
	ref := spatial.NewBounds("A", 0, 0, 10, 8)

	tests := []struct {
		dir    spatial.Direction
		gap    float64
		align  spatial.Alignment
		w, h   float64
		wx, wy float64
	}{
		{spatial.RightOf, 0, "", 4, 8, 10, 0},
		{spatial.RightOf, 2, spatial.AlignBottom, 4, 4, 12, 4},
		{spatial.RightOf, 0, spatial.AlignCenter, 4, 4, 10, 2},
		{spatial.LeftOf, 1, "", 4, 4, -5, 0},
		{spatial.Below, 0, "", 3, 3, 0, 8},
		{spatial.Below, 1, spatial.AlignRight, 3, 3, 7, 9},
		{spatial.Above, 2, spatial.AlignCenter, 4, 4, 3, -6},
		{spatial.BelowRightOf, 1, "", 2, 2, 11, 9},
		{spatial.AboveLeftOf, 2, "", 2, 2, -4, -4},
		{spatial.AboveRightOf, 1, "", 2, 2, 11, -3},
		{spatial.BelowLeftOf, 1, "", 2, 2, -3, 9},
	}
	for _, tt := range tests {
		t.Run(string(tt.dir)+"/"+string(tt.align), func(t *testing.T) {
			x, y := Place(tt.dir, tt.gap, tt.align, ref, tt.w, tt.h)
			if x != tt.wx || y != tt.wy {
				t.Errorf("Place = (%v, %v), want (%v, %v)", x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	doc := mustParse(t, `floorplan {
  define Closet (2 x 3)
  floor Ground {
    room Hall size (2 x 8) walls [top: solid] right-of Kitchen
    room Kitchen at (0, 0) size (10 x 8) walls [top: solid]
    room Store size Closet walls [top: solid] below Hall gap 1 align right
    room Lost size (1 x 1) walls [top: solid] left-of Nowhere
    room Loose size (1 x 1) walls [top: solid]
  }
}`)
	layout, err := Floor(doc, doc.Floors[0])
	if err != nil {
		t.Fatal(err)
	}

	want := map[string][2]float64{
		"Kitchen": {0, 0},
		"Hall":    {10, 0},
		"Store":   {10, 9},
	}
	for name, pos := range want {
		b, ok := layout.Rooms[name]
		if !ok {
			t.Fatalf("%s not placed", name)
		}
		if math.Abs(b.X-pos[0]) > 1e-9 || math.Abs(b.Y-pos[1]) > 1e-9 {
			t.Errorf("%s at (%v, %v), want (%v, %v)", name, b.X, b.Y, pos[0], pos[1])
		}
	}
	if got := layout.Order; !slices.Equal(got, []string{"Hall", "Kitchen", "Store"}) {
		t.Errorf("Order = %v", got)
	}
	if got := layout.Unresolved; !slices.Equal(got, []string{"Lost", "Loose"}) {
		t.Errorf("Unresolved = %v", got)
	}
	if n := len(layout.Bounds()); n != 3 {
		t.Errorf("Bounds() returned %d entries", n)
	}
}

func TestPositionsCycle(t *testing.T) {
	doc := mustParse(t, `floorplan { floor F {
  room A size (1 x 1) walls [top: solid] right-of B
  room B size (1 x 1) walls [top: solid] right-of A
} }`)
	layout, err := Floor(doc, doc.Floors[0])
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(layout.Unresolved, []string{"A", "B"}) {
		t.Errorf("Unresolved = %v", layout.Unresolved)
	}
}

func TestVariables(t *testing.T) {
	t.Run("unknown variable", func(t *testing.T) {
		doc := mustParse(t, `floorplan { floor F { room A at (0, 0) size Missing walls [top: solid] } }`)
		_, err := Floor(doc, doc.Floors[0])
		if errors.GetCode(err) != errors.ErrCodeUnknownVariable {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("duplicate define", func(t *testing.T) {
		doc := mustParse(t, `floorplan { define S (1 x 1) define S (2 x 2) }`)
		if _, err := NewVariables(doc); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("zero size", func(t *testing.T) {
		doc := mustParse(t, `floorplan { define S (0 x 1) }`)
		if _, err := NewVariables(doc); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestFloorBounds(t *testing.T) {
	doc := mustParse(t, `floorplan {
  define Std (4 x 4)
  floor F {
    room A at (0, 0) size Std walls [top: solid]
    room B size (1 x 1) walls [top: solid] right-of A
    room C at (4, 0) size (2 x 2) walls [top: solid]
  }
}`)
	vars, err := NewVariables(doc)
	if err != nil {
		t.Fatal(err)
	}
	got, err := FloorBounds(doc.Floors[0], vars)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "A" || got[0].Width != 4 || got[1].Name != "C" {
		t.Fatalf("FloorBounds = %+v", got)
	}
}
