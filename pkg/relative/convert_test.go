package relative

import (
	stderrors "errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/resolve"
)

func mustParse(t *testing.T, src string) *dsl.Document {
	t.Helper()
	doc, err := dsl.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

const kitchenPantry = `floorplan {
  floor ground {
    room Kitchen at (0, 0) size (10 x 8) walls [top: solid, right: solid, bottom: solid, left: solid]
    room Pantry at (10, 0) size (4 x 8) walls [top: solid, right: solid, bottom: solid, left: door]
  }
}
`

func TestConvertKitchenPantry(t *testing.T) {
	res, err := Convert(mustParse(t, kitchenPantry), "Kitchen", Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Replace(kitchenPantry,
		"room Pantry at (10, 0) size (4 x 8) walls [top: solid, right: solid, bottom: solid, left: door]",
		"room Pantry size (4 x 8) walls [top: solid, right: solid, bottom: solid, left: door] right-of Kitchen", 1)
	if res.Text != want {
		t.Errorf("got:\n%s\nwant:\n%s", res.Text, want)
	}
	if !slices.Equal(res.Converted, []string{"Pantry"}) {
		t.Errorf("Converted = %v", res.Converted)
	}
}

const house = `floorplan {
  define Cell (4 x 4)
  # a 3x3 block of cells plus a detached shed
  floor ground {
    room R00 at (0, 0) size Cell walls [top: solid]
    room R10 at (4, 0) size Cell walls [top: solid]
    room R20 at (8, 0) size Cell walls [top: solid]
    room R01 at (0, 4) size Cell walls [top: solid]
    room R11 at (4, 4) size Cell walls [top: solid] label "Hub"
    room R21 at (8, 4) size (4 x 2) walls [top: solid]
    room R02 at (0, 8) size (2 x 4) walls [top: solid]
    room R12 at (4.5, 8) size (3 x 4) walls [top: solid]
    room R22 at (9, 9) size (3 x 3) walls [top: solid]
    room Shed at (30, 30) size (2 x 2) walls [top: solid]
  }
}
`

func TestConvertRoundTrip(t *testing.T) {
	doc := mustParse(t, house)
	before, err := resolve.Floor(doc, doc.Floors[0])
	if err != nil {
		t.Fatal(err)
	}

	// The shed is diagonal to everything at a distance; MaxGap leaves it
	// unresolved.
	res, err := Convert(doc, "R11", Options{MaxGap: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Converted) == 0 {
		t.Fatal("nothing converted")
	}

	out := mustParse(t, res.Text)
	after, err := resolve.Floor(out, out.Floors[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Unresolved) != 0 {
		t.Fatalf("rooms no longer resolve: %v", after.Unresolved)
	}
	for name, b := range before.Rooms {
		a, ok := after.Rooms[name]
		if !ok {
			t.Errorf("%s missing after conversion", name)
			continue
		}
		if math.Abs(a.X-b.X) > DefaultTolerance || math.Abs(a.Y-b.Y) > DefaultTolerance {
			t.Errorf("%s moved from (%v, %v) to (%v, %v)", name, b.X, b.Y, a.X, a.Y)
		}
	}

	for _, r := range out.Floors[0].Rooms {
		converted := slices.Contains(res.Converted, r.Name)
		if converted && (r.Position != nil || r.Relative == nil) {
			t.Errorf("%s should be positioned relatively", r.Name)
		}
		if !converted && r.Position == nil {
			t.Errorf("%s should keep its absolute position", r.Name)
		}
	}
	if !slices.Contains(res.Plan.Unresolved, "Shed") {
		t.Errorf("Shed should be unresolved: %v", res.Plan.Unresolved)
	}
	if !strings.Contains(res.Text, "# a 3x3 block of cells plus a detached shed") {
		t.Error("comment lost")
	}
}

func TestValidate(t *testing.T) {
	src := `floorplan {
  floor ground {
    room Hub size (4 x 4) walls [top: solid]
    room Side size Missing walls [top: solid] right-of Hub
    room A at (0, 0) size (5 x 5) walls [top: solid]
    room B at (4, 4) size (5 x 5) walls [top: solid]
    room C at (5, 0) size (5 x 5) walls [top: solid]
  }
}`
	err := Validate(mustParse(t, src), "Hub", Options{})
	var verr *ValidationError
	if !stderrors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	want := []string{
		`anchor room "Hub" has no explicit position`,
		`room "Side" has no explicit position`,
		`room "Side": unknown size variable "Missing"`,
		`rooms "A" and "B" overlap`,
		`rooms "B" and "C" overlap`,
	}
	if !slices.Equal(verr.Problems, want) {
		t.Errorf("Problems =\n%s\nwant\n%s", strings.Join(verr.Problems, "\n"), strings.Join(want, "\n"))
	}
}

func TestValidateAnchorMissing(t *testing.T) {
	doc := mustParse(t, kitchenPantry)

	err := Validate(doc, "Garage", Options{})
	var verr *ValidationError
	if !stderrors.As(err, &verr) || len(verr.Problems) != 1 {
		t.Fatalf("err = %v", err)
	}

	err = Validate(doc, "Garage", Options{Floor: "ground"})
	if !stderrors.As(err, &verr) || verr.Problems[0] != `anchor room "Garage" not found on floor "ground"` {
		t.Fatalf("err = %v", err)
	}

	if err := Validate(doc, "Kitchen", Options{}); err != nil {
		t.Fatalf("valid floor: %v", err)
	}
}

func TestConvertRejectsInvalidFloor(t *testing.T) {
	src := strings.Replace(kitchenPantry, "at (10, 0)", "at (9, 0)", 1)
	_, err := Convert(mustParse(t, src), "Kitchen", Options{})
	var verr *ValidationError
	if !stderrors.As(err, &verr) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if !errors.Is(err, errors.ErrCodeValidation) {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeValidation)
	}
}

func TestConvertNameRepeatedOnOtherFloor(t *testing.T) {
	const src = `floorplan {
  floor ground {
    room Hall at (50, 50) size (4 x 4) walls [top: solid]
  }
  floor upper {
    room Bath at (0, 0) size (4 x 4) walls [top: solid]
    room Hall at (4, 0) size (4 x 4) walls [top: solid]
  }
}
`
	res, err := Convert(mustParse(t, src), "Bath", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Converted, []string{"Hall"}) {
		t.Fatalf("Converted = %v", res.Converted)
	}
	want := strings.Replace(src,
		"room Hall at (4, 0) size (4 x 4) walls [top: solid]",
		"room Hall size (4 x 4) walls [top: solid] right-of Bath", 1)
	if res.Text != want {
		t.Errorf("got:\n%s\nwant:\n%s", res.Text, want)
	}

	doc := mustParse(t, res.Text)
	upper, _ := doc.Floor("upper")
	vars, err := resolve.NewVariables(doc)
	if err != nil {
		t.Fatal(err)
	}
	layout, err := resolve.Positions(upper.Rooms, vars)
	if err != nil {
		t.Fatal(err)
	}
	if b := layout.Rooms["Hall"]; b.X != 4 || b.Y != 0 {
		t.Errorf("upper Hall resolves to (%v, %v), want (4, 0)", b.X, b.Y)
	}
}

func TestValidateDuplicateNames(t *testing.T) {
	const src = `floorplan {
  floor upper {
    room Bath at (0, 0) size (4 x 4) walls [top: solid]
    room Hall at (10, 0) size (4 x 4) walls [top: solid]
    room Hall at (0, 8) size (4 x 4) walls [top: solid]
    room Den at (20, 0) size (4 x 4) walls [top: solid] composed of [
      sub-room Bath at (1, 1) size (1 x 1) walls [top: solid]
    ]
  }
}
`
	doc := mustParse(t, src)
	err := Validate(doc, "Bath", Options{})
	var verr *ValidationError
	if !stderrors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	want := []string{
		`room "Hall" is declared more than once on floor "upper"`,
		`room "Bath" is declared more than once on floor "upper"`,
	}
	if !slices.Equal(verr.Problems, want) {
		t.Errorf("Problems = %q, want %q", verr.Problems, want)
	}
	if !errors.Is(err, errors.ErrCodeDuplicateRoom) {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeDuplicateRoom)
	}

	if _, err := Convert(doc, "Bath", Options{}); !errors.Is(err, errors.ErrCodeDuplicateRoom) {
		t.Errorf("Convert err = %v, want DUPLICATE_ROOM", err)
	}
}
