package relative

import (
	"fmt"
	"slices"
	"testing"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

func TestBuildKitchenPantry(t *testing.T) {
	bounds := []spatial.Bounds{
		spatial.NewBounds("Kitchen", 0, 0, 10, 8),
		spatial.NewBounds("Pantry", 10, 0, 4, 8),
	}
	plan, err := Build(bounds, "Kitchen", Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []Assignment{{Room: "Pantry", Reference: "Kitchen", Direction: spatial.RightOf, Gap: 0, Alignment: spatial.AlignTop}}
	if !slices.Equal(plan.Assignments, want) {
		t.Errorf("Assignments = %+v, want %+v", plan.Assignments, want)
	}
	if len(plan.Unresolved) != 0 {
		t.Errorf("Unresolved = %v", plan.Unresolved)
	}
}

func TestBuildReportsUnresolved(t *testing.T) {
	// B and C sit inside A, so neither relates to A; C only relates to B.
	bounds := []spatial.Bounds{
		spatial.NewBounds("A", 0, 0, 20, 20),
		spatial.NewBounds("B", 5, 5, 4, 4),
		spatial.NewBounds("C", 9, 5, 4, 4),
	}
	plan, err := Build(bounds, "A", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Assignments) != 0 {
		t.Errorf("Assignments = %+v, want none", plan.Assignments)
	}
	if !slices.Equal(plan.Unresolved, []string{"B", "C"}) {
		t.Errorf("Unresolved = %v, want [B C]", plan.Unresolved)
	}
}

func TestBuildFormsTreeFromAnchor(t *testing.T) {
	// 3x3 grid of touching cells, anchored in the middle, listed in an
	// order that forces several passes.
	var bounds []spatial.Bounds
	for _, ij := range [][2]int{{0, 0}, {2, 2}, {0, 2}, {2, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}} {
		name := fmt.Sprintf("R%d%d", ij[0], ij[1])
		bounds = append(bounds, spatial.NewBounds(name, float64(ij[0]*4), float64(ij[1]*4), 4, 4))
	}

	plan, err := Build(bounds, "R11", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Unresolved) != 0 {
		t.Fatalf("Unresolved = %v", plan.Unresolved)
	}
	if len(plan.Assignments) != len(bounds)-1 {
		t.Fatalf("got %d assignments, want %d", len(plan.Assignments), len(bounds)-1)
	}

	placed := map[string]bool{"R11": true}
	for _, a := range plan.Assignments {
		if !placed[a.Reference] {
			t.Errorf("%s references %s before it is placed", a.Room, a.Reference)
		}
		if placed[a.Room] {
			t.Errorf("%s assigned twice", a.Room)
		}
		placed[a.Room] = true
	}
}

func TestBuildMaxGap(t *testing.T) {
	bounds := []spatial.Bounds{
		spatial.NewBounds("A", 0, 0, 4, 4),
		spatial.NewBounds("B", 9, 0, 4, 4),
	}
	plan, err := Build(bounds, "A", Options{MaxGap: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(plan.Unresolved, []string{"B"}) {
		t.Errorf("Unresolved = %v", plan.Unresolved)
	}

	plan, _ = Build(bounds, "A", Options{})
	if len(plan.Assignments) != 1 || plan.Assignments[0].Gap != 5 {
		t.Errorf("Assignments = %+v", plan.Assignments)
	}
}

func TestBuildSnapsTinyGaps(t *testing.T) {
	bounds := []spatial.Bounds{
		spatial.NewBounds("A", 0, 0, 4, 4),
		spatial.NewBounds("B", 4.004, 0, 4, 4),
	}
	plan, err := Build(bounds, "A", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Assignments[0].Gap != 0 {
		t.Errorf("Gap = %v, want 0", plan.Assignments[0].Gap)
	}
}

func TestBuildErrors(t *testing.T) {
	bounds := []spatial.Bounds{spatial.NewBounds("A", 0, 0, 1, 1)}
	if _, err := Build(bounds, "Z", Options{}); !errors.Is(err, errors.ErrCodeRoomNotFound) {
		t.Errorf("missing anchor: err = %v", err)
	}
	if _, err := Build(bounds, "A", Options{Tolerance: -1}); !errors.Is(err, errors.ErrCodeInvalidTolerance) {
		t.Errorf("negative tolerance: err = %v", err)
	}
	if _, err := Build(bounds, "A", Options{MaxGap: -1}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("negative max gap: err = %v", err)
	}
}
