package resolve

import (
	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

// FloorBounds extracts bounds for the floor's top-level rooms that carry an
// explicit position, in declaration order. Rooms placed by a relative clause
// are skipped; use [Positions] to place them.
func FloorBounds(floor *dsl.Floor, vars Variables) ([]spatial.Bounds, error) {
	var out []spatial.Bounds
	for _, r := range floor.Rooms {
		size, err := vars.Size(r)
		if err != nil {
			return nil, err
		}
		if b, ok := spatial.FromRoom(r, size); ok {
			out = append(out, b)
		}
	}
	return out, nil
}

// Floor resolves every top-level room of a floor.
func Floor(doc *dsl.Document, floor *dsl.Floor) (*Layout, error) {
	vars, err := NewVariables(doc)
	if err != nil {
		return nil, err
	}
	return Positions(floor.Rooms, vars)
}
