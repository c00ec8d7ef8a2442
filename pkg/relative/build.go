package relative

import (
	"math"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

// Assignment places Room relative to Reference.
type Assignment struct {
	Room      string
	Reference string
	Direction spatial.Direction
	Gap       float64
	Alignment spatial.Alignment
}

// Plan is the outcome of Build.
type Plan struct {
	// Anchor keeps its absolute position.
	Anchor string

	// Assignments in placement order: each reference is the anchor or a room
	// assigned earlier.
	Assignments []Assignment

	// Unresolved rooms had no relationship to any placed room.
	Unresolved []string
}

// Build assigns every room in bounds a position relative to the anchor or
// to a previously assigned room. Pending rooms are visited in the order they
// appear in bounds; a room placed during a pass is available as a reference
// to the rooms after it in the same pass.
func Build(bounds []spatial.Bounds, anchor string, opts Options) (*Plan, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var resolved, pending []spatial.Bounds
	for _, b := range bounds {
		if b.Name == anchor {
			resolved = append(resolved, b)
		} else {
			pending = append(pending, b)
		}
	}
	if len(resolved) == 0 {
		return nil, errors.New(errors.ErrCodeRoomNotFound, "anchor room %q not found", anchor)
	}

	plan := &Plan{Anchor: anchor}
	passes := len(pending) + 1
	for pass := 0; pass < passes && len(pending) > 0; pass++ {
		progress := false
		next := pending[:0]
		for _, room := range pending {
			rels := spatial.FindAdjacent(room, resolved, opts.spatial())
			if len(rels) == 0 {
				next = append(next, room)
				continue
			}
			best := rels[0]
			a := Assignment{
				Room:      room.Name,
				Reference: best.Reference,
				Direction: best.Direction,
				Gap:       best.Gap,
				Alignment: best.Alignment,
			}
			if math.Abs(a.Gap) < opts.Tolerance {
				a.Gap = 0
			}
			plan.Assignments = append(plan.Assignments, a)
			resolved = append(resolved, room)
			progress = true
			opts.Logger.Debug("assigned room", "room", a.Room, "ref", a.Reference, "dir", a.Direction, "gap", a.Gap, "align", a.Alignment, "pass", pass)
		}
		pending = next
		if !progress {
			break
		}
	}

	for _, b := range pending {
		plan.Unresolved = append(plan.Unresolved, b.Name)
	}
	if len(plan.Unresolved) > 0 {
		opts.Logger.Debug("unresolved rooms", "anchor", anchor, "rooms", plan.Unresolved)
	}
	return plan, nil
}
