package relative

import (
	"math"
	"time"

	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/edit"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/resolve"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

// Result is the outcome of Convert.
type Result struct {
	// Text is the rewritten document.
	Text string

	// Plan is the relative layout that was computed.
	Plan *Plan

	// Converted lists the rooms now positioned by a relative clause.
	Converted []string

	// Kept lists assigned rooms left at their absolute position because the
	// clause would have moved them.
	Kept []string
}

// Convert rewrites the anchor's floor so that every room reachable from the
// anchor is positioned relative to a neighbour. Unresolved and kept rooms
// retain their "at (x, y)". The document must be freshly parsed from its
// source.
func Convert(doc *dsl.Document, anchor string, opts Options) (res *Result, err error) {
	opts = opts.withDefaults()
	start := time.Now()
	rooms := 0
	if f, ok := floorFor(doc, anchor, opts.Floor); ok {
		rooms = len(f.Rooms)
	}
	observability.Convert().OnConvertStart(anchor, rooms)
	defer func() {
		assigned, unresolved := 0, 0
		if res != nil {
			assigned, unresolved = len(res.Converted), len(res.Plan.Unresolved)
		}
		observability.Convert().OnConvertComplete(anchor, assigned, unresolved, time.Since(start), err)
	}()

	if err := Validate(doc, anchor, opts); err != nil {
		return nil, err
	}
	floor, _ := floorFor(doc, anchor, opts.Floor)
	vars, err := resolve.NewVariables(doc)
	if err != nil {
		return nil, err
	}
	bounds, err := resolve.FloorBounds(floor, vars)
	if err != nil {
		return nil, err
	}

	plan, err := Build(bounds, anchor, opts)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]spatial.Bounds, len(bounds))
	for _, b := range bounds {
		byName[b.Name] = b
	}

	res = &Result{Plan: plan}
	s := edit.NewSession(doc, edit.WithLogger(opts.Logger), edit.WithFloor(floor))
	for _, a := range plan.Assignments {
		room, ref := byName[a.Room], byName[a.Reference]
		x, y := resolve.Place(a.Direction, a.Gap, a.Alignment, ref, room.Width, room.Height)
		if math.Abs(x-room.X) > opts.Tolerance || math.Abs(y-room.Y) > opts.Tolerance {
			opts.Logger.Debug("keeping absolute position", "room", a.Room, "want", [2]float64{room.X, room.Y}, "clause", [2]float64{x, y})
			res.Kept = append(res.Kept, a.Room)
			continue
		}
		if !s.AddRelativePosition(a.Room, a.Direction, a.Reference, a.Gap, a.Alignment) {
			res.Kept = append(res.Kept, a.Room)
			continue
		}
		s.RemovePosition(a.Room)
		res.Converted = append(res.Converted, a.Room)
	}

	if res.Text, err = s.Apply(); err != nil {
		return nil, err
	}
	opts.Logger.Debug("converted floor", "floor", floor.Name, "anchor", anchor, "converted", len(res.Converted), "kept", len(res.Kept), "unresolved", len(plan.Unresolved))
	return res, nil
}
