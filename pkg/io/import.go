package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/relative"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

// ReadPlan decodes a JSON plan from r.
//
// ReadPlan returns an INVALID_PLAN error if the anchor is missing, a room is
// listed twice, a direction or alignment is unknown, or a reference is
// neither the anchor nor a room listed earlier.
func ReadPlan(r io.Reader) (*relative.Plan, error) {
	var data plan
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPlan, err, "decode plan")
	}
	if data.Anchor == "" {
		return nil, errors.New(errors.ErrCodeInvalidPlan, "plan has no anchor")
	}

	p := &relative.Plan{Anchor: data.Anchor, Unresolved: data.Unresolved}
	placed := map[string]bool{data.Anchor: true}
	for i, rm := range data.Rooms {
		if rm.Room == "" {
			return nil, errors.New(errors.ErrCodeInvalidPlan, "room %d: missing name", i)
		}
		if placed[rm.Room] {
			return nil, errors.New(errors.ErrCodeInvalidPlan, "room %s: placed twice", rm.Room)
		}
		dir, ok := spatial.ParseDirection(rm.Direction)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidPlan, "room %s: unknown direction %q", rm.Room, rm.Direction)
		}
		align, ok := spatial.ParseAlignment(rm.Align)
		if !ok || !align.ValidFor(dir) {
			return nil, errors.New(errors.ErrCodeInvalidPlan, "room %s: alignment %q does not apply to %s", rm.Room, rm.Align, dir)
		}
		if !placed[rm.Reference] {
			return nil, errors.New(errors.ErrCodeInvalidPlan, "room %s: reference %q is not placed before it", rm.Room, rm.Reference)
		}
		placed[rm.Room] = true
		p.Assignments = append(p.Assignments, relative.Assignment{
			Room:      rm.Room,
			Reference: rm.Reference,
			Direction: dir,
			Gap:       rm.Gap,
			Alignment: align,
		})
	}
	return p, nil
}

// ImportPlan reads a plan from a JSON file.
func ImportPlan(path string) (*relative.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "plan %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadPlan(f)
}
