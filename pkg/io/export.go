package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/floorplan/pkg/relative"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

type plan struct {
	Anchor     string   `json:"anchor"`
	Rooms      []room   `json:"rooms"`
	Unresolved []string `json:"unresolved,omitempty"`
}

type room struct {
	Room      string  `json:"room"`
	Direction string  `json:"direction"`
	Reference string  `json:"reference"`
	Gap       float64 `json:"gap,omitempty"`
	Align     string  `json:"align,omitempty"`
}

type relation struct {
	Reference string  `json:"reference"`
	Direction string  `json:"direction"`
	Gap       float64 `json:"gap"`
	Align     string  `json:"align,omitempty"`
	Score     float64 `json:"score"`
}

type relations struct {
	Room      string     `json:"room"`
	Relations []relation `json:"relations"`
}

// WritePlan encodes a plan as indented JSON.
func WritePlan(p *relative.Plan, w io.Writer) error {
	out := plan{
		Anchor:     p.Anchor,
		Rooms:      make([]room, len(p.Assignments)),
		Unresolved: p.Unresolved,
	}
	for i, a := range p.Assignments {
		out.Rooms[i] = room{
			Room:      a.Room,
			Direction: string(a.Direction),
			Reference: a.Reference,
			Gap:       a.Gap,
			Align:     string(a.Alignment),
		}
	}
	return encode(w, out)
}

// ExportPlan writes a plan to a JSON file at path.
func ExportPlan(p *relative.Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePlan(p, f)
}

// WriteRelations encodes the relationships of one room, best first.
func WriteRelations(subject string, rels []spatial.Relationship, w io.Writer) error {
	out := relations{Room: subject, Relations: make([]relation, len(rels))}
	for i, r := range rels {
		out.Relations[i] = relation{
			Reference: r.Reference,
			Direction: string(r.Direction),
			Gap:       r.Gap,
			Align:     string(r.Alignment),
			Score:     r.Score,
		}
	}
	return encode(w, out)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
