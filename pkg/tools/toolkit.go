package tools

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/edit"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/locate"
	"github.com/matzehuels/floorplan/pkg/relative"
	"github.com/matzehuels/floorplan/pkg/resolve"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

// Result is the outcome of one action or batch.
type Result struct {
	Text        string                `json:"text"`
	Applied     bool                  `json:"applied"`
	Errors      []string              `json:"errors,omitempty"`
	Unresolved  []string              `json:"unresolved,omitempty"`
	Assignments []relative.Assignment `json:"assignments,omitempty"`
	Steps       []StepResult          `json:"steps,omitempty"`
}

// Toolkit runs actions with shared settings.
type Toolkit struct {
	Tolerance float64
	MaxGap    float64
	Indent    string
	Logger    *log.Logger
}

// New creates a toolkit configured from cfg. A nil cfg uses defaults and a
// nil logger discards output.
func New(cfg *config.Config, logger *log.Logger) *Toolkit {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Toolkit{
		Tolerance: cfg.Tolerance,
		MaxGap:    cfg.MaxGap,
		Indent:    cfg.Indent,
		Logger:    logger,
	}
}

func parse(src string) (*dsl.Document, error) {
	doc, err := dsl.Parse(src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse document")
	}
	return doc, nil
}

// edit runs one session. fn returns false when the intent is inapplicable.
func (tk *Toolkit) edit(src, intent, room string, fn func(*edit.Session) bool) (*Result, error) {
	doc, err := parse(src)
	if err != nil {
		return nil, err
	}
	s := edit.NewSession(doc, edit.WithLogger(tk.Logger), edit.WithIndent(tk.Indent))
	if !fn(s) {
		return &Result{Text: src, Errors: []string{fmt.Sprintf("%s: not applicable to %s", intent, room)}}, nil
	}
	out, err := s.Apply()
	if err != nil {
		return nil, err
	}
	return &Result{Text: out, Applied: true}, nil
}

// AddRoom appends a room to a floor.
func (tk *Toolkit) AddRoom(src, floor string, room dsl.RoomLine) (*Result, error) {
	if err := errors.ValidateRoomName(room.Name); err != nil {
		return &Result{Text: src, Errors: []string{errors.UserMessage(err)}}, nil
	}
	return tk.edit(src, edit.IntentAddRoom, room.Name, func(s *edit.Session) bool {
		return s.AddRoom(floor, room)
	})
}

// RemoveRoom deletes a room.
func (tk *Toolkit) RemoveRoom(src, name string) (*Result, error) {
	return tk.edit(src, edit.IntentRemoveRoom, name, func(s *edit.Session) bool {
		return s.RemoveRoom(name)
	})
}

// MoveRoom sets a room's absolute position.
func (tk *Toolkit) MoveRoom(src, name string, x, y float64) (*Result, error) {
	return tk.edit(src, edit.IntentMoveRoom, name, func(s *edit.Session) bool {
		return s.MoveRoom(name, x, y)
	})
}

// ResizeRoom sets a room's literal size.
func (tk *Toolkit) ResizeRoom(src, name string, width, height float64) (*Result, error) {
	return tk.edit(src, edit.IntentResizeRoom, name, func(s *edit.Session) bool {
		return s.ResizeRoom(name, width, height)
	})
}

// RenameRoom renames a room and every relative clause referring to it.
func (tk *Toolkit) RenameRoom(src, oldName, newName string) (*Result, error) {
	if err := errors.ValidateRoomName(newName); err != nil {
		return &Result{Text: src, Errors: []string{errors.UserMessage(err)}}, nil
	}
	return tk.edit(src, edit.IntentRenameRoom, oldName, func(s *edit.Session) bool {
		if !s.RenameRoom(oldName, newName) {
			return false
		}
		s.RenameReferences(oldName, newName)
		return true
	})
}

// UpdateWalls sets wall types by side.
func (tk *Toolkit) UpdateWalls(src, name string, walls map[string]string) (*Result, error) {
	return tk.edit(src, edit.IntentUpdateWalls, name, func(s *edit.Session) bool {
		return s.UpdateWalls(name, walls)
	})
}

// UpdateLabel sets a room's label.
func (tk *Toolkit) UpdateLabel(src, name, label string) (*Result, error) {
	if err := errors.ValidateLabel(label); err != nil {
		return &Result{Text: src, Errors: []string{errors.UserMessage(err)}}, nil
	}
	return tk.edit(src, edit.IntentUpdateLabel, name, func(s *edit.Session) bool {
		return s.UpdateLabel(name, label)
	})
}

// SetRelativePosition replaces a room's absolute position with a relative
// clause.
func (tk *Toolkit) SetRelativePosition(src, name string, dir spatial.Direction, ref string, gap float64, align spatial.Alignment) (*Result, error) {
	return tk.edit(src, edit.IntentAddRelative, name, func(s *edit.Session) bool {
		if !s.AddRelativePosition(name, dir, ref, gap, align) {
			return false
		}
		s.RemovePosition(name)
		return true
	})
}

// RemovePosition deletes a room's "at (x, y)" clause.
func (tk *Toolkit) RemovePosition(src, name string) (*Result, error) {
	return tk.edit(src, edit.IntentRemovePosition, name, func(s *edit.Session) bool {
		return s.RemovePosition(name)
	})
}

// ConvertToRelative rewrites the anchor's floor with relative positions.
// A zero tolerance uses the toolkit's. Validation problems are returned in
// the result, not as an error.
func (tk *Toolkit) ConvertToRelative(src, anchor string, tolerance float64) (*Result, error) {
	doc, err := parse(src)
	if err != nil {
		return nil, err
	}
	if tolerance == 0 {
		tolerance = tk.Tolerance
	}
	res, err := relative.Convert(doc, anchor, relative.Options{
		Tolerance: tolerance,
		MaxGap:    tk.MaxGap,
		Logger:    tk.Logger,
	})
	var verr *relative.ValidationError
	if stderrors.As(err, &verr) {
		return &Result{Text: src, Errors: verr.Problems}, nil
	}
	if errors.Is(err, errors.ErrCodeInvalidTolerance) {
		return &Result{Text: src, Errors: []string{errors.UserMessage(err)}}, nil
	}
	if err != nil {
		return nil, err
	}

	out := &Result{
		Text:        res.Text,
		Applied:     len(res.Converted) > 0,
		Unresolved:  res.Plan.Unresolved,
		Assignments: res.Plan.Assignments,
	}
	for _, name := range res.Kept {
		out.Errors = append(out.Errors, fmt.Sprintf("%s: relative clause would move the room; kept absolute position", name))
	}
	return out, nil
}

// Relations lists the relationships of a room to the other top-level rooms
// on its floor, best first.
func (tk *Toolkit) Relations(src, name string) ([]spatial.Relationship, error) {
	doc, err := parse(src)
	if err != nil {
		return nil, err
	}
	floor, ok := locate.FloorOf(doc, name)
	if !ok {
		return nil, errors.New(errors.ErrCodeRoomNotFound, "no top-level room named %q", name)
	}
	layout, err := resolve.Floor(doc, floor)
	if err != nil {
		return nil, err
	}
	subject, ok := layout.Rooms[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnresolvable, "room %q cannot be placed", name)
	}
	return spatial.FindAdjacent(subject, layout.Bounds(), spatial.Options{Tolerance: tk.Tolerance, MaxGap: tk.MaxGap}), nil
}
