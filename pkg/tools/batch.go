package tools

import (
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

// Step operations.
const (
	OpAdd        = "add"
	OpRemove     = "remove"
	OpMove       = "move"
	OpResize     = "resize"
	OpRename     = "rename"
	OpWalls      = "walls"
	OpLabel      = "label"
	OpRelative   = "relative"
	OpUnposition = "unposition"
	OpConvert    = "convert"
)

var ops = []string{OpAdd, OpRemove, OpMove, OpResize, OpRename, OpWalls, OpLabel, OpRelative, OpUnposition, OpConvert}

// Batch is a list of steps run in order.
//
//	[[step]]
//	op = "move"
//	room = "Kitchen"
//	x = 2
//	y = 0
//
//	[[step]]
//	op = "convert"
//	room = "Kitchen"
type Batch struct {
	Steps []Step `toml:"step"`
}

// Step is one action. Which fields are used depends on Op.
type Step struct {
	Op        string            `toml:"op"`
	Room      string            `toml:"room"`
	Floor     string            `toml:"floor"`
	To        string            `toml:"to"`
	X         float64           `toml:"x"`
	Y         float64           `toml:"y"`
	Width     float64           `toml:"width"`
	Height    float64           `toml:"height"`
	Label     *string           `toml:"label"`
	Walls     map[string]string `toml:"walls"`
	Direction string            `toml:"direction"`
	Reference string            `toml:"reference"`
	Gap       float64           `toml:"gap"`
	Align     string            `toml:"align"`
	Tolerance float64           `toml:"tolerance"`
}

// StepResult records the outcome of one step.
type StepResult struct {
	Index int      `json:"index"`
	Op    string   `json:"op"`
	Room  string   `json:"room"`
	OK    bool     `json:"ok"`
	Error []string `json:"error,omitempty"`
}

// ParseBatch decodes a TOML batch and checks every step's op and room.
func ParseBatch(data []byte) (*Batch, error) {
	var b Batch
	md, err := toml.Decode(string(data), &b)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPlan, err, "decode batch")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidPlan, "unknown key %q", undecoded[0].String())
	}
	for i, s := range b.Steps {
		if !slices.Contains(ops, s.Op) {
			return nil, errors.New(errors.ErrCodeInvalidPlan, "step %d: unknown op %q", i+1, s.Op)
		}
		if s.Room == "" {
			return nil, errors.New(errors.ErrCodeInvalidPlan, "step %d: room is required", i+1)
		}
	}
	return &b, nil
}

// LoadBatch reads and decodes a TOML batch file.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read batch %s", path)
	}
	return ParseBatch(data)
}

// Run applies the batch's steps in order. A failing step leaves the text as
// it was and the batch moves on. An unparsable intermediate document stops
// the batch with an error.
func (tk *Toolkit) Run(src string, b *Batch) (*Result, error) {
	out := &Result{Text: src}
	for i, step := range b.Steps {
		res, err := tk.step(out.Text, step)
		if err != nil {
			if errors.Is(err, errors.ErrCodeEditConflict) {
				res = &Result{Text: out.Text, Errors: []string{errors.UserMessage(err)}}
			} else {
				code := errors.GetCode(err)
				if code == "" {
					code = errors.ErrCodeInternal
				}
				return nil, errors.Wrap(code, err, "step %d (%s %s)", i+1, step.Op, step.Room)
			}
		}

		sr := StepResult{Index: i + 1, Op: step.Op, Room: step.Room, OK: res.Applied, Error: res.Errors}
		out.Steps = append(out.Steps, sr)
		out.Text = res.Text
		out.Applied = out.Applied || res.Applied
		if step.Op == OpConvert {
			out.Unresolved = res.Unresolved
			out.Assignments = res.Assignments
		}
		tk.Logger.Debug("batch step", "index", sr.Index, "op", sr.Op, "room", sr.Room, "ok", sr.OK)
	}
	return out, nil
}

func (tk *Toolkit) step(src string, s Step) (*Result, error) {
	switch s.Op {
	case OpAdd:
		line := dsl.RoomLine{
			Name:  s.Room,
			Size:  dsl.Size{Width: s.Width, Height: s.Height},
			Walls: s.Walls,
			Label: s.Label,
		}
		if s.X != 0 || s.Y != 0 {
			line.Position = &dsl.Point{X: s.X, Y: s.Y}
		}
		if err := errors.ValidateDimension("width", s.Width); err != nil {
			return &Result{Text: src, Errors: []string{errors.UserMessage(err)}}, nil
		}
		if err := errors.ValidateDimension("height", s.Height); err != nil {
			return &Result{Text: src, Errors: []string{errors.UserMessage(err)}}, nil
		}
		return tk.AddRoom(src, s.Floor, line)
	case OpRemove:
		return tk.RemoveRoom(src, s.Room)
	case OpMove:
		return tk.MoveRoom(src, s.Room, s.X, s.Y)
	case OpResize:
		return tk.ResizeRoom(src, s.Room, s.Width, s.Height)
	case OpRename:
		return tk.RenameRoom(src, s.Room, s.To)
	case OpWalls:
		return tk.UpdateWalls(src, s.Room, s.Walls)
	case OpLabel:
		label := ""
		if s.Label != nil {
			label = *s.Label
		}
		return tk.UpdateLabel(src, s.Room, label)
	case OpRelative:
		return tk.SetRelativePosition(src, s.Room, spatial.Direction(s.Direction), s.Reference, s.Gap, spatial.Alignment(s.Align))
	case OpUnposition:
		return tk.RemovePosition(src, s.Room)
	case OpConvert:
		return tk.ConvertToRelative(src, s.Room, s.Tolerance)
	}
	return nil, errors.New(errors.ErrCodeInvalidPlan, "unknown op %q", s.Op)
}
