package resolve

import (
	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

// Layout is the resolved geometry of a group of sibling rooms.
type Layout struct {
	// Bounds of every placed room, by name.
	Rooms map[string]spatial.Bounds

	// Order lists placed rooms in declaration order.
	Order []string

	// Unresolved lists rooms that could not be placed, in declaration order.
	Unresolved []string
}

// Bounds returns the placed rooms' bounds in declaration order.
func (l *Layout) Bounds() []spatial.Bounds {
	out := make([]spatial.Bounds, 0, len(l.Order))
	for _, name := range l.Order {
		out = append(out, l.Rooms[name])
	}
	return out
}

// Positions places sibling rooms. Sub-rooms are not descended into; their
// coordinates live in their parent's frame and are resolved by calling
// Positions on the parent's SubRooms.
//
// An error is returned only when a room's size cannot be determined.
func Positions(rooms []*dsl.Room, vars Variables) (*Layout, error) {
	sizes := make(map[string]dsl.Size, len(rooms))
	for _, r := range rooms {
		s, err := vars.Size(r)
		if err != nil {
			return nil, err
		}
		sizes[r.Name] = s
	}

	placed := make(map[string]spatial.Bounds, len(rooms))
	var pending []*dsl.Room
	for _, r := range rooms {
		if r.Position != nil {
			s := sizes[r.Name]
			placed[r.Name] = spatial.NewBounds(r.Name, r.Position.X, r.Position.Y, s.Width, s.Height)
			continue
		}
		pending = append(pending, r)
	}

	// Each pass places every room whose reference is already placed.
	for progress := true; progress && len(pending) > 0; {
		progress = false
		next := pending[:0]
		for _, r := range pending {
			ref, ok := reference(r, placed)
			if !ok {
				next = append(next, r)
				continue
			}
			s := sizes[r.Name]
			dir, _ := spatial.ParseDirection(r.Relative.Direction)
			align, _ := spatial.ParseAlignment(r.Relative.Alignment)
			x, y := Place(dir, r.Relative.GapOrZero(), align, ref, s.Width, s.Height)
			placed[r.Name] = spatial.NewBounds(r.Name, x, y, s.Width, s.Height)
			progress = true
		}
		pending = next
	}

	layout := &Layout{Rooms: placed}
	for _, r := range rooms {
		if _, ok := placed[r.Name]; ok {
			layout.Order = append(layout.Order, r.Name)
		} else {
			layout.Unresolved = append(layout.Unresolved, r.Name)
		}
	}
	return layout, nil
}

func reference(r *dsl.Room, placed map[string]spatial.Bounds) (spatial.Bounds, bool) {
	if r.Relative == nil {
		return spatial.Bounds{}, false
	}
	b, ok := placed[r.Relative.Reference]
	return b, ok
}

// Place computes the top-left corner of a width x height room positioned
// dir of ref with the given gap. An empty alignment means the direction's
// default (top for right-of/left-of, left for above/below). Diagonal
// directions apply the gap on both axes and ignore alignment.
func Place(dir spatial.Direction, gap float64, align spatial.Alignment, ref spatial.Bounds, width, height float64) (x, y float64) {
	if align == spatial.AlignNone {
		align = dir.DefaultAlignment()
	}

	left := ref.X - gap - width
	right := ref.Right + gap
	up := ref.Y - gap - height
	down := ref.Bottom + gap

	switch dir {
	case spatial.RightOf, spatial.LeftOf:
		x = right
		if dir == spatial.LeftOf {
			x = left
		}
		switch align {
		case spatial.AlignBottom:
			y = ref.Bottom - height
		case spatial.AlignCenter:
			y = ref.CenterY - height/2
		default:
			y = ref.Y
		}
	case spatial.Above, spatial.Below:
		y = down
		if dir == spatial.Above {
			y = up
		}
		switch align {
		case spatial.AlignRight:
			x = ref.Right - width
		case spatial.AlignCenter:
			x = ref.CenterX - width/2
		default:
			x = ref.X
		}
	case spatial.AboveLeftOf:
		x, y = left, up
	case spatial.AboveRightOf:
		x, y = right, up
	case spatial.BelowLeftOf:
		x, y = left, down
	case spatial.BelowRightOf:
		x, y = right, down
	default:
		x, y = ref.X, ref.Y
	}
	return x, y
}
