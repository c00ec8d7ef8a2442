package dsl

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// numberPrecision is the number of decimals kept when printing numbers.
const numberPrecision = 4

// FormatNumber prints a number the way it is written in documents: no
// exponent, no trailing zeros, at most four decimals, never "-0".
func FormatNumber(v float64) string {
	scale := math.Pow(10, numberPrecision)
	v = math.Round(v*scale) / scale
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Quote returns a string literal for s.
func Quote(s string) string {
	return strconv.Quote(s)
}

// RoomLine holds the fields of a complete room declaration.
type RoomLine struct {
	Name     string
	Position *Point
	Size     Size
	SizeRef  string
	Walls    map[string]string // side -> type; missing sides are solid
	Label    *string
}

// String renders the declaration on one line, without indentation.
func (l RoomLine) String() string {
	var b strings.Builder
	b.WriteString(KwRoom + " " + l.Name)
	if l.Position != nil {
		fmt.Fprintf(&b, " %s", FormatPosition(*l.Position))
	}
	if l.SizeRef != "" {
		b.WriteString(" " + KwSize + " " + l.SizeRef)
	} else {
		fmt.Fprintf(&b, " %s %s", KwSize, FormatDims(l.Size))
	}
	b.WriteString(" " + FormatWalls(l.Walls))
	if l.Label != nil {
		b.WriteString(" " + KwLabel + " " + Quote(*l.Label))
	}
	return b.String()
}

// FormatPosition renders "at (x, y)".
func FormatPosition(p Point) string {
	return fmt.Sprintf("%s (%s, %s)", KwAt, FormatNumber(p.X), FormatNumber(p.Y))
}

// FormatDims renders "(w x h)".
func FormatDims(s Size) string {
	return fmt.Sprintf("(%s x %s)", FormatNumber(s.Width), FormatNumber(s.Height))
}

// FormatWalls renders a walls clause with all four sides in conventional order.
func FormatWalls(walls map[string]string) string {
	parts := make([]string, len(WallSides))
	for i, side := range WallSides {
		typ := walls[side]
		if typ == "" {
			typ = "solid"
		}
		parts[i] = side + ": " + typ
	}
	return KwWalls + " [" + strings.Join(parts, ", ") + "]"
}
