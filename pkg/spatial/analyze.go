package spatial

import (
	"cmp"
	"math"
	"slices"
)

// Score adjustments.
const (
	alignmentBonus  = -10.0
	diagonalPenalty = 5.0
)

// Relationship describes where Subject lies relative to Reference.
type Relationship struct {
	Subject   string
	Reference string
	Direction Direction
	Gap       float64
	Alignment Alignment
	Score     float64
}

// Analyze classifies subject relative to reference. It returns false when
// the rooms have no relationship (they overlap).
//
// Cardinal directions are tested first, in the order right-of, left-of,
// below, above; the first that applies wins. The diagonal compounds are
// only tried afterwards. The gap of a diagonal relationship is the smaller
// of its two axis gaps.
func Analyze(subject, reference Bounds, tol float64) (Relationship, bool) {
	gapRight := subject.X - reference.Right
	gapLeft := reference.X - subject.Right
	gapBelow := subject.Y - reference.Bottom
	gapAbove := reference.Y - subject.Bottom

	admissible := func(gap float64) bool { return gap >= -tol }

	// Projections on the orthogonal axis, inflated by the tolerance so that
	// rooms meeting at a corner still count as neighbours.
	verticalOverlap := subject.Y < reference.Bottom+tol && subject.Bottom > reference.Y-tol
	horizontalOverlap := subject.X < reference.Right+tol && subject.Right > reference.X-tol

	overlapX := subject.X < reference.Right && subject.Right > reference.X
	overlapY := subject.Y < reference.Bottom && subject.Bottom > reference.Y

	var dir Direction
	var gap float64
	switch {
	case admissible(gapRight) && verticalOverlap && !overlapX:
		dir, gap = RightOf, gapRight
	case admissible(gapLeft) && verticalOverlap && !overlapX:
		dir, gap = LeftOf, gapLeft
	case admissible(gapBelow) && horizontalOverlap && !overlapY:
		dir, gap = Below, gapBelow
	case admissible(gapAbove) && horizontalOverlap && !overlapY:
		dir, gap = Above, gapAbove
	case admissible(gapRight) && admissible(gapBelow):
		dir, gap = BelowRightOf, math.Min(gapRight, gapBelow)
	case admissible(gapLeft) && admissible(gapBelow):
		dir, gap = BelowLeftOf, math.Min(gapLeft, gapBelow)
	case admissible(gapRight) && admissible(gapAbove):
		dir, gap = AboveRightOf, math.Min(gapRight, gapAbove)
	case admissible(gapLeft) && admissible(gapAbove):
		dir, gap = AboveLeftOf, math.Min(gapLeft, gapAbove)
	default:
		return Relationship{}, false
	}

	rel := Relationship{
		Subject:   subject.Name,
		Reference: reference.Name,
		Direction: dir,
		Gap:       gap,
		Alignment: alignment(subject, reference, dir, tol),
	}
	rel.Score = score(subject, reference, rel)
	return rel, true
}

// alignment finds which edges line up. Only cardinal relationships are
// aligned: side by side rooms compare their top, bottom and centerY; stacked
// rooms compare their left, right and centerX.
func alignment(subject, reference Bounds, dir Direction, tol float64) Alignment {
	near := func(a, b float64) bool { return math.Abs(a-b) <= tol }
	switch {
	case dir.IsHorizontal():
		switch {
		case near(subject.Y, reference.Y):
			return AlignTop
		case near(subject.Bottom, reference.Bottom):
			return AlignBottom
		case near(subject.CenterY, reference.CenterY):
			return AlignCenter
		}
	case dir.IsVertical():
		switch {
		case near(subject.X, reference.X):
			return AlignLeft
		case near(subject.Right, reference.Right):
			return AlignRight
		case near(subject.CenterX, reference.CenterX):
			return AlignCenter
		}
	}
	return AlignNone
}

func score(subject, reference Bounds, rel Relationship) float64 {
	s := subject.Distance(reference) + rel.Gap
	if rel.Alignment != AlignNone {
		s += alignmentBonus
	}
	if rel.Direction.IsDiagonal() {
		s += diagonalPenalty
	}
	return s
}

// Options tune adjacency searches.
type Options struct {
	// Tolerance is the slack, in document units, for touching edges and
	// alignment checks.
	Tolerance float64

	// MaxGap drops relationships whose gap exceeds it. Zero means unlimited.
	MaxGap float64
}

// FindAdjacent analyzes subject against every candidate and returns the
// relationships found, best (lowest score) first. Candidates with the
// subject's own name, candidates without a relationship and, when MaxGap is
// set, candidates further than MaxGap away are dropped. Equal scores keep
// candidate order.
func FindAdjacent(subject Bounds, candidates []Bounds, opts Options) []Relationship {
	var out []Relationship
	for _, c := range candidates {
		if c.Name == subject.Name {
			continue
		}
		rel, ok := Analyze(subject, c, opts.Tolerance)
		if !ok {
			continue
		}
		if opts.MaxGap > 0 && rel.Gap > opts.MaxGap+opts.Tolerance {
			continue
		}
		out = append(out, rel)
	}
	slices.SortStableFunc(out, func(a, b Relationship) int {
		return cmp.Compare(a.Score, b.Score)
	})
	return out
}
