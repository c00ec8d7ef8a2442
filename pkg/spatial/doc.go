// Package spatial classifies how two axis-aligned rooms relate to each other.
//
// # Overview
//
// Rooms are reduced to [Bounds] (position plus size, with derived edges and
// centers). [Analyze] compares a subject room against a reference room and
// answers "where is the subject, seen from the reference?" as one of eight
// [Direction] values, together with the gap between the facing edges, an
// optional [Alignment] and a score. [FindAdjacent] runs the analysis against
// many candidates and orders the results best-first.
//
// # Classification
//
// Cardinal directions win over diagonal ones. A subject is right-of its
// reference when it starts at or after the reference's right edge (within
// the tolerance) and the two rooms share some vertical extent; left-of,
// below and above are symmetric. Only when no cardinal direction applies are
// the diagonal compounds (above-left-of, ..., below-right-of) considered.
// Overlapping rooms have no relationship.
//
// # Scoring
//
// Lower scores are better:
//
//	score = distance(centers) + gap - 10 (if aligned) + 5 (if diagonal)
//
// This favours close, aligned, cardinal neighbours, which produce the most
// readable relative-position clauses.
//
// # Tolerance
//
// All comparisons accept a tolerance in document length units: gaps down to
// -tolerance count as touching, and edges within tolerance of each other
// count as aligned.
package spatial
