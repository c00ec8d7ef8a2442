// Package edit turns structural intents into byte-range replacements on
// floorplan source text.
//
// A [Session] wraps one parsed snapshot of a document. Each intent method
// (MoveRoom, ResizeRoom, AddRoom, ...) locates the tokens it needs in the
// concrete syntax tree, queues zero or more [TextEdit] values and reports
// whether it was applicable. Nothing is written until [Session.Apply]:
//
//	s := edit.NewSession(doc)
//	s.MoveRoom("Kitchen", 2, 0)
//	s.UpdateLabel("Kitchen", "Galley")
//	out, err := s.Apply()
//
// # Apply
//
// Every edit's offset refers to the original text. Apply sorts the queue by
// descending offset and replays it, so an already applied edit never shifts
// the target of one still to come. Insertions at the same offset come out
// in the order they were queued. Overlapping edits are rejected with an
// EDIT_CONFLICT error and nothing is applied.
//
// Text outside the edited spans (whitespace, comments, formatting) is
// preserved byte for byte. After Apply the session's tree no longer matches
// the text; parse the result again before starting another session.
//
// # Concurrency
//
// A Session is not safe for concurrent use. Two sessions over the same text
// must not be applied one after the other: the second would replay offsets
// computed against text that no longer exists.
package edit
