package edit

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/locate"
	"github.com/matzehuels/floorplan/pkg/observability"
)

// DefaultIndent is used for new rooms on a floor that has none to copy from.
const DefaultIndent = "    "

// TextEdit replaces Length bytes at Offset with NewText. Length 0 is an
// insertion; an empty NewText is a deletion.
type TextEdit struct {
	Offset  int
	Length  int
	NewText string

	seq int
}

// End returns the offset just past the replaced range.
func (e TextEdit) End() int { return e.Offset + e.Length }

// Session collects edits against one document snapshot.
type Session struct {
	// ID identifies the session in logs and hooks.
	ID uuid.UUID

	doc    *dsl.Document
	floor  *dsl.Floor // nil: rooms are looked up across the document
	src    string
	edits  []TextEdit
	seq    int
	indent string
	logger *log.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session's logger.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIndent sets the indentation used for new rooms when the floor has no
// room to copy it from.
func WithIndent(indent string) SessionOption {
	return func(s *Session) {
		if indent != "" {
			s.indent = indent
		}
	}
}

// WithFloor restricts room lookups to one floor of the document, so a name
// repeated on another floor is never touched.
func WithFloor(f *dsl.Floor) SessionOption {
	return func(s *Session) {
		s.floor = f
	}
}

// NewSession starts an editing session over doc and its source text.
func NewSession(doc *dsl.Document, opts ...SessionOption) *Session {
	s := &Session{
		ID:     uuid.New(),
		doc:    doc,
		src:    doc.Source,
		indent: DefaultIndent,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Document returns the snapshot the session edits.
func (s *Session) Document() *dsl.Document { return s.doc }

// Source returns the original text.
func (s *Session) Source() string { return s.src }

// Edits returns a copy of the queued edits in queue order.
func (s *Session) Edits() []TextEdit {
	return slices.Clone(s.edits)
}

// Len returns the number of queued edits.
func (s *Session) Len() int { return len(s.edits) }

// Clear discards the queued edits without applying them.
func (s *Session) Clear() {
	s.edits = nil
}

// queue records an edit. Spans outside the text indicate a bug in span
// computation and panic.
func (s *Session) queue(intent string, offset, length int, text string) {
	if offset < 0 || length < 0 || offset+length > len(s.src) {
		panic(fmt.Sprintf("edit: %s: span [%d, %d) outside text of length %d", intent, offset, offset+length, len(s.src)))
	}
	s.seq++
	s.edits = append(s.edits, TextEdit{Offset: offset, Length: length, NewText: text, seq: s.seq})
	s.logger.Debug("queued edit", "session", s.ID, "intent", intent, "offset", offset, "length", length, "text", text)
	observability.Edit().OnQueue(s.ID.String(), intent, offset, length)
}

func (s *Session) insert(intent string, offset int, text string) {
	s.queue(intent, offset, 0, text)
}

func (s *Session) replace(intent string, span dsl.Span, text string) {
	s.queue(intent, span.Offset, span.Len(), text)
}

// find looks a room up in the session's scope.
func (s *Session) find(name string) (*dsl.Room, bool) {
	if s.floor != nil {
		return locate.FindRoomIn(s.floor, name)
	}
	return locate.FindRoom(s.doc, name)
}

func (s *Session) references(name string) []*dsl.Room {
	if s.floor != nil {
		return locate.ReferencesIn(s.floor, name)
	}
	return locate.ReferencesTo(s.doc, name)
}

// reject logs an inapplicable intent and returns false.
func (s *Session) reject(intent, room, reason string) bool {
	s.logger.Debug("intent not applicable", "session", s.ID, "intent", intent, "room", room, "reason", reason)
	observability.Edit().OnRejected(s.ID.String(), intent, room)
	return false
}

// Apply replays the queued edits against the original text and returns the
// result. The queue is emptied on success. When two edits overlap, Apply
// returns an EDIT_CONFLICT error and leaves the queue untouched.
func (s *Session) Apply() (string, error) {
	start := time.Now()
	edits := sortEdits(s.edits)

	if err := checkOverlap(edits); err != nil {
		observability.Edit().OnApply(s.ID.String(), len(edits), 0, time.Since(start), err)
		return "", err
	}

	out := s.src
	for _, e := range edits {
		out = out[:e.Offset] + e.NewText + out[e.End():]
	}

	s.logger.Debug("applied edits", "session", s.ID, "edits", len(edits), "bytes", len(out))
	observability.Edit().OnApply(s.ID.String(), len(edits), len(out), time.Since(start), nil)
	s.edits = nil
	return out, nil
}

// sortEdits orders edits for replay: descending offset; at equal offsets,
// replacements before insertions and later-queued insertions first, which
// leaves same-offset insertions in queue order in the output.
func sortEdits(edits []TextEdit) []TextEdit {
	out := slices.Clone(edits)
	slices.SortFunc(out, func(a, b TextEdit) int {
		if c := cmp.Compare(b.Offset, a.Offset); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Length, a.Length); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})
	return out
}

// checkOverlap expects edits in replay order.
func checkOverlap(edits []TextEdit) error {
	for i := 1; i < len(edits); i++ {
		prev, cur := edits[i-1], edits[i]
		if cur.End() > prev.Offset {
			return errors.New(errors.ErrCodeEditConflict,
				"edits [%d, %d) and [%d, %d) overlap", cur.Offset, cur.End(), prev.Offset, prev.End())
		}
	}
	return nil
}

// lineStart returns the offset of the first byte of the line containing off.
func (s *Session) lineStart(off int) int {
	return strings.LastIndexByte(s.src[:off], '\n') + 1
}

// indentOf returns the whitespace between the start of the line and off, or
// false if anything else precedes off on its line.
func (s *Session) indentOf(off int) (string, bool) {
	prefix := s.src[s.lineStart(off):off]
	if strings.TrimLeft(prefix, " \t") != "" {
		return "", false
	}
	return prefix, true
}
