package edit

import (
	"slices"
	"strings"

	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/locate"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

// Intent names used in logs and hooks.
const (
	IntentAddRoom        = "add-room"
	IntentRemoveRoom     = "remove-room"
	IntentResizeRoom     = "resize-room"
	IntentMoveRoom       = "move-room"
	IntentRenameRoom     = "rename-room"
	IntentRenameRefs     = "rename-references"
	IntentUpdateWalls    = "update-walls"
	IntentUpdateLabel    = "update-label"
	IntentAddRelative    = "add-relative"
	IntentRemovePosition = "remove-position"
)

// AddRoom appends a room declaration to the end of a floor. The new line
// copies the indentation of the floor's first room. It is not applicable
// when the floor does not exist or a room with that name already exists.
func (s *Session) AddRoom(floorName string, room dsl.RoomLine) bool {
	floor, ok := s.doc.Floor(floorName)
	if !ok {
		return s.reject(IntentAddRoom, room.Name, "no such floor")
	}
	if _, exists := s.find(room.Name); exists {
		return s.reject(IntentAddRoom, room.Name, "room exists")
	}
	brace, ok := locate.FloorCloseBrace(floor)
	if !ok {
		return s.reject(IntentAddRoom, room.Name, "floor has no closing brace")
	}

	indent := s.indent
	if len(floor.Rooms) > 0 {
		if in, ok := s.indentOf(floor.Rooms[0].Node.Offset); ok {
			indent = in
		}
	}

	line := indent + room.String() + "\n"
	if _, ok := s.indentOf(brace.Offset); ok {
		s.insert(IntentAddRoom, s.lineStart(brace.Offset), line)
	} else {
		s.insert(IntentAddRoom, brace.Offset, "\n"+line)
	}
	return true
}

// RemoveRoom deletes a room (with its sub-rooms). When the room sits on a
// line of its own, the line break before it and its indentation go too,
// along with a trailing comment on the same line.
func (s *Session) RemoveRoom(name string) bool {
	room, ok := s.find(name)
	if !ok {
		return s.reject(IntentRemoveRoom, name, "no such room")
	}

	start, end := room.Node.Offset, room.Node.End
	if _, own := s.indentOf(start); own && s.lineStart(start) > 0 {
		start = s.lineStart(start) - 1
		if start > 0 && s.src[start-1] == '\r' {
			start--
		}
		end = s.trailingComment(end)
	} else {
		for start > 0 && (s.src[start-1] == ' ' || s.src[start-1] == '\t') {
			start--
		}
	}
	s.queue(IntentRemoveRoom, start, end-start, "")
	return true
}

// trailingComment extends end over a comment that finishes its line. The
// line break itself is kept.
func (s *Session) trailingComment(end int) int {
	lineEnd := len(s.src)
	if i := strings.IndexByte(s.src[end:], '\n'); i >= 0 {
		lineEnd = end + i
	}
	if !strings.HasPrefix(strings.TrimLeft(s.src[end:lineEnd], " \t"), "#") {
		return end
	}
	if lineEnd > end && s.src[lineEnd-1] == '\r' {
		lineEnd--
	}
	return lineEnd
}

// ResizeRoom replaces the width and height of a literal size clause. Rooms
// sized by a variable are not resizable.
func (s *Session) ResizeRoom(name string, width, height float64) bool {
	room, ok := s.find(name)
	if !ok {
		return s.reject(IntentResizeRoom, name, "no such room")
	}
	if errors.ValidateDimension("width", width) != nil || errors.ValidateDimension("height", height) != nil {
		return s.reject(IntentResizeRoom, name, "invalid size")
	}
	w, h, ok := locate.SizeNumbers(room)
	if !ok {
		return s.reject(IntentResizeRoom, name, "size is not literal")
	}
	s.replace(IntentResizeRoom, w.Span(), dsl.FormatNumber(width))
	s.replace(IntentResizeRoom, h.Span(), dsl.FormatNumber(height))
	return true
}

// MoveRoom sets a room's absolute position. An existing position clause has
// its numbers replaced; otherwise one is inserted after the room's name.
// A relative clause is removed, since the position now comes from "at".
func (s *Session) MoveRoom(name string, x, y float64) bool {
	room, ok := s.find(name)
	if !ok {
		return s.reject(IntentMoveRoom, name, "no such room")
	}

	if xt, yt, ok := locate.PositionNumbers(room); ok {
		s.replace(IntentMoveRoom, xt.Span(), dsl.FormatNumber(x))
		s.replace(IntentMoveRoom, yt.Span(), dsl.FormatNumber(y))
	} else {
		nameTok, ok := locate.NameToken(room)
		if !ok {
			return s.reject(IntentMoveRoom, name, "no name token")
		}
		s.insert(IntentMoveRoom, nameTok.End, " "+dsl.FormatPosition(dsl.Point{X: x, Y: y}))
	}

	if span, ok := locate.RelativeRemovalSpan(room); ok {
		s.replace(IntentMoveRoom, span, "")
	}
	return true
}

// RenameRoom renames a room's declaration. References to the old name in
// other rooms' relative clauses are left alone; see RenameReferences.
func (s *Session) RenameRoom(oldName, newName string) bool {
	if errors.ValidateRoomName(newName) != nil {
		return s.reject(IntentRenameRoom, oldName, "invalid name")
	}
	room, ok := s.find(oldName)
	if !ok {
		return s.reject(IntentRenameRoom, oldName, "no such room")
	}
	if _, exists := s.find(newName); exists {
		return s.reject(IntentRenameRoom, oldName, "name taken")
	}
	tok, ok := locate.NameToken(room)
	if !ok {
		return s.reject(IntentRenameRoom, oldName, "no name token")
	}
	s.replace(IntentRenameRoom, tok.Span(), newName)
	return true
}

// RenameReferences points every relative clause naming oldName at newName
// and returns how many clauses were changed.
func (s *Session) RenameReferences(oldName, newName string) int {
	if errors.ValidateRoomName(newName) != nil {
		return 0
	}
	n := 0
	for _, r := range s.references(oldName) {
		if tok, ok := locate.ReferenceToken(r); ok {
			s.replace(IntentRenameRefs, tok.Span(), newName)
			n++
		}
	}
	return n
}

// UpdateWalls sets wall types by side. Sides already specified have their
// type token replaced; unspecified sides are appended to the walls clause.
// Unknown sides or types make the whole update inapplicable.
func (s *Session) UpdateWalls(name string, walls map[string]string) bool {
	room, ok := s.find(name)
	if !ok {
		return s.reject(IntentUpdateWalls, name, "no such room")
	}
	for side, typ := range walls {
		if !slices.Contains(dsl.WallSides, side) || !slices.Contains(dsl.WallTypes, typ) {
			return s.reject(IntentUpdateWalls, name, "invalid wall "+side+": "+typ)
		}
	}
	bracket, ok := locate.WallsCloseBracket(room)
	if !ok {
		return s.reject(IntentUpdateWalls, name, "no walls clause")
	}

	var added []string
	for _, side := range dsl.WallSides {
		typ, want := walls[side]
		if !want {
			continue
		}
		tok, ok := locate.WallTypeToken(room, side)
		if !ok {
			added = append(added, side+": "+typ)
			continue
		}
		if tok.Text != typ {
			s.replace(IntentUpdateWalls, tok.Span(), typ)
		}
	}
	if len(added) > 0 {
		s.insert(IntentUpdateWalls, bracket.Offset, ", "+strings.Join(added, ", "))
	}
	return true
}

// UpdateLabel replaces a room's label, or adds a label clause after the
// relative clause (or walls) when the room has none.
func (s *Session) UpdateLabel(name, label string) bool {
	if errors.ValidateLabel(label) != nil {
		return s.reject(IntentUpdateLabel, name, "invalid label")
	}
	room, ok := s.find(name)
	if !ok {
		return s.reject(IntentUpdateLabel, name, "no such room")
	}
	if tok, ok := locate.LabelString(room); ok {
		s.replace(IntentUpdateLabel, tok.Span(), dsl.Quote(label))
		return true
	}
	at, ok := locate.RelativeInsertPoint(room)
	if !ok {
		return s.reject(IntentUpdateLabel, name, "no insertion point")
	}
	s.insert(IntentUpdateLabel, at, " "+dsl.KwLabel+" "+dsl.Quote(label))
	return true
}

// AddRelativePosition gives a room a relative clause, replacing any it
// already has. The reference must be another room of the document.
func (s *Session) AddRelativePosition(name string, dir spatial.Direction, ref string, gap float64, align spatial.Alignment) bool {
	room, ok := s.find(name)
	if !ok {
		return s.reject(IntentAddRelative, name, "no such room")
	}
	if _, ok := spatial.ParseDirection(string(dir)); !ok || dir == spatial.None {
		return s.reject(IntentAddRelative, name, "invalid direction")
	}
	if _, ok := spatial.ParseAlignment(string(align)); !ok || !align.ValidFor(dir) {
		return s.reject(IntentAddRelative, name, "invalid alignment")
	}
	if _, ok := s.find(ref); !ok || ref == name {
		return s.reject(IntentAddRelative, name, "invalid reference")
	}

	clause := RelativeClause(dir, ref, gap, align)
	if span, ok := locate.RelativeSpan(room); ok {
		s.replace(IntentAddRelative, span, clause)
		return true
	}
	end, ok := locate.WallsEnd(room)
	if !ok {
		return s.reject(IntentAddRelative, name, "no walls clause")
	}
	s.insert(IntentAddRelative, end, " "+clause)
	return true
}

// RelativeClause renders "direction reference [gap N] [align A]". A zero
// gap is omitted, and so is an alignment equal to the direction's default.
func RelativeClause(dir spatial.Direction, ref string, gap float64, align spatial.Alignment) string {
	var b strings.Builder
	b.WriteString(string(dir) + " " + ref)
	if g := dsl.FormatNumber(gap); g != "0" {
		b.WriteString(" " + dsl.KwGap + " " + g)
	}
	if align != spatial.AlignNone && align != dir.DefaultAlignment() {
		b.WriteString(" " + dsl.KwAlign + " " + string(align))
	}
	return b.String()
}

// RemovePosition deletes a room's "at (x, y)" clause together with the
// blanks before it on its line. Comments and line breaks between the name
// and the clause are kept.
func (s *Session) RemovePosition(name string) bool {
	room, ok := s.find(name)
	if !ok {
		return s.reject(IntentRemovePosition, name, "no such room")
	}
	span, ok := locate.PositionSpan(room)
	if !ok {
		return s.reject(IntentRemovePosition, name, "no position clause")
	}
	nameTok, ok := locate.NameToken(room)
	if !ok || nameTok.End > span.Offset {
		return s.reject(IntentRemovePosition, name, "no name token")
	}
	start := span.Offset
	if strings.Trim(s.src[nameTok.End:start], " \t") == "" {
		start = nameTok.End
	} else {
		// The clause opens its own line: keep the indentation, drop the
		// blanks after the clause instead.
		if _, own := s.indentOf(start); own {
			end := span.End
			for end < len(s.src) && (s.src[end] == ' ' || s.src[end] == '\t') {
				end++
			}
			s.queue(IntentRemovePosition, start, end-start, "")
			return true
		}
		for start > nameTok.End && (s.src[start-1] == ' ' || s.src[start-1] == '\t') {
			start--
		}
	}
	s.queue(IntentRemovePosition, start, span.End-start, "")
	return true
}
