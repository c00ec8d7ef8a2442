package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// maxNameLength bounds room and floor identifiers.
const maxNameLength = 128

// identifierRegex matches identifiers accepted by the floorplan lexer.
// Names must not start with a digit, '-' or 'x' followed by a digit (which
// the lexer reads as a dimension separator).
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// reservedWords cannot be used as room or floor names.
var reservedWords = map[string]bool{
	"floorplan": true, "floor": true, "room": true, "sub-room": true,
	"define": true, "at": true, "size": true, "walls": true, "label": true,
	"gap": true, "align": true, "composed": true, "of": true, "x": true,
}

// ValidateRoomName validates a room or floor identifier for use in generated source.
//
// The validation rules mirror the lexer:
//   - No empty names
//   - Maximum length of 128 characters
//   - Letters, digits, '_' and '-' only, not starting with a digit or '-'
//   - Not a reserved keyword
func ValidateRoomName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "room name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "room name too long (max %d characters)", maxNameLength)
	}
	if !identifierRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid room name: %q", name)
	}
	if len(name) > 1 && name[0] == 'x' && unicode.IsDigit(rune(name[1])) {
		return New(ErrCodeInvalidName, "room name %q reads as a dimension", name)
	}
	if reservedWords[name] || isKeywordLike(name) {
		return New(ErrCodeInvalidName, "room name %q is a reserved word", name)
	}
	return nil
}

// isKeywordLike reports whether name is a direction, alignment, wall side or
// wall type keyword.
func isKeywordLike(name string) bool {
	switch name {
	case "right-of", "left-of", "above", "below",
		"above-left-of", "above-right-of", "below-left-of", "below-right-of",
		"top", "bottom", "left", "right", "center",
		"solid", "open", "door", "window":
		return true
	}
	return strings.HasSuffix(name, "-")
}

// ValidateLabel validates a room label. Labels are emitted as quoted strings
// and must stay on one line.
func ValidateLabel(label string) error {
	for _, r := range label {
		if r == '\n' || r == '\r' || r == '\x00' {
			return New(ErrCodeInvalidLabel, "label must be a single line")
		}
	}
	return nil
}

// ValidateTolerance checks that a tolerance is a finite, non-negative number.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return New(ErrCodeInvalidTolerance, "tolerance must be finite")
	}
	if tol < 0 {
		return New(ErrCodeInvalidTolerance, "tolerance must not be negative: %g", tol)
	}
	return nil
}

// ValidateDimension checks that a width or height is finite and positive.
func ValidateDimension(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be a positive number, got %g", what, v)
	}
	return nil
}
