package dsl

import (
	"fmt"
	"strings"
)

// TokenKind classifies lexical tokens.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenKeyword
	TokenNumber
	TokenString
	TokenLBrace
	TokenRBrace
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenColon
	TokenTimes // the 'x' between two dimensions
)

var tokenNames = map[TokenKind]string{
	TokenEOF:      "end of input",
	TokenIdent:    "identifier",
	TokenKeyword:  "keyword",
	TokenNumber:   "number",
	TokenString:   "string",
	TokenLBrace:   "'{'",
	TokenRBrace:   "'}'",
	TokenLParen:   "'('",
	TokenRParen:   "')'",
	TokenLBracket: "'['",
	TokenRBracket: "']'",
	TokenComma:    "','",
	TokenColon:    "':'",
	TokenTimes:    "'x'",
}

// String returns a human-readable token kind name for error messages.
func (k TokenKind) String() string {
	if s, ok := tokenNames[k]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(k))
}

// Keywords of the language, including directions, alignments, wall sides
// and wall types.
var keywords = map[string]bool{
	KwFloorplan: true, KwFloor: true, KwRoom: true, KwSubRoom: true,
	KwDefine: true, KwAt: true, KwSize: true, KwWalls: true, KwLabel: true,
	KwGap: true, KwAlign: true, KwComposed: true, KwOf: true,

	"right-of": true, "left-of": true, "above": true, "below": true,
	"above-left-of": true, "above-right-of": true, "below-left-of": true, "below-right-of": true,

	"top": true, "bottom": true, "left": true, "right": true, "center": true,

	"solid": true, "open": true, "door": true, "window": true,
}

// Structural keywords.
const (
	KwFloorplan = "floorplan"
	KwFloor     = "floor"
	KwRoom      = "room"
	KwSubRoom   = "sub-room"
	KwDefine    = "define"
	KwAt        = "at"
	KwSize      = "size"
	KwWalls     = "walls"
	KwLabel     = "label"
	KwGap       = "gap"
	KwAlign     = "align"
	KwComposed  = "composed"
	KwOf        = "of"
)

// IsKeyword reports whether s is reserved by the language.
func IsKeyword(s string) bool { return keywords[s] }

// Token is a lexical token with its byte range in the source.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int // inclusive
	End    int // exclusive
}

// Lex splits src into tokens. Whitespace and comments are skipped.
// The returned slice always ends with a TokenEOF.
func Lex(src string) ([]Token, error) {
	l := &lexer{src: src}
	return l.scan()
}

type lexer struct {
	src  string
	pos  int
	toks []Token
}

func (l *lexer) scan() ([]Token, error) {
	for {
		l.skipTrivia()
		if l.pos >= len(l.src) {
			l.toks = append(l.toks, Token{Kind: TokenEOF, Offset: l.pos, End: l.pos})
			return l.toks, nil
		}

		c := l.src[l.pos]
		switch {
		case c == 'x' && l.isTimes():
			l.emit(TokenTimes, l.pos+1)
		case isIdentStart(c):
			l.lexIdent()
		case isDigit(c) || (c == '-' && l.pos+1 < len(l.src) && (isDigit(l.src[l.pos+1]) || l.src[l.pos+1] == '.')) || (c == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1])):
			l.lexNumber()
		case c == '"':
			if err := l.lexString(); err != nil {
				return nil, err
			}
		default:
			kind, ok := punctuation[c]
			if !ok {
				return nil, newSyntaxError(l.src, l.pos, "unexpected character %q", rune(c))
			}
			l.emit(kind, l.pos+1)
		}
	}
}

var punctuation = map[byte]TokenKind{
	'{': TokenLBrace,
	'}': TokenRBrace,
	'(': TokenLParen,
	')': TokenRParen,
	'[': TokenLBracket,
	']': TokenRBracket,
	',': TokenComma,
	':': TokenColon,
}

func (l *lexer) emit(kind TokenKind, end int) {
	l.toks = append(l.toks, Token{Kind: kind, Text: l.src[l.pos:end], Offset: l.pos, End: end})
	l.pos = end
}

func (l *lexer) skipTrivia() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.pos++
		case c == '#':
			nl := strings.IndexByte(l.src[l.pos:], '\n')
			if nl < 0 {
				l.pos = len(l.src)
			} else {
				l.pos += nl
			}
		default:
			return
		}
	}
}

// isTimes reports whether the 'x' at the current position separates two
// dimensions: it is alone, or immediately followed by a number.
func (l *lexer) isTimes() bool {
	next := l.pos + 1
	if next >= len(l.src) {
		return true
	}
	c := l.src[next]
	return isDigit(c) || c == '.' || !isIdentPart(c)
}

func (l *lexer) lexIdent() {
	end := l.pos + 1
	for end < len(l.src) {
		c := l.src[end]
		if isIdentPart(c) {
			end++
			continue
		}
		// '-' joins words only when another word character follows.
		if c == '-' && end+1 < len(l.src) && isIdentPart(l.src[end+1]) {
			end++
			continue
		}
		break
	}
	kind := TokenIdent
	if keywords[l.src[l.pos:end]] {
		kind = TokenKeyword
	}
	l.emit(kind, end)
}

func (l *lexer) lexNumber() {
	end := l.pos
	if l.src[end] == '-' {
		end++
	}
	for end < len(l.src) && isDigit(l.src[end]) {
		end++
	}
	if end < len(l.src) && l.src[end] == '.' {
		end++
		for end < len(l.src) && isDigit(l.src[end]) {
			end++
		}
	}
	l.emit(TokenNumber, end)
}

func (l *lexer) lexString() error {
	end := l.pos + 1
	for end < len(l.src) {
		switch l.src[end] {
		case '\\':
			end += 2
			continue
		case '\n':
			return newSyntaxError(l.src, l.pos, "unterminated string")
		case '"':
			l.emit(TokenString, end+1)
			return nil
		}
		end++
	}
	return newSyntaxError(l.src, l.pos, "unterminated string")
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

// SyntaxError describes a lexing or parsing failure at a byte offset.
type SyntaxError struct {
	Offset int
	Line   int // 1-based
	Col    int // 1-based, in bytes
	Msg    string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

func newSyntaxError(src string, offset int, format string, args ...any) *SyntaxError {
	line, col := LineCol(src, offset)
	return &SyntaxError{Offset: offset, Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

// LineCol converts a byte offset into a 1-based line and column.
func LineCol(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	before := src[:offset]
	line = strings.Count(before, "\n") + 1
	col = offset - (strings.LastIndexByte(before, '\n') + 1) + 1
	return line, col
}
