package dsl

import (
	"slices"
	"strconv"
)

// Directions accepted in a relative position clause.
var Directions = []string{
	"right-of", "left-of", "above", "below",
	"above-left-of", "above-right-of", "below-left-of", "below-right-of",
}

// Alignments accepted after "align".
var Alignments = []string{"top", "bottom", "left", "right", "center"}

// Parse parses a floorplan document.
//
// On failure the error is a *SyntaxError locating the first problem.
func Parse(src string) (*Document, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	return p.document()
}

type parser struct {
	src  string
	toks []Token
	pos  int
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) peekKeyword(kw string) bool {
	t := p.peek()
	return t.Kind == TokenKeyword && t.Text == kw
}

// take consumes the current token and attaches it to parent as a leaf.
func (p *parser) take(parent *Node) *Node {
	tok := p.toks[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	leaf := &Node{
		Kind:   KindToken,
		Token:  tok.Kind,
		Offset: tok.Offset,
		End:    tok.End,
		Text:   tok.Text,
		Parent: parent,
	}
	parent.Children = append(parent.Children, leaf)
	return leaf
}

func (p *parser) expect(parent *Node, kind TokenKind, text string) (*Node, error) {
	tok := p.peek()
	if tok.Kind != kind || (text != "" && tok.Text != text) {
		want := kind.String()
		if text != "" {
			want = strconv.Quote(text)
		}
		return nil, p.unexpected(tok, want)
	}
	return p.take(parent), nil
}

func (p *parser) expectOneOf(parent *Node, what string, allowed []string) (*Node, error) {
	tok := p.peek()
	if tok.Kind != TokenKeyword || !slices.Contains(allowed, tok.Text) {
		return nil, p.unexpected(tok, what)
	}
	return p.take(parent), nil
}

func (p *parser) unexpected(tok Token, want string) error {
	found := strconv.Quote(tok.Text)
	if tok.Kind == TokenEOF {
		found = "end of input"
	}
	return newSyntaxError(p.src, tok.Offset, "expected %s, found %s", want, found)
}

// open starts an inner node at the current token.
func (p *parser) open(parent *Node, kind NodeKind) *Node {
	n := &Node{Kind: kind, Parent: parent, Offset: p.peek().Offset}
	if parent != nil {
		parent.Children = append(parent.Children, n)
	}
	return n
}

// close fixes the node's range to cover its children.
func (p *parser) close(n *Node) {
	if len(n.Children) > 0 {
		n.Offset = n.Children[0].Offset
		n.End = n.Children[len(n.Children)-1].End
	} else {
		n.End = n.Offset
	}
	n.Text = p.src[n.Offset:n.End]
}

func (p *parser) number(parent *Node) (float64, error) {
	leaf, err := p.expect(parent, TokenNumber, "")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(leaf.Text, 64)
	if err != nil {
		return 0, newSyntaxError(p.src, leaf.Offset, "invalid number %q", leaf.Text)
	}
	return v, nil
}

// dims parses "(W x H)".
func (p *parser) dims(parent *Node) (Size, error) {
	var s Size
	var err error
	if _, err = p.expect(parent, TokenLParen, ""); err != nil {
		return s, err
	}
	if s.Width, err = p.number(parent); err != nil {
		return s, err
	}
	if _, err = p.expect(parent, TokenTimes, ""); err != nil {
		return s, err
	}
	if s.Height, err = p.number(parent); err != nil {
		return s, err
	}
	_, err = p.expect(parent, TokenRParen, "")
	return s, err
}

func (p *parser) document() (*Document, error) {
	root := p.open(nil, KindDocument)
	doc := &Document{Source: p.src, CST: root}

	if _, err := p.expect(root, TokenKeyword, KwFloorplan); err != nil {
		return nil, err
	}
	if _, err := p.expect(root, TokenLBrace, ""); err != nil {
		return nil, err
	}
	for {
		switch {
		case p.peekKeyword(KwDefine):
			d, err := p.define(root)
			if err != nil {
				return nil, err
			}
			doc.Defines = append(doc.Defines, d)
		case p.peekKeyword(KwFloor):
			f, err := p.floor(root)
			if err != nil {
				return nil, err
			}
			doc.Floors = append(doc.Floors, f)
		case p.peek().Kind == TokenRBrace:
			p.take(root)
			if tok := p.peek(); tok.Kind != TokenEOF {
				return nil, p.unexpected(tok, "end of input")
			}
			p.close(root)
			return doc, nil
		default:
			return nil, p.unexpected(p.peek(), `"define", "floor" or '}'`)
		}
	}
}

func (p *parser) define(parent *Node) (*Define, error) {
	n := p.open(parent, KindDefine)
	p.take(n)
	name, err := p.expect(n, TokenIdent, "")
	if err != nil {
		return nil, err
	}
	size, err := p.dims(n)
	if err != nil {
		return nil, err
	}
	p.close(n)
	return &Define{Name: name.Text, Size: size, Node: n}, nil
}

func (p *parser) floor(parent *Node) (*Floor, error) {
	n := p.open(parent, KindFloor)
	p.take(n)
	name, err := p.expect(n, TokenIdent, "")
	if err != nil {
		return nil, err
	}
	f := &Floor{Name: name.Text, Node: n}
	if _, err := p.expect(n, TokenLBrace, ""); err != nil {
		return nil, err
	}
	for p.peekKeyword(KwRoom) {
		r, err := p.room(n, f, nil)
		if err != nil {
			return nil, err
		}
		f.Rooms = append(f.Rooms, r)
	}
	if _, err := p.expect(n, TokenRBrace, ""); err != nil {
		return nil, err
	}
	p.close(n)
	return f, nil
}

func (p *parser) room(parent *Node, floor *Floor, owner *Room) (*Room, error) {
	n := p.open(parent, KindRoom)
	kw := p.take(n)
	r := &Room{
		Sub:    kw.Text == KwSubRoom || owner != nil,
		Parent: owner,
		Floor:  floor,
		Node:   n,
	}

	name, err := p.expect(n, TokenIdent, "")
	if err != nil {
		return nil, err
	}
	r.Name = name.Text

	if p.peekKeyword(KwAt) {
		pos := p.open(n, KindPosition)
		p.take(pos)
		var pt Point
		if _, err := p.expect(pos, TokenLParen, ""); err != nil {
			return nil, err
		}
		if pt.X, err = p.number(pos); err != nil {
			return nil, err
		}
		if _, err := p.expect(pos, TokenComma, ""); err != nil {
			return nil, err
		}
		if pt.Y, err = p.number(pos); err != nil {
			return nil, err
		}
		if _, err := p.expect(pos, TokenRParen, ""); err != nil {
			return nil, err
		}
		p.close(pos)
		r.Position = &pt
	}

	if err := p.size(n, r); err != nil {
		return nil, err
	}
	if err := p.walls(n, r); err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.Kind != TokenKeyword {
			break
		}
		if slices.Contains(Directions, tok.Text) {
			if r.Relative != nil {
				return nil, newSyntaxError(p.src, tok.Offset, "room %s has more than one relative position", r.Name)
			}
			if r.Relative, err = p.relative(n); err != nil {
				return nil, err
			}
			continue
		}
		if tok.Text == KwLabel {
			if r.Label != nil {
				return nil, newSyntaxError(p.src, tok.Offset, "room %s has more than one label", r.Name)
			}
			if r.Label, err = p.label(n); err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	if p.peekKeyword(KwComposed) {
		sub := p.open(n, KindSubRooms)
		p.take(sub)
		if _, err := p.expect(sub, TokenKeyword, KwOf); err != nil {
			return nil, err
		}
		if _, err := p.expect(sub, TokenLBracket, ""); err != nil {
			return nil, err
		}
		for p.peekKeyword(KwSubRoom) || p.peekKeyword(KwRoom) {
			child, err := p.room(sub, floor, r)
			if err != nil {
				return nil, err
			}
			r.SubRooms = append(r.SubRooms, child)
		}
		if _, err := p.expect(sub, TokenRBracket, ""); err != nil {
			return nil, err
		}
		p.close(sub)
	}

	p.close(n)
	return r, nil
}

func (p *parser) size(parent *Node, r *Room) error {
	n := p.open(parent, KindSize)
	if _, err := p.expect(n, TokenKeyword, KwSize); err != nil {
		return err
	}
	if p.peek().Kind == TokenLParen {
		s, err := p.dims(n)
		if err != nil {
			return err
		}
		r.Size = &s
	} else {
		ref, err := p.expect(n, TokenIdent, "")
		if err != nil {
			return err
		}
		r.SizeRef = ref.Text
	}
	p.close(n)
	return nil
}

func (p *parser) walls(parent *Node, r *Room) error {
	n := p.open(parent, KindWalls)
	if _, err := p.expect(n, TokenKeyword, KwWalls); err != nil {
		return err
	}
	if _, err := p.expect(n, TokenLBracket, ""); err != nil {
		return err
	}
	for {
		spec := p.open(n, KindWallSpec)
		side, err := p.expectOneOf(spec, "wall side", WallSides)
		if err != nil {
			return err
		}
		if _, err := p.expect(spec, TokenColon, ""); err != nil {
			return err
		}
		typ, err := p.expectOneOf(spec, "wall type", WallTypes)
		if err != nil {
			return err
		}
		p.close(spec)
		r.Walls = append(r.Walls, WallSpec{Side: side.Text, Type: typ.Text, Node: spec})

		if p.peek().Kind != TokenComma {
			break
		}
		p.take(n)
	}
	if _, err := p.expect(n, TokenRBracket, ""); err != nil {
		return err
	}
	p.close(n)
	return nil
}

func (p *parser) relative(parent *Node) (*RelativePosition, error) {
	n := p.open(parent, KindRelative)
	dir := p.take(n)
	ref, err := p.expect(n, TokenIdent, "")
	if err != nil {
		return nil, err
	}
	rel := &RelativePosition{Direction: dir.Text, Reference: ref.Text, Node: n}

	if p.peekKeyword(KwGap) {
		p.take(n)
		gap, err := p.number(n)
		if err != nil {
			return nil, err
		}
		rel.Gap = &gap
	}
	if p.peekKeyword(KwAlign) {
		p.take(n)
		a, err := p.expectOneOf(n, "alignment", Alignments)
		if err != nil {
			return nil, err
		}
		rel.Alignment = a.Text
	}
	p.close(n)
	return rel, nil
}

func (p *parser) label(parent *Node) (*string, error) {
	n := p.open(parent, KindLabel)
	p.take(n)
	str, err := p.expect(n, TokenString, "")
	if err != nil {
		return nil, err
	}
	p.close(n)
	s := Unquote(str.Text)
	return &s, nil
}

// Unquote decodes a string literal. Literals with escapes Go does not
// understand are returned without their surrounding quotes.
func Unquote(lit string) string {
	if s, err := strconv.Unquote(lit); err == nil {
		return s
	}
	if len(lit) >= 2 {
		return lit[1 : len(lit)-1]
	}
	return lit
}
