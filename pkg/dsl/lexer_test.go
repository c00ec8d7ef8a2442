package dsl

import "testing"

func TestLex(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []TokenKind
		texts []string
	}{
		{
			name:  "dimensions with spaces",
			src:   "(10 x 8)",
			kinds: []TokenKind{TokenLParen, TokenNumber, TokenTimes, TokenNumber, TokenRParen, TokenEOF},
			texts: []string{"(", "10", "x", "8", ")", ""},
		},
		{
			name:  "compact dimensions",
			src:   "(10x8.5)",
			kinds: []TokenKind{TokenLParen, TokenNumber, TokenTimes, TokenNumber, TokenRParen, TokenEOF},
			texts: []string{"(", "10", "x", "8.5", ")", ""},
		},
		{
			name:  "hyphenated keywords",
			src:   "sub-room below-right-of Guest-Bath",
			kinds: []TokenKind{TokenKeyword, TokenKeyword, TokenIdent, TokenEOF},
			texts: []string{"sub-room", "below-right-of", "Guest-Bath", ""},
		},
		{
			name:  "identifier starting with x",
			src:   "xray",
			kinds: []TokenKind{TokenIdent, TokenEOF},
			texts: []string{"xray", ""},
		},
		{
			name:  "negative number after comma",
			src:   "(0,-3)",
			kinds: []TokenKind{TokenLParen, TokenNumber, TokenComma, TokenNumber, TokenRParen, TokenEOF},
			texts: []string{"(", "0", ",", "-3", ")", ""},
		},
		{
			name:  "string with escaped quote",
			src:   `label "say \"hi\""`,
			kinds: []TokenKind{TokenKeyword, TokenString, TokenEOF},
			texts: []string{"label", `"say \"hi\""`, ""},
		},
		{
			name:  "comments are skipped",
			src:   "room # comment\nA",
			kinds: []TokenKind{TokenKeyword, TokenIdent, TokenEOF},
			texts: []string{"room", "A", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Lex(tt.src)
			if err != nil {
				t.Fatalf("Lex() error = %v", err)
			}
			if len(toks) != len(tt.kinds) {
				t.Fatalf("len(tokens) = %d, want %d: %+v", len(toks), len(tt.kinds), toks)
			}
			for i, tok := range toks {
				if tok.Kind != tt.kinds[i] || tok.Text != tt.texts[i] {
					t.Errorf("token %d = %v %q, want %v %q", i, tok.Kind, tok.Text, tt.kinds[i], tt.texts[i])
				}
				if tt.src[tok.Offset:tok.End] != tok.Text {
					t.Errorf("token %d span [%d,%d) does not match text %q", i, tok.Offset, tok.End, tok.Text)
				}
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := map[string]string{
		`"plain"`:          "plain",
		`"say \"hi\""`:     `say "hi"`,
		`"bad \q escape"`:  `bad \q escape`,
		`""`:               "",
	}
	for lit, want := range tests {
		if got := Unquote(lit); got != want {
			t.Errorf("Unquote(%s) = %q, want %q", lit, got, want)
		}
	}
}
