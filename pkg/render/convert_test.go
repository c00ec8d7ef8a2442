package render

import (
	"bytes"
	"testing"

	"github.com/matzehuels/floorplan/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"svg", FormatSVG, true},
		{".PNG", FormatPNG, true},
		{"dot", FormatDOT, true},
		{"gif", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err == nil) != tt.ok || got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
			}
			if !tt.ok && !errors.Is(err, errors.ErrCodeUnsupported) {
				t.Errorf("err = %v, want UNSUPPORTED", err)
			}
		})
	}
}

func TestConvertSVGPassthrough(t *testing.T) {
	svg := []byte("<svg/>")
	out, err := Convert(svg, FormatSVG, 1)
	if err != nil || !bytes.Equal(out, svg) {
		t.Errorf("Convert = %q, %v", out, err)
	}
	if _, err := Convert(svg, FormatDOT, 1); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("dot: err = %v", err)
	}
}
