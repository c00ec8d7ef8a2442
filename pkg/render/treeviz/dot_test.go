package treeviz

import (
	"strings"
	"testing"

	"github.com/matzehuels/floorplan/pkg/relative"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

var plan = &relative.Plan{
	Anchor: "Kitchen",
	Assignments: []relative.Assignment{
		{Room: "Pantry", Reference: "Kitchen", Direction: spatial.RightOf, Alignment: spatial.AlignTop},
		{Room: "Hall", Reference: "Pantry", Direction: spatial.Below, Gap: 1.5},
	},
	Unresolved: []string{"Shed"},
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(plan, Options{Title: "ground"})
	for _, want := range []string{
		"digraph plan {",
		`"Kitchen" [penwidth=2`,
		`"Kitchen" -> "Pantry" [label="right-of"];`,
		`"Pantry" -> "Hall" [label="below"];`,
		`"Shed" [style="rounded,filled,dashed"`,
		`label="ground";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(plan, Options{Detailed: true})
	if !strings.Contains(dot, `[label="right-of\nalign top"]`) {
		t.Errorf("missing detailed Pantry label:\n%s", dot)
	}
	if !strings.Contains(dot, `[label="below\ngap 1.5"]`) {
		t.Errorf("missing detailed Hall label:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44">`) {
		t.Errorf("got %s", out)
	}
	if got := normalizeViewBox([]byte("<svg/>")); string(got) != "<svg/>" {
		t.Errorf("svg without viewBox changed: %s", got)
	}
}
