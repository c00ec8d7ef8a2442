package relative

import (
	"fmt"
	"strings"

	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/locate"
	"github.com/matzehuels/floorplan/pkg/resolve"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

// ValidationError lists every reason a floor cannot be converted. Code is
// DUPLICATE_ROOM when the floor repeats a room name and VALIDATION_FAILED
// otherwise.
type ValidationError struct {
	Code     errors.Code
	Anchor   string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cannot convert relative to %s: %s", e.Anchor, strings.Join(e.Problems, "; "))
}

// Unwrap exposes the code to errors.Is and errors.GetCode.
func (e *ValidationError) Unwrap() error {
	return errors.New(e.Code, "%s", strings.Join(e.Problems, "; "))
}

// Validate checks that a floor can be converted around anchor: the anchor
// exists and has an explicit position, every other top-level room on the
// floor has one too, every size variable resolves and no two rooms overlap.
// All problems are reported in one *ValidationError.
//
// A floor that declares a name twice is rejected before anything else, with
// one problem per repeated name.
func Validate(doc *dsl.Document, anchor string, opts Options) error {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return err
	}
	verr := &ValidationError{Code: errors.ErrCodeValidation, Anchor: anchor}
	problem := func(format string, args ...any) {
		verr.Problems = append(verr.Problems, fmt.Sprintf(format, args...))
	}

	floor, ok := floorFor(doc, anchor, opts.Floor)
	if !ok {
		if opts.Floor != "" {
			problem("floor %q not found", opts.Floor)
		} else {
			problem("anchor room %q not found", anchor)
		}
		return verr
	}

	if dups := locate.DuplicateNames(floor); len(dups) > 0 {
		for _, name := range dups {
			problem("room %q is declared more than once on floor %q", name, floor.Name)
		}
		verr.Code = errors.ErrCodeDuplicateRoom
		opts.Logger.Debug("validation failed", "anchor", anchor, "duplicates", dups)
		return verr
	}

	vars, err := resolve.NewVariables(doc)
	if err != nil {
		problem("%v", err)
		return verr
	}

	var found bool
	var bounds []spatial.Bounds
	for _, r := range floor.Rooms {
		if r.Name == anchor {
			found = true
		}
		if r.Position == nil {
			if r.Name == anchor {
				problem("anchor room %q has no explicit position", anchor)
			} else {
				problem("room %q has no explicit position", r.Name)
			}
		}
		size, err := vars.Size(r)
		if err != nil {
			problem("room %q: unknown size variable %q", r.Name, r.SizeRef)
			continue
		}
		if b, ok := spatial.FromRoom(r, size); ok {
			bounds = append(bounds, b)
		}
	}
	if !found {
		problem("anchor room %q not found on floor %q", anchor, floor.Name)
	}

	for i := range bounds {
		for j := i + 1; j < len(bounds); j++ {
			if bounds[i].Overlaps(bounds[j], opts.Tolerance) {
				problem("rooms %q and %q overlap", bounds[i].Name, bounds[j].Name)
			}
		}
	}

	if len(verr.Problems) > 0 {
		opts.Logger.Debug("validation failed", "anchor", anchor, "problems", len(verr.Problems))
		return verr
	}
	return nil
}

// floorFor returns the named floor, or the floor declaring anchor.
func floorFor(doc *dsl.Document, anchor, name string) (*dsl.Floor, bool) {
	if name != "" {
		return doc.Floor(name)
	}
	for _, f := range doc.Floors {
		for _, r := range f.Rooms {
			if r.Name == anchor {
				return f, true
			}
		}
	}
	return nil, false
}
