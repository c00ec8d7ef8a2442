package resolve

import (
	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/errors"
)

// Variables maps size variable names to their extent.
type Variables map[string]dsl.Size

// NewVariables collects the document's "define" statements. Redefinitions
// and non-positive sizes are rejected.
func NewVariables(doc *dsl.Document) (Variables, error) {
	vars := make(Variables, len(doc.Defines))
	for _, d := range doc.Defines {
		if _, dup := vars[d.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "size variable %q defined twice", d.Name)
		}
		if err := errors.ValidateDimension("width of "+d.Name, d.Size.Width); err != nil {
			return nil, err
		}
		if err := errors.ValidateDimension("height of "+d.Name, d.Size.Height); err != nil {
			return nil, err
		}
		vars[d.Name] = d.Size
	}
	return vars, nil
}

// Size returns the room's extent, looking up its size variable if needed.
func (v Variables) Size(room *dsl.Room) (dsl.Size, error) {
	if room.Size != nil {
		return *room.Size, nil
	}
	s, ok := v[room.SizeRef]
	if !ok {
		return dsl.Size{}, errors.New(errors.ErrCodeUnknownVariable,
			"room %s: unknown size variable %q", room.Name, room.SizeRef)
	}
	return s, nil
}
