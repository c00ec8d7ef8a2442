package relative

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

// DefaultTolerance is used when Options.Tolerance is zero.
const DefaultTolerance = 0.01

// Options configure building, validation and conversion.
type Options struct {
	// Tolerance for touching edges, alignment and overlap checks, in document
	// units. Zero selects DefaultTolerance.
	Tolerance float64

	// MaxGap ignores neighbours further away than this. Zero means unlimited.
	MaxGap float64

	// Floor restricts the conversion to the named floor. Empty selects the
	// floor the anchor room is declared on.
	Floor string

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o
}

func (o Options) validate() error {
	if err := errors.ValidateTolerance(o.Tolerance); err != nil {
		return err
	}
	if o.MaxGap < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max gap must not be negative: %g", o.MaxGap)
	}
	return nil
}

func (o Options) spatial() spatial.Options {
	return spatial.Options{Tolerance: o.Tolerance, MaxGap: o.MaxGap}
}
