package resample

import (
	"fmt"
	"strings"

	"github.com/uyouii/nanopore-qc/common"
)

type Kind int

const (
	Linear Kind = iota
	Nearest
	Previous
	Next
	Cubic
	Akima
)

var kindNames = map[Kind]string{
	Linear:   "linear",
	Nearest:  "nearest",
	Previous: "previous",
	Next:     "next",
	Cubic:    "cubic",
	Akima:    "akima",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// minPoints is the smallest number of knots the interpolator can be fitted on.
func (k Kind) minPoints() int {
	if k == Cubic {
		return 4
	}
	return 2
}

// ParseKind accepts the usual interpolation names; "slinear" is Linear,
// "zero" is Previous and the empty string is Linear.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear", "slinear":
		return Linear, nil
	case "nearest":
		return Nearest, nil
	case "previous", "zero":
		return Previous, nil
	case "next":
		return Next, nil
	case "cubic":
		return Cubic, nil
	case "akima":
		return Akima, nil
	}
	return Linear, fmt.Errorf("unknown interpolation kind %q: %w", name, common.ErrorInvalidValue)
}
