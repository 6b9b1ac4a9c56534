package quadrant

import (
	"strings"

	"github.com/matzehuels/exhibitboard/pkg/errors"
)

// Region identifies one of the four slots of a page.
type Region string

const (
	Region1 Region = "quad1"
	Region2 Region = "quad2"
	Region3 Region = "quad3"
	Region4 Region = "quad4"
)

// Regions lists all regions in row-major order.
var Regions = [4]Region{Region1, Region2, Region3, Region4}

// ParseRegion accepts "quad1".."quad4" or "1".."4".
func ParseRegion(s string) (Region, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 {
		s = "quad" + s
	}
	r := Region(s)
	if r.index() < 0 {
		return "", errors.New(errors.ErrCodeInvalidRegion, "unknown region: %q", s)
	}
	return r, nil
}

// Valid reports whether r is one of the four regions.
func (r Region) Valid() bool { return r.index() >= 0 }

// Anchor reports whether r may hold a FULLPAGE exhibit.
func (r Region) Anchor() bool { return r == Region1 || r == Region3 }

// Pair returns the region sharing r's row.
func (r Region) Pair() Region {
	switch r {
	case Region1:
		return Region2
	case Region2:
		return Region1
	case Region3:
		return Region4
	case Region4:
		return Region3
	}
	return ""
}

// Row returns 0 for the top pair and 1 for the bottom pair.
func (r Region) Row() int { return r.index() / 2 }

// Column returns 0 for anchors and 1 for their pairs.
func (r Region) Column() int { return r.index() % 2 }

// Name returns the display name, e.g. "Quadrant 1".
func (r Region) Name() string {
	if i := r.index(); i >= 0 {
		return "Quadrant " + string(rune('1'+i))
	}
	return string(r)
}

func (r Region) index() int {
	for i, x := range Regions {
		if x == r {
			return i
		}
	}
	return -1
}

// State is the occupancy state of a region.
type State string

const (
	StateEmpty        State = "EMPTY"
	StateOccupiedQuad State = "OCCUPIED_QUAD"
	StateOccupiedFull State = "OCCUPIED_FULLPAGE"
	StateDisabled     State = "DISABLED"
)
