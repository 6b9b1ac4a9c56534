package exhibit

import (
	"strings"

	"github.com/matzehuels/exhibitboard/pkg/errors"
)

// Kind is the closed set of exhibit types.
type Kind string

const (
	KindTable Kind = "table"
	KindPie   Kind = "pie"
	KindBar   Kind = "bar"
	KindImage Kind = "image"
)

// Kinds lists every valid kind in palette order.
var Kinds = []Kind{KindTable, KindPie, KindBar, KindImage}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindTable, KindPie, KindBar, KindImage:
		return true
	}
	return false
}

// ParseKind converts a string into a Kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", errors.New(errors.ErrCodeInvalidKind, "unknown exhibit kind: %q", s)
	}
	return k, nil
}

// DefaultTitle returns the title shown for an untitled item, e.g. "Table Report".
func (k Kind) DefaultTitle() string {
	if k == "" {
		return "Report"
	}
	s := string(k)
	return strings.ToUpper(s[:1]) + s[1:] + " Report"
}

// LayoutClass controls how many quadrant regions an item claims.
type LayoutClass string

const (
	// LayoutQuad items occupy exactly one region.
	LayoutQuad LayoutClass = "QUAD"
	// LayoutFullPage items occupy an anchor region and disable its horizontal pair.
	LayoutFullPage LayoutClass = "FULLPAGE"
)

// Valid reports whether c is a known layout class.
func (c LayoutClass) Valid() bool {
	return c == LayoutQuad || c == LayoutFullPage
}

// OrDefault returns c, or LayoutQuad when c is unset.
func (c LayoutClass) OrDefault() LayoutClass {
	if c == "" {
		return LayoutQuad
	}
	return c
}

// ParseLayoutClass converts a string into a LayoutClass. An empty string
// yields LayoutQuad.
func ParseLayoutClass(s string) (LayoutClass, error) {
	if s == "" {
		return LayoutQuad, nil
	}
	c := LayoutClass(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", errors.New(errors.ErrCodeInvalidLayout, "unknown layout class: %q", s)
	}
	return c, nil
}

// Exhibit is a palette entry before it is placed.
type Exhibit struct {
	ID     string      `json:"id" toml:"id"`
	Kind   Kind        `json:"kind" toml:"kind"`
	Title  string      `json:"title" toml:"title"`
	Layout LayoutClass `json:"layout,omitempty" toml:"layout"`
	Icon   string      `json:"icon,omitempty" toml:"icon"`
}

// DisplayTitle returns the exhibit title or the kind's default title.
func (e Exhibit) DisplayTitle() string {
	return Title(e.Title, e.Kind)
}

// Validate checks id, kind, layout class and title.
func (e Exhibit) Validate() error {
	if err := errors.ValidateItemID(e.ID); err != nil {
		return err
	}
	if !e.Kind.Valid() {
		return errors.New(errors.ErrCodeInvalidKind, "exhibit %s: unknown kind %q", e.ID, e.Kind)
	}
	if e.Layout != "" && !e.Layout.Valid() {
		return errors.New(errors.ErrCodeInvalidLayout, "exhibit %s: unknown layout class %q", e.ID, e.Layout)
	}
	return errors.ValidateTitle(e.Title)
}

// Title returns title if non-empty, otherwise the default title for k.
func Title(title string, k Kind) string {
	if title != "" {
		return title
	}
	return k.DefaultTitle()
}
