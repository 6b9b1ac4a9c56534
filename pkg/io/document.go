package io

import (
	"encoding/json"

	"github.com/matzehuels/exhibitboard/pkg/exhibit"
	"github.com/matzehuels/exhibitboard/pkg/grid"
	"github.com/matzehuels/exhibitboard/pkg/quadrant"
)

// Board variants.
const (
	VariantGrid     = "grid"
	VariantQuadrant = "quadrant"
)

type document struct {
	Variant string            `json:"variant"`
	Grid    *grid.Config      `json:"grid,omitempty"`
	Items   []item            `json:"items,omitempty"`
	Current int               `json:"current,omitempty"`
	Pool    []exhibit.Exhibit `json:"pool,omitempty"`
	Pages   []page            `json:"pages,omitempty"`
}

type item struct {
	grid.Item
	Data json.RawMessage `json:"data,omitempty"`
}

type page struct {
	Placements []quadrant.Placement `json:"placements"`
}

// Document is a decoded board of either variant. Exactly one of Grid and
// Book is set.
type Document struct {
	Variant string
	Grid    *grid.Store
	Book    *quadrant.Book
}
