package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/grid"
	"github.com/matzehuels/exhibitboard/pkg/quadrant"
)

// WriteGrid encodes a grid board as JSON and writes it to w.
// Items are written in insertion order with their payloads.
func WriteGrid(s *grid.Store, w io.Writer) error {
	cfg := s.Config()
	out := document{Variant: VariantGrid, Grid: &cfg}
	for _, it := range s.Items() {
		var raw json.RawMessage
		if it.Data != nil {
			b, err := json.Marshal(it.Data)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "encode data of %s", it.ID)
			}
			raw = b
		}
		out.Items = append(out.Items, item{Item: it, Data: raw})
	}
	return encode(out, w)
}

// WriteBook encodes a quadrant book as JSON and writes it to w.
// Empty pages are kept so page numbers survive a round trip.
func WriteBook(b *quadrant.Book, w io.Writer) error {
	snap := b.Snapshot()
	out := document{Variant: VariantQuadrant, Current: snap.Current, Pool: snap.Pool}
	out.Pages = make([]page, len(snap.Pages))
	for i, p := range snap.Pages {
		out.Pages[i] = page{Placements: p.Placements()}
		if out.Pages[i].Placements == nil {
			out.Pages[i].Placements = []quadrant.Placement{}
		}
	}
	return encode(out, w)
}

// ExportGrid writes a grid board to a JSON file at path.
func ExportGrid(s *grid.Store, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteGrid(s, w) })
}

// ExportBook writes a quadrant book to a JSON file at path.
func ExportBook(b *quadrant.Book, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteBook(b, w) })
}

func exportFile(path string, write func(io.Writer) error) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encode(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode")
	}
	return nil
}
