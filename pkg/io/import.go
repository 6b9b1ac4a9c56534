package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
	"github.com/matzehuels/exhibitboard/pkg/grid"
	"github.com/matzehuels/exhibitboard/pkg/quadrant"
)

// ReadDocument decodes a board of either variant from r.
func ReadDocument(r io.Reader) (Document, error) {
	doc, err := decode(r)
	if err != nil {
		return Document{}, err
	}
	switch doc.Variant {
	case VariantGrid:
		s, err := gridFromDocument(doc)
		return Document{Variant: VariantGrid, Grid: s}, err
	case VariantQuadrant:
		b, err := bookFromDocument(doc)
		return Document{Variant: VariantQuadrant, Book: b}, err
	}
	return Document{}, errors.New(errors.ErrCodeInvalidDocument, "unknown variant %q (want grid or quadrant)", doc.Variant)
}

// ReadGrid decodes a grid board from r. Missing geometry falls back to
// [grid.DefaultConfig]; positions are taken as stored, not re-placed.
func ReadGrid(r io.Reader) (*grid.Store, error) {
	doc, err := decode(r)
	if err != nil {
		return nil, err
	}
	if doc.Variant != VariantGrid {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "document variant is %q, not grid", doc.Variant)
	}
	return gridFromDocument(doc)
}

// ReadBook decodes a quadrant book from r.
func ReadBook(r io.Reader) (*quadrant.Book, error) {
	doc, err := decode(r)
	if err != nil {
		return nil, err
	}
	if doc.Variant != VariantQuadrant {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "document variant is %q, not quadrant", doc.Variant)
	}
	return bookFromDocument(doc)
}

// ImportDocument reads a board of either variant from a JSON file.
func ImportDocument(path string) (Document, error) {
	f, err := open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return ReadDocument(f)
}

// ImportGrid reads a grid board from a JSON file.
func ImportGrid(path string) (*grid.Store, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGrid(f)
}

// ImportBook reads a quadrant book from a JSON file.
func ImportBook(path string) (*quadrant.Book, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadBook(f)
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	return f, nil
}

func decode(r io.Reader) (document, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return document{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode board")
	}
	return doc, nil
}

func gridFromDocument(doc document) (*grid.Store, error) {
	cfg := grid.DefaultConfig()
	if doc.Grid != nil {
		cfg = *doc.Grid
	}
	items := make([]grid.Item, len(doc.Items))
	for i, raw := range doc.Items {
		it := raw.Item
		data, err := exhibit.NewData(it.Kind, raw.Data)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "item %d (%s)", i, it.ID)
		}
		it.Data = data
		items[i] = it
	}
	s, err := grid.NewStore(cfg, items...)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load grid")
	}
	return s, nil
}

func bookFromDocument(doc document) (*quadrant.Book, error) {
	pages := make([]quadrant.Page, len(doc.Pages))
	for i, p := range doc.Pages {
		pg, err := quadrant.NewPage(p.Placements...)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "page %d", i+1)
		}
		pages[i] = pg
	}
	b, err := quadrant.Restore(doc.Pool, pages, doc.Current)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load book")
	}
	return b, nil
}
