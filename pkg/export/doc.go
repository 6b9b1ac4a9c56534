// Package export turns a board into documents: a row-major list of entries,
// a plain-text summary, and paginated sheets rendered as SVG, PNG, PDF or
// JSON.
//
// # Entries
//
// [GridEntries] and [BookEntries] expose {id, kind, title, position} for every
// placed item in top-to-bottom, left-to-right order, so any renderer can
// reproduce the on-screen order.
//
// # Pagination
//
// [Paginate] lays grid rows onto landscape A4 sheets. Items of a row share a
// baseline and keep their column offset; a row that does not fit above the
// disclaimer band starts a new sheet. [PaginateBook] maps each book page onto
// one sheet, two regions per row. Every sheet lists the disclaimers of the
// exhibits it carries, split into two columns.
//
// # Formats
//
//   - svg: one document with all sheets stacked vertically
//   - png: raster of the same, drawn in pure Go
//   - pdf: one page per sheet (requires rsvg-convert)
//   - json: sheets and entries
//   - txt: the text summary
package export
