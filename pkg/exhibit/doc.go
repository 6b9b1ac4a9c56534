// Package exhibit defines the placeable widgets of a report board.
//
// An exhibit is a template in the palette: a table, a pie chart, a bar chart
// or an image. Once dropped on a board it becomes an item that carries a copy
// of the exhibit's data. The data is a closed tagged variant keyed by [Kind]:
//
//   - [TableData] for KindTable (columns with visibility, rows keyed by field)
//   - [ChartData] for KindPie and KindBar (parallel labels and values)
//   - [ImageData] for KindImage (source URL and alt text)
//
// [NewData] and [Validate] check that a payload matches its kind at
// construction time, so renderers never need to probe fields.
//
// The package also carries the default palette ([DefaultCatalog]), sample
// payloads used when an exhibit is dropped ([SampleData]), default titles and
// the per-kind disclaimers printed at the bottom of exported pages.
package exhibit
