package exhibit

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/matzehuels/exhibitboard/pkg/errors"
)

// Data is the payload of a placed exhibit. The set of implementations is
// closed: TableData, ChartData and ImageData.
type Data interface {
	// Kinds reports which exhibit kinds accept this payload.
	Kinds() []Kind
	// Clone returns a deep copy so stores never share payload memory.
	Clone() Data
	validate() error
}

// Column describes one table column.
type Column struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Field   string `json:"field"`
	Visible bool   `json:"visible"`
}

// TableData is the payload of a table exhibit.
type TableData struct {
	Columns []Column         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

func (TableData) Kinds() []Kind { return []Kind{KindTable} }

func (d TableData) Clone() Data {
	out := TableData{Columns: slices.Clone(d.Columns)}
	if d.Rows != nil {
		out.Rows = make([]map[string]any, len(d.Rows))
		for i, r := range d.Rows {
			row := make(map[string]any, len(r))
			for k, v := range r {
				row[k] = v
			}
			out.Rows[i] = row
		}
	}
	return out
}

func (d TableData) validate() error {
	seen := make(map[string]bool, len(d.Columns))
	for _, c := range d.Columns {
		if c.ID == "" || c.Field == "" {
			return fmt.Errorf("column requires id and field")
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate column id %q", c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

// VisibleColumns returns the columns to render, in display order.
func (d TableData) VisibleColumns() []Column {
	var out []Column
	for _, c := range d.Columns {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}

// WithColumnVisibility returns a copy with the visibility of columnID set.
// The second result is false if no column has that id.
func (d TableData) WithColumnVisibility(columnID string, visible bool) (TableData, bool) {
	idx := slices.IndexFunc(d.Columns, func(c Column) bool { return c.ID == columnID })
	if idx < 0 {
		return d, false
	}
	out := d.Clone().(TableData)
	out.Columns[idx].Visible = visible
	return out, true
}

// WithColumnMoved returns a copy with the column at from moved to index to.
// The second result is false if either index is out of range.
func (d TableData) WithColumnMoved(from, to int) (TableData, bool) {
	n := len(d.Columns)
	if from < 0 || from >= n || to < 0 || to >= n {
		return d, false
	}
	out := d.Clone().(TableData)
	col := out.Columns[from]
	out.Columns = slices.Delete(out.Columns, from, from+1)
	out.Columns = slices.Insert(out.Columns, to, col)
	return out, true
}

// ChartData is the payload of pie and bar charts.
type ChartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

func (ChartData) Kinds() []Kind { return []Kind{KindPie, KindBar} }

func (d ChartData) Clone() Data {
	return ChartData{Labels: slices.Clone(d.Labels), Values: slices.Clone(d.Values)}
}

func (d ChartData) validate() error {
	if len(d.Labels) != len(d.Values) {
		return fmt.Errorf("chart has %d labels but %d values", len(d.Labels), len(d.Values))
	}
	return nil
}

// Total returns the sum of all values.
func (d ChartData) Total() float64 {
	var sum float64
	for _, v := range d.Values {
		sum += v
	}
	return sum
}

// ImageData is the payload of an image exhibit.
type ImageData struct {
	Source string `json:"source"`
	Alt    string `json:"alt,omitempty"`
}

func (ImageData) Kinds() []Kind { return []Kind{KindImage} }

func (d ImageData) Clone() Data { return d }

func (d ImageData) validate() error {
	if d.Source == "" {
		return fmt.Errorf("image requires a source")
	}
	return nil
}

// Validate checks that data is acceptable for kind k. A nil payload is
// accepted for every kind.
func Validate(k Kind, data Data) error {
	if !k.Valid() {
		return errors.New(errors.ErrCodeInvalidKind, "unknown exhibit kind: %q", k)
	}
	if data == nil {
		return nil
	}
	if !slices.Contains(data.Kinds(), k) {
		return errors.New(errors.ErrCodeInvalidKind, "%T cannot back a %s exhibit", data, k)
	}
	if err := data.validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s data", k)
	}
	return nil
}

// NewData decodes raw JSON into the payload type for kind k and validates it.
// Empty or null input yields a nil payload.
func NewData(k Kind, raw json.RawMessage) (Data, error) {
	if !k.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidKind, "unknown exhibit kind: %q", k)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var (
		data Data
		err  error
	)
	switch k {
	case KindTable:
		var d TableData
		err = json.Unmarshal(raw, &d)
		data = d
	case KindPie, KindBar:
		var d ChartData
		err = json.Unmarshal(raw, &d)
		data = d
	case KindImage:
		var d ImageData
		err = json.Unmarshal(raw, &d)
		data = d
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s data", k)
	}
	if err := Validate(k, data); err != nil {
		return nil, err
	}
	return data, nil
}
