package exhibit

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/exhibitboard/pkg/errors"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"table", KindTable, false},
		{"PIE", KindPie, false},
		{" bar ", KindBar, false},
		{"image", KindImage, false},
		{"map", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLayoutClass(t *testing.T) {
	tests := []struct {
		input   string
		want    LayoutClass
		wantErr bool
	}{
		{"", LayoutQuad, false},
		{"quad", LayoutQuad, false},
		{"FULLPAGE", LayoutFullPage, false},
		{"half", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLayoutClass(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLayoutClass(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLayoutClass(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultTitle(t *testing.T) {
	tests := map[Kind]string{
		KindTable: "Table Report",
		KindPie:   "Pie Report",
		KindBar:   "Bar Report",
		KindImage: "Image Report",
	}
	for k, want := range tests {
		if got := k.DefaultTitle(); got != want {
			t.Errorf("%s.DefaultTitle() = %q, want %q", k, got, want)
		}
	}
	if got := Title("Custom", KindPie); got != "Custom" {
		t.Errorf("Title with explicit title = %q, want Custom", got)
	}
}

func TestValidateMatchesKind(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		data     Data
		wantCode errors.Code
	}{
		{"table ok", KindTable, SampleData(KindTable), ""},
		{"pie ok", KindPie, SampleData(KindPie), ""},
		{"bar accepts chart", KindBar, ChartData{Labels: []string{"a"}, Values: []float64{1}}, ""},
		{"image ok", KindImage, SampleData(KindImage), ""},
		{"nil data", KindBar, nil, ""},
		{"chart for table", KindTable, SampleData(KindPie), errors.ErrCodeInvalidKind},
		{"table for image", KindImage, SampleData(KindTable), errors.ErrCodeInvalidKind},
		{"mismatched chart", KindPie, ChartData{Labels: []string{"a", "b"}, Values: []float64{1}}, errors.ErrCodeInvalidInput},
		{"image without source", KindImage, ImageData{}, errors.ErrCodeInvalidInput},
		{"duplicate column", KindTable, TableData{Columns: []Column{{ID: "a", Field: "x"}, {ID: "a", Field: "y"}}}, errors.ErrCodeInvalidInput},
		{"unknown kind", Kind("map"), nil, errors.ErrCodeInvalidKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.kind, tt.data)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestNewData(t *testing.T) {
	raw := json.RawMessage(`{"labels":["Q1","Q2"],"values":[10,20]}`)
	d, err := NewData(KindBar, raw)
	if err != nil {
		t.Fatalf("NewData() error = %v", err)
	}
	chart, ok := d.(ChartData)
	if !ok {
		t.Fatalf("NewData() returned %T, want ChartData", d)
	}
	if chart.Total() != 30 {
		t.Errorf("Total() = %v, want 30", chart.Total())
	}

	if d, err := NewData(KindTable, nil); err != nil || d != nil {
		t.Errorf("NewData(nil) = %v, %v; want nil, nil", d, err)
	}
	if _, err := NewData(KindImage, json.RawMessage(`{"alt":"x"}`)); err == nil {
		t.Error("NewData() should reject image without source")
	}
	if _, err := NewData(KindPie, json.RawMessage(`{"labels":`)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("NewData() malformed error = %v, want INVALID_INPUT", err)
	}
}

func TestTableColumnVisibility(t *testing.T) {
	table := SampleData(KindTable).(TableData)

	hidden, ok := table.WithColumnVisibility("col2", false)
	if !ok {
		t.Fatal("WithColumnVisibility(col2) not applied")
	}
	if len(hidden.VisibleColumns()) != 3 {
		t.Errorf("visible columns = %d, want 3", len(hidden.VisibleColumns()))
	}
	if !table.Columns[1].Visible {
		t.Error("original table was mutated")
	}

	if _, ok := table.WithColumnVisibility("missing", false); ok {
		t.Error("WithColumnVisibility(missing) should report false")
	}
}

func TestTableColumnMove(t *testing.T) {
	table := SampleData(KindTable).(TableData)

	moved, ok := table.WithColumnMoved(0, 2)
	if !ok {
		t.Fatal("WithColumnMoved(0, 2) not applied")
	}
	var got []string
	for _, c := range moved.Columns {
		got = append(got, c.ID)
	}
	want := []string{"col2", "col3", "col1", "col4"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("columns = %v, want %v", got, want)
		}
	}
	if table.Columns[0].ID != "col1" {
		t.Error("original table was mutated")
	}

	for _, idx := range [][2]int{{-1, 0}, {0, 4}, {4, 0}} {
		if _, ok := table.WithColumnMoved(idx[0], idx[1]); ok {
			t.Errorf("WithColumnMoved(%d, %d) should report false", idx[0], idx[1])
		}
	}
}

func TestCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", c.Len())
	}
	e, ok := c.Get("pie1")
	if !ok || e.Title != "Market Share" || e.Kind != KindPie {
		t.Errorf("Get(pie1) = %+v, %v", e, ok)
	}
	if _, ok := c.Get("nope"); ok {
		t.Error("Get(nope) should miss")
	}

	if _, err := NewCatalog(Exhibit{ID: "a", Kind: KindBar}, Exhibit{ID: "a", Kind: KindPie}); err == nil {
		t.Error("NewCatalog() should reject duplicate ids")
	}
	if _, err := NewCatalog(Exhibit{ID: "a", Kind: "gauge"}); !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("NewCatalog() error = %v, want INVALID_KIND", err)
	}
}

func TestQuadrantSeed(t *testing.T) {
	seed := QuadrantSeed()
	if len(seed) != 8 {
		t.Fatalf("len(seed) = %d, want 8", len(seed))
	}
	for i, e := range seed {
		wantFull := e.ID == "3" || e.ID == "5"
		if (e.Layout == LayoutFullPage) != wantFull {
			t.Errorf("seed[%d] id=%s layout=%s", i, e.ID, e.Layout)
		}
		if err := e.Validate(); err != nil {
			t.Errorf("seed[%d] invalid: %v", i, err)
		}
	}
}

func TestDisclaimer(t *testing.T) {
	for _, k := range Kinds {
		if Disclaimer(k) == "" {
			t.Errorf("Disclaimer(%s) is empty", k)
		}
	}
}
