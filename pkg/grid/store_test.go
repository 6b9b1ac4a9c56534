package grid

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
)

func newTestStore(t *testing.T, items ...Item) *Store {
	t.Helper()
	s, err := NewStore(DefaultConfig(), items...)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return s
}

func add(t *testing.T, s *Store, id string, width int) Item {
	t.Helper()
	it, ch := s.Add(Item{ID: id, Kind: exhibit.KindBar}, width)
	if !ch.Applied {
		t.Fatalf("Add(%s) rejected: %s", id, ch.Reason)
	}
	return it
}

func assertNoOverlap(t *testing.T, s *Store) {
	t.Helper()
	items := s.Items()
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if items[i].Position.Overlaps(items[j].Position) {
				t.Fatalf("%s %+v overlaps %s %+v", items[i].ID, items[i].Position, items[j].ID, items[j].Position)
			}
		}
	}
}

func TestStoreScenario(t *testing.T) {
	s := newTestStore(t)

	if got := add(t, s, "A", 6).Position; got != (Position{0, 0, 6}) {
		t.Errorf("A = %+v, want {0 0 6}", got)
	}
	if got := add(t, s, "B", 6).Position; got != (Position{0, 6, 6}) {
		t.Errorf("B = %+v, want {0 6 6}", got)
	}
	if got := add(t, s, "C", 6).Position; got != (Position{1, 0, 6}) {
		t.Errorf("C = %+v, want {1 0 6}", got)
	}

	if ch := s.Remove("B"); !ch.Applied {
		t.Fatalf("Remove(B) rejected: %s", ch.Reason)
	}

	// The freed half of row 0 is reused rather than row 1.
	if got := add(t, s, "D", 4).Position; got != (Position{0, 6, 4}) {
		t.Errorf("D = %+v, want {0 6 4}", got)
	}
	assertNoOverlap(t, s)
}

func TestStoreAddWidth(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"below resize minimum", 2, 2},
		{"single column", 1, 1},
		{"zero uses default", 0, DefaultItemWidth},
		{"negative uses default", -3, DefaultItemWidth},
		{"wider than canvas", 20, DefaultColumns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			if got := add(t, s, "A", tt.requested).Position; got != (Position{0, 0, tt.want}) {
				t.Errorf("Add(width %d) = %+v, want {0 0 %d}", tt.requested, got, tt.want)
			}
		})
	}
}

func TestStoreAddDefaults(t *testing.T) {
	s := newTestStore(t)

	it, ch := s.Add(Item{Kind: exhibit.KindPie}, 20)
	if !ch.Applied {
		t.Fatalf("Add() rejected: %s", ch.Reason)
	}
	if it.ID == "" || it.ID[:4] != "pie-" {
		t.Errorf("generated id = %q, want pie- prefix", it.ID)
	}
	if it.Position.Width != 12 {
		t.Errorf("width = %d, want clamp to 12", it.Position.Width)
	}
	if it.Size != DefaultConfig().DefaultSize {
		t.Errorf("size = %+v, want default", it.Size)
	}
}

func TestStoreAddRejects(t *testing.T) {
	s := newTestStore(t)
	add(t, s, "A", 6)

	if _, ch := s.Add(Item{ID: "A", Kind: exhibit.KindBar}, 6); ch.Applied || ch.Reason != errors.ErrCodeInvalidInput {
		t.Errorf("duplicate id change = %+v", ch)
	}
	if _, ch := s.Add(Item{ID: "X", Kind: exhibit.KindTable, Data: exhibit.SampleData(exhibit.KindPie)}, 6); ch.Applied || ch.Reason != errors.ErrCodeInvalidKind {
		t.Errorf("mismatched data change = %+v", ch)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStorePlace(t *testing.T) {
	s := newTestStore(t)
	e, _ := exhibit.DefaultCatalog().Get("table1")

	it, ch := s.Place(e)
	if !ch.Applied {
		t.Fatalf("Place() rejected: %s", ch.Reason)
	}
	if it.ExhibitID != "table1" || it.Title != "Sales Report" {
		t.Errorf("Place() = %+v", it)
	}
	if _, ok := it.Data.(exhibit.TableData); !ok {
		t.Errorf("Place() data = %T, want TableData", it.Data)
	}
	if it.Position != (Position{0, 0, 6}) {
		t.Errorf("Place() position = %+v", it.Position)
	}
}

func TestStoreUpdateMergesPartialPosition(t *testing.T) {
	s := newTestStore(t)
	add(t, s, "A", 6)

	w := 8
	if ch := s.Update("A", Patch{Position: &PositionPatch{Width: &w}}); !ch.Applied {
		t.Fatalf("Update() rejected: %s", ch.Reason)
	}
	it, _ := s.Item("A")
	if it.Position != (Position{0, 0, 8}) {
		t.Errorf("position = %+v, want {0 0 8}", it.Position)
	}

	h := 450.0
	s.Update("A", Patch{Size: &SizePatch{Height: &h}})
	it, _ = s.Item("A")
	if it.Size.Height != 450 || it.Size.Width != DefaultItemPixelW {
		t.Errorf("size = %+v, want width kept and height 450", it.Size)
	}

	title := "Quarterly"
	s.Update("A", Patch{Title: &title})
	it, _ = s.Item("A")
	if it.Title != "Quarterly" || it.Position.Width != 8 {
		t.Errorf("title update changed other fields: %+v", it)
	}
}

func TestStoreNarrowWidths(t *testing.T) {
	// MinColumnWidth bounds resizing only: imports and patches may be narrower.
	s := newTestStore(t, Item{ID: "A", Kind: exhibit.KindBar, Position: Position{Row: 0, Column: 0, Width: 2}})

	w := 3
	if ch := s.Update("A", Patch{Position: &PositionPatch{Width: &w}}); !ch.Applied {
		t.Fatalf("Update(width 3) rejected: %s", ch.Reason)
	}
	if it, _ := s.Item("A"); it.Position != (Position{0, 0, 3}) {
		t.Errorf("A = %+v, want {0 0 3}", it.Position)
	}

	zero := 0
	if ch := s.Update("A", Patch{Position: &PositionPatch{Width: &zero}}); ch.Applied || ch.Reason != errors.ErrCodeInvalidInput {
		t.Errorf("Update(width 0) = %+v, want INVALID_INPUT", ch)
	}

	s.Resize("A", 100, 300)
	if it, _ := s.Item("A"); it.Position.Width != DefaultMinColumnWidth {
		t.Errorf("width after resize = %d, want %d", it.Position.Width, DefaultMinColumnWidth)
	}
}

func TestStoreUpdateRejects(t *testing.T) {
	s := newTestStore(t)
	add(t, s, "A", 6)
	add(t, s, "B", 6)
	before := s.Items()

	tests := []struct {
		name  string
		id    string
		patch Patch
		want  errors.Code
	}{
		{"unknown id", "nope", Patch{}, errors.ErrCodeUnknownItem},
		{"grow into neighbour", "A", Patch{Position: &PositionPatch{Width: ptr(7)}}, errors.ErrCodeOverlap},
		{"past right edge", "B", Patch{Position: &PositionPatch{Width: ptr(7)}}, errors.ErrCodeInvalidInput},
		{"negative row", "A", Patch{Position: &PositionPatch{Row: ptr(-1)}}, errors.ErrCodeInvalidInput},
		{"wrong data", "A", Patch{Data: exhibit.SampleData(exhibit.KindTable)}, errors.ErrCodeInvalidKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := s.Update(tt.id, tt.patch)
			if ch.Applied || ch.Reason != tt.want {
				t.Errorf("Update() = %+v, want rejection %s", ch, tt.want)
			}
		})
	}
	if !reflect.DeepEqual(before, s.Items()) {
		t.Error("rejected updates mutated the store")
	}
}

func TestStoreResize(t *testing.T) {
	cfg := DefaultConfig()
	unit := cfg.ColumnPixelWidth() + cfg.Gap

	t.Run("clamped at right edge", func(t *testing.T) {
		s := newTestStore(t, Item{ID: "A", Kind: exhibit.KindBar, Position: Position{Row: 0, Column: 8, Width: 4}})
		if ch := s.Resize("A", 6*unit, 300); !ch.Applied {
			t.Fatalf("Resize() rejected: %s", ch.Reason)
		}
		it, _ := s.Item("A")
		if it.Position.Width != 4 || it.Position.Column != 8 {
			t.Errorf("position = %+v, want column 8 width 4", it.Position)
		}
	})

	t.Run("grows within room", func(t *testing.T) {
		s := newTestStore(t, Item{ID: "A", Kind: exhibit.KindBar, Position: Position{Row: 0, Column: 0, Width: 6}})
		s.Resize("A", 9*unit, 320)
		it, _ := s.Item("A")
		if it.Position.Width != 9 {
			t.Errorf("width = %d, want 9", it.Position.Width)
		}
		if it.Size.Height != 320 {
			t.Errorf("height = %v, want 320", it.Size.Height)
		}
	})

	t.Run("minimum width", func(t *testing.T) {
		s := newTestStore(t, Item{ID: "A", Kind: exhibit.KindBar, Position: Position{Row: 0, Column: 0, Width: 8}})
		s.Resize("A", 2*unit, 300)
		it, _ := s.Item("A")
		if it.Position.Width != 6 {
			t.Errorf("width = %d, want 6", it.Position.Width)
		}
	})

	t.Run("does not grow into neighbour", func(t *testing.T) {
		s := newTestStore(t,
			Item{ID: "A", Kind: exhibit.KindBar, Position: Position{Row: 0, Column: 0, Width: 6}},
			Item{ID: "B", Kind: exhibit.KindBar, Position: Position{Row: 0, Column: 6, Width: 6}},
		)
		s.Resize("A", 10*unit, 300)
		it, _ := s.Item("A")
		if it.Position.Width != 6 {
			t.Errorf("width = %d, want 6", it.Position.Width)
		}
		assertNoOverlap(t, s)
	})

	t.Run("height clamped", func(t *testing.T) {
		s := newTestStore(t, Item{ID: "A", Kind: exhibit.KindBar, Position: Position{Row: 0, Column: 0, Width: 6}})
		s.Resize("A", 6*unit, 5000)
		it, _ := s.Item("A")
		if it.Size.Height != DefaultMaxHeight {
			t.Errorf("height = %v, want %v", it.Size.Height, DefaultMaxHeight)
		}
	})

	t.Run("non-finite sizes", func(t *testing.T) {
		sizes := [][2]float64{
			{math.NaN(), 300},
			{math.Inf(1), 300},
			{math.Inf(-1), 300},
			{6 * unit, math.NaN()},
			{0, 300},
		}
		for _, sz := range sizes {
			s := newTestStore(t, Item{ID: "A", Kind: exhibit.KindBar, Position: Position{Row: 0, Column: 0, Width: 6}, Size: Size{Width: 400, Height: 300}})
			if ch := s.Resize("A", sz[0], sz[1]); ch.Applied || ch.Reason != errors.ErrCodeInvalidInput {
				t.Errorf("Resize(%v, %v) = %+v, want INVALID_INPUT", sz[0], sz[1], ch)
			}
			if it, _ := s.Item("A"); it.Position.Width != 6 || it.Size != (Size{Width: 400, Height: 300}) {
				t.Errorf("Resize(%v, %v) changed the item: %+v", sz[0], sz[1], it)
			}
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		s := newTestStore(t)
		if ch := s.Resize("nope", 100, 100); ch.Applied || ch.Reason != errors.ErrCodeUnknownItem {
			t.Errorf("Resize() = %+v", ch)
		}
	})
}

func TestStoreRelocate(t *testing.T) {
	s := newTestStore(t)
	add(t, s, "A", 6)
	add(t, s, "B", 6)
	add(t, s, "C", 6)
	s.Remove("A")

	if ch := s.Relocate("C"); !ch.Applied {
		t.Fatalf("Relocate() rejected: %s", ch.Reason)
	}
	it, _ := s.Item("C")
	if it.Position != (Position{0, 0, 6}) {
		t.Errorf("C = %+v, want {0 0 6}", it.Position)
	}

	// Already first-fit: stays put.
	s.Relocate("C")
	if again, _ := s.Item("C"); again.Position != it.Position {
		t.Errorf("second Relocate moved C to %+v", again.Position)
	}
	assertNoOverlap(t, s)
}

func TestStoreRemoveUnknownIsNoop(t *testing.T) {
	s := newTestStore(t)
	add(t, s, "A", 6)
	before := s.Snapshot()

	if ch := s.Remove("nope"); ch.Applied {
		t.Error("Remove(nope) reported applied")
	}
	if after := s.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("snapshot changed: %+v -> %+v", before, after)
	}
}

func TestStoreSelection(t *testing.T) {
	s := newTestStore(t)
	add(t, s, "A", 6)

	if ch := s.Select("nope"); ch.Applied {
		t.Error("Select(nope) applied")
	}
	s.Select("A")
	if s.Selected() != "A" {
		t.Fatalf("Selected() = %q", s.Selected())
	}
	s.Remove("A")
	if s.Selected() != "" {
		t.Errorf("Selected() after remove = %q, want empty", s.Selected())
	}
}

func TestStoreTableColumns(t *testing.T) {
	s := newTestStore(t)
	it, _ := s.Place(exhibit.Exhibit{ID: "table1", Kind: exhibit.KindTable})
	chart, _ := s.Place(exhibit.Exhibit{ID: "pie1", Kind: exhibit.KindPie})

	if ch := s.SetColumnVisibility(it.ID, "col3", false); !ch.Applied {
		t.Fatalf("SetColumnVisibility() rejected: %s", ch.Reason)
	}
	if ch := s.ReorderColumns(it.ID, 3, 0); !ch.Applied {
		t.Fatalf("ReorderColumns() rejected: %s", ch.Reason)
	}
	got, _ := s.Item(it.ID)
	table := got.Data.(exhibit.TableData)
	if table.Columns[0].ID != "col4" {
		t.Errorf("first column = %s, want col4", table.Columns[0].ID)
	}
	if len(table.VisibleColumns()) != 3 {
		t.Errorf("visible = %d, want 3", len(table.VisibleColumns()))
	}

	if ch := s.SetColumnVisibility(chart.ID, "col1", false); ch.Applied || ch.Reason != errors.ErrCodeInvalidKind {
		t.Errorf("chart column change = %+v", ch)
	}
	if ch := s.ReorderColumns(it.ID, 0, 9); ch.Applied {
		t.Error("out of range reorder applied")
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	s := newTestStore(t)
	it, _ := s.Place(exhibit.Exhibit{ID: "bar1", Kind: exhibit.KindBar})

	items := s.Items()
	items[0].Position.Row = 99
	items[0].Data.(exhibit.ChartData).Values[0] = -1

	got, _ := s.Item(it.ID)
	if got.Position.Row != 0 {
		t.Error("caller mutation leaked into store position")
	}
	if got.Data.(exhibit.ChartData).Values[0] == -1 {
		t.Error("caller mutation leaked into store data")
	}
}

func TestStoreSubscribe(t *testing.T) {
	s := newTestStore(t)
	var versions []uint64
	cancel := s.Subscribe(func(snap Snapshot) {
		versions = append(versions, snap.Version)
	})

	add(t, s, "A", 6)
	s.Remove("nope")
	add(t, s, "B", 6)
	cancel()
	add(t, s, "C", 6)

	if !reflect.DeepEqual(versions, []uint64{1, 2}) {
		t.Errorf("versions = %v, want [1 2]", versions)
	}
}

func TestNewStoreValidatesItems(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  errors.Code
	}{
		{
			name: "overlap",
			items: []Item{
				{ID: "a", Kind: exhibit.KindBar, Position: Position{0, 0, 6}},
				{ID: "b", Kind: exhibit.KindBar, Position: Position{0, 5, 6}},
			},
			want: errors.ErrCodeOverlap,
		},
		{
			name:  "out of bounds",
			items: []Item{{ID: "a", Kind: exhibit.KindBar, Position: Position{0, 8, 6}}},
			want:  errors.ErrCodeInvalidInput,
		},
		{
			name: "duplicate id",
			items: []Item{
				{ID: "a", Kind: exhibit.KindBar, Position: Position{0, 0, 6}},
				{ID: "a", Kind: exhibit.KindBar, Position: Position{1, 0, 6}},
			},
			want: errors.ErrCodeInvalidInput,
		},
		{
			name:  "unknown kind",
			items: []Item{{ID: "a", Kind: "gauge", Position: Position{0, 0, 6}}},
			want:  errors.ErrCodeInvalidKind,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(DefaultConfig(), tt.items...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewStore() error = %v, want %s", err, tt.want)
			}
		})
	}

	bad := DefaultConfig()
	bad.MinColumnWidth = 13
	if _, err := NewStore(bad); err == nil {
		t.Error("NewStore() accepted min width above columns")
	}
}

func ptr[T any](v T) *T { return &v }
