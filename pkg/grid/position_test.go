package grid

import "testing"

func occupied(row, col, width int, id string) Item {
	return Item{ID: id, Kind: "table", Position: Position{Row: row, Column: col, Width: width}}
}

func TestFindAvailablePosition(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		width int
		want  Position
	}{
		{
			name:  "empty canvas",
			width: 6,
			want:  Position{Row: 0, Column: 0, Width: 6},
		},
		{
			name:  "right half free",
			items: []Item{occupied(0, 0, 6, "a")},
			width: 6,
			want:  Position{Row: 0, Column: 6, Width: 6},
		},
		{
			name:  "row 0 full",
			items: []Item{occupied(0, 0, 6, "a"), occupied(0, 6, 6, "b")},
			width: 6,
			want:  Position{Row: 1, Column: 0, Width: 6},
		},
		{
			name:  "gap too small moves down",
			items: []Item{occupied(0, 0, 4, "a"), occupied(0, 8, 4, "b")},
			width: 6,
			want:  Position{Row: 1, Column: 0, Width: 6},
		},
		{
			name:  "middle gap fits",
			items: []Item{occupied(0, 0, 3, "a"), occupied(0, 9, 3, "b")},
			width: 6,
			want:  Position{Row: 0, Column: 3, Width: 6},
		},
		{
			name:  "first sufficient run wins",
			items: []Item{occupied(0, 2, 2, "a"), occupied(0, 6, 2, "b")},
			width: 2,
			want:  Position{Row: 0, Column: 0, Width: 2},
		},
		{
			name:  "skips several full rows",
			items: []Item{occupied(0, 0, 12, "a"), occupied(1, 0, 12, "b"), occupied(2, 1, 11, "c")},
			width: 1,
			want:  Position{Row: 2, Column: 0, Width: 1},
		},
		{
			name:  "sparse rows fill the hole first",
			items: []Item{occupied(0, 0, 12, "a"), occupied(2, 0, 12, "b")},
			width: 12,
			want:  Position{Row: 1, Column: 0, Width: 12},
		},
		{
			name:  "oversized width clamps to columns",
			width: 20,
			want:  Position{Row: 0, Column: 0, Width: 12},
		},
		{
			name:  "zero width clamps to one",
			items: []Item{occupied(0, 0, 11, "a")},
			width: 0,
			want:  Position{Row: 0, Column: 11, Width: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindAvailablePosition(tt.items, tt.width, 12)
			if got != tt.want {
				t.Errorf("FindAvailablePosition() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindAvailablePositionIsStable(t *testing.T) {
	items := []Item{occupied(0, 0, 5, "a"), occupied(1, 6, 6, "b")}
	first := FindAvailablePosition(items, 6, 12)
	for i := 0; i < 10; i++ {
		if got := FindAvailablePosition(items, 6, 12); got != first {
			t.Fatalf("call %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestPositionOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want bool
	}{
		{"disjoint", Position{0, 0, 6}, Position{0, 6, 6}, false},
		{"one shared column", Position{0, 0, 7}, Position{0, 6, 6}, true},
		{"contained", Position{0, 0, 12}, Position{0, 4, 2}, true},
		{"different rows", Position{0, 0, 6}, Position{1, 0, 6}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name         string
		px, col, gap float64
		want         int
	}{
		{"exact", 600, 84, 16, 6},
		{"rounds down", 640, 84, 16, 6},
		{"rounds up", 660, 84, 16, 7},
		{"zero unit", 100, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.px, tt.col, tt.gap); got != tt.want {
				t.Errorf("Quantize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct {
		name                string
		width, column, minW int
		want                int
	}{
		{"within range", 8, 0, 6, 8},
		{"below minimum", 2, 0, 6, 6},
		{"truncated by edge", 6, 8, 6, 4},
		{"edge wins over minimum", 2, 10, 6, 2},
		{"full width", 20, 0, 6, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampWidth(tt.width, tt.column, tt.minW, 12); got != tt.want {
				t.Errorf("ClampWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSortRowMajor(t *testing.T) {
	items := []Item{occupied(1, 0, 6, "c"), occupied(0, 6, 6, "b"), occupied(0, 0, 6, "a"), occupied(2, 3, 3, "d")}
	SortRowMajor(items)
	want := []string{"a", "b", "c", "d"}
	for i, it := range items {
		if it.ID != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, it.ID, want[i])
		}
	}
}
