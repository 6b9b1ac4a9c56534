package quadrant

import (
	"testing"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
)

func quad(id string) exhibit.Exhibit {
	return exhibit.Exhibit{ID: id, Kind: exhibit.KindTable, Title: "Item " + id, Layout: exhibit.LayoutQuad}
}

func full(id string) exhibit.Exhibit {
	return exhibit.Exhibit{ID: id, Kind: exhibit.KindPie, Title: "Item " + id, Layout: exhibit.LayoutFullPage}
}

func mustPage(t *testing.T, placements ...Placement) Page {
	t.Helper()
	p, err := NewPage(placements...)
	if err != nil {
		t.Fatalf("NewPage() error = %v", err)
	}
	return p
}

func TestPageState(t *testing.T) {
	p := mustPage(t,
		Placement{Region: Region1, Exhibit: full("a")},
		Placement{Region: Region3, Exhibit: quad("b")},
	)
	want := map[Region]State{
		Region1: StateOccupiedFull,
		Region2: StateDisabled,
		Region3: StateOccupiedQuad,
		Region4: StateEmpty,
	}
	for r, s := range want {
		if got := p.State(r); got != s {
			t.Errorf("State(%s) = %s, want %s", r, got, s)
		}
	}
}

func TestPageCanAccept(t *testing.T) {
	tests := []struct {
		name   string
		page   []Placement
		region Region
		class  exhibit.LayoutClass
		want   bool
	}{
		{"quad into empty", nil, Region2, exhibit.LayoutQuad, true},
		{"unset class behaves as quad", nil, Region4, "", true},
		{"fullpage into anchor", nil, Region1, exhibit.LayoutFullPage, true},
		{"fullpage into bottom anchor", nil, Region3, exhibit.LayoutFullPage, true},
		{"fullpage into non-anchor", nil, Region2, exhibit.LayoutFullPage, false},
		{"fullpage into region4", nil, Region4, exhibit.LayoutFullPage, false},
		{"occupied", []Placement{{Region1, quad("a")}}, Region1, exhibit.LayoutQuad, false},
		{"disabled pair", []Placement{{Region1, full("a")}}, Region2, exhibit.LayoutQuad, false},
		{"fullpage blocked by quad pair", []Placement{{Region2, quad("a")}}, Region1, exhibit.LayoutFullPage, false},
		{"quad beside quad", []Placement{{Region2, quad("a")}}, Region1, exhibit.LayoutQuad, true},
		{"other row unaffected", []Placement{{Region1, full("a")}}, Region4, exhibit.LayoutQuad, true},
		{"unknown class", nil, Region1, "HALF", false},
		{"unknown region", nil, "quad9", exhibit.LayoutQuad, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPage(t, tt.page...)
			if got := p.CanAccept(tt.region, tt.class); got != tt.want {
				t.Errorf("CanAccept(%s, %s) = %v, want %v", tt.region, tt.class, got, tt.want)
			}
		})
	}
}

func TestNewPageRejectsImpossibleStates(t *testing.T) {
	tests := []struct {
		name string
		in   []Placement
		want errors.Code
	}{
		{"fullpage in non-anchor", []Placement{{Region2, full("a")}}, errors.ErrCodePlacementRejected},
		{"quad beside fullpage", []Placement{{Region1, full("a")}, {Region2, quad("b")}}, errors.ErrCodePlacementRejected},
		{"fullpage beside quad", []Placement{{Region2, quad("b")}, {Region1, full("a")}}, errors.ErrCodePlacementRejected},
		{"two in one region", []Placement{{Region3, quad("a")}, {Region3, quad("b")}}, errors.ErrCodePlacementRejected},
		{"bad region", []Placement{{"quad0", quad("a")}}, errors.ErrCodeInvalidRegion},
		{"bad exhibit", []Placement{{Region1, exhibit.Exhibit{ID: "x", Kind: "gauge"}}}, errors.ErrCodeInvalidKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPage(tt.in...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewPage() error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestPagePlacementsRowMajor(t *testing.T) {
	p := mustPage(t,
		Placement{Region: Region4, Exhibit: quad("d")},
		Placement{Region: Region2, Exhibit: quad("b")},
		Placement{Region: Region1, Exhibit: quad("a")},
	)
	got := p.Placements()
	want := []Region{Region1, Region2, Region4}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, pl := range got {
		if pl.Region != want[i] {
			t.Errorf("placement[%d] = %s, want %s", i, pl.Region, want[i])
		}
	}
	if r, ok := p.Find("b"); !ok || r != Region2 {
		t.Errorf("Find(b) = %s, %v", r, ok)
	}
	if _, ok := p.Find(""); ok {
		t.Error("Find(\"\") matched an empty slot")
	}
}
