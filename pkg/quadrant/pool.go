package quadrant

import (
	"slices"

	"github.com/matzehuels/exhibitboard/pkg/exhibit"
)

// Pool is the ordered set of exhibits not placed on any page.
type Pool struct {
	items []exhibit.Exhibit
}

// NewPool returns a pool holding items in order.
func NewPool(items ...exhibit.Exhibit) *Pool {
	return &Pool{items: slices.Clone(items)}
}

// Items returns a copy of the pool contents.
func (p *Pool) Items() []exhibit.Exhibit { return slices.Clone(p.items) }

// Len returns the number of pooled exhibits.
func (p *Pool) Len() int { return len(p.items) }

// Get returns the pooled exhibit with the given id.
func (p *Pool) Get(id string) (exhibit.Exhibit, bool) {
	if i := p.index(id); i >= 0 {
		return p.items[i], true
	}
	return exhibit.Exhibit{}, false
}

// Contains reports whether id is in the pool.
func (p *Pool) Contains(id string) bool { return p.index(id) >= 0 }

// take removes and returns the exhibit with the given id.
func (p *Pool) take(id string) (exhibit.Exhibit, bool) {
	i := p.index(id)
	if i < 0 {
		return exhibit.Exhibit{}, false
	}
	e := p.items[i]
	p.items = slices.Delete(p.items, i, i+1)
	return e, true
}

// put appends e to the end of the pool.
func (p *Pool) put(e exhibit.Exhibit) { p.items = append(p.items, e) }

func (p *Pool) index(id string) int {
	return slices.IndexFunc(p.items, func(e exhibit.Exhibit) bool { return e.ID == id })
}
