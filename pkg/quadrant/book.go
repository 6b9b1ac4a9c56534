package quadrant

import (
	"slices"
	"sync"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
)

// Op names a book mutation.
type Op string

const (
	OpPlace   Op = "place"
	OpMove    Op = "move"
	OpRemove  Op = "remove"
	OpAddPage Op = "add_page"
	OpTurn    Op = "turn"
)

// Change reports the outcome of a mutating call.
type Change struct {
	Op      Op
	ItemID  string
	Region  Region
	Page    int
	Applied bool
	// Reason is set when Applied is false.
	Reason errors.Code
}

// Snapshot is an immutable copy of the book.
type Snapshot struct {
	Version uint64
	Current int
	Pages   []Page
	Pool    []exhibit.Exhibit
}

// Book is a sequence of pages sharing one pool. Placement, moves and removals
// act on the current page. It is safe for concurrent use.
type Book struct {
	mu      sync.RWMutex
	pages   []Page
	current int
	pool    *Pool
	version uint64

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// NewBook creates a book with one empty page and the given pool.
func NewBook(pool ...exhibit.Exhibit) (*Book, error) {
	return Restore(pool, []Page{{}}, 0)
}

// Restore rebuilds a book from saved state. Exhibit ids must be unique
// across the pool and all pages.
func Restore(pool []exhibit.Exhibit, pages []Page, current int) (*Book, error) {
	if len(pages) == 0 {
		pages = []Page{{}}
	}
	if current < 0 || current >= len(pages) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "current page %d out of range [0, %d)", current, len(pages))
	}
	seen := make(map[string]bool)
	check := func(e exhibit.Exhibit) error {
		if err := e.Validate(); err != nil {
			return err
		}
		if seen[e.ID] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate exhibit id %q", e.ID)
		}
		seen[e.ID] = true
		return nil
	}
	for _, e := range pool {
		if err := check(e); err != nil {
			return nil, err
		}
	}
	for _, p := range pages {
		for _, pl := range p.Placements() {
			if err := check(pl.Exhibit); err != nil {
				return nil, err
			}
		}
	}
	return &Book{
		pages:   slices.Clone(pages),
		current: current,
		pool:    NewPool(pool...),
		subs:    make(map[int]func(Snapshot)),
	}, nil
}

// Subscribe registers fn to receive a snapshot after every applied change.
func (b *Book) Subscribe(fn func(Snapshot)) (cancel func()) {
	b.subMu.Lock()
	defer b.subMu.Unlock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() {
		b.subMu.Lock()
		defer b.subMu.Unlock()
		delete(b.subs, id)
	}
}

// CanAccept queries the current page. The answer is advisory; Place and Move
// re-check it.
func (b *Book) CanAccept(r Region, c exhibit.LayoutClass) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pages[b.current].CanAccept(r, c)
}

// State returns the state of r on the current page.
func (b *Book) State(r Region) State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pages[b.current].State(r)
}

// Place moves the pooled exhibit id into r on the current page. On rejection
// the exhibit stays in the pool at its original position.
func (b *Book) Place(id string, r Region) Change {
	b.mu.Lock()
	ch := Change{Op: OpPlace, ItemID: id, Region: r, Page: b.current}
	if !r.Valid() {
		b.mu.Unlock()
		ch.Reason = errors.ErrCodeInvalidRegion
		return ch
	}
	e, ok := b.pool.Get(id)
	if !ok {
		b.mu.Unlock()
		ch.Reason = errors.ErrCodeUnknownItem
		return ch
	}
	page := &b.pages[b.current]
	if !page.CanAccept(r, e.Layout) {
		b.mu.Unlock()
		ch.Reason = errors.ErrCodePlacementRejected
		return ch
	}
	b.pool.take(id)
	page.put(r, e)
	snap := b.commit()
	b.mu.Unlock()

	b.notify(snap)
	ch.Applied = true
	return ch
}

// Move relocates exhibit id from one region of the current page to another.
// The destination is checked with the source already vacated, so a FULLPAGE
// exhibit may move between anchors. A rejected move changes nothing.
func (b *Book) Move(id string, from, to Region) Change {
	b.mu.Lock()
	ch := Change{Op: OpMove, ItemID: id, Region: to, Page: b.current}
	if !from.Valid() || !to.Valid() {
		b.mu.Unlock()
		ch.Reason = errors.ErrCodeInvalidRegion
		return ch
	}
	page := &b.pages[b.current]
	e, ok := page.At(from)
	if !ok || e.ID != id {
		b.mu.Unlock()
		ch.Reason = errors.ErrCodeUnknownItem
		return ch
	}
	if from == to {
		b.mu.Unlock()
		ch.Reason = errors.ErrCodePlacementRejected
		return ch
	}
	trial := *page
	trial.clear(from)
	if !trial.CanAccept(to, e.Layout) {
		b.mu.Unlock()
		ch.Reason = errors.ErrCodePlacementRejected
		return ch
	}
	trial.put(to, e)
	*page = trial
	snap := b.commit()
	b.mu.Unlock()

	b.notify(snap)
	ch.Applied = true
	return ch
}

// Remove takes exhibit id off the current page and returns it to the end of
// the pool. Unknown ids are a no-op.
func (b *Book) Remove(id string) Change {
	b.mu.Lock()
	ch := Change{Op: OpRemove, ItemID: id, Page: b.current}
	page := &b.pages[b.current]
	r, ok := page.Find(id)
	if !ok {
		b.mu.Unlock()
		ch.Reason = errors.ErrCodeUnknownItem
		return ch
	}
	e, _ := page.At(r)
	page.clear(r)
	b.pool.put(e)
	ch.Region = r
	snap := b.commit()
	b.mu.Unlock()

	b.notify(snap)
	ch.Applied = true
	return ch
}

// AddPage appends an empty page and makes it current. It is allowed only
// while the last page is current and holds at least one exhibit.
func (b *Book) AddPage() Change {
	b.mu.Lock()
	ch := Change{Op: OpAddPage, Page: b.current}
	if b.current != len(b.pages)-1 || b.pages[b.current].Empty() {
		b.mu.Unlock()
		ch.Reason = errors.ErrCodePlacementRejected
		return ch
	}
	b.pages = append(b.pages, Page{})
	b.current = len(b.pages) - 1
	ch.Page = b.current
	snap := b.commit()
	b.mu.Unlock()

	b.notify(snap)
	ch.Applied = true
	return ch
}

// NextPage makes the following page current.
func (b *Book) NextPage() Change { return b.turn(1) }

// PrevPage makes the preceding page current.
func (b *Book) PrevPage() Change { return b.turn(-1) }

func (b *Book) turn(delta int) Change {
	b.mu.Lock()
	ch := Change{Op: OpTurn, Page: b.current}
	next := b.current + delta
	if next < 0 || next >= len(b.pages) {
		b.mu.Unlock()
		ch.Reason = errors.ErrCodeInvalidInput
		return ch
	}
	b.current = next
	ch.Page = next
	snap := b.commit()
	b.mu.Unlock()

	b.notify(snap)
	ch.Applied = true
	return ch
}

// Current returns the index of the current page.
func (b *Book) Current() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

// Page returns a copy of page i.
func (b *Book) Page(i int) (Page, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.pages) {
		return Page{}, false
	}
	return b.pages[i], true
}

// Pages returns copies of all pages.
func (b *Book) Pages() []Page {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.pages)
}

// Pool returns the unplaced exhibits in pool order.
func (b *Book) Pool() []exhibit.Exhibit {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pool.Items()
}

// Pooled returns the unplaced exhibit with the given id.
func (b *Book) Pooled(id string) (exhibit.Exhibit, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pool.Get(id)
}

// Locate finds the page and region holding exhibit id.
func (b *Book) Locate(id string) (page int, r Region, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i, p := range b.pages {
		if reg, found := p.Find(id); found {
			return i, reg, true
		}
	}
	return 0, "", false
}

// Snapshot returns a copy of the current state.
func (b *Book) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot()
}

func (b *Book) snapshot() Snapshot {
	return Snapshot{
		Version: b.version,
		Current: b.current,
		Pages:   slices.Clone(b.pages),
		Pool:    b.pool.Items(),
	}
}

// commit bumps the version and captures a snapshot. Caller holds mu.
func (b *Book) commit() Snapshot {
	b.version++
	return b.snapshot()
}

func (b *Book) notify(snap Snapshot) {
	b.subMu.Lock()
	ids := make([]int, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, b.subs[id])
	}
	b.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
