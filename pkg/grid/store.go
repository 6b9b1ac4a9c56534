package grid

import (
	"math"
	"slices"
	"sync"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
)

// Op names a store mutation.
type Op string

const (
	OpAdd      Op = "add"
	OpUpdate   Op = "update"
	OpRelocate Op = "relocate"
	OpResize   Op = "resize"
	OpRemove   Op = "remove"
	OpSelect   Op = "select"
	OpColumns  Op = "columns"
)

// Change reports the outcome of a mutating call.
type Change struct {
	Op      Op
	ItemID  string
	Applied bool
	// Reason is set when Applied is false.
	Reason errors.Code
}

// Snapshot is an immutable copy of the store state.
type Snapshot struct {
	Version  uint64
	Items    []Item
	Selected string
}

// Store owns the items of one canvas and their positions.
// It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	cfg      Config
	items    []Item
	selected string
	version  uint64

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// NewStore creates a store holding the given initial items in order.
// It rejects invalid geometry, duplicate ids, out-of-bounds positions and
// overlapping items.
func NewStore(cfg Config, items ...Item) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Store{cfg: cfg, subs: make(map[int]func(Snapshot))}
	for _, it := range items {
		if err := it.validate(); err != nil {
			return nil, err
		}
		if s.index(it.ID) >= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate item id %q", it.ID)
		}
		if code := s.checkPosition(it.ID, it.Position); code != "" {
			return nil, errors.New(code, "item %s: invalid position %+v", it.ID, it.Position)
		}
		s.items = append(s.items, it.clone())
	}
	return s, nil
}

// Config returns the canvas geometry.
func (s *Store) Config() Config { return s.cfg }

// Subscribe registers fn to receive a snapshot after every applied change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// FindAvailablePosition runs first-fit against the current occupancy.
func (s *Store) FindAvailablePosition(requiredWidth int) Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findAvailable(s.items, requiredWidth, s.cfg.Columns, "")
}

// Add places item at the first free position for requestedWidth, clamped to
// [1, Columns], and appends it. A width of zero means DefaultWidth.
// MinColumnWidth bounds resizing only. An empty id is replaced with a
// generated one and a zero size with the default size. The intent is
// rejected only for a duplicate id or a payload that does not match the kind.
func (s *Store) Add(item Item, requestedWidth int) (Item, Change) {
	if item.ID == "" {
		item.ID = NewItemID(item.Kind)
	}
	ch := Change{Op: OpAdd, ItemID: item.ID}
	if err := item.validate(); err != nil {
		ch.Reason = errors.GetCode(err)
		return Item{}, ch
	}
	if item.Size == (Size{}) {
		item.Size = s.cfg.DefaultSize
	}

	s.mu.Lock()
	if s.index(item.ID) >= 0 {
		s.mu.Unlock()
		ch.Reason = errors.ErrCodeInvalidInput
		return Item{}, ch
	}
	if requestedWidth <= 0 {
		requestedWidth = s.cfg.DefaultWidth
	}
	width := min(requestedWidth, s.cfg.Columns)
	item.Position = findAvailable(s.items, width, s.cfg.Columns, "")
	item = item.clone()
	s.items = append(s.items, item)
	snap := s.commit()
	s.mu.Unlock()

	s.notify(snap)
	ch.Applied = true
	return item.clone(), ch
}

// Place instantiates a palette exhibit with its sample data at the default width.
func (s *Store) Place(e exhibit.Exhibit) (Item, Change) {
	return s.Add(Item{
		ExhibitID: e.ID,
		Kind:      e.Kind,
		Title:     e.Title,
		Data:      exhibit.SampleData(e.Kind),
	}, s.cfg.DefaultWidth)
}

// Update merges patch into the item. Position and size are merged field by
// field; title and data are replaced when set. Unknown ids are a no-op, and
// a patch that would leave the canvas or overlap another item is rejected.
func (s *Store) Update(id string, patch Patch) Change {
	ch := Change{Op: OpUpdate, ItemID: id}

	s.mu.Lock()
	idx := s.index(id)
	if idx < 0 {
		s.mu.Unlock()
		ch.Reason = errors.ErrCodeUnknownItem
		return ch
	}
	next := s.items[idx]
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Data != nil {
		next.Data = patch.Data.Clone()
	}
	next.Position = patch.Position.apply(next.Position)
	next.Size = patch.Size.apply(next.Size)

	if err := next.validate(); err != nil {
		s.mu.Unlock()
		ch.Reason = errors.GetCode(err)
		return ch
	}
	if code := s.checkPosition(id, next.Position); code != "" {
		s.mu.Unlock()
		ch.Reason = code
		return ch
	}
	s.items[idx] = next
	snap := s.commit()
	s.mu.Unlock()

	s.notify(snap)
	ch.Applied = true
	return ch
}

// Relocate moves an item to the first free position for its current width,
// ignoring the space the item itself occupies.
func (s *Store) Relocate(id string) Change {
	ch := Change{Op: OpRelocate, ItemID: id}

	s.mu.Lock()
	idx := s.index(id)
	if idx < 0 {
		s.mu.Unlock()
		ch.Reason = errors.ErrCodeUnknownItem
		return ch
	}
	s.items[idx].Position = findAvailable(s.items, s.items[idx].Position.Width, s.cfg.Columns, id)
	snap := s.commit()
	s.mu.Unlock()

	s.notify(snap)
	ch.Applied = true
	return ch
}

// Resize applies a pixel resize. The width is re-quantized to columns and
// clamped so that the item keeps its column offset and never grows into the
// next item on its row; the height is clamped to the configured range.
// Sizes that are not finite and positive are rejected.
func (s *Store) Resize(id string, pixelWidth, pixelHeight float64) Change {
	ch := Change{Op: OpResize, ItemID: id}
	if !ValidPixelSize(pixelWidth, pixelHeight) {
		ch.Reason = errors.ErrCodeInvalidInput
		return ch
	}

	s.mu.Lock()
	idx := s.index(id)
	if idx < 0 {
		s.mu.Unlock()
		ch.Reason = errors.ErrCodeUnknownItem
		return ch
	}
	it := &s.items[idx]
	q := Quantize(pixelWidth, s.cfg.ColumnPixelWidth(), s.cfg.Gap)
	width := ClampWidth(q, it.Position.Column, s.cfg.MinColumnWidth, s.cfg.Columns)
	width = min(width, s.roomRightOf(id, it.Position))

	it.Position.Width = width
	it.Size = Size{Width: pixelWidth, Height: s.cfg.clampHeight(pixelHeight)}
	snap := s.commit()
	s.mu.Unlock()

	s.notify(snap)
	ch.Applied = true
	return ch
}

// ValidPixelSize reports whether both dimensions are finite and positive.
func ValidPixelSize(width, height float64) bool {
	for _, v := range []float64{width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return true
}

// Remove deletes an item. Unknown ids are a no-op. Removing the selected
// item clears the selection.
func (s *Store) Remove(id string) Change {
	ch := Change{Op: OpRemove, ItemID: id}

	s.mu.Lock()
	idx := s.index(id)
	if idx < 0 {
		s.mu.Unlock()
		ch.Reason = errors.ErrCodeUnknownItem
		return ch
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	if s.selected == id {
		s.selected = ""
	}
	snap := s.commit()
	s.mu.Unlock()

	s.notify(snap)
	ch.Applied = true
	return ch
}

// Select marks an item as the one being customized. An empty id clears the
// selection; unknown ids are a no-op.
func (s *Store) Select(id string) Change {
	ch := Change{Op: OpSelect, ItemID: id}

	s.mu.Lock()
	if id != "" && s.index(id) < 0 {
		s.mu.Unlock()
		ch.Reason = errors.ErrCodeUnknownItem
		return ch
	}
	s.selected = id
	snap := s.commit()
	s.mu.Unlock()

	s.notify(snap)
	ch.Applied = true
	return ch
}

// Selected returns the selected item id, or "".
func (s *Store) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SetColumnVisibility shows or hides a table column.
func (s *Store) SetColumnVisibility(id, columnID string, visible bool) Change {
	return s.updateTable(id, func(t exhibit.TableData) (exhibit.TableData, bool) {
		return t.WithColumnVisibility(columnID, visible)
	})
}

// ReorderColumns moves a table column from one index to another.
func (s *Store) ReorderColumns(id string, from, to int) Change {
	return s.updateTable(id, func(t exhibit.TableData) (exhibit.TableData, bool) {
		return t.WithColumnMoved(from, to)
	})
}

func (s *Store) updateTable(id string, fn func(exhibit.TableData) (exhibit.TableData, bool)) Change {
	ch := Change{Op: OpColumns, ItemID: id}

	s.mu.Lock()
	idx := s.index(id)
	if idx < 0 {
		s.mu.Unlock()
		ch.Reason = errors.ErrCodeUnknownItem
		return ch
	}
	table, ok := s.items[idx].Data.(exhibit.TableData)
	if !ok {
		s.mu.Unlock()
		ch.Reason = errors.ErrCodeInvalidKind
		return ch
	}
	next, ok := fn(table)
	if !ok {
		s.mu.Unlock()
		ch.Reason = errors.ErrCodeInvalidInput
		return ch
	}
	s.items[idx].Data = next
	snap := s.commit()
	s.mu.Unlock()

	s.notify(snap)
	ch.Applied = true
	return ch
}

// Item returns a copy of the item with the given id.
func (s *Store) Item(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.index(id); idx >= 0 {
		return s.items[idx].clone(), true
	}
	return Item{}, false
}

// Items returns copies of all items in insertion order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneItems()
}

// Ordered returns copies of all items in row-major order.
func (s *Store) Ordered() []Item {
	items := s.Items()
	SortRowMajor(items)
	return items
}

// Len returns the number of placed items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Version: s.version, Items: s.cloneItems(), Selected: s.selected}
}

// commit bumps the version and captures a snapshot. Caller holds mu.
func (s *Store) commit() Snapshot {
	s.version++
	return Snapshot{Version: s.version, Items: s.cloneItems(), Selected: s.selected}
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (s *Store) cloneItems() []Item {
	out := make([]Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.clone()
	}
	return out
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(it Item) bool { return it.ID == id })
}

// checkPosition returns a non-empty code if p is out of bounds or overlaps
// an item other than id.
func (s *Store) checkPosition(id string, p Position) errors.Code {
	if p.Row < 0 || p.Column < 0 || p.Width < 1 || p.End() > s.cfg.Columns {
		return errors.ErrCodeInvalidInput
	}
	for _, other := range s.items {
		if other.ID != id && other.Position.Overlaps(p) {
			return errors.ErrCodeOverlap
		}
	}
	return ""
}

// roomRightOf returns how many columns are free from p.Column up to the next
// item on the same row or the canvas edge.
func (s *Store) roomRightOf(id string, p Position) int {
	limit := s.cfg.Columns
	for _, other := range s.items {
		if other.ID == id || other.Position.Row != p.Row {
			continue
		}
		if other.Position.Column >= p.Column && other.Position.Column < limit {
			limit = other.Position.Column
		}
	}
	return limit - p.Column
}
