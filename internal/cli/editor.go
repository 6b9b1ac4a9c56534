package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/exhibitboard/pkg/board"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
	"github.com/matzehuels/exhibitboard/pkg/export"
	"github.com/matzehuels/exhibitboard/pkg/grid"
	boardio "github.com/matzehuels/exhibitboard/pkg/io"
	"github.com/matzehuels/exhibitboard/pkg/quadrant"
)

// Editor styles
var (
	editorBlockStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Foreground(colorWhite)
	editorCursorStyle   = editorBlockStyle.BorderForeground(colorCyan).Bold(true)
	editorSelectedStyle = editorBlockStyle.BorderForeground(colorGreen)
	editorEmptyStyle    = editorBlockStyle.Foreground(colorDim)
	editorDisabledStyle = editorBlockStyle.BorderStyle(lipgloss.HiddenBorder()).Foreground(colorDim)

	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	gridCellWidth   = 6
	quadrantWidth   = 28
	quadrantHeight  = 3
	paletteMinWidth = 28
)

type editorFocus int

const (
	focusPalette editorFocus = iota
	focusBoard
)

// editorModel is the bubbletea model of the board editor. Every change goes
// through the board handler as an event, exactly like "apply".
type editorModel struct {
	ctx     context.Context
	doc     boardio.Document
	handler board.Handler
	catalog *exhibit.Catalog
	path    string

	save func(boardio.Document, string) error
	copy func(string) error

	focus  editorFocus
	cursor int // palette or pool row
	item   int // grid: index into Ordered(); quadrant: region index
	moving bool

	// source of a pending quadrant move, fixed when the move starts
	moveID   string
	moveFrom quadrant.Region

	dirty    bool
	saved    bool
	status   string
	failed   bool
	quitting bool
}

func newEditorModel(ctx context.Context, doc boardio.Document, h board.Handler, cat *exhibit.Catalog, path string) editorModel {
	return editorModel{
		ctx:     ctx,
		doc:     doc,
		handler: h,
		catalog: cat,
		path:    path,
		save:    saveBoard,
		copy:    clipboard.WriteAll,
		status:  "tab switches panes",
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.moving {
			m.moving = false
			m.setStatus(false, "move cancelled")
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case "q":
		if m.dirty {
			m.saveBoard()
		}
		m.quitting = true
		return m, tea.Quit
	case "s":
		m.saveBoard()
	case "y":
		m.copySummary()
	case "tab":
		m.moving = false
		if m.focus == focusPalette {
			m.focus = focusBoard
		} else {
			m.focus = focusPalette
		}
	case "up", "k":
		m.step(-1)
	case "down", "j":
		m.step(1)
	default:
		if m.doc.Variant == boardio.VariantGrid {
			m.gridKey(k)
		} else {
			m.quadrantKey(k)
		}
	}
	return m, nil
}

func (m *editorModel) step(delta int) {
	if m.focus == focusPalette {
		m.cursor = clampIndex(m.cursor+delta, len(m.paletteItems()))
		return
	}
	if m.doc.Variant == boardio.VariantGrid {
		m.item = clampIndex(m.item+delta, m.doc.Grid.Len())
		return
	}
	m.item = clampIndex(m.item+delta, len(quadrant.Regions))
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// paletteItems is the catalog for a grid board and the source pool for a
// quadrant book.
func (m editorModel) paletteItems() []exhibit.Exhibit {
	if m.doc.Variant == boardio.VariantGrid {
		return m.catalog.All()
	}
	return m.doc.Book.Pool()
}

func (m *editorModel) gridKey(k string) {
	if m.focus == focusPalette {
		if k == "enter" || k == "p" {
			items := m.paletteItems()
			if len(items) > 0 {
				m.apply(board.PlaceNewItem(items[m.cursor], "", 0))
			}
		}
		return
	}

	it, ok := m.currentGridItem()
	if !ok {
		return
	}
	cfg := m.doc.Grid.Config()
	height := it.Size.Height
	if height <= 0 {
		height = cfg.DefaultSize.Height
	}
	switch k {
	case "enter":
		m.apply(board.Event{Type: board.TypeSelect, ItemID: it.ID})
	case "m":
		m.apply(board.Event{Type: board.TypeMove, ItemID: it.ID})
	case "+", "=":
		m.apply(board.ResizeItem(it.ID, spanPixels(cfg, it.Position.Width+1), height))
	case "-":
		m.apply(board.ResizeItem(it.ID, spanPixels(cfg, it.Position.Width-1), height))
	case "d", "delete", "backspace":
		m.apply(board.DeleteItem(it.ID))
		m.item = clampIndex(m.item, m.doc.Grid.Len())
	}
}

// spanPixels is the pixel width of a span of columns, gaps included.
func spanPixels(cfg grid.Config, columns int) float64 {
	columns = max(columns, 1)
	return float64(columns)*cfg.ColumnPixelWidth() + float64(columns-1)*cfg.Gap
}

func (m editorModel) currentGridItem() (grid.Item, bool) {
	items := m.doc.Grid.Ordered()
	if m.item < 0 || m.item >= len(items) {
		return grid.Item{}, false
	}
	return items[m.item], true
}

func (m *editorModel) quadrantKey(k string) {
	switch k {
	case "a", "n", "]", "right", "b", "[", "left":
		m.moving = false
	}
	switch k {
	case "a":
		m.apply(board.Event{Type: board.TypeAddPage})
		return
	case "n", "]", "right":
		m.apply(board.Event{Type: board.TypeNextPage})
		return
	case "b", "[", "left":
		m.apply(board.Event{Type: board.TypePrevPage})
		return
	}

	target, isRegion := regionKey(k)
	if m.focus == focusPalette {
		items := m.paletteItems()
		if isRegion && len(items) > 0 {
			e := items[m.cursor]
			m.apply(board.PlaceNewItem(e, target, 0))
			m.cursor = clampIndex(m.cursor, len(m.paletteItems()))
		}
		return
	}

	from := quadrant.Regions[m.item]
	page, _ := m.doc.Book.Page(m.doc.Book.Current())
	e, occupied := page.At(from)
	switch {
	case m.moving && isRegion:
		m.moving = false
		m.apply(board.MoveItem(m.moveID, m.moveFrom, target))
		if r, ok := m.locate(m.moveID); ok {
			m.item = max(slices.Index(quadrant.Regions[:], r), 0)
		}
	case k == "m" && occupied:
		m.moving = true
		m.moveID, m.moveFrom = e.ID, from
		m.setStatus(false, fmt.Sprintf("move %s: press 1-4 for the target quadrant", e.DisplayTitle()))
	case (k == "d" || k == "delete" || k == "backspace") && occupied:
		m.apply(board.DeleteItem(e.ID))
	}
}

func (m editorModel) locate(id string) (quadrant.Region, bool) {
	page, ok := m.doc.Book.Page(m.doc.Book.Current())
	if !ok {
		return "", false
	}
	return page.Find(id)
}

func regionKey(k string) (quadrant.Region, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '4' {
		return "", false
	}
	r, err := quadrant.ParseRegion(k)
	return r, err == nil
}

func (m *editorModel) apply(e board.Event) {
	out := m.handler.Handle(m.ctx, e)
	if out.Applied {
		if e.Type != board.TypeSelect {
			m.dirty = true
		}
		m.setStatus(false, fmt.Sprintf("%s %s", e.Type, out.ItemID))
		return
	}
	m.setStatus(true, fmt.Sprintf("%s %s rejected: %s", e.Type, out.ItemID, out.Reason))
}

func (m *editorModel) saveBoard() {
	if err := m.save(m.doc, m.path); err != nil {
		m.setStatus(true, "save failed: "+err.Error())
		return
	}
	m.dirty = false
	m.saved = true
	m.setStatus(false, "saved "+m.path)
}

func (m *editorModel) copySummary() {
	summary := m.summary()
	if err := m.copy(summary); err != nil {
		m.setStatus(true, "clipboard unavailable: "+err.Error())
		return
	}
	m.setStatus(false, "summary copied to clipboard")
}

func (m editorModel) summary() string {
	if m.doc.Variant == boardio.VariantGrid {
		return export.GridSummary(m.doc.Grid.Items())
	}
	return export.BookSummary(m.doc.Book.Pages())
}

func (m *editorModel) setStatus(failed bool, msg string) {
	m.failed = failed
	m.status = msg
}

// =============================================================================
// View
// =============================================================================

func (m editorModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	title := fmt.Sprintf("%s · %s", m.path, m.doc.Variant)
	if m.dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n\n")

	var canvas string
	if m.doc.Variant == boardio.VariantGrid {
		canvas = m.gridView()
	} else {
		canvas = m.quadrantView()
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.paletteView(), "  ", canvas))
	b.WriteString("\n\n")

	if m.failed {
		b.WriteString(styleIconError.Render(iconError) + " " + m.status)
	} else {
		b.WriteString(styleIconInfo.Render(iconInfo) + " " + m.status)
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(m.help()))
	return b.String()
}

func (m editorModel) help() string {
	common := "tab pane · ↑/↓ move · y copy summary · s save · q save+quit · ctrl+c discard"
	if m.doc.Variant == boardio.VariantGrid {
		if m.focus == focusPalette {
			return "⏎ place · " + common
		}
		return "⏎ select · m re-place · +/- width · d delete · " + common
	}
	if m.focus == focusPalette {
		return "1-4 place in quadrant · a add page · [ ] page · " + common
	}
	return "m move (then 1-4) · d delete · a add page · [ ] page · " + common
}

func (m editorModel) paletteView() string {
	var b strings.Builder
	heading := "Palette"
	if m.doc.Variant == boardio.VariantQuadrant {
		heading = "Source pool"
	}
	b.WriteString(styleHeader.Render(heading))
	b.WriteString("\n")

	items := m.paletteItems()
	if len(items) == 0 {
		b.WriteString(listDimStyle.Render("(empty)"))
	}
	for i, e := range items {
		line := fmt.Sprintf("%s (%s)", e.DisplayTitle(), e.Kind)
		if e.Layout == exhibit.LayoutFullPage {
			line += " ▭"
		}
		if m.focus == focusPalette && i == m.cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(paletteMinWidth).Render(b.String())
}

func (m editorModel) gridView() string {
	s := m.doc.Grid
	items := s.Ordered()
	if len(items) == 0 {
		return editorEmptyStyle.Width(s.Config().Columns*gridCellWidth - 2).Render("empty canvas")
	}

	var rows []string
	var line []string
	row, col := items[0].Position.Row, 0
	flush := func() {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
		line, col = nil, 0
	}
	for i, it := range items {
		if it.Position.Row != row {
			flush()
			row = it.Position.Row
		}
		if gap := it.Position.Column - col; gap > 0 {
			line = append(line, strings.Repeat(" ", gap*gridCellWidth))
		}
		style := editorBlockStyle
		switch {
		case m.focus == focusBoard && i == m.item:
			style = editorCursorStyle
		case it.ID == s.Selected():
			style = editorSelectedStyle
		}
		w := it.Position.Width*gridCellWidth - 2
		label := truncateRunes(fmt.Sprintf("%s %d/%d", it.DisplayTitle(), it.Position.Width, s.Config().Columns), w)
		line = append(line, style.Width(w).Render(label))
		col = it.Position.End()
	}
	flush()
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m editorModel) quadrantView() string {
	book := m.doc.Book
	page, _ := book.Page(book.Current())

	cell := func(r quadrant.Region, width int) string {
		style := editorBlockStyle
		body := listDimStyle.Render("empty")
		switch page.State(r) {
		case quadrant.StateDisabled:
			style = editorDisabledStyle
			body = "disabled"
		case quadrant.StateEmpty:
			style = editorEmptyStyle
		default:
			e, _ := page.At(r)
			body = truncateRunes(e.DisplayTitle(), width) + "\n" + listDimStyle.Render(string(e.Layout.OrDefault()))
		}
		if m.focus == focusBoard && quadrant.Regions[m.item] == r {
			style = editorCursorStyle
		}
		return style.Width(width).Height(quadrantHeight).Render(r.Name() + "\n" + body)
	}

	var rows []string
	for _, anchor := range []quadrant.Region{quadrant.Region1, quadrant.Region3} {
		if page.State(anchor) == quadrant.StateOccupiedFull {
			rows = append(rows, cell(anchor, 2*quadrantWidth+2))
			continue
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cell(anchor, quadrantWidth), cell(anchor.Pair(), quadrantWidth)))
	}

	footer := listDimStyle.Render(fmt.Sprintf("page %d/%d", book.Current()+1, len(book.Pages())))
	if m.moving {
		footer += "  " + StyleWarning.Render("moving…")
	}
	return lipgloss.JoinVertical(lipgloss.Left, append(rows, footer)...)
}

// truncateRunes shortens s to at most n runes, marking the cut with "…".
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
