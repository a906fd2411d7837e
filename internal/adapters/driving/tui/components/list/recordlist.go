// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/rtftitles/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

// noTitle is shown for records stored without a title.
const noTitle = "(no title)"

// RecordList displays index records as a navigable table.
type RecordList struct {
	records  []domain.DocumentRecord
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRecordList creates a new record list component.
func NewRecordList(s *styles.Styles) *RecordList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecordList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the record list.
func (r *RecordList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecordList) Update(msg tea.Msg) (*RecordList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp, tea.KeyCtrlP:
			r.MoveUp()
		case tea.KeyDown, tea.KeyCtrlN:
			r.MoveDown()
		default:
		}
	}
	return r, nil
}

// View renders the header and the visible window of rows.
func (r *RecordList) View() string {
	if len(r.records) == 0 {
		return r.styles.Muted.Render("No records found.")
	}

	fw, tw, pw := r.columnWidths()
	lines := make([]string, 0, len(r.records)+2)
	lines = append(lines,
		r.styles.Header.Render(fmt.Sprintf("  %-*s  %-*s  %-*s  %s", fw, "Filename", tw, "Title", pw, "Path", "Modified")),
	)

	start, end := r.visibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(i, fw, tw, pw))
	}

	return strings.Join(lines, "\n")
}

// visibleRange returns the slice of rows that fits the height, keeping the
// selection in view.
func (r *RecordList) visibleRange() (start, end int) {
	visible := r.height - 1
	if visible < 1 {
		visible = 1
	}
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end = start + visible
	if end > len(r.records) {
		end = len(r.records)
	}
	return start, end
}

// columnWidths splits the width between filename, title and path.
func (r *RecordList) columnWidths() (filename, title, path int) {
	// Indicator, separators and the fixed-width timestamp column
	avail := r.width - 2 - 6 - len(domain.TimestampLayout)
	if avail < 30 {
		avail = 30
	}
	filename = avail / 4
	title = avail * 2 / 5
	path = avail - filename - title
	return filename, title, path
}

func (r *RecordList) renderRow(index, fw, tw, pw int) string {
	rec := r.records[index]

	title := rec.TitleText()
	if rec.Title == nil {
		title = noTitle
	}

	line := fmt.Sprintf("%-*s  %-*s  %-*s  %s",
		fw, truncate(rec.Filename, fw),
		tw, truncate(title, tw),
		pw, truncate(rec.DirectoryPath, pw),
		domain.FormatTimestamp(rec.FileModifiedAt),
	)

	if index == r.selected {
		return r.styles.Selected.Render("> " + line)
	}
	return r.styles.Cell.Render("  " + line)
}

// truncate shortens s to width runes with a trailing ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// SetRecords replaces the records and resets the selection.
func (r *RecordList) SetRecords(records []domain.DocumentRecord) {
	r.records = records
	r.selected = 0
}

// Records returns the current records.
func (r *RecordList) Records() []domain.DocumentRecord {
	return r.records
}

// Selected returns the index of the selected row.
func (r *RecordList) Selected() int {
	return r.selected
}

// SelectedRecord returns the currently selected record, or nil if none.
func (r *RecordList) SelectedRecord() *domain.DocumentRecord {
	if len(r.records) == 0 {
		return nil
	}
	return &r.records[r.selected]
}

// MoveUp moves selection up.
func (r *RecordList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecordList) MoveDown() {
	if r.selected < len(r.records)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecordList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of records.
func (r *RecordList) Count() int {
	return len(r.records)
}

// IsEmpty returns whether the list is empty.
func (r *RecordList) IsEmpty() bool {
	return len(r.records) == 0
}
