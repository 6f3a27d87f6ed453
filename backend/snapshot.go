package backend

import (
	"strings"

	"github.com/tuilab/loom/annotation"
	"github.com/tuilab/loom/cell"
	"github.com/tuilab/loom/layout"
)

// CursorState records the cursor at snapshot time.
type CursorState struct {
	Position layout.Position `json:"position"`
	Visible  bool            `json:"visible"`
}

// Snapshot is an immutable copy of the grid at one frame.
type Snapshot struct {
	Frame       uint64
	Width       int
	Height      int
	Cursor      CursorState
	Cells       []cell.Cell
	Annotations []annotation.Region
}

// Cell returns a copy of the cell at the given position.
func (s *Snapshot) Cell(x, y int) (cell.Cell, bool) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return cell.Cell{}, false
	}
	return s.Cells[y*s.Width+x], true
}

// RowContent concatenates the symbols of one row.
func (s *Snapshot) RowContent(y int) string {
	if y < 0 || y >= s.Height {
		return ""
	}
	start := y * s.Width
	return rowString(s.Cells[start : start+s.Width])
}

// ContentLines returns every row as a string.
func (s *Snapshot) ContentLines() []string {
	lines := make([]string, s.Height)
	for y := 0; y < s.Height; y++ {
		lines[y] = s.RowContent(y)
	}
	return lines
}

// Plain renders the snapshot as plain text, one line per row.
func (s *Snapshot) Plain() string {
	return renderPlain(s.ContentLines())
}

// ANSI renders the snapshot with SGR styling, followed by the cursor
// position and visibility.
func (s *Snapshot) ANSI() string {
	return renderANSI(s.Width, s.Height, func(x, y int) cell.Cell {
		return s.Cells[y*s.Width+x]
	}) + cursorSuffix(s.Cursor.Position, s.Cursor.Visible)
}

// ContainsText reports whether any row contains the needle.
func (s *Snapshot) ContainsText(needle string) bool {
	for y := 0; y < s.Height; y++ {
		if strings.Contains(s.RowContent(y), needle) {
			return true
		}
	}
	return false
}

// FindText returns the positions where needle starts.
func (s *Snapshot) FindText(needle string) []layout.Position {
	return findText(s.ContentLines(), needle)
}

func rowString(cells []cell.Cell) string {
	var b strings.Builder
	for i := range cells {
		b.WriteString(cells[i].Symbol)
	}
	return b.String()
}

func findText(lines []string, needle string) []layout.Position {
	var out []layout.Position
	if needle == "" {
		return out
	}
	for y, row := range lines {
		offset := 0
		for {
			i := strings.Index(row[offset:], needle)
			if i < 0 {
				break
			}
			// Row strings hold one rune per cell (wide symbols are
			// followed by their continuation cell's space), so the
			// rune count up to the match is the cell column.
			col := columnOf(row, offset+i)
			out = append(out, layout.Pos(col, y))
			offset += i + len(needle)
		}
	}
	return out
}

func columnOf(row string, byteOffset int) int {
	return len([]rune(row[:byteOffset]))
}
