package backend

import (
	"encoding/json"
	"fmt"

	"github.com/tuilab/loom/annotation"
	"github.com/tuilab/loom/cell"
)

// cellJSON is the wire form of one non-default cell, positioned
// explicitly so default cells can be omitted.
type cellJSON struct {
	X              int             `json:"x"`
	Y              int             `json:"y"`
	Symbol         string          `json:"symbol"`
	FG             cell.Color      `json:"fg"`
	BG             cell.Color      `json:"bg"`
	Modifiers      cell.Modifiers  `json:"modifiers"`
	UnderlineColor *cell.Color     `json:"underline_color,omitempty"`
	Skip           bool            `json:"skip,omitempty"`
}

type snapshotJSON struct {
	Width       int                 `json:"width"`
	Height      int                 `json:"height"`
	Frame       uint64              `json:"frame"`
	Cursor      CursorState         `json:"cursor"`
	Cells       []cellJSON          `json:"cells"`
	Annotations []annotation.Region `json:"annotations"`
}

// MarshalJSON encodes the snapshot sparsely: cells that still hold the
// default value are omitted and restored on decode.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	out := snapshotJSON{
		Width:       s.Width,
		Height:      s.Height,
		Frame:       s.Frame,
		Cursor:      s.Cursor,
		Cells:       []cellJSON{},
		Annotations: s.Annotations,
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := s.Cells[y*s.Width+x]
			if c.IsDefault() {
				continue
			}
			out.Cells = append(out.Cells, cellJSON{
				X:              x,
				Y:              y,
				Symbol:         c.Symbol,
				FG:             c.FG,
				BG:             c.BG,
				Modifiers:      c.Mods,
				UnderlineColor: c.UnderlineColor,
				Skip:           c.Skip,
			})
		}
	}
	return json.Marshal(out)
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var in snapshotJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Width <= 0 || in.Height <= 0 || in.Width*in.Height > MaxCells {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, in.Width, in.Height)
	}

	cells := make([]cell.Cell, in.Width*in.Height)
	for i := range cells {
		cells[i] = cell.New()
	}
	for _, cj := range in.Cells {
		if cj.X < 0 || cj.X >= in.Width || cj.Y < 0 || cj.Y >= in.Height {
			return fmt.Errorf("cell (%d,%d) outside %dx%d grid", cj.X, cj.Y, in.Width, in.Height)
		}
		cells[cj.Y*in.Width+cj.X] = cell.Cell{
			Symbol:         cj.Symbol,
			FG:             cj.FG,
			BG:             cj.BG,
			Mods:           cj.Modifiers,
			UnderlineColor: cj.UnderlineColor,
			Skip:           cj.Skip,
		}
	}

	*s = Snapshot{
		Frame:       in.Frame,
		Width:       in.Width,
		Height:      in.Height,
		Cursor:      in.Cursor,
		Cells:       cells,
		Annotations: in.Annotations,
	}
	return nil
}

// JSON renders the current grid as a compact snapshot document.
func (c *Capture) JSON() (string, error) {
	data, err := json.Marshal(c.Snapshot())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// JSONPretty renders the current grid as an indented snapshot document.
func (c *Capture) JSONPretty() (string, error) {
	data, err := json.MarshalIndent(c.Snapshot(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseSnapshot decodes a snapshot document.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}
