// Package engine implements the Color Crush board engine: match detection,
// special tiles, cascades and the tap-driven interaction controller.
// It is UI-agnostic and deterministic for a given RNG.
package engine

import (
	"fmt"
	"strings"
)

// Board dimensions.
const (
	Rows = 8
	Cols = 8
)

// Color is the color of a tile. The zero value marks an empty slot.
type Color uint8

const (
	ColorNone Color = iota
	ColorYellow
	ColorBlue
	ColorRed
	ColorPink
	ColorGreen
)

// NumColors is the number of playable colors.
const NumColors = 5

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorPink:
		return "pink"
	case ColorGreen:
		return "green"
	default:
		return "none"
	}
}

// letter returns the single-letter form used by the text board format.
func (c Color) letter() byte {
	switch c {
	case ColorYellow:
		return 'Y'
	case ColorBlue:
		return 'B'
	case ColorRed:
		return 'R'
	case ColorPink:
		return 'P'
	case ColorGreen:
		return 'G'
	default:
		return '.'
	}
}

func colorFromLetter(b byte) (Color, bool) {
	switch b {
	case 'Y', 'y':
		return ColorYellow, true
	case 'B', 'b':
		return ColorBlue, true
	case 'R', 'r':
		return ColorRed, true
	case 'P', 'p':
		return ColorPink, true
	case 'G', 'g':
		return ColorGreen, true
	}
	return ColorNone, false
}

// Kind is the behavior of a tile. The zero value marks an empty slot.
type Kind uint8

const (
	KindNone Kind = iota
	KindBase
	KindAreaClear
	KindColorClear
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindAreaClear:
		return "area-clear"
	case KindColorClear:
		return "color-clear"
	default:
		return "none"
	}
}

// Pos is a board position.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// InBounds reports whether p lies on the board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// Adjacent reports whether p and q are orthogonal neighbors.
func (p Pos) Adjacent(q Pos) bool {
	return abs(p.Row-q.Row)+abs(p.Col-q.Col) == 1
}

// Tile is the content of one board slot. Row and Col always mirror the
// slot the tile sits in.
type Tile struct {
	Row   int
	Col   int
	Color Color
	Kind  Kind
}

// Pos returns the tile's slot.
func (t Tile) Pos() Pos {
	return Pos{Row: t.Row, Col: t.Col}
}

// Empty reports whether the tile is the empty-slot sentinel.
func (t Tile) Empty() bool {
	return t.Kind == KindNone
}

// IsBase reports whether the tile is an ordinary colored tile.
func (t Tile) IsBase() bool {
	return t.Kind == KindBase
}

// IsSpecial reports whether the tile is an area-clear or color-clear tile.
func (t Tile) IsSpecial() bool {
	return t.Kind == KindAreaClear || t.Kind == KindColorClear
}

// Board is the 8x8 grid. The zero value is an all-empty board.
// Board is a value type: assigning it copies every tile.
type Board struct {
	cells [Rows][Cols]Tile
}

// Get returns the tile at p. Callers must pass an in-bounds position.
func (b *Board) Get(p Pos) Tile {
	return b.cells[p.Row][p.Col]
}

// Set stores t at p, rewriting its coordinates to match the slot.
func (b *Board) Set(p Pos, t Tile) {
	t.Row, t.Col = p.Row, p.Col
	b.cells[p.Row][p.Col] = t
}

// Clear empties the slot at p.
func (b *Board) Clear(p Pos) {
	b.cells[p.Row][p.Col] = Tile{Row: p.Row, Col: p.Col}
}

// Swap exchanges the contents of two slots.
func (b *Board) Swap(p, q Pos) {
	tp, tq := b.Get(p), b.Get(q)
	b.Set(p, tq)
	b.Set(q, tp)
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Full reports whether every slot holds a tile.
func (b *Board) Full() bool {
	for r := range Rows {
		for c := range Cols {
			if b.cells[r][c].Empty() {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied slots.
func (b *Board) Count() int {
	n := 0
	for r := range Rows {
		for c := range Cols {
			if !b.cells[r][c].Empty() {
				n++
			}
		}
	}
	return n
}

// Occupied returns the positions of all non-empty slots in row-major order.
func (b *Board) Occupied() []Pos {
	out := make([]Pos, 0, Rows*Cols)
	for r := range Rows {
		for c := range Cols {
			if !b.cells[r][c].Empty() {
				out = append(out, P(r, c))
			}
		}
	}
	return out
}

// String renders the board one row per line. Base tiles are upper-case
// color letters, area-clear tiles lower-case, color-clear tiles '*', and
// empty slots '.'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for r := range Rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Cols {
			t := b.cells[r][c]
			switch t.Kind {
			case KindBase:
				sb.WriteByte(t.Color.letter())
			case KindAreaClear:
				sb.WriteByte(t.Color.letter() + ('a' - 'A'))
			case KindColorClear:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// ParseBoard builds a board from the text form produced by String.
// A '*' color-clear tile gets ColorNone since the text form does not carry it.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("engine: board needs %d rows, got %d", Rows, len(rows))
	}
	b := &Board{}
	for r, line := range rows {
		if len(line) != Cols {
			return nil, fmt.Errorf("engine: row %d needs %d cells, got %d", r, Cols, len(line))
		}
		for c := range Cols {
			ch := line[c]
			p := P(r, c)
			switch {
			case ch == '.':
				b.Clear(p)
			case ch == '*':
				b.Set(p, Tile{Kind: KindColorClear})
			default:
				color, ok := colorFromLetter(ch)
				if !ok {
					return nil, fmt.Errorf("engine: unknown tile %q at %s", ch, p)
				}
				kind := KindBase
				if ch >= 'a' && ch <= 'z' {
					kind = KindAreaClear
				}
				b.Set(p, Tile{Color: color, Kind: kind})
			}
		}
	}
	return b, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
