package engine

import (
	"fmt"
	"iter"
	"slices"
)

// Orientation is the direction of a match run.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MatchGroup is one run of three or more same-colored base tiles.
// Tiles are ordered left-to-right or top-to-bottom.
type MatchGroup struct {
	Tiles       []Pos
	Color       Color
	Orientation Orientation
}

// Len returns the run length.
func (g MatchGroup) Len() int {
	return len(g.Tiles)
}

// Contains reports whether p is part of the group.
func (g MatchGroup) Contains(p Pos) bool {
	return slices.Contains(g.Tiles, p)
}

// minRun is the shortest run that counts as a match.
const minRun = 3

// Matches returns a lazy sequence of all match groups on the board: every
// row left-to-right first, then every column top-to-bottom. Each call
// starts a fresh scan. Only base tiles start or extend a run; a special
// tile ends it. Runs within one direction never overlap, but a tile can be
// part of both a horizontal and a vertical group.
//
// The board must be full; an empty slot panics.
func (b *Board) Matches() iter.Seq[MatchGroup] {
	return func(yield func(MatchGroup) bool) {
		for r := range Rows {
			if !b.scanLine(Horizontal, r, yield) {
				return
			}
		}
		for c := range Cols {
			if !b.scanLine(Vertical, c, yield) {
				return
			}
		}
	}
}

// FindMatches collects Matches into a slice.
func (b *Board) FindMatches() []MatchGroup {
	return slices.Collect(b.Matches())
}

// HasMatches reports whether at least one match group exists.
func (b *Board) HasMatches() bool {
	for range b.Matches() {
		return true
	}
	return false
}

// scanLine scans one row (Horizontal) or column (Vertical).
// Returns false when yield asked to stop.
func (b *Board) scanLine(o Orientation, line int, yield func(MatchGroup) bool) bool {
	length := Cols
	if o == Vertical {
		length = Rows
	}
	at := func(i int) Pos {
		if o == Vertical {
			return P(i, line)
		}
		return P(line, i)
	}

	for i := 0; i < length; {
		start := b.mustGet(at(i))
		if !start.IsBase() {
			i++
			continue
		}

		run := 1
		for i+run < length {
			next := b.mustGet(at(i + run))
			if !next.IsBase() || next.Color != start.Color {
				break
			}
			run++
		}

		if run >= minRun {
			g := MatchGroup{
				Tiles:       make([]Pos, run),
				Color:       start.Color,
				Orientation: o,
			}
			for k := range run {
				g.Tiles[k] = at(i + k)
			}
			if !yield(g) {
				return false
			}
		}
		i += run
	}
	return true
}

// mustGet returns the tile at p and panics on an empty slot; the detector
// relies on a full board between cascades.
func (b *Board) mustGet(p Pos) Tile {
	t := b.Get(p)
	if t.Empty() {
		panic(fmt.Sprintf("engine: empty slot %s during match scan", p))
	}
	return t
}

// matchAt reports whether placing a base tile of color c at p would
// complete a run with the two tiles to its left or the two tiles above.
// Used while filling a fresh board row by row.
func (b *Board) matchAt(p Pos, c Color) bool {
	same := func(q Pos) bool {
		t := b.Get(q)
		return t.IsBase() && t.Color == c
	}
	if p.Col >= 2 && same(P(p.Row, p.Col-1)) && same(P(p.Row, p.Col-2)) {
		return true
	}
	if p.Row >= 2 && same(P(p.Row-1, p.Col)) && same(P(p.Row-2, p.Col)) {
		return true
	}
	return false
}
