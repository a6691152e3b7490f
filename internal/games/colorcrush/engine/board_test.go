package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// patternRows is a full board without a single pair of equal neighbors:
// color index (row + 2*col) mod 5.
var patternRows = []string{
	"YRGBPYRG",
	"BPYRGBPY",
	"RGBPYRGB",
	"PYRGBPYR",
	"GBPYRGBP",
	"YRGBPYRG",
	"BPYRGBPY",
	"RGBPYRGB",
}

func mustParse(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func TestBoardSetRewritesPosition(t *testing.T) {
	var b Board
	b.Set(P(3, 4), Tile{Row: 7, Col: 7, Color: ColorRed, Kind: KindBase})

	got := b.Get(P(3, 4))
	assert.Equal(t, 3, got.Row)
	assert.Equal(t, 4, got.Col)
	assert.Equal(t, ColorRed, got.Color)
}

func TestBoardSwap(t *testing.T) {
	b := mustParse(t, patternRows...)
	a, c := b.Get(P(0, 0)), b.Get(P(0, 1))

	b.Swap(P(0, 0), P(0, 1))

	assert.Equal(t, c.Color, b.Get(P(0, 0)).Color)
	assert.Equal(t, a.Color, b.Get(P(0, 1)).Color)
	assert.Equal(t, P(0, 0), b.Get(P(0, 0)).Pos())
	assert.Equal(t, P(0, 1), b.Get(P(0, 1)).Pos())

	b.Swap(P(0, 0), P(0, 1))
	assert.Equal(t, mustParse(t, patternRows...), b)
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := mustParse(t, patternRows...)
	c := b.Clone()
	c.Clear(P(2, 2))

	assert.True(t, b.Full())
	assert.False(t, c.Full())
	assert.Equal(t, Rows*Cols-1, c.Count())
}

func TestParseBoardRoundTrip(t *testing.T) {
	rows := []string{
		"YRGBPYRG",
		"BPYRGBPY",
		"RGbPYRGB",
		"PYRGBPYR",
		"GBPYRGBP",
		"YRGB.YRG",
		"BPYRGBPY",
		"RGBPYRGB",
	}
	b := mustParse(t, rows...)

	assert.Equal(t, KindAreaClear, b.Get(P(2, 2)).Kind)
	assert.Equal(t, ColorBlue, b.Get(P(2, 2)).Color)
	assert.True(t, b.Get(P(5, 4)).Empty())
	assert.Equal(t, "YRGBPYRG\nBPYRGBPY\nRGbPYRGB\nPYRGBPYR\nGBPYRGBP\nYRGB.YRG\nBPYRGBPY\nRGBPYRGB", b.String())
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"too few rows", patternRows[:7]},
		{"short row", append(append([]string{}, patternRows[:7]...), "YRG")},
		{"unknown letter", append(append([]string{}, patternRows[:7]...), "XXXXXXXX")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.rows...)
			assert.Error(t, err)
		})
	}
}

func TestPosAdjacent(t *testing.T) {
	tests := []struct {
		a, b Pos
		want bool
	}{
		{P(3, 3), P(3, 4), true},
		{P(3, 3), P(2, 3), true},
		{P(3, 3), P(4, 4), false},
		{P(3, 3), P(3, 3), false},
		{P(3, 3), P(3, 5), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Adjacent(tt.b), "%s vs %s", tt.a, tt.b)
	}
}
