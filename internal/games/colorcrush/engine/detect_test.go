package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternBoardHasNoMatches(t *testing.T) {
	b := mustParse(t, patternRows...)
	assert.Empty(t, b.FindMatches())
	assert.False(t, b.HasMatches())
}

func TestFindMatchesHorizontal(t *testing.T) {
	b := mustParse(t,
		"YRGBPYRG",
		"BPYRGBPY",
		"RRRPYRGB",
		"PYRGBPYR",
		"GBPYRGBP",
		"YRGBPYRG",
		"BPYRGBPY",
		"RGBPYRGB",
	)

	groups := b.FindMatches()
	require.Len(t, groups, 1)
	assert.Equal(t, Horizontal, groups[0].Orientation)
	assert.Equal(t, ColorRed, groups[0].Color)
	assert.Equal(t, []Pos{P(2, 0), P(2, 1), P(2, 2)}, groups[0].Tiles)
}

func TestFindMatchesVertical(t *testing.T) {
	b := mustParse(t,
		"YRGBPYRG",
		"BPYRGBPY",
		"RGBPYRGB",
		"PYRGBPYR",
		"GBPYRGBP",
		"YRGBPYRP",
		"BPYRGBPP",
		"RGBPYRGP",
	)

	groups := b.FindMatches()
	require.Len(t, groups, 1)
	assert.Equal(t, Vertical, groups[0].Orientation)
	assert.Equal(t, []Pos{P(4, 7), P(5, 7), P(6, 7), P(7, 7)}, groups[0].Tiles)
	assert.Equal(t, ColorPink, groups[0].Color)
}

func TestFindMatchesLongRunIsOneGroup(t *testing.T) {
	b := mustParse(t,
		"YRGBPYRG",
		"BPYRGBPY",
		"RGBPYRGB",
		"PYRGBPYR",
		"BBBBBBBB",
		"YRGBPYRG",
		"BPYRGBPY",
		"RGBPYRGB",
	)

	groups := b.FindMatches()
	require.Len(t, groups, 1)
	assert.Equal(t, 8, groups[0].Len())
}

func TestFindMatchesSpecialEndsRun(t *testing.T) {
	// Row 0: two yellows, a yellow area-clear, three yellows.
	b := mustParse(t,
		"YYyYYYRG",
		"BPBRGBPY",
		"RGYPBRGB",
		"PYRGBPYR",
		"GBPYRGBP",
		"YRGBPYRG",
		"BPYRGBPY",
		"RGBPYRGB",
	)

	groups := b.FindMatches()
	require.Len(t, groups, 1)
	assert.Equal(t, []Pos{P(0, 3), P(0, 4), P(0, 5)}, groups[0].Tiles)
}

func TestFindMatchesCrossSharesTile(t *testing.T) {
	// Horizontal G run on row 2 cols 1-4 and vertical G run on col 4 rows 0-2.
	b := mustParse(t,
		"YRGBGYRG",
		"BPYRGBPY",
		"RGGGGRYB",
		"PYRBPPYR",
		"GBPYRGBP",
		"YRGBPYRG",
		"BPYRGBPY",
		"RGBPYRGB",
	)

	groups := b.FindMatches()
	require.Len(t, groups, 2)

	assert.Equal(t, Horizontal, groups[0].Orientation)
	assert.Equal(t, []Pos{P(2, 1), P(2, 2), P(2, 3), P(2, 4)}, groups[0].Tiles)
	assert.Equal(t, Vertical, groups[1].Orientation)
	assert.Equal(t, []Pos{P(0, 4), P(1, 4), P(2, 4)}, groups[1].Tiles)

	res := ResolveMatches(groups, nil, DefaultRules())
	assert.Len(t, res.Cleared, 6, "shared tile is cleared once")
}

func TestFindMatchesIsRestartable(t *testing.T) {
	b := mustParse(t,
		"YRGBPYRG",
		"BPYRGBPY",
		"RRRPYRGB",
		"PYRGBPYR",
		"BBBBBBBB",
		"YRGBPYRG",
		"BPYRGBPY",
		"RGBPYRGB",
	)

	first := b.FindMatches()
	second := b.FindMatches()
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestMatchesStopsEarly(t *testing.T) {
	b := mustParse(t,
		"YRGBPYRG",
		"BPYRGBPY",
		"RRRPYRGB",
		"PYRGBPYR",
		"BBBBBBBB",
		"YRGBPYRG",
		"BPYRGBPY",
		"RGBPYRGB",
	)

	n := 0
	for range b.Matches() {
		n++
		break
	}
	assert.Equal(t, 1, n)
	assert.True(t, b.HasMatches())
}

func TestMatchesPanicsOnEmptySlot(t *testing.T) {
	b := mustParse(t, patternRows...)
	b.Clear(P(6, 6))

	assert.Panics(t, func() { b.FindMatches() })
}
