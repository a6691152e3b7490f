package engine

import (
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRNG replays vals, each reduced modulo n.
type stubRNG struct {
	vals []int
	i    int
}

func (r *stubRNG) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func TestSpecialFor(t *testing.T) {
	tests := []struct {
		n    int
		want Kind
	}{
		{3, KindNone},
		{4, KindAreaClear},
		{5, KindColorClear},
		{8, KindColorClear},
	}
	for _, tt := range tests {
		if got := SpecialFor(tt.n); got != tt.want {
			t.Errorf("SpecialFor(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestPreferredPos(t *testing.T) {
	g := MatchGroup{Tiles: []Pos{P(2, 0), P(2, 1), P(2, 2), P(2, 3)}, Color: ColorRed}

	assert.Equal(t, P(2, 2), PreferredPos(g, P(2, 2), P(3, 2)))
	assert.Equal(t, P(2, 1), PreferredPos(g, P(1, 1), P(2, 1)))
	assert.Equal(t, P(2, 2), PreferredPos(g), "middle without hints")
	assert.Equal(t, P(2, 2), PreferredPos(g, P(7, 7)), "middle when no hint is in the group")

	five := MatchGroup{Tiles: []Pos{P(0, 3), P(1, 3), P(2, 3), P(3, 3), P(4, 3)}}
	assert.Equal(t, P(2, 3), PreferredPos(five))
}

func TestResolveMatchesScoring(t *testing.T) {
	rules := DefaultRules()
	run := func(n int) MatchGroup {
		g := MatchGroup{Color: ColorGreen, Orientation: Horizontal}
		for c := range n {
			g.Tiles = append(g.Tiles, P(5, c))
		}
		return g
	}

	tests := []struct {
		name       string
		n          int
		wantPoints int
		wantKind   Kind
	}{
		{"three", 3, 30, KindNone},
		{"four", 4, 20, KindAreaClear},
		{"five", 5, 50, KindColorClear},
		{"eight", 8, 50, KindColorClear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveMatches([]MatchGroup{run(tt.n)}, nil, rules)
			assert.Equal(t, tt.wantPoints, res.Points)
			assert.Len(t, res.Cleared, tt.n)
			if tt.wantKind == KindNone {
				assert.Empty(t, res.Spawns)
				return
			}
			require.Len(t, res.Spawns, 1)
			assert.Equal(t, tt.wantKind, res.Spawns[0].Kind)
			assert.Equal(t, ColorGreen, res.Spawns[0].Color)
			assert.Equal(t, P(5, tt.n/2), res.Spawns[0].Pos())
		})
	}
}

func TestResolveMatchesFullRowSpawnsColorClear(t *testing.T) {
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

	res := ResolveMatches(b.FindMatches(), nil, DefaultRules())

	assert.Equal(t, 50, res.Points)
	assert.Len(t, res.Cleared, 8)
	require.Len(t, res.Spawns, 1)
	assert.Equal(t, Tile{Row: 4, Col: 4, Color: ColorBlue, Kind: KindColorClear}, res.Spawns[0])
}

// Two four-runs crossing at the swapped slot both spawn there and both
// score; the later spawn replaces the earlier one.
func TestResolveMatchesCrossingFourRunsShareSpawn(t *testing.T) {
	b := mustParse(t,
		"YRGBPYRG",
		"BPYRGBPY",
		"RRRRYRGB",
		"PYRGBPYR",
		"GBRYRGBP",
		"YRRBPYRG",
		"BPYRGBPY",
		"RGBPYRGB",
	)
	groups := b.FindMatches()
	require.Len(t, groups, 2)

	res := ResolveMatches(groups, []Pos{P(2, 2), P(1, 2)}, DefaultRules())

	assert.Equal(t, 40, res.Points)
	assert.Len(t, res.Cleared, 7)
	require.Len(t, res.Spawns, 2)
	for _, sp := range res.Spawns {
		assert.Equal(t, Tile{Row: 2, Col: 2, Color: ColorRed, Kind: KindAreaClear}, sp)
	}

	for _, p := range res.Cleared {
		b.Clear(p)
	}
	for _, sp := range res.Spawns {
		b.Set(sp.Pos(), sp)
	}
	specials := 0
	for _, p := range b.Occupied() {
		if b.Get(p).IsSpecial() {
			specials++
		}
	}
	assert.Equal(t, 1, specials)
}

func TestActivateAreaClear(t *testing.T) {
	tests := []struct {
		name string
		at   Pos
		want int
	}{
		{"center", P(3, 3), 9},
		{"edge", P(0, 3), 6},
		{"corner", P(7, 7), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, patternRows...)
			b.Set(tt.at, Tile{Color: ColorGreen, Kind: KindAreaClear})

			res := Activate(b, tt.at, b.Get(P(tt.at.Row, (tt.at.Col+1)%Cols)), nil, DefaultRules())

			assert.Len(t, res.Cleared, tt.want)
			assert.Contains(t, res.Cleared, tt.at)
			assert.Equal(t, 90, res.Points)
			for _, p := range res.Cleared {
				assert.LessOrEqual(t, abs(p.Row-tt.at.Row), 1)
				assert.LessOrEqual(t, abs(p.Col-tt.at.Col), 1)
			}
		})
	}
}

func TestActivateColorClearTargeted(t *testing.T) {
	// The color-clear replaces the yellow at (0,0); (0,1) becomes yellow
	// and (0,5) blue, leaving twelve yellows on the board.
	b := mustParse(t,
		"*YGBPBRG",
		"BPYRGBPY",
		"RGBPYRGB",
		"PYRGBPYR",
		"GBPYRGBP",
		"YRGBPYRG",
		"BPYRGBPY",
		"RGBPYRGB",
	)
	yellows := lo.Filter(b.Occupied(), func(p Pos, _ int) bool { return b.Get(p).Color == ColorYellow })
	require.Len(t, yellows, 12)

	res := ActivatePair(b, P(0, 0), P(0, 1), nil, DefaultRules())

	assert.Equal(t, 120, res.Points)
	assert.Len(t, res.Cleared, 13)
	assert.Equal(t, P(0, 0), res.Cleared[0], "color-clear is consumed")
	assert.ElementsMatch(t, yellows, res.Cleared[1:])
	assert.Empty(t, res.Spawns)
}

func TestActivateColorClearRandom(t *testing.T) {
	rules := DefaultRules()
	for seed := int64(1); seed <= 50; seed++ {
		b := mustParse(t, patternRows...)
		at := P(4, 4)
		b.Set(at, Tile{Kind: KindColorClear})

		res := Activate(b, at, Tile{}, rand.New(rand.NewSource(seed)), rules)

		n := len(res.Cleared) - 1
		assert.GreaterOrEqual(t, n, 15, "seed %d", seed)
		assert.LessOrEqual(t, n, 25, "seed %d", seed)
		assert.Equal(t, 10*n, res.Points, "seed %d", seed)
		assert.Equal(t, at, res.Cleared[0])
		assert.NotContains(t, res.Cleared[1:], at)
		assert.Len(t, lo.Uniq(res.Cleared), len(res.Cleared), "seed %d: duplicates", seed)
	}
}

func TestRandomCount(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, 15, randomCount(&stubRNG{vals: []int{0}}, rules))
	assert.Equal(t, 25, randomCount(&stubRNG{vals: []int{10}}, rules))
	assert.Equal(t, 18, randomCount(&stubRNG{vals: []int{3}}, rules))

	rules.RandomClearMax = rules.RandomClearMin
	assert.Equal(t, 15, randomCount(nil, rules))
}

func TestPickRandomClampsToPool(t *testing.T) {
	pool := []Pos{P(0, 0), P(0, 1), P(0, 2), P(0, 3), P(0, 4)}
	orig := append([]Pos(nil), pool...)

	got := pickRandom(pool, 10, &stubRNG{vals: []int{3, 1, 4, 1, 5}})

	assert.ElementsMatch(t, pool, got)
	assert.Equal(t, orig, pool, "pool untouched")
	assert.Empty(t, pickRandom(nil, 3, &stubRNG{vals: []int{0}}))
}

func TestActivatePairTwoAreaClears(t *testing.T) {
	b := mustParse(t, patternRows...)
	b.Set(P(3, 3), Tile{Color: ColorRed, Kind: KindAreaClear})
	b.Set(P(3, 4), Tile{Color: ColorBlue, Kind: KindAreaClear})

	res := ActivatePair(b, P(3, 3), P(3, 4), nil, DefaultRules())

	assert.Equal(t, 180, res.Points)
	assert.Len(t, res.Cleared, 12, "rows 2-4, cols 2-5")
	assert.Len(t, lo.Uniq(res.Cleared), 12)
}

func TestActivatePairColorClearWithAreaClear(t *testing.T) {
	b := mustParse(t, patternRows...)
	b.Set(P(3, 3), Tile{Color: ColorRed, Kind: KindAreaClear})
	b.Set(P(3, 4), Tile{Kind: KindColorClear})

	res := ActivatePair(b, P(3, 3), P(3, 4), rand.New(rand.NewSource(7)), DefaultRules())

	n := len(res.Cleared) - 1
	assert.Equal(t, P(3, 4), res.Cleared[0])
	assert.GreaterOrEqual(t, n, 15)
	assert.LessOrEqual(t, n, 25)
	assert.Equal(t, 10*n, res.Points)
}

func TestActivatePairAreaClearWithBase(t *testing.T) {
	b := mustParse(t, patternRows...)
	b.Set(P(6, 1), Tile{Color: ColorPink, Kind: KindAreaClear})

	res := ActivatePair(b, P(6, 0), P(6, 1), nil, DefaultRules())

	assert.Equal(t, 90, res.Points)
	assert.Len(t, res.Cleared, 9)
	assert.Contains(t, res.Cleared, P(6, 0))
}

func TestActivateBaseTileDoesNothing(t *testing.T) {
	b := mustParse(t, patternRows...)
	assert.True(t, Activate(b, P(1, 1), Tile{}, nil, DefaultRules()).Empty())
}
