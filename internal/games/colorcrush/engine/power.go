package engine

import (
	"slices"

	"github.com/samber/lo"
)

// Rules holds the scoring constants and special-tile tuning.
type Rules struct {
	PointsPerTile           int // per tile of a plain three-run
	FourRunPoints           int // flat award for a four-run (spawns an area-clear)
	FiveRunPoints           int // flat award for a five-or-longer run (spawns a color-clear)
	AreaClearPoints         int // flat award for an area-clear activation
	ColorClearPointsPerTile int // per tile removed by a color-clear activation
	RandomClearMin          int // lower bound of the untargeted color-clear count
	RandomClearMax          int // upper bound of the untargeted color-clear count
}

// DefaultRules returns the classic scoring table.
func DefaultRules() Rules {
	return Rules{
		PointsPerTile:           10,
		FourRunPoints:           20,
		FiveRunPoints:           50,
		AreaClearPoints:         90,
		ColorClearPointsPerTile: 10,
		RandomClearMin:          15,
		RandomClearMax:          25,
	}
}

// RNG is the randomness the engine needs. *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Resolution is the outcome of resolving matches or activating a special.
// Spawns are placed after Cleared is emptied.
type Resolution struct {
	Cleared []Pos
	Spawns  []Tile
	Points  int
}

// Empty reports whether the resolution clears nothing.
func (r Resolution) Empty() bool {
	return len(r.Cleared) == 0 && len(r.Spawns) == 0
}

// merge combines two resolutions, keeping cleared positions unique.
func (r Resolution) merge(o Resolution) Resolution {
	return Resolution{
		Cleared: lo.Uniq(append(slices.Clone(r.Cleared), o.Cleared...)),
		Spawns:  append(slices.Clone(r.Spawns), o.Spawns...),
		Points:  r.Points + o.Points,
	}
}

// SpecialFor returns the special kind a run of length n produces, or
// KindNone for a plain run.
func SpecialFor(n int) Kind {
	switch {
	case n >= 5:
		return KindColorClear
	case n == 4:
		return KindAreaClear
	default:
		return KindNone
	}
}

// PreferredPos picks the slot that hosts a group's special: the first
// group tile that is one of the hints (the slots of the triggering swap),
// otherwise the middle tile.
func PreferredPos(g MatchGroup, hints ...Pos) Pos {
	for _, p := range g.Tiles {
		if slices.Contains(hints, p) {
			return p
		}
	}
	return g.Tiles[len(g.Tiles)/2]
}

// ResolveMatches turns match groups into a resolution. Positions shared by
// a horizontal and a vertical group are cleared once; each group still
// scores and spawns on its own.
func ResolveMatches(groups []MatchGroup, hints []Pos, rules Rules) Resolution {
	res := Resolution{
		Cleared: lo.Uniq(lo.FlatMap(groups, func(g MatchGroup, _ int) []Pos {
			return g.Tiles
		})),
	}

	for _, g := range groups {
		kind := SpecialFor(g.Len())
		switch kind {
		case KindColorClear:
			res.Points += rules.FiveRunPoints
		case KindAreaClear:
			res.Points += rules.FourRunPoints
		default:
			res.Points += g.Len() * rules.PointsPerTile
			continue
		}
		at := PreferredPos(g, hints...)
		res.Spawns = append(res.Spawns, Tile{Row: at.Row, Col: at.Col, Color: g.Color, Kind: kind})
	}
	return res
}

// Activate fires the special tile at p. target is the tile it was swapped
// against; pass the zero Tile when the special was tapped on its own.
func Activate(b *Board, p Pos, target Tile, rng RNG, rules Rules) Resolution {
	switch b.Get(p).Kind {
	case KindAreaClear:
		return activateArea(b, p, rules)
	case KindColorClear:
		return activateColor(b, p, target, rng, rules)
	default:
		return Resolution{}
	}
}

// ActivatePair resolves a swap where at least one of the two tiles is
// special. A color-clear always fires against the other tile; two
// area-clears both fire; otherwise the single special fires.
func ActivatePair(b *Board, first, second Pos, rng RNG, rules Rules) Resolution {
	a, c := b.Get(first), b.Get(second)
	switch {
	case a.Kind == KindColorClear:
		return Activate(b, first, c, rng, rules)
	case c.Kind == KindColorClear:
		return Activate(b, second, a, rng, rules)
	case a.Kind == KindAreaClear && c.Kind == KindAreaClear:
		return activateArea(b, first, rules).merge(activateArea(b, second, rules))
	case a.IsSpecial():
		return Activate(b, first, c, rng, rules)
	default:
		return Activate(b, second, a, rng, rules)
	}
}

// activateArea clears the 3x3 neighborhood around p, clipped to the board.
func activateArea(b *Board, p Pos, rules Rules) Resolution {
	var cleared []Pos
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			q := P(p.Row+dr, p.Col+dc)
			if q.InBounds() && !b.Get(q).Empty() {
				cleared = append(cleared, q)
			}
		}
	}
	return Resolution{Cleared: cleared, Points: rules.AreaClearPoints}
}

// activateColor consumes the color-clear at p and removes either every
// tile of the target's color or, without a base target, a random subset.
// The color-clear itself is never counted.
func activateColor(b *Board, p Pos, target Tile, rng RNG, rules Rules) Resolution {
	others := lo.Filter(b.Occupied(), func(q Pos, _ int) bool { return q != p })

	var victims []Pos
	if target.IsBase() {
		victims = lo.Filter(others, func(q Pos, _ int) bool {
			return b.Get(q).Color == target.Color
		})
	} else {
		victims = pickRandom(others, randomCount(rng, rules), rng)
	}

	return Resolution{
		Cleared: append([]Pos{p}, victims...),
		Points:  len(victims) * rules.ColorClearPointsPerTile,
	}
}

// randomCount draws the untargeted color-clear size uniformly from
// [RandomClearMin, RandomClearMax].
func randomCount(rng RNG, rules Rules) int {
	span := rules.RandomClearMax - rules.RandomClearMin + 1
	if span <= 1 {
		return rules.RandomClearMin
	}
	return rules.RandomClearMin + rng.Intn(span)
}

// pickRandom chooses n distinct positions from pool without replacement.
// n is clamped to the pool size; pool is not modified.
func pickRandom(pool []Pos, n int, rng RNG) []Pos {
	n = min(n, len(pool))
	if n <= 0 {
		return nil
	}
	work := slices.Clone(pool)
	for i := range n {
		j := i + rng.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:n]
}
