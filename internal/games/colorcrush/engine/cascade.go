package engine

import "fmt"

// Phase is the cascade state. The engine never waits on its own: every
// transition out of a non-idle phase happens on Advance, which the caller
// sends once the phase has been shown (for example when an animation ends).
type Phase uint8

const (
	PhaseIdle     Phase = iota
	PhaseSwapped        // two base tiles swapped, not yet checked
	PhaseClearing       // positions marked for removal
	PhaseFalling        // cleared, compacted and refilled, not yet rescanned
	PhaseReverted       // a swap without a match was undone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSwapped:
		return "swapped"
	case PhaseClearing:
		return "clearing"
	case PhaseFalling:
		return "falling"
	case PhaseReverted:
		return "reverted"
	default:
		return "unknown"
	}
}

type cascade struct {
	phase   Phase
	swapA   Pos
	swapB   Pos
	hints   []Pos
	pending Resolution
	rounds  int
}

// Advance completes the current phase and moves to the next one.
// It returns true while the cascade is still running. On an idle session
// it does nothing and returns false.
//
// If advancing panics the busy gate is released before the panic
// propagates.
func (s *Session) Advance() (running bool) {
	defer func() {
		if r := recover(); r != nil {
			s.busy = false
			s.cascade = cascade{}
			panic(r)
		}
	}()

	switch s.cascade.phase {
	case PhaseSwapped:
		groups := s.board.FindMatches()
		if len(groups) == 0 {
			s.board.Swap(s.cascade.swapA, s.cascade.swapB)
			s.cascade.phase = PhaseReverted
			s.notify()
			return true
		}
		s.beginClearing(ResolveMatches(groups, s.cascade.hints, s.rules))
		return true

	case PhaseClearing:
		s.applyClearing()
		s.cascade.phase = PhaseFalling
		s.notify()
		return true

	case PhaseFalling:
		groups := s.board.FindMatches()
		if len(groups) == 0 {
			s.finish()
			return false
		}
		s.beginClearing(ResolveMatches(groups, s.cascade.hints, s.rules))
		return true

	case PhaseReverted:
		s.finish()
		return false
	}
	return false
}

// Settle advances until the cascade is over.
func (s *Session) Settle() {
	for s.Advance() {
	}
}

// beginClearing marks the resolution's positions and waits for Advance.
func (s *Session) beginClearing(res Resolution) {
	s.cascade.pending = res
	s.cascade.phase = PhaseClearing
	s.cascade.rounds++
	s.logger.Debug("clearing",
		"round", s.cascade.rounds,
		"tiles", len(res.Cleared),
		"spawns", len(res.Spawns),
		"points", res.Points,
	)
	if s.observer != nil {
		s.observer.Clearing(res.Cleared)
	}
	s.notify()
}

// applyClearing removes every pending position in one step, places the
// spawned specials, awards the points, then lets tiles fall and refills.
func (s *Session) applyClearing() {
	res := s.cascade.pending
	s.cascade.pending = Resolution{}

	for _, p := range res.Cleared {
		s.board.Clear(p)
	}
	for _, t := range res.Spawns {
		s.board.Set(t.Pos(), t)
	}
	s.addScore(res.Points)
	s.collapse()

	if !s.board.Full() {
		panic(fmt.Sprintf("engine: board not full after refill (%d tiles)", s.board.Count()))
	}
}

// collapse compacts every column downward, keeping tile order, and fills
// the vacated top slots with random base tiles. Refills do not avoid runs;
// the next scan picks them up.
func (s *Session) collapse() {
	for c := range Cols {
		write := Rows - 1
		for r := Rows - 1; r >= 0; r-- {
			t := s.board.Get(P(r, c))
			if t.Empty() {
				continue
			}
			if r != write {
				s.board.Set(P(write, c), t)
				s.board.Clear(P(r, c))
			}
			write--
		}
		for r := write; r >= 0; r-- {
			s.board.Set(P(r, c), s.randomBase())
		}
	}
}

// finish returns to idle and releases the busy gate.
func (s *Session) finish() {
	rounds := s.cascade.rounds
	s.cascade = cascade{}
	s.busy = false
	if rounds > 0 {
		s.logger.Debug("cascade settled", "rounds", rounds, "score", s.score)
	}
	s.notify()
}
