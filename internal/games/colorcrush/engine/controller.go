package engine

// Outcome describes what a tap did.
type Outcome uint8

const (
	OutcomeIgnored    Outcome = iota // off-board tap
	OutcomeBusy                      // rejected while a cascade runs
	OutcomeSelected                  // first tile selected
	OutcomeDeselected                // selected tile tapped again
	OutcomeReselected                // selection moved to a non-adjacent tile
	OutcomeSwapped                   // trial swap of two base tiles started
	OutcomeActivated                 // a special tile fired
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeBusy:
		return "busy"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeReselected:
		return "reselected"
	case OutcomeSwapped:
		return "swapped"
	case OutcomeActivated:
		return "activated"
	default:
		return "unknown"
	}
}

// Tap handles a tap on p.
//
// With nothing selected the tile is selected. Tapping the selected tile
// deselects it, and a color-clear fires on its own. Tapping a neighbor of
// the selection either fires the special(s) involved or starts a trial
// swap of two base tiles. Any other tap moves the selection.
//
// Swaps and activations make the session busy until Advance has run the
// cascade to the end; taps in the meantime return OutcomeBusy.
func (s *Session) Tap(p Pos) Outcome {
	if s.busy {
		return OutcomeBusy
	}
	if !p.InBounds() {
		return OutcomeIgnored
	}

	if !s.hasSelection {
		s.selected, s.hasSelection = p, true
		s.notify()
		return OutcomeSelected
	}

	from := s.selected
	switch {
	case from == p:
		s.hasSelection = false
		if s.board.Get(p).Kind == KindColorClear {
			s.startActivation(Activate(&s.board, p, Tile{}, s.rng, s.rules))
			return OutcomeActivated
		}
		s.notify()
		return OutcomeDeselected

	case from.Adjacent(p):
		s.hasSelection = false
		if s.board.Get(from).IsSpecial() || s.board.Get(p).IsSpecial() {
			s.startActivation(ActivatePair(&s.board, from, p, s.rng, s.rules))
			return OutcomeActivated
		}
		s.startSwap(from, p)
		return OutcomeSwapped

	default:
		s.selected = p
		s.notify()
		return OutcomeReselected
	}
}

// startSwap swaps two base tiles and waits for Advance to check them.
func (s *Session) startSwap(from, to Pos) {
	s.busy = true
	s.board.Swap(from, to)
	s.cascade = cascade{
		phase: PhaseSwapped,
		swapA: from,
		swapB: to,
		hints: []Pos{from, to},
	}
	s.notify()
}

// startActivation marks an activation's tiles for clearing. The cascade
// that follows runs without swap hints.
func (s *Session) startActivation(res Resolution) {
	s.busy = true
	s.cascade = cascade{}
	s.beginClearing(res)
}

// Deselect drops the selection without tapping anything. It does nothing
// while busy.
func (s *Session) Deselect() {
	if s.busy || !s.hasSelection {
		return
	}
	s.hasSelection = false
	s.notify()
}
