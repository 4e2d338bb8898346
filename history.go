package strscan

import "fmt"

// history records every scan pointer position and every match result a
// scanner has gone through. It is seeded with position 0 and no match.
//
// positions and matches always have equal length ≥ 1.
type history struct {
	positions []int
	matches   []*Match
}

func newHistory() history {
	return history{
		positions: []int{0},
		matches:   []*Match{nil},
	}
}

// push records a new scanner state.
func (h *history) push(pos int, m *Match) {
	h.positions = append(h.positions, pos)
	h.matches = append(h.matches, m)
	assert(h.check() == nil, "strscan: history out of balance after push")
}

// pop drops the most recent state. The seed entry cannot be popped.
func (h *history) pop() error {
	if len(h.positions) <= 1 {
		return ErrEmptyHistory
	}
	h.positions = h.positions[:len(h.positions)-1]
	h.matches = h.matches[:len(h.matches)-1]
	assert(h.check() == nil, "strscan: history out of balance after pop")
	return nil
}

// top returns the current state.
func (h *history) top() (int, *Match) {
	return h.positions[len(h.positions)-1], h.matches[len(h.matches)-1]
}

// previous returns the position before the current one. For a history holding
// just the seed entry this is the seed position.
func (h *history) previous() int {
	if len(h.positions) < 2 {
		return h.positions[0]
	}
	return h.positions[len(h.positions)-2]
}

// rewriteTop overwrites the position of the current state in place.
func (h *history) rewriteTop(pos int) {
	h.positions[len(h.positions)-1] = pos
}

func (h *history) len() int {
	return len(h.positions)
}

// check validates the invariants of the history stacks.
func (h *history) check() error {
	if len(h.positions) == 0 {
		return fmt.Errorf("%w: empty position history", ErrEmptyHistory)
	}
	if len(h.positions) != len(h.matches) {
		return fmt.Errorf("history mismatch: %d positions, %d matches",
			len(h.positions), len(h.matches))
	}
	return nil
}
