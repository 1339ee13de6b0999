package life

import (
	"toruslife/internal/core"

	"golang.org/x/sync/errgroup"
)

// span is a half-open range of the flattened active list.
type span struct{ lo, hi int }

// partition splits n items into min(workers, n) contiguous, non-overlapping
// spans whose sizes differ by at most one.
func partition(n, workers int) []span {
	if n <= 0 {
		return nil
	}
	p := min(max(workers, 1), n)
	spans := make([]span, p)
	for i := range spans {
		spans[i] = span{lo: i * n / p, hi: (i + 1) * n / p}
	}
	return spans
}

// nextState applies Conway's rule.
func nextState(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Iterate computes one generation. Every active cell's next state is computed
// from the board as it was when the call started; the board is only written
// once all workers have finished.
func (s *Session) Iterate() {
	g := s.grid
	coords := g.Active.Coords()
	next := s.next

	var eg errgroup.Group
	for _, sp := range partition(len(coords), s.workers) {
		part := coords[sp.lo:sp.hi]
		eg.Go(func() error {
			for _, c := range part {
				next[g.Index(c.Row, c.Col)] = nextState(g.Alive(c.Row, c.Col), g.NeighborCount(c.Row, c.Col))
			}
			return nil
		})
	}
	// Workers never fail; Wait is only the join.
	_ = eg.Wait()

	s.commit(coords)
	s.generation++
}

// commit applies the computed states and rebuilds the active set from the
// cells that are alive afterwards.
func (s *Session) commit(coords []core.Coord) {
	g := s.grid
	s.pending = append(s.pending[:0], coords...)
	s.clearMotion()
	g.Active.Reset()
	for _, c := range s.pending {
		idx := g.Index(c.Row, c.Col)
		alive := s.next[idx]
		if alive != g.At(idx).Alive() {
			s.moved[idx] = true
			s.movedList = append(s.movedList, idx)
		}
		g.SetAlive(c.Row, c.Col, alive)
	}
}

func (s *Session) clearMotion() {
	for _, idx := range s.movedList {
		s.moved[idx] = false
	}
	s.movedList = s.movedList[:0]
}
