package systems

import "sort"

// Tick advances the simulation one generation: every pixel alive at the
// start of the tick takes one turn, in freshly shuffled order. Pixels
// killed mid-tick lose their turn; pixels born mid-tick wait for the next.
func Tick(s *State) {
	s.turnOrder = s.IDs(s.turnOrder[:0])
	// Map iteration order varies run to run; sort by id first so seeded
	// runs replay identically.
	sort.Slice(s.turnOrder, func(i, j int) bool {
		return s.turnOrder[i] < s.turnOrder[j]
	})
	s.RNG.Shuffle(len(s.turnOrder), func(i, j int) {
		s.turnOrder[i], s.turnOrder[j] = s.turnOrder[j], s.turnOrder[i]
	})

	for _, id := range s.turnOrder {
		if !s.Alive(id) {
			continue
		}
		Step(s, id)
	}
}
