package systems

// offspringOffsets are the twelve cells at Manhattan distance one or two
// from a parent.
var offspringOffsets = [12][2]int{
	{0, -2},
	{-1, -1}, {0, -1}, {1, -1},
	{-2, 0}, {-1, 0}, {1, 0}, {2, 0},
	{-1, 1}, {0, 1}, {1, 1},
	{0, 2},
}

// SpawnOffspring births a mutated child of parent into a nearby free cell,
// trying the twelve candidates in uniformly random order and taking the
// first one that is on the grid and empty. With every candidate blocked
// the birth silently fails.
func SpawnOffspring(s *State, parentID uint64) (uint64, bool) {
	pe, ok := s.Entity(parentID)
	if !ok {
		return 0, false
	}
	pos := *s.Pos.Get(pe)
	pg := s.Geno.Get(pe).Genes
	pop := s.Pix.Get(pe).Population

	for _, i := range s.RNG.Perm(len(offspringOffsets)) {
		off := offspringOffsets[i]
		x, y := pos.X+off[0], pos.Y+off[1]
		if !s.Grid.InBounds(x, y) || s.Grid.At(x, y) != 0 {
			continue
		}
		child := pg.Mutate(s.RNG, s.Params.MutationChance)
		return s.Spawn(x, y, child, pop, parentID)
	}
	return 0, false
}
