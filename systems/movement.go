package systems

import "github.com/pthm-cable/petri/genes"

// directions are the eight compass moves in screen coordinates.
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Step runs one pixel's turn: up to max(1, speed) single-cell sub-steps in
// uniformly random directions. Moves past the edge clamp back onto the
// grid; a move clamped onto its own cell spends the sub-step with no
// effect, as does bumping into a pixel with the same gene code. Bumping
// into a different code starts combat with the mover attacking, and the
// turn ends when the duel does; a winning mover advances into the loser's
// cell.
func Step(s *State, id uint64) {
	e, ok := s.Entity(id)
	if !ok {
		return
	}
	geno := s.Geno.Get(e)
	code := geno.Code
	steps := geno.Genes[genes.Speed]
	if steps < 1 {
		steps = 1
	}

	for i := 0; i < steps; i++ {
		pos := s.Pos.Get(e)
		d := directions[s.RNG.Intn(len(directions))]
		tx := clamp(pos.X+d[0], 0, s.Params.GridSide-1)
		ty := clamp(pos.Y+d[1], 0, s.Params.GridSide-1)
		if tx == pos.X && ty == pos.Y {
			continue
		}

		target := s.Grid.At(tx, ty)
		if target == 0 {
			if s.Grid.Move(id, pos.X, pos.Y, tx, ty) {
				pos.X, pos.Y = tx, ty
			}
			continue
		}

		te, ok := s.Entity(target)
		if !ok {
			continue
		}
		if s.Geno.Get(te).Code == code {
			continue
		}

		winner, fought := ResolveCombat(s, id, target)
		if fought && winner == id {
			// Combat side effects are structural; refetch the position
			// view before advancing. The loser's cell is normally free
			// now, but a fresh offspring may have claimed it first.
			wpos := s.Pos.Get(e)
			if s.Grid.Move(id, wpos.X, wpos.Y, tx, ty) {
				wpos.X, wpos.Y = tx, ty
			}
		}
		return
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
