package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/genes"
)

// ResolveCombat fights a duel to the death. The higher speed count strikes
// first, with ties deferring to the attacker; strikes then alternate, each
// dealing max(1, attack-defense) damage so every duel terminates. When a
// combatant's hp reaches zero the survivor wins and, in order: the duel is
// recorded, the loser removed, the winner healed to full, and a mutated
// offspring of the winner spawned nearby. Reports false without effect
// when either id is stale or the ids coincide.
func ResolveCombat(s *State, attackerID, defenderID uint64) (uint64, bool) {
	if attackerID == defenderID {
		return 0, false
	}
	ae, aok := s.Entity(attackerID)
	de, dok := s.Entity(defenderID)
	if !aok || !dok {
		return 0, false
	}

	ag := s.Geno.Get(ae).Genes
	dg := s.Geno.Get(de).Genes
	aCode := s.Geno.Get(ae).Code
	dCode := s.Geno.Get(de).Code

	type side struct {
		id   uint64
		e    ecs.Entity
		code string
		vit  *components.Vitals
		dmg  int
	}
	atk := side{attackerID, ae, aCode, s.Vit.Get(ae), damage(ag, dg)}
	def := side{defenderID, de, dCode, s.Vit.Get(de), damage(dg, ag)}

	striker, target := &atk, &def
	if dg[genes.Speed] > ag[genes.Speed] {
		striker, target = &def, &atk
	}

	for {
		target.vit.HP -= striker.dmg
		if target.vit.HP <= 0 {
			break
		}
		striker, target = target, striker
	}
	winner, loser := striker, target

	s.Recorder.Duel(winner.id, loser.id, winner.code, loser.code)
	s.Kill(loser.id)
	// Removal is structural; the winner's vitals view must be refetched.
	wv := s.Vit.Get(winner.e)
	wv.HP = wv.MaxHP
	SpawnOffspring(s, winner.id)

	return winner.id, true
}

// damage is the hp a striker takes off per hit: attack minus defense,
// floored at one.
func damage(striker, target genes.Genes) int {
	d := striker[genes.Attack] - target[genes.Defense]
	if d < 1 {
		d = 1
	}
	return d
}
