// Package components defines ECS components for the simulation.
package components

import "github.com/pthm-cable/petri/genes"

// Position is an entity's grid cell.
type Position struct {
	X, Y int
}

// Genotype carries a pixel's gene vector plus its derived display values.
// Gene vectors never change after birth, so Code and Color are computed
// once at creation and cannot go stale.
type Genotype struct {
	Genes genes.Genes
	Code  string
	Color genes.RGB
}

// NewGenotype builds a genotype with the derived fields filled in.
func NewGenotype(g genes.Genes) Genotype {
	return Genotype{Genes: g, Code: g.Code(), Color: g.Color()}
}

// Vitals tracks combat health. MaxHP is fixed at birth.
type Vitals struct {
	HP    int
	MaxHP int
}

// NewVitals derives vitals from a gene vector, with at least one point of
// max hp even for vectors without hp units.
func NewVitals(g genes.Genes) Vitals {
	max := g[genes.HP]
	if max < 1 {
		max = 1
	}
	return Vitals{HP: max, MaxHP: max}
}

// Pixel identifies an entity. IDs are issued monotonically starting at 1
// and never reused. Population tags the founder population the pixel
// descends from; it is inherited verbatim and has no behavioral effect.
type Pixel struct {
	ID         uint64
	Population uint8
}
