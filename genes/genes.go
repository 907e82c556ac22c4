// Package genes defines the gene vector that drives pixel behavior.
package genes

import (
	"math"
	"math/rand"
	"strings"
)

// Category indexes the gene vector. The declaration order is the canonical
// order: every iteration over categories follows it.
type Category uint8

const (
	Attack Category = iota
	Defense
	Speed
	HP

	NumCategories = 4
)

var symbols = [NumCategories]byte{'A', 'D', 'S', 'H'}

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Attack:
		return "attack"
	case Defense:
		return "defense"
	case Speed:
		return "speed"
	case HP:
		return "hp"
	default:
		return "unknown"
	}
}

// Genes counts gene units per category. Vectors are values: operations
// return new vectors and never mutate their input.
type Genes [NumCategories]int

// Random draws total units one at a time, each into a uniformly random
// category. A vector with zero hp is not viable, so hp is raised to one
// afterwards without rebalancing; the sum may then exceed total by one.
func Random(rng *rand.Rand, total int) Genes {
	var g Genes
	for i := 0; i < total; i++ {
		g[rng.Intn(NumCategories)]++
	}
	if g[HP] == 0 {
		g[HP] = 1
	}
	return g
}

// Sum returns the total unit count across all categories.
func (g Genes) Sum() int {
	n := 0
	for _, c := range g {
		n += c
	}
	return n
}

// Mutate returns a copy of g where, with probability chance, one unit has
// moved from a random donor category to a uniformly chosen other category.
// hp keeps at least one unit, so it can only donate down to one. If no
// category can donate, the vector is returned unchanged. The sum is
// conserved either way.
func (g Genes) Mutate(rng *rand.Rand, chance float64) Genes {
	if rng.Float64() >= chance {
		return g
	}

	donors := make([]Category, 0, NumCategories)
	for c := Category(0); c < NumCategories; c++ {
		floor := 0
		if c == HP {
			floor = 1
		}
		if g[c] > floor {
			donors = append(donors, c)
		}
	}
	if len(donors) == 0 {
		return g
	}

	src := donors[rng.Intn(len(donors))]
	dst := Category(rng.Intn(NumCategories - 1))
	if dst >= src {
		dst++
	}
	g[src]--
	g[dst]++
	return g
}

// Code returns the canonical gene string: each category's symbol repeated
// once per unit, in category order. Two vectors are equal exactly when
// their codes are equal.
func (g Genes) Code() string {
	var b strings.Builder
	b.Grow(g.Sum())
	for c := Category(0); c < NumCategories; c++ {
		for i := 0; i < g[c]; i++ {
			b.WriteByte(symbols[c])
		}
	}
	return b.String()
}

// RGB is a display color derived from a gene vector.
type RGB struct {
	R, G, B uint8
}

// Color maps the vector to RGB: red tracks attack, green speed and blue
// defense, each as that category's share of the whole vector. The hp share
// sets brightness, floored at 0.4 so even fragile pixels stay visible.
func (g Genes) Color() RGB {
	sum := g.Sum()
	if sum == 0 {
		return RGB{}
	}
	brightness := 0.4 + math.Min(0.6, float64(g[HP])/float64(sum))
	channel := func(c Category) uint8 {
		return uint8(math.Round(float64(g[c]) / float64(sum) * brightness * 255))
	}
	return RGB{
		R: channel(Attack),
		G: channel(Speed),
		B: channel(Defense),
	}
}
