package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/genes"
)

// Params fixes the simulation constants for a run.
type Params struct {
	GridSide       int
	GenesPerPixel  int
	MutationChance float64
}

// Recorder observes simulation events. The engine emits every event;
// retention and aggregation policy belong to the implementation.
type Recorder interface {
	Duel(winnerID, loserID uint64, winnerCode, loserCode string)
	Born(id, parentID uint64, population uint8, code string)
	Died(id uint64, population uint8, code string)
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) Duel(winnerID, loserID uint64, winnerCode, loserCode string) {}
func (NopRecorder) Born(id, parentID uint64, population uint8, code string)     {}
func (NopRecorder) Died(id uint64, population uint8, code string)               {}

// State is the complete simulation state. Everything the engine touches
// hangs off this struct; there are no package globals, so independent
// states can run side by side.
type State struct {
	World    *ecs.World
	RNG      *rand.Rand
	Params   Params
	Grid     *Occupancy
	Recorder Recorder

	// Map1 views for component access by entity.
	Pos  *ecs.Map1[components.Position]
	Geno *ecs.Map1[components.Genotype]
	Vit  *ecs.Map1[components.Vitals]
	Pix  *ecs.Map1[components.Pixel]

	mapper *ecs.Map4[components.Position, components.Genotype, components.Vitals, components.Pixel]

	// pixels is the roster: presence here is the definition of alive.
	pixels map[uint64]ecs.Entity
	nextID uint64

	turnOrder []uint64
}

// NewState builds an empty simulation over a fresh world. A nil recorder
// disables event reporting.
func NewState(params Params, rng *rand.Rand, rec Recorder) *State {
	if rec == nil {
		rec = NopRecorder{}
	}
	world := ecs.NewWorld()
	return &State{
		World:    world,
		RNG:      rng,
		Params:   params,
		Grid:     NewOccupancy(params.GridSide),
		Recorder: rec,
		Pos:      ecs.NewMap1[components.Position](world),
		Geno:     ecs.NewMap1[components.Genotype](world),
		Vit:      ecs.NewMap1[components.Vitals](world),
		Pix:      ecs.NewMap1[components.Pixel](world),
		mapper: ecs.NewMap4[
			components.Position,
			components.Genotype,
			components.Vitals,
			components.Pixel,
		](world),
		pixels: make(map[uint64]ecs.Entity),
	}
}

// Spawn creates a pixel at (x, y) with the given genes and population tag,
// recording parentID on the birth event (0 for founders). It reports false
// and changes nothing when the cell is unavailable.
func (s *State) Spawn(x, y int, g genes.Genes, population uint8, parentID uint64) (uint64, bool) {
	id := s.nextID + 1
	if !s.Grid.Place(id, x, y) {
		return 0, false
	}
	s.nextID = id

	pos := components.Position{X: x, Y: y}
	geno := components.NewGenotype(g)
	vit := components.NewVitals(g)
	pix := components.Pixel{ID: id, Population: population}
	s.pixels[id] = s.mapper.NewEntity(&pos, &geno, &vit, &pix)

	s.Recorder.Born(id, parentID, population, geno.Code)
	return id, true
}

// Kill removes a pixel from the roster, the grid, and the world. Stale ids
// are ignored.
func (s *State) Kill(id uint64) {
	e, ok := s.pixels[id]
	if !ok {
		return
	}
	pos := *s.Pos.Get(e)
	pix := *s.Pix.Get(e)
	code := s.Geno.Get(e).Code

	s.Grid.Remove(id, pos.X, pos.Y)
	delete(s.pixels, id)
	s.mapper.Remove(e)

	s.Recorder.Died(id, pix.Population, code)
}

// Entity resolves a pixel id to its ECS entity.
func (s *State) Entity(id uint64) (ecs.Entity, bool) {
	e, ok := s.pixels[id]
	return e, ok
}

// Alive reports whether id is a live pixel.
func (s *State) Alive(id uint64) bool {
	_, ok := s.pixels[id]
	return ok
}

// Count returns the number of live pixels.
func (s *State) Count() int {
	return len(s.pixels)
}

// IDs appends every live pixel id to dst and returns it. Order follows map
// iteration; callers that need a stable order must impose their own.
func (s *State) IDs(dst []uint64) []uint64 {
	for id := range s.pixels {
		dst = append(dst, id)
	}
	return dst
}

// CodeAt returns the gene code of the pixel occupying (x, y). The second
// result is false for empty or out-of-bounds cells.
func (s *State) CodeAt(x, y int) (string, bool) {
	id := s.Grid.At(x, y)
	if id == 0 {
		return "", false
	}
	e, ok := s.pixels[id]
	if !ok {
		return "", false
	}
	return s.Geno.Get(e).Code, true
}
