// Package systems implements the simulation engine: grid occupancy, the
// pixel roster, movement, combat, reproduction, and the tick driver.
package systems

// Occupancy maps grid cells to pixel ids with O(1) lookups. A cell holds at
// most one pixel; id 0 means empty.
type Occupancy struct {
	side  int
	cells []uint64
}

// NewOccupancy creates an empty side x side grid.
func NewOccupancy(side int) *Occupancy {
	return &Occupancy{
		side:  side,
		cells: make([]uint64, side*side),
	}
}

// Side returns the grid edge length.
func (o *Occupancy) Side() int {
	return o.side
}

// InBounds reports whether (x, y) is on the grid.
func (o *Occupancy) InBounds(x, y int) bool {
	return x >= 0 && x < o.side && y >= 0 && y < o.side
}

// At returns the occupant of (x, y), or 0 for an empty or out-of-bounds cell.
func (o *Occupancy) At(x, y int) uint64 {
	if !o.InBounds(x, y) {
		return 0
	}
	return o.cells[y*o.side+x]
}

// Place claims (x, y) for id. It fails without effect if the cell is out of
// bounds or already occupied.
func (o *Occupancy) Place(id uint64, x, y int) bool {
	if !o.InBounds(x, y) || o.cells[y*o.side+x] != 0 {
		return false
	}
	o.cells[y*o.side+x] = id
	return true
}

// Move transfers id from (fx, fy) to (tx, ty). It fails without effect
// unless the source cell holds id and the target is a free in-bounds cell.
func (o *Occupancy) Move(id uint64, fx, fy, tx, ty int) bool {
	if !o.InBounds(tx, ty) || o.cells[ty*o.side+tx] != 0 {
		return false
	}
	if o.At(fx, fy) != id {
		return false
	}
	o.cells[fy*o.side+fx] = 0
	o.cells[ty*o.side+tx] = id
	return true
}

// Remove clears (x, y) if id occupies it.
func (o *Occupancy) Remove(id uint64, x, y int) bool {
	if o.At(x, y) != id || id == 0 {
		return false
	}
	o.cells[y*o.side+x] = 0
	return true
}

// Count returns the number of occupied cells.
func (o *Occupancy) Count() int {
	n := 0
	for _, id := range o.cells {
		if id != 0 {
			n++
		}
	}
	return n
}
