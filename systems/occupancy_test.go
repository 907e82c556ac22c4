package systems

import "testing"

func TestOccupancyPlace(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"center", 2, 2, true},
		{"origin", 0, 0, true},
		{"far corner", 4, 4, true},
		{"negative x", -1, 2, false},
		{"negative y", 2, -1, false},
		{"past right edge", 5, 2, false},
		{"past bottom edge", 2, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOccupancy(5)
			if got := o.Place(7, tt.x, tt.y); got != tt.want {
				t.Errorf("Place(7, %d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if tt.want && o.At(tt.x, tt.y) != 7 {
				t.Errorf("At(%d, %d) = %d after place, want 7", tt.x, tt.y, o.At(tt.x, tt.y))
			}
		})
	}
}

func TestOccupancyPlaceCollision(t *testing.T) {
	o := NewOccupancy(3)
	if !o.Place(1, 1, 1) {
		t.Fatal("first Place() failed")
	}
	if o.Place(2, 1, 1) {
		t.Error("Place() onto an occupied cell succeeded")
	}
	if got := o.At(1, 1); got != 1 {
		t.Errorf("At(1,1) = %d after collision, want 1", got)
	}
	if got := o.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

func TestOccupancyMove(t *testing.T) {
	o := NewOccupancy(3)
	o.Place(1, 0, 0)
	o.Place(2, 2, 2)

	if !o.Move(1, 0, 0, 1, 0) {
		t.Fatal("Move() to a free cell failed")
	}
	if o.At(0, 0) != 0 || o.At(1, 0) != 1 {
		t.Errorf("after move: At(0,0) = %d, At(1,0) = %d, want 0 and 1", o.At(0, 0), o.At(1, 0))
	}

	if o.Move(1, 1, 0, 2, 2) {
		t.Error("Move() onto an occupied cell succeeded")
	}
	if o.Move(1, 1, 0, 3, 0) {
		t.Error("Move() out of bounds succeeded")
	}
	if o.Move(2, 1, 0, 0, 1) {
		t.Error("Move() with wrong occupant id succeeded")
	}
	if o.At(1, 0) != 1 || o.At(2, 2) != 2 {
		t.Error("failed moves must not disturb the grid")
	}
}

func TestOccupancyRemove(t *testing.T) {
	o := NewOccupancy(3)
	o.Place(5, 1, 2)

	if o.Remove(4, 1, 2) {
		t.Error("Remove() with wrong id succeeded")
	}
	if !o.Remove(5, 1, 2) {
		t.Error("Remove() with matching id failed")
	}
	if got := o.At(1, 2); got != 0 {
		t.Errorf("At(1,2) = %d after remove, want 0", got)
	}
	if o.Remove(5, 1, 2) {
		t.Error("second Remove() succeeded")
	}
	if o.Remove(0, 0, 0) {
		t.Error("Remove(0) treated the empty marker as an occupant")
	}
}

func TestOccupancyAtOutOfBounds(t *testing.T) {
	o := NewOccupancy(2)
	o.Place(9, 0, 0)
	coords := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-5, -5}}
	for _, c := range coords {
		if got := o.At(c[0], c[1]); got != 0 {
			t.Errorf("At(%d, %d) = %d, want 0", c[0], c[1], got)
		}
	}
}
