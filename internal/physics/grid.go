package physics

import "math"

// SpatialGrid is a uniform hashed grid for broad-phase queries in an unbounded world.
// Objects are inserted by position and index, then nearby objects can be queried
// via a 3x3 neighborhood lookup.
//
// Cell size must be >= the maximum interaction distance between any two
// objects so that all candidates are found within the 3x3 neighborhood.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cells       map[cellKey][]int
}

type cellKey struct {
	col, row int
}

// NewSpatialGrid creates an empty grid with the given cell size.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cells:       make(map[cellKey][]int),
	}
}

// Clear removes all items from the grid. Cells that were used since the last
// clear keep their slices for reuse; cells left empty are dropped so the map
// does not grow as the populated area drifts.
func (g *SpatialGrid) Clear() {
	for k, items := range g.cells {
		if len(items) == 0 {
			delete(g.cells, k)
			continue
		}
		g.cells[k] = items[:0]
	}
}

// Insert adds an item (identified by index) at the given world position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	k := g.posToCell(x, y)
	g.cells[k] = append(g.cells[k], index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around the given world position.
// If fn returns true, iteration stops early (useful for "find first" queries).
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	center := g.posToCell(x, y)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			for _, itemIdx := range g.cells[cellKey{center.col + dc, center.row + dr}] {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

func (g *SpatialGrid) posToCell(x, y float64) cellKey {
	return cellKey{
		col: int(math.Floor(x * g.invCellSize)),
		row: int(math.Floor(y * g.invCellSize)),
	}
}
