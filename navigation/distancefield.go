// Package navigation provides the grid distance field enemies follow
// when they have no line of sight. It is a BFS flood fill, not A*: each
// passable tile holds a value monotonically decreasing with tile-steps
// from the target, and walkers simply step uphill.
package navigation

import "math"

// Blocked marks a permanently impassable cell in an occupancy grid.
// It is very negative so blocked cells always lose an uphill comparison.
const Blocked = math.MinInt32

// Cardinal neighbor offsets in row, col order: north, west, east, south.
var cardinals = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// DistanceField flood-fills a copy of grid from the target tile.
// The target seeds at math.MaxInt32 and BFS expansion assigns each
// child parent-1, only ever entering cells whose value is exactly 0
// (unvisited and passable). Blocked cells keep their sentinel. An
// out-of-bounds target returns the grid unchanged.
func DistanceField(grid [][]int, row, col int) [][]int {
	if row < 0 || row >= len(grid) || len(grid) == 0 || col < 0 || col >= len(grid[0]) {
		return grid
	}

	field := make([][]int, len(grid))
	for i := range grid {
		field[i] = make([]int, len(grid[i]))
		copy(field[i], grid[i])
	}

	if field[row][col] != 0 {
		return field
	}
	field[row][col] = math.MaxInt32

	queue := [][2]int{{row, col}}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		for _, d := range cardinals {
			ni, nj := cell[0]+d[0], cell[1]+d[1]
			if ni < 0 || ni >= len(field) || nj < 0 || nj >= len(field[ni]) {
				continue
			}
			if field[ni][nj] != 0 {
				continue
			}
			field[ni][nj] = field[cell[0]][cell[1]] - 1
			queue = append(queue, [2]int{ni, nj})
		}
	}

	return field
}

// UphillStep returns the cardinal neighbor of (row, col) with the
// greatest field value strictly above the current cell's, or false when
// every neighbor is level or downhill (the walker is at the target or
// boxed in).
func UphillStep(field [][]int, row, col int) (int, int, bool) {
	if row < 0 || row >= len(field) || len(field) == 0 || col < 0 || col >= len(field[0]) {
		return row, col, false
	}

	best := field[row][col]
	bi, bj, found := row, col, false

	for _, d := range cardinals {
		ni, nj := row+d[0], col+d[1]
		if ni < 0 || ni >= len(field) || nj < 0 || nj >= len(field[ni]) {
			continue
		}
		if field[ni][nj] > best {
			best = field[ni][nj]
			bi, bj, found = ni, nj, true
		}
	}

	return bi, bj, found
}
