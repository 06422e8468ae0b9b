package navigation

import (
	"math"
	"testing"

	"github.com/lixenwraith/vault-crawler/constant"
)

func emptyGrid() [][]int {
	g := make([][]int, constant.RoomHeight)
	for i := range g {
		g[i] = make([]int, constant.RoomWidth)
	}
	return g
}

func TestDistanceFieldSeedsTarget(t *testing.T) {
	field := DistanceField(emptyGrid(), 4, 7)
	if field[4][7] != math.MaxInt32 {
		t.Errorf("Expected target tile seeded with MaxInt32, got %d", field[4][7])
	}
	if field[4][6] != math.MaxInt32-1 {
		t.Errorf("Expected neighbor one below seed, got %d", field[4][6])
	}
}

func TestDistanceFieldOutOfBounds(t *testing.T) {
	grid := emptyGrid()
	grid[2][2] = Blocked
	field := DistanceField(grid, -1, 50)
	for i := range grid {
		for j := range grid[i] {
			if field[i][j] != grid[i][j] {
				t.Fatalf("Expected grid unchanged at (%d,%d)", i, j)
			}
		}
	}
}

func TestDistanceFieldSkipsBlocked(t *testing.T) {
	grid := emptyGrid()
	grid[4][6] = Blocked
	field := DistanceField(grid, 4, 7)
	if field[4][6] != Blocked {
		t.Errorf("Expected blocked tile to keep its sentinel, got %d", field[4][6])
	}
	// The flood reaches around the block.
	if field[4][5] == 0 {
		t.Error("Expected flood to route around the blocked tile")
	}
}

// Walking strictly uphill from a far corner must terminate at the
// seeded target tile.
func TestDistanceFieldMonotonicWalk(t *testing.T) {
	target := [2]int{constant.RoomHeight / 2, constant.RoomWidth / 2}
	field := DistanceField(emptyGrid(), target[0], target[1])

	row, col := 1, 1
	for steps := 0; steps < constant.RoomWidth*constant.RoomHeight; steps++ {
		if row == target[0] && col == target[1] {
			return
		}
		nr, nc, ok := UphillStep(field, row, col)
		if !ok {
			t.Fatalf("Expected an uphill neighbor at (%d,%d)", row, col)
		}
		if field[nr][nc] <= field[row][col] {
			t.Fatalf("Expected strictly increasing values, %d -> %d", field[row][col], field[nr][nc])
		}
		row, col = nr, nc
	}
	t.Fatalf("Walk did not reach the target, stuck at (%d,%d)", row, col)
}

func TestTileRoundTrip(t *testing.T) {
	for i := 0; i < constant.RoomHeight; i++ {
		for j := 0; j < constant.RoomWidth; j++ {
			pos := TileCenter(i, j, 800, 600)
			row, col := TileOf(pos, 800, 600)
			if row != i || col != j {
				t.Errorf("Expected tile (%d,%d), got (%d,%d)", i, j, row, col)
			}
		}
	}
}
