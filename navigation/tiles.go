package navigation

import (
	"math"

	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// TileOf converts a world position to room tile coordinates (row, col).
// Callers must bounds-check; positions outside the room map to indices
// outside [0,RoomHeight) x [0,RoomWidth).
func TileOf(pos vmath.Vec2, sw, sh float64) (row, col int) {
	row = int(math.Floor(pos.Y / sh * constant.RoomHeight))
	col = int(math.Floor(pos.X / sw * constant.RoomWidth))
	return row, col
}

// TileCenter converts room tile coordinates to the tile's world-space
// center point.
func TileCenter(row, col int, sw, sh float64) vmath.Vec2 {
	return vmath.V(
		(float64(col)+0.5)*sw/constant.RoomWidth,
		(float64(row)+0.5)*sh/constant.RoomHeight,
	)
}

// InBounds reports whether the tile lies inside the room grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < constant.RoomHeight && col >= 0 && col < constant.RoomWidth
}
