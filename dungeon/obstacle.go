package dungeon

import (
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/entity"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// Direction is a cardinal direction in grid space. The declaration
// order fixes door numbering within a room: doors are visited and
// indexed North, West, East, South.
type Direction int

const (
	North Direction = iota
	West
	East
	South
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case West:
		return "west"
	case East:
		return "east"
	case South:
		return "south"
	}
	return "unknown"
}

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case West:
		return East
	case East:
		return West
	default:
		return North
	}
}

// Offset returns the grid-coordinate delta for the direction. Rows
// grow southward.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case West:
		return 0, -1
	case East:
		return 0, 1
	default:
		return 1, 0
	}
}

// Directions lists the cardinals in door-numbering order.
var Directions = [4]Direction{North, West, East, South}

// GridCoords addresses a slot in the dungeon's room grid.
type GridCoords struct {
	Row, Col int
}

// Neighbor returns the adjacent slot in the given direction.
func (c GridCoords) Neighbor(d Direction) GridCoords {
	dr, dc := d.Offset()
	return GridCoords{Row: c.Row + dr, Col: c.Col + dc}
}

// ObstacleKind is a closed enumeration of everything immobile a room
// can contain.
type ObstacleKind int

const (
	KindWall ObstacleKind = iota
	KindStone
	KindDoor
	KindSpikes
	KindHatch
	KindPedestal
)

func (k ObstacleKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindStone:
		return "stone"
	case KindDoor:
		return "door"
	case KindSpikes:
		return "spikes"
	case KindHatch:
		return "hatch"
	case KindPedestal:
		return "pedestal"
	}
	return "unknown"
}

// Obstacle is an immobile room fixture. Facing, Open and ConnectsTo
// are meaningful only for doors, Open alone for hatches, and Held only
// for pedestals.
type Obstacle struct {
	Kind       ObstacleKind
	Pos        vmath.Vec2
	Scale      vmath.Vec2
	Facing     Direction
	Open       bool
	ConnectsTo GridCoords
	Held       *entity.Item
}

// BBox returns the obstacle's world-space bounding box, sized from the
// room tile dimensions like actor bounding boxes are.
func (o *Obstacle) BBox(sw, sh float64) vmath.Rect {
	w := sw / constant.RoomWidth * o.Scale.X
	h := sh / constant.RoomHeight * o.Scale.Y
	return vmath.Rect{X: o.Pos.X - w/2, Y: o.Pos.Y - h/2, W: w, H: h}
}

// BlocksSight reports whether a shooter's line-of-sight raycast should
// treat this obstacle as solid. Spikes sit below eye level and open
// doors and hatches are holes.
func (o *Obstacle) BlocksSight() bool {
	switch o.Kind {
	case KindSpikes:
		return false
	case KindDoor, KindHatch:
		return !o.Open
	}
	return true
}

// BlocksShots reports whether a shot despawns against this obstacle.
// Hatches are floor openings and spikes are floor hazards, so shots
// pass over both.
func (o *Obstacle) BlocksShots() bool {
	switch o.Kind {
	case KindSpikes, KindHatch:
		return false
	case KindDoor:
		return !o.Open
	}
	return true
}
