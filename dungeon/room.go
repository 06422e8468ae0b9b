package dungeon

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vault-crawler/audio"
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/enemy"
	"github.com/lixenwraith/vault-crawler/entity"
	"github.com/lixenwraith/vault-crawler/navigation"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// RoomState is the fog-of-war discovery state.
type RoomState int

const (
	RoomUndiscovered RoomState = iota
	RoomDiscovered
	RoomCleared
)

// Room is one cell of the dungeon graph: a fixed 15x9 tile layout with
// its obstacles and the live actors inside it. Obstacles are fixed at
// creation; Enemies, Shots and Drops churn every tick.
type Room struct {
	Role   Role
	State  RoomState
	Coords GridCoords

	// Grid is the occupancy grid used for pathfinding. 0 means free,
	// navigation.Blocked means permanently impassable.
	Grid [][]int

	// Doors indexes into Obstacles, in North, West, East, South order.
	Doors     []int
	Obstacles []*Obstacle

	Enemies []enemy.Enemy
	Shots   []*entity.Shot
	Drops   []*entity.Collectable
}

// NewRoom parses a random layout template for the role into a Room.
// neighbors holds the occupied adjacent grid slots; a 'd' tile facing
// an unoccupied slot degrades to a plain wall.
func NewRoom(role Role, coords GridCoords, neighbors map[Direction]GridCoords, sw, sh float64, rng *rand.Rand) *Room {
	templates := layoutsFor(role)
	layout := templates[rng.Intn(len(templates))]

	r := &Room{
		Role:   role,
		State:  RoomUndiscovered,
		Coords: coords,
		Grid:   make([][]int, constant.RoomHeight),
	}
	for i := range r.Grid {
		r.Grid[i] = make([]int, constant.RoomWidth)
	}

	for i := 0; i < constant.RoomHeight; i++ {
		for j := 0; j < constant.RoomWidth; j++ {
			ch := byte(' ')
			if i < len(layout) && j < len(layout[i]) {
				ch = layout[i][j]
			}
			pos := navigation.TileCenter(i, j, sw, sh)
			switch ch {
			case ' ':
			case '#':
				r.addObstacle(&Obstacle{Kind: KindWall, Pos: pos, Scale: wallScale()}, i, j, true)
			case '.':
				r.addObstacle(&Obstacle{Kind: KindStone, Pos: pos, Scale: wallScale()}, i, j, true)
			case 'v':
				// Spikes hurt but do not block movement or pathfinding.
				r.addObstacle(&Obstacle{Kind: KindSpikes, Pos: pos, Scale: wallScale()}, i, j, false)
			case 'h':
				r.addObstacle(&Obstacle{Kind: KindHatch, Pos: pos, Scale: wallScale()}, i, j, true)
			case 'p':
				r.addObstacle(&Obstacle{
					Kind:  KindPedestal,
					Pos:   pos,
					Scale: wallScale(),
					Held:  entity.RandomItem(rng),
				}, i, j, true)
			case 'd':
				dir := doorDirection(i, j)
				target, connected := neighbors[dir]
				if !connected {
					r.addObstacle(&Obstacle{Kind: KindWall, Pos: pos, Scale: wallScale()}, i, j, true)
					break
				}
				r.Doors = append(r.Doors, len(r.Obstacles))
				r.addObstacle(&Obstacle{
					Kind:       KindDoor,
					Pos:        pos,
					Scale:      wallScale(),
					Facing:     dir,
					ConnectsTo: target,
				}, i, j, true)
			case 'm':
				r.Enemies = append(r.Enemies, enemy.NewMask(pos))
			case 'b':
				r.Enemies = append(r.Enemies, enemy.NewBlueGuy(pos))
			case 's':
				r.Enemies = append(r.Enemies, enemy.NewSlime(pos))
			case 'B':
				r.Enemies = append(r.Enemies, enemy.NewBoss(pos))
			default:
				logrus.WithFields(logrus.Fields{
					"char": string(ch),
					"row":  i,
					"col":  j,
				}).Warn("unknown layout character, treating as floor")
			}
		}
	}

	// Rooms without enemies start unlocked.
	if len(r.Enemies) == 0 {
		r.setDoorsOpen(true)
	}
	return r
}

func wallScale() vmath.Vec2 {
	return vmath.V(constant.WallScale, constant.WallScale)
}

// doorDirection derives a door tile's facing from its edge position.
// Row-major parsing visits the north door first, then west (lower
// column) before east, then south, which fixes the door index order.
func doorDirection(row, col int) Direction {
	switch {
	case row == 0:
		return North
	case col == 0:
		return West
	case col == constant.RoomWidth-1:
		return East
	default:
		return South
	}
}

func (r *Room) addObstacle(o *Obstacle, row, col int, blocks bool) {
	r.Obstacles = append(r.Obstacles, o)
	if blocks {
		r.Grid[row][col] = navigation.Blocked
	}
}

func (r *Room) setDoorsOpen(open bool) {
	for _, idx := range r.Doors {
		r.Obstacles[idx].Open = open
	}
}

// Hatch returns the room's hatch obstacle, or nil.
func (r *Room) Hatch() *Obstacle {
	for _, o := range r.Obstacles {
		if o.Kind == KindHatch {
			return o
		}
	}
	return nil
}

// TargetDistanceGrid builds the BFS distance field toward a world
// position, for enemies pathfinding around obstacles.
func (r *Room) TargetDistanceGrid(target vmath.Vec2, sw, sh float64) [][]int {
	row, col := navigation.TileOf(target, sw, sh)
	return navigation.DistanceField(r.Grid, row, col)
}

// SightBlockers returns the bounding boxes obstructing line of sight,
// reused by every raycast this tick.
func (r *Room) SightBlockers(sw, sh float64) []vmath.Rect {
	rects := make([]vmath.Rect, 0, len(r.Obstacles))
	for _, o := range r.Obstacles {
		if o.BlocksSight() {
			rects = append(rects, o.BBox(sw, sh))
		}
	}
	return rects
}

// Update advances the room one tick: shots fly, enemies act then
// update, drops settle, finished actors are pruned, and a fully
// cleared mob or boss room unlocks and rewards the player.
func (r *Room) Update(ctx *entity.TickCtx, p *entity.Player) {
	ctx.Obstacles = r.SightBlockers(ctx.ScreenW, ctx.ScreenH)
	ctx.Field = r.TargetDistanceGrid(ctx.PlayerPos, ctx.ScreenW, ctx.ScreenH)
	ctx.Shots = &r.Shots

	for _, s := range r.Shots {
		s.Update(ctx)
	}
	for _, e := range r.Enemies {
		e.Act(ctx)
		e.Update(ctx)
	}
	for _, d := range r.Drops {
		d.Update(ctx)
	}

	r.prune(ctx)

	if len(r.Enemies) == 0 && (r.Role == RoleMob || r.Role == RoleBoss) {
		r.clear(ctx, p)
	} else if len(r.Enemies) > 0 {
		// Re-entering an unfinished room locks it again.
		r.setDoorsOpen(false)
	}
}

func (r *Room) prune(ctx *entity.TickCtx) {
	live := r.Enemies[:0]
	for _, e := range r.Enemies {
		if e.State() != entity.StateDead {
			live = append(live, e)
		}
	}
	r.Enemies = live

	shots := r.Shots[:0]
	for _, s := range r.Shots {
		if s.Expired() {
			ctx.Sounds.Play(audio.CueShotPop)
			continue
		}
		shots = append(shots, s)
	}
	r.Shots = shots

	drops := r.Drops[:0]
	for _, d := range r.Drops {
		if !d.Consumed() {
			drops = append(drops, d)
		}
	}
	r.Drops = drops
}

// clear handles the Mob/Boss -> Empty transition: unlock doors and any
// hatch, maybe spawn a reward drop, and shave a second off the
// player's active item cooldown.
func (r *Room) clear(ctx *entity.TickCtx, p *entity.Player) {
	if ctx.Rand.Float64() < constant.DropChance {
		if pos, ok := r.openTileNearCenter(ctx.ScreenW, ctx.ScreenH); ok {
			r.Drops = append(r.Drops, entity.RandomCollectable(pos, ctx.Rand))
		}
	}
	r.Role = RoleEmpty
	r.State = RoomCleared
	r.setDoorsOpen(true)
	if h := r.Hatch(); h != nil {
		h.Open = true
	}
	if p != nil && p.Held != nil && p.Held.IsActive() && p.Held.Cooldown > 0 {
		p.Held.Cooldown--
		if p.Held.Cooldown < 0 {
			p.Held.Cooldown = 0
		}
	}
	ctx.Sounds.Play(audio.CueDoor)
	logrus.WithFields(logrus.Fields{
		"row": r.Coords.Row,
		"col": r.Coords.Col,
	}).Debug("room cleared")
}

// openTileNearCenter finds the free tile closest to the room center by
// BFS over the occupancy grid.
func (r *Room) openTileNearCenter(sw, sh float64) (vmath.Vec2, bool) {
	type cell struct{ row, col int }
	start := cell{constant.RoomHeight / 2, constant.RoomWidth / 2}
	visited := make(map[cell]bool, constant.RoomHeight*constant.RoomWidth)
	queue := []cell{start}
	visited[start] = true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if r.Grid[c.row][c.col] == 0 {
			return navigation.TileCenter(c.row, c.col, sw, sh), true
		}
		for _, d := range [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}} {
			n := cell{c.row + d[0], c.col + d[1]}
			if !navigation.InBounds(n.row, n.col) || visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return vmath.Vec2{}, false
}
