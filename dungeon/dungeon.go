// Package dungeon builds and owns the per-level room graph: an 8x9
// grid of optional rooms grown by randomized BFS from a fixed start
// slot, each room parsed from an ASCII layout template.
package dungeon

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vault-crawler/constant"
)

var (
	// ErrOutOfBounds reports a grid coordinate outside the 8x9 grid.
	ErrOutOfBounds = errors.New("dungeon: coordinates out of bounds")
	// ErrEmptySlot reports a lookup of a grid slot holding no room.
	ErrEmptySlot = errors.New("dungeon: empty room slot")
	// ErrGenerationFailed reports that the retry budget ran out before
	// a valid room graph was produced.
	ErrGenerationFailed = errors.New("dungeon: generation attempts exhausted")
)

// StartCoords is the fixed slot every dungeon grows from.
var StartCoords = GridCoords{Row: 3, Col: 5}

// Dungeon is one level's room graph.
type Dungeon struct {
	Level int
	grid  [constant.DungeonGridRows][constant.DungeonGridCols]*Room
}

// RoomAt returns the room at the coordinates. Empty slots are a normal
// part of the graph, so both failure modes come back as errors rather
// than panics.
func (d *Dungeon) RoomAt(c GridCoords) (*Room, error) {
	if c.Row < 0 || c.Row >= constant.DungeonGridRows || c.Col < 0 || c.Col >= constant.DungeonGridCols {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}
	r := d.grid[c.Row][c.Col]
	if r == nil {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrEmptySlot, c.Row, c.Col)
	}
	return r, nil
}

// Rooms returns every present room.
func (d *Dungeon) Rooms() []*Room {
	var out []*Room
	for i := range d.grid {
		for j := range d.grid[i] {
			if d.grid[i][j] != nil {
				out = append(out, d.grid[i][j])
			}
		}
	}
	return out
}

// UpdateRoomsState advances fog of war: the current room and its
// existing cardinal neighbors become Discovered unless already past
// that state.
func (d *Dungeon) UpdateRoomsState(current GridCoords) {
	reveal := func(c GridCoords) {
		r, err := d.RoomAt(c)
		if err != nil {
			return
		}
		if r.State == RoomUndiscovered {
			r.State = RoomDiscovered
		}
	}
	reveal(current)
	for _, dir := range Directions {
		reveal(current.Neighbor(dir))
	}
}

type genNode struct {
	coords GridCoords
	depth  int
}

// Generate builds a level's dungeon. The room-count target and the
// per-neighbor admission draws are rejection-sampled: an attempt that
// under-produces rooms, fails connectivity, or lacks two leaf rooms is
// discarded and retried, up to a hard cap.
func Generate(level int, sw, sh float64, rng *rand.Rand) (*Dungeon, error) {
	for attempt := 1; attempt <= constant.MaxGenerationAttempts; attempt++ {
		target := rng.Intn(2) + 5 + level*2
		admitted, ok := growGrid(target, rng)
		if !ok {
			continue
		}
		if !connected(admitted) {
			continue
		}
		d, err := assignAndBuild(level, admitted, sw, sh, rng)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"level":   level,
				"attempt": attempt,
			}).WithError(err).Debug("discarding generated grid")
			continue
		}
		logrus.WithFields(logrus.Fields{
			"level":    level,
			"rooms":    len(admitted),
			"attempts": attempt,
		}).Info("dungeon generated")
		return d, nil
	}
	return nil, fmt.Errorf("%w: level %d after %d attempts", ErrGenerationFailed, level, constant.MaxGenerationAttempts)
}

func inGrid(c GridCoords) bool {
	return c.Row >= 0 && c.Row < constant.DungeonGridRows &&
		c.Col >= 0 && c.Col < constant.DungeonGridCols
}

// growGrid runs the randomized BFS expansion. Each popped frontier
// coordinate flips a coin per cardinal neighbor; heads admits the
// neighbor if the slot is free, the budget allows it, and admission
// would leave the neighbor with at most one occupied cardinal
// neighbor. Returns false when fewer rooms than the target were
// produced.
func growGrid(target int, rng *rand.Rand) ([]genNode, bool) {
	occupied := make(map[GridCoords]bool, target)
	occupied[StartCoords] = true
	admitted := []genNode{{coords: StartCoords}}
	queue := []genNode{{coords: StartCoords}}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, dir := range Directions {
			nb := n.coords.Neighbor(dir)
			if rng.Float64() >= 0.5 {
				continue
			}
			if !inGrid(nb) || occupied[nb] {
				continue
			}
			if len(admitted) >= target {
				continue
			}
			if occupiedNeighbors(occupied, nb) > 1 {
				continue
			}
			occupied[nb] = true
			child := genNode{coords: nb, depth: n.depth + 1}
			admitted = append(admitted, child)
			queue = append(queue, child)
		}
	}
	return admitted, len(admitted) >= target
}

func occupiedNeighbors(occupied map[GridCoords]bool, c GridCoords) int {
	n := 0
	for _, dir := range Directions {
		if occupied[c.Neighbor(dir)] {
			n++
		}
	}
	return n
}

// connected verifies every admitted coordinate is reachable from the
// start via admitted-cell adjacency.
func connected(admitted []genNode) bool {
	occupied := make(map[GridCoords]bool, len(admitted))
	for _, n := range admitted {
		occupied[n.coords] = true
	}
	visited := map[GridCoords]bool{StartCoords: true}
	queue := []GridCoords{StartCoords}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, dir := range Directions {
			nb := c.Neighbor(dir)
			if occupied[nb] && !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(visited) == len(admitted)
}

// assignAndBuild sorts the admitted coordinates so far-from-start
// dead ends come first, hands the first two the Item and Boss roles,
// rolls Mob-or-Empty for the rest, and parses every room.
func assignAndBuild(level int, admitted []genNode, sw, sh float64, rng *rand.Rand) (*Dungeon, error) {
	occupied := make(map[GridCoords]bool, len(admitted))
	for _, n := range admitted {
		occupied[n.coords] = true
	}

	rest := make([]genNode, 0, len(admitted)-1)
	for _, n := range admitted {
		if n.coords != StartCoords {
			rest = append(rest, n)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		if rest[i].depth != rest[j].depth {
			return rest[i].depth > rest[j].depth
		}
		return occupiedNeighbors(occupied, rest[i].coords) < occupiedNeighbors(occupied, rest[j].coords)
	})

	if len(rest) < 2 ||
		occupiedNeighbors(occupied, rest[0].coords) != 1 ||
		occupiedNeighbors(occupied, rest[1].coords) != 1 {
		return nil, errors.New("fewer than two leaf rooms")
	}

	roles := map[GridCoords]Role{
		StartCoords:    RoleStart,
		rest[0].coords: RoleItem,
		rest[1].coords: RoleBoss,
	}
	for _, n := range rest[2:] {
		if rng.Float64() < constant.MobRoomChance {
			roles[n.coords] = RoleMob
		} else {
			roles[n.coords] = RoleEmpty
		}
	}

	d := &Dungeon{Level: level}
	for _, n := range admitted {
		neighbors := make(map[Direction]GridCoords, 4)
		for _, dir := range Directions {
			if nb := n.coords.Neighbor(dir); occupied[nb] {
				neighbors[dir] = nb
			}
		}
		d.grid[n.coords.Row][n.coords.Col] = NewRoom(roles[n.coords], n.coords, neighbors, sw, sh, rng)
	}
	return d, nil
}
