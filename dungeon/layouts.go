package dungeon

// Role tags what a room is for. Mob and Boss rooms demote to Empty
// once cleared.
type Role int

const (
	RoleStart Role = iota
	RoleEmpty
	RoleMob
	RoleBoss
	RoleItem
)

func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleEmpty:
		return "empty"
	case RoleMob:
		return "mob"
	case RoleBoss:
		return "boss"
	case RoleItem:
		return "item"
	}
	return "unknown"
}

// Room templates, 15 columns by 9 rows. Characters: '#' wall, '.'
// stone, 'v' spikes, 'd' door slot (degrades to wall without a
// neighboring room), 'h' hatch, 'p' pedestal, 'm'/'b'/'s'/'B' enemy
// spawns (mask, blue guy, slime, boss). Spaces are open floor.
var (
	startLayouts = [][]string{
		{
			"#######d#######",
			"#             #",
			"#             #",
			"#             #",
			"d             d",
			"#             #",
			"#             #",
			"#             #",
			"#######d#######",
		},
	}

	emptyLayouts = [][]string{
		{
			"#######d#######",
			"#             #",
			"#             #",
			"#             #",
			"d             d",
			"#             #",
			"#             #",
			"#             #",
			"#######d#######",
		},
		{
			"#######d#######",
			"#             #",
			"#   .     .   #",
			"#             #",
			"d             d",
			"#             #",
			"#   .     .   #",
			"#             #",
			"#######d#######",
		},
		{
			"#######d#######",
			"#             #",
			"#             #",
			"#     vvv     #",
			"d             d",
			"#     vvv     #",
			"#             #",
			"#             #",
			"#######d#######",
		},
	}

	mobLayouts = [][]string{
		{
			"#######d#######",
			"#             #",
			"#  ..     ..  #",
			"#   s     m   #",
			"d      b      d",
			"#   m     s   #",
			"#  ..     ..  #",
			"#             #",
			"#######d#######",
		},
		{
			"#######d#######",
			"#  vv     vv  #",
			"#      m      #",
			"#   .     .   #",
			"d   .  s  .   d",
			"#   .     .   #",
			"#      m      #",
			"#  vv     vv  #",
			"#######d#######",
		},
		{
			"#######d#######",
			"#             #",
			"#  m   .   s  #",
			"#      .      #",
			"d  ... b ...  d",
			"#      .      #",
			"#  s   .   m  #",
			"#             #",
			"#######d#######",
		},
	}

	bossLayouts = [][]string{
		{
			"#######d#######",
			"#             #",
			"#      h      #",
			"#             #",
			"d      B      d",
			"#             #",
			"#  v       v  #",
			"#             #",
			"#######d#######",
		},
	}

	itemLayouts = [][]string{
		{
			"#######d#######",
			"#             #",
			"#    .   .    #",
			"#             #",
			"d      p      d",
			"#             #",
			"#    .   .    #",
			"#             #",
			"#######d#######",
		},
	}
)

func layoutsFor(role Role) [][]string {
	switch role {
	case RoleStart:
		return startLayouts
	case RoleMob:
		return mobLayouts
	case RoleBoss:
		return bossLayouts
	case RoleItem:
		return itemLayouts
	default:
		return emptyLayouts
	}
}
