package constant

// World tick rate. The simulation runs a fixed timestep; the delta passed
// to every update is 1/DesiredFPS regardless of wall-clock jitter.
const (
	DesiredFPS = 60
	DeltaTime  = 1.0 / DesiredFPS
)

// Default normalized world dimensions. Rooms are spatially divided
// against these; the renderer maps them to whatever cells it has.
const (
	DefaultScreenWidth  = 800.0
	DefaultScreenHeight = 600.0
)

// Room tile grid dimensions, fixed for every layout template.
const (
	RoomWidth  = 15
	RoomHeight = 9
)

// Dungeon graph dimensions and generation bounds.
const (
	DungeonGridRows = 8
	DungeonGridCols = 9

	// MaxGenerationAttempts caps the rejection-sampling retry loop.
	// Exhaustion is a fatal configuration error, not a hang.
	MaxGenerationAttempts = 100

	// MobRoomChance is the probability a non-special room spawns enemies.
	MobRoomChance = 0.8

	// DropChance is the probability a cleared room rewards a collectable.
	DropChance = 0.8
)

// Player tuning.
const (
	PlayerScale             = 0.8
	PlayerSpeed             = 3.5
	PlayerHealth            = 5.0
	PlayerShotDamage        = 1.0
	PlayerShootRate         = 2.5
	PlayerShootRange        = 400.0
	PlayerDamagedCooldown   = 1.0
	PlayerAfterlockCooldown = 0.5

	PlayerMaxSpeed     = 7.0
	PlayerMaxShootRate = 5.0
	PlayerMaxDamage    = 3.0
)

// Enemy tuning.
const (
	EnemyScale      = 0.8
	EnemyHealth     = 3.0
	EnemySpeed      = 2.0
	EnemyDamage     = 0.5
	EnemyShootRate  = 0.5
	EnemyShootRange = 400.0

	EnemyAfterlockCooldown = 1.0

	// ShooterRangeFactor gates the shooter's attack to a fraction of its
	// configured shot range.
	ShooterRangeFactor = 0.8

	WandererRerollMin = 1.0
	WandererRerollMax = 3.0

	BossScale     = 2.0
	BossHealth    = 20.0
	BossShootRate = 0.8
	BossSpeed     = 1.5
)

// Shot tuning.
const (
	ShotScale     = 0.4
	ShotSpeed     = 5.0
	ShotAccel     = 50.0
	ShotKnockback = 2.5
)

// Obstacle tuning.
const (
	WallScale   = 1.0
	SpikeDamage = 0.5
)

// Items and drops.
const (
	CollectableScale = 0.5
	ItemCooldown     = 5.0
	ItemHealAmount   = 1.0
	ItemMaxHealthUp  = 1.0
)

// AnimationCooldown is how long the transient Shoot/Damaged states are
// displayed before reverting to Base.
const AnimationCooldown = 0.5

// Velocity lerp parameters per entity family: decay pulls velocity
// toward zero, accel pulls it toward the heading.
const (
	PlayerLerpDecay = 10.0
	PlayerLerpAccel = 50.0

	ChaserLerpDecay = 10.0
	ChaserLerpAccel = 20.0

	WandererLerpDecay = 10.0
	WandererLerpAccel = 10.0

	ShooterLerpDecay = 5.0
	ShooterLerpAccel = 0.0

	DropLerpDecay = 2.0
	DropLerpAccel = 0.0
)
