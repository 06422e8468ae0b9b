package enemy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/vault-crawler/audio"
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/entity"
	"github.com/lixenwraith/vault-crawler/navigation"
	"github.com/lixenwraith/vault-crawler/vmath"
)

func testCtx(playerPos vmath.Vec2) *entity.TickCtx {
	shots := []*entity.Shot{}
	return &entity.TickCtx{
		DT:        constant.DeltaTime,
		ScreenW:   constant.DefaultScreenWidth,
		ScreenH:   constant.DefaultScreenHeight,
		Sounds:    audio.NopSink{},
		Rand:      rand.New(rand.NewSource(1)),
		PlayerPos: playerPos,
		Shots:     &shots,
	}
}

// drainAfterlock ticks the spawn afterlock down so behavior kicks in.
func drainAfterlock(e Enemy, ctx *entity.TickCtx) {
	ticks := int(constant.EnemyAfterlockCooldown/constant.DeltaTime) + 2
	for i := 0; i < ticks; i++ {
		e.Update(ctx)
	}
}

func TestMaskFiresWithLineOfSight(t *testing.T) {
	m := NewMask(vmath.V(100, 100))
	ctx := testCtx(vmath.V(200, 100))
	drainAfterlock(m, ctx)

	m.Act(ctx)
	if len(*ctx.Shots) != 1 {
		t.Fatalf("Expected one shot, got %d", len(*ctx.Shots))
	}
	shot := (*ctx.Shots)[0]
	if shot.Owner != entity.OwnerEnemy {
		t.Error("Expected an enemy-owned shot")
	}
	if shot.Props().Translation.X <= 0 {
		t.Error("Expected shot aimed toward the player")
	}
	if m.State() != entity.StateShoot {
		t.Errorf("Expected Shoot state, got %v", m.State())
	}

	// The shoot timeout gates the next volley.
	m.Act(ctx)
	if len(*ctx.Shots) != 1 {
		t.Errorf("Expected timeout to block a second shot, got %d", len(*ctx.Shots))
	}
}

func TestMaskHoldsFireWhenBlocked(t *testing.T) {
	m := NewMask(vmath.V(100, 100))
	ctx := testCtx(vmath.V(200, 100))
	drainAfterlock(m, ctx)

	// A wall between mask and player.
	ctx.Obstacles = []vmath.Rect{{X: 140, Y: 80, W: 20, H: 40}}
	m.Act(ctx)
	if len(*ctx.Shots) != 0 {
		t.Errorf("Expected no shot through a wall, got %d", len(*ctx.Shots))
	}
}

func TestMaskHoldsFireOutOfRange(t *testing.T) {
	m := NewMask(vmath.V(0, 100))
	far := vmath.V(constant.EnemyShootRange*constant.ShooterRangeFactor+50, 100)
	ctx := testCtx(far)
	drainAfterlock(m, ctx)

	m.Act(ctx)
	if len(*ctx.Shots) != 0 {
		t.Errorf("Expected no shot out of range, got %d", len(*ctx.Shots))
	}
}

func TestMaskSuppressedDuringAfterlock(t *testing.T) {
	m := NewMask(vmath.V(100, 100))
	ctx := testCtx(vmath.V(200, 100))

	m.Act(ctx)
	if len(*ctx.Shots) != 0 {
		t.Errorf("Expected afterlock to suppress shooting, got %d", len(*ctx.Shots))
	}
}

func TestBlueGuyChasesOnSight(t *testing.T) {
	g := NewBlueGuy(vmath.V(100, 100))
	ctx := testCtx(vmath.V(300, 100))
	drainAfterlock(g, ctx)

	g.Act(ctx)
	heading := g.Props().Translation
	if heading.X <= 0 || math.Abs(heading.Y) > 1e-9 {
		t.Errorf("Expected heading straight at the player, got (%v,%v)", heading.X, heading.Y)
	}
}

func TestBlueGuyFollowsFieldWhenBlocked(t *testing.T) {
	g := NewBlueGuy(vmath.V(100, 100))
	playerPos := vmath.V(300, 100)
	ctx := testCtx(playerPos)
	drainAfterlock(g, ctx)

	// Wall blocks direct sight; the distance field routes around it.
	ctx.Obstacles = []vmath.Rect{{X: 180, Y: 0, W: 20, H: 600}}
	grid := make([][]int, constant.RoomHeight)
	for i := range grid {
		grid[i] = make([]int, constant.RoomWidth)
	}
	row, col := navigation.TileOf(playerPos, ctx.ScreenW, ctx.ScreenH)
	ctx.Field = navigation.DistanceField(grid, row, col)

	g.Act(ctx)
	if g.Props().Translation.IsZero() {
		t.Error("Expected field-driven heading when sight is blocked")
	}
}

func TestSlimeRerollsHeading(t *testing.T) {
	s := NewSlime(vmath.V(100, 100))
	ctx := testCtx(vmath.V(300, 300))
	drainAfterlock(s, ctx)

	s.Act(ctx)
	if s.Props().Translation.IsZero() {
		t.Fatal("Expected a heading after the first act")
	}
	if s.rerollCooldown < constant.WandererRerollMin || s.rerollCooldown > constant.WandererRerollMax {
		t.Errorf("Expected reroll cooldown within [%v,%v], got %v",
			constant.WandererRerollMin, constant.WandererRerollMax, s.rerollCooldown)
	}

	// The heading persists until the cooldown re-fires.
	heading := s.Props().Translation
	s.Act(ctx)
	if s.Props().Translation != heading {
		t.Error("Expected heading to persist during the cooldown")
	}
}

func TestBossRadialBurst(t *testing.T) {
	b := NewBoss(vmath.V(400, 300))
	ctx := testCtx(vmath.V(100, 100))
	drainAfterlock(b, ctx)

	b.Act(ctx)
	if len(*ctx.Shots) != 4 {
		t.Fatalf("Expected a four-shot burst, got %d", len(*ctx.Shots))
	}
	first := (*ctx.Shots)[0].Props().Translation
	third := (*ctx.Shots)[2].Props().Translation
	if first.Add(third).Length() > 1e-9 {
		t.Error("Expected opposite shots in the cross pattern")
	}

	// Next burst rotates an eighth turn.
	b.shootTimeout = 0
	b.Act(ctx)
	if len(*ctx.Shots) != 8 {
		t.Fatalf("Expected a second burst, got %d shots", len(*ctx.Shots))
	}
	second := (*ctx.Shots)[4].Props().Translation
	dot := first.Dot(second)
	if math.Abs(dot-math.Cos(math.Pi/4)) > 1e-9 {
		t.Errorf("Expected burst rotated by pi/4, dot %v", dot)
	}
}

func TestBossWanderFollowsField(t *testing.T) {
	b := NewBoss(vmath.V(400, 300))
	playerPos := vmath.V(700, 300)
	ctx := testCtx(playerPos)
	drainAfterlock(b, ctx)

	grid := make([][]int, constant.RoomHeight)
	for i := range grid {
		grid[i] = make([]int, constant.RoomWidth)
	}
	row, col := navigation.TileOf(playerPos, ctx.ScreenW, ctx.ScreenH)
	ctx.Field = navigation.DistanceField(grid, row, col)

	b.Act(ctx)
	heading := b.Props().Translation
	if heading.X <= 0 || math.Abs(heading.Y) > 1e-9 {
		t.Errorf("Expected wander heading toward the tracked player, got (%v,%v)", heading.X, heading.Y)
	}
}

func TestEnemyDamageAndDeath(t *testing.T) {
	g := NewBlueGuy(vmath.V(100, 100))
	ctx := testCtx(vmath.V(300, 100))

	g.Damage(1)
	if g.State() != entity.StateDamaged {
		t.Errorf("Expected Damaged state, got %v", g.State())
	}
	if g.Health() != constant.EnemyHealth-1 {
		t.Errorf("Expected health %v, got %v", constant.EnemyHealth-1, g.Health())
	}

	// No invulnerability window for enemies.
	g.Damage(constant.EnemyHealth)
	g.Update(ctx)
	if g.State() != entity.StateDead {
		t.Errorf("Expected Dead state, got %v", g.State())
	}
}
