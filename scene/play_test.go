package scene

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/vault-crawler/audio"
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/dungeon"
	"github.com/lixenwraith/vault-crawler/input"
	"github.com/lixenwraith/vault-crawler/vmath"
)

const (
	testW = constant.DefaultScreenWidth
	testH = constant.DefaultScreenHeight
)

func newTestPlay(t *testing.T, seed int64) *Play {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	p, err := NewPlay(testW, testH, rng, audio.NopSink{})
	if err != nil {
		t.Fatalf("NewPlay failed: %v", err)
	}
	return p
}

func TestNewPlayStartsAtCenter(t *testing.T) {
	p := newTestPlay(t, 42)

	if p.Current != dungeon.StartCoords {
		t.Errorf("Expected start coords, got (%d,%d)", p.Current.Row, p.Current.Col)
	}
	pos := p.Player.Props().Pos
	if pos.X != testW/2 || pos.Y != testH/2 {
		t.Errorf("Expected player centered, got (%v,%v)", pos.X, pos.Y)
	}
	if p.Room() == nil {
		t.Fatal("Expected the start room to exist")
	}
	if p.Room().Role != dungeon.RoleStart {
		t.Errorf("Expected start role, got %v", p.Room().Role)
	}
}

func TestFogRevealsOnTick(t *testing.T) {
	p := newTestPlay(t, 42)

	if p.Room().State != dungeon.RoomUndiscovered {
		t.Fatal("Expected fresh dungeon fully fogged")
	}
	if _, err := p.Update(input.Intent{}); err != nil {
		t.Fatal(err)
	}
	if p.Room().State != dungeon.RoomDiscovered {
		t.Errorf("Expected current room discovered, got %v", p.Room().State)
	}
	for _, dir := range dungeon.Directions {
		nb, err := p.Dungeon.RoomAt(p.Current.Neighbor(dir))
		if err != nil {
			continue
		}
		if nb.State != dungeon.RoomDiscovered {
			t.Errorf("Expected %v neighbor discovered, got %v", dir, nb.State)
		}
	}
}

func TestDoorTransition(t *testing.T) {
	p := newTestPlay(t, 42)
	room := p.Room()

	if len(room.Doors) == 0 {
		t.Fatal("Expected the start room to have at least one door")
	}
	door := room.Obstacles[room.Doors[0]]
	if !door.Open {
		t.Fatal("Expected start room doors open")
	}

	// Walk from the room center toward the door until the swept test
	// fires the transition.
	p.Player.AfterlockCooldown = 0
	for i := 0; i < 600 && p.Current == dungeon.StartCoords; i++ {
		heading := door.Pos.Sub(p.Player.Props().Pos).Normalize()
		if _, err := p.Update(input.Intent{Move: heading}); err != nil {
			t.Fatal(err)
		}
	}

	if p.Current != door.ConnectsTo {
		t.Fatalf("Expected transition to (%d,%d), got (%d,%d)",
			door.ConnectsTo.Row, door.ConnectsTo.Col, p.Current.Row, p.Current.Col)
	}
	props := p.Player.Props()
	if !props.Velocity.IsZero() {
		t.Error("Expected velocity zeroed on transition")
	}
	if p.Player.AfterlockCooldown != constant.PlayerAfterlockCooldown {
		t.Errorf("Expected afterlock %v, got %v", constant.PlayerAfterlockCooldown, p.Player.AfterlockCooldown)
	}

	// The mirrored position puts the player on the side opposite the
	// door, just inside the entry of the new room.
	dr, dc := door.Facing.Offset()
	if dr < 0 && props.Pos.Y < testH/2 {
		t.Errorf("Expected entry from the south side, got Y %v", props.Pos.Y)
	}
	if dr > 0 && props.Pos.Y > testH/2 {
		t.Errorf("Expected entry from the north side, got Y %v", props.Pos.Y)
	}
	if dc < 0 && props.Pos.X < testW/2 {
		t.Errorf("Expected entry from the east side, got X %v", props.Pos.X)
	}
	if dc > 0 && props.Pos.X > testW/2 {
		t.Errorf("Expected entry from the west side, got X %v", props.Pos.X)
	}

	// The entered room fogs in on the following tick.
	if _, err := p.Update(input.Intent{}); err != nil {
		t.Fatal(err)
	}
	if p.Room().State == dungeon.RoomUndiscovered {
		t.Error("Expected entered room discovered")
	}
}

func TestWallPushback(t *testing.T) {
	p := newTestPlay(t, 42)

	// Ram the player into the top-left corner for two seconds. Corners
	// are always walls, never doors.
	p.Player.AfterlockCooldown = 0
	for i := 0; i < 120; i++ {
		if _, err := p.Update(input.Intent{Move: vmath.V(-1, -1).Normalize()}); err != nil {
			t.Fatal(err)
		}
	}
	pos := p.Player.Props().Pos
	if pos.X < 0 || pos.Y < 0 {
		t.Errorf("Expected walls to hold the player inside the room, got (%v,%v)", pos.X, pos.Y)
	}
	if p.Current != dungeon.StartCoords {
		t.Error("Expected no transition while walking into walls")
	}
}

func TestPlayerDeathOutcome(t *testing.T) {
	p := newTestPlay(t, 42)
	p.Player.SetHealth(0)

	outcome, err := p.Update(input.Intent{})
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeDead {
		t.Errorf("Expected OutcomeDead, got %v", outcome)
	}
}

func TestShootAddsRoomShot(t *testing.T) {
	p := newTestPlay(t, 42)
	p.Player.Props().Forward = vmath.V(1, 0)

	if _, err := p.Update(input.Intent{Shoot: true}); err != nil {
		t.Fatal(err)
	}
	if len(p.Room().Shots) != 1 {
		t.Errorf("Expected one shot in the room, got %d", len(p.Room().Shots))
	}
}

func TestDirectorFlow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := NewDirector(testW, testH, rng, audio.NopSink{})

	if d.Active != KindMenu {
		t.Fatalf("Expected menu scene first, got %v", d.Active)
	}
	if err := d.Update(input.Intent{Confirm: true}); err != nil {
		t.Fatal(err)
	}
	if d.Active != KindPlay || d.Play == nil {
		t.Fatalf("Expected play scene after confirm, got %v", d.Active)
	}

	d.Play.Player.SetHealth(0)
	if err := d.Update(input.Intent{}); err != nil {
		t.Fatal(err)
	}
	if d.Active != KindDead {
		t.Errorf("Expected dead scene after player death, got %v", d.Active)
	}

	if err := d.Update(input.Intent{Confirm: true}); err != nil {
		t.Fatal(err)
	}
	if d.Active != KindMenu || d.Play != nil {
		t.Errorf("Expected return to menu, got %v", d.Active)
	}

	d.Update(input.Intent{Quit: true})
	if !d.Quit {
		t.Error("Expected quit flag set")
	}
}
