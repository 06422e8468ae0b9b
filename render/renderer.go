// Package render draws the simulation onto a tcell screen. The
// simulation core never touches it directly; the main loop hands it a
// scene snapshot once per frame.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/dungeon"
	"github.com/lixenwraith/vault-crawler/entity"
	"github.com/lixenwraith/vault-crawler/scene"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// Renderer handles all terminal rendering
type Renderer struct {
	screen tcell.Screen
	sw     float64
	sh     float64

	gameX      int
	gameY      int
	gameWidth  int
	gameHeight int
}

func NewRenderer(screen tcell.Screen, sw, sh float64) *Renderer {
	r := &Renderer{screen: screen, sw: sw, sh: sh}
	r.Resize()
	return r
}

// Resize recomputes the game viewport from the current terminal size,
// leaving a status row at the top and the minimap margin on the right.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.gameX = 0
	r.gameY = 1
	r.gameWidth = w - minimapWidth - 1
	r.gameHeight = h - 1
	if r.gameWidth < 1 {
		r.gameWidth = 1
	}
	if r.gameHeight < 1 {
		r.gameHeight = 1
	}
}

const minimapWidth = constant.DungeonGridCols + 2

// RenderFrame draws the active scene.
func (r *Renderer) RenderFrame(d *scene.Director) {
	r.screen.Clear()
	switch d.Active {
	case scene.KindMenu:
		r.drawCentered("VAULT CRAWLER", -1, styleTitle)
		r.drawCentered("press enter to descend", 1, styleDim)
	case scene.KindDead:
		r.drawCentered("YOU DIED", -1, styleDanger)
		if d.Play != nil {
			r.drawCentered(fmt.Sprintf("reached level %d", d.Play.Dungeon.Level), 0, styleDim)
		}
		r.drawCentered("press enter", 1, styleDim)
	case scene.KindPlay:
		r.drawPlay(d.Play)
	}
	r.screen.Show()
}

func (r *Renderer) drawPlay(p *scene.Play) {
	room := p.Room()
	if room == nil {
		return
	}
	for _, o := range room.Obstacles {
		r.drawObstacle(o)
	}
	for _, e := range room.Enemies {
		r.drawActor(e)
	}
	for _, d := range room.Drops {
		r.drawActor(d)
	}
	for _, s := range room.Shots {
		r.drawActor(s)
	}
	r.drawActor(p.Player)
	r.drawHUD(p)
	r.drawMinimap(p)
	if room.Role == dungeon.RoleBoss {
		r.drawBossBar(room)
	}
}

// cell maps a world position to a terminal cell inside the viewport.
func (r *Renderer) cell(pos vmath.Vec2) (int, int) {
	x := r.gameX + int(pos.X/r.sw*float64(r.gameWidth))
	y := r.gameY + int(pos.Y/r.sh*float64(r.gameHeight))
	return x, y
}

func (r *Renderer) drawObstacle(o *dungeon.Obstacle) {
	x, y := r.cell(o.Pos)
	ch, style := obstacleGlyph(o)
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) drawActor(a entity.Actor) {
	x, y := r.cell(a.Props().Pos)
	ch, style := actorGlyph(a)
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) drawHUD(p *scene.Play) {
	hud := fmt.Sprintf("lv %d  hp %.1f/%.1f", p.Dungeon.Level, p.Player.Health(), p.Player.MaxHealth())
	if it := p.Player.Held; it != nil {
		if it.Cooldown > 0 {
			hud += fmt.Sprintf("  item [%0.0f]", it.Cooldown)
		} else {
			hud += "  item [ready]"
		}
	}
	r.drawText(0, 0, hud, styleHUD)
}

// drawMinimap renders the dungeon grid in the top-right corner.
// Undiscovered rooms stay hidden.
func (r *Renderer) drawMinimap(p *scene.Play) {
	ox := r.gameX + r.gameWidth + 1
	oy := r.gameY
	for _, room := range p.Dungeon.Rooms() {
		if room.State == dungeon.RoomUndiscovered {
			continue
		}
		ch := minimapGlyph(room)
		style := styleDim
		if room.Coords == p.Current {
			ch = '@'
			style = styleHUD
		}
		r.screen.SetContent(ox+room.Coords.Col, oy+room.Coords.Row, ch, nil, style)
	}
}

func (r *Renderer) drawBossBar(room *dungeon.Room) {
	var boss interface {
		Health() float64
	}
	for _, e := range room.Enemies {
		if e.Tag() == entity.TagBoss {
			boss = e
			break
		}
	}
	if boss == nil {
		return
	}
	width := r.gameWidth / 2
	filled := int(boss.Health() / constant.BossHealth * float64(width))
	y := r.gameY + r.gameHeight - 1
	x := r.gameX + (r.gameWidth-width)/2
	for i := 0; i < width; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.screen.SetContent(x+i, y, ch, nil, styleDanger)
	}
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawCentered(s string, rowOffset int, style tcell.Style) {
	w, h := r.screen.Size()
	r.drawText((w-len(s))/2, h/2+rowOffset, s, style)
}
