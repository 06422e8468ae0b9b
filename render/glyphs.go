package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vault-crawler/dungeon"
	"github.com/lixenwraith/vault-crawler/entity"
)

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDanger = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleSpikes = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleDoor   = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown).Bold(true)
	styleItem   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleEnemy  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleShot   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

func obstacleGlyph(o *dungeon.Obstacle) (rune, tcell.Style) {
	switch o.Kind {
	case dungeon.KindWall:
		return '#', styleWall
	case dungeon.KindStone:
		return 'o', styleWall
	case dungeon.KindSpikes:
		return '^', styleSpikes
	case dungeon.KindDoor:
		if o.Open {
			return '/', styleDoor
		}
		return '+', styleDoor
	case dungeon.KindHatch:
		if o.Open {
			return '>', styleItem
		}
		return '=', styleDim
	case dungeon.KindPedestal:
		if o.Held != nil {
			return '!', styleItem
		}
		return 'n', styleDim
	}
	return '?', styleDim
}

func actorGlyph(a entity.Actor) (rune, tcell.Style) {
	style := styleEnemy
	if a.State() == entity.StateDamaged {
		style = styleDanger
	}
	switch a.Tag() {
	case entity.TagPlayer:
		if a.State() == entity.StateDamaged {
			return '@', styleDanger
		}
		return '@', stylePlayer
	case entity.TagShooter:
		return 'M', style
	case entity.TagChaser:
		return 'G', style
	case entity.TagWanderer:
		return 'S', style
	case entity.TagBoss:
		return 'W', style
	case entity.TagShot:
		return '*', styleShot
	case entity.TagCollectable:
		return '%', styleItem
	}
	return '?', styleDim
}

func minimapGlyph(room *dungeon.Room) rune {
	if room.State == dungeon.RoomCleared {
		return '·'
	}
	switch room.Role {
	case dungeon.RoleBoss:
		return 'B'
	case dungeon.RoleItem:
		return '!'
	default:
		return '□'
	}
}
