package entity

import "golang.org/x/image/colornames"

var (
	defaultPlayerColor     = colornames.Crimson
	defaultEnemyColor      = colornames.Purple
	defaultProjectileColor = colornames.Gold
	defaultHitZoneColor    = colornames.Orange
	defaultBackgroundColor = colornames.Midnightblue
)
