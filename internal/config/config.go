// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 500
	ScreenHeight = 500
	StatusHeight = 24 // одна строка состояния; под доской их две

	DefaultPlayers    = 2
	MinCirclesPerSide = 1
	MaxCirclesPerSide = 12

	CellGapStep      = 0.5
	BorderBeamStep   = 2.0
	RadialLengthStep = 10.0

	MaxDeltaTime  = 0.06
	ClickCooldown = 150 // ms between repeated key actions
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	StatusColor     = color.RGBA{20, 20, 30, 255}
	ErrorColor      = color.RGBA{220, 60, 60, 255}
)
