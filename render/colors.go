package render

// Palette shared by every layer
var (
	RgbBackground = RGB(26, 27, 38) // Tokyo Night background
	RgbWhite      = RGB(255, 255, 255)
	RgbBlack      = RGB(0, 0, 0)
	RgbText       = RGB(192, 202, 245)
	RgbTextDim    = RGB(86, 95, 137)

	RgbGround   = RGB(36, 40, 59)
	RgbGridLine = RGB(52, 59, 88)
	RgbPath     = RGB(65, 72, 104)
	RgbRock     = RGB(120, 110, 100)
	RgbBush     = RGB(60, 140, 70)

	RgbRepeater  = RGB(122, 162, 247)
	RgbShockwave = RGB(187, 154, 247)
	RgbBullet    = RGB(224, 175, 104)
	RgbEnemyNoop = RGB(247, 118, 142)
	RgbGunner    = RGB(255, 158, 100)
	RgbShockRing = RGB(125, 207, 255)

	RgbHealthHigh = RGB(158, 206, 106)
	RgbHealthLow  = RGB(247, 118, 142)
	RgbHealthBack = RGB(30, 30, 40)

	RgbTargetValid   = Color{158, 206, 106, 110}
	RgbTargetInvalid = Color{247, 118, 142, 90}

	RgbBannerWon  = RGB(158, 206, 106)
	RgbBannerLost = RGB(247, 118, 142)

	RgbToken      = RGB(224, 175, 104)
	RgbTokenEmpty = RGB(65, 72, 104)
	RgbPanel      = Color{22, 22, 30, 220}
)
