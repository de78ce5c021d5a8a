package common

import "math"

const (
	Pi15     = math.Pi * 1.5
	PiDiv180 = math.Pi / 180
	R180Pi   = 180 / math.Pi

	OneHalf         = 1.0 / 2.0   // 0.5
	OneThird        = 1.0 / 3.0   // 0.3333333333333333
	OneFourth       = 1.0 / 4.0   // 0.25
	OneFifth        = 1.0 / 5.0   // 0.2
	OneSixth        = 1.0 / 6.0   // 0.16666666666666666
	OneSeventh      = 1.0 / 7.0   // 0.14285714285714285
	OneEight        = 1.0 / 8.0   // 0.125
	OneTwentyFifth  = 1.0 / 25.0  // 0.04
	OneSixthieth    = 1.0 / 60.0  // 0.016666666666666666
	OneEighthieth   = 1.0 / 80.0  // 0.0125
	OneTwohundredth = 1.0 / 200.0 // 0.005
)
