package widgets

import "image/color"

// GetColorInterpolation returns a color interpolated on the spectrum green
// to yellow to red. value should be between min and max.
func GetColorInterpolation(min, max, value float64) color.RGBA {
	t := (value - min) / (max - min)
	divider := .5
	var r, g float64
	if t < divider { // Green to Yellow interpolation
		r = lerp(0, 1, t/divider)
		g = 1
	} else { // Yellow to Red interpolation
		r = 1
		g = lerp(1, 0, (t-divider)/(1-divider))
	}
	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: 0,
		A: 255,
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
