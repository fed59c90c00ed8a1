// Package compass converts wind bearings into 16-point compass labels.
package compass

import "math"

var labels = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// Label maps a bearing in degrees to one of the 16 compass labels. The
// bearing does not have to be normalized; negative values and values past
// 360 wrap around.
func Label(deg float64) string {
	norm := math.Mod(math.Mod(deg, 360)+360, 360)
	idx := int(math.Round(norm/22.5)) % 16
	return labels[idx]
}
