package compose

import "github.com/weathersay/weathersay/weather"

// PrecipKind identifies which precipitation phenomenon a set of readings
// reduces to.
type PrecipKind int

const (
	PrecipNone PrecipKind = iota
	PrecipSnow
	PrecipRain
)

// ClassifyPrecipitation reduces the four precipitation readings of an
// observation to a single phenomenon and amount. Snowfall wins outright;
// otherwise combined rain+showers is preferred over the aggregate
// precipitation total, which only serves providers that report nothing
// more specific. Absent fields count as zero, so this never fails.
func ClassifyPrecipitation(obs weather.Observation) (PrecipKind, float64) {
	snow := deref(obs.Snowfall)
	rain := deref(obs.Rain) + deref(obs.Showers)
	total := deref(obs.Precipitation)

	switch {
	case snow > 0:
		return PrecipSnow, snow
	case rain > 0:
		return PrecipRain, rain
	case total > 0:
		return PrecipRain, total
	default:
		return PrecipNone, 0
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
