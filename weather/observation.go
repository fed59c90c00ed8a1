// Package weather holds the observation model shared by the fetcher,
// the composer and the public facade.
package weather

// Observation is a normalized snapshot of current conditions for one
// location. Every field is independently optional: a nil pointer means the
// provider did not report that variable, and consumers must skip the
// corresponding output rather than fail.
type Observation struct {
	Temperature         *float64 `json:"temperatureC,omitempty"`
	ApparentTemperature *float64 `json:"apparentTemperatureC,omitempty"`
	WeatherCode         *int     `json:"weatherCode,omitempty"`
	WindSpeed           *float64 `json:"windSpeedKmh,omitempty"`
	WindDirection       *float64 `json:"windDirectionDeg,omitempty"`
	WindGusts           *float64 `json:"windGustsKmh,omitempty"`
	Precipitation       *float64 `json:"precipitationMm,omitempty"`
	Rain                *float64 `json:"rainMm,omitempty"`
	Showers             *float64 `json:"showersMm,omitempty"`
	Snowfall            *float64 `json:"snowfallCm,omitempty"`
	RelativeHumidity    *float64 `json:"humidityPercent,omitempty"`
	CloudCover          *float64 `json:"cloudCoverPercent,omitempty"`
	Visibility          *float64 `json:"visibilityM,omitempty"`
}
