// Package compose renders a weather observation into a localized sentence.
// The output is deterministic: identical input always yields identical text.
package compose

import (
	"math"
	"strconv"
	"strings"

	"github.com/weathersay/weathersay/internal/compass"
	"github.com/weathersay/weathersay/internal/i18n"
	"github.com/weathersay/weathersay/weather"
)

// separator joins the rendered clauses.
const separator = " · "

// Mode selects the output shape.
type Mode int

const (
	// ModeLong renders the full clause sequence.
	ModeLong Mode = iota
	// ModeShort renders a single compact line.
	ModeShort
)

// Input carries everything the composer needs for one rendering.
type Input struct {
	Obs  weather.Observation
	City string
	Lang string
	Mode Mode

	// BandedHumidity replaces the plain percentage humidity clause with a
	// qualitative level plus the percentage.
	BandedHumidity bool
}

// Composer assembles sentences from observations using a translation catalog.
type Composer struct {
	catalog *i18n.Catalog
}

// New creates a Composer over the given catalog.
func New(catalog *i18n.Catalog) *Composer {
	return &Composer{catalog: catalog}
}

// Describe renders the observation. Absent fields drop their clause; the
// result never contains dangling separators.
func (c *Composer) Describe(in Input) string {
	loc := c.catalog.Locale(in.Lang)
	if in.Mode == ModeShort {
		return c.short(loc, in)
	}
	return c.long(loc, in)
}

func (c *Composer) long(loc i18n.Locale, in Input) string {
	obs := in.Obs
	var parts []string

	if head := c.head(loc, in); head != "" {
		parts = append(parts, head)
	}

	if obs.ApparentTemperature != nil {
		parts = append(parts, loc.T("sentence.feels", roundInt(*obs.ApparentTemperature)))
	}

	if obs.WindSpeed != nil {
		wind := loc.T("sentence.wind", round1(*obs.WindSpeed))
		if obs.WindDirection != nil {
			dir := loc.T("dir." + compass.Label(*obs.WindDirection))
			wind += " " + loc.T("sentence.wind.dir", dir)
		}
		if obs.WindGusts != nil {
			wind += " " + loc.T("sentence.wind.gust", round1(*obs.WindGusts))
		}
		parts = append(parts, wind)
	}

	switch kind, amount := ClassifyPrecipitation(obs); kind {
	case PrecipSnow:
		parts = append(parts, loc.T("sentence.precip.snow", round1(amount)))
	case PrecipRain:
		parts = append(parts, loc.T("sentence.precip.rain", round1(amount)))
	default:
		parts = append(parts, loc.T("sentence.precip.none"))
	}

	if obs.RelativeHumidity != nil {
		pct := roundInt(*obs.RelativeHumidity)
		if in.BandedHumidity {
			parts = append(parts, loc.T("sentence.humidity.band", humidityBand(loc, *obs.RelativeHumidity), pct))
		} else {
			parts = append(parts, loc.T("sentence.humidity", pct))
		}
	}

	if obs.CloudCover != nil {
		parts = append(parts, loc.T("sentence.clouds", roundInt(*obs.CloudCover)))
	}

	if obs.Visibility != nil {
		parts = append(parts, loc.T("sentence.visibility", round1(*obs.Visibility/1000)))
	}

	return unescape(strings.Join(parts, separator))
}

// head combines the optional city, temperature and condition fragments into
// the leading clause.
func (c *Composer) head(loc i18n.Locale, in Input) string {
	obs := in.Obs
	var frags []string

	if in.City != "" {
		frags = append(frags, loc.T("sentence.city", in.City))
	}

	var body []string
	if obs.Temperature != nil {
		body = append(body, loc.T("sentence.temp", roundInt(*obs.Temperature)))
	}
	if cond := c.condition(loc, obs); cond != "" {
		body = append(body, loc.T("sentence.cond", cond))
	}
	if len(body) > 0 {
		frags = append(frags, strings.Join(body, " "))
	}

	return strings.Join(frags, separator)
}

func (c *Composer) short(loc i18n.Locale, in Input) string {
	obs := in.Obs
	var segs []string

	if obs.Temperature != nil {
		segs = append(segs, loc.T("short.temp", roundInt(*obs.Temperature)))
	}
	if cond := c.condition(loc, obs); cond != "" {
		segs = append(segs, cond)
	}
	if obs.WindSpeed != nil {
		wind := loc.T("sentence.wind", round1(*obs.WindSpeed))
		if obs.WindDirection != nil {
			wind += " " + compass.Label(*obs.WindDirection)
		}
		segs = append(segs, wind)
	}

	line := strings.Join(segs, ", ")
	if in.City != "" {
		prefix := loc.T("sentence.city", in.City)
		if line == "" {
			return unescape(prefix)
		}
		line = prefix + separator + line
	}
	return unescape(line)
}

// condition returns the lowercase textual label for the observation's
// weather code, or "" when the code is absent or unknown.
func (c *Composer) condition(loc i18n.Locale, obs weather.Observation) string {
	if obs.WeatherCode == nil {
		return ""
	}
	label := loc.T("weather.code." + strconv.Itoa(*obs.WeatherCode))
	return strings.ToLower(label)
}

// humidityBand buckets a relative-humidity percentage into a qualitative
// level. Thresholds: 25, 45, 70, 85.
func humidityBand(loc i18n.Locale, pct float64) string {
	switch {
	case pct < 25:
		return loc.T("humidity.verylow")
	case pct < 45:
		return loc.T("humidity.low")
	case pct < 70:
		return loc.T("humidity.medium")
	case pct < 85:
		return loc.T("humidity.high")
	default:
		return loc.T("humidity.veryhigh")
	}
}

// roundInt formats v rounded to the nearest integer.
func roundInt(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}

// round1 formats v rounded to one decimal place, dropping a trailing ".0".
func round1(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// unescape removes the HTML-encoded slash some template engines leave behind.
func unescape(s string) string {
	return strings.ReplaceAll(s, "&#x2F;", "/")
}
