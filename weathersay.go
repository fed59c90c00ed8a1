// Package weathersay turns current weather conditions into a localized,
// human-readable sentence plus an emoji. Conditions come from the Open-Meteo
// forecast API; free-text place names are resolved through a geocoding
// provider. Rendering is deterministic for identical input.
package weathersay

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/weathersay/weathersay/internal/cache"
	"github.com/weathersay/weathersay/internal/compose"
	"github.com/weathersay/weathersay/internal/geocode"
	"github.com/weathersay/weathersay/internal/i18n"
	"github.com/weathersay/weathersay/internal/meteo"
	"github.com/weathersay/weathersay/weather"
)

// Defaults applied by New when the corresponding option is empty.
const (
	DefaultLanguage = "fr"
	DefaultTimezone = "auto"
)

// Mode selects the output shape of a description.
type Mode int

const (
	// ModeLong renders the full clause sequence: head, feels-like, wind,
	// precipitation, humidity, cloud cover, visibility.
	ModeLong Mode = iota
	// ModeShort renders one compact line: temperature, condition, wind.
	ModeShort
)

// Options configures a Describer.
type Options struct {
	// Lang is the default description language ("en" and "fr" are
	// supported; anything else falls back to "en").
	Lang string
	// Timezone is an IANA zone name or "auto".
	Timezone string
	// DefaultCity is used by ByCity when no city is passed.
	DefaultCity string

	// CacheTTL enables observation caching when > 0.
	CacheTTL time.Duration
	// CacheMaxEntries bounds the cache; 0 uses a builtin default.
	CacheMaxEntries int

	// HTTPClient is used for all outbound calls; nil gets a client with a
	// 10s timeout.
	HTTPClient *http.Client

	// ForecastBaseURL and GeocodingBaseURL override the collaborator
	// endpoints, mainly for tests.
	ForecastBaseURL  string
	GeocodingBaseURL string

	// GoogleGeocoderAPIKey switches place resolution to the Google Maps
	// geocoding API.
	GoogleGeocoderAPIKey string
}

// DescribeOptions are per-call overrides for coordinate-based descriptions.
// Zero values mean "use the Describer's defaults".
type DescribeOptions struct {
	Lang           string
	Timezone       string
	CityName       string
	Mode           Mode
	BandedHumidity bool
}

// CityOptions are per-call overrides for city-based descriptions.
type CityOptions struct {
	Lang           string
	Timezone       string
	CountryCode    string
	Mode           Mode
	BandedHumidity bool
}

// Description is the rendered result.
type Description struct {
	Emoji   string              `json:"emoji"`
	Text    string              `json:"text"`
	Current weather.Observation `json:"observation"`
}

// Describer is the stateful entry point. It holds mutable default language
// and timezone plus an immutable default city and cache configuration. The
// defaults are guarded by a mutex, but concurrent callers that need
// deterministic behaviour should pass explicit per-call overrides instead of
// mutating defaults mid-flight.
type Describer struct {
	mu       sync.RWMutex
	lang     string
	timezone string

	defaultCity string

	fetcher  *meteo.Client
	resolver geocode.Resolver
	composer *compose.Composer
	store    *cache.TTLCache
}

// New creates a Describer.
func New(opts Options) *Describer {
	if opts.Lang == "" {
		opts.Lang = DefaultLanguage
	}
	if opts.Timezone == "" {
		opts.Timezone = DefaultTimezone
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	store := cache.New(opts.CacheTTL, opts.CacheMaxEntries)

	var resolver geocode.Resolver
	if opts.GoogleGeocoderAPIKey != "" {
		resolver = geocode.NewGoogle(opts.GoogleGeocoderAPIKey)
	} else {
		resolver = geocode.NewOpenMeteo(httpClient, opts.GeocodingBaseURL)
	}

	return &Describer{
		lang:        opts.Lang,
		timezone:    opts.Timezone,
		defaultCity: opts.DefaultCity,
		fetcher:     meteo.NewClient(httpClient, opts.ForecastBaseURL, store),
		resolver:    resolver,
		composer:    compose.New(i18n.Default()),
		store:       store,
	}
}

// SetLanguage changes the default language for subsequent calls.
func (d *Describer) SetLanguage(lang string) {
	d.mu.Lock()
	d.lang = lang
	d.mu.Unlock()
}

// SetTimezone changes the default timezone for subsequent calls.
func (d *Describer) SetTimezone(tz string) {
	d.mu.Lock()
	d.timezone = tz
	d.mu.Unlock()
}

func (d *Describer) defaults() (lang, tz string) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lang, d.timezone
}

// ByCoords fetches current conditions for the coordinates and renders them.
func (d *Describer) ByCoords(ctx context.Context, lat, lon float64, opts *DescribeOptions) (Description, error) {
	if opts == nil {
		opts = &DescribeOptions{}
	}

	lang, tz := d.defaults()
	if opts.Lang != "" {
		lang = opts.Lang
	}
	if opts.Timezone != "" {
		tz = opts.Timezone
	}

	obs, err := d.fetcher.Current(ctx, lat, lon, lang, tz)
	if err != nil {
		return Description{}, err
	}

	text := d.composer.Describe(compose.Input{
		Obs:            obs,
		City:           opts.CityName,
		Lang:           lang,
		Mode:           compose.Mode(opts.Mode),
		BandedHumidity: opts.BandedHumidity,
	})

	emoji := weather.EmojiFallback
	if obs.WeatherCode != nil {
		emoji = weather.EmojiForCode(*obs.WeatherCode)
	}

	return Description{Emoji: emoji, Text: text, Current: obs}, nil
}

// ByCity resolves the city (or the configured default when city is empty)
// and renders the conditions at the resolved coordinates. The queried name,
// not the canonical geocoder name, appears in the rendered text.
func (d *Describer) ByCity(ctx context.Context, city string, opts *CityOptions) (Description, error) {
	if opts == nil {
		opts = &CityOptions{}
	}

	target := city
	if target == "" {
		target = d.defaultCity
	}
	if target == "" {
		return Description{}, ErrNoLocationProvided
	}

	lang, _ := d.defaults()
	if opts.Lang != "" {
		lang = opts.Lang
	}

	loc, err := d.resolver.Resolve(ctx, target, opts.CountryCode, lang)
	if err != nil {
		return Description{}, err
	}

	return d.ByCoords(ctx, loc.Latitude, loc.Longitude, &DescribeOptions{
		Lang:           lang,
		Timezone:       opts.Timezone,
		CityName:       target,
		Mode:           opts.Mode,
		BandedHumidity: opts.BandedHumidity,
	})
}

// SweepCache drops expired cache entries and returns how many were removed.
// Long-lived processes can run this periodically.
func (d *Describer) SweepCache() int {
	return d.store.Sweep(time.Now())
}

// CacheLen returns the current number of cached observations.
func (d *Describer) CacheLen() int {
	return d.store.Len()
}
