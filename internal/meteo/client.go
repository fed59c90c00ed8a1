// Package meteo fetches current conditions from the Open-Meteo forecast API
// and normalizes them into weather.Observation records.
package meteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/weathersay/weathersay/internal/cache"
	"github.com/weathersay/weathersay/internal/remote"
	"github.com/weathersay/weathersay/weather"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

var (
	// ErrNoResponse is returned when the provider yields no usable response.
	ErrNoResponse = errors.New("open-meteo: no weather response")
	// ErrMissingCurrent is returned when the response lacks the current
	// conditions block.
	ErrMissingCurrent = errors.New("open-meteo: response has no current block")
	// ErrIncompleteCurrent is returned when the current block carries none
	// of the requested variables.
	ErrIncompleteCurrent = errors.New("open-meteo: current block is incomplete")
)

// Variable positions. The requested variable list and the decode mapping
// both derive from these indexes, so request order and decode order cannot
// drift apart.
const (
	idxTemperature = iota
	idxApparentTemperature
	idxWeatherCode
	idxWindSpeed
	idxWindDirection
	idxWindGusts
	idxPrecipitation
	idxRain
	idxShowers
	idxSnowfall
	idxRelativeHumidity
	idxCloudCover
	idxVisibility
	numCurrentVariables
)

var currentVariables = [numCurrentVariables]string{
	idxTemperature:         "temperature_2m",
	idxApparentTemperature: "apparent_temperature",
	idxWeatherCode:         "weather_code",
	idxWindSpeed:           "wind_speed_10m",
	idxWindDirection:       "wind_direction_10m",
	idxWindGusts:           "wind_gusts_10m",
	idxPrecipitation:       "precipitation",
	idxRain:                "rain",
	idxShowers:             "showers",
	idxSnowfall:            "snowfall",
	idxRelativeHumidity:    "relative_humidity_2m",
	idxCloudCover:          "cloud_cover",
	idxVisibility:          "visibility",
}

// Client fetches current conditions, memoizing successful fetches in an
// expiring cache keyed by (lat, lon, lang, timezone).
type Client struct {
	baseURL string
	caller  *remote.Caller
	store   *cache.TTLCache
	now     func() time.Time
}

// NewClient creates a Client. baseURL == "" uses DefaultBaseURL; store may
// be a disabled cache but must not be nil.
func NewClient(httpClient *http.Client, baseURL string, store *cache.TTLCache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		caller:  remote.NewCaller("open-meteo", httpClient, remote.DefaultRetryPolicy()),
		store:   store,
		now:     time.Now,
	}
}

func cacheKey(lat, lon float64, lang, timezone string) string {
	return fmt.Sprintf("%v,%v,%s,%s", lat, lon, lang, timezone)
}

// Current returns the current observation for the coordinates. timezone is
// an IANA zone name or the literal "auto".
func (c *Client) Current(ctx context.Context, lat, lon float64, lang, timezone string) (weather.Observation, error) {
	key := cacheKey(lat, lon, lang, timezone)
	if obs, ok := c.store.Get(key, c.now()); ok {
		return obs, nil
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%v", lat))
		values.Set("longitude", fmt.Sprintf("%v", lon))
		values.Set("current", strings.Join(currentVariables[:], ","))
		values.Set("language", lang)
		values.Set("timezone", timezone)

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := c.caller.Do(ctx, buildRequest)
	if err != nil {
		return weather.Observation{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return weather.Observation{}, fmt.Errorf("%w: status %d", ErrNoResponse, resp.StatusCode)
	}

	var payload struct {
		Latitude *float64                   `json:"latitude"`
		Current  map[string]json.RawMessage `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Observation{}, fmt.Errorf("%w: %v", ErrNoResponse, err)
	}

	if payload.Latitude == nil && payload.Current == nil {
		return weather.Observation{}, ErrNoResponse
	}
	if payload.Current == nil {
		return weather.Observation{}, ErrMissingCurrent
	}

	obs, err := decodeCurrent(payload.Current)
	if err != nil {
		return weather.Observation{}, err
	}

	c.store.Put(key, obs, c.now())
	return obs, nil
}

// decodeCurrent extracts the requested variables from the current block.
// Values are read positionally via the shared index constants; a missing or
// null value means "field absent", never an error.
func decodeCurrent(current map[string]json.RawMessage) (weather.Observation, error) {
	vals := make([]*float64, numCurrentVariables)
	found := 0

	for i, name := range currentVariables {
		raw, ok := current[name]
		if !ok {
			continue
		}
		found++

		var v *float64
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		vals[i] = v
	}

	if found == 0 {
		return weather.Observation{}, ErrIncompleteCurrent
	}

	return weather.Observation{
		Temperature:         vals[idxTemperature],
		ApparentTemperature: vals[idxApparentTemperature],
		WeatherCode:         codeFrom(vals[idxWeatherCode]),
		WindSpeed:           vals[idxWindSpeed],
		WindDirection:       vals[idxWindDirection],
		WindGusts:           vals[idxWindGusts],
		Precipitation:       vals[idxPrecipitation],
		Rain:                vals[idxRain],
		Showers:             vals[idxShowers],
		Snowfall:            vals[idxSnowfall],
		RelativeHumidity:    vals[idxRelativeHumidity],
		CloudCover:          vals[idxCloudCover],
		Visibility:          vals[idxVisibility],
	}, nil
}

func codeFrom(v *float64) *int {
	if v == nil {
		return nil
	}
	code := int(math.Round(*v))
	return &code
}
