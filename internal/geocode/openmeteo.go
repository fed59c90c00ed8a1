// Package geocode resolves free-text place names to coordinates.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/weathersay/weathersay/internal/remote"
)

// DefaultBaseURL is the public Open-Meteo geocoding endpoint.
const DefaultBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

var (
	// ErrGeocodingFailed is returned on an HTTP-level geocoding failure.
	ErrGeocodingFailed = errors.New("geocoding error")
	// ErrPlaceNotFound is returned when the query matches no place.
	ErrPlaceNotFound = errors.New("place not found")
)

// Location is a resolved place.
type Location struct {
	Latitude  float64
	Longitude float64
	Name      string
}

// Resolver resolves a place name, optionally qualified by an ISO country
// code, to coordinates.
type Resolver interface {
	Resolve(ctx context.Context, name, countryCode, lang string) (Location, error)
}

// OpenMeteo resolves places through the Open-Meteo geocoding API, taking
// the provider's top-ranked match.
type OpenMeteo struct {
	baseURL string
	caller  *remote.Caller
}

// NewOpenMeteo creates an OpenMeteo resolver. baseURL == "" uses
// DefaultBaseURL.
func NewOpenMeteo(httpClient *http.Client, baseURL string) *OpenMeteo {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenMeteo{
		baseURL: baseURL,
		caller:  remote.NewCaller("open-meteo-geocoding", httpClient, remote.DefaultRetryPolicy()),
	}
}

// Resolve implements Resolver.
func (g *OpenMeteo) Resolve(ctx context.Context, name, countryCode, lang string) (Location, error) {
	query := name
	if countryCode != "" {
		query = fmt.Sprintf("%s, %s", name, countryCode)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", query)
		values.Set("count", "1")
		values.Set("language", lang)

		u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := g.caller.Do(ctx, buildRequest)
	if err != nil {
		return Location{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Location{}, fmt.Errorf("%w %d: %s", ErrGeocodingFailed, resp.StatusCode, string(body))
	}

	var payload struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Name      string  `json:"name"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrGeocodingFailed, err)
	}

	if len(payload.Results) == 0 {
		return Location{}, fmt.Errorf("%w: %s", ErrPlaceNotFound, query)
	}

	best := payload.Results[0]
	return Location{
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
		Name:      best.Name,
	}, nil
}
