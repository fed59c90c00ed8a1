package geocode

import (
	"context"
	"fmt"

	"github.com/kelvins/geocoder"

	"github.com/weathersay/weathersay/internal/common"
)

// Google resolves places through the Google Maps geocoding API. It is an
// alternative Resolver for deployments that already hold a Google API key
// and want its place ranking instead of Open-Meteo's.
type Google struct{}

// NewGoogle creates a Google resolver. The key is process-wide, which is a
// constraint of the underlying client.
func NewGoogle(apiKey string) *Google {
	geocoder.ApiKey = apiKey
	return &Google{}
}

// Resolve implements Resolver. The underlying client does not accept a
// context, so cancellation only takes effect between calls.
func (g *Google) Resolve(_ context.Context, name, countryCode, lang string) (Location, error) {
	_ = lang // Google derives the response language from the key settings.

	addr := geocoder.Address{City: name, Country: countryCode}
	loc, err := geocoder.Geocoding(addr)
	if err != nil {
		if common.HasAny(err.Error(), "ZERO_RESULTS", "NOT_FOUND") {
			return Location{}, fmt.Errorf("%w: %s", ErrPlaceNotFound, name)
		}
		return Location{}, fmt.Errorf("%w: %v", ErrGeocodingFailed, err)
	}

	return Location{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Name:      name,
	}, nil
}
