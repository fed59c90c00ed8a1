package weathersay

import (
	"errors"

	"github.com/weathersay/weathersay/internal/geocode"
	"github.com/weathersay/weathersay/internal/meteo"
)

// Sentinel errors. All failures returned by this package wrap one of these,
// so callers can match with errors.Is.
var (
	// ErrNoLocationProvided is returned by city lookups when neither a city
	// nor a configured default is available.
	ErrNoLocationProvided = errors.New("weathersay: no city provided and no default city configured")

	// ErrGeocodingFailed wraps an HTTP-level geocoding failure; the message
	// carries the status code and response body.
	ErrGeocodingFailed = geocode.ErrGeocodingFailed

	// ErrPlaceNotFound is returned when geocoding yields no results; the
	// message names the queried place.
	ErrPlaceNotFound = geocode.ErrPlaceNotFound

	// ErrNoWeatherResponse is returned when the weather provider yields no
	// usable response.
	ErrNoWeatherResponse = meteo.ErrNoResponse

	// ErrMissingCurrentBlock is returned when the weather response lacks
	// the current conditions block.
	ErrMissingCurrentBlock = meteo.ErrMissingCurrent

	// ErrIncompleteCurrentData is returned when the current block carries
	// none of the requested variables.
	ErrIncompleteCurrentData = meteo.ErrIncompleteCurrent
)
