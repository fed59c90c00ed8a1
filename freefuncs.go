package weathersay

import (
	"context"

	"github.com/weathersay/weathersay/internal/geocode"
	"github.com/weathersay/weathersay/internal/meteo"
)

// Endpoints used by the package-level functions. Overridable in tests.
var (
	forecastBaseURL  = meteo.DefaultBaseURL
	geocodingBaseURL = geocode.DefaultBaseURL
)

// freeLanguage is the default language of the package-level functions.
const freeLanguage = "en"

func freeDescriber(lang string) *Describer {
	if lang == "" {
		lang = freeLanguage
	}
	return New(Options{
		Lang:             lang,
		ForecastBaseURL:  forecastBaseURL,
		GeocodingBaseURL: geocodingBaseURL,
	})
}

// DescriptionByCoords returns only the composed sentence for the
// coordinates. lang == "" means English.
func DescriptionByCoords(ctx context.Context, lat, lon float64, lang string, opts *DescribeOptions) (string, error) {
	desc, err := freeDescriber(lang).ByCoords(ctx, lat, lon, opts)
	if err != nil {
		return "", err
	}
	return desc.Text, nil
}

// DescriptionByCity returns only the composed sentence for the city.
// lang == "" means English.
func DescriptionByCity(ctx context.Context, city, lang string, opts *CityOptions) (string, error) {
	desc, err := freeDescriber(lang).ByCity(ctx, city, opts)
	if err != nil {
		return "", err
	}
	return desc.Text, nil
}

// EmojiByCoords returns only the emoji for the current conditions at the
// coordinates.
func EmojiByCoords(ctx context.Context, lat, lon float64, opts *DescribeOptions) (string, error) {
	desc, err := freeDescriber("").ByCoords(ctx, lat, lon, opts)
	if err != nil {
		return "", err
	}
	return desc.Emoji, nil
}

// EmojiByCity returns only the emoji for the current conditions in the city.
func EmojiByCity(ctx context.Context, city string, opts *CityOptions) (string, error) {
	desc, err := freeDescriber("").ByCity(ctx, city, opts)
	if err != nil {
		return "", err
	}
	return desc.Emoji, nil
}
