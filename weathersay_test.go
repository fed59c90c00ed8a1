package weathersay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const lyonForecast = `{
	"latitude": 45.76,
	"longitude": 4.83,
	"current": {
		"time": "2024-05-01T12:00",
		"interval": 900,
		"temperature_2m": 12.4,
		"apparent_temperature": 11.8,
		"weather_code": 2,
		"wind_speed_10m": 14.2,
		"wind_direction_10m": 305,
		"wind_gusts_10m": 28.6,
		"precipitation": 0,
		"rain": 0,
		"showers": 0,
		"snowfall": 0,
		"relative_humidity_2m": 62,
		"cloud_cover": 45,
		"visibility": 9000
	}
}`

const lyonGeo = `{"results":[{"latitude":45.76,"longitude":4.83,"name":"Lyon"}]}`

// collaborators spins up stand-ins for the weather and geocoding services.
func collaborators(t *testing.T, forecast, geo http.HandlerFunc) (forecastURL, geoURL string) {
	t.Helper()

	fsrv := httptest.NewServer(forecast)
	t.Cleanup(fsrv.Close)

	gsrv := httptest.NewServer(geo)
	t.Cleanup(gsrv.Close)

	return fsrv.URL, gsrv.URL
}

func staticHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestByCoordsFrench(t *testing.T) {
	forecastURL, geoURL := collaborators(t, staticHandler(lyonForecast), staticHandler(lyonGeo))

	d := New(Options{
		Lang:             "fr",
		ForecastBaseURL:  forecastURL,
		GeocodingBaseURL: geoURL,
	})

	desc, err := d.ByCoords(context.Background(), 45.76, 4.83, &DescribeOptions{CityName: "Lyon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if desc.Emoji != "⛅" {
		t.Fatalf("emoji = %q, want ⛅", desc.Emoji)
	}
	for _, want := range []string{
		"À Lyon",
		"Il fait 12 °C",
		"(partiellement nuageux)",
		"ressenti 12 °C",
		"vent 14.2 km/h",
		"de nord-ouest",
		"(rafales 28.6 km/h)",
		"pas de précipitations",
		"humidité 62 %",
		"nébulosité 45 %",
		"visibilité 9 km",
	} {
		if !strings.Contains(desc.Text, want) {
			t.Fatalf("text missing %q:\n%s", want, desc.Text)
		}
	}
	if desc.Current.WeatherCode == nil || *desc.Current.WeatherCode != 2 {
		t.Fatalf("observation weather code = %v, want 2", desc.Current.WeatherCode)
	}
}

func TestByCityResolvesThenDescribes(t *testing.T) {
	var geoQuery string
	forecastURL, geoURL := collaborators(t,
		staticHandler(lyonForecast),
		func(w http.ResponseWriter, r *http.Request) {
			geoQuery = r.URL.Query().Get("name")
			w.Write([]byte(lyonGeo))
		},
	)

	d := New(Options{
		Lang:             "en",
		ForecastBaseURL:  forecastURL,
		GeocodingBaseURL: geoURL,
	})

	desc, err := d.ByCity(context.Background(), "Lyon", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if geoQuery != "Lyon" {
		t.Fatalf("geocoding query = %q, want Lyon", geoQuery)
	}
	if !strings.Contains(desc.Text, "In Lyon") {
		t.Fatalf("expected english place clause, got %q", desc.Text)
	}
	if !strings.Contains(desc.Text, "It is 12 °C") {
		t.Fatalf("expected english head clause, got %q", desc.Text)
	}
}

func TestByCityDefaultCity(t *testing.T) {
	forecastURL, geoURL := collaborators(t, staticHandler(lyonForecast), staticHandler(lyonGeo))

	d := New(Options{
		DefaultCity:      "Lyon",
		ForecastBaseURL:  forecastURL,
		GeocodingBaseURL: geoURL,
	})

	desc, err := d.ByCity(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(desc.Text, "Lyon") {
		t.Fatalf("expected default city in text, got %q", desc.Text)
	}
}

func TestByCityNoLocation(t *testing.T) {
	forecastURL, geoURL := collaborators(t, staticHandler(lyonForecast), staticHandler(lyonGeo))

	d := New(Options{
		ForecastBaseURL:  forecastURL,
		GeocodingBaseURL: geoURL,
	})

	_, err := d.ByCity(context.Background(), "", nil)
	if !errors.Is(err, ErrNoLocationProvided) {
		t.Fatalf("got %v, want ErrNoLocationProvided", err)
	}
}

func TestByCityPlaceNotFound(t *testing.T) {
	forecastURL, geoURL := collaborators(t,
		staticHandler(lyonForecast),
		staticHandler(`{"results":[]}`),
	)

	d := New(Options{
		ForecastBaseURL:  forecastURL,
		GeocodingBaseURL: geoURL,
	})

	_, err := d.ByCity(context.Background(), "Atlantis", nil)
	if !errors.Is(err, ErrPlaceNotFound) {
		t.Fatalf("got %v, want ErrPlaceNotFound", err)
	}
	if !strings.Contains(err.Error(), "Atlantis") {
		t.Fatalf("error should name the query, got %q", err.Error())
	}
}

func TestSetLanguageAffectsSubsequentCalls(t *testing.T) {
	forecastURL, geoURL := collaborators(t, staticHandler(lyonForecast), staticHandler(lyonGeo))

	d := New(Options{
		Lang:             "fr",
		ForecastBaseURL:  forecastURL,
		GeocodingBaseURL: geoURL,
	})

	desc, err := d.ByCoords(context.Background(), 45.76, 4.83, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(desc.Text, "Il fait") {
		t.Fatalf("expected french default, got %q", desc.Text)
	}

	d.SetLanguage("en")
	desc, err = d.ByCoords(context.Background(), 45.76, 4.83, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(desc.Text, "It is") {
		t.Fatalf("expected english after SetLanguage, got %q", desc.Text)
	}
}

func TestFacadeCaching(t *testing.T) {
	calls := 0
	forecastURL, geoURL := collaborators(t,
		func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(lyonForecast))
		},
		staticHandler(lyonGeo),
	)

	d := New(Options{
		Lang:             "fr",
		CacheTTL:         time.Minute,
		ForecastBaseURL:  forecastURL,
		GeocodingBaseURL: geoURL,
	})

	for i := 0; i < 3; i++ {
		if _, err := d.ByCoords(context.Background(), 45.76, 4.83, nil); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", calls)
	}
	if d.CacheLen() != 1 {
		t.Fatalf("expected 1 cached entry, got %d", d.CacheLen())
	}
}

func TestShortModeViaFacade(t *testing.T) {
	forecastURL, geoURL := collaborators(t, staticHandler(lyonForecast), staticHandler(lyonGeo))

	d := New(Options{
		Lang:             "en",
		ForecastBaseURL:  forecastURL,
		GeocodingBaseURL: geoURL,
	})

	desc, err := d.ByCoords(context.Background(), 45.76, 4.83, &DescribeOptions{Mode: ModeShort})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Text != "12°C, partly cloudy, wind 14.2 km/h NW" {
		t.Fatalf("short text = %q", desc.Text)
	}
}

func TestFreeFunctions(t *testing.T) {
	forecastURL, geoURL := collaborators(t, staticHandler(lyonForecast), staticHandler(lyonGeo))

	origForecast, origGeo := forecastBaseURL, geocodingBaseURL
	forecastBaseURL, geocodingBaseURL = forecastURL, geoURL
	defer func() { forecastBaseURL, geocodingBaseURL = origForecast, origGeo }()

	text, err := DescriptionByCoords(context.Background(), 45.76, 4.83, "", nil)
	if err != nil {
		t.Fatalf("DescriptionByCoords: %v", err)
	}
	if !strings.HasPrefix(text, "It is 12 °C") {
		t.Fatalf("expected english default, got %q", text)
	}

	text, err = DescriptionByCity(context.Background(), "Lyon", "fr", nil)
	if err != nil {
		t.Fatalf("DescriptionByCity: %v", err)
	}
	if !strings.Contains(text, "À Lyon") {
		t.Fatalf("expected french place clause, got %q", text)
	}

	emoji, err := EmojiByCoords(context.Background(), 45.76, 4.83, nil)
	if err != nil {
		t.Fatalf("EmojiByCoords: %v", err)
	}
	if emoji != "⛅" {
		t.Fatalf("emoji = %q, want ⛅", emoji)
	}

	emoji, err = EmojiByCity(context.Background(), "Lyon", nil)
	if err != nil {
		t.Fatalf("EmojiByCity: %v", err)
	}
	if emoji != "⛅" {
		t.Fatalf("emoji = %q, want ⛅", emoji)
	}
}

func TestCancelledContext(t *testing.T) {
	forecastURL, geoURL := collaborators(t, staticHandler(lyonForecast), staticHandler(lyonGeo))

	d := New(Options{
		ForecastBaseURL:  forecastURL,
		GeocodingBaseURL: geoURL,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.ByCoords(ctx, 45.76, 4.83, nil); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
