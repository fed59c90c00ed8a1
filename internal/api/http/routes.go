// Package httpapi exposes the description library over HTTP.
package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/weathersay/weathersay"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, describer *weathersay.Describer) {
	v1 := app.Group("/api/v1")

	v1.Get("/describe/coords", func(c *fiber.Ctx) error {
		var q coordsQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		desc, err := describer.ByCoords(c.Context(), q.Lat, q.Lon, &weathersay.DescribeOptions{
			Lang:           q.Lang,
			CityName:       q.City,
			Mode:           mode(q.Short),
			BandedHumidity: q.Bands,
		})
		if err != nil {
			return describeError(err)
		}
		return c.JSON(desc)
	})

	v1.Get("/describe/city", func(c *fiber.Ctx) error {
		var q cityQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		desc, err := describer.ByCity(c.Context(), q.Name, &weathersay.CityOptions{
			Lang:           q.Lang,
			CountryCode:    q.Country,
			Mode:           mode(q.Short),
			BandedHumidity: q.Bands,
		})
		if err != nil {
			return describeError(err)
		}
		return c.JSON(desc)
	})
}

func mode(short bool) weathersay.Mode {
	if short {
		return weathersay.ModeShort
	}
	return weathersay.ModeLong
}

// describeError maps library failures to HTTP statuses.
func describeError(err error) error {
	switch {
	case errors.Is(err, weathersay.ErrNoLocationProvided):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, weathersay.ErrPlaceNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, weathersay.ErrGeocodingFailed),
		errors.Is(err, weathersay.ErrNoWeatherResponse),
		errors.Is(err, weathersay.ErrMissingCurrentBlock),
		errors.Is(err, weathersay.ErrIncompleteCurrentData):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to describe weather")
	}
}

// coordsQuery holds query parameters for the coordinate endpoint.
type coordsQuery struct {
	Lat   float64 `validate:"min=-90,max=90"`
	Lon   float64 `validate:"min=-180,max=180"`
	Lang  string  `validate:"omitempty,alpha,len=2"`
	City  string
	Short bool
	Bands bool
}

func (q *coordsQuery) bind(c *fiber.Ctx) error {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return errors.New("invalid lat")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return errors.New("invalid lon")
	}

	q.Lat = lat
	q.Lon = lon
	q.Lang = c.Query("lang")
	q.City = c.Query("city")
	q.Short = c.QueryBool("short")
	q.Bands = c.QueryBool("bands")

	return validate.Struct(q)
}

// cityQuery holds query parameters for the city endpoint. Name may be empty
// when the server is configured with a default city.
type cityQuery struct {
	Name    string
	Country string `validate:"omitempty,alpha,len=2"`
	Lang    string `validate:"omitempty,alpha,len=2"`
	Short   bool
	Bands   bool
}

func (q *cityQuery) bind(c *fiber.Ctx) error {
	q.Name = c.Query("name")
	q.Country = c.Query("country")
	q.Lang = c.Query("lang")
	q.Short = c.QueryBool("short")
	q.Bands = c.QueryBool("bands")

	return validate.Struct(q)
}
