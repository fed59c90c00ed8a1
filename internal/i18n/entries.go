package i18n

// catalogEntries holds the translation templates per language. Parameters
// are positional ({0}, {1}) per universal-translator conventions.
var catalogEntries = map[string]map[string]string{
	"en": {
		"sentence.city":          "In {0}",
		"sentence.temp":          "It is {0} °C",
		"sentence.cond":          "({0})",
		"sentence.feels":         "feels like {0}°C",
		"sentence.wind":          "wind {0} km/h",
		"sentence.wind.dir":      "from the {0}",
		"sentence.wind.gust":     "(gusts {0} km/h)",
		"sentence.precip.snow":   "snow: {0} cm",
		"sentence.precip.rain":   "precipitation: {0} mm",
		"sentence.precip.none":   "no precipitation",
		"sentence.humidity":      "humidity {0}%",
		"sentence.humidity.band": "humidity {0} ({1}%)",
		"sentence.clouds":        "cloud cover {0}%",
		"sentence.visibility":    "visibility {0} km",

		"short.temp": "{0}°C",

		"humidity.verylow":  "very low",
		"humidity.low":      "low",
		"humidity.medium":   "moderate",
		"humidity.high":     "high",
		"humidity.veryhigh": "very high",

		"dir.N":   "north",
		"dir.NNE": "north-northeast",
		"dir.NE":  "northeast",
		"dir.ENE": "east-northeast",
		"dir.E":   "east",
		"dir.ESE": "east-southeast",
		"dir.SE":  "southeast",
		"dir.SSE": "south-southeast",
		"dir.S":   "south",
		"dir.SSW": "south-southwest",
		"dir.SW":  "southwest",
		"dir.WSW": "west-southwest",
		"dir.W":   "west",
		"dir.WNW": "west-northwest",
		"dir.NW":  "northwest",
		"dir.NNW": "north-northwest",

		"weather.code.0":  "Clear sky",
		"weather.code.1":  "Mainly clear",
		"weather.code.2":  "Partly cloudy",
		"weather.code.3":  "Overcast",
		"weather.code.45": "Fog",
		"weather.code.48": "Depositing rime fog",
		"weather.code.51": "Light drizzle",
		"weather.code.53": "Moderate drizzle",
		"weather.code.55": "Dense drizzle",
		"weather.code.56": "Light freezing drizzle",
		"weather.code.57": "Dense freezing drizzle",
		"weather.code.61": "Slight rain",
		"weather.code.63": "Moderate rain",
		"weather.code.65": "Heavy rain",
		"weather.code.66": "Light freezing rain",
		"weather.code.67": "Heavy freezing rain",
		"weather.code.71": "Slight snowfall",
		"weather.code.73": "Moderate snowfall",
		"weather.code.75": "Heavy snowfall",
		"weather.code.77": "Snow grains",
		"weather.code.80": "Slight rain showers",
		"weather.code.81": "Moderate rain showers",
		"weather.code.82": "Violent rain showers",
		"weather.code.85": "Slight snow showers",
		"weather.code.86": "Heavy snow showers",
		"weather.code.95": "Thunderstorm",
		"weather.code.96": "Thunderstorm with slight hail",
		"weather.code.99": "Thunderstorm with heavy hail",
	},
	"fr": {
		"sentence.city":          "À {0}",
		"sentence.temp":          "Il fait {0} °C",
		"sentence.cond":          "({0})",
		"sentence.feels":         "ressenti {0} °C",
		"sentence.wind":          "vent {0} km/h",
		"sentence.wind.dir":      "de {0}",
		"sentence.wind.gust":     "(rafales {0} km/h)",
		"sentence.precip.snow":   "neige: {0} cm",
		"sentence.precip.rain":   "précipitations: {0} mm",
		"sentence.precip.none":   "pas de précipitations",
		"sentence.humidity":      "humidité {0} %",
		"sentence.humidity.band": "humidité {0} ({1} %)",
		"sentence.clouds":        "nébulosité {0} %",
		"sentence.visibility":    "visibilité {0} km",

		"short.temp": "{0} °C",

		"humidity.verylow":  "très basse",
		"humidity.low":      "basse",
		"humidity.medium":   "modérée",
		"humidity.high":     "élevée",
		"humidity.veryhigh": "très élevée",

		"dir.N":   "nord",
		"dir.NNE": "nord-nord-est",
		"dir.NE":  "nord-est",
		"dir.ENE": "est-nord-est",
		"dir.E":   "est",
		"dir.ESE": "est-sud-est",
		"dir.SE":  "sud-est",
		"dir.SSE": "sud-sud-est",
		"dir.S":   "sud",
		"dir.SSW": "sud-sud-ouest",
		"dir.SW":  "sud-ouest",
		"dir.WSW": "ouest-sud-ouest",
		"dir.W":   "ouest",
		"dir.WNW": "ouest-nord-ouest",
		"dir.NW":  "nord-ouest",
		"dir.NNW": "nord-nord-ouest",

		"weather.code.0":  "Ciel clair",
		"weather.code.1":  "Plutôt dégagé",
		"weather.code.2":  "Partiellement nuageux",
		"weather.code.3":  "Couvert",
		"weather.code.45": "Brouillard",
		"weather.code.48": "Brouillard givrant",
		"weather.code.51": "Bruine légère",
		"weather.code.53": "Bruine modérée",
		"weather.code.55": "Bruine dense",
		"weather.code.56": "Bruine verglaçante légère",
		"weather.code.57": "Bruine verglaçante dense",
		"weather.code.61": "Pluie faible",
		"weather.code.63": "Pluie modérée",
		"weather.code.65": "Pluie forte",
		"weather.code.66": "Pluie verglaçante légère",
		"weather.code.67": "Pluie verglaçante forte",
		"weather.code.71": "Neige faible",
		"weather.code.73": "Neige modérée",
		"weather.code.75": "Neige forte",
		"weather.code.77": "Grains de neige",
		"weather.code.80": "Averses de pluie faibles",
		"weather.code.81": "Averses de pluie modérées",
		"weather.code.82": "Averses de pluie violentes",
		"weather.code.85": "Averses de neige faibles",
		"weather.code.86": "Averses de neige fortes",
		"weather.code.95": "Orage",
		"weather.code.96": "Orage avec grêle légère",
		"weather.code.99": "Orage avec grêle forte",
	},
}
