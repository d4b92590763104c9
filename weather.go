package server

import "fmt"

// Weather selects the ambient overlay rendered by display clients.
type Weather string

const (
	WeatherClear Weather = "clear"
	WeatherRain  Weather = "rain"
	WeatherFog   Weather = "fog"
)

// WeatherOptions lists every valid mode in a stable order for UI population.
func WeatherOptions() []string {
	return []string{string(WeatherClear), string(WeatherRain), string(WeatherFog)}
}

// ParseWeather validates a client-supplied mode.
func ParseWeather(raw string) (Weather, error) {
	switch mode := Weather(raw); mode {
	case WeatherClear, WeatherRain, WeatherFog:
		return mode, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeather, raw)
}
