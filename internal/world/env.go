package world

// Weather is one entry of the environment forecast cycle.
type Weather uint8

const (
	WeatherSunny Weather = iota
	WeatherRainy
	WeatherFoggy
	WeatherMonsoon
	WeatherBlizzard
)

var weatherNames = [...]string{"sunny", "rainy", "foggy", "monsoon", "blizzard"}

func (w Weather) String() string {
	if int(w) < len(weatherNames) {
		return weatherNames[w]
	}
	return "unknown"
}

// Environment carries the starting conditions handed to consumers of a
// generated world. The generator itself never reads it.
type Environment struct {
	Forecast    []Weather `json:"forecast"`
	TickMinutes int       `json:"tick_minutes"`
	StartHour   int       `json:"start_hour"`
}

// DefaultEnvironment returns the standard forecast cycle with one-minute
// ticks starting at 09:00.
func DefaultEnvironment() Environment {
	return Environment{
		Forecast:    []Weather{WeatherRainy, WeatherSunny, WeatherFoggy, WeatherMonsoon, WeatherBlizzard},
		TickMinutes: 1,
		StartHour:   9,
	}
}
