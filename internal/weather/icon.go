package weather

import (
	"encoding/json"
	"strings"
)

// WeatherIcon is one of IconClear, IconClouds, IconFog, IconThunder,
// IconRain, IconSnow or IconDefault.
type WeatherIcon interface {
	// Word is the short label shown next to the icon
	Word() string
	String() string
	isWeatherIcon()
}

type IconClear struct{ IsNight bool }
type IconClouds struct{ IsNight bool }
type IconFog struct{ IsNight bool }
type IconThunder struct{ IsNight bool }
type IconRain struct{ IsNight bool }
type IconSnow struct{}
type IconDefault struct{}

func (IconClear) isWeatherIcon()   {}
func (IconClouds) isWeatherIcon()  {}
func (IconFog) isWeatherIcon()     {}
func (IconThunder) isWeatherIcon() {}
func (IconRain) isWeatherIcon()    {}
func (IconSnow) isWeatherIcon()    {}
func (IconDefault) isWeatherIcon() {}

func (IconClear) Word() string   { return "Clear" }
func (IconClouds) Word() string  { return "Clouds" }
func (IconFog) Word() string     { return "Fog" }
func (IconThunder) Word() string { return "Thunder" }
func (IconRain) Word() string    { return "Rain" }
func (IconSnow) Word() string    { return "Snow" }
func (IconDefault) Word() string { return "Unknown" }

func (i IconClear) String() string   { return withTimeOfDay("clear", i.IsNight) }
func (i IconClouds) String() string  { return withTimeOfDay("clouds", i.IsNight) }
func (i IconFog) String() string     { return withTimeOfDay("fog", i.IsNight) }
func (i IconThunder) String() string { return withTimeOfDay("thunder", i.IsNight) }
func (i IconRain) String() string    { return withTimeOfDay("rain", i.IsNight) }
func (IconSnow) String() string      { return "snow" }
func (IconDefault) String() string   { return "default" }

func (i IconClear) MarshalJSON() ([]byte, error)   { return marshalIcon("clear", &i.IsNight) }
func (i IconClouds) MarshalJSON() ([]byte, error)  { return marshalIcon("clouds", &i.IsNight) }
func (i IconFog) MarshalJSON() ([]byte, error)     { return marshalIcon("fog", &i.IsNight) }
func (i IconThunder) MarshalJSON() ([]byte, error) { return marshalIcon("thunder", &i.IsNight) }
func (i IconRain) MarshalJSON() ([]byte, error)    { return marshalIcon("rain", &i.IsNight) }
func (IconSnow) MarshalJSON() ([]byte, error)      { return marshalIcon("snow", nil) }
func (IconDefault) MarshalJSON() ([]byte, error)   { return marshalIcon("default", nil) }

func withTimeOfDay(name string, isNight bool) string {
	if isNight {
		return name + "_night"
	}
	return name + "_day"
}

// IconJSON is the wire form of every WeatherIcon. is_night is omitted for
// icons without a day/night variant.
type IconJSON struct {
	Name    string `json:"name" enums:"clear,clouds,fog,thunder,rain,snow,default"`
	IsNight *bool  `json:"is_night,omitempty"`
}

func marshalIcon(name string, isNight *bool) ([]byte, error) {
	return json.Marshal(IconJSON{Name: name, IsNight: isNight})
}

type iconRule struct {
	keywords []string
	icon     func(isNight bool) WeatherIcon
}

// Evaluated top to bottom, first match wins. Order matters for overlapping
// phrases: "Snow Showers" is snow, "Rain And Fog" is fog.
var iconRules = []iconRule{
	{
		// snow, flurries, flurry, blizzard
		keywords: []string{"snow", "flurr", "blizzard"},
		icon:     func(bool) WeatherIcon { return IconSnow{} },
	},
	{
		keywords: []string{"thunder"},
		icon:     func(isNight bool) WeatherIcon { return IconThunder{IsNight: isNight} },
	},
	{
		keywords: []string{"fog", "mist"},
		icon:     func(isNight bool) WeatherIcon { return IconFog{IsNight: isNight} },
	},
	{
		keywords: []string{"rain", "shower", "drizzle"},
		icon:     func(isNight bool) WeatherIcon { return IconRain{IsNight: isNight} },
	},
	{
		keywords: []string{"cloud", "overcast"},
		icon:     func(isNight bool) WeatherIcon { return IconClouds{IsNight: isNight} },
	},
	{
		// "Mostly Sunny" and "Mostly Clear" land here too
		keywords: []string{"clear", "sunny"},
		icon:     func(isNight bool) WeatherIcon { return IconClear{IsNight: isNight} },
	},
}

// ClassifyIcon picks an icon for an NWS short forecast. The short forecast
// text is not an enumerable set, so this matches on keywords.
func ClassifyIcon(shortForecast string, isNight bool) WeatherIcon {
	text := strings.ToLower(shortForecast)
	for _, rule := range iconRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.icon(isNight)
			}
		}
	}
	return IconDefault{}
}
