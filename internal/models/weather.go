package models

// CurrentConditions holds present-moment weather for a location
type CurrentConditions struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	Icon        string `json:"icon"`
}

// ForecastDay is a single day of forecast
type ForecastDay struct {
	Date          string `json:"date"`
	High          int    `json:"high"`
	Low           int    `json:"low"`
	Condition     string `json:"condition"`
	Icon          string `json:"icon"`
	Precipitation int    `json:"precipitation"`
}

// WeatherData is the weather report for a location: current conditions plus
// a 7-day forecast
type WeatherData struct {
	Location string            `json:"location"`
	Current  CurrentConditions `json:"current"`
	Forecast []ForecastDay     `json:"forecast"`
}
