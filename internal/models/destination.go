package models

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Review represents a traveler review attached to a destination
type Review struct {
	ID           string  `json:"id"`
	Author       string  `json:"author"`
	Rating       float64 `json:"rating"`
	Text         string  `json:"text"`
	Date         string  `json:"date"`
	ProfilePhoto string  `json:"profilePhoto,omitempty"`
	Source       string  `json:"source"` // google, tripadvisor, internal
}

// Destination represents a browsable travel destination
type Destination struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Country         string      `json:"country"`
	Description     string      `json:"description"`
	ImageURL        string      `json:"imageUrl"`
	Rating          float64     `json:"rating"`
	Coordinates     Coordinates `json:"coordinates"`
	Category        string      `json:"category"` // beach, mountain, city, cultural, adventure, nature
	BestTimeToVisit string      `json:"bestTimeToVisit"`
	AverageCost     float64     `json:"averageCost"`
	Activities      []string    `json:"activities"`
	Address         string      `json:"address,omitempty"`
	Reviews         []Review    `json:"reviews,omitempty"`
	GooglePlaceID   string      `json:"googlePlaceId,omitempty"`
}
