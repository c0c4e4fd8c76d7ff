// internal/models/place.go
package models

import "encoding/json"

// Places API status values.
const (
	PlacesStatusOK = "OK"
)

// TextSearchResponse is the text search payload.
type TextSearchResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	Results      []PlaceSummary `json:"results"`
}

type PlaceSummary struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Rating           *float64 `json:"rating,omitempty"`
}

// DetailsResponse is the details payload. Result stays raw so an empty object can be told apart from a place.
type DetailsResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Result       json.RawMessage `json:"result,omitempty"`
}

// PlacePayload is the subset of a details result the enrichment uses.
type PlacePayload struct {
	Name                 string             `json:"name"`
	FormattedAddress     string             `json:"formatted_address"`
	FormattedPhoneNumber *string            `json:"formatted_phone_number,omitempty"`
	Website              *string            `json:"website,omitempty"`
	OpeningHours         *PlaceOpeningHours `json:"opening_hours,omitempty"`
	Photos               []PlacePhoto       `json:"photos,omitempty"`
	Rating               *float64           `json:"rating,omitempty"`
	PriceLevel           *int               `json:"price_level,omitempty"`
	Types                []string           `json:"types,omitempty"`
	URL                  string             `json:"url,omitempty"`
}

type PlaceOpeningHours struct {
	OpenNow     bool     `json:"open_now"`
	Periods     []Period `json:"periods,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type PlacePhoto struct {
	PhotoReference string `json:"photo_reference"`
	Height         int    `json:"height,omitempty"`
	Width          int    `json:"width,omitempty"`
}

// HasType reports whether the place carries tag t.
func (p *PlacePayload) HasType(t string) bool {
	for _, tag := range p.Types {
		if tag == t {
			return true
		}
	}
	return false
}
