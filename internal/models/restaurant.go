// internal/models/restaurant.go
package models

// Provenance labels recorded in Restaurant.HowFound.
const (
	ProvenanceGoogleDirect = "google direct"
	ProvenanceMockData     = "mock data"
)

// DefaultReservationPartner is the partner label when no reservation link is known.
const DefaultReservationPartner = "None"

// DayNames is the Monday-first week used by OperatingHours.Today.
var DayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// AmenityKeys is the fixed key set every Restaurant.Amenities map carries.
var AmenityKeys = []string{
	"dineIn",
	"delivery",
	"takeout",
	"outdoorSeating",
	"liveMusic",
	"goodForGroups",
	"goodForChildren",
	"servesDinner",
	"servesLunch",
	"servesWine",
}

// NewAmenities returns a map holding every amenity key set to false.
func NewAmenities() map[string]bool {
	m := make(map[string]bool, len(AmenityKeys))
	for _, k := range AmenityKeys {
		m[k] = false
	}
	return m
}

// SearchResult is one row of a text search.
type SearchResult struct {
	PlaceID string   `json:"place_id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Rating  *float64 `json:"rating"`
}

// Restaurant is the enriched details record. Instances handed out by the cache are shared and must not be mutated.
type Restaurant struct {
	PlaceID            string             `json:"place_id"`
	Name               string             `json:"name"`
	Address            string             `json:"address"`
	Rating             *float64           `json:"rating"`
	Contact            *string            `json:"contact"`
	Website            *string            `json:"website"`
	ReservationURL     *string            `json:"reservation_url"`
	ReservationPartner string             `json:"reservation_partner"`
	OperatingHours     *OperatingHours    `json:"operating_hours"`
	Socials            map[string]*string `json:"socials"`
	MenuURL            *string            `json:"menu_url"`
	Amenities          map[string]bool    `json:"amenities"`
	Summaries          map[string]string  `json:"summaries"`
	Vibes              []string           `json:"vibes"`
	Images             []string           `json:"images"`
	HowFound           map[string]string  `json:"how_found"`
}

type OperatingHours struct {
	Periods       []Period       `json:"periods"`
	WeekdayText   []string       `json:"weekday_text"`
	Today         int            `json:"today"`
	TodayHours    *string        `json:"today_hours"`
	CurrentPeriod *CurrentPeriod `json:"current_period"`
	OpenNow       bool           `json:"open_now"`
	DayNames      []string       `json:"day_names"`
}

// CurrentPeriod holds today's opening window in 12-hour form.
type CurrentPeriod struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"is_open"`
}

// Period is one raw day entry as returned upstream; Open or Close is nil on closed days.
type Period struct {
	Open  *DayTime `json:"open,omitempty"`
	Close *DayTime `json:"close,omitempty"`
}

// DayTime is a day index plus a 24h "HHMM" time.
type DayTime struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// Float64Ptr returns a pointer to f.
func Float64Ptr(f float64) *float64 {
	return &f
}
