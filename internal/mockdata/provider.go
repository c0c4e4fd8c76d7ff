// Package mockdata produces the fixed search results and restaurant record served in mock mode.
// Output depends only on the arguments and the clock; there is no randomness.
package mockdata

import (
	"fmt"
	"time"

	"restaurant-finder/internal/hours"
	"restaurant-finder/internal/models"
)

const (
	mockWebsite = "https://example-restaurant.com"
	mockAddress = "123 Main Street, Sample City, SC 12345"
)

type Provider struct {
	now func() time.Time
}

// NewProvider creates a provider. The clock only affects the derived operating-hours fields.
func NewProvider(now func() time.Time) *Provider {
	if now == nil {
		now = time.Now
	}
	return &Provider{now: now}
}

// SearchResults returns three results whose names quote query.
func (p *Provider) SearchResults(query string) []models.SearchResult {
	return []models.SearchResult{
		{
			PlaceID: "mock_place_1",
			Name:    fmt.Sprintf("Sample Restaurant for '%s'", query),
			Address: mockAddress,
			Rating:  models.Float64Ptr(4.5),
		},
		{
			PlaceID: "mock_place_2",
			Name:    fmt.Sprintf("Another Restaurant for '%s'", query),
			Address: "456 Oak Avenue, Sample City, SC 12345",
			Rating:  models.Float64Ptr(4.2),
		},
		{
			PlaceID: "mock_place_3",
			Name:    fmt.Sprintf("Third Restaurant for '%s'", query),
			Address: "789 Pine Road, Sample City, SC 12345",
			Rating:  models.Float64Ptr(3.8),
		},
	}
}

// Restaurant returns the sample record under placeID.
func (p *Provider) Restaurant(placeID string) *models.Restaurant {
	return &models.Restaurant{
		PlaceID:            placeID,
		Name:               "Sample Restaurant",
		Address:            mockAddress,
		Rating:             models.Float64Ptr(4.5),
		Contact:            models.StringPtr("(555) 123-4567"),
		Website:            models.StringPtr(mockWebsite),
		ReservationURL:     nil,
		ReservationPartner: models.DefaultReservationPartner,
		OperatingHours:     hours.Format(openingHours(), p.now()),
		Socials: map[string]*string{
			"instagram": models.StringPtr("https://instagram.com/sample_restaurant"),
			"facebook":  models.StringPtr("https://facebook.com/sample_restaurant"),
			"twitter":   nil,
		},
		MenuURL:   models.StringPtr(mockWebsite + "/menu"),
		Amenities: mockAmenities(),
		Summaries: map[string]string{
			"reviewSummary":     "Highly rated restaurant with excellent food and service",
			"generativeSummary": "A popular dining destination known for its quality cuisine",
			"editorialSummary":  "Well-reviewed restaurant in the heart of the city",
		},
		Vibes: []string{"Family-friendly", "Casual", "Good for Groups"},
		Images: []string{
			"https://via.placeholder.com/400x300/667eea/ffffff?text=Restaurant+Image+1",
			"https://via.placeholder.com/400x300/764ba2/ffffff?text=Restaurant+Image+2",
		},
		HowFound: map[string]string{
			"reservation_url": models.ProvenanceMockData,
			"images":          models.ProvenanceMockData,
		},
	}
}

func openingHours() *models.PlaceOpeningHours {
	schedule := []struct{ open, close, text string }{
		{"1100", "2200", "Monday: 11:00 AM – 10:00 PM"},
		{"1100", "2200", "Tuesday: 11:00 AM – 10:00 PM"},
		{"1100", "2200", "Wednesday: 11:00 AM – 10:00 PM"},
		{"1100", "2200", "Thursday: 11:00 AM – 10:00 PM"},
		{"1100", "2300", "Friday: 11:00 AM – 11:00 PM"},
		{"1000", "2300", "Saturday: 10:00 AM – 11:00 PM"},
		{"1000", "2100", "Sunday: 10:00 AM – 9:00 PM"},
	}

	oh := &models.PlaceOpeningHours{OpenNow: true}
	for day, s := range schedule {
		oh.Periods = append(oh.Periods, models.Period{
			Open:  &models.DayTime{Day: day, Time: s.open},
			Close: &models.DayTime{Day: day, Time: s.close},
		})
		oh.WeekdayText = append(oh.WeekdayText, s.text)
	}
	return oh
}

// mockAmenities enables everything except live music.
func mockAmenities() map[string]bool {
	amenities := models.NewAmenities()
	for k := range amenities {
		amenities[k] = k != "liveMusic"
	}
	return amenities
}
