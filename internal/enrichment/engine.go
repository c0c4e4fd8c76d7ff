// Package enrichment builds the full restaurant record from a raw place payload.
// Nothing here performs I/O; the link lookups in links.go are the only extension point that may.
package enrichment

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"restaurant-finder/internal/hours"
	"restaurant-finder/internal/models"
)

const (
	// MaxVibes caps the number of vibe labels on a restaurant.
	MaxVibes = 8
	// MaxImages caps the number of photo URLs on a restaurant.
	MaxImages = 10
	// PhotoMaxWidth is the maxwidth every photo URL is requested at.
	PhotoMaxWidth = 400
)

type Config struct {
	PhotoURL  string
	APIKey    string
	MaxPhotos int // clamped to MaxImages; zero means MaxImages
}

type Engine struct {
	config *Config
	now    func() time.Time
}

// NewEngine creates an engine. A nil clock means time.Now.
func NewEngine(config *Config, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{config: config, now: now}
}

// Build turns a details payload into a Restaurant. Link fields are left at their
// defaults; see ApplyLinks.
func (e *Engine) Build(placeID string, place *models.PlacePayload) *models.Restaurant {
	amenities := Amenities(place)

	return &models.Restaurant{
		PlaceID:            placeID,
		Name:               place.Name,
		Address:            place.FormattedAddress,
		Rating:             place.Rating,
		Contact:            place.FormattedPhoneNumber,
		Website:            place.Website,
		ReservationPartner: models.DefaultReservationPartner,
		OperatingHours:     hours.Format(place.OpeningHours, e.now()),
		Socials:            map[string]*string{},
		Amenities:          amenities,
		Summaries:          Summaries(place),
		Vibes:              Vibes(place, amenities),
		Images:             e.PhotoURLs(place.Photos),
		HowFound: map[string]string{
			"reservation_url": models.ProvenanceGoogleDirect,
			"images":          models.ProvenanceGoogleDirect,
		},
	}
}

// PhotoURLs builds fetch URLs for the first MaxPhotos photos, in order, skipping
// entries with no reference.
func (e *Engine) PhotoURLs(photos []models.PlacePhoto) []string {
	limit := e.config.MaxPhotos
	if limit <= 0 || limit > MaxImages {
		limit = MaxImages
	}
	if len(photos) < limit {
		limit = len(photos)
	}

	urls := make([]string, 0, limit)
	for _, p := range photos[:limit] {
		if p.PhotoReference == "" {
			continue
		}
		urls = append(urls, fmt.Sprintf("%s?maxwidth=%d&photoreference=%s&key=%s",
			e.config.PhotoURL,
			PhotoMaxWidth,
			url.QueryEscape(p.PhotoReference),
			url.QueryEscape(e.config.APIKey),
		))
	}
	return urls
}

// Amenities derives the fixed capability set from the place type tags.
// Every key in models.AmenityKeys is present; keys with no rule below stay false.
func Amenities(place *models.PlacePayload) map[string]bool {
	amenities := models.NewAmenities()
	amenities["dineIn"] = true
	amenities["delivery"] = place.HasType("delivery") || place.HasType("takeout")
	amenities["takeout"] = place.HasType("takeout")
	amenities["outdoorSeating"] = place.HasType("outdoor_seating")
	amenities["goodForGroups"] = place.HasType("meal_takeaway")
	amenities["goodForChildren"] = place.HasType("family_restaurant")
	amenities["servesDinner"] = true
	amenities["servesLunch"] = true
	amenities["servesWine"] = place.HasType("bar") || place.HasType("wine_bar")
	return amenities
}

// Summaries returns the fixed-template summaries.
// TODO: replace with review and editorial summaries once the details field mask requests them.
func Summaries(place *models.PlacePayload) map[string]string {
	return map[string]string{
		"reviewSummary":     fmt.Sprintf("Rated %s by customers", formatRating(place.Rating)),
		"generativeSummary": "A popular dining destination",
		"editorialSummary":  "Well-reviewed restaurant in the area",
	}
}

// formatRating renders whole ratings as "4.0" and a missing one as "N/A".
func formatRating(r *float64) string {
	if r == nil {
		return "N/A"
	}
	s := strconv.FormatFloat(*r, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
