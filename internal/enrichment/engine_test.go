// internal/enrichment/engine_test.go
package enrichment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"restaurant-finder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		PhotoURL:  "https://maps.example.com/place/photo",
		APIKey:    "test-key",
		MaxPhotos: 10,
	}
}

func fixedNow() time.Time {
	// Monday 15:00
	return time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)
}

func createEngine() *Engine {
	return NewEngine(createTestConfig(), fixedNow)
}

func intPtr(i int) *int { return &i }

func photos(refs ...string) []models.PlacePhoto {
	out := make([]models.PlacePhoto, len(refs))
	for i, r := range refs {
		out[i] = models.PlacePhoto{PhotoReference: r}
	}
	return out
}

// ==========================
// Amenities
// ==========================

func TestAmenities(t *testing.T) {
	tests := []struct {
		name     string
		types    []string
		expected map[string]bool
	}{
		{
			name:  "no tags",
			types: nil,
			expected: map[string]bool{
				"dineIn": true, "delivery": false, "takeout": false, "outdoorSeating": false,
				"liveMusic": false, "goodForGroups": false, "goodForChildren": false,
				"servesDinner": true, "servesLunch": true, "servesWine": false,
			},
		},
		{
			name:  "takeout implies delivery",
			types: []string{"takeout"},
			expected: map[string]bool{
				"dineIn": true, "delivery": true, "takeout": true, "outdoorSeating": false,
				"liveMusic": false, "goodForGroups": false, "goodForChildren": false,
				"servesDinner": true, "servesLunch": true, "servesWine": false,
			},
		},
		{
			name:  "every signal",
			types: []string{"delivery", "outdoor_seating", "meal_takeaway", "family_restaurant", "wine_bar"},
			expected: map[string]bool{
				"dineIn": true, "delivery": true, "takeout": false, "outdoorSeating": true,
				"liveMusic": false, "goodForGroups": true, "goodForChildren": true,
				"servesDinner": true, "servesLunch": true, "servesWine": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amenities(&models.PlacePayload{Types: tt.types})
			assert.Equal(t, tt.expected, got)
			for _, key := range models.AmenityKeys {
				assert.Contains(t, got, key)
			}
		})
	}
}

// ==========================
// Vibes
// ==========================

func TestVibes_RuleOrder(t *testing.T) {
	place := &models.PlacePayload{
		Types:      []string{"family_restaurant", "bar", "outdoor_seating", "romantic_restaurant", "casual_restaurant", "fine_dining"},
		PriceLevel: intPtr(4),
	}

	got := Vibes(place, Amenities(place))

	assert.Equal(t, []string{"Family-friendly", "Chill / Lounge", "Luxury dining", "Romantic", "Casual", "Fine Dining"}, got)
}

func TestVibes_AllRulesMatch(t *testing.T) {
	place := &models.PlacePayload{
		Types:      []string{"family_restaurant", "bar", "outdoor_seating", "romantic_restaurant", "casual_restaurant", "fine_dining"},
		PriceLevel: intPtr(4),
	}
	amenities := Amenities(place)
	amenities["liveMusic"] = true

	got := Vibes(place, amenities)

	assert.Equal(t, []string{"Lively", "Family-friendly", "Chill / Lounge", "Luxury dining", "Romantic", "Casual", "Fine Dining"}, got)
}

func TestVibes_CapAtEight(t *testing.T) {
	rules := append([]vibeRule{}, vibeRules...)
	for i := 0; i < 4; i++ {
		rules = append(rules, vibeRule{label: fmt.Sprintf("Extra %d", i), match: func(*models.PlacePayload, map[string]bool) bool { return true }})
	}
	place := &models.PlacePayload{
		Types:      []string{"family_restaurant", "bar", "outdoor_seating", "romantic_restaurant", "casual_restaurant", "fine_dining"},
		PriceLevel: intPtr(4),
	}
	amenities := Amenities(place)
	amenities["liveMusic"] = true

	got := classify(rules, place, amenities, MaxVibes)

	require.Len(t, got, 8)
	assert.Equal(t, "Lively", got[0])
	assert.Equal(t, "Fine Dining", got[6])
	assert.Equal(t, "Extra 0", got[7])
}

func TestVibes_PriceLevel(t *testing.T) {
	for _, tt := range []struct {
		level    *int
		expected bool
	}{
		{nil, false}, {intPtr(3), false}, {intPtr(4), true},
	} {
		place := &models.PlacePayload{PriceLevel: tt.level}
		got := Vibes(place, Amenities(place))
		assert.Equal(t, tt.expected, len(got) == 1 && got[0] == "Luxury dining")
	}
}

// ==========================
// Photos
// ==========================

func TestPhotoURLs(t *testing.T) {
	e := createEngine()

	got := e.PhotoURLs(photos("ref-a", "", "ref/b"))

	assert.Equal(t, []string{
		"https://maps.example.com/place/photo?maxwidth=400&photoreference=ref-a&key=test-key",
		"https://maps.example.com/place/photo?maxwidth=400&photoreference=ref%2Fb&key=test-key",
	}, got)
}

func TestPhotoURLs_FirstTenOnly(t *testing.T) {
	e := createEngine()
	refs := make([]string, 15)
	for i := range refs {
		refs[i] = fmt.Sprintf("ref%02d", i)
	}

	got := e.PhotoURLs(photos(refs...))

	require.Len(t, got, 10)
	assert.Contains(t, got[0], "photoreference=ref00")
	assert.Contains(t, got[9], "photoreference=ref09")
}

func TestPhotoURLs_EmptyReferenceCountsTowardLimit(t *testing.T) {
	e := createEngine()
	refs := []string{""}
	for i := 0; i < 10; i++ {
		refs = append(refs, fmt.Sprintf("ref%d", i))
	}

	got := e.PhotoURLs(photos(refs...))

	assert.Len(t, got, 9)
}

func TestPhotoURLs_LimitClampedToMaxImages(t *testing.T) {
	refs := make([]string, 20)
	for i := range refs {
		refs[i] = fmt.Sprintf("ref%02d", i)
	}

	for _, maxPhotos := range []int{0, 25} {
		t.Run(fmt.Sprintf("max_photos=%d", maxPhotos), func(t *testing.T) {
			cfg := createTestConfig()
			cfg.MaxPhotos = maxPhotos
			e := NewEngine(cfg, fixedNow)

			r := e.Build("p1", &models.PlacePayload{Name: "Many Photos", Photos: photos(refs...)})

			require.Len(t, r.Images, MaxImages)
			assert.Contains(t, r.Images[9], "photoreference=ref09")
			for _, u := range r.Images {
				assert.Contains(t, u, "maxwidth=400&")
			}
		})
	}
}

func TestPhotoURLs_SmallerLimit(t *testing.T) {
	cfg := createTestConfig()
	cfg.MaxPhotos = 2
	e := NewEngine(cfg, fixedNow)

	got := e.PhotoURLs(photos("a", "b", "c"))

	assert.Len(t, got, 2)
}

// ==========================
// Summaries
// ==========================

func TestSummaries(t *testing.T) {
	tests := []struct {
		name     string
		rating   *float64
		expected string
	}{
		{name: "fractional", rating: models.Float64Ptr(4.5), expected: "Rated 4.5 by customers"},
		{name: "whole", rating: models.Float64Ptr(4), expected: "Rated 4.0 by customers"},
		{name: "missing", rating: nil, expected: "Rated N/A by customers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summaries(&models.PlacePayload{Rating: tt.rating})
			assert.Equal(t, tt.expected, got["reviewSummary"])
			assert.Equal(t, "A popular dining destination", got["generativeSummary"])
			assert.Equal(t, "Well-reviewed restaurant in the area", got["editorialSummary"])
		})
	}
}

// ==========================
// Build
// ==========================

func TestBuild(t *testing.T) {
	e := createEngine()
	place := &models.PlacePayload{
		Name:                 "Trattoria",
		FormattedAddress:     "1 Via Roma",
		FormattedPhoneNumber: models.StringPtr("+39 06 000"),
		Website:              models.StringPtr("https://trattoria.example"),
		Rating:               models.Float64Ptr(4.6),
		Types:                []string{"restaurant", "bar"},
		Photos:               photos("p1"),
		OpeningHours: &models.PlaceOpeningHours{
			Periods: []models.Period{{
				Open:  &models.DayTime{Day: 0, Time: "1100"},
				Close: &models.DayTime{Day: 0, Time: "2200"},
			}},
		},
	}

	r := e.Build("place-1", place)

	assert.Equal(t, "place-1", r.PlaceID)
	assert.Equal(t, "Trattoria", r.Name)
	assert.Equal(t, "1 Via Roma", r.Address)
	assert.Equal(t, "+39 06 000", *r.Contact)
	assert.Equal(t, models.DefaultReservationPartner, r.ReservationPartner)
	assert.True(t, r.Amenities["servesWine"])
	assert.Len(t, r.Images, 1)
	assert.Equal(t, map[string]string{"reservation_url": "google direct", "images": "google direct"}, r.HowFound)
	require.NotNil(t, r.OperatingHours)
	require.NotNil(t, r.OperatingHours.CurrentPeriod)
	assert.True(t, r.OperatingHours.OpenNow)
	assert.NotNil(t, r.Vibes)
}

func TestBuild_NoHours(t *testing.T) {
	r := createEngine().Build("place-2", &models.PlacePayload{Name: "Bare"})

	assert.Nil(t, r.OperatingHours)
	assert.Empty(t, r.Images)
	assert.Empty(t, r.Vibes)
	assert.Len(t, r.Amenities, len(models.AmenityKeys))
}

// ==========================
// Links
// ==========================

func TestApplyLinks_Noop(t *testing.T) {
	ctx := context.Background()

	withSite := &models.Restaurant{Website: models.StringPtr("https://x.example")}
	ApplyLinks(ctx, NoopLinkFinder{}, withSite)
	assert.Nil(t, withSite.ReservationURL)
	assert.Equal(t, "None", withSite.ReservationPartner)
	assert.Len(t, withSite.Socials, 3)
	assert.Contains(t, withSite.Socials, "instagram")
	assert.Nil(t, withSite.Socials["instagram"])
	assert.Nil(t, withSite.MenuURL)

	noSite := &models.Restaurant{}
	ApplyLinks(ctx, nil, noSite)
	assert.Equal(t, "None", noSite.ReservationPartner)
	assert.NotNil(t, noSite.Socials)
	assert.Empty(t, noSite.Socials)
}

func TestNoopLinkFinder_Notes(t *testing.T) {
	ctx := context.Background()

	_, _, note := NoopLinkFinder{}.ReservationURL(ctx, nil)
	assert.Equal(t, NoteNoWebsite, note)

	_, _, note = NoopLinkFinder{}.ReservationURL(ctx, models.StringPtr("https://x.example"))
	assert.Equal(t, NoteAnalysisPending, note)
}

type stubFinder struct{}

func (stubFinder) ReservationURL(context.Context, *string) (*string, string, string) {
	return models.StringPtr("https://book.example/r/1"), "BookIt", ""
}
func (stubFinder) SocialLinks(context.Context, *string) map[string]*string {
	return map[string]*string{"instagram": models.StringPtr("https://instagram.com/r1")}
}
func (stubFinder) MenuURL(context.Context, *string) *string {
	return models.StringPtr("https://r1.example/menu")
}

func TestApplyLinks_CustomFinder(t *testing.T) {
	r := &models.Restaurant{}
	ApplyLinks(context.Background(), stubFinder{}, r)

	assert.Equal(t, "https://book.example/r/1", *r.ReservationURL)
	assert.Equal(t, "BookIt", r.ReservationPartner)
	assert.Equal(t, "https://r1.example/menu", *r.MenuURL)
}
