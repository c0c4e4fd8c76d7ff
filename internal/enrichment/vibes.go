// internal/enrichment/vibes.go
package enrichment

import "restaurant-finder/internal/models"

type vibeRule struct {
	label string
	match func(place *models.PlacePayload, amenities map[string]bool) bool
}

// vibeRules are evaluated in order; every matching rule contributes its label.
var vibeRules = []vibeRule{
	{"Lively", func(_ *models.PlacePayload, a map[string]bool) bool { return a["liveMusic"] }},
	{"Family-friendly", func(_ *models.PlacePayload, a map[string]bool) bool { return a["goodForChildren"] }},
	{"Chill / Lounge", func(_ *models.PlacePayload, a map[string]bool) bool { return a["servesWine"] && a["outdoorSeating"] }},
	{"Luxury dining", func(p *models.PlacePayload, _ map[string]bool) bool { return p.PriceLevel != nil && *p.PriceLevel >= 4 }},
	{"Romantic", hasType("romantic_restaurant")},
	{"Casual", hasType("casual_restaurant")},
	{"Fine Dining", hasType("fine_dining")},
}

func hasType(tag string) func(*models.PlacePayload, map[string]bool) bool {
	return func(p *models.PlacePayload, _ map[string]bool) bool { return p.HasType(tag) }
}

// Vibes classifies a place, keeping at most MaxVibes labels in rule order.
func Vibes(place *models.PlacePayload, amenities map[string]bool) []string {
	return classify(vibeRules, place, amenities, MaxVibes)
}

func classify(rules []vibeRule, place *models.PlacePayload, amenities map[string]bool, max int) []string {
	vibes := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.match(place, amenities) {
			vibes = append(vibes, r.label)
		}
	}
	if len(vibes) > max {
		vibes = vibes[:max]
	}
	return vibes
}
