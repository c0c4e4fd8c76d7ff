// internal/enrichment/links.go
package enrichment

import (
	"context"

	"restaurant-finder/internal/models"
)

// Notes returned by ReservationURL alongside the partner label.
const (
	NoteNoWebsite       = "no website"
	NoteAnalysisPending = "website analysis needed"
)

// LinkFinder looks up reservation, social and menu links from a restaurant website.
type LinkFinder interface {
	ReservationURL(ctx context.Context, website *string) (reservationURL *string, partner string, note string)
	SocialLinks(ctx context.Context, website *string) map[string]*string
	MenuURL(ctx context.Context, website *string) *string
}

// NoopLinkFinder finds nothing. With a website it still reports the social platforms it would look for.
type NoopLinkFinder struct{}

var _ LinkFinder = NoopLinkFinder{}

func (NoopLinkFinder) ReservationURL(_ context.Context, website *string) (*string, string, string) {
	if website == nil || *website == "" {
		return nil, models.DefaultReservationPartner, NoteNoWebsite
	}
	return nil, models.DefaultReservationPartner, NoteAnalysisPending
}

func (NoopLinkFinder) SocialLinks(_ context.Context, website *string) map[string]*string {
	if website == nil || *website == "" {
		return map[string]*string{}
	}
	return map[string]*string{
		"instagram": nil,
		"facebook":  nil,
		"twitter":   nil,
	}
}

func (NoopLinkFinder) MenuURL(_ context.Context, _ *string) *string {
	return nil
}

// ApplyLinks fills the reservation, social and menu fields of r from finder.
func ApplyLinks(ctx context.Context, finder LinkFinder, r *models.Restaurant) {
	if finder == nil {
		finder = NoopLinkFinder{}
	}
	r.ReservationURL, r.ReservationPartner, _ = finder.ReservationURL(ctx, r.Website)
	if r.ReservationPartner == "" {
		r.ReservationPartner = models.DefaultReservationPartner
	}
	r.Socials = finder.SocialLinks(ctx, r.Website)
	if r.Socials == nil {
		r.Socials = map[string]*string{}
	}
	r.MenuURL = finder.MenuURL(ctx, r.Website)
}
