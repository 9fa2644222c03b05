package converter

import (
	"github.com/vbelov/wedding-invite/internal/domain"
	"github.com/vbelov/wedding-invite/internal/qr"
)

type GuestResponse struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	Confirmed bool   `json:"confirmed"`
}

// RosterEntry is one printable card's worth of data: the guest plus the
// links baked into its QR code.
type RosterEntry struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	Confirmed bool   `json:"confirmed"`
	URL       string `json:"url"`
}

func GuestToApi(g *domain.Guest) *GuestResponse {
	return &GuestResponse{
		Name:      g.Name,
		Code:      g.Code,
		Confirmed: g.Confirmed,
	}
}

func RosterToApi(guests []domain.Guest, baseURL string) []RosterEntry {
	entries := make([]RosterEntry, 0, len(guests))
	for _, g := range guests {
		entries = append(entries, RosterEntry{
			Name:      g.Name,
			Code:      g.Code,
			Confirmed: g.Confirmed,
			URL:       qr.InvitationURL(baseURL, g.Code),
		})
	}
	return entries
}
