package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vbelov/wedding-invite/internal/config"
	"github.com/vbelov/wedding-invite/internal/domain"
	"github.com/vbelov/wedding-invite/internal/qr"
	"github.com/vbelov/wedding-invite/internal/service"
	"github.com/vbelov/wedding-invite/internal/view"
)

// PagesController renders the guest-facing pages: the invitation itself
// and the printable cards.
type PagesController struct {
	guests    service.GuestInteractor
	event     config.EventConfig
	site      config.SiteConfig
	questions []domain.SurveyQuestion
	log       *slog.Logger
}

func NewPagesController(guests service.GuestInteractor, event config.EventConfig, site config.SiteConfig, questions []domain.SurveyQuestion, log *slog.Logger) *PagesController {
	if log == nil {
		log = slog.Default()
	}
	return &PagesController{
		guests:    guests,
		event:     event,
		site:      site,
		questions: questions,
		log:       log,
	}
}

// Invitation resolves the code from the path and renders either the
// personalized invitation or the not-found page. Every lookup miss,
// including read failures, lands on the same friendly page.
func (c *PagesController) Invitation(ctx *gin.Context) {
	visit := view.NewVisit(ctx.Param("code"))

	guest, err := c.guests.Resolve(ctx.Request.Context(), visit.Code())
	if err != nil {
		visit.Resolve(nil)
	} else {
		visit.Resolve(guest)
	}

	if visit.State() != view.StateLoaded {
		ctx.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{})
		return
	}

	ctx.HTML(http.StatusOK, "invitation.tmpl", gin.H{
		"Guest":           guest,
		"Confirmed":       visit.Confirmed(),
		"Event":           c.event,
		"Questions":       c.questions,
		"Countdown":       view.Until(c.event.StartsAt, time.Now()),
		"CountdownTarget": c.event.StartsAt.Format(time.RFC3339),
		"MessageLimit":    c.site.ConfirmMessageLimit,
	})
}

// Papers renders one printable card per guest, each carrying a QR code
// that points back at the guest's invitation URL.
func (c *PagesController) Papers(ctx *gin.Context) {
	guests := c.guests.List(ctx.Request.Context())
	if len(guests) == 0 {
		ctx.HTML(http.StatusOK, "papers.tmpl", gin.H{"Error": true})
		return
	}

	type card struct {
		Guest domain.Guest
		Link  string
		QR    string
	}
	cards := make([]card, 0, len(guests))
	for _, g := range guests {
		link := qr.InvitationURL(c.site.BaseURL, g.Code)
		cards = append(cards, card{
			Guest: g,
			Link:  link,
			QR:    qr.ImageURL(c.site.QRImageBase, link, c.site.QRSize),
		})
	}

	ctx.HTML(http.StatusOK, "papers.tmpl", gin.H{
		"Cards": cards,
		"Event": c.event,
	})
}

// QR serves a locally rendered QR PNG for a guest's invitation URL, so
// printing does not have to rely on the external image generator.
func (c *PagesController) QR(ctx *gin.Context) {
	guest, err := c.guests.Resolve(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "invitation not found"})
		return
	}

	png, err := qr.Encode(qr.InvitationURL(c.site.BaseURL, guest.Code), c.site.QRSize)
	if err != nil {
		c.log.Error("qr render failed", slog.String("code", guest.Code), slog.Any("error", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "qr render failed"})
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}
