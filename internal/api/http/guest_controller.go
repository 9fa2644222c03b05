package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vbelov/wedding-invite/internal/api/http/converter"
	"github.com/vbelov/wedding-invite/internal/service"
)

type GuestController struct {
	guests  service.GuestInteractor
	baseURL string
}

func NewGuestController(guests service.GuestInteractor, baseURL string) *GuestController {
	return &GuestController{guests: guests, baseURL: baseURL}
}

func (c *GuestController) GetGuest(ctx *gin.Context) {
	guest, err := c.guests.Resolve(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "invitation not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"guest": converter.GuestToApi(guest)})
}

func (c *GuestController) ListGuests(ctx *gin.Context) {
	guests := c.guests.List(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{
		"guests": converter.RosterToApi(guests, c.baseURL),
		"count":  len(guests),
	})
}
