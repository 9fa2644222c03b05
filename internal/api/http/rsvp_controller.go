package http

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/vbelov/wedding-invite/internal/domain"
	"github.com/vbelov/wedding-invite/internal/service"
)

type RSVPController struct {
	rsvp         service.RSVPInteractor
	messageLimit int
}

func NewRSVPController(rsvp service.RSVPInteractor, messageLimit int) *RSVPController {
	if messageLimit <= 0 {
		messageLimit = 500
	}
	return &RSVPController{rsvp: rsvp, messageLimit: messageLimit}
}

func (c *RSVPController) Confirm(ctx *gin.Context) {
	type request struct {
		Code    string `json:"code" binding:"required"`
		Message string `json:"message"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if utf8.RuneCountInString(req.Message) > c.messageLimit {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "message is too long"})
		return
	}

	writeSubmitResult(ctx, c.rsvp.Confirm(ctx.Request.Context(), req.Code, req.Message))
}

func (c *RSVPController) Survey(ctx *gin.Context) {
	type request struct {
		Code    string            `json:"code" binding:"required"`
		Answers map[string]string `json:"answers"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	writeSubmitResult(ctx, c.rsvp.Survey(ctx.Request.Context(), req.Code, domain.SurveyAnswers(req.Answers)))
}

func writeSubmitResult(ctx *gin.Context, result domain.SubmitResult) {
	if result.OK {
		ctx.JSON(http.StatusOK, result)
		return
	}
	ctx.JSON(http.StatusBadGateway, result)
}
