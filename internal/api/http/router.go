package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(pages *PagesController, guests *GuestController, rsvp *RSVPController, allowedOrigins []string, templatesGlob string) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
		config.AllowCredentials = true
	}
	config.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"Origin",
		"Accept",
		RequestIDHeader,
	}
	config.AllowMethods = []string{"GET", "POST", "HEAD", "OPTIONS"}
	router.Use(cors.New(config))
	router.Use(RequestID())

	if templatesGlob != "" {
		router.LoadHTMLGlob(templatesGlob)
	}

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	if guests != nil {
		g := api.Group("/guests")
		g.GET("", guests.ListGuests)
		g.GET("/:code", guests.GetGuest)
	}

	if rsvp != nil {
		r := api.Group("/rsvp")
		r.POST("/confirm", rsvp.Confirm)
		r.POST("/survey", rsvp.Survey)
	}

	if pages != nil {
		router.GET("/", pages.Invitation)
		router.GET("/papers", pages.Papers)
		router.GET("/qr/:code", pages.QR)
		router.GET("/:code", pages.Invitation)
	}

	return router
}
