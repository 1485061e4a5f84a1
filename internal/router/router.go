package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetAvailability(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	UpdateReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.GET("/reservations/availability", h.GetAvailability)
		api.POST("/reservations", h.CreateReservation)
		api.PUT("/reservations/:id", h.UpdateReservation)
		api.DELETE("/reservations/:id", h.CancelReservation)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
