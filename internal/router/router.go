package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	Login(c *ginext.Context)
	AdminListEvents(c *ginext.Context)
	AdminCreateEvent(c *ginext.Context)
	AdminUpdateEvent(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/health", func(c *ginext.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public
	router.GET("/events", h.ListEvents)
	router.POST("/bookings", h.CreateBooking)
	router.POST("/login", h.Login)

	// Admin
	admin := router.Group("/admin")
	{
		admin.GET("/events", h.AdminListEvents)
		admin.POST("/events", h.AdminCreateEvent)
		admin.PUT("/events/:id", h.AdminUpdateEvent)
	}

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	router.GET("/", func(c *ginext.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	return router
}
