package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	SignupEvent(c *ginext.Context)
	LeaveEvent(c *ginext.Context)

	RegisterGamer(c *ginext.Context)
	GetGamer(c *ginext.Context)
	ListGamers(c *ginext.Context)
	UpdateGamer(c *ginext.Context)
	DeleteGamer(c *ginext.Context)

	CreateGame(c *ginext.Context)
	GetGame(c *ginext.Context)
	ListGames(c *ginext.Context)
	UpdateGame(c *ginext.Context)
	DeleteGame(c *ginext.Context)

	CreateGameType(c *ginext.Context)
	GetGameType(c *ginext.Context)
	ListGameTypes(c *ginext.Context)
	UpdateGameType(c *ginext.Context)
	DeleteGameType(c *ginext.Context)

	CreateAttendance(c *ginext.Context)
	GetAttendance(c *ginext.Context)
	ListAttendances(c *ginext.Context)
	UpdateAttendance(c *ginext.Context)
	DeleteAttendance(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events and attendance actions
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", h.CreateEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/events/:id/signup", h.SignupEvent)
		api.DELETE("/events/:id/leave", h.LeaveEvent)

		// Gamers
		api.POST("/register", h.RegisterGamer)
		api.POST("/gamers", h.RegisterGamer)
		api.GET("/gamers", h.ListGamers)
		api.GET("/gamers/:id", h.GetGamer)
		api.PUT("/gamers/:id", h.UpdateGamer)
		api.DELETE("/gamers/:id", h.DeleteGamer)

		// Games
		api.POST("/games", h.CreateGame)
		api.GET("/games", h.ListGames)
		api.GET("/games/:id", h.GetGame)
		api.PUT("/games/:id", h.UpdateGame)
		api.DELETE("/games/:id", h.DeleteGame)

		// Game types
		api.POST("/gametypes", h.CreateGameType)
		api.GET("/gametypes", h.ListGameTypes)
		api.GET("/gametypes/:id", h.GetGameType)
		api.PUT("/gametypes/:id", h.UpdateGameType)
		api.DELETE("/gametypes/:id", h.DeleteGameType)

		// Attendance records as a plain resource
		api.POST("/attendances", h.CreateAttendance)
		api.GET("/attendances", h.ListAttendances)
		api.GET("/attendances/:id", h.GetAttendance)
		api.PUT("/attendances/:id", h.UpdateAttendance)
		api.DELETE("/attendances/:id", h.DeleteAttendance)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
