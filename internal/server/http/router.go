package http

import (
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the REST routes. Everything under /api except register
// and login needs a bearer token.
func NewRouter(h *Handler, auth authenticator, logger logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))

	r.GET("/ping", h.Ping)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", h.Register)
			users.POST("/login", h.Login)

			me := users.Group("/me", RequireUser(auth))
			{
				me.GET("", h.Me)
				me.PUT("/photo", h.UploadPhoto)
				me.GET("/photo", h.DownloadPhoto)
				me.GET("/photo/url", h.PhotoURL)
			}
		}

		todos := api.Group("/todos", RequireUser(auth))
		{
			todos.GET("", h.ListTodos)
			todos.POST("", h.CreateTodo)
			todos.GET("/:id", h.GetTodo)
			todos.PATCH("/:id", h.UpdateTodo)
			todos.DELETE("/:id", h.DeleteTodo)
		}
	}

	return r
}
