package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/exam-hub/internal/api/handlers"
	"github.com/linskybing/exam-hub/internal/api/middleware"
	"github.com/linskybing/exam-hub/internal/application"
	"github.com/linskybing/exam-hub/pkg/response"
)

func RegisterRoutes(r *gin.Engine, services *application.Services, auth *middleware.JWTAuth) {
	h := handlers.New(services)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.MessageResponse{Message: "ok"})
	})

	hub := r.Group("/hub")
	hub.Use(auth.Required(), auth.Admin())
	{
		hub.GET("/users", h.Hub.ListUsers)
		hub.GET("/courses", h.Hub.ListCourses)
	}

	users := r.Group("/users/:username")
	users.Use(auth.Required(), auth.SelfOrAdmin("username"))
	{
		users.GET("/courses", h.Hub.ListUserCourses)
		users.GET("/spawn", h.Spawn.GetPlan)
		users.GET("/spawn/container", h.Spawn.GetContainer)
	}
}
