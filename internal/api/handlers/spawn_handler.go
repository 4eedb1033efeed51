package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/exam-hub/internal/application"
	"github.com/linskybing/exam-hub/pkg/response"
)

type SpawnHandler struct {
	service *application.SpawnService
}

func NewSpawnHandler(service *application.SpawnService) *SpawnHandler {
	return &SpawnHandler{service: service}
}

func spawnErrorStatus(err error) int {
	switch {
	case errors.Is(err, application.ErrInvalidUsername):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrCourseNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrUserNotEnrolled), errors.Is(err, application.ErrNotCourseMember):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// GetPlan godoc
// @Summary Get the spawn plan of a user's exam server
// @Description Volume mounts, spawner overrides and startup commands for one user and course.
// @Tags spawn
// @Security BearerAuth
// @Produce json
// @Param username path string true "Username"
// @Param course query string false "Course id (<name>-<semester>); defaults to the user's first course"
// @Success 200 {object} response.SuccessResponse{data=application.SpawnPlan}
// @Failure 400 {object} response.ErrorResponse "Invalid username"
// @Failure 403 {object} response.ErrorResponse "User is not enrolled in the course"
// @Failure 404 {object} response.ErrorResponse "Course not found"
// @Router /users/{username}/spawn [get]
func (h *SpawnHandler) GetPlan(c *gin.Context) {
	plan, err := h.service.Plan(c.Param("username"), c.Query("course"))
	if err != nil {
		_ = c.Error(err)
		c.JSON(spawnErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: plan})
}

// GetContainer godoc
// @Summary Get the spawn plan as a notebook container
// @Tags spawn
// @Security BearerAuth
// @Produce json
// @Param username path string true "Username"
// @Param course query string false "Course id (<name>-<semester>)"
// @Success 200 {object} response.SuccessResponse{data=v1.Container}
// @Failure 400 {object} response.ErrorResponse "Invalid username"
// @Failure 403 {object} response.ErrorResponse "User is not enrolled in the course"
// @Failure 404 {object} response.ErrorResponse "Course not found"
// @Router /users/{username}/spawn/container [get]
func (h *SpawnHandler) GetContainer(c *gin.Context) {
	container, err := h.service.Container(c.Param("username"), c.Query("course"))
	if err != nil {
		_ = c.Error(err)
		c.JSON(spawnErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: container})
}
