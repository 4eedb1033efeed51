package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/exam-hub/internal/application"
	"github.com/linskybing/exam-hub/pkg/response"
)

type HubHandler struct {
	service *application.HubService
}

func NewHubHandler(service *application.HubService) *HubHandler {
	return &HubHandler{service: service}
}

// ListUsers godoc
// @Summary List every user allowed on the exam hub
// @Tags hub
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]string}
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} response.ErrorResponse "Hub token required"
// @Router /hub/users [get]
func (h *HubHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessResponse{Data: h.service.Users()})
}

// ListCourses godoc
// @Summary List active exam courses
// @Tags hub
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]application.CourseSummary}
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} response.ErrorResponse "Hub token required"
// @Router /hub/courses [get]
func (h *HubHandler) ListCourses(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessResponse{Data: h.service.Courses()})
}

// ListUserCourses godoc
// @Summary List the exam courses a user is a member of
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} response.SuccessResponse{data=[]application.CourseSummary}
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} response.ErrorResponse "Token does not grant access to this user"
// @Router /users/{username}/courses [get]
func (h *HubHandler) ListUserCourses(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessResponse{Data: h.service.CoursesForUser(c.Param("username"))})
}
