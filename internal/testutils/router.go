package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/exam-hub/internal/api/middleware"
	"github.com/linskybing/exam-hub/internal/api/routes"
	"github.com/linskybing/exam-hub/internal/application"
)

func SetupRouter(catalog application.CourseCatalog, auth *middleware.JWTAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, application.New(catalog), auth)
	return r
}
