package api

import (
	"emerge/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every endpoint under /api
func RegisterRoutes(r gin.IRouter, svc *service.ProgressService) {
	api := r.Group("/api")
	api.GET("/check-new", CheckNewHandler(svc))  // New-user check
	api.POST("/survey", SaveSurveyHandler(svc))  // Survey submission
	api.GET("/user", GetUserHandler(svc))        // Merged user record
	api.GET("/dashboard", DashboardHandler(svc)) // Journey and goal summary

	goals := api.Group("/goals")
	goals.GET("", ListGoalsHandler(svc))
	goals.POST("", CreateGoalHandler(svc))
	goals.PUT("/:id", UpdateGoalHandler(svc))
	goals.DELETE("/:id", DeleteGoalHandler(svc))
}
