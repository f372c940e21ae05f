package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"emerge/internal/repository" // Storage errors
	"emerge/internal/service"    // Progress operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateGoalRequest represents a new goal
type CreateGoalRequest struct {
	Task string `json:"task" binding:"required"` // What to do
}

// UpdateGoalRequest represents a goal status change
type UpdateGoalRequest struct {
	Completed *bool `json:"completed" binding:"required"` // New done flag
}

// ListGoalsHandler returns the acting user's goals
func ListGoalsHandler(svc *service.ProgressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		goals, err := svc.ListGoals(c.Request.Context(), userID)
		if err != nil {
			internalError(c, "List goals failed", userID, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": goals})
	}
}

// CreateGoalHandler adds a goal for the acting user
func CreateGoalHandler(svc *service.ProgressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req CreateGoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid goal data"})
			return
		}
		goal, err := svc.CreateGoal(c.Request.Context(), userID, req.Task)
		if err != nil {
			internalError(c, "Create goal failed", userID, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": goal})
	}
}

// UpdateGoalHandler marks one of the acting user's goals done or not done
func UpdateGoalHandler(svc *service.ProgressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		goalID, ok := goalIDParam(c)
		if !ok {
			return
		}
		var req UpdateGoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid goal update data"})
			return
		}
		goal, err := svc.SetGoalCompleted(c.Request.Context(), userID, goalID, *req.Completed)
		if errors.Is(err, repository.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Goal not found"})
			return
		}
		if err != nil {
			internalError(c, "Update goal failed", userID, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": goal})
	}
}

// DeleteGoalHandler removes one of the acting user's goals
func DeleteGoalHandler(svc *service.ProgressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		goalID, ok := goalIDParam(c)
		if !ok {
			return
		}
		err := svc.DeleteGoal(c.Request.Context(), userID, goalID)
		if errors.Is(err, repository.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Goal not found"})
			return
		}
		if err != nil {
			internalError(c, "Delete goal failed", userID, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func goalIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid goal ID"})
		return 0, false
	}
	return uint(id), true
}
