package api

import (
	"bytes"    // Raw body inspection
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"emerge/internal/domain"     // Importing domain models
	"emerge/internal/middleware" // Context keys
	"emerge/internal/repository" // Storage errors
	"emerge/internal/service"    // Progress operations

	"github.com/gin-gonic/gin"         // Gin web framework
	"github.com/gin-gonic/gin/binding" // JSON body decoding
	"github.com/sirupsen/logrus"       // Logging library
)

// errNotAnObject is returned for a survey body that is not a JSON object
var errNotAnObject = errors.New("survey body is not a JSON object")

// SurveyRequest represents a survey submission. Every field is optional.
type SurveyRequest struct {
	Subjects      []string `json:"subjects"`       // Subjects, first one drives the journey level
	Interests     string   `json:"interests"`      // Free text
	Skills        string   `json:"skills"`         // Free text
	Goal          string   `json:"goal"`           // Free text
	ThinkingStyle string   `json:"thinking_style"` // Free text
	ExtraInfo     string   `json:"extra_info"`     // Free text
}

// CheckNewHandler reports whether the acting user still has to take the survey
func CheckNewHandler(svc *service.ProgressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		isNew, err := svc.CheckNew(c.Request.Context(), userID)
		if err != nil {
			internalError(c, "Check new user failed", userID, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"is_new": isNew})
	}
}

// SaveSurveyHandler stores the survey answers and moves the user out of the new state
func SaveSurveyHandler(svc *service.ProgressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		// Body shape is not validated; undecodable input is an internal failure
		req, err := decodeSurvey(c)
		if err != nil {
			internalError(c, "Survey body could not be decoded", userID, err)
			return
		}
		survey := domain.Survey{
			Subjects:      req.Subjects,
			Interests:     req.Interests,
			Skills:        req.Skills,
			Goal:          req.Goal,
			ThinkingStyle: req.ThinkingStyle,
			ExtraInfo:     req.ExtraInfo,
		}
		if err := svc.SaveSurvey(c.Request.Context(), userID, survey); err != nil {
			internalError(c, "Save survey failed", userID, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,
			"subjects": len(req.Subjects),
		}).Info("Survey saved")
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GetUserHandler returns the acting user's record merged with its journey
func GetUserHandler(svc *service.ProgressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		profile, err := svc.GetProfile(c.Request.Context(), userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			internalError(c, "Get user failed", userID, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// DashboardHandler returns the acting user's journey and goal summary
func DashboardHandler(svc *service.ProgressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		dashboard, err := svc.Dashboard(c.Request.Context(), userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User profile not found"})
			return
		}
		if err != nil {
			internalError(c, "Get dashboard failed", userID, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": dashboard})
	}
}

// decodeSurvey reads the request body as a survey. A JSON null decodes to no
// survey at all and is rejected like any other non-object.
func decodeSurvey(c *gin.Context) (*SurveyRequest, error) {
	raw, err := c.GetRawData() // Read the whole body once
	if err != nil {
		return nil, err
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, errNotAnObject
	}
	var req SurveyRequest
	if err := binding.JSON.BindBody(raw, &req); err != nil {
		return nil, err // Empty body, wrong types or not an object
	}
	return &req, nil
}

// currentUserID reads the identity set by middleware.Identity
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	userID, ok := v.(uint)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// internalError logs err and answers with an opaque 500
func internalError(c *gin.Context, msg string, userID uint, err error) {
	logrus.WithFields(logrus.Fields{
		"user_id": userID,      // User ID
		"error":   err.Error(), // Error message
	}).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
