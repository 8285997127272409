package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/models"
)

// getUserID reads the authenticated user from the context; the auth
// middleware always sets it, so a miss means the route is misconfigured.
func getUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		return int64(t), true
	}
	return 0, false
}

// requireUserID aborts with 401 when no authenticated user is present.
func requireUserID(c *gin.Context) (int64, bool) {
	id, ok := getUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
	}
	return id, ok
}

// paramID parses the :id path parameter.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondServiceError maps a service error onto the wire: field errors come
// back as 422 with per-field messages, not-found as a generic 404 (no
// existence leak), anything else as a generic 500.
func respondServiceError(c *gin.Context, tag string, err error) {
	if ve, ok := models.AsValidationError(err); ok {
		log.Printf("%s[422] fields=%v", tag, ve.Fields)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": ve.Fields})
		return
	}
	if errors.Is(err, models.ErrNotFound) {
		log.Printf("%s[404]", tag)
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	log.Printf("%s[err] %v", tag, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// parseOptionalTime parses an optional RFC3339 field, answering 400 on a
// malformed value.
func parseOptionalTime(c *gin.Context, field, value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + field + " (RFC3339)"})
		return nil, false
	}
	return &t, true
}
