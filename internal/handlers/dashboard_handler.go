package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/models"
	"dayplanner/internal/pdf"
	"dayplanner/internal/services"
)

type DashboardHandler struct {
	service   services.DashboardService
	generator pdf.Generator
}

func NewDashboardHandler(service services.DashboardService, generator pdf.Generator) *DashboardHandler {
	return &DashboardHandler{service: service, generator: generator}
}

// GET /dashboard — the today snapshot
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	now := time.Now()
	dashboard, err := h.service.BuildDashboard(c.Request.Context(), userID, models.DateOf(now), now)
	if err != nil {
		respondServiceError(c, "[dashboard][get]", err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GET /dashboard/export — the same snapshot as a printable PDF
func (h *DashboardHandler) Export(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	now := time.Now()
	dashboard, err := h.service.BuildDashboard(c.Request.Context(), userID, models.DateOf(now), now)
	if err != nil {
		respondServiceError(c, "[dashboard][export]", err)
		return
	}

	path, err := h.generator.GenerateDailySummary(*dashboard)
	if err != nil {
		log.Printf("[dashboard][export][err] userID=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate summary"})
		return
	}
	log.Printf("[dashboard][export][ok] userID=%d file=%s", userID, path)

	c.FileAttachment(path, "daily-summary-"+dashboard.Date.String()+".pdf")
}
