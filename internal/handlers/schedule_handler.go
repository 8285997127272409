package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/models"
	"dayplanner/internal/services"
)

type ScheduleHandler struct {
	service services.ScheduleService
}

func NewScheduleHandler(service services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

type scheduleRequest struct {
	CategoryID     *int64  `json:"category_id"`
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description"`
	StartTime      string  `json:"start_time" binding:"required"` // RFC3339
	EndTime        string  `json:"end_time"`                      // RFC3339
	IsRecurring    bool    `json:"is_recurring"`
	RecurrenceType *string `json:"recurrence_type"` // daily|weekly|monthly, stored only
	ReminderAt     string  `json:"reminder_at"`     // RFC3339
}

func (h *ScheduleHandler) bindInput(c *gin.Context, tag string) (services.ScheduleInput, bool) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("%s[bind][err] %v", tag, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return services.ScheduleInput{}, false
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_time (RFC3339)"})
		return services.ScheduleInput{}, false
	}
	end, ok := parseOptionalTime(c, "end_time", req.EndTime)
	if !ok {
		return services.ScheduleInput{}, false
	}
	rem, ok := parseOptionalTime(c, "reminder_at", req.ReminderAt)
	if !ok {
		return services.ScheduleInput{}, false
	}
	return services.ScheduleInput{
		CategoryID:     req.CategoryID,
		Title:          req.Title,
		Description:    req.Description,
		StartTime:      start,
		EndTime:        end,
		IsRecurring:    req.IsRecurring,
		RecurrenceType: req.RecurrenceType,
		ReminderAt:     rem,
	}, true
}

// POST /schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	input, ok := h.bindInput(c, "[schedule][create]")
	if !ok {
		return
	}

	schedule, err := h.service.Create(c.Request.Context(), userID, input)
	if err != nil {
		respondServiceError(c, "[schedule][create]", err)
		return
	}
	log.Printf("[schedule][create][ok] id=%d userID=%d", schedule.ID, userID)
	c.JSON(http.StatusCreated, models.NewScheduleView(*schedule, nil))
}

// GET /schedules
func (h *ScheduleHandler) GetAll(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	schedules, err := h.service.GetAll(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, "[schedule][list]", err)
		return
	}
	views := make([]models.ScheduleView, 0, len(schedules))
	for _, s := range schedules {
		views = append(views, models.NewScheduleView(s, nil))
	}
	c.JSON(http.StatusOK, views)
}

// GET /schedules/:id
func (h *ScheduleHandler) GetByID(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	schedule, err := h.service.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, "[schedule][get]", err)
		return
	}
	c.JSON(http.StatusOK, models.NewScheduleView(*schedule, nil))
}

// PUT /schedules/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	input, ok := h.bindInput(c, "[schedule][update]")
	if !ok {
		return
	}

	schedule, err := h.service.Update(c.Request.Context(), id, userID, input)
	if err != nil {
		respondServiceError(c, "[schedule][update]", err)
		return
	}
	log.Printf("[schedule][update][ok] id=%d", id)
	c.JSON(http.StatusOK, models.NewScheduleView(*schedule, nil))
}

// DELETE /schedules/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, "[schedule][delete]", err)
		return
	}
	log.Printf("[schedule][delete][ok] id=%d", id)
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully."})
}
