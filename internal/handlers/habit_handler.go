package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/models"
	"dayplanner/internal/services"
)

type HabitHandler struct {
	service services.HabitService
}

func NewHabitHandler(service services.HabitService) *HabitHandler {
	return &HabitHandler{service: service}
}

type habitRequest struct {
	CategoryID      *int64 `json:"category_id"`
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	TargetFrequency int    `json:"target_frequency" binding:"required"` // 1..10
}

// POST /habits
func (h *HabitHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req habitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[habit][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.service.Create(c.Request.Context(), userID, services.HabitInput{
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		TargetFrequency: req.TargetFrequency,
	})
	if err != nil {
		respondServiceError(c, "[habit][create]", err)
		return
	}
	log.Printf("[habit][create][ok] id=%d userID=%d name=%q", habit.ID, userID, habit.Name)
	c.JSON(http.StatusCreated, gin.H{"message": "Habit created successfully.", "habit": habit})
}

// GET /habits
func (h *HabitHandler) GetAll(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	habits, err := h.service.GetAll(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, "[habit][list]", err)
		return
	}

	today := models.Today()
	views := make([]models.HabitView, 0, len(habits))
	for _, habit := range habits {
		views = append(views, models.NewHabitView(habit, nil, today))
	}
	c.JSON(http.StatusOK, views)
}

// GET /habits/:id
func (h *HabitHandler) GetByID(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	habit, err := h.service.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, "[habit][get]", err)
		return
	}
	c.JSON(http.StatusOK, models.NewHabitView(*habit, nil, models.Today()))
}

// PUT /habits/:id
func (h *HabitHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req habitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[habit][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.service.Update(c.Request.Context(), id, userID, services.HabitInput{
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		TargetFrequency: req.TargetFrequency,
	})
	if err != nil {
		respondServiceError(c, "[habit][update]", err)
		return
	}
	log.Printf("[habit][update][ok] id=%d", id)
	c.JSON(http.StatusOK, gin.H{"message": "Habit updated successfully.", "habit": habit})
}

// DELETE /habits/:id — removes the habit and its whole completion history
func (h *HabitHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, "[habit][delete]", err)
		return
	}
	log.Printf("[habit][delete][ok] id=%d", id)
	c.JSON(http.StatusOK, gin.H{"message": "Habit deleted successfully."})
}

// POST /habits/:id/completion — toggles today's completion
func (h *HabitHandler) ToggleCompletion(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	today := models.Today()
	habit, completed, err := h.service.ToggleCompletion(c.Request.Context(), id, userID, today)
	if err != nil {
		respondServiceError(c, "[habit][toggle]", err)
		return
	}

	message := "Habit marked as not completed for today."
	if completed {
		message = "Great job! Habit completed for today."
	}
	log.Printf("[habit][toggle][ok] id=%d completed=%v streak=%d", id, completed, habit.StreakOn(today))
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"habit":   models.NewHabitView(*habit, nil, today),
	})
}
