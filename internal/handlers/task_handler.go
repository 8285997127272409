package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/models"
	"dayplanner/internal/services"
)

type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type taskRequest struct {
	CategoryID  *int64              `json:"category_id"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Priority    models.TaskPriority `json:"priority" binding:"required"` // low|medium|high
	DueDate     string              `json:"due_date"`                    // RFC3339
	ReminderAt  string              `json:"reminder_at"`                 // RFC3339
}

func (h *TaskHandler) bindInput(c *gin.Context, tag string) (services.TaskInput, bool) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("%s[bind][err] %v", tag, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return services.TaskInput{}, false
	}
	due, ok := parseOptionalTime(c, "due_date", req.DueDate)
	if !ok {
		return services.TaskInput{}, false
	}
	rem, ok := parseOptionalTime(c, "reminder_at", req.ReminderAt)
	if !ok {
		return services.TaskInput{}, false
	}
	return services.TaskInput{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     due,
		ReminderAt:  rem,
	}, true
}

// POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	input, ok := h.bindInput(c, "[task][create]")
	if !ok {
		return
	}

	task, err := h.service.Create(c.Request.Context(), userID, input, time.Now())
	if err != nil {
		respondServiceError(c, "[task][create]", err)
		return
	}
	log.Printf("[task][create][ok] id=%d userID=%d title=%q", task.ID, userID, task.Title)
	c.JSON(http.StatusCreated, task)
}

// GET /tasks
func (h *TaskHandler) GetAll(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var filter models.TaskFilter
	if v, okq := c.GetQuery("category_id"); okq {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.CategoryID = &id
		} else {
			log.Printf("[task][list][warn] bad category_id=%q: %v", v, err)
		}
	}
	if v, okq := c.GetQuery("completed"); okq {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.Completed = &b
		} else {
			log.Printf("[task][list][warn] bad completed=%q: %v", v, err)
		}
	}
	if v, okq := c.GetQuery("due_on"); okq {
		if d, err := models.ParseDate(v); err == nil {
			filter.DueOn = &d
		} else {
			log.Printf("[task][list][warn] bad due_on=%q: %v", v, err)
		}
	}

	tasks, err := h.service.GetAll(c.Request.Context(), userID, filter)
	if err != nil {
		respondServiceError(c, "[task][list]", err)
		return
	}

	now := time.Now()
	views := make([]models.TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, models.NewTaskView(t, nil, now))
	}
	c.JSON(http.StatusOK, views)
}

// GET /tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	task, err := h.service.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, "[task][get]", err)
		return
	}
	c.JSON(http.StatusOK, models.NewTaskView(*task, nil, time.Now()))
}

// PUT /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	input, ok := h.bindInput(c, "[task][update]")
	if !ok {
		return
	}

	task, err := h.service.Update(c.Request.Context(), id, userID, input)
	if err != nil {
		respondServiceError(c, "[task][update]", err)
		return
	}
	log.Printf("[task][update][ok] id=%d", id)
	c.JSON(http.StatusOK, task)
}

// POST /tasks/:id/toggle — flips the completion timestamp
func (h *TaskHandler) ToggleComplete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	task, err := h.service.ToggleComplete(c.Request.Context(), id, userID, time.Now())
	if err != nil {
		respondServiceError(c, "[task][toggle]", err)
		return
	}
	message := "Task marked as pending."
	if task.IsCompleted() {
		message = "Task completed."
	}
	log.Printf("[task][toggle][ok] id=%d completed=%v", id, task.IsCompleted())
	c.JSON(http.StatusOK, gin.H{"message": message, "task": task})
}

// DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, "[task][delete]", err)
		return
	}
	log.Printf("[task][delete][ok] id=%d", id)
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully."})
}
