package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/models"
	"dayplanner/internal/services"
)

type NoteHandler struct {
	service services.NoteService
}

func NewNoteHandler(service services.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

type noteRequest struct {
	CategoryID *int64 `json:"category_id"`
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content"`
	NoteDate   string `json:"note_date" binding:"required"` // YYYY-MM-DD
}

func (h *NoteHandler) bindInput(c *gin.Context, tag string) (services.NoteInput, bool) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("%s[bind][err] %v", tag, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return services.NoteInput{}, false
	}
	day, err := models.ParseDate(req.NoteDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note_date (YYYY-MM-DD)"})
		return services.NoteInput{}, false
	}
	return services.NoteInput{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Content:    req.Content,
		NoteDate:   day,
	}, true
}

// POST /notes
func (h *NoteHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	input, ok := h.bindInput(c, "[note][create]")
	if !ok {
		return
	}

	note, err := h.service.Create(c.Request.Context(), userID, input)
	if err != nil {
		respondServiceError(c, "[note][create]", err)
		return
	}
	log.Printf("[note][create][ok] id=%d userID=%d date=%s", note.ID, userID, note.NoteDate)
	c.JSON(http.StatusCreated, note)
}

// GET /notes
func (h *NoteHandler) GetAll(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	notes, err := h.service.GetAll(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, "[note][list]", err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// GET /notes/today
func (h *NoteHandler) GetToday(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	note, err := h.service.GetByDate(c.Request.Context(), userID, models.Today())
	if err != nil {
		respondServiceError(c, "[note][today]", err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// GET /notes/:id
func (h *NoteHandler) GetByID(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	note, err := h.service.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, "[note][get]", err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// PUT /notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	input, ok := h.bindInput(c, "[note][update]")
	if !ok {
		return
	}

	note, err := h.service.Update(c.Request.Context(), id, userID, input)
	if err != nil {
		respondServiceError(c, "[note][update]", err)
		return
	}
	log.Printf("[note][update][ok] id=%d", id)
	c.JSON(http.StatusOK, note)
}

// DELETE /notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, "[note][delete]", err)
		return
	}
	log.Printf("[note][delete][ok] id=%d", id)
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully."})
}
