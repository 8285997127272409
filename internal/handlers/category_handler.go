package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/services"
)

type CategoryHandler struct {
	service services.CategoryService
}

func NewCategoryHandler(service services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type categoryRequest struct {
	Name  string  `json:"name" binding:"required"`
	Color string  `json:"color"`
	Icon  *string `json:"icon"`
}

// POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[category][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.service.Create(c.Request.Context(), userID, services.CategoryInput{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	if err != nil {
		respondServiceError(c, "[category][create]", err)
		return
	}
	log.Printf("[category][create][ok] id=%d userID=%d", category.ID, userID)
	c.JSON(http.StatusCreated, category)
}

// GET /categories
func (h *CategoryHandler) GetAll(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	categories, err := h.service.GetAll(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, "[category][list]", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GET /categories/:id
func (h *CategoryHandler) GetByID(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	category, err := h.service.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, "[category][get]", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// PUT /categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[category][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.service.Update(c.Request.Context(), id, userID, services.CategoryInput{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	if err != nil {
		respondServiceError(c, "[category][update]", err)
		return
	}
	log.Printf("[category][update][ok] id=%d", id)
	c.JSON(http.StatusOK, category)
}

// DELETE /categories/:id — dependents keep living with a nulled category
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, "[category][delete]", err)
		return
	}
	log.Printf("[category][delete][ok] id=%d", id)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully."})
}
