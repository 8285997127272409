package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/models"
	"dayplanner/internal/services"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// @Summary      Register
// @Description  Creates a new account and sends a welcome email
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      models.RegisterRequest  true  "Registration data"
// @Success      201       {object}  models.User
// @Failure      400       {object}  map[string]string
// @Failure      422       {object}  map[string]interface{}
// @Router       /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[user][register][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, "[user][register]", err)
		return
	}
	log.Printf("[user][register][ok] id=%d", user.ID)
	c.JSON(http.StatusCreated, user)
}

// GET /me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, "[user][me]", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
