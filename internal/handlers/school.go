package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rheumassoc/api/internal/models"
)

type schoolApplicationRequest struct {
	SchoolType     string  `json:"school_type" binding:"required"`
	EventID        *int64  `json:"event_id"`
	LastName       string  `json:"last_name" binding:"required"`
	FirstName      string  `json:"first_name" binding:"required"`
	Patronymic     *string `json:"patronymic"`
	Phone          string  `json:"phone" binding:"required"`
	City           string  `json:"city" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	INN            string  `json:"inn" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Specialization string  `json:"specialization" binding:"required"`
	Workplace      string  `json:"workplace" binding:"required"`
	Message        *string `json:"message"`
}

func (h HandlerSet) ApplyToSchool(c *gin.Context) {
	var req schoolApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if !models.ValidSchoolType(req.SchoolType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_school_type"})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
		return
	}

	app := models.SchoolApplication{
		SchoolType:     models.SchoolType(req.SchoolType),
		EventID:        req.EventID,
		LastName:       req.LastName,
		FirstName:      req.FirstName,
		Patronymic:     req.Patronymic,
		Phone:          req.Phone,
		City:           req.City,
		Category:       req.Category,
		INN:            req.INN,
		Email:          req.Email,
		Specialization: req.Specialization,
		Workplace:      req.Workplace,
		Message:        req.Message,
		Status:         models.ApplicationStatusPending,
	}

	created, err := h.applications.Create(c.Request.Context(), app)
	if err != nil {
		h.log.Error().Err(err).Msg("create school application failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, created)
}
