package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rheumassoc/api/internal/middleware"
	"rheumassoc/api/internal/models"
	"rheumassoc/api/internal/repository"
)

func (h HandlerSet) ListCongresses(c *gin.Context) {
	skip, limit := pagination(c)
	activeOnly := c.Query("include_inactive") != "true"

	items, err := h.congresses.List(c.Request.Context(), activeOnly, skip, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list congresses failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h HandlerSet) GetCongress(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.congresses.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "congress_not_found"})
			return
		}
		h.log.Error().Err(err).Int64("congress_id", id).Msg("get congress failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type congressRequest struct {
	TitleRu          string     `json:"title_ru" binding:"required"`
	TitleUz          string     `json:"title_uz" binding:"required"`
	TitleEn          string     `json:"title_en" binding:"required"`
	DescriptionRu    *string    `json:"description_ru"`
	DescriptionUz    *string    `json:"description_uz"`
	DescriptionEn    *string    `json:"description_en"`
	ProgramRu        *string    `json:"program_ru"`
	ProgramUz        *string    `json:"program_uz"`
	ProgramEn        *string    `json:"program_en"`
	DateStart        *time.Time `json:"date_start"`
	DateEnd          *time.Time `json:"date_end"`
	Location         *string    `json:"location"`
	ImageURL         *string    `json:"image_url"`
	IsActive         *bool      `json:"is_active"`
	RegistrationOpen *bool      `json:"registration_open"`
}

func (h HandlerSet) CreateCongress(c *gin.Context) {
	var req congressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	item := models.Congress{
		TitleRu:          req.TitleRu,
		TitleUz:          req.TitleUz,
		TitleEn:          req.TitleEn,
		DescriptionRu:    req.DescriptionRu,
		DescriptionUz:    req.DescriptionUz,
		DescriptionEn:    req.DescriptionEn,
		ProgramRu:        req.ProgramRu,
		ProgramUz:        req.ProgramUz,
		ProgramEn:        req.ProgramEn,
		DateStart:        req.DateStart,
		DateEnd:          req.DateEnd,
		Location:         req.Location,
		ImageURL:         req.ImageURL,
		IsActive:         true,
		RegistrationOpen: true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.RegistrationOpen != nil {
		item.RegistrationOpen = *req.RegistrationOpen
	}

	created, err := h.congresses.Create(c.Request.Context(), item)
	if err != nil {
		h.log.Error().Err(err).Msg("create congress failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h HandlerSet) UpdateCongress(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch models.CongressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	updated, err := h.congresses.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "congress_not_found"})
			return
		}
		h.log.Error().Err(err).Int64("congress_id", id).Msg("update congress failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h HandlerSet) DeleteCongress(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.congresses.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("congress_id", id).Msg("delete congress failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "congress_not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "congress_deleted"})
}

type registrationRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone"`
	Organization *string `json:"organization"`
	Position     *string `json:"position"`
}

// RegisterForCongress is open to anonymous visitors; a logged-in user is
// linked to the registration when a valid token happens to be present.
func (h HandlerSet) RegisterForCongress(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req registrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	congress, err := h.congresses.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "congress_not_found"})
			return
		}
		h.log.Error().Err(err).Int64("congress_id", id).Msg("get congress failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	if !congress.RegistrationOpen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "registration_closed"})
		return
	}

	reg := models.CongressRegistration{
		CongressID:   id,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
		Position:     req.Position,
	}
	if user, ok := middleware.CurrentUser(c); ok {
		reg.UserID = &user.ID
	}

	created, err := h.congresses.CreateRegistration(c.Request.Context(), reg)
	if err != nil {
		if errors.Is(err, repository.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "congress_not_found"})
			return
		}
		h.log.Error().Err(err).Int64("congress_id", id).Msg("create registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, created)
}
