package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rheumassoc/api/internal/middleware"
	"rheumassoc/api/internal/models"
	"rheumassoc/api/internal/repository"
)

type statsResponse struct {
	Users         int64 `json:"users"`
	News          int64 `json:"news"`
	Registrations int64 `json:"congressRegistrations"`
	Applications  int64 `json:"schoolApplications"`
}

func (h HandlerSet) AdminStats(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		stats statsResponse
		err   error
	)
	if stats.Users, err = h.users.Count(ctx); err == nil {
		if stats.News, err = h.news.Count(ctx); err == nil {
			if stats.Registrations, err = h.congresses.CountRegistrations(ctx); err == nil {
				stats.Applications, err = h.applications.Count(ctx)
			}
		}
	}
	if err != nil {
		h.log.Error().Err(err).Msg("collect stats failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h HandlerSet) AdminListUsers(c *gin.Context) {
	skip, limit := pagination(c)
	users, err := h.users.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list users failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	views := make([]userResponse, 0, len(users))
	for _, u := range users {
		views = append(views, userView(u))
	}
	c.JSON(http.StatusOK, views)
}

type roleUpdateRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h HandlerSet) AdminUpdateUserRole(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req roleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidUserRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
		return
	}

	if actor, ok := middleware.CurrentUser(c); ok && actor.ID == id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "self_modification_denied"})
		return
	}

	if err := h.users.UpdateRole(c.Request.Context(), id, models.UserRole(req.Role)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		h.log.Error().Err(err).Int64("user_id", id).Msg("update role failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role_updated"})
}

func (h HandlerSet) AdminDeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if actor, ok := middleware.CurrentUser(c); ok && actor.ID == id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "self_modification_denied"})
		return
	}

	deleted, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", id).Msg("delete user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user_deleted"})
}

func (h HandlerSet) AdminListRegistrations(c *gin.Context) {
	skip, limit := pagination(c)

	var congressID *int64
	if raw := c.Query("congress_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_congress_id"})
			return
		}
		congressID = &id
	}

	regs, err := h.congresses.ListRegistrations(c.Request.Context(), congressID, skip, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list registrations failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, regs)
}

func (h HandlerSet) AdminListApplications(c *gin.Context) {
	skip, limit := pagination(c)
	filter := repository.ApplicationFilter{Skip: skip, Limit: limit}

	if t := c.Query("school_type"); t != "" {
		if !models.ValidSchoolType(t) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_school_type"})
			return
		}
		filter.SchoolType = &t
	}
	if s := c.Query("status"); s != "" {
		if !models.ValidApplicationStatus(s) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
			return
		}
		filter.Status = &s
	}

	apps, err := h.applications.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("list applications failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h HandlerSet) AdminUpdateApplicationStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidApplicationStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
		return
	}

	if err := h.applications.UpdateStatus(c.Request.Context(), id, models.ApplicationStatus(req.Status)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "application_not_found"})
			return
		}
		h.log.Error().Err(err).Int64("application_id", id).Msg("update application status failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status_updated"})
}
