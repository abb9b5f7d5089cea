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

func (h HandlerSet) ListNews(c *gin.Context) {
	skip, limit := pagination(c)
	filter := repository.NewsFilter{
		PublishedOnly: true,
		Skip:          skip,
		Limit:         limit,
	}
	if t := c.Query("news_type"); t != "" {
		if !models.ValidNewsType(t) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_news_type"})
			return
		}
		filter.NewsType = &t
	}

	items, err := h.news.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("list news failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListAllNews includes unpublished drafts for the admin panel.
func (h HandlerSet) ListAllNews(c *gin.Context) {
	skip, limit := pagination(c)
	filter := repository.NewsFilter{Skip: skip, Limit: limit}
	if t := c.Query("news_type"); t != "" {
		if !models.ValidNewsType(t) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_news_type"})
			return
		}
		filter.NewsType = &t
	}

	items, err := h.news.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("list all news failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h HandlerSet) ListFeaturedNews(c *gin.Context) {
	skip, limit := pagination(c)
	items, err := h.news.List(c.Request.Context(), repository.NewsFilter{
		PublishedOnly: true,
		FeaturedOnly:  true,
		Skip:          skip,
		Limit:         limit,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("list featured news failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// eventsFilter builds the published-events filter. By default only events
// starting at now or later are returned, in event-date order; passing
// upcoming_only=false lists past events too, newest first.
func eventsFilter(c *gin.Context, now time.Time) repository.NewsFilter {
	skip, limit := pagination(c)
	eventType := string(models.NewsTypeEvent)
	filter := repository.NewsFilter{
		NewsType:      &eventType,
		PublishedOnly: true,
		Skip:          skip,
		Limit:         limit,
	}
	if c.DefaultQuery("upcoming_only", "true") != "false" {
		filter.UpcomingFrom = &now
		filter.OrderByEvent = true
	}
	return filter
}

func (h HandlerSet) ListUpcomingEvents(c *gin.Context) {
	items, err := h.news.List(c.Request.Context(), eventsFilter(c, time.Now()))
	if err != nil {
		h.log.Error().Err(err).Msg("list events failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetNews returns one item and registers a view. The counter lives in redis
// and is flushed to the database by the background job, so a read failure on
// the counter never fails the request.
func (h HandlerSet) GetNews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.news.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "news_not_found"})
			return
		}
		h.log.Error().Err(err).Int64("news_id", id).Msg("get news failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	if err := h.views.Increment(c.Request.Context(), id); err != nil {
		h.log.Warn().Err(err).Int64("news_id", id).Msg("view increment failed")
	}

	c.JSON(http.StatusOK, item)
}

type newsRequest struct {
	NewsType           string     `json:"news_type" binding:"required"`
	TitleRu            string     `json:"title_ru" binding:"required"`
	TitleUz            string     `json:"title_uz" binding:"required"`
	TitleEn            string     `json:"title_en" binding:"required"`
	SubtitleRu         *string    `json:"subtitle_ru"`
	SubtitleUz         *string    `json:"subtitle_uz"`
	SubtitleEn         *string    `json:"subtitle_en"`
	ContentRu          string     `json:"content_ru" binding:"required"`
	ContentUz          string     `json:"content_uz" binding:"required"`
	ContentEn          string     `json:"content_en" binding:"required"`
	ExcerptRu          *string    `json:"excerpt_ru"`
	ExcerptUz          *string    `json:"excerpt_uz"`
	ExcerptEn          *string    `json:"excerpt_en"`
	ImageURL           *string    `json:"image_url"`
	BackgroundImageURL *string    `json:"background_image_url"`
	EventDateStart     *time.Time `json:"event_date_start"`
	EventDateEnd       *time.Time `json:"event_date_end"`
	EventLocationRu    *string    `json:"event_location_ru"`
	EventLocationUz    *string    `json:"event_location_uz"`
	EventLocationEn    *string    `json:"event_location_en"`
	RegistrationURL    *string    `json:"registration_url"`
	IsPublished        bool       `json:"is_published"`
	IsFeatured         bool       `json:"is_featured"`
}

func (h HandlerSet) CreateNews(c *gin.Context) {
	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if !models.ValidNewsType(req.NewsType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_news_type"})
		return
	}

	item := models.News{
		NewsType:           models.NewsType(req.NewsType),
		TitleRu:            req.TitleRu,
		TitleUz:            req.TitleUz,
		TitleEn:            req.TitleEn,
		SubtitleRu:         req.SubtitleRu,
		SubtitleUz:         req.SubtitleUz,
		SubtitleEn:         req.SubtitleEn,
		ContentRu:          req.ContentRu,
		ContentUz:          req.ContentUz,
		ContentEn:          req.ContentEn,
		ExcerptRu:          req.ExcerptRu,
		ExcerptUz:          req.ExcerptUz,
		ExcerptEn:          req.ExcerptEn,
		ImageURL:           req.ImageURL,
		BackgroundImageURL: req.BackgroundImageURL,
		EventDateStart:     req.EventDateStart,
		EventDateEnd:       req.EventDateEnd,
		EventLocationRu:    req.EventLocationRu,
		EventLocationUz:    req.EventLocationUz,
		EventLocationEn:    req.EventLocationEn,
		RegistrationURL:    req.RegistrationURL,
		IsPublished:        req.IsPublished,
		IsFeatured:         req.IsFeatured,
	}
	if user, ok := middleware.CurrentUser(c); ok {
		item.AuthorID = &user.ID
	}

	created, err := h.news.Create(c.Request.Context(), item)
	if err != nil {
		h.log.Error().Err(err).Msg("create news failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h HandlerSet) UpdateNews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch models.NewsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if patch.NewsType != nil && !models.ValidNewsType(*patch.NewsType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_news_type"})
		return
	}

	updated, err := h.news.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "news_not_found"})
			return
		}
		h.log.Error().Err(err).Int64("news_id", id).Msg("update news failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h HandlerSet) DeleteNews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.news.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("news_id", id).Msg("delete news failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "news_not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "news_deleted"})
}
