package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"rheumassoc/api/internal/cache"
	"rheumassoc/api/internal/config"
	"rheumassoc/api/internal/middleware"
	"rheumassoc/api/internal/repository"
	"rheumassoc/api/internal/service"
	"rheumassoc/api/internal/storage"
)

type HandlerSet struct {
	log           zerolog.Logger
	cfg           *config.AppConfig
	db            *pgxpool.Pool
	cache         *redis.Client
	views         *cache.ViewCounter
	authService   *service.AuthService
	uploadService *service.UploadService
	users         *repository.UserRepository
	news          *repository.NewsRepository
	congresses    *repository.CongressRepository
	boardMembers  *repository.BoardMemberRepository
	partners      *repository.PartnerRepository
	chiefs        *repository.ChiefRepository
	charters      *repository.CharterRepository
	diseases      *repository.DiseaseRepository
	centers       *repository.CenterRepository
	applications  *repository.ApplicationRepository
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, rdb *redis.Client, store storage.UploadStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	auth := service.NewAuthService(userRepo, cfg, log)
	upload := service.NewUploadService(store, log)

	return HandlerSet{
		log:           log,
		cfg:           cfg,
		db:            db,
		cache:         rdb,
		views:         cache.NewViewCounter(rdb),
		authService:   auth,
		uploadService: upload,
		users:         userRepo,
		news:          repository.NewNewsRepository(db),
		congresses:    repository.NewCongressRepository(db),
		boardMembers:  repository.NewBoardMemberRepository(db),
		partners:      repository.NewPartnerRepository(db),
		chiefs:        repository.NewChiefRepository(db),
		charters:      repository.NewCharterRepository(db),
		diseases:      repository.NewDiseaseRepository(db),
		centers:       repository.NewCenterRepository(db),
		applications:  repository.NewApplicationRepository(db),
	}
}

// Register mounts the public, user and admin route trees.
func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/health", h.Health)

	authRequired := middleware.Auth(h.cfg.Security.JWTSecret, h.users)
	adminOnly := middleware.RequireAdmin()

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.RegisterUser)
		auth.POST("/login", h.Login)
		auth.GET("/me", authRequired, h.Me)
	}

	news := router.Group("/news")
	{
		news.GET("", h.ListNews)
		news.GET("/all", authRequired, adminOnly, h.ListAllNews)
		news.GET("/featured", h.ListFeaturedNews)
		news.GET("/events", h.ListUpcomingEvents)
		news.GET("/:id", h.GetNews)
		news.POST("", authRequired, adminOnly, h.CreateNews)
		news.PUT("/:id", authRequired, adminOnly, h.UpdateNews)
		news.DELETE("/:id", authRequired, adminOnly, h.DeleteNews)
	}

	congress := router.Group("/congress")
	{
		congress.GET("", h.ListCongresses)
		congress.GET("/:id", h.GetCongress)
		congress.POST("/:id/register", middleware.OptionalAuth(h.cfg.Security.JWTSecret, h.users), h.RegisterForCongress)
		congress.POST("", authRequired, adminOnly, h.CreateCongress)
		congress.PUT("/:id", authRequired, adminOnly, h.UpdateCongress)
		congress.DELETE("/:id", authRequired, adminOnly, h.DeleteCongress)
	}

	school := router.Group("/rheumatology/school")
	{
		school.POST("/apply", h.ApplyToSchool)
	}

	admin := router.Group("/admin")
	admin.Use(authRequired, adminOnly)
	{
		admin.GET("/stats", h.AdminStats)
		admin.GET("/users", h.AdminListUsers)
		admin.PUT("/users/:id/role", h.AdminUpdateUserRole)
		admin.DELETE("/users/:id", h.AdminDeleteUser)
		admin.GET("/congress/registrations", h.AdminListRegistrations)
		admin.GET("/school/applications", h.AdminListApplications)
		admin.PUT("/school/applications/:id/status", h.AdminUpdateApplicationStatus)
	}

	content := router.Group("/content")
	{
		content.POST("/upload", authRequired, adminOnly, h.Upload)

		h.registerContentRoutes(content, authRequired, adminOnly)
	}
}

func (h HandlerSet) registerContentRoutes(content *gin.RouterGroup, authRequired, adminOnly gin.HandlerFunc) {
	board := content.Group("/board-members")
	board.GET("", h.ListBoardMembers)
	board.GET("/:id", h.GetBoardMember)
	board.POST("", authRequired, adminOnly, h.CreateBoardMember)
	board.PUT("/:id", authRequired, adminOnly, h.UpdateBoardMember)
	board.DELETE("/:id", authRequired, adminOnly, h.DeleteBoardMember)

	partners := content.Group("/partners")
	partners.GET("", h.ListPartners)
	partners.GET("/:id", h.GetPartner)
	partners.POST("", authRequired, adminOnly, h.CreatePartner)
	partners.PUT("/:id", authRequired, adminOnly, h.UpdatePartner)
	partners.DELETE("/:id", authRequired, adminOnly, h.DeletePartner)

	content.GET("/charter", h.GetActiveCharter)
	charters := content.Group("/charters")
	charters.GET("", h.ListCharters)
	charters.GET("/:id", h.GetCharter)
	charters.POST("", authRequired, adminOnly, h.CreateCharter)
	charters.PUT("/:id", authRequired, adminOnly, h.UpdateCharter)
	charters.DELETE("/:id", authRequired, adminOnly, h.DeleteCharter)

	chiefs := content.Group("/chief-rheumatologists")
	chiefs.GET("", h.ListChiefs)
	chiefs.GET("/:id", h.GetChief)
	chiefs.POST("", authRequired, adminOnly, h.CreateChief)
	chiefs.PUT("/:id", authRequired, adminOnly, h.UpdateChief)
	chiefs.DELETE("/:id", authRequired, adminOnly, h.DeleteChief)

	diseases := content.Group("/diseases")
	diseases.GET("", h.ListDiseases)
	diseases.GET("/:id", h.GetDisease)
	diseases.POST("", authRequired, adminOnly, h.CreateDisease)
	diseases.PUT("/:id", authRequired, adminOnly, h.UpdateDisease)
	diseases.DELETE("/:id", authRequired, adminOnly, h.DeleteDisease)

	documents := content.Group("/disease-documents")
	documents.GET("", h.ListDiseaseDocuments)
	documents.GET("/:id", h.GetDiseaseDocument)
	documents.POST("", authRequired, adminOnly, h.CreateDiseaseDocument)
	documents.PUT("/:id", authRequired, adminOnly, h.UpdateDiseaseDocument)
	documents.DELETE("/:id", authRequired, adminOnly, h.DeleteDiseaseDocument)

	centers := content.Group("/centers")
	centers.GET("", h.ListCenters)
	centers.GET("/:id", h.GetCenter)
	centers.GET("/:id/with-staff", h.GetCenterWithStaff)
	centers.POST("", authRequired, adminOnly, h.CreateCenter)
	centers.PUT("/:id", authRequired, adminOnly, h.UpdateCenter)
	centers.DELETE("/:id", authRequired, adminOnly, h.DeleteCenter)

	staff := content.Group("/center-staff")
	staff.GET("", h.ListCenterStaff)
	staff.GET("/:id", h.GetCenterStaffMember)
	staff.POST("", authRequired, adminOnly, h.CreateCenterStaff)
	staff.PUT("/:id", authRequired, adminOnly, h.UpdateCenterStaff)
	staff.DELETE("/:id", authRequired, adminOnly, h.DeleteCenterStaff)

	apps := content.Group("/school-applications")
	apps.POST("", h.ApplyToSchool)
	apps.GET("", authRequired, adminOnly, h.ListSchoolApplications)
	apps.GET("/:id", authRequired, adminOnly, h.GetSchoolApplication)
	apps.PUT("/:id/status", authRequired, adminOnly, h.UpdateSchoolApplicationStatus)
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

// pagination reads skip/limit query params, clamping limit to [1, 100].
func pagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if skip < 0 {
		skip = 0
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return 0, false
	}
	return id, true
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// notFoundOrInternal maps repository.ErrNotFound to a 404 with the given
// error code and everything else to a logged 500.
func (h HandlerSet) notFoundOrInternal(c *gin.Context, err error, notFoundCode, logMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundCode})
		return
	}
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(logMsg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
}

// parentNotFoundOrInternal maps a missing foreign-key target to 404, like
// notFoundOrInternal does for the entity itself.
func (h HandlerSet) parentNotFoundOrInternal(c *gin.Context, err error, notFoundCode, logMsg string) {
	if errors.Is(err, repository.ErrParentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundCode})
		return
	}
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(logMsg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
}

// deleteByID runs the standard delete flow shared by the content entities.
func (h HandlerSet) deleteByID(c *gin.Context, entity string, del func(ctx context.Context, id int64) (bool, error)) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := del(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("delete " + entity + " failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": entity + "_not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": entity + "_deleted"})
}

func listOptions(c *gin.Context) repository.ListOptions {
	skip, limit := pagination(c)
	return repository.ListOptions{
		IncludeInactive: c.Query("include_inactive") == "true",
		Skip:            skip,
		Limit:           limit,
	}
}
