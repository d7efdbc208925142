package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/accadex/accadex/internal/application"
	"github.com/accadex/accadex/internal/container"
	"github.com/accadex/accadex/internal/infrastructure/search"
	"github.com/accadex/accadex/internal/infrastructure/storage"
	handlers "github.com/accadex/accadex/internal/interface/http"
	"github.com/accadex/accadex/internal/interface/middleware"
	"github.com/accadex/accadex/internal/router/modules"
	"github.com/accadex/accadex/pkg/validation"
)

// New builds the gin engine with global middleware and every module wired
// from the container.
func New(c *container.Container) *gin.Engine {
	validation.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	r.Use(cors.New(corsConfig(c.Cfg.CORSOrigins())))
	if c.Cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(c.Logger))
	}

	reg := NewRegistry(r)
	InitModules(reg, c)
	reg.RegisterAll()
	return r
}

// corsConfig allows any origin without credentials when origins is empty.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "x-auth-token", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// services are the application services shared by the handlers.
type services struct {
	Auth      *application.AuthService
	Matches   *application.MatchService
	Schedules *application.ScheduleService
	Insights  *application.InsightService
	Chat      *application.ChatService
	Videos    *application.VideoService
	Directory *application.DirectoryService
}

func buildServices(c *container.Container) services {
	cfg := c.Cfg

	auth := application.NewAuthService(c.Store, c.JWT, c.Clock, c.Logger)
	directory := application.NewDirectoryService(nil)
	if c.ES != nil {
		idx := search.NewUserIndex(c.ES, cfg.ESUsersIndex)
		auth.Indexer = idx
		directory.Searcher = idx
	}
	if c.RabbitPub != nil && cfg.MailSendEnabled {
		auth.Emails = c.RabbitPub
	}

	var gen application.Generator
	if c.Gemini != nil {
		gen = c.Gemini
	}

	var uploader application.ObjectUploader
	if c.GCS != nil {
		uploader = storage.NewGCSUploader(c.GCS, cfg.GCSBucket)
	}

	return services{
		Auth:      auth,
		Matches:   application.NewMatchService(c.Store.Matches(), c.Clock),
		Schedules: application.NewScheduleService(c.Store.Schedules(), c.Clock),
		Insights:  application.NewInsightService(c.Store.Insights(), c.Clock),
		Chat:      application.NewChatService(gen, cfg.ChatTimeout, c.Logger),
		Videos:    application.NewVideoService(uploader, c.Clock),
		Directory: directory,
	}
}

// InitModules builds services and handlers from the container and registers
// every module with the registry.
func InitModules(r *Registry, c *container.Container) {
	cfg := c.Cfg
	svc := buildServices(c)

	var allow middleware.AllowFunc
	if cfg.RateLimitAllowPrivate {
		allow = middleware.AllowPrivateIP()
	}
	limit := func(max int) gin.HandlerFunc {
		return middleware.RateLimit(c.Redis, max, time.Minute, middleware.KeyByIPAndPath(), allow)
	}

	r.AddRoot(modules.NewHealthModule(c.Store, c.Logger))

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc.Auth, c.Logger), c.JWT))
	r.Add(modules.NewMatchModule(handlers.NewMatchHandler(svc.Matches, c.Logger)))
	r.Add(modules.NewScheduleModule(handlers.NewScheduleHandler(svc.Schedules, c.Logger)))
	r.Add(modules.NewInsightModule(handlers.NewInsightHandler(svc.Insights, c.Logger)))
	r.Add(modules.NewChatModule(handlers.NewChatHandler(svc.Chat, c.Logger), limit(cfg.ChatRateLimit)))
	r.Add(modules.NewUploadModule(handlers.NewUploadHandler(svc.Videos, cfg.UploadMaxBytes, c.Logger), limit(cfg.ChatRateLimit)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(svc.Directory, c.Logger), c.JWT))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(limit(120)))
	}
}
