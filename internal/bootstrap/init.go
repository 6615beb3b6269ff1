package bootstrap

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ricotama/LAPORin/ent"
	"github.com/ricotama/LAPORin/internal/adapter"
	"github.com/ricotama/LAPORin/internal/config"
	"github.com/ricotama/LAPORin/internal/controller"
	"github.com/ricotama/LAPORin/internal/middleware"
	"github.com/ricotama/LAPORin/internal/repository"
	"github.com/ricotama/LAPORin/internal/service"
	"github.com/ricotama/LAPORin/internal/websocket"
)

// App holds the long-running pieces main has to drive after wiring.
type App struct {
	Mux        *chi.Mux
	Hub        *websocket.Hub
	Collection *service.CollectionService
}

func Init(appConfig *config.AppConfig, client *ent.Client, validator *validator.Validate, s3Client *s3.Client, redisAdapter *adapter.RedisAdapter, wsLimiter *config.RateLimiter) *App {
	storageAdapter := adapter.NewStorageAdapter(appConfig, s3Client)
	emailAdapter := adapter.NewEmailAdapter(appConfig)

	repo := repository.NewRepository(client, redisAdapter, appConfig)

	hub := websocket.NewHub()

	photoService := service.NewPhotoService(storageAdapter, appConfig)
	reportService := service.NewReportService(repo.Report, redisAdapter, photoService, emailAdapter, appConfig, validator)
	collectionService := service.NewCollectionService(repo.Report, redisAdapter, hub)
	draftService := service.NewDraftService(repo.Draft, reportService, reportService, validator)

	// The hub serves the initial snapshot to each new connection straight
	// from the collection. Wired here to keep the two packages apart.
	hub.SetSnapshotSource(collectionService)

	rateLimitMiddleware := middleware.NewRateLimitMiddleware(repo.RateLimit, appConfig)

	reportController := controller.NewReportController(reportService, collectionService)
	draftController := controller.NewDraftController(draftService)
	websocketController := controller.NewWebSocketController(hub, wsLimiter, rateLimitMiddleware)

	mux := config.NewChi(appConfig)
	route := NewRoute(appConfig, mux, rateLimitMiddleware, reportController, draftController, websocketController)
	route.Register()

	return &App{
		Mux:        mux,
		Hub:        hub,
		Collection: collectionService,
	}
}
