package handler

import (
	"github.com/blogsmith/internal/attribution"
	"github.com/blogsmith/internal/config"
	"github.com/blogsmith/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	blogs     *service.BlogService
	stats     *service.StatsService
	exports   *service.ExportService
	trending  *service.TrendingService
	batches   *service.BatchStore
	generator service.BlogGenerator
	assistant service.EditAssistant
	tracker   *attribution.Tracker
	perPage   int
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig) *API {
	chatKey := cfg.ChatAPIKey
	if chatKey == "" {
		chatKey = cfg.GeminiAPIKey
	}

	return &API{
		db:        gdb,
		blogs:     service.NewBlogService(gdb),
		stats:     service.NewStatsService(gdb),
		exports:   service.NewExportService(),
		trending:  service.NewTrendingService(),
		batches:   service.NewBatchStore(cfg.DataDir),
		generator: service.NewGenerateService(cfg.GeminiAPIKey, cfg.Model),
		assistant: service.NewChatService(chatKey, cfg.Model),
		tracker:   attribution.NewTracker(cfg.AttributionRoot),
		perPage:   cfg.BlogsPerPage,
	}
}

// DB exposes the underlying gorm instance for tests.
func (a *API) DB() *gorm.DB {
	return a.db
}

// SetGenerator swaps the blog generator, mainly for tests.
func (a *API) SetGenerator(g service.BlogGenerator) {
	a.generator = g
}

// SetAssistant swaps the edit assistant, mainly for tests.
func (a *API) SetAssistant(assistant service.EditAssistant) {
	a.assistant = assistant
}
