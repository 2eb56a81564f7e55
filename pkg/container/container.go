package container

import (
	"context"
	"fmt"
	"time"

	"news-backend/internal/config"
	"news-backend/internal/infrastructure/database"
	"news-backend/internal/realtime"

	authHandler "news-backend/internal/domains/auth/handler"
	"news-backend/internal/domains/auth/provider"
	"news-backend/internal/domains/auth/session"
	newsHandler "news-backend/internal/domains/news/handler"
	newsRepo "news-backend/internal/domains/news/repository"
	newsService "news-backend/internal/domains/news/service"

	"github.com/rs/zerolog/log"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.MongoDB
	Hub    *realtime.Hub

	// ========================================
	// AUTH
	// ========================================
	Sessions   *session.Manager
	Identities provider.IdentityProvider

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	NewsRepo newsRepo.ArticleRepository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	NewsService newsService.ArticleService

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	NewsHandler *newsHandler.NewsHandler
	AuthHandler *authHandler.AuthHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer khởi tạo toàn bộ dependency graph theo thứ tự:
// config → database → hub → repositories → services → handlers
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(context.Background(), &cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	hub := realtime.NewHub()

	sessions := session.NewManager(&cfg.Session)
	identities := provider.NewGoogleProvider(&cfg.Google)

	articleRepo := newsRepo.NewMongoArticleRepository(db.Collection())
	articleService := newsService.NewArticleService(articleRepo, hub)

	return &Container{
		Config:      cfg,
		DB:          db,
		Hub:         hub,
		Sessions:    sessions,
		Identities:  identities,
		NewsRepo:    articleRepo,
		NewsService: articleService,
		NewsHandler: newsHandler.NewNewsHandler(articleService),
		AuthHandler: authHandler.NewAuthHandler(sessions),
	}, nil
}

// Cleanup giải phóng resources khi shutdown
func (c *Container) Cleanup() {
	c.Hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.DB.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close MongoDB connection")
	}
}
