package container

import (
	"context"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	authhandler "portfolio-backend/internal/domains/auth/handler"
	authrepo "portfolio-backend/internal/domains/auth/repository"
	authservice "portfolio-backend/internal/domains/auth/service"

	skillhandler "portfolio-backend/internal/domains/skill/handler"
	skillrepo "portfolio-backend/internal/domains/skill/repository"
	skillservice "portfolio-backend/internal/domains/skill/service"

	offeringhandler "portfolio-backend/internal/domains/offering/handler"
	offeringrepo "portfolio-backend/internal/domains/offering/repository"
	offeringservice "portfolio-backend/internal/domains/offering/service"

	experiencehandler "portfolio-backend/internal/domains/experience/handler"
	experiencerepo "portfolio-backend/internal/domains/experience/repository"
	experienceservice "portfolio-backend/internal/domains/experience/service"

	portfoliohandler "portfolio-backend/internal/domains/portfolio/handler"
	portfoliorepo "portfolio-backend/internal/domains/portfolio/repository"
	portfolioservice "portfolio-backend/internal/domains/portfolio/service"

	bloghandler "portfolio-backend/internal/domains/blog/handler"
	blogrepo "portfolio-backend/internal/domains/blog/repository"
	blogservice "portfolio-backend/internal/domains/blog/service"

	profilehandler "portfolio-backend/internal/domains/profile/handler"
	profilerepo "portfolio-backend/internal/domains/profile/repository"
	profileservice "portfolio-backend/internal/domains/profile/service"

	uploadhandler "portfolio-backend/internal/domains/upload/handler"
)

// Container chứa toàn bộ dependencies của application
// Dependency Injection pattern: khởi tạo 1 lần ở đây, inject xuống các layer
type Container struct {
	Config     *config.Config
	DB         *database.SQLiteDB
	Storage    *storage.LocalStorage
	JWTManager *jwt.Manager

	// Handlers - entry points cho router
	AuthHandler       *authhandler.AuthHandler
	SkillHandler      *skillhandler.SkillHandler
	OfferingHandler   *offeringhandler.OfferingHandler
	ExperienceHandler *experiencehandler.ExperienceHandler
	PortfolioHandler  *portfoliohandler.PortfolioHandler
	BlogHandler       *bloghandler.BlogHandler
	ProfileHandler    *profilehandler.ProfileHandler
	UploadHandler     *uploadhandler.UploadHandler
}

// NewContainer khởi tạo và wire toàn bộ dependencies
// Flow: config -> database -> storage -> jwt -> repos -> services -> handlers
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	// Database
	db := database.NewSQLiteDB(cfg.Database.Path)
	if err := db.Connect(ctx); err != nil {
		return nil, err
	}
	if err := db.Seed(ctx); err != nil {
		db.Close()
		return nil, err
	}

	// File storage
	st, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		db.Close()
		return nil, err
	}

	// Token issuer
	jwtManager := jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	// Repositories
	authRepository := authrepo.NewSQLiteRepository(db.DB)
	skillRepository := skillrepo.NewSQLiteRepository(db.DB)
	offeringRepository := offeringrepo.NewSQLiteRepository(db.DB)
	experienceRepository := experiencerepo.NewSQLiteRepository(db.DB)
	portfolioRepository := portfoliorepo.NewSQLiteRepository(db.DB)
	blogRepository := blogrepo.NewSQLiteRepository(db.DB)
	profileRepository := profilerepo.NewSQLiteRepository(db.DB)

	// Services
	authSvc := authservice.NewAuthService(authRepository, jwtManager)
	skillSvc := skillservice.NewSkillService(skillRepository)
	offeringSvc := offeringservice.NewOfferingService(offeringRepository)
	experienceSvc := experienceservice.NewExperienceService(experienceRepository)
	portfolioSvc := portfolioservice.NewPortfolioService(portfolioRepository)
	blogSvc := blogservice.NewBlogService(blogRepository)
	profileSvc := profileservice.NewProfileService(profileRepository, skillSvc, offeringSvc)

	// Nhắc admin đi setup credential khi chưa có - không fail startup
	if configured, err := authSvc.Configured(ctx); err == nil && !configured {
		logger.Warn("No admin account configured yet. POST /api/auth/setup to create one.")
	}

	return &Container{
		Config:     cfg,
		DB:         db,
		Storage:    st,
		JWTManager: jwtManager,

		AuthHandler:       authhandler.NewAuthHandler(authSvc),
		SkillHandler:      skillhandler.NewSkillHandler(skillSvc),
		OfferingHandler:   offeringhandler.NewOfferingHandler(offeringSvc),
		ExperienceHandler: experiencehandler.NewExperienceHandler(experienceSvc),
		PortfolioHandler:  portfoliohandler.NewPortfolioHandler(portfolioSvc),
		BlogHandler:       bloghandler.NewBlogHandler(blogSvc),
		ProfileHandler:    profilehandler.NewProfileHandler(profileSvc),
		UploadHandler:     uploadhandler.NewUploadHandler(st, cfg.Upload.MaxBytes),
	}, nil
}

// Cleanup giải phóng resources khi shutdown
func (c *Container) Cleanup() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
