package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/bbapp/bulletin-backend/internal/config"
	"github.com/bbapp/bulletin-backend/internal/handler"
	"github.com/bbapp/bulletin-backend/internal/middleware"
	"github.com/bbapp/bulletin-backend/internal/migration"
	"github.com/bbapp/bulletin-backend/internal/repository"
	"github.com/bbapp/bulletin-backend/internal/routes"
	"github.com/bbapp/bulletin-backend/internal/service"
	"github.com/bbapp/bulletin-backend/pkg/i18n"
	"github.com/bbapp/bulletin-backend/pkg/jwt"
	pkglogger "github.com/bbapp/bulletin-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Bulletin Board API
// @version         1.0
// @description     Bulletin listing, most-viewed ranking, threads and stars
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// appEnv returns APP_ENV, defaulting to local
func appEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return env
}

func main() {
	env := appEnv()
	dotenvFiles := config.LoadDotEnv(".", env)

	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := fmt.Sprintf("configs/config.%s.yaml", env)
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")

	if cfg.Database.AutoMigrate {
		if err := migration.Run(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	}

	// Repositories
	bulletinRepo := repository.NewBulletinRepository(db)
	userRepo := repository.NewUserRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	starRepo := repository.NewStarRepository(db)
	accessLogRepo := repository.NewAccessLogRepository(db)

	// Services
	listingService := service.NewListingService(bulletinRepo, cfg.Board.PageSize)
	rankingService := service.NewRankingService(bulletinRepo, accessLogRepo, service.RankingStrategy(cfg.Board.RankingStrategy))
	searchService := service.NewSearchService(bulletinRepo, userRepo, cfg.Board.PageSize)
	threadService := service.NewThreadService(bulletinRepo, userRepo, commentRepo, starRepo, accessLogRepo)
	starService := service.NewStarService(starRepo)
	bulletinService := service.NewBulletinService(bulletinRepo, accessLogRepo)
	commentService := service.NewCommentService(commentRepo, bulletinRepo)

	// Handlers
	bulletinHandler := handler.NewBulletinHandler(listingService, rankingService, searchService, threadService, bulletinService, cfg.Board.RankingLimit)
	commentHandler := handler.NewCommentHandler(commentService)
	starHandler := handler.NewStarHandler(starService)
	healthHandler := handler.NewHealthHandler(db)

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	// Translations: built-in messages, overridable by i18n/<locale>.json
	bundle := i18n.Default()
	if _, err := os.Stat("i18n"); err == nil {
		if err := bundle.LoadDir("i18n"); err != nil {
			pkglogger.Warn("i18n LoadDir failed: %v", err)
		}
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := splitAndTrim(cfg.CORS.AllowOrigins, ",")
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	routes.Setup(router, bulletinHandler, commentHandler, starHandler, healthHandler, jwtManager, bundle)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// splitAndTrim splits s by sep and drops empty parts
func splitAndTrim(s, sep string) []string {
	var parts []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// initDB opens the MySQL connection pool
func initDB(cfg *config.Config) (*gorm.DB, error) {
	mysqlCfg, err := mysqldriver.ParseDSN(cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}
	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	return db, nil
}
