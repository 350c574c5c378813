package server

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/thereayou/contactbook/internal/config"
	"github.com/thereayou/contactbook/internal/database"
	"github.com/thereayou/contactbook/internal/handlers"
	"github.com/thereayou/contactbook/internal/middleware"
	"github.com/thereayou/contactbook/internal/services"
	"github.com/thereayou/contactbook/pkg/auth"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Redis  *redis.Client
	Config *config.Config
	Log    *zap.Logger
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	logger := buildLogger(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("postgres connect failed", zap.Error(err))
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal("invalid REDIS_URL", zap.Error(err))
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("redis connect failed", zap.Error(err))
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, cfg.EmailTokenTTL)

	var mailer services.Mailer
	if cfg.SMTPHost != "" {
		mailer = services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		logger.Warn("SMTP_HOST is not set, confirmation emails disabled")
	}

	var uploader services.AvatarUploader
	if cfg.CloudinaryName != "" {
		up, err := services.NewCloudinaryUploader(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Warn("cloudinary init failed, avatar uploads disabled", zap.Error(err))
		} else {
			uploader = up
		}
	} else {
		logger.Warn("CLOUDINARY_NAME is not set, avatar uploads disabled")
	}

	authService := services.NewAuthService(db, jwtMgr, mailer, logger)

	authH := handlers.NewAuthHandler(authService)
	contactsH := handlers.NewContactsHandler(db)
	usersH := handlers.NewUserHandler(db, uploader)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimit(rdb, cfg.RateLimit, cfg.RateWindow))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	APIEndpoints(router, authH, contactsH, usersH, middleware.RequireAuth(authService))

	return &Server{
		Router: router,
		DB:     db,
		Redis:  rdb,
		Config: cfg,
		Log:    logger,
	}
}

func (s *Server) Run() {
	s.Log.Info("server starting", zap.String("port", s.Config.Port))
	if err := s.Router.Run(":" + s.Config.Port); err != nil {
		s.Log.Fatal("server run error", zap.Error(err))
	}
}

func buildLogger(levelEnv string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if levelEnv != "" {
		if err := cfg.Level.UnmarshalText([]byte(levelEnv)); err != nil {
			log.Printf("bad LOG_LEVEL=%s, using info", levelEnv)
		}
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	return logger
}
