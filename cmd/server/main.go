package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gestio-app/gestio/internal/config"
	"github.com/gestio-app/gestio/internal/ledger/handler"
	"github.com/gestio-app/gestio/internal/ledger/service"
	"github.com/gestio-app/gestio/internal/ledger/store"
	"github.com/gestio-app/gestio/internal/middleware"
	"github.com/gestio-app/gestio/internal/shared/docstore"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting gestio service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	// 初始化文档存储
	docs, err := initDocstore(cfg.Storage)
	if err != nil {
		zapLogger.Fatal("Failed to init document store", zap.Error(err))
	}
	defer docs.Close()

	// 加载账本集合到内存
	st := store.New(docs, zapLogger)
	st.Load(context.Background())

	svc := service.NewServices(st)
	handlers := handler.NewHandlers(svc)

	// HTTP 服务
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.CORS())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": Version})
	})

	api := r.Group("/api/v1")
	if cfg.JWT.Secret != "" {
		api.Use(middleware.JWTAuth(cfg.JWT.Secret))
	}
	handlers.RegisterRoutes(api)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// 优雅退出：停服后整体落盘一次
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Forced shutdown", zap.Error(err))
	}
	st.FlushAll()
	zapLogger.Info("Bye")
}

func initLogger(cfg config.LogConfig, mode string) (*zap.Logger, error) {
	if mode == gin.DebugMode || cfg.Format == "console" {
		return zap.NewDevelopment()
	}

	zcfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(cfg.Level); err == nil {
		zcfg.Level = lvl
	}
	return zcfg.Build()
}

func initDocstore(cfg config.StorageConfig) (docstore.Store, error) {
	switch cfg.Driver {
	case "file", "":
		return docstore.NewFileStore(cfg.Dir)
	case "postgres":
		return docstore.NewPostgresStore(cfg.PostgresDSN)
	case "redis":
		return docstore.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
