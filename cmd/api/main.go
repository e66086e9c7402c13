package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/ats-analyzer/internal/config"
	"alfredoptarigan/ats-analyzer/internal/handlers"
	applog "alfredoptarigan/ats-analyzer/internal/logger"
	"alfredoptarigan/ats-analyzer/internal/repositories"
	"alfredoptarigan/ats-analyzer/internal/services"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	cfg.Log.Service = "ats-api"
	zlog, err := applog.New(cfg.Log)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("✅ Config loaded successfully", zap.String("backend", cfg.Models.Backend))

	ctx := context.Background()

	loader, err := services.NewModelLoader(ctx, cfg.Models.Backend, services.LoaderOptions{
		ModelsDir:    cfg.Models.Dir,
		GeminiAPIKey: cfg.Gemini.APIKey,
		EmbedModel:   cfg.Gemini.EmbedModel,
		QdrantURL:    cfg.Qdrant.URL,
		QdrantAPIKey: cfg.Qdrant.APIKey,
		Collection:   cfg.Qdrant.Collection,
		TopK:         cfg.Qdrant.TopK,
	}, zlog)
	if err != nil {
		zlog.Fatal("❌ Failed to build model loader", zap.Error(err))
	}

	engine := services.LoadClassificationEngine(ctx, loader, zlog)
	analyzer := services.NewAnalyzerService(engine, services.NewDocumentReader(zlog), zlog)
	zlog.Info("✅ Services initialized successfully")

	// Submission audit log is optional.
	var submissionRepo repositories.SubmissionRepository
	var submissionHandler *handlers.SubmissionHandler
	if cfg.Database.Enabled {
		db, err := config.InitDatabase(cfg, zlog)
		if err != nil {
			zlog.Fatal("❌ Failed to initialize database", zap.Error(err))
		}
		submissionRepo = repositories.NewSubmissionRepository(db)
		submissionHandler = handlers.NewSubmissionHandler(submissionRepo)
		zlog.Info("✅ Submission audit log enabled")
	}

	analyzeHandler := handlers.NewAnalyzeHandler(analyzer, submissionRepo, cfg.Upload.MaxFileSize, zlog)
	healthHandler := handlers.NewHealthHandler(engine)

	app := fiber.New(fiber.Config{
		AppName:      "ATS Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + 1<<20,
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.SetupRoutes(app, analyzeHandler, submissionHandler, healthHandler)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			zlog.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
