// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_langlearn_quiz/internal/config"
	"go_langlearn_quiz/internal/handlers"
	"go_langlearn_quiz/internal/middleware"
	"go_langlearn_quiz/internal/quiz"
	"go_langlearn_quiz/internal/repository"
	"go_langlearn_quiz/internal/service"
	"go_langlearn_quiz/internal/storage"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	// 開発環境では読みやすい色付き出力、それ以外はJSON
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// DB接続 (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 画像ストレージ
	var store storage.Storage
	switch config.Cfg.Storage.Driver {
	case "s3":
		store = storage.NewS3Storage(&config.Cfg)
	default:
		store = storage.NewLocalStorage(config.Cfg.Storage.Local.Dir, config.Cfg.Storage.Local.BaseURL)
	}

	// Dependency Injection
	phraseRepo := repository.NewGormPhraseRepository()
	objectRepo := repository.NewGormObjectRepository()
	userRepo := repository.NewGormUserRepository()
	settingRepo := repository.NewGormSettingRepository()

	phraseService := service.NewPhraseService(db, phraseRepo)
	objectService := service.NewObjectService(db, objectRepo, store)
	authService := service.NewAuthService(db, userRepo, &config.Cfg)
	settingService := service.NewSettingService(db, settingRepo)
	quizService := service.NewQuizService(db, phraseRepo, objectRepo, settingService, quiz.NewClock())

	phraseHandler := handlers.NewPhraseHandler(phraseService, logger)
	objectHandler := handlers.NewObjectHandler(objectService, logger)
	authHandler := handlers.NewAuthHandler(authService, logger)
	settingHandler := handlers.NewSettingHandler(settingService, logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// 閲覧は認証不要
		r.Get("/phrases", phraseHandler.GetPhrases)
		r.Get("/phrases/{phrase_id}", phraseHandler.GetPhrase)
		r.Get("/objects", objectHandler.GetObjects)
		r.Get("/objects/{object_id}", objectHandler.GetObject)

		// --- Quiz session routes (認証は任意) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalJWTAuthMiddleware(&config.Cfg))

			r.Route("/quiz/sessions", func(r chi.Router) {
				r.Post("/", quizHandler.PostSession)
				r.Get("/{session_id}", quizHandler.GetSession)
				r.Post("/{session_id}/next", quizHandler.PostNext)
				r.Post("/{session_id}/previous", quizHandler.PostPrevious)
				r.Post("/{session_id}/repeat", quizHandler.PostRepeat)
				r.Post("/{session_id}/reveal", quizHandler.PostReveal)
				r.Post("/{session_id}/pause", quizHandler.PostPause)
				r.Post("/{session_id}/reshuffle", quizHandler.PostReshuffle)
				r.Delete("/{session_id}", quizHandler.DeleteSession)
			})
		})

		// --- Protected routes (要ログイン) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			// コンテンツの編集
			r.Post("/phrases", phraseHandler.PostPhrase)
			r.Put("/phrases/{phrase_id}", phraseHandler.PutPhrase)
			r.Patch("/phrases/{phrase_id}", phraseHandler.PatchPhrase)
			r.Delete("/phrases/{phrase_id}", phraseHandler.DeletePhrase)

			r.Post("/objects", objectHandler.PostObject)
			r.Patch("/objects/{object_id}", objectHandler.PatchObject)
			r.Delete("/objects/{object_id}", objectHandler.DeleteObject)

			// ユーザー設定
			r.Get("/settings/countdown", settingHandler.GetCountdown)
			r.Put("/settings/countdown", settingHandler.PutCountdown)
		})
	})

	// ローカルストレージ使用時は画像を静的配信する
	if config.Cfg.Storage.Driver != "s3" {
		fileServer := http.StripPrefix(config.Cfg.Storage.Local.BaseURL, http.FileServer(http.Dir(config.Cfg.Storage.Local.Dir)))
		r.Get(config.Cfg.Storage.Local.BaseURL+"/*", fileServer.ServeHTTP)
	}

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second, // 画像アップロードがあるため長め
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
