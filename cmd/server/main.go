package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"gostformatter/database"
	"gostformatter/internal/ai"
	"gostformatter/internal/config"
	"gostformatter/metadata"
	"gostformatter/pipeline"
	"gostformatter/server/handlers"
	"gostformatter/server/services"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════")
	log.Println("Запуск GOST Formatter API...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	setupLogger(cfg.LogLevel)

	dbConfig := database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
	db, err := database.NewCorpusDBWithConfig(cfg.CorpusDatabasePath, dbConfig)
	if err != nil {
		log.Fatalf("Ошибка открытия базы корпуса: %v", err)
	}
	defer db.Close()
	log.Printf("База корпуса: %s", cfg.CorpusDatabasePath)

	pipelineOpts := []pipeline.Option{pipeline.WithWorkers(cfg.PipelineWorkers)}
	parserEnabled := cfg.ParserAPIKey != ""
	if parserEnabled {
		parser := ai.NewParserClient(cfg.ParserBaseURL, cfg.ParserAPIKey, cfg.ParserModel, cfg.ParserTimeout)
		pipelineOpts = append(pipelineOpts, pipeline.WithFallbackParser(parser))
		log.Printf("Внешний разборщик включен: %s", cfg.ParserModel)
	} else {
		log.Println("Внешний разборщик выключен (PARSER_API_KEY не задан)")
	}
	p := pipeline.New(pipelineOpts...)

	formatService := services.NewFormatService(p, slog.Default())
	datasetService := services.NewDatasetService(db, slog.Default())
	metadataService := services.NewMetadataService(
		metadata.NewService(cfg.MetadataTimeout, cfg.MetadataRateLimit), p)

	gin.SetMode(gin.ReleaseMode)
	router := handlers.NewRouter(handlers.RouterDeps{
		Format:         formatService,
		Dataset:        datasetService,
		Metadata:       metadataService,
		ParserEnabled:  parserEnabled,
		StorageEnabled: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	}()

	log.Println("═══════════════════════════════════════════════════════")
	log.Printf("Сервер запущен на порту %s", cfg.Port)
	log.Printf("API доступно: http://localhost:%s", cfg.Port)
	log.Println("Для остановки нажмите Ctrl+C")
	log.Println("═══════════════════════════════════════════════════════")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Получен сигнал завершения, останавливаю сервер...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}

// setupLogger настраивает уровень структурированного логирования.
func setupLogger(level string) {
	var slogLevel slog.Level
	switch level {
	case "DEBUG":
		slogLevel = slog.LevelDebug
	case "WARN":
		slogLevel = slog.LevelWarn
	case "ERROR":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel})))
}
