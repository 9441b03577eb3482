package handlers

import (
	"github.com/gin-gonic/gin"

	"gostformatter/server/middleware"
	"gostformatter/server/services"
)

// RouterDeps зависимости маршрутизатора
type RouterDeps struct {
	Format         *services.FormatService
	Dataset        *services.DatasetService
	Metadata       *services.MetadataService
	ParserEnabled  bool
	StorageEnabled bool
}

// NewRouter собирает gin маршрутизатор со всеми эндпоинтами и
// промежуточными обработчиками.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.GinRecoveryMiddleware())
	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())

	formatHandler := NewFormatHandler(deps.Format)
	datasetHandler := NewDatasetHandler(deps.Dataset)
	metadataHandler := NewMetadataHandler(deps.Metadata)
	systemHandler := NewSystemHandler(deps.Format, deps.ParserEnabled, deps.StorageEnabled)

	router.GET("/", systemHandler.HandleRoot)

	api := router.Group("/api")
	{
		api.GET("/health", systemHandler.HandleHealth)
		api.GET("/stats", systemHandler.HandleStats)

		api.POST("/format/single", formatHandler.HandleFormatSingle)
		api.POST("/format/batch", formatHandler.HandleFormatBatch)
		api.POST("/parse", formatHandler.HandleParse)

		api.POST("/metadata/lookup", metadataHandler.HandleLookup)

		api.GET("/dataset/stats", datasetHandler.HandleStats)
		api.POST("/dataset/generate", datasetHandler.HandleGenerate)
		api.GET("/dataset/examples", datasetHandler.HandleExamples)
	}

	return router
}
