package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gostformatter/server/services"
)

const serviceVersion = "1.0.0"

// SystemHandler служебные эндпоинты: информация, здоровье, статистика
type SystemHandler struct {
	formatService  *services.FormatService
	parserEnabled  bool
	storageEnabled bool
}

// NewSystemHandler создает служебный обработчик.
func NewSystemHandler(formatService *services.FormatService, parserEnabled, storageEnabled bool) *SystemHandler {
	return &SystemHandler{
		formatService:  formatService,
		parserEnabled:  parserEnabled,
		storageEnabled: storageEnabled,
	}
}

// HandleRoot описывает API.
// GET /
func (h *SystemHandler) HandleRoot(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, gin.H{
		"service": "GOST Formatter API",
		"version": serviceVersion,
		"status":  "running",
		"endpoints": gin.H{
			"health":           "/api/health",
			"format_single":    "/api/format/single",
			"format_batch":     "/api/format/batch",
			"parse":            "/api/parse",
			"metadata_lookup":  "/api/metadata/lookup",
			"dataset_stats":    "/api/dataset/stats",
			"dataset_generate": "/api/dataset/generate",
			"dataset_examples": "/api/dataset/examples",
			"stats":            "/api/stats",
		},
	})
}

// HandleHealth сообщает о работоспособности сервиса.
// GET /api/health
func (h *SystemHandler) HandleHealth(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, gin.H{
		"status":          "ok",
		"service":         "GOST Formatter",
		"fallback_parser": h.parserEnabled,
		"corpus_storage":  h.storageEnabled,
	})
}

// HandleStats возвращает накопленную статистику форматирования.
// GET /api/stats
func (h *SystemHandler) HandleStats(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, h.formatService.Statistics())
}
