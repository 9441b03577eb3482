package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gostformatter/classification"
	apperrors "gostformatter/server/errors"
	"gostformatter/server/services"
)

// DatasetHandler обрабатывает запросы к корпусу примеров
type DatasetHandler struct {
	service *services.DatasetService
}

// NewDatasetHandler создает обработчик корпуса.
func NewDatasetHandler(service *services.DatasetService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// HandleStats возвращает сводку по хранилищу корпуса.
// GET /api/dataset/stats
func (h *DatasetHandler) HandleStats(c *gin.Context) {
	stats, appErr := h.service.Stats(c.Request.Context())
	if appErr != nil {
		SendAppError(c, appErr)
		return
	}
	SendJSONResponse(c, http.StatusOK, stats)
}

// HandleGenerate запускает генерацию корпуса.
// POST /api/dataset/generate
func (h *DatasetHandler) HandleGenerate(c *gin.Context) {
	var params services.GenerateParams
	if err := c.ShouldBindJSON(&params); err != nil {
		appErr := apperrors.NewValidationError("некорректное тело запроса", err)
		SendAppError(c, appErr)
		return
	}

	summary, appErr := h.service.Generate(c.Request.Context(), params)
	if appErr != nil {
		SendAppError(c, appErr)
		return
	}
	SendJSONResponse(c, http.StatusOK, summary)
}

// HandleExamples возвращает записи хранилища.
// GET /api/dataset/examples?type=&origin=&limit=
func (h *DatasetHandler) HandleExamples(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			appErr := apperrors.NewValidationError("limit должен быть положительным числом", err)
			SendAppError(c, appErr)
			return
		}
		limit = parsed
	}

	records, appErr := h.service.Examples(
		c.Request.Context(),
		classification.Category(c.Query("type")),
		c.Query("origin"),
		limit,
	)
	if appErr != nil {
		SendAppError(c, appErr)
		return
	}

	SendJSONResponse(c, http.StatusOK, gin.H{
		"total":   len(records),
		"records": records,
	})
}
