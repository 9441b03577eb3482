package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "gostformatter/server/errors"
	"gostformatter/server/services"
)

// FormatHandler обрабатывает запросы на оформление записей
type FormatHandler struct {
	service *services.FormatService
}

// NewFormatHandler создает обработчик форматирования.
func NewFormatHandler(service *services.FormatService) *FormatHandler {
	return &FormatHandler{service: service}
}

type singleFormatRequest struct {
	Source   services.SourceInput `json:"source"`
	Standard string               `json:"standard"`
}

type batchFormatRequest struct {
	Sources  []services.SourceInput `json:"sources"`
	Standard string                 `json:"standard"`
	// BatchSize принимается для совместимости клиентов, параллелизм
	// задан настройками конвейера.
	BatchSize int `json:"batch_size,omitempty"`
}

type textParseRequest struct {
	Text string `json:"text"`
}

// HandleFormatSingle оформляет одну запись.
// POST /api/format/single
func (h *FormatHandler) HandleFormatSingle(c *gin.Context) {
	var req singleFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("некорректное тело запроса", err)
		SendAppError(c, appErr)
		return
	}

	result, appErr := h.service.FormatSingle(c.Request.Context(), req.Source, req.Standard)
	if appErr != nil {
		SendAppError(c, appErr)
		return
	}

	SendJSONResponse(c, http.StatusOK, result)
}

// HandleFormatBatch оформляет пакет записей.
// POST /api/format/batch
func (h *FormatHandler) HandleFormatBatch(c *gin.Context) {
	var req batchFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("некорректное тело запроса", err)
		SendAppError(c, appErr)
		return
	}

	result, appErr := h.service.FormatBatch(c.Request.Context(), req.Sources, req.Standard)
	if appErr != nil {
		SendAppError(c, appErr)
		return
	}

	SendJSONResponse(c, http.StatusOK, result)
}

// HandleParse разбирает свободный текст на записи.
// POST /api/parse
func (h *FormatHandler) HandleParse(c *gin.Context) {
	var req textParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("некорректное тело запроса", err)
		SendAppError(c, appErr)
		return
	}

	result, appErr := h.service.ParseText(c.Request.Context(), req.Text)
	if appErr != nil {
		SendAppError(c, appErr)
		return
	}

	SendJSONResponse(c, http.StatusOK, result)
}
