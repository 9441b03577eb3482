package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "gostformatter/server/errors"
	"gostformatter/server/services"
)

// MetadataHandler обрабатывает поиск записей по DOI и ISBN
type MetadataHandler struct {
	service *services.MetadataService
}

// NewMetadataHandler создает обработчик поиска метаданных.
func NewMetadataHandler(service *services.MetadataService) *MetadataHandler {
	return &MetadataHandler{service: service}
}

type lookupRequest struct {
	Identifier string `json:"identifier"`
}

// HandleLookup ищет запись по идентификатору и возвращает её
// вместе с оформленным вариантом.
// POST /api/metadata/lookup
func (h *MetadataHandler) HandleLookup(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("некорректное тело запроса", err)
		SendAppError(c, appErr)
		return
	}

	result, appErr := h.service.Lookup(c.Request.Context(), req.Identifier)
	if appErr != nil {
		SendAppError(c, appErr)
		return
	}
	SendJSONResponse(c, http.StatusOK, result)
}
