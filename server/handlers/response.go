package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	apperrors "gostformatter/server/errors"
	"gostformatter/server/middleware"
)

// SendJSONResponse отправляет успешный JSON ответ
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendJSONError отправляет JSON ошибку и логирует её
func SendJSONError(c *gin.Context, statusCode int, message string) {
	slog.Error("HTTP error response",
		"status", statusCode,
		"message", message,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", middleware.GetRequestIDFromGin(c),
	)

	c.JSON(statusCode, gin.H{
		"error":   true,
		"message": message,
	})
}

// SendAppError отправляет AppError клиенту: пользователю уходит
// только публичное сообщение, детали остаются в логах
func SendAppError(c *gin.Context, appErr *apperrors.AppError) {
	if appErr.Err != nil {
		slog.Error("application error",
			"status", appErr.StatusCode(),
			"error", appErr.Err,
			"request_id", middleware.GetRequestIDFromGin(c),
		)
	}
	SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
}
