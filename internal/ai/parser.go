package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"gostformatter/pipeline"
)

const parserSystemPrompt = `Ты разбираешь библиографические записи на русском и белорусском языках.
Выдели из записи поля и верни строго один JSON-объект без пояснений:
{"authors": ["Фамилия, И. О."], "title": "...", "year": "...", "publisher": "...",
"city": "...", "pages": "...", "journal": "...", "volume": "...", "issue": "...",
"url": "...", "access_date": "...", "doi": "..."}
Поля, которых в записи нет, не включай.`

// ParserClient разбирает свободный текст записи через внешнюю
// языковую модель с OpenAI-совместимым API. Используется конвейером
// как запасной разборщик, когда детерминированные извлекатели не
// нашли в тексте ничего.
type ParserClient struct {
	baseURL     string
	apiKey      string
	model       string
	httpClient  *http.Client
	retryConfig RetryConfig
}

// NewParserClient создает клиент внешнего разборщика.
func NewParserClient(baseURL, apiKey, model string, timeout time.Duration) *ParserClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxConnsPerHost:     5,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 5,
	}

	return &ParserClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		retryConfig: DefaultRetryConfig(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Parse просит модель разобрать запись и возвращает найденные поля.
func (c *ParserClient) Parse(ctx context.Context, text string) (pipeline.Citation, error) {
	content, err := c.chatCompletion(ctx, []chatMessage{
		{Role: "system", Content: parserSystemPrompt},
		{Role: "user", Content: text},
	})
	if err != nil {
		return pipeline.Citation{}, err
	}

	var citation pipeline.Citation
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &citation); err != nil {
		return pipeline.Citation{}, fmt.Errorf("failed to decode model answer: %w", err)
	}
	return citation, nil
}

// chatCompletion выполняет запрос с повторными попытками для rate
// limit и серверных ошибок.
func (c *ParserClient) chatCompletion(ctx context.Context, messages []chatMessage) (string, error) {
	jsonData, err := json.Marshal(chatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)

	var lastErr error
	delay := c.retryConfig.InitialDelay

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("[parser] Retry attempt %d/%d after %v", attempt, c.retryConfig.MaxRetries, delay)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
			delay = time.Duration(float64(delay) * c.retryConfig.BackoffMultiplier)
			if delay > c.retryConfig.MaxDelay {
				delay = c.retryConfig.MaxDelay
			}
		}

		req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		if c.apiKey != "" {
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			log.Printf("[parser] Request failed (attempt %d/%d): %v", attempt+1, c.retryConfig.MaxRetries+1, lastErr)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limit exceeded (429): %s", string(body))
			continue
		}
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}

		var response chatResponse
		if err := json.Unmarshal(body, &response); err != nil {
			lastErr = fmt.Errorf("failed to decode response: %w", err)
			continue
		}
		if response.Error != nil {
			return "", fmt.Errorf("API error: %s (type: %s)", response.Error.Message, response.Error.Type)
		}
		if len(response.Choices) == 0 {
			return "", fmt.Errorf("no choices in response")
		}
		return response.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("all retry attempts failed: %w", lastErr)
}

// stripCodeFence убирает обрамление ```json ... ```, которым модели
// любят оборачивать ответ.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
