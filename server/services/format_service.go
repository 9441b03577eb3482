package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gostformatter/classification"
	"gostformatter/pipeline"
	apperrors "gostformatter/server/errors"
)

// Поддерживаемые стандарты оформления. VAK_RB использует те же
// шаблоны ГОСТ 7.1, отличия закрыты требованиями перечня ВАК РБ.
const (
	StandardGOST2018 = "GOST_2018"
	StandardVAKRB    = "VAK_RB"
)

const maxBatchSize = 500

// минимальная длина строки, которую имеет смысл считать записью
const minParseLineLength = 20

// SourceInput структурированная запись из запроса на форматирование
type SourceInput struct {
	ID        int      `json:"id"`
	Type      string   `json:"type,omitempty"`
	Raw       string   `json:"raw,omitempty"`
	Authors   []string `json:"authors,omitempty"`
	Title     string   `json:"title,omitempty"`
	Year      string   `json:"year,omitempty"`
	Publisher string   `json:"publisher,omitempty"`
	City      string   `json:"city,omitempty"`
	Pages     string   `json:"pages,omitempty"`
	Journal   string   `json:"journal,omitempty"`
	Volume    string   `json:"volume,omitempty"`
	Issue     string   `json:"issue,omitempty"`
	DOI       string   `json:"doi,omitempty"`
	URL       string   `json:"url,omitempty"`
	Language  string   `json:"language,omitempty"`
}

// Citation переводит запись запроса во вход конвейера.
func (s SourceInput) Citation() pipeline.Citation {
	return pipeline.Citation{
		Raw:       s.Raw,
		Authors:   s.Authors,
		Title:     s.Title,
		Year:      s.Year,
		Publisher: s.Publisher,
		City:      s.City,
		Pages:     s.Pages,
		Journal:   s.Journal,
		Volume:    s.Volume,
		Issue:     s.Issue,
		DOI:       s.DOI,
		URL:       s.URL,
		Language:  s.Language,
	}
}

// FormatResult итог форматирования одной записи
type FormatResult struct {
	ID           int                     `json:"id"`
	Original     string                  `json:"original,omitempty"`
	Formatted    string                  `json:"formatted"`
	Category     classification.Category `json:"category"`
	Confidence   int                     `json:"confidence"`
	Issues       []pipeline.Issue        `json:"issues,omitempty"`
	StandardUsed string                  `json:"standard_used"`
}

// BatchFormatResult итог пакетного форматирования
type BatchFormatResult struct {
	Results          []FormatResult      `json:"results"`
	Total            int                 `json:"total"`
	Success          int                 `json:"success"`
	Stats            pipeline.BatchStats `json:"stats"`
	ProcessingTimeMs int64               `json:"processing_time_ms"`
}

// ParsedSource одна запись, распознанная в свободном тексте
type ParsedSource struct {
	ID         int                     `json:"id"`
	Type       classification.Category `json:"type"`
	Original   string                  `json:"original"`
	Formatted  string                  `json:"formatted"`
	Authors    []string                `json:"authors,omitempty"`
	Title      string                  `json:"title,omitempty"`
	Year       string                  `json:"year,omitempty"`
	Publisher  string                  `json:"publisher,omitempty"`
	City       string                  `json:"city,omitempty"`
	Pages      string                  `json:"pages,omitempty"`
	Journal    string                  `json:"journal,omitempty"`
	Confidence int                     `json:"confidence"`
}

// ParseResult итог разбора свободного текста
type ParseResult struct {
	SourcesFound int            `json:"sources_found"`
	Sources      []ParsedSource `json:"sources"`
}

// ServiceStats накопленная статистика сервиса форматирования
type ServiceStats struct {
	TotalProcessed int                             `json:"total_processed"`
	TotalBatches   int                             `json:"total_batches"`
	AvgConfidence  float64                         `json:"avg_confidence"`
	ByCategory     map[classification.Category]int `json:"by_category"`
	UptimeSeconds  int64                           `json:"uptime_seconds"`
}

// FormatService оборачивает конвейер обработки записей для HTTP слоя
// и копит статистику по обработанному.
type FormatService struct {
	pipeline *pipeline.Pipeline
	logger   *slog.Logger

	mu            sync.Mutex
	processed     int
	batches       int
	confidenceSum int
	byCategory    map[classification.Category]int
	startedAt     time.Time
}

// NewFormatService создает сервис форматирования.
func NewFormatService(p *pipeline.Pipeline, logger *slog.Logger) *FormatService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FormatService{
		pipeline:   p,
		logger:     logger,
		byCategory: make(map[classification.Category]int),
		startedAt:  time.Now(),
	}
}

// normalizeStandard проверяет запрошенный стандарт оформления.
func normalizeStandard(standard string) (string, *apperrors.AppError) {
	switch strings.ToUpper(strings.TrimSpace(standard)) {
	case "", StandardVAKRB:
		return StandardVAKRB, nil
	case StandardGOST2018:
		return StandardGOST2018, nil
	}
	return "", apperrors.NewValidationError(
		"неподдерживаемый стандарт оформления: "+standard, nil)
}

// FormatSingle форматирует одну запись.
func (s *FormatService) FormatSingle(ctx context.Context, source SourceInput, standard string) (*FormatResult, *apperrors.AppError) {
	used, appErr := normalizeStandard(standard)
	if appErr != nil {
		return nil, appErr
	}

	citation := source.Citation()
	if citation.Raw == "" && len(source.Authors) == 0 && source.Title == "" {
		return nil, apperrors.NewValidationError(
			"запись пуста: нужен текст или хотя бы авторы либо заглавие", nil)
	}

	res := s.pipeline.Process(ctx, citation)
	s.record(res)

	return &FormatResult{
		ID:           source.ID,
		Original:     source.Raw,
		Formatted:    res.Formatted,
		Category:     res.Category,
		Confidence:   res.Confidence,
		Issues:       res.Issues,
		StandardUsed: used,
	}, nil
}

// FormatBatch форматирует пакет записей параллельно.
func (s *FormatService) FormatBatch(ctx context.Context, sources []SourceInput, standard string) (*BatchFormatResult, *apperrors.AppError) {
	used, appErr := normalizeStandard(standard)
	if appErr != nil {
		return nil, appErr
	}
	if len(sources) == 0 {
		return nil, apperrors.NewValidationError("пакет пуст", nil)
	}
	if len(sources) > maxBatchSize {
		return nil, apperrors.NewValidationError(
			"пакет слишком велик, максимум 500 записей", nil)
	}

	citations := make([]pipeline.Citation, len(sources))
	for i, src := range sources {
		citations[i] = src.Citation()
	}

	start := time.Now()
	results, stats := s.pipeline.ProcessAll(ctx, citations)

	out := &BatchFormatResult{
		Results:          make([]FormatResult, len(results)),
		Total:            len(results),
		Stats:            stats,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
	for i, res := range results {
		out.Results[i] = FormatResult{
			ID:           sources[i].ID,
			Original:     sources[i].Raw,
			Formatted:    res.Formatted,
			Category:     res.Category,
			Confidence:   res.Confidence,
			Issues:       res.Issues,
			StandardUsed: used,
		}
		if len(res.Issues) == 0 {
			out.Success++
		}
	}

	s.recordBatch(results)
	s.logger.Info("пакет обработан",
		"total", out.Total,
		"success", out.Success,
		"avg_confidence", stats.AvgConfidence,
		"elapsed_ms", out.ProcessingTimeMs,
	)
	return out, nil
}

// ParseText разбирает свободный текст: каждая достаточно длинная
// строка считается отдельной записью.
func (s *FormatService) ParseText(ctx context.Context, text string) (*ParseResult, *apperrors.AppError) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("текст пуст", nil)
	}

	var citations []pipeline.Citation
	var originals []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len([]rune(line)) < minParseLineLength {
			continue
		}
		citations = append(citations, pipeline.Citation{Raw: line})
		originals = append(originals, line)
	}
	if len(citations) == 0 {
		return nil, apperrors.NewValidationError(
			"в тексте не нашлось ни одной записи", nil)
	}

	results, _ := s.pipeline.ProcessAll(ctx, citations)
	s.recordBatch(results)

	parsed := &ParseResult{
		SourcesFound: len(results),
		Sources:      make([]ParsedSource, len(results)),
	}
	for i, res := range results {
		parsed.Sources[i] = ParsedSource{
			ID:         i + 1,
			Type:       res.Category,
			Original:   originals[i],
			Formatted:  res.Formatted,
			Authors:    res.Fields.Authors,
			Title:      res.Fields.Title.Value,
			Year:       res.Fields.Year.Value,
			Publisher:  res.Fields.Publisher.Value,
			City:       res.Fields.City.Value,
			Pages:      res.Fields.Pages.Value,
			Journal:    res.Fields.Journal.Value,
			Confidence: res.Confidence,
		}
	}
	return parsed, nil
}

// Statistics возвращает накопленную статистику сервиса.
func (s *FormatService) Statistics() ServiceStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := ServiceStats{
		TotalProcessed: s.processed,
		TotalBatches:   s.batches,
		ByCategory:     make(map[classification.Category]int, len(s.byCategory)),
		UptimeSeconds:  int64(time.Since(s.startedAt).Seconds()),
	}
	for cat, n := range s.byCategory {
		stats.ByCategory[cat] = n
	}
	if s.processed > 0 {
		stats.AvgConfidence = float64(s.confidenceSum) / float64(s.processed)
	}
	return stats
}

func (s *FormatService) record(res pipeline.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed++
	s.confidenceSum += res.Confidence
	s.byCategory[res.Category]++
}

func (s *FormatService) recordBatch(results []pipeline.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches++
	for _, res := range results {
		s.processed++
		s.confidenceSum += res.Confidence
		s.byCategory[res.Category]++
	}
}
