package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"gostformatter/classification"
	"gostformatter/extractors"
	"gostformatter/formatter"
	"gostformatter/normalization"
)

// Citation — входная запись: сырой текст, структурированные поля или
// и то и другое. Заполненные поля имеют приоритет над извлечёнными
// из текста.
type Citation struct {
	Raw        string   `json:"raw,omitempty"`
	Authors    []string `json:"authors,omitempty"`
	Title      string   `json:"title,omitempty"`
	Year       string   `json:"year,omitempty"`
	Publisher  string   `json:"publisher,omitempty"`
	City       string   `json:"city,omitempty"`
	Pages      string   `json:"pages,omitempty"`
	Journal    string   `json:"journal,omitempty"`
	Volume     string   `json:"volume,omitempty"`
	Issue      string   `json:"issue,omitempty"`
	URL        string   `json:"url,omitempty"`
	AccessDate string   `json:"access_date,omitempty"`
	DOI        string   `json:"doi,omitempty"`
	Language   string   `json:"language,omitempty"`
}

// IssueCode — код замечания конвейера.
type IssueCode string

const (
	// IssueUnrecognizedType — классификатор не нашёл ни одного признака.
	IssueUnrecognizedType IssueCode = "unrecognized_type"
	// IssueMissingRequiredField — в записи нет обязательного поля шаблона.
	IssueMissingRequiredField IssueCode = "missing_required_field"
	// IssueAmbiguousRange — дефис между числами остался неразрешённым.
	IssueAmbiguousRange IssueCode = "ambiguous_range"
	// IssuePunctuation — финальная проверка нашла огрех пунктуации.
	IssuePunctuation IssueCode = "punctuation"
	// IssueCanceled — запись не обработана из-за отмены пакета.
	IssueCanceled IssueCode = "canceled"
	// IssueInternal — обработчик записи аварийно завершился.
	IssueInternal IssueCode = "internal"
)

// Issue — одно замечание к обработанной записи.
type Issue struct {
	Code    IssueCode `json:"code"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Result — итог обработки одной записи.
type Result struct {
	Category   classification.Category `json:"category"`
	Fields     extractors.Fields       `json:"fields"`
	Formatted  string                  `json:"formatted"`
	Confidence int                     `json:"confidence"`
	Issues     []Issue                 `json:"issues,omitempty"`
}

// BatchStats — сводка по обработанному пакету.
type BatchStats struct {
	Processed     int                             `json:"processed"`
	Canceled      int                             `json:"canceled"`
	ByCategory    map[classification.Category]int `json:"by_category"`
	AvgConfidence float64                         `json:"avg_confidence"`
}

// FallbackParser разбирает текст, который не дался детерминированным
// извлекателям. Его ответ не пользуется доверием: результат проходит
// нормализацию и проверку наравне с обычным вводом.
type FallbackParser interface {
	Parse(ctx context.Context, text string) (Citation, error)
}

const (
	defaultWorkers = 10

	confidenceFull       = 100
	confidenceFloor      = 30
	penaltyMissingAuthor = 20
	penaltyMissingTitle  = 30
	penaltyMissingYear   = 10
)

// Pipeline — конвейер обработки библиографических записей:
// классификация, извлечение полей, сборка по шаблону, нормализация
// пунктуации и итоговая проверка.
type Pipeline struct {
	workers  int
	fallback FallbackParser
	logger   *slog.Logger
}

// Option настраивает конвейер.
type Option func(*Pipeline)

// WithWorkers задает число параллельных обработчиков пакета.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithFallbackParser подключает внешний разборщик свободного текста.
func WithFallbackParser(fp FallbackParser) Option {
	return func(p *Pipeline) { p.fallback = fp }
}

// WithLogger задает логгер конвейера.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// New создает конвейер с настройками по умолчанию.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		workers: defaultWorkers,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process обрабатывает одну запись. Любой вход дает результат:
// нераспознанный тип и ненайденные поля выражаются замечаниями и
// штрафами к уверенности, а не ошибками.
func (p *Pipeline) Process(ctx context.Context, c Citation) Result {
	text := strings.TrimSpace(c.Raw)

	var fields extractors.Fields
	if text != "" {
		fields = extractors.Extract(text)
	}
	mergeCitation(&fields, c)

	category := classification.Unknown
	if text != "" {
		category = classification.Classify(text)
	} else if hasAnyField(fields) {
		category = classifyStructured(fields)
	}

	// Внешний разборщик подключается только когда детерминированный
	// извлекатель не нашёл в тексте вообще ничего.
	if category == classification.Unknown && !hasAnyField(fields) && p.fallback != nil && text != "" {
		if guess, err := p.fallback.Parse(ctx, text); err == nil {
			mergeCitation(&fields, guess)
			if guess.Raw != "" {
				category = classification.Classify(guess.Raw)
			}
			if category == classification.Unknown && hasAnyField(fields) {
				category = classifyStructured(fields)
			}
		} else {
			p.logger.Warn("внешний разборщик не справился", "error", err)
		}
	}

	var issues []Issue

	var formatted string
	if category == classification.Unknown && text != "" {
		// Без категории шаблон не выбрать: возвращаем нормализованный
		// исходный текст как лучший доступный ответ.
		issues = append(issues, Issue{
			Code:    IssueUnrecognizedType,
			Message: "не найден ни один признак типа записи",
		})
		var normIssues []normalization.Issue
		formatted, normIssues = normalization.NormalizeWithIssues(text)
		issues = append(issues, fromNormalizationIssues(normIssues)...)
	} else {
		if category == classification.Unknown {
			issues = append(issues, Issue{
				Code:    IssueUnrecognizedType,
				Message: "не найден ни один признак типа записи",
			})
		}
		draft, renderIssues := formatter.Render(category, fields)
		for _, ri := range renderIssues {
			issues = append(issues, Issue{
				Code:    IssueMissingRequiredField,
				Field:   ri.Field,
				Message: ri.Message,
			})
		}
		var normIssues []normalization.Issue
		formatted, normIssues = normalization.NormalizeWithIssues(draft)
		issues = append(issues, fromNormalizationIssues(normIssues)...)
	}

	return Result{
		Category:   category,
		Fields:     fields,
		Formatted:  formatted,
		Confidence: confidence(category, fields),
		Issues:     issues,
	}
}

// ProcessAll обрабатывает пакет записей параллельно, сохраняя порядок.
// При отмене контекста ещё не взятые в работу записи помечаются
// замечанием canceled; начатые записи дорабатываются.
func (p *Pipeline) ProcessAll(ctx context.Context, citations []Citation) ([]Result, BatchStats) {
	results := make([]Result, len(citations))

	var wg sync.WaitGroup
	var mu sync.Mutex
	semaphore := make(chan struct{}, p.workers)

	for i, c := range citations {
		select {
		case <-ctx.Done():
			mu.Lock()
			results[i] = canceledResult()
			mu.Unlock()
			continue
		default:
		}

		wg.Add(1)
		go func(idx int, cit Citation) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					p.logger.Error("обработчик записи аварийно завершился", "index", idx, "panic", r)
					mu.Lock()
					results[idx] = Result{
						Category:   classification.Unknown,
						Confidence: confidenceFloor,
						Issues: []Issue{{
							Code:    IssueInternal,
							Message: fmt.Sprintf("внутренняя ошибка обработчика: %v", r),
						}},
					}
					mu.Unlock()
				}
			}()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			select {
			case <-ctx.Done():
				mu.Lock()
				results[idx] = canceledResult()
				mu.Unlock()
				return
			default:
			}

			res := p.Process(ctx, cit)
			mu.Lock()
			results[idx] = res
			mu.Unlock()
		}(i, c)
	}

	wg.Wait()
	return results, collectStats(results)
}

func canceledResult() Result {
	return Result{
		Category:   classification.Unknown,
		Confidence: confidenceFloor,
		Issues:     []Issue{{Code: IssueCanceled, Message: "пакет отменён до обработки записи"}},
	}
}

// collectStats собирает сводку по готовым результатам.
func collectStats(results []Result) BatchStats {
	stats := BatchStats{ByCategory: make(map[classification.Category]int)}

	var confidenceSum int
	for _, r := range results {
		if hasIssue(r.Issues, IssueCanceled) {
			stats.Canceled++
			continue
		}
		stats.Processed++
		stats.ByCategory[r.Category]++
		confidenceSum += r.Confidence
	}
	if stats.Processed > 0 {
		stats.AvgConfidence = float64(confidenceSum) / float64(stats.Processed)
	}
	return stats
}

func hasIssue(issues []Issue, code IssueCode) bool {
	for _, issue := range issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

// confidence оценивает полноту записи. Нераспознанный тип прижимает
// оценку к нижней границе независимо от найденных полей.
func confidence(category classification.Category, fields extractors.Fields) int {
	if category == classification.Unknown {
		return confidenceFloor
	}
	score := confidenceFull
	if len(fields.Authors) == 0 {
		score -= penaltyMissingAuthor
	}
	if !fields.Title.Found {
		score -= penaltyMissingTitle
	}
	if !fields.Year.Found {
		score -= penaltyMissingYear
	}
	if score < confidenceFloor {
		score = confidenceFloor
	}
	return score
}

// mergeCitation накладывает структурированные поля записи поверх
// извлечённых: явно переданные значения всегда важнее распознанных.
func mergeCitation(fields *extractors.Fields, c Citation) {
	if len(c.Authors) > 0 {
		fields.Authors = c.Authors
	}
	overlay(&fields.Title, c.Title)
	overlay(&fields.Year, c.Year)
	overlay(&fields.Publisher, c.Publisher)
	overlay(&fields.City, c.City)
	overlay(&fields.Pages, c.Pages)
	overlay(&fields.Journal, c.Journal)
	overlay(&fields.Volume, c.Volume)
	overlay(&fields.Issue, c.Issue)
	overlay(&fields.URL, c.URL)
	overlay(&fields.AccessDate, c.AccessDate)
	overlay(&fields.DOI, c.DOI)
}

func overlay(dst *extractors.Field, value string) {
	if value != "" {
		*dst = extractors.Field{Value: value, Found: true}
	}
}

func hasAnyField(f extractors.Fields) bool {
	return len(f.Authors) > 0 || f.Title.Found || f.Year.Found || f.Pages.Found ||
		f.Publisher.Found || f.City.Found || f.Journal.Found || f.Volume.Found ||
		f.Issue.Found || f.URL.Found || f.AccessDate.Found || f.DOI.Found
}

// classifyStructured выбирает категорию для записи, заданной только
// полями, по простым структурным признакам.
func classifyStructured(f extractors.Fields) classification.Category {
	switch {
	case f.Journal.Found:
		return classification.JournalArticle
	case f.URL.Found:
		return classification.ElectronicResource
	case len(f.Authors) >= 4:
		return classification.BookManyAuthors
	case len(f.Authors) >= 1:
		return classification.BookFewAuthors
	}
	return classification.Unknown
}

func fromNormalizationIssues(normIssues []normalization.Issue) []Issue {
	var issues []Issue
	for _, ni := range normIssues {
		code := IssuePunctuation
		if ni.Code == normalization.IssueAmbiguousRange {
			code = IssueAmbiguousRange
		}
		issues = append(issues, Issue{Code: code, Message: ni.Message})
	}
	return issues
}
