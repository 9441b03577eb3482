package vakparser

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/kljensen/snowball"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"

	"gostformatter/classification"
	"gostformatter/extractors"
)

// sectionKeyword сопоставляет фрагмент заголовка раздела страницы ВАК
// с категорией записей этого раздела.
type sectionKeyword struct {
	keyword  string
	category classification.Category
}

// Порядок важен: первый совпавший фрагмент решает.
var sectionKeywords = []sectionKeyword{
	{"одним, двумя", classification.BookFewAuthors},
	{"тремя автор", classification.BookFewAuthors},
	{"четырьмя", classification.BookManyAuthors},
	{"более автор", classification.BookManyAuthors},
	{"коллективным автором", classification.BookManyAuthors},
	{"многотомн", classification.Multivolume},
	{"отдельные тома", classification.Multivolume},
	{"законодательн", classification.Law},
	{"правовые акты", classification.Law},
	{"стандарт", classification.Standard},
	{"авторефер", classification.Abstract},
	{"диссертаци", classification.Dissertation},
	{"депонирован", classification.Deposited},
	{"архивн", classification.Archive},
	{"электронн", classification.ElectronicResource},
	{"интернет", classification.ElectronicResource},
	{"статьи из журнал", classification.JournalArticle},
	{"газет", classification.NewspaperArticle},
	{"сборник", classification.CollectionArticle},
	{"материалы конференц", classification.Conference},
	{"съезд", classification.Conference},
	{"симпозиум", classification.Conference},
	{"рецензи", classification.Review},
	{"карт", classification.Map},
	{"патент", classification.Patent},
	{"препринт", classification.Preprint},
}

const minExampleLength = 40

// ParsedRecord одна запись, снятая со страницы ВАК.
type ParsedRecord struct {
	ID              string                  `json:"id"`
	SourceType      classification.Category `json:"source_type"`
	CountryStandard string                  `json:"country_standard"`
	InputMetadata   extractors.Fields       `json:"input_metadata"`
	FormattedOutput string                  `json:"formatted_output"`
	RawExample      string                  `json:"raw_example"`
	Confidence      int                     `json:"parsing_confidence"`
}

// Parser снимает примеры библиографического оформления со страницы
// vak.gov.by/bibliographicDescription.
type Parser struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewParser создает парсер страницы ВАК.
func NewParser(baseURL string, timeout, rateLimit time.Duration) *Parser {
	return &Parser{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(rateLimit), 1),
	}
}

// FetchPage загружает страницу с примерами оформления.
func (p *Parser) FetchPage(ctx context.Context) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+"/bibliographicDescription", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, resp.Status)
	}

	// Страница может отдаваться не в UTF-8, кодировку определяем по
	// заголовку и содержимому.
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to detect encoding: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(body), nil
}

// Run загружает и разбирает страницу целиком.
func (p *Parser) Run(ctx context.Context) ([]ParsedRecord, error) {
	html, err := p.FetchPage(ctx)
	if err != nil {
		return nil, err
	}
	return ParsePage(html)
}

// ParsePage разбирает HTML страницы ВАК: обходит таблицы, определяет
// категорию раздела по первой ячейке строки и снимает примеры из
// второй.
func ParsePage(html string) ([]ParsedRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var records []ParsedRecord
	currentType := classification.Unknown
	index := 0

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td, th")
			if cells.Length() < 2 {
				return
			}

			typeCell := strings.TrimSpace(cells.Eq(0).Text())
			if len([]rune(typeCell)) > 5 {
				if detected := DetectSourceType(typeCell); detected != classification.Unknown {
					currentType = detected
				}
			}

			for _, example := range strings.Split(cells.Eq(1).Text(), "\n") {
				example = strings.TrimSpace(example)
				if len([]rune(example)) <= minExampleLength {
					continue
				}
				records = append(records, parseExample(example, currentType, index))
				index++
			}
		})
	})

	return records, nil
}

// DetectSourceType определяет категорию раздела по его заголовку.
// Сначала ищется прямое вхождение фрагмента, затем сравнение по
// основам слов, чтобы пережить другую словоформу в заголовке.
func DetectSourceType(header string) classification.Category {
	lower := strings.ToLower(header)
	for _, sk := range sectionKeywords {
		if strings.Contains(lower, sk.keyword) {
			return sk.category
		}
	}

	stemmed := stemPhrase(lower)
	for _, sk := range sectionKeywords {
		if strings.Contains(stemmed, stemPhrase(sk.keyword)) {
			return sk.category
		}
	}
	return classification.Unknown
}

// stemPhrase приводит каждое слово фразы к основе.
func stemPhrase(phrase string) string {
	words := strings.Fields(phrase)
	stems := make([]string, 0, len(words))
	for _, word := range words {
		stem, err := snowball.Stem(word, "russian", false)
		if err != nil {
			stem = word
		}
		stems = append(stems, stem)
	}
	return strings.Join(stems, " ")
}

// parseExample снимает метаданные с одного примера.
func parseExample(example string, sourceType classification.Category, index int) ParsedRecord {
	fields := extractors.Extract(example)

	confidence := 100
	if len(fields.Authors) == 0 {
		confidence -= 20
	}
	if !fields.Title.Found {
		confidence -= 30
	}
	if !fields.Year.Found {
		confidence -= 10
	}
	if confidence < 30 {
		confidence = 30
	}

	return ParsedRecord{
		ID:              generateID(example, index),
		SourceType:      sourceType,
		CountryStandard: "BY",
		InputMetadata:   fields,
		FormattedOutput: example,
		RawExample:      example,
		Confidence:      confidence,
	}
}

// generateID строит стабильный идентификатор записи.
func generateID(example string, index int) string {
	prefix := []rune(example)
	if len(prefix) > 50 {
		prefix = prefix[:50]
	}
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%d", string(prefix), index)))
	return fmt.Sprintf("%x", sum)[:12]
}
