package metadata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gostformatter/pipeline"
)

// ErrNotFound идентификатор корректен, но реестр о нем не знает.
var ErrNotFound = errors.New("запись не найдена в реестре")

// Metadata сведения об издании из внешнего реестра
type Metadata struct {
	Authors   []string `json:"authors,omitempty"`
	Title     string   `json:"title,omitempty"`
	Journal   string   `json:"journal,omitempty"`
	Publisher string   `json:"publisher,omitempty"`
	Year      string   `json:"year,omitempty"`
	Volume    string   `json:"volume,omitempty"`
	Issue     string   `json:"issue,omitempty"`
	Pages     string   `json:"pages,omitempty"`
	DOI       string   `json:"doi,omitempty"`
	URL       string   `json:"url,omitempty"`
	Source    string   `json:"source"`
}

// Citation переводит сведения реестра во входную запись конвейера.
func (m *Metadata) Citation() pipeline.Citation {
	return pipeline.Citation{
		Authors:   m.Authors,
		Title:     m.Title,
		Journal:   m.Journal,
		Publisher: m.Publisher,
		Year:      m.Year,
		Volume:    m.Volume,
		Issue:     m.Issue,
		Pages:     m.Pages,
		DOI:       m.DOI,
		URL:       m.URL,
	}
}

// Service ищет сведения об издании по DOI или ISBN во внешних реестрах.
type Service struct {
	crossref    *CrossRefClient
	openLibrary *OpenLibraryClient
}

// NewService создает сервис поиска метаданных.
func NewService(timeout, rateLimit time.Duration) *Service {
	return &Service{
		crossref:    NewCrossRefClient(timeout, rateLimit),
		openLibrary: NewOpenLibraryClient(timeout, rateLimit),
	}
}

// Lookup распознает идентификатор и запрашивает подходящий реестр:
// CrossRef для DOI, Open Library для ISBN.
func (s *Service) Lookup(ctx context.Context, identifier string) (*Metadata, error) {
	kind, canonical, err := DetectIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindDOI:
		return s.crossref.LookupDOI(ctx, canonical)
	case KindISBN:
		return s.openLibrary.LookupISBN(ctx, canonical)
	}
	return nil, fmt.Errorf("неподдерживаемый вид идентификатора %q", kind)
}

// invertFullName собирает обращенную форму из имени одной строкой,
// где фамилия стоит последней: "Иван Петров" -> "Петров, И.".
func invertFullName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	family := parts[len(parts)-1]
	return invertAuthor(family, strings.Join(parts[:len(parts)-1], " "))
}

// invertAuthor собирает обращенную форму "Фамилия, И. О." из фамилии
// и имен.
func invertAuthor(family, given string) string {
	family = strings.TrimSpace(family)
	if family == "" {
		return ""
	}
	var initials []string
	for _, name := range strings.Fields(given) {
		runes := []rune(name)
		if len(runes) == 0 {
			continue
		}
		initials = append(initials, string(runes[0])+".")
	}
	if len(initials) == 0 {
		return family
	}
	return family + ", " + strings.Join(initials, " ")
}
