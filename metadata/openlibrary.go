package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// OpenLibraryClient клиент реестра Open Library
type OpenLibraryClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewOpenLibraryClient создает клиент Open Library.
func NewOpenLibraryClient(timeout, rateLimit time.Duration) *OpenLibraryClient {
	return &OpenLibraryClient{
		baseURL: "https://openlibrary.org/api/books",
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(rateLimit), 1),
	}
}

// openLibraryBook структура одной книги в ответе Open Library
type openLibraryBook struct {
	Title   string `json:"title"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
	Publishers []struct {
		Name string `json:"name"`
	} `json:"publishers"`
	PublishDate   string `json:"publish_date"`
	NumberOfPages int    `json:"number_of_pages"`
	URL           string `json:"url"`
}

var reYearInDate = regexp.MustCompile(`(1[5-9]\d{2}|20\d{2})`)

// LookupISBN запрашивает сведения о книге по ISBN.
func (c *OpenLibraryClient) LookupISBN(ctx context.Context, isbn string) (*Metadata, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	params := url.Values{}
	params.Add("bibkeys", "ISBN:"+isbn)
	params.Add("format", "json")
	params.Add("jscmd", "data")

	fullURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "gostformatter/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, resp.Status)
	}

	var books map[string]openLibraryBook
	if err := json.NewDecoder(resp.Body).Decode(&books); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	book, ok := books["ISBN:"+isbn]
	if !ok {
		return nil, fmt.Errorf("ISBN %s в Open Library: %w", isbn, ErrNotFound)
	}

	return c.transform(&book), nil
}

// transform преобразует ответ Open Library в унифицированные сведения.
func (c *OpenLibraryClient) transform(book *openLibraryBook) *Metadata {
	m := &Metadata{
		Source: "openlibrary",
		Title:  book.Title,
		URL:    book.URL,
	}
	for _, a := range book.Authors {
		if author := invertFullName(a.Name); author != "" {
			m.Authors = append(m.Authors, author)
		}
	}
	if len(book.Publishers) > 0 {
		m.Publisher = book.Publishers[0].Name
	}
	if year := reYearInDate.FindString(book.PublishDate); year != "" {
		m.Year = year
	}
	if book.NumberOfPages > 0 {
		m.Pages = strconv.Itoa(book.NumberOfPages)
	}
	return m
}
