package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// CrossRefClient клиент реестра CrossRef
type CrossRefClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewCrossRefClient создает клиент CrossRef.
func NewCrossRefClient(timeout, rateLimit time.Duration) *CrossRefClient {
	return &CrossRefClient{
		baseURL: "https://api.crossref.org/works",
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(rateLimit), 1),
	}
}

// crossRefResponse структура ответа CrossRef
type crossRefResponse struct {
	Message struct {
		Title  []string `json:"title"`
		Author []struct {
			Family string `json:"family"`
			Given  string `json:"given"`
		} `json:"author"`
		ContainerTitle []string `json:"container-title"`
		Issued         struct {
			DateParts [][]int `json:"date-parts"`
		} `json:"issued"`
		Publisher string `json:"publisher"`
		Volume    string `json:"volume"`
		Issue     string `json:"issue"`
		Page      string `json:"page"`
		DOI       string `json:"DOI"`
		URL       string `json:"URL"`
	} `json:"message"`
}

// LookupDOI запрашивает сведения об издании по DOI.
func (c *CrossRefClient) LookupDOI(ctx context.Context, doi string) (*Metadata, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	fullURL := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(doi))

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

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("DOI %s в CrossRef: %w", doi, ErrNotFound)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limit exceeded: too many requests to CrossRef")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, resp.Status)
	}

	var crossRef crossRefResponse
	if err := json.NewDecoder(resp.Body).Decode(&crossRef); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return c.transform(&crossRef), nil
}

// transform преобразует ответ CrossRef в унифицированные сведения.
func (c *CrossRefClient) transform(resp *crossRefResponse) *Metadata {
	m := &Metadata{Source: "crossref"}
	msg := resp.Message

	if len(msg.Title) > 0 {
		m.Title = msg.Title[0]
	}
	for _, a := range msg.Author {
		if author := invertAuthor(a.Family, a.Given); author != "" {
			m.Authors = append(m.Authors, author)
		}
	}
	if len(msg.ContainerTitle) > 0 {
		m.Journal = msg.ContainerTitle[0]
	}
	if parts := msg.Issued.DateParts; len(parts) > 0 && len(parts[0]) > 0 {
		m.Year = strconv.Itoa(parts[0][0])
	}
	m.Publisher = msg.Publisher
	m.Volume = msg.Volume
	m.Issue = msg.Issue
	m.Pages = msg.Page
	m.DOI = msg.DOI
	m.URL = msg.URL
	return m
}
