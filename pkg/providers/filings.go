package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/dealdesk/dealdesk/pkg/config"
)

// Form types the diligence agents care about.
const (
	Form10K    = "10-K"
	Form10Q    = "10-Q"
	FormDEF14A = "DEF 14A"
	FormS4     = "S-4"
	Form8K     = "8-K"
	FormSC13D  = "SC 13D"
	FormSC13G  = "SC 13G"
)

// Filing is one regulatory filing reference.
type Filing struct {
	AccessionNumber string    `json:"accession_number"`
	Form            string    `json:"form"`
	FilingDate      time.Time `json:"filing_date"`
	PrimaryDocument string    `json:"primary_document"`
	DocumentURL     string    `json:"document_url"`
}

// FilingsClient fetches filing indexes and documents from the regulatory
// filings API. The API requires a contactable User-Agent and enforces a
// strict request rate, so every call goes through the limiter.
type FilingsClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewFilingsClient builds the client from data source configuration.
func NewFilingsClient(cfg *config.DataSourceConfig) *FilingsClient {
	return &FilingsClient{
		baseURL:    cfg.FilingsBaseURL,
		userAgent:  cfg.FilingsUserAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		// The filings host allows 10 req/s; stay under it
		limiter: rate.NewLimiter(rate.Limit(8), 8),
	}
}

func (c *FilingsClient) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if res.StatusCode != http.StatusOK {
		return nil, &StatusError{Source: "filings-api", StatusCode: res.StatusCode, Body: string(body)}
	}
	return body, nil
}

// submissionsResponse is the filings index payload (column-oriented).
type submissionsResponse struct {
	CIK     string `json:"cik"`
	Filings struct {
		Recent struct {
			AccessionNumber []string `json:"accessionNumber"`
			Form            []string `json:"form"`
			FilingDate      []string `json:"filingDate"`
			PrimaryDocument []string `json:"primaryDocument"`
		} `json:"recent"`
	} `json:"filings"`
}

// List returns the most recent filings for a CIK, filtered by form type.
// formTypes empty means all forms. Results are newest first, capped at limit.
func (c *FilingsClient) List(ctx context.Context, cik string, formTypes []string, limit int) ([]Filing, error) {
	url := fmt.Sprintf("%s/submissions/CIK%s.json", c.baseURL, padCIK(cik))
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("filings index for CIK %s: %w", cik, err)
	}

	var parsed submissionsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode filings index: %w", err)
	}

	wanted := make(map[string]bool, len(formTypes))
	for _, f := range formTypes {
		wanted[f] = true
	}

	recent := parsed.Filings.Recent
	var filings []Filing
	for i := range recent.AccessionNumber {
		if len(formTypes) > 0 && !wanted[recent.Form[i]] {
			continue
		}
		date, _ := time.Parse("2006-01-02", recent.FilingDate[i])
		accession := strings.ReplaceAll(recent.AccessionNumber[i], "-", "")
		filings = append(filings, Filing{
			AccessionNumber: recent.AccessionNumber[i],
			Form:            recent.Form[i],
			FilingDate:      date,
			PrimaryDocument: recent.PrimaryDocument[i],
			DocumentURL: fmt.Sprintf("https://www.sec.gov/Archives/edgar/data/%s/%s/%s",
				strings.TrimLeft(parsed.CIK, "0"), accession, recent.PrimaryDocument[i]),
		})
		if limit > 0 && len(filings) >= limit {
			break
		}
	}
	return filings, nil
}

// FullText fetches a filing document and strips it to plain text suitable
// for an LLM prompt. Script, style, and table-of-contents noise is dropped.
func (c *FilingsClient) FullText(ctx context.Context, documentURL string) (string, error) {
	body, err := c.get(ctx, documentURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("failed to parse filing document: %w", err)
	}

	doc.Find("script, style, head").Remove()

	var b strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		b.WriteString(s.Text())
	})

	text := b.String()
	if text == "" {
		// Plain-text filings have no body element
		text = doc.Text()
	}
	return collapseWhitespace(text), nil
}

// padCIK left-pads a CIK to the 10 digits the submissions endpoint expects.
func padCIK(cik string) string {
	cik = strings.TrimLeft(cik, "0")
	if len(cik) >= 10 {
		return cik
	}
	return strings.Repeat("0", 10-len(cik)) + cik
}

// collapseWhitespace folds runs of whitespace into single spaces and
// preserves paragraph breaks.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space, newlines := false, 0
	for _, r := range s {
		switch {
		case r == '\n':
			newlines++
			space = false
		case r == ' ' || r == '\t' || r == '\r':
			space = true
		default:
			if newlines >= 2 {
				b.WriteString("\n\n")
			} else if newlines == 1 || space {
				b.WriteByte(' ')
			}
			newlines, space = 0, false
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
