package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/dealdesk/dealdesk/pkg/config"
	"github.com/dealdesk/dealdesk/pkg/finance"
	"github.com/dealdesk/dealdesk/pkg/version"
)

// FinancialClient fetches statements, market data, and estimates from the
// financial data API. All requests go through a shared rate limiter and a
// circuit breaker so one slow ingestion run cannot hammer a degraded
// upstream on behalf of every worker.
type FinancialClient struct {
	baseURL    string
	apiKeyEnv  string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
}

// NewFinancialClient builds the client from data source configuration.
func NewFinancialClient(cfg *config.DataSourceConfig) *FinancialClient {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 4
	}
	return &FinancialClient{
		baseURL:    cfg.FinancialBaseURL,
		apiKeyEnv:  cfg.FinancialAPIKeyEnv,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(rps), int(rps)),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "financial-api",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// getJSON performs a rate-limited, breaker-guarded GET and decodes into out.
func (c *FinancialClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := c.breaker.Execute(func() (any, error) {
		if params == nil {
			params = url.Values{}
		}
		if c.apiKeyEnv != "" {
			if key := os.Getenv(c.apiKeyEnv); key != "" {
				params.Set("apikey", key)
			}
		}

		reqURL := c.baseURL + path
		if len(params) > 0 {
			reqURL += "?" + params.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", version.Full())

		res, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() { _ = res.Body.Close() }()

		data, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, err
		}
		if res.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if res.StatusCode != http.StatusOK {
			return nil, &StatusError{Source: "financial-api", StatusCode: res.StatusCode, Body: string(data)}
		}
		return data, nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body.([]byte), out); err != nil {
		return fmt.Errorf("financial-api: failed to decode %s: %w", path, err)
	}
	return nil
}

// incomeStatement is the subset of the income statement payload we consume.
type incomeStatement struct {
	CalendarYear    string  `json:"calendarYear"`
	Revenue         float64 `json:"revenue"`
	NetIncome       float64 `json:"netIncome"`
	OperatingIncome float64 `json:"operatingIncome"`
	EBITDA          float64 `json:"ebitda"`
	RnDExpenses     float64 `json:"researchAndDevelopmentExpenses"`
}

type cashFlowStatement struct {
	CalendarYear string  `json:"calendarYear"`
	CFO          float64 `json:"netCashProvidedByOperatingActivities"`
	Capex        float64 `json:"capitalExpenditure"`
}

// StatementHistory fetches up to limit years of annual statements and maps
// them to the finance package's row type, joined by calendar year.
func (c *FinancialClient) StatementHistory(ctx context.Context, ticker string, limit int) ([]finance.AnnualFinancials, error) {
	params := url.Values{"limit": {fmt.Sprint(limit)}}

	var income []incomeStatement
	if err := c.getJSON(ctx, "/income-statement/"+ticker, params, &income); err != nil {
		return nil, fmt.Errorf("income statements for %s: %w", ticker, err)
	}
	if len(income) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ticker)
	}

	var cashFlow []cashFlowStatement
	if err := c.getJSON(ctx, "/cash-flow-statement/"+ticker, params, &cashFlow); err != nil {
		return nil, fmt.Errorf("cash flow statements for %s: %w", ticker, err)
	}

	cfoByYear := make(map[string]cashFlowStatement, len(cashFlow))
	for _, cf := range cashFlow {
		cfoByYear[cf.CalendarYear] = cf
	}

	rows := make([]finance.AnnualFinancials, 0, len(income))
	for _, is := range income {
		var year int
		if _, err := fmt.Sscanf(is.CalendarYear, "%d", &year); err != nil {
			continue
		}
		row := finance.AnnualFinancials{
			Year:            year,
			Revenue:         is.Revenue,
			NetIncome:       is.NetIncome,
			OperatingIncome: is.OperatingIncome,
			EBITDA:          is.EBITDA,
			RnD:             is.RnDExpenses,
		}
		if cf, ok := cfoByYear[is.CalendarYear]; ok {
			row.CFO = cf.CFO
			row.Capex = cf.Capex
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CompanyProfile is the summary profile used for market data and peers.
type CompanyProfile struct {
	Symbol      string  `json:"symbol"`
	CIK         string  `json:"cik"`
	CompanyName string  `json:"companyName"`
	Industry    string  `json:"industry"`
	Sector      string  `json:"sector"`
	MktCap      float64 `json:"mktCap"`
	Price       float64 `json:"price"`
	Beta        float64 `json:"beta"`
	Description string  `json:"description"`
}

// Profile fetches the company profile.
func (c *FinancialClient) Profile(ctx context.Context, ticker string) (*CompanyProfile, error) {
	var profiles []CompanyProfile
	if err := c.getJSON(ctx, "/profile/"+ticker, nil, &profiles); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ticker)
	}
	return &profiles[0], nil
}

// KeyMetrics fetches valuation ratios as loosely-typed rows; agents
// interpret the fields they need.
func (c *FinancialClient) KeyMetrics(ctx context.Context, ticker string, limit int) ([]map[string]any, error) {
	var out []map[string]any
	err := c.getJSON(ctx, "/key-metrics/"+ticker, url.Values{"limit": {fmt.Sprint(limit)}}, &out)
	return out, err
}

// AnalystEstimates fetches forward revenue and earnings estimates.
func (c *FinancialClient) AnalystEstimates(ctx context.Context, ticker string) ([]map[string]any, error) {
	var out []map[string]any
	err := c.getJSON(ctx, "/analyst-estimates/"+ticker, nil, &out)
	return out, err
}

// Peers fetches the peer ticker list for benchmarking.
func (c *FinancialClient) Peers(ctx context.Context, ticker string) ([]string, error) {
	var out []struct {
		PeersList []string `json:"peersList"`
	}
	if err := c.getJSON(ctx, "/stock_peers", url.Values{"symbol": {ticker}}, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].PeersList, nil
}

// InsiderTrades fetches recent insider transactions.
func (c *FinancialClient) InsiderTrades(ctx context.Context, ticker string) ([]map[string]any, error) {
	var out []map[string]any
	err := c.getJSON(ctx, "/insider-trading", url.Values{"symbol": {ticker}}, &out)
	return out, err
}

// InstitutionalOwnership fetches the institutional holder list.
func (c *FinancialClient) InstitutionalOwnership(ctx context.Context, ticker string) ([]map[string]any, error) {
	var out []map[string]any
	err := c.getJSON(ctx, "/institutional-holder/"+ticker, nil, &out)
	return out, err
}

// News fetches recent company news articles.
func (c *FinancialClient) News(ctx context.Context, ticker string, limit int) ([]map[string]any, error) {
	var out []map[string]any
	err := c.getJSON(ctx, "/stock_news", url.Values{
		"tickers": {ticker},
		"limit":   {fmt.Sprint(limit)},
	}, &out)
	return out, err
}

// EarningsSurprises fetches historical estimate-vs-actual rows.
func (c *FinancialClient) EarningsSurprises(ctx context.Context, ticker string) ([]map[string]any, error) {
	var out []map[string]any
	err := c.getJSON(ctx, "/earnings-surprises/"+ticker, nil, &out)
	return out, err
}

// TreasuryRates fetches the current treasury yield curve, used as the
// risk-free rate input to WACC.
func (c *FinancialClient) TreasuryRates(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	err := c.getJSON(ctx, "/treasury", nil, &out)
	return out, err
}
