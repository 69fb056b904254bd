package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/pkg/config"
)

func testDataSourceConfig(financialURL, filingsURL string) *config.DataSourceConfig {
	cfg := config.DefaultDataSourceConfig()
	cfg.FinancialBaseURL = financialURL
	cfg.FilingsBaseURL = filingsURL
	cfg.FinancialAPIKeyEnv = ""
	return cfg
}

func TestFinancialClient_StatementHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/income-statement/ACME":
			_, _ = w.Write([]byte(`[
				{"calendarYear":"2023","revenue":1500,"netIncome":140,"operatingIncome":190,"ebitda":270,"researchAndDevelopmentExpenses":50},
				{"calendarYear":"2022","revenue":1350,"netIncome":120,"operatingIncome":165,"ebitda":240,"researchAndDevelopmentExpenses":45}
			]`))
		case "/cash-flow-statement/ACME":
			_, _ = w.Write([]byte(`[
				{"calendarYear":"2023","netCashProvidedByOperatingActivities":215,"capitalExpenditure":-80},
				{"calendarYear":"2022","netCashProvidedByOperatingActivities":190,"capitalExpenditure":-75}
			]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewFinancialClient(testDataSourceConfig(srv.URL, ""))
	rows, err := c.StatementHistory(context.Background(), "ACME", 5)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2023, rows[0].Year)
	assert.Equal(t, 1500.0, rows[0].Revenue)
	assert.Equal(t, 215.0, rows[0].CFO, "cash flow joined by calendar year")
	assert.Equal(t, -80.0, rows[0].Capex)
	assert.Equal(t, 50.0, rows[0].RnD)
}

func TestFinancialClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewFinancialClient(testDataSourceConfig(srv.URL, ""))
	_, err := c.StatementHistory(context.Background(), "NOPE", 5)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFinancialClient_CircuitBreakerOpens(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewFinancialClient(testDataSourceConfig(srv.URL, ""))

	// Five consecutive failures trip the breaker
	for i := 0; i < 5; i++ {
		_, err := c.Profile(context.Background(), "ACME")
		require.Error(t, err)
	}
	require.Equal(t, 5, hits)

	// Breaker is open: no request reaches the server
	_, err := c.Profile(context.Background(), "ACME")
	require.Error(t, err)
	assert.Equal(t, 5, hits)
}

func TestStatusErrorTransient(t *testing.T) {
	assert.True(t, (&StatusError{StatusCode: 503}).Transient())
	assert.True(t, (&StatusError{StatusCode: 429}).Transient())
	assert.False(t, (&StatusError{StatusCode: 400}).Transient())
	assert.False(t, (&StatusError{StatusCode: 403}).Transient())
}

func TestFilingsClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submissions/CIK0000320193.json", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{
			"cik": "320193",
			"filings": {"recent": {
				"accessionNumber": ["0000320193-23-000106", "0000320193-23-000077", "0000320193-23-000064"],
				"form": ["10-K", "10-Q", "8-K"],
				"filingDate": ["2023-11-03", "2023-08-04", "2023-06-12"],
				"primaryDocument": ["aapl-20230930.htm", "aapl-20230701.htm", "aapl-8k.htm"]
			}}
		}`))
	}))
	defer srv.Close()

	c := NewFilingsClient(testDataSourceConfig("", srv.URL))
	filings, err := c.List(context.Background(), "320193", []string{Form10K, Form10Q}, 10)
	require.NoError(t, err)

	require.Len(t, filings, 2, "8-K filtered out")
	assert.Equal(t, Form10K, filings[0].Form)
	assert.Equal(t, "aapl-20230930.htm", filings[0].PrimaryDocument)
	assert.Contains(t, filings[0].DocumentURL, "000032019323000106")
	assert.Equal(t, 2023, filings[0].FilingDate.Year())
}

func TestFilingsClient_FullText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>ignored</title></head>
			<body><script>var x = 1;</script>
			<h1>Annual   Report</h1>
			<p>Revenue grew 12% in fiscal 2023.</p></body></html>`))
	}))
	defer srv.Close()

	c := NewFilingsClient(testDataSourceConfig("", srv.URL))
	text, err := c.FullText(context.Background(), srv.URL+"/doc.htm")
	require.NoError(t, err)

	assert.Contains(t, text, "Annual Report")
	assert.Contains(t, text, "Revenue grew 12% in fiscal 2023.")
	assert.NotContains(t, text, "var x", "script content stripped")
	assert.NotContains(t, text, "ignored", "head stripped")
}

func TestPadCIK(t *testing.T) {
	assert.Equal(t, "0000320193", padCIK("320193"))
	assert.Equal(t, "0000320193", padCIK("0000320193"))
	assert.Equal(t, "0000000001", padCIK("1"))
}

func TestSearchClient(t *testing.T) {
	t.Run("nil client returns no results", func(t *testing.T) {
		var c *SearchClient
		results, err := c.Search(context.Background(), "anything", 5)
		require.NoError(t, err)
		assert.Nil(t, results)
	})

	t.Run("disabled when no base url", func(t *testing.T) {
		cfg := config.DefaultDataSourceConfig()
		cfg.SearchBaseURL = ""
		assert.Nil(t, NewSearchClient(cfg))
	})

	t.Run("queries and decodes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			_, _ = w.Write([]byte(`{"results":[{"title":"t","url":"https://example.com","snippet":"s"}]}`))
		}))
		defer srv.Close()

		cfg := config.DefaultDataSourceConfig()
		cfg.SearchBaseURL = srv.URL
		cfg.SearchAPIKeyEnv = ""

		c := NewSearchClient(cfg)
		results, err := c.Search(context.Background(), "acme litigation", 5)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "https://example.com", results[0].URL)
	})
}
