// Package ingest populates the raw data keys of the analysis state from the
// external financial and filings providers. Ingestion is a stage, not an
// agent: it issues no LLM calls and runs before the scheduler's first wave.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dealdesk/dealdesk/pkg/finance"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/pkg/providers"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// statementYears is the depth of history requested from the data provider.
const statementYears = 10

// FinancialData is the payload under state.KeyFinancialData.
type FinancialData struct {
	Statements        []finance.AnnualFinancials `json:"statements"`
	Profile           *providers.CompanyProfile  `json:"profile"`
	KeyMetrics        []map[string]any           `json:"key_metrics"`
	AnalystEstimates  []map[string]any           `json:"analyst_estimates"`
	EarningsSurprises []map[string]any           `json:"earnings_surprises"`
}

// FilingsData is the payload under state.KeySECFilings.
type FilingsData struct {
	Filings []providers.Filing `json:"filings"`

	// AnnualReportText is the plain text of the most recent 10-K,
	// truncated for prompt use.
	AnnualReportText string `json:"annual_report_text"`
}

// ProxyData is the payload under state.KeyProxyData.
type ProxyData struct {
	Filings []providers.Filing `json:"filings"`
	Text    string             `json:"text"`
}

// MarketData is the payload under state.KeyMarketData.
type MarketData struct {
	Peers         []string         `json:"peers"`
	News          []map[string]any `json:"news"`
	InsiderTrades []map[string]any `json:"insider_trades"`
	Institutional []map[string]any `json:"institutional_ownership"`
}

// TreasuryData is the payload under state.KeyTreasuryData.
type TreasuryData struct {
	Rates []map[string]any `json:"rates"`
}

// AcquirerData is the payload under state.KeyAcquirerData. Present only
// when the job names an acquirer.
type AcquirerData struct {
	Statements []finance.AnnualFinancials `json:"statements"`
	Profile    *providers.CompanyProfile  `json:"profile"`
}

// maxFilingText caps the 10-K text carried in state. Filings routinely run
// to hundreds of thousands of characters; agents only prompt with the head.
const maxFilingText = 120_000

// Ingestor fetches raw target (and acquirer) data in parallel.
type Ingestor struct {
	financial *providers.FinancialClient
	filings   *providers.FilingsClient
	log       *slog.Logger
}

// New wires the ingestor.
func New(financial *providers.FinancialClient, filings *providers.FilingsClient) *Ingestor {
	return &Ingestor{
		financial: financial,
		filings:   filings,
		log:       slog.With("component", "ingest"),
	}
}

// Run fetches all raw data for the job and commits it to state under the
// ingestion owner. Statement history and the company profile are mandatory;
// auxiliary datasets degrade to warnings so one flaky endpoint does not
// sink the whole job.
func (i *Ingestor) Run(ctx context.Context, h *state.Handle, params models.JobParams) error {
	// The profile carries the CIK the filings fetches need, so it is
	// resolved before the parallel fan-out.
	profile, err := i.financial.Profile(ctx, params.Target)
	if err != nil {
		return fmt.Errorf("company profile for %s: %w", params.Target, err)
	}

	fin := FinancialData{Profile: profile}
	var (
		filingsData  FilingsData
		proxyData    ProxyData
		marketData   MarketData
		treasuryData TreasuryData
		acquirerData AcquirerData
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := i.financial.StatementHistory(gctx, params.Target, statementYears)
		if err != nil {
			return fmt.Errorf("statement history for %s: %w", params.Target, err)
		}
		if len(rows) == 0 {
			return fmt.Errorf("statement history for %s: no annual statements returned", params.Target)
		}
		fin.Statements = rows
		return nil
	})

	g.Go(func() error {
		fin.KeyMetrics = i.optional(gctx, "key metrics", func(ctx context.Context) ([]map[string]any, error) {
			return i.financial.KeyMetrics(ctx, params.Target, statementYears)
		})
		fin.AnalystEstimates = i.optional(gctx, "analyst estimates", func(ctx context.Context) ([]map[string]any, error) {
			return i.financial.AnalystEstimates(ctx, params.Target)
		})
		fin.EarningsSurprises = i.optional(gctx, "earnings surprises", func(ctx context.Context) ([]map[string]any, error) {
			return i.financial.EarningsSurprises(ctx, params.Target)
		})
		return nil
	})

	g.Go(func() error {
		peers, err := i.financial.Peers(gctx, params.Target)
		if err != nil {
			i.log.Warn("Peer list unavailable", "target", params.Target, "error", err)
		}
		marketData.Peers = peers
		marketData.News = i.optional(gctx, "news", func(ctx context.Context) ([]map[string]any, error) {
			return i.financial.News(ctx, params.Target, 25)
		})
		marketData.InsiderTrades = i.optional(gctx, "insider trades", func(ctx context.Context) ([]map[string]any, error) {
			return i.financial.InsiderTrades(ctx, params.Target)
		})
		marketData.Institutional = i.optional(gctx, "institutional ownership", func(ctx context.Context) ([]map[string]any, error) {
			return i.financial.InstitutionalOwnership(ctx, params.Target)
		})
		return nil
	})

	g.Go(func() error {
		rates, err := i.financial.TreasuryRates(gctx)
		if err != nil {
			i.log.Warn("Treasury rates unavailable, WACC falls back to defaults", "error", err)
			return nil
		}
		treasuryData.Rates = rates
		return nil
	})

	g.Go(func() error {
		i.fetchFilings(gctx, profile.CIK, &filingsData, &proxyData)
		return nil
	})

	if params.Acquirer != "" {
		g.Go(func() error {
			p, err := i.financial.Profile(gctx, params.Acquirer)
			if err != nil {
				return fmt.Errorf("acquirer profile for %s: %w", params.Acquirer, err)
			}
			acquirerData.Profile = p
			rows, err := i.financial.StatementHistory(gctx, params.Acquirer, statementYears)
			if err != nil {
				return fmt.Errorf("acquirer statement history for %s: %w", params.Acquirer, err)
			}
			acquirerData.Statements = rows
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Commit under the ingestion owner. The raw keys are written exactly
	// once; agents treat them as read-only afterwards.
	writes := []struct {
		key state.Key
		val any
	}{
		{state.KeyFinancialData, fin},
		{state.KeySECFilings, filingsData},
		{state.KeyProxyData, proxyData},
		{state.KeyMarketData, marketData},
		{state.KeyTreasuryData, treasuryData},
	}
	if params.Acquirer != "" {
		writes = append(writes, struct {
			key state.Key
			val any
		}{state.KeyAcquirerData, acquirerData})
	}
	for _, w := range writes {
		if err := h.Set(w.key, w.val); err != nil {
			return fmt.Errorf("committing %s: %w", w.key, err)
		}
	}
	return nil
}

// fetchFilings populates the filings and proxy payloads. Filing access is
// best-effort: a missing CIK or a provider outage degrades to warnings
// because the legal agents can still reason from the financial data.
func (i *Ingestor) fetchFilings(ctx context.Context, cik string, filingsData *FilingsData, proxyData *ProxyData) {
	if cik == "" {
		i.log.Warn("No CIK on company profile, skipping filings")
		return
	}

	filings, err := i.filings.List(ctx, cik,
		[]string{providers.Form10K, providers.Form10Q, providers.Form8K, providers.FormS4, providers.FormSC13D, providers.FormSC13G}, 40)
	if err != nil {
		i.log.Warn("Filings index unavailable", "cik", cik, "error", err)
	}
	filingsData.Filings = filings

	for _, f := range filings {
		if f.Form != providers.Form10K {
			continue
		}
		text, err := i.filings.FullText(ctx, f.DocumentURL)
		if err != nil {
			i.log.Warn("10-K full text unavailable", "accession", f.AccessionNumber, "error", err)
			break
		}
		filingsData.AnnualReportText = clip(text, maxFilingText)
		break
	}

	proxies, err := i.filings.List(ctx, cik, []string{providers.FormDEF14A}, 3)
	if err != nil {
		i.log.Warn("Proxy filings unavailable", "cik", cik, "error", err)
		return
	}
	proxyData.Filings = proxies
	if len(proxies) > 0 {
		text, err := i.filings.FullText(ctx, proxies[0].DocumentURL)
		if err != nil {
			i.log.Warn("Proxy full text unavailable", "accession", proxies[0].AccessionNumber, "error", err)
			return
		}
		proxyData.Text = clip(text, maxFilingText)
	}
}

// optional runs a best-effort fetch: not-found and provider outages log a
// warning and return nil rather than failing ingestion.
func (i *Ingestor) optional(ctx context.Context, what string, fetch func(context.Context) ([]map[string]any, error)) []map[string]any {
	rows, err := fetch(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		i.log.Warn("Auxiliary dataset unavailable", "dataset", what, "error", err)
		return nil
	}
	return rows
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
