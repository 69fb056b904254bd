// Package providers contains clients for the external data sources feeding
// the ingestion stage: financial statements, regulatory filings, treasury
// rates, and web search.
package providers

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates the data source has no data for the identifier.
var ErrNotFound = errors.New("no data for identifier")

// StatusError is a non-2xx response from a data source.
type StatusError struct {
	Source     string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Source, e.StatusCode, e.Body)
}

// Transient reports whether the failure is worth retrying. Rate limits and
// server errors are transient; 4xx rejections are permanent.
func (e *StatusError) Transient() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}
