package api

// SubmitAnalysisRequest is the HTTP request body for POST /api/v1/analysis.
type SubmitAnalysisRequest struct {
	Target    string   `json:"target"`
	Acquirer  string   `json:"acquirer,omitempty"`
	DealValue *float64 `json:"deal_value,omitempty"`
	Thesis    string   `json:"thesis,omitempty"`
}
