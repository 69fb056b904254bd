package state

// Key identifies a top-level slot in the analysis state. Each key has
// exactly one owning writer; readers may access it after the owner commits.
type Key string

// Raw external data keys, written once by the ingestion stage.
const (
	KeyFinancialData Key = "financial_data"
	KeySECFilings    Key = "sec_filings"
	KeyProxyData     Key = "proxy_data"
	KeyMarketData    Key = "market_data"
	KeyTreasuryData  Key = "treasury_data"
	KeyAcquirerData  Key = "acquirer_data"
)

// Analytical keys, each owned by a single agent.
const (
	KeyNormalizedFinancials Key = "normalized_financials"
	KeyValuationModels      Key = "valuation_models"
	KeyAdvancedValuation    Key = "advanced_valuation"
	KeyEBITDA               Key = "ebitda"
	KeyAnomalyDetection     Key = "anomaly_detection"
	KeyDeepDive             Key = "financial_deep_dive"
	KeyCompetitive          Key = "competitive_benchmarking"
	KeyLegal                Key = "legal_diligence"
	KeyMarketStrategy       Key = "market_strategy"
	KeyMacro                Key = "macro_analysis"
	KeyRisk                 Key = "risk_assessment"
	KeyTax                  Key = "tax_structure"
	KeyDealStructure        Key = "deal_structure"
	KeyAccretionDilution    Key = "accretion_dilution"
	KeySourcesUses          Key = "sources_uses"
	KeyContribution         Key = "contribution_analysis"
	KeyExchangeRatio        Key = "exchange_ratio"
	KeyIntegration          Key = "integration_plan"
	KeyExternalValidation   Key = "external_validation"
)

// KeySynthesizedData is the canonical consolidated document. Written exactly
// once by the synthesis agent; the sole permitted source for renderers.
const KeySynthesizedData Key = "synthesized_data"

// KeyAnomalyLog is the append-only anomaly sink. It has no single owner;
// any agent may append through Handle.AppendAnomaly.
const KeyAnomalyLog Key = "anomaly_log"

// IngestionOwner is the pseudo-agent name that owns the raw data keys.
const IngestionOwner = "ingestion"

// RawDataKeys lists the keys populated by the ingestion stage.
func RawDataKeys() []Key {
	return []Key{
		KeyFinancialData,
		KeySECFilings,
		KeyProxyData,
		KeyMarketData,
		KeyTreasuryData,
		KeyAcquirerData,
	}
}
