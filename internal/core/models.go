package core

import (
	"suitax/internal/sui"
	"suitax/internal/tax"
)

const (
	AnalysisSingleTransaction = "single_transaction"
	AnalysisRecent            = "recent_transactions"
	AnalysisFullHistory       = "full_address_history"
)

type AuthMessage struct {
	Username string
	Password string
}

type AnalysisRequest struct {
	Input       string
	Country     string
	Year        int
	FullHistory bool
}

type BatchRequest struct {
	Addresses []string
	Country   string
	Year      int
}

// SingleTaxEstimate is the per-transaction tax view for the single
// transaction path.
type SingleTaxEstimate struct {
	Country             string    `json:"country"`
	Rates               tax.Rates `json:"tax_rates"`
	EstimatedTaxOnGains float64   `json:"estimated_tax_on_gains"`
	Currency            string    `json:"currency"`
}

type AnalysisResult struct {
	Success         bool               `json:"success"`
	AnalysisType    string             `json:"analysis_type"`
	Network         sui.Network        `json:"network"`
	Address         string             `json:"address,omitempty"`
	Transaction     *sui.Transaction   `json:"transaction,omitempty"`
	Transactions    []sui.Transaction  `json:"transactions,omitempty"`
	TotalFound      int                `json:"total_transactions_found,omitempty"`
	Analyzed        int                `json:"transactions_analyzed,omitempty"`
	HistoryComplete *bool              `json:"history_complete,omitempty"`
	Year            int                `json:"analysis_year,omitempty"`
	TaxSummary      *tax.Summary       `json:"tax_summary,omitempty"`
	TaxEstimate     *SingleTaxEstimate `json:"tax_info,omitempty"`
	HumanSummary    string             `json:"human_summary"`
}

// AddressOverview is the compact per-address result of a batch analysis.
type AddressOverview struct {
	Address           string      `json:"address"`
	Network           sui.Network `json:"network,omitempty"`
	TransactionsCount int         `json:"transactions_count"`
	NetPnL            float64     `json:"net_pnl"`
	EstimatedTax      float64     `json:"estimated_tax"`
	GasFees           float64     `json:"gas_fees"`
	TopCategory       string      `json:"top_category,omitempty"`
	Error             string      `json:"error,omitempty"`
}

type BatchResult struct {
	Success        bool              `json:"success"`
	Results        []AddressOverview `json:"batch_results"`
	TotalAddresses int               `json:"total_addresses"`
	Successful     int               `json:"successful_analyses"`
	CombinedNetPnL float64           `json:"combined_net_pnl"`
	CombinedTax    float64           `json:"combined_estimated_tax"`
	Country        string            `json:"country"`
	Year           int               `json:"year"`
}
