package tax

import (
	"context"

	"suitax/internal/sui"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// RateProvider supplies jurisdiction tax rate data. Implementations must
// degrade to a deterministic fallback table; the aggregation itself never
// fails over unavailable rate data.
//
//counterfeiter:generate -o fake -fake-name RateProvider . RateProvider
type RateProvider interface {
	Rates(ctx context.Context, country string) Rates
}

// Advisor produces the advisory text attached to a summary. Output is passed
// through verbatim.
//
//counterfeiter:generate -o fake -fake-name Advisor . Advisor
type Advisor interface {
	Advise(ctx context.Context, summary Summary, sample []sui.Transaction) string
}

// Rates is the jurisdiction rate data consumed by the aggregator.
type Rates struct {
	CapitalGainsShortTerm float64 `json:"capital_gains_short_term"`
	CapitalGainsLongTerm  float64 `json:"capital_gains_long_term"`
	FeeDeductible         bool    `json:"fee_deductible"`
	Currency              string  `json:"currency"`
	CryptoToCryptoTaxable bool    `json:"crypto_to_crypto_taxable"`
	ReportingThreshold    int     `json:"reporting_threshold"`
	RecentChanges         string  `json:"recent_changes"`
}

// Summary is the tax-relevant aggregate for one jurisdiction and year.
// Losses are stored as a positive magnitude.
type Summary struct {
	TotalTransactions int            `json:"total_transactions"`
	TotalGasFees      float64        `json:"total_gas_fees"`
	TotalGains        float64        `json:"total_gains"`
	TotalLosses       float64        `json:"total_losses"`
	NetGainLoss       float64        `json:"net_gain_loss"`
	TaxableEvents     int            `json:"taxable_events"`
	EstimatedTaxOwed  float64        `json:"estimated_tax_owed"`
	Country           string         `json:"country"`
	TaxRate           float64        `json:"tax_rate"`
	Currency          string         `json:"currency"`
	Year              int            `json:"year"`
	Categories        map[string]int `json:"transaction_categories"`
	Advice            string         `json:"tax_advice"`
	RateDetails       Rates          `json:"rate_details"`
}
