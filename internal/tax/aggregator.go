package tax

import (
	"context"
	"math"
	"strings"

	"suitax/internal/sui"

	"go.uber.org/zap"
)

// dustThreshold is the minimum absolute net change for a transaction to
// count as a taxable event. Sub-threshold movements still contribute to the
// sums.
const dustThreshold = 0.001

// adviceSampleSize caps how many transactions the advisor sees.
const adviceSampleSize = 5

// Aggregator reduces parsed transactions into a tax summary for one
// jurisdiction and year.
type Aggregator struct {
	logs    *zap.SugaredLogger
	rates   RateProvider
	advisor Advisor
}

func NewAggregator(logger *zap.SugaredLogger, rates RateProvider, advisor Advisor) *Aggregator {
	return &Aggregator{
		logs:    logger,
		rates:   rates,
		advisor: advisor,
	}
}

// Summarize computes the summary over the subset of transactions whose
// timestamp falls in the given year. Transactions from other years never
// influence the result.
func (a *Aggregator) Summarize(ctx context.Context, transactions []sui.Transaction, country string, year int) Summary {
	rates := a.rates.Rates(ctx, country)

	yearTxs := make([]sui.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Timestamp.UTC().Year() == year {
			yearTxs = append(yearTxs, tx)
		}
	}

	var totalGasFees, totalGains, totalLosses float64
	taxableEvents := 0
	categories := make(map[string]int)

	for _, tx := range yearTxs {
		totalGasFees += tx.GasCost

		if tx.NetChange > 0 {
			totalGains += tx.NetChange
		} else {
			totalLosses += -tx.NetChange
		}

		if math.Abs(tx.NetChange) > dustThreshold {
			taxableEvents++
		}

		category := tx.Category
		if category == "" {
			category = "Unknown"
		}
		categories[category]++
	}

	netGainLoss := totalGains - totalLosses
	taxRate := rates.CapitalGainsLongTerm

	estimatedTax := math.Max(0, netGainLoss*taxRate)
	if rates.FeeDeductible {
		// Gas fees reduce the owed amount at the same rate. A net-negative
		// fee total (rebates exceeding costs) is deliberately not clamped
		// here; see the design notes on tax semantics.
		estimatedTax = math.Max(0, estimatedTax-totalGasFees*taxRate)
	}

	summary := Summary{
		TotalTransactions: len(yearTxs),
		TotalGasFees:      totalGasFees,
		TotalGains:        totalGains,
		TotalLosses:       totalLosses,
		NetGainLoss:       netGainLoss,
		TaxableEvents:     taxableEvents,
		EstimatedTaxOwed:  estimatedTax,
		Country:           strings.ToUpper(country),
		TaxRate:           taxRate,
		Currency:          rates.Currency,
		Year:              year,
		Categories:        categories,
		RateDetails:       rates,
	}

	sample := yearTxs
	if len(sample) > adviceSampleSize {
		sample = sample[:adviceSampleSize]
	}
	summary.Advice = a.advisor.Advise(ctx, summary, sample)

	a.logs.Infow("tax summary computed",
		"country", summary.Country,
		"year", year,
		"transactions", summary.TotalTransactions,
		"taxable_events", summary.TaxableEvents,
		"net_gain_loss", summary.NetGainLoss)

	return summary
}
