package ai

import (
	"fmt"

	"suitax/internal/sui"
	"suitax/internal/tax"
)

// fallbackRateTable covers the jurisdictions the service is asked about most
// often; anything else gets the US entry.
var fallbackRateTable = map[string]tax.Rates{
	"US": {CapitalGainsShortTerm: 0.37, CapitalGainsLongTerm: 0.20},
	"UK": {CapitalGainsShortTerm: 0.20, CapitalGainsLongTerm: 0.20},
	"DE": {CapitalGainsShortTerm: 0.25, CapitalGainsLongTerm: 0.25},
	"JP": {CapitalGainsShortTerm: 0.55, CapitalGainsLongTerm: 0.20},
	"SG": {CapitalGainsShortTerm: 0.00, CapitalGainsLongTerm: 0.00},
}

func fallbackRates(country string) tax.Rates {
	rates, ok := fallbackRateTable[country]
	if !ok {
		rates = fallbackRateTable["US"]
	}

	rates.FeeDeductible = true
	rates.Currency = "USD"
	rates.CryptoToCryptoTaxable = true
	rates.ReportingThreshold = 600
	rates.RecentChanges = fmt.Sprintf("Fallback tax rates for %s", country)
	return rates
}

// fallbackClassification is a pure function of the transaction's facts.
func fallbackClassification(tx sui.Transaction) sui.Classification {
	switch {
	case tx.AmountIn > 0 && tx.AmountOut == 0:
		return sui.Classification{
			Category:    "Transfer",
			Explanation: fmt.Sprintf("Received %g SUI", tx.AmountIn),
		}
	case tx.AmountOut > 0 && tx.AmountIn == 0:
		return sui.Classification{
			Category:    "Transfer",
			Explanation: fmt.Sprintf("Sent %g SUI", tx.AmountOut),
		}
	case tx.ObjectsCreated > 0 && tx.ObjectsModified > 2:
		return sui.Classification{
			Category:    "Smart_Contract",
			Explanation: fmt.Sprintf("Created %d objects and modified %d", tx.ObjectsCreated, tx.ObjectsModified),
		}
	default:
		return sui.Classification{
			Category:    "Other",
			Explanation: "Transaction completed",
		}
	}
}

func fallbackAdvice(summary tax.Summary) string {
	if summary.NetGainLoss > 0 {
		return fmt.Sprintf(`Tax Advice for %s Crypto Investors:

- Keep detailed records of all your cryptocurrency transactions for tax reporting purposes.
- Consider holding assets longer than one year to potentially qualify for lower long-term capital gains rates.
- Transaction fees may be deductible from your taxable gains - consult with a tax professional.
- If you've realized significant gains this year (%.2f SUI), consider tax-loss harvesting strategies.

This is general advice. Please consult with a qualified tax professional for advice specific to your situation.`,
			summary.Country, summary.NetGainLoss)
	}

	return fmt.Sprintf(`Tax Advice for %s Crypto Investors:

- Your current position shows a net loss, which may be used to offset capital gains from other investments.
- Keep detailed records of all your cryptocurrency transactions for tax reporting purposes.
- Different countries have different rules for carrying forward crypto losses - consult a tax professional.
- Consider tax-loss harvesting strategies if you have gains in other investments.

This is general advice. Please consult with a qualified tax professional for advice specific to your situation.`,
		summary.Country)
}
