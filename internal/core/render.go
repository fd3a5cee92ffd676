package core

import (
	"fmt"
	"strings"

	"suitax/internal/sui"
	"suitax/internal/tax"
)

func renderTransactionSummary(tx sui.Transaction, network sui.Network, estimate *SingleTaxEstimate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Transaction %s on Sui %s.\n", shorten(tx.Digest), network)
	fmt.Fprintf(&b, "Status: %s. Category: %s.\n", tx.Status, orUnknown(tx.Category))
	if tx.Explanation != "" {
		fmt.Fprintf(&b, "%s\n", tx.Explanation)
	}
	fmt.Fprintf(&b, "Received %.4f SUI, sent %.4f SUI, net change %+.4f SUI.\n", tx.AmountIn, tx.AmountOut, tx.NetChange)
	fmt.Fprintf(&b, "Gas paid: %.6f SUI.\n", tx.GasCost)

	if estimate != nil {
		if estimate.EstimatedTaxOnGains > 0 {
			fmt.Fprintf(&b, "Estimated tax on this gain in %s: %.4f %s.",
				estimate.Country, estimate.EstimatedTaxOnGains, estimate.Currency)
		} else {
			fmt.Fprintf(&b, "No taxable gain on this transaction in %s.", estimate.Country)
		}
	}

	return b.String()
}

func renderAccountSummary(address string, network sui.Network, found, analyzed int, complete bool, summary tax.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Full history analysis for %s on Sui %s.\n", shorten(address), network)
	fmt.Fprintf(&b, "Found %d transactions, analyzed %d for tax year %d.\n", found, analyzed, summary.Year)
	if !complete {
		b.WriteString("Warning: history may be incomplete, pagination stopped early.\n")
	}
	renderTaxLines(&b, summary)

	return b.String()
}

func renderRecentSummary(address string, network sui.Network, analyzed int, summary tax.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Recent activity for %s on Sui %s.\n", shorten(address), network)
	fmt.Fprintf(&b, "Analyzed the %d most recent transactions for tax year %d.\n", analyzed, summary.Year)
	renderTaxLines(&b, summary)

	return b.String()
}

func renderTaxLines(b *strings.Builder, summary tax.Summary) {
	fmt.Fprintf(b, "Net gain/loss: %+.4f SUI (%d taxable events, %.6f SUI in gas fees).\n",
		summary.NetGainLoss, summary.TaxableEvents, summary.TotalGasFees)
	fmt.Fprintf(b, "Estimated tax owed in %s: %.4f %s at a %.0f%% rate.",
		summary.Country, summary.EstimatedTaxOwed, summary.Currency, summary.TaxRate*100)
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}
	return value
}
