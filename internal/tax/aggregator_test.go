package tax_test

import (
	"context"
	"time"

	"suitax/internal/sui"
	"suitax/internal/tax"
	"suitax/internal/tax/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Aggregator", func() {
	var (
		aggregator  *tax.Aggregator
		fakeRates   *fake.RateProvider
		fakeAdvisor *fake.Advisor
		ctx         context.Context

		transactions []sui.Transaction
		summary      tax.Summary
		year         int
	)

	taxYearDate := func(year, month, day int) time.Time {
		return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
	}

	BeforeEach(func() {
		fakeRates = new(fake.RateProvider)
		fakeAdvisor = new(fake.Advisor)
		ctx = context.Background()
		year = 2025

		fakeRates.RatesReturns(tax.Rates{
			CapitalGainsShortTerm: 0.37,
			CapitalGainsLongTerm:  0.20,
			FeeDeductible:         true,
			Currency:              "USD",
		})
		fakeAdvisor.AdviseReturns("keep detailed records")

		transactions = []sui.Transaction{
			{Timestamp: taxYearDate(2025, 3, 1), NetChange: 10.0, GasCost: 0.002, Category: "Transfer"},
			{Timestamp: taxYearDate(2025, 6, 1), NetChange: -4.0, GasCost: 0.001, Category: "DeFi_Swap"},
			{Timestamp: taxYearDate(2025, 9, 1), NetChange: 0.0005, GasCost: 0.0},
		}

		aggregator = tax.NewAggregator(zap.NewNop().Sugar(), fakeRates, fakeAdvisor)
	})

	JustBeforeEach(func() {
		summary = aggregator.Summarize(ctx, transactions, "us", year)
	})

	It("should sum gains, losses and gas fees", func() {
		Expect(summary.TotalTransactions).To(Equal(3))
		Expect(summary.TotalGains).To(BeNumerically("~", 10.0005, 1e-9))
		Expect(summary.TotalLosses).To(BeNumerically("~", 4.0, 1e-9))
		Expect(summary.NetGainLoss).To(BeNumerically("~", 6.0005, 1e-9))
		Expect(summary.TotalGasFees).To(BeNumerically("~", 0.003, 1e-9))
	})

	It("should count only movements above the dust threshold as taxable", func() {
		Expect(summary.TaxableEvents).To(Equal(2))
	})

	It("should apply the long-term rate and deduct fees", func() {
		// max(0, 6.0005*0.2) - 0.003*0.2
		Expect(summary.EstimatedTaxOwed).To(BeNumerically("~", 1.1995, 1e-9))
		Expect(summary.TaxRate).To(Equal(0.20))
	})

	It("should bucket categories, defaulting blanks to Unknown", func() {
		Expect(summary.Categories).To(Equal(map[string]int{
			"Transfer":  1,
			"DeFi_Swap": 1,
			"Unknown":   1,
		}))
	})

	It("should attach the advisory text and normalize the country", func() {
		Expect(summary.Advice).To(Equal("keep detailed records"))
		Expect(summary.Country).To(Equal("US"))
		Expect(summary.Currency).To(Equal("USD"))
		Expect(fakeAdvisor.AdviseCallCount()).To(Equal(1))
	})

	When("transactions fall outside the tax year", func() {
		BeforeEach(func() {
			transactions = append(transactions,
				sui.Transaction{Timestamp: taxYearDate(2024, 12, 31), NetChange: 100.0, GasCost: 1.0},
				sui.Transaction{Timestamp: taxYearDate(2026, 1, 1), NetChange: -50.0, GasCost: 1.0},
			)
		})

		It("should ignore them entirely", func() {
			Expect(summary.TotalTransactions).To(Equal(3))
			Expect(summary.NetGainLoss).To(BeNumerically("~", 6.0005, 1e-9))
			Expect(summary.TotalGasFees).To(BeNumerically("~", 0.003, 1e-9))
		})
	})

	When("the year nets out to a loss", func() {
		BeforeEach(func() {
			transactions = []sui.Transaction{
				{Timestamp: taxYearDate(2025, 2, 1), NetChange: -25.0, GasCost: 0.01},
			}
		})

		It("should clamp the estimated tax at zero", func() {
			Expect(summary.NetGainLoss).To(BeNumerically("~", -25.0, 1e-9))
			Expect(summary.EstimatedTaxOwed).To(BeZero())
		})
	})

	When("fees exceed the tax on gains", func() {
		BeforeEach(func() {
			transactions = []sui.Transaction{
				{Timestamp: taxYearDate(2025, 2, 1), NetChange: 0.01, GasCost: 5.0},
			}
		})

		It("should clamp the deducted amount at zero", func() {
			Expect(summary.EstimatedTaxOwed).To(BeZero())
		})
	})

	When("fees are not deductible", func() {
		BeforeEach(func() {
			fakeRates.RatesReturns(tax.Rates{
				CapitalGainsLongTerm: 0.20,
				FeeDeductible:        false,
				Currency:             "EUR",
			})
		})

		It("should tax the net gain without the fee offset", func() {
			Expect(summary.EstimatedTaxOwed).To(BeNumerically("~", 6.0005*0.20, 1e-9))
		})
	})

	When("there are no transactions at all", func() {
		BeforeEach(func() {
			transactions = nil
		})

		It("should produce an all-zero summary", func() {
			Expect(summary.TotalTransactions).To(BeZero())
			Expect(summary.EstimatedTaxOwed).To(BeZero())
			Expect(summary.Categories).To(BeEmpty())
		})
	})
})
