package ai_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"suitax/internal/ai"
	"suitax/internal/ai/fake"
	"suitax/internal/sui"
	"suitax/internal/tax"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

func completionResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

var _ = Describe("Service", func() {
	var (
		service   *ai.Service
		fakeLLM   *fake.LLMClient
		fakeCache *fake.RatesCache
		ctx       context.Context
		fakeErr   error
	)

	BeforeEach(func() {
		fakeLLM = new(fake.LLMClient)
		fakeCache = new(fake.RatesCache)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		fakeCache.GetTaxRatesReturns(nil, sui.ErrCacheMiss)

		service = ai.NewService(zap.NewNop().Sugar(), fakeLLM, fakeCache, "gpt-4o-mini")
	})

	Describe("Classify", func() {
		var (
			tx      sui.Transaction
			verdict sui.Classification
			err     error
		)

		BeforeEach(func() {
			tx = sui.Transaction{AmountIn: 2.5, Status: "success"}
		})

		JustBeforeEach(func() {
			verdict, err = service.Classify(ctx, tx)
		})

		When("the model answers in the expected format", func() {
			BeforeEach(func() {
				fakeLLM.CreateChatCompletionReturns(completionResponse(
					"EXPLANATION: Received SUI from a swap.\nCATEGORY: DeFi_Swap"), nil)
			})

			It("should parse category and explanation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(verdict.Category).To(Equal("DeFi_Swap"))
				Expect(verdict.Explanation).To(Equal("Received SUI from a swap."))
			})
		})

		When("the model invents a category", func() {
			BeforeEach(func() {
				fakeLLM.CreateChatCompletionReturns(completionResponse(
					"EXPLANATION: Something odd.\nCATEGORY: Lottery_Win"), nil)
			})

			It("should keep the category Other", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(verdict.Category).To(Equal("Other"))
				Expect(verdict.Explanation).To(Equal("Something odd."))
			})
		})

		When("the model is unavailable", func() {
			BeforeEach(func() {
				fakeLLM.CreateChatCompletionReturns(openai.ChatCompletionResponse{}, fakeErr)
			})

			It("should fall back deterministically without an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(verdict.Category).To(Equal("Transfer"))
				Expect(verdict.Explanation).To(Equal("Received 2.5 SUI"))
			})
		})

		When("no model is configured at all", func() {
			BeforeEach(func() {
				service = ai.NewService(zap.NewNop().Sugar(), nil, fakeCache, "")
			})

			It("should fall back without ever calling out", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(verdict.Category).To(Equal("Transfer"))
				Expect(fakeLLM.CreateChatCompletionCallCount()).To(Equal(0))
			})
		})
	})

	Describe("fallback classification shapes", func() {
		classify := func(tx sui.Transaction) sui.Classification {
			svc := ai.NewService(zap.NewNop().Sugar(), nil, fakeCache, "")
			verdict, err := svc.Classify(context.Background(), tx)
			Expect(err).NotTo(HaveOccurred())
			return verdict
		}

		It("should label pure outflows as sends", func() {
			verdict := classify(sui.Transaction{AmountOut: 1.5})
			Expect(verdict.Category).To(Equal("Transfer"))
			Expect(verdict.Explanation).To(Equal("Sent 1.5 SUI"))
		})

		It("should label object-heavy transactions as contract interactions", func() {
			verdict := classify(sui.Transaction{ObjectsCreated: 1, ObjectsModified: 3})
			Expect(verdict.Category).To(Equal("Smart_Contract"))
		})

		It("should label everything else as Other", func() {
			verdict := classify(sui.Transaction{AmountIn: 1, AmountOut: 1})
			Expect(verdict.Category).To(Equal("Other"))
		})
	})

	Describe("Rates", func() {
		var rates tax.Rates

		JustBeforeEach(func() {
			rates = service.Rates(ctx, "us")
		})

		When("the rates are cached", func() {
			BeforeEach(func() {
				cached, err := json.Marshal(tax.Rates{
					CapitalGainsLongTerm: 0.15,
					Currency:             "USD",
				})
				Expect(err).NotTo(HaveOccurred())
				fakeCache.GetTaxRatesReturns(cached, nil)
			})

			It("should serve the cached rates without the model", func() {
				Expect(rates.CapitalGainsLongTerm).To(Equal(0.15))
				Expect(fakeLLM.CreateChatCompletionCallCount()).To(Equal(0))

				_, country := fakeCache.GetTaxRatesArgsForCall(0)
				Expect(country).To(Equal("US"))
			})
		})

		When("the model produces complete rate data", func() {
			BeforeEach(func() {
				fakeLLM.CreateChatCompletionReturns(completionResponse(`Here you go:
{"capital_gains_short_term":0.3,"capital_gains_long_term":0.1,"fee_deductible":true,"currency":"USD","crypto_to_crypto_taxable":true}`), nil)
			})

			It("should extract the JSON and cache it", func() {
				Expect(rates.CapitalGainsLongTerm).To(Equal(0.1))
				Expect(rates.ReportingThreshold).To(Equal(600))
				Expect(fakeCache.PutTaxRatesCallCount()).To(Equal(1))
			})
		})

		When("the model omits a required field", func() {
			BeforeEach(func() {
				fakeLLM.CreateChatCompletionReturns(completionResponse(
					`{"capital_gains_long_term":0.1,"currency":"USD"}`), nil)
			})

			It("should fall back to the static table without caching", func() {
				Expect(rates.CapitalGainsShortTerm).To(Equal(0.37))
				Expect(rates.CapitalGainsLongTerm).To(Equal(0.20))
				Expect(fakeCache.PutTaxRatesCallCount()).To(Equal(0))
			})
		})

		When("the model is unavailable", func() {
			BeforeEach(func() {
				fakeLLM.CreateChatCompletionReturns(openai.ChatCompletionResponse{}, fakeErr)
			})

			It("should serve the static table", func() {
				Expect(rates.CapitalGainsShortTerm).To(Equal(0.37))
				Expect(rates.FeeDeductible).To(BeTrue())
				Expect(rates.Currency).To(Equal("USD"))
			})
		})
	})

	Describe("fallback rate table", func() {
		var offline *ai.Service

		BeforeEach(func() {
			offline = ai.NewService(zap.NewNop().Sugar(), nil, fakeCache, "")
		})

		It("should know the supported jurisdictions", func() {
			Expect(offline.Rates(ctx, "jp").CapitalGainsShortTerm).To(Equal(0.55))
			Expect(offline.Rates(ctx, "sg").CapitalGainsLongTerm).To(BeZero())
			Expect(offline.Rates(ctx, "de").CapitalGainsLongTerm).To(Equal(0.25))
		})

		It("should default unknown jurisdictions to the US entry", func() {
			Expect(offline.Rates(ctx, "ZZ").CapitalGainsShortTerm).To(Equal(0.37))
		})
	})

	Describe("Advise", func() {
		var (
			summary tax.Summary
			advice  string
		)

		BeforeEach(func() {
			summary = tax.Summary{Country: "US", NetGainLoss: 12.5, TotalTransactions: 8}
		})

		JustBeforeEach(func() {
			advice = service.Advise(ctx, summary, nil)
		})

		When("the model produces substantive advice", func() {
			BeforeEach(func() {
				fakeLLM.CreateChatCompletionReturns(completionResponse(
					strings.Repeat("Keep records of every transaction. ", 4)), nil)
			})

			It("should pass the model output through", func() {
				Expect(advice).To(ContainSubstring("Keep records"))
			})
		})

		When("the model output is implausibly short", func() {
			BeforeEach(func() {
				fakeLLM.CreateChatCompletionReturns(completionResponse("ok"), nil)
			})

			It("should use the templated fallback", func() {
				Expect(advice).To(ContainSubstring("Tax Advice for US Crypto Investors"))
				Expect(advice).To(ContainSubstring("tax-loss harvesting"))
			})
		})

		When("the model is unavailable and the year shows a loss", func() {
			BeforeEach(func() {
				summary.NetGainLoss = -3.0
				fakeLLM.CreateChatCompletionReturns(openai.ChatCompletionResponse{}, fakeErr)
			})

			It("should use the loss-oriented template", func() {
				Expect(advice).To(ContainSubstring("net loss"))
			})
		})
	})
})
