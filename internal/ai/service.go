package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"suitax/internal/sui"
	"suitax/internal/tax"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// minAdviceLength rejects implausibly short model output in favor of the
// templated fallback.
const minAdviceLength = 50

var validCategories = map[string]struct{}{
	"Transfer":       {},
	"DeFi_Swap":      {},
	"NFT_Purchase":   {},
	"Smart_Contract": {},
	"Staking":        {},
	"Gaming":         {},
	"Other":          {},
}

// Service is the LLM-backed Classifier, Rate Provider and Advisor. Every
// operation has a deterministic, side-effect-free fallback, so an
// unavailable model never fails the financial computation. A nil LLMClient
// runs permanently on the fallbacks.
type Service struct {
	logs  *zap.SugaredLogger
	llm   LLMClient
	cache RatesCache
	model string
}

func NewService(logger *zap.SugaredLogger, llm LLMClient, cache RatesCache, model string) *Service {
	return &Service{
		logs:  logger,
		llm:   llm,
		cache: cache,
		model: model,
	}
}

// Classify assigns a category and one-line explanation to the transaction.
func (s *Service) Classify(ctx context.Context, tx sui.Transaction) (sui.Classification, error) {
	prompt := fmt.Sprintf(`Analyze this Sui blockchain transaction:
Gas: %f SUI
SUI in: %f
SUI out: %f
Objects created: %d
Objects modified: %d
Status: %s

Respond with:
EXPLANATION: [one sentence]
CATEGORY: [Transfer/DeFi_Swap/NFT_Purchase/Smart_Contract/Staking/Gaming/Other]`,
		tx.GasCost, tx.AmountIn, tx.AmountOut, tx.ObjectsCreated, tx.ObjectsModified, tx.Status)

	response, err := s.complete(ctx, prompt)
	if err != nil {
		s.logs.Debugw("classification model unavailable, using fallback", "error", err)
		return fallbackClassification(tx), nil
	}

	verdict := sui.Classification{
		Category:    "Other",
		Explanation: "Transaction completed successfully",
	}
	for _, line := range strings.Split(response, "\n") {
		switch {
		case strings.Contains(line, "EXPLANATION:"):
			verdict.Explanation = strings.TrimSpace(afterMarker(line, "EXPLANATION:"))
		case strings.Contains(line, "CATEGORY:"):
			category := strings.TrimSpace(afterMarker(line, "CATEGORY:"))
			if _, ok := validCategories[category]; ok {
				verdict.Category = category
			}
		}
	}

	return verdict, nil
}

// Rates returns jurisdiction rate data, cached for 24 hours. Model output
// missing any required field falls through to the static table.
func (s *Service) Rates(ctx context.Context, country string) tax.Rates {
	country = strings.ToUpper(strings.TrimSpace(country))

	if cached, err := s.cache.GetTaxRates(ctx, country); err == nil {
		var rates tax.Rates
		if err := json.Unmarshal(cached, &rates); err == nil {
			s.logs.Debugw("using cached tax rates", "country", country)
			return rates
		}
	}

	rates, ok := s.modelRates(ctx, country)
	if !ok {
		return fallbackRates(country)
	}

	if data, err := json.Marshal(rates); err == nil {
		if err := s.cache.PutTaxRates(ctx, country, data); err != nil {
			s.logs.Errorw("tax rates cache write failed", "country", country, "error", err)
		}
	}

	return rates
}

// Advise produces the advisory text for a computed summary. Output shorter
// than the plausibility floor is replaced by the deterministic template.
func (s *Service) Advise(ctx context.Context, summary tax.Summary, sample []sui.Transaction) string {
	prompt := fmt.Sprintf(`Generate crypto tax advice for %s investor:
Transactions: %d
Net P&L: %.6f SUI
Tax Rate: %.1f%%
Currency: %s

Provide 3-4 bullet points with actionable tax advice. Keep under 200 words.`,
		summary.Country, summary.TotalTransactions, summary.NetGainLoss, summary.TaxRate*100, summary.Currency)

	advice, err := s.complete(ctx, prompt)
	if err != nil || len(advice) <= minAdviceLength {
		if err != nil {
			s.logs.Debugw("advice model unavailable, using fallback", "error", err)
		}
		return fallbackAdvice(summary)
	}

	return advice
}

func (s *Service) modelRates(ctx context.Context, country string) (tax.Rates, bool) {
	prompt := fmt.Sprintf(`Generate tax information for %s cryptocurrency in JSON format:
capital_gains_short_term (decimal), capital_gains_long_term (decimal),
fee_deductible (boolean), currency (string), crypto_to_crypto_taxable (boolean)
Only respond with valid JSON.`, country)

	response, err := s.complete(ctx, prompt)
	if err != nil {
		s.logs.Debugw("rates model unavailable, using fallback", "country", country, "error", err)
		return tax.Rates{}, false
	}

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return tax.Rates{}, false
	}
	payload := response[start : end+1]

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		s.logs.Debugw("rates model output unparseable", "country", country, "error", err)
		return tax.Rates{}, false
	}
	for _, required := range []string{
		"capital_gains_short_term",
		"capital_gains_long_term",
		"fee_deductible",
		"currency",
		"crypto_to_crypto_taxable",
	} {
		if _, ok := fields[required]; !ok {
			return tax.Rates{}, false
		}
	}

	var rates tax.Rates
	if err := json.Unmarshal([]byte(payload), &rates); err != nil {
		return tax.Rates{}, false
	}

	rates.ReportingThreshold = 600
	rates.RecentChanges = fmt.Sprintf("AI-generated tax info for %s", country)
	return rates, true
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	if s.llm == nil {
		return "", fmt.Errorf("no model configured")
	}

	resp, err := s.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a blockchain transaction analyst."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func afterMarker(line, marker string) string {
	idx := strings.Index(line, marker)
	return line[idx+len(marker):]
}
