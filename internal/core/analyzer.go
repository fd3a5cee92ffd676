package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"suitax/internal/identity"
	"suitax/internal/sui"
	"suitax/internal/tax"

	"go.uber.org/zap"
)

var ErrInvalidInput error = errors.New("input is not a valid transaction digest or address")
var ErrNotFound error = errors.New("not found on any network")

// recentLimit is the page size for the non-full-history account path.
const recentLimit = 25

// recentSampleSize caps the recent-transactions listing of a full history
// analysis.
const recentSampleSize = 15

// maxBatchAddresses caps one batch analysis request.
const maxBatchAddresses = 10

// Analyzer wires detection, retrieval, batch processing and aggregation into
// the operations the HTTP surface exposes.
type Analyzer struct {
	logs       *zap.SugaredLogger
	users      UserStore
	jwtIssuer  JWTIssuer
	detector   NetworkDetector
	retriever  sui.NodeRetriever
	parser     *sui.Parser
	classifier sui.Classifier
	collector  HistoryCollector
	batch      BatchRunner
	aggregator Summarizer
	rates      tax.RateProvider
}

func NewAnalyzer(
	logger *zap.SugaredLogger,
	users UserStore,
	jwtIssuer JWTIssuer,
	detector NetworkDetector,
	retriever sui.NodeRetriever,
	parser *sui.Parser,
	classifier sui.Classifier,
	collector HistoryCollector,
	batch BatchRunner,
	aggregator Summarizer,
	rates tax.RateProvider,
) *Analyzer {
	return &Analyzer{
		logs:       logger,
		users:      users,
		jwtIssuer:  jwtIssuer,
		detector:   detector,
		retriever:  retriever,
		parser:     parser,
		classifier: classifier,
		collector:  collector,
		batch:      batch,
		aggregator: aggregator,
		rates:      rates,
	}
}

// Analyze resolves the identity's network and runs the single-transaction or
// account analysis path.
func (a *Analyzer) Analyze(ctx context.Context, req AnalysisRequest) (AnalysisResult, error) {
	input := strings.TrimSpace(req.Input)

	kind := identity.Classify(input)
	if kind == identity.KindInvalid {
		return AnalysisResult{}, ErrInvalidInput
	}

	a.logs.Infow("analysis requested",
		"input", shorten(input),
		"kind", kind.String(),
		"country", req.Country,
		"full_history", req.FullHistory)

	network, err := a.detector.DetectNetwork(ctx, input)
	if err != nil {
		if errors.Is(err, sui.ErrNoNetwork) {
			return AnalysisResult{}, ErrNotFound
		}
		if errors.Is(err, identity.ErrInvalidIdentity) {
			return AnalysisResult{}, ErrInvalidInput
		}
		return AnalysisResult{}, fmt.Errorf("detect network: %w", err)
	}

	if kind == identity.KindTransaction {
		return a.analyzeTransaction(ctx, input, network, req)
	}
	return a.analyzeAccount(ctx, input, network, req)
}

// TaxRates exposes jurisdiction rate data directly.
func (a *Analyzer) TaxRates(ctx context.Context, country string) tax.Rates {
	return a.rates.Rates(ctx, country)
}

// AnalyzeBatch runs a quick recent-transactions analysis for up to ten
// addresses. Per-address failures are recorded in the result, never
// propagated.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, req BatchRequest) (BatchResult, error) {
	if len(req.Addresses) > maxBatchAddresses {
		return BatchResult{}, fmt.Errorf("%w: maximum %d addresses allowed per batch", ErrInvalidInput, maxBatchAddresses)
	}

	result := BatchResult{
		Success:        true,
		Results:        make([]AddressOverview, 0, len(req.Addresses)),
		TotalAddresses: len(req.Addresses),
		Country:        strings.ToUpper(req.Country),
		Year:           req.Year,
	}

	for _, address := range req.Addresses {
		overview := a.analyzeOverview(ctx, address, req.Country, req.Year)
		if overview.Error == "" {
			result.Successful++
			result.CombinedNetPnL += overview.NetPnL
			result.CombinedTax += overview.EstimatedTax
		}
		result.Results = append(result.Results, overview)
	}

	return result, nil
}

func (a *Analyzer) analyzeTransaction(ctx context.Context, digest string, network sui.Network, req AnalysisRequest) (AnalysisResult, error) {
	raw, err := a.retriever.GetTransaction(ctx, digest, network, true)
	if err != nil {
		if errors.Is(err, sui.ErrNotFound) {
			return AnalysisResult{}, ErrNotFound
		}
		return AnalysisResult{}, fmt.Errorf("get transaction: %w", err)
	}

	tx := a.parser.Parse(raw, network)

	if a.classifier != nil {
		if verdict, err := a.classifier.Classify(ctx, tx); err == nil {
			tx.Category = verdict.Category
			tx.Explanation = verdict.Explanation
		}
	}

	rates := a.rates.Rates(ctx, req.Country)

	var estimate float64
	if tx.NetChange > 0 {
		estimate = tx.NetChange * rates.CapitalGainsLongTerm
	}

	taxInfo := &SingleTaxEstimate{
		Country:             strings.ToUpper(req.Country),
		Rates:               rates,
		EstimatedTaxOnGains: estimate,
		Currency:            rates.Currency,
	}

	return AnalysisResult{
		Success:      true,
		AnalysisType: AnalysisSingleTransaction,
		Network:      network,
		Transaction:  &tx,
		TaxEstimate:  taxInfo,
		HumanSummary: renderTransactionSummary(tx, network, taxInfo),
	}, nil
}

func (a *Analyzer) analyzeAccount(ctx context.Context, address string, network sui.Network, req AnalysisRequest) (AnalysisResult, error) {
	if req.FullHistory {
		return a.analyzeFullHistory(ctx, address, network, req)
	}
	return a.analyzeRecent(ctx, address, network, req)
}

func (a *Analyzer) analyzeFullHistory(ctx context.Context, address string, network sui.Network, req AnalysisRequest) (AnalysisResult, error) {
	collection := a.collector.CollectAllDigests(ctx, address, network)
	if len(collection.Digests) == 0 {
		return AnalysisResult{}, ErrNotFound
	}

	transactions := a.batch.ProcessAll(ctx, collection.Digests, network)
	summary := a.aggregator.Summarize(ctx, transactions, req.Country, req.Year)

	sortByTimestampDesc(transactions)
	recent := transactions
	if len(recent) > recentSampleSize {
		recent = recent[:recentSampleSize]
	}

	complete := collection.Complete
	return AnalysisResult{
		Success:         true,
		AnalysisType:    AnalysisFullHistory,
		Network:         network,
		Address:         address,
		Transactions:    recent,
		TotalFound:      len(collection.Digests),
		Analyzed:        len(transactions),
		HistoryComplete: &complete,
		Year:            req.Year,
		TaxSummary:      &summary,
		HumanSummary:    renderAccountSummary(address, network, len(collection.Digests), len(transactions), collection.Complete, summary),
	}, nil
}

func (a *Analyzer) analyzeRecent(ctx context.Context, address string, network sui.Network, req AnalysisRequest) (AnalysisResult, error) {
	page, err := a.retriever.GetAccountPage(ctx, address, network, recentLimit, "")
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("get recent transactions: %w", err)
	}

	digests := page.Digests()
	if len(digests) == 0 {
		return AnalysisResult{}, ErrNotFound
	}

	transactions := a.batch.ProcessAll(ctx, digests, network)
	summary := a.aggregator.Summarize(ctx, transactions, req.Country, req.Year)

	sortByTimestampDesc(transactions)

	return AnalysisResult{
		Success:      true,
		AnalysisType: AnalysisRecent,
		Network:      network,
		Address:      address,
		Transactions: transactions,
		Analyzed:     len(transactions),
		Year:         req.Year,
		TaxSummary:   &summary,
		HumanSummary: renderRecentSummary(address, network, len(transactions), summary),
	}, nil
}

func (a *Analyzer) analyzeOverview(ctx context.Context, address, country string, year int) AddressOverview {
	overview := AddressOverview{Address: address}

	network, err := a.detector.DetectNetwork(ctx, address)
	if err != nil {
		overview.Error = "address not found on any network"
		return overview
	}
	overview.Network = network

	page, err := a.retriever.GetAccountPage(ctx, address, network, 20, "")
	if err != nil {
		overview.Error = err.Error()
		return overview
	}

	digests := page.Digests()
	if len(digests) == 0 {
		overview.TopCategory = "No transactions"
		return overview
	}

	transactions := a.batch.ProcessAll(ctx, digests, network)
	summary := a.aggregator.Summarize(ctx, transactions, country, year)

	overview.TransactionsCount = len(transactions)
	overview.NetPnL = summary.NetGainLoss
	overview.EstimatedTax = summary.EstimatedTaxOwed
	overview.GasFees = summary.TotalGasFees
	overview.TopCategory = topCategory(summary.Categories)
	return overview
}

func topCategory(categories map[string]int) string {
	top := "Unknown"
	best := 0
	for category, count := range categories {
		if count > best {
			top = category
			best = count
		}
	}
	return top
}

func sortByTimestampDesc(transactions []sui.Transaction) {
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.After(transactions[j].Timestamp)
	})
}

func shorten(value string) string {
	if len(value) <= 12 {
		return value
	}
	return value[:12] + "..."
}
