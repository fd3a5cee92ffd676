package sui

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// BatchProcessor fetches, parses and classifies many transactions with
// bounded concurrency. Failures of individual references reduce the output
// set; they never abort sibling work.
type BatchProcessor struct {
	logs          *zap.SugaredLogger
	retriever     NodeRetriever
	parser        *Parser
	classifier    Classifier
	batchSize     int
	maxConcurrent int64
	chunkDelay    time.Duration
}

func NewBatchProcessor(
	logger *zap.SugaredLogger,
	retriever NodeRetriever,
	parser *Parser,
	classifier Classifier,
	batchSize int,
	maxConcurrent int,
	chunkDelay time.Duration,
) *BatchProcessor {
	return &BatchProcessor{
		logs:          logger,
		retriever:     retriever,
		parser:        parser,
		classifier:    classifier,
		batchSize:     batchSize,
		maxConcurrent: int64(maxConcurrent),
		chunkDelay:    chunkDelay,
	}
}

// ProcessAll works through the digests in sequential chunks; inside a chunk
// every digest runs fetch+parse+classify concurrently up to the concurrency
// bound. Output order is unspecified; callers needing chronological order
// sort by timestamp afterwards.
func (b *BatchProcessor) ProcessAll(ctx context.Context, digests []string, network Network) []Transaction {
	if len(digests) == 0 {
		return nil
	}

	totalChunks := (len(digests) + b.batchSize - 1) / b.batchSize
	b.logs.Infow("batch processing started",
		"transactions", len(digests),
		"chunks", totalChunks,
		"concurrency", b.maxConcurrent)

	// The bound gates in-flight fetches for this invocation only; separate
	// invocations do not share it.
	sem := semaphore.NewWeighted(b.maxConcurrent)
	transactions := make([]Transaction, 0, len(digests))

	for start := 0; start < len(digests); start += b.batchSize {
		end := start + b.batchSize
		if end > len(digests) {
			end = len(digests)
		}
		chunk := digests[start:end]
		chunkNum := start/b.batchSize + 1

		processed := b.processChunk(ctx, chunk, network, sem)
		transactions = append(transactions, processed...)

		b.logs.Infow("chunk completed",
			"chunk", chunkNum,
			"of", totalChunks,
			"successful", len(processed),
			"failed", len(chunk)-len(processed))

		if end < len(digests) {
			if !sleep(ctx, b.chunkDelay) {
				break
			}
		}
	}

	b.logs.Infow("batch processing finished",
		"successful", len(transactions),
		"requested", len(digests))
	return transactions
}

func (b *BatchProcessor) processChunk(ctx context.Context, digests []string, network Network, sem *semaphore.Weighted) []Transaction {
	results := make(chan *Transaction)

	var wg sync.WaitGroup
	for _, digest := range digests {
		wg.Add(1)
		go func(digest string) {
			defer wg.Done()
			results <- b.processOne(ctx, digest, network, sem)
		}(digest)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	transactions := make([]Transaction, 0, len(digests))
	for result := range results {
		if result != nil {
			transactions = append(transactions, *result)
		}
	}
	return transactions
}

// processOne is the per-reference unit of work. Any failure discards only
// this reference's result.
func (b *BatchProcessor) processOne(ctx context.Context, digest string, network Network, sem *semaphore.Weighted) *Transaction {
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil
	}
	defer sem.Release(1)

	raw, err := b.retriever.GetTransaction(ctx, digest, network, true)
	if err != nil {
		b.logs.Errorw("transaction fetch failed", "digest", shorten(digest), "error", err)
		return nil
	}

	tx := b.parser.Parse(raw, network)

	if b.classifier != nil {
		verdict, err := b.classifier.Classify(ctx, tx)
		if err != nil {
			b.logs.Warnw("classification failed, keeping record unclassified",
				"digest", shorten(digest), "error", err)
		} else {
			tx.Category = verdict.Category
			tx.Explanation = verdict.Explanation
		}
	}

	return &tx
}
