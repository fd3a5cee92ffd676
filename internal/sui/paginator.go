package sui

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Paginator walks an account's full transaction history by following the
// fullnode's continuation cursors.
type Paginator struct {
	logs      *zap.SugaredLogger
	retriever NodeRetriever
	pageSize  int
	delay     time.Duration
}

func NewPaginator(logger *zap.SugaredLogger, retriever NodeRetriever, pageSize int, delay time.Duration) *Paginator {
	return &Paginator{
		logs:      logger,
		retriever: retriever,
		pageSize:  pageSize,
		delay:     delay,
	}
}

// CollectAllDigests enumerates every transaction reference for the account.
// A failed page request or inconsistent pagination metadata truncates the
// enumeration to whatever was accumulated so far, reported with
// Complete=false rather than as a hard failure. Pages are paced with a flat
// delay so the fullnode's own throttling is not tripped.
func (p *Paginator) CollectAllDigests(ctx context.Context, address string, network Network) DigestCollection {
	digests := make([]string, 0, p.pageSize)
	cursor := ""
	pageCount := 0

	for {
		page, err := p.retriever.GetAccountPage(ctx, address, network, p.pageSize, cursor)
		if err != nil {
			p.logs.Errorw("page request failed, returning partial history",
				"address", shorten(address),
				"page", pageCount,
				"collected", len(digests),
				"error", err)
			return DigestCollection{Digests: digests, Complete: false}
		}

		if len(page.Data) == 0 {
			break
		}

		digests = append(digests, page.Digests()...)
		pageCount++

		p.logs.Infow("history page collected",
			"page", pageCount,
			"size", len(page.Data),
			"total", len(digests))

		if !page.HasNextPage {
			break
		}

		if page.NextCursor == "" {
			// The node claims more pages but gave no cursor to reach them.
			p.logs.Warnw("missing cursor despite hasNextPage, truncating",
				"address", shorten(address),
				"collected", len(digests))
			return DigestCollection{Digests: digests, Complete: false}
		}
		cursor = page.NextCursor

		if !sleep(ctx, p.delay) {
			return DigestCollection{Digests: digests, Complete: false}
		}
	}

	p.logs.Infow("history enumerated", "address", shorten(address), "total", len(digests))
	return DigestCollection{Digests: digests, Complete: true}
}

// sleep pauses for d, returning false if the context is cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
