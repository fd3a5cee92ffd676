package sui

import (
	"context"
	"fmt"

	"suitax/internal/identity"

	"go.uber.org/zap"
)

// Detector probes the candidate networks until one yields data for the
// given identity.
type Detector struct {
	logs      *zap.SugaredLogger
	retriever NodeRetriever
}

func NewDetector(logger *zap.SugaredLogger, retriever NodeRetriever) *Detector {
	return &Detector{
		logs:      logger,
		retriever: retriever,
	}
}

// DetectNetwork resolves which network holds the transaction or account.
// Probe failures count as "not on this network" and advance to the next
// candidate; ErrNoNetwork is returned when every candidate misses.
func (d *Detector) DetectNetwork(ctx context.Context, input string) (Network, error) {
	kind := identity.Classify(input)
	if kind == identity.KindInvalid {
		return "", fmt.Errorf("%w: %q", identity.ErrInvalidIdentity, shorten(input))
	}

	for _, network := range ProbeOrder {
		if d.probe(ctx, input, kind, network) {
			d.logs.Infow("identity located", "network", network, "kind", kind.String())
			return network, nil
		}
	}

	return "", ErrNoNetwork
}

func (d *Detector) probe(ctx context.Context, input string, kind identity.Kind, network Network) bool {
	if kind == identity.KindTransaction {
		tx, err := d.retriever.GetTransaction(ctx, input, network, true)
		if err != nil {
			d.logs.Debugw("network probe missed", "network", network, "error", err)
			return false
		}
		return tx != nil
	}

	page, err := d.retriever.GetAccountPage(ctx, input, network, 1, "")
	if err != nil {
		d.logs.Debugw("network probe missed", "network", network, "error", err)
		return false
	}
	return len(page.Data) > 0
}
