package sui

import (
	"fmt"
	"time"

	"suitax/internal/identity"

	"go.uber.org/zap"
)

// Parser converts raw transaction blocks into normalized records. Parse is
// total: malformed input degrades individual fields to their defaults and an
// internal failure produces a zero-valued record with Status "Error" instead
// of propagating.
type Parser struct {
	logs *zap.SugaredLogger
}

func NewParser(logger *zap.SugaredLogger) *Parser {
	return &Parser{
		logs: logger,
	}
}

func (p *Parser) Parse(raw *RawTransaction, network Network) (tx Transaction) {
	now := time.Now().UTC()

	defer func() {
		if r := recover(); r != nil {
			p.logs.Errorw("transaction parse failed", "panic", r)
			digest := ""
			if raw != nil {
				digest = raw.Digest
			}
			tx = Transaction{
				Digest:       digest,
				Timestamp:    now,
				Kind:         "Error",
				Status:       "Error",
				ErrorMessage: fmt.Sprintf("%v", r),
				Network:      network,
			}
		}
	}()

	if raw == nil {
		return Transaction{
			Timestamp:    now,
			Kind:         "Error",
			Status:       "Error",
			ErrorMessage: "no transaction data",
			Network:      network,
		}
	}

	timestamp := now
	if ms, ok := raw.TimestampMs.Int64(); ok && ms > 0 {
		timestamp = time.UnixMilli(ms).UTC()
	}

	sender := raw.Transaction.Data.Sender
	if !identity.IsAddress(sender) {
		if sender != "" {
			p.logs.Warnw("malformed sender address", "digest", shorten(raw.Digest))
		}
		sender = ""
	}

	gas := raw.Effects.GasUsed
	computation, _ := gas.ComputationCost.Int64()
	storage, _ := gas.StorageCost.Int64()
	rebate, _ := gas.StorageRebate.Int64()
	nonRefundable, _ := gas.NonRefundableStorageFee.Int64()
	gasCost := float64(computation+storage+nonRefundable-rebate) / mistPerSui

	amountIn, amountOut := p.assetFlows(raw.Effects.BalanceChanges, sender)

	var created, modified, deleted int
	for _, change := range raw.ObjectChanges {
		switch change.Type {
		case "created":
			created++
		case "mutated":
			modified++
		case "deleted":
			deleted++
		}
	}

	status := raw.Effects.Status.Status
	if status == "" {
		status = "Unknown"
	}

	kind := raw.Transaction.Data.Transaction.Kind
	if kind == "" {
		kind = "Unknown"
	}

	return Transaction{
		Digest:          raw.Digest,
		Timestamp:       timestamp,
		Sender:          sender,
		Kind:            kind,
		GasCost:         gasCost,
		AmountIn:        amountIn,
		AmountOut:       amountOut,
		NetChange:       amountIn - amountOut,
		ObjectsCreated:  created,
		ObjectsModified: modified,
		ObjectsDeleted:  deleted,
		Status:          status,
		ErrorMessage:    raw.Effects.Status.Error,
		Network:         network,
	}
}

// assetFlows reconstructs the gross SUI inflow and outflow attributable to
// the sender. Records missing required fields, denominated in another coin,
// or owned by a different address are skipped; so are non-numeric amounts,
// which must not masquerade as zero-valued contributions.
func (p *Parser) assetFlows(changes []BalanceChange, sender string) (float64, float64) {
	var amountIn, amountOut float64

	for _, change := range changes {
		if change.CoinType == "" || change.Amount == "" || len(change.Owner) == 0 {
			continue
		}
		if change.CoinType != SuiCoinType {
			continue
		}

		owner := change.OwnerAddress()
		if owner == "" || owner != sender {
			continue
		}

		mist, ok := change.Amount.Int64()
		if !ok {
			p.logs.Warnw("non-numeric amount in balance change", "amount", change.Amount)
			continue
		}

		amount := float64(mist) / mistPerSui
		if amount > 0 {
			amountIn += amount
		} else {
			amountOut += -amount
		}
	}

	return amountIn, amountOut
}
