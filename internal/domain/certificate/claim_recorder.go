package certificate

import (
	"context"
	"time"

	"go.uber.org/zap"

	"verichain/internal/db"
	"verichain/internal/observability/metrics"
)

// LedgerWriter persists confirmed claims.
type LedgerWriter interface {
	InsertClaim(ctx context.Context, rec db.ClaimRecord) (bool, error)
}

// ClaimRecorder writes claim events into the ledger.
type ClaimRecorder struct {
	ledger LedgerWriter
	log    *zap.Logger
}

// NewClaimRecorder builds a recorder.
func NewClaimRecorder(ledger LedgerWriter, log *zap.Logger) *ClaimRecorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &ClaimRecorder{ledger: ledger, log: log}
}

// HandleClaim records one claim event.
func (r *ClaimRecorder) HandleClaim(ctx context.Context, event ClaimEvent) error {
	defer metrics.ObserveConsumerProcessing("handle_claim", time.Now())
	inserted, err := r.ledger.InsertClaim(ctx, db.ClaimRecord{
		TxHash:           event.TxHash,
		BlockNumber:      event.BlockNumber,
		EventID:          event.EventID,
		CertificateID:    event.CertificateID,
		RecipientName:    event.RecipientName,
		RecipientAddress: event.RecipientAddress,
		Signer:           event.Signer,
		ClaimedAt:        event.Timestamp,
	})
	if err != nil {
		r.log.Error("claim recorder: failed to insert ledger row",
			zap.String("tx_hash", event.TxHash), zap.Error(err))
		return err
	}
	if !inserted {
		r.log.Debug("claim recorder: duplicate event ignored", zap.String("tx_hash", event.TxHash))
	}
	return nil
}
