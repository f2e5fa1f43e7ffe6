package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"verichain/internal/observability/metrics"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS claim_ledger (
    tx_hash           TEXT PRIMARY KEY,
    block_number      BIGINT NOT NULL,
    event_id          NUMERIC(78, 0) NOT NULL,
    certificate_id    NUMERIC(78, 0),
    recipient_name    TEXT NOT NULL,
    recipient_address TEXT NOT NULL,
    signer            TEXT NOT NULL,
    claimed_at        TIMESTAMPTZ NOT NULL,
    recorded_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS claim_ledger_recipient_idx ON claim_ledger (recipient_address);
CREATE INDEX IF NOT EXISTS claim_ledger_event_idx ON claim_ledger (event_id);
`

// Store wraps a pgx connection pool and exposes typed helpers.
type Store struct {
	pool *pgxpool.Pool
}

// ClaimRecord is one confirmed claim transaction.
type ClaimRecord struct {
	TxHash           string
	BlockNumber      uint64
	EventID          string
	CertificateID    string
	RecipientName    string
	RecipientAddress string
	Signer           string
	ClaimedAt        time.Time
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases underlying connections.
func (s *Store) Close() {
	s.pool.Close()
}

// Ping verifies connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// EnsureSchema guarantees required tables exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	defer metrics.ObserveDBOperation("ensure_schema", time.Now())
	_, err := s.pool.Exec(ctx, schemaSQL)
	return err
}

// InsertClaim stores a confirmed claim. Redelivered events for the same
// transaction are ignored; inserted reports whether a row was written.
func (s *Store) InsertClaim(ctx context.Context, rec ClaimRecord) (inserted bool, err error) {
	defer metrics.ObserveDBOperation("insert_claim", time.Now())
	var certificateID *string
	if rec.CertificateID != "" {
		certificateID = &rec.CertificateID
	}
	tag, err := s.pool.Exec(ctx, `
        INSERT INTO claim_ledger (tx_hash, block_number, event_id, certificate_id,
                                  recipient_name, recipient_address, signer, claimed_at)
        VALUES ($1, $2, $3::numeric, $4::numeric, $5, $6, $7, $8)
        ON CONFLICT (tx_hash) DO NOTHING
    `, rec.TxHash, int64(rec.BlockNumber), rec.EventID, certificateID,
		rec.RecipientName, rec.RecipientAddress, rec.Signer, rec.ClaimedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
