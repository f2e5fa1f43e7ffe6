package certificate

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"verichain/internal/chain"
	"verichain/internal/observability/metrics"
)

// ClaimInput carries the three request fields as received.
type ClaimInput struct {
	EventID          string
	RecipientName    string
	RecipientAddress string
	// TypeErr, when set, fails the claim at argument encoding. It marks a
	// field that arrived with a type the contract argument cannot take.
	TypeErr error
}

// ClaimResult describes a confirmed claim transaction.
type ClaimResult struct {
	TxHash      common.Hash
	BlockNumber uint64
	Issued      *chain.CertificateIssued
}

// EventPublisher forwards confirmed claims downstream.
type EventPublisher interface {
	Publish(ctx context.Context, event ClaimEvent) error
}

// ServiceDeps enumerates what the claim service needs. Publisher is optional
// and ConfirmTimeout of zero waits indefinitely.
type ServiceDeps struct {
	Credentials    chain.CredentialSource
	Connector      chain.Connector
	Contract       common.Address
	Publisher      EventPublisher
	ConfirmTimeout time.Duration
	Logger         *zap.Logger
}

// Service relays certificate claims to the contract.
type Service struct {
	creds          chain.CredentialSource
	connector      chain.Connector
	contract       common.Address
	publisher      EventPublisher
	confirmTimeout time.Duration
	log            *zap.Logger
	now            func() time.Time
}

// NewService wires dependencies.
func NewService(deps ServiceDeps) *Service {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		creds:          deps.Credentials,
		connector:      deps.Connector,
		contract:       deps.Contract,
		publisher:      deps.Publisher,
		confirmTimeout: deps.ConfirmTimeout,
		log:            log,
		now:            time.Now,
	}
}

// Claim signs and submits one claimCertificate transaction and blocks until it
// is mined. Errors are returned unwrapped so callers can surface their text.
func (s *Service) Claim(ctx context.Context, in ClaimInput) (*ClaimResult, error) {
	creds, err := s.creds.Credentials()
	if err != nil {
		metrics.IncClaim(metrics.OutcomeFailed)
		return nil, err
	}

	// Claims run to completion even if the caller disconnects.
	ctx = context.WithoutCancel(ctx)
	if s.confirmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.confirmTimeout)
		defer cancel()
	}

	session, err := s.connector.Connect(ctx, creds)
	if err != nil {
		metrics.IncClaim(metrics.OutcomeFailed)
		return nil, err
	}
	defer session.Close()

	if in.TypeErr != nil {
		metrics.IncClaim(metrics.OutcomeFailed)
		return nil, in.TypeErr
	}
	eventID, err := chain.ParseUint256(in.EventID)
	if err != nil {
		metrics.IncClaim(metrics.OutcomeFailed)
		return nil, err
	}
	recipient, err := chain.ParseAddress(in.RecipientAddress)
	if err != nil {
		metrics.IncClaim(metrics.OutcomeFailed)
		return nil, err
	}

	tx, err := session.ClaimCertificate(ctx, eventID, in.RecipientName, recipient)
	if err != nil {
		metrics.IncClaim(metrics.OutcomeFailed)
		return nil, err
	}
	log := s.log.With(zap.String("tx_hash", tx.Hash().Hex()), zap.String("event_id", eventID.String()))
	log.Info("claim transaction submitted", zap.String("recipient", recipient.Hex()))

	receipt, err := session.WaitConfirmed(ctx, tx)
	if err != nil {
		metrics.IncClaim(metrics.OutcomeFailed)
		log.Warn("claim transaction broadcast but not confirmed", zap.Error(err))
		return nil, err
	}
	blockNumber := receiptBlock(receipt)
	if receipt.Status != types.ReceiptStatusSuccessful {
		metrics.IncClaim(metrics.OutcomeReverted)
		return nil, fmt.Errorf("transaction %s reverted in block %d", tx.Hash().Hex(), blockNumber)
	}
	metrics.IncClaim(metrics.OutcomeConfirmed)

	issued, err := chain.FindCertificateIssued(receipt, s.contract)
	if err != nil {
		log.Warn("could not decode CertificateIssued log", zap.Error(err))
	}
	log.Info("claim transaction confirmed", zap.Uint64("block", blockNumber))

	result := &ClaimResult{TxHash: tx.Hash(), BlockNumber: blockNumber, Issued: issued}
	s.publish(ctx, log, session, in, eventID.String(), recipient, result)
	return result, nil
}

func (s *Service) publish(ctx context.Context, log *zap.Logger, session chain.Session, in ClaimInput, eventID string, recipient common.Address, result *ClaimResult) {
	if s.publisher == nil {
		return
	}
	event := ClaimEvent{
		TxHash:           result.TxHash.Hex(),
		BlockNumber:      result.BlockNumber,
		EventID:          eventID,
		RecipientName:    in.RecipientName,
		RecipientAddress: recipient.Hex(),
		Signer:           session.From().Hex(),
		Timestamp:        s.now().UTC(),
	}
	if result.Issued != nil {
		event.CertificateID = result.Issued.CertificateID.String()
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Error("failed to publish claim event", zap.Error(err))
	}
}

func receiptBlock(receipt *types.Receipt) uint64 {
	if receipt.BlockNumber == nil {
		return 0
	}
	return receipt.BlockNumber.Uint64()
}
