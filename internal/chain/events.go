package chain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CertificateIssued is the decoded CertificateIssued log.
type CertificateIssued struct {
	CertificateID    *big.Int
	EventID          *big.Int
	RecipientName    string
	RecipientAddress common.Address
}

// FindCertificateIssued scans receipt logs emitted by contract for the first
// CertificateIssued event. It returns nil when the receipt carries none.
func FindCertificateIssued(receipt *types.Receipt, contract common.Address) (*CertificateIssued, error) {
	if receipt == nil {
		return nil, nil
	}
	for _, lg := range receipt.Logs {
		if lg == nil || lg.Address != contract {
			continue
		}
		ev, err := DecodeCertificateIssued(*lg)
		if errors.Is(err, errNotCertificateIssued) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return ev, nil
	}
	return nil, nil
}

var errNotCertificateIssued = errors.New("log is not CertificateIssued")

// DecodeCertificateIssued decodes a single log. Indexed fields come from the
// topics, the recipient name from the data section.
func DecodeCertificateIssued(lg types.Log) (*CertificateIssued, error) {
	parsed, err := ContractABI()
	if err != nil {
		return nil, err
	}
	event := parsed.Events[EventCertificateIssued]
	if len(lg.Topics) == 0 || lg.Topics[0] != event.ID {
		return nil, errNotCertificateIssued
	}
	if len(lg.Topics) != 4 {
		return nil, fmt.Errorf("%s log has %d topics, want 4", EventCertificateIssued, len(lg.Topics))
	}
	values, err := event.Inputs.Unpack(lg.Data)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", EventCertificateIssued, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%s data has %d values, want 1", EventCertificateIssued, len(values))
	}
	name, ok := values[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s recipientName has type %T", EventCertificateIssued, values[0])
	}
	return &CertificateIssued{
		CertificateID:    new(big.Int).SetBytes(lg.Topics[1].Bytes()),
		EventID:          new(big.Int).SetBytes(lg.Topics[2].Bytes()),
		RecipientName:    name,
		RecipientAddress: common.BytesToAddress(lg.Topics[3].Bytes()),
	}, nil
}
