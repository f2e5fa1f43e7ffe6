package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Certificate mirrors VeriChain.Certificate.
type Certificate struct {
	ID               string `json:"id"`
	EventID          string `json:"eventId"`
	RecipientName    string `json:"recipientName"`
	RecipientAddress string `json:"recipientAddress"`
	IssueDate        uint64 `json:"issueDate"`
}

// Event mirrors VeriChain.Event.
type Event struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Date               string   `json:"date"`
	Location           string   `json:"location"`
	CertificatesIssued string   `json:"certificatesIssued"`
	CertificateIDs     []string `json:"certificateIds"`
}

// ContractInfo collects the contract-wide view accessors.
type ContractInfo struct {
	Address            string `json:"address"`
	Owner              string `json:"owner"`
	Distributor        string `json:"distributor"`
	EventCounter       string `json:"eventCounter"`
	CertificateCounter string `json:"certificateCounter"`
}

// Field names must match the ABI tuple components for abi.ConvertType.
type certificateTuple struct {
	Id               *big.Int
	EventId          *big.Int
	RecipientName    string
	RecipientAddress common.Address
	IssueDate        *big.Int
}

type eventTuple struct {
	Id                 *big.Int
	Name               string
	Date               *big.Int
	Location           string
	CertificatesIssued *big.Int
	CertificateIds     []*big.Int
}

func (t certificateTuple) record() *Certificate {
	return &Certificate{
		ID:               bigString(t.Id),
		EventID:          bigString(t.EventId),
		RecipientName:    t.RecipientName,
		RecipientAddress: t.RecipientAddress.Hex(),
		IssueDate:        bigUint64(t.IssueDate),
	}
}

func (t eventTuple) record() *Event {
	ids := make([]string, 0, len(t.CertificateIds))
	for _, id := range t.CertificateIds {
		ids = append(ids, bigString(id))
	}
	return &Event{
		ID:                 bigString(t.Id),
		Name:               t.Name,
		Date:               bigString(t.Date),
		Location:           t.Location,
		CertificatesIssued: bigString(t.CertificatesIssued),
		CertificateIDs:     ids,
	}
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func bigUint64(v *big.Int) uint64 {
	if v == nil || !v.IsUint64() {
		return 0
	}
	return v.Uint64()
}

func isZero(v *big.Int) bool {
	return v == nil || v.Sign() == 0
}
