package certificate

import "time"

// ClaimEvent is emitted after a claim transaction is confirmed.
type ClaimEvent struct {
	TxHash           string    `json:"tx_hash"`
	BlockNumber      uint64    `json:"block_number"`
	EventID          string    `json:"event_id"`
	CertificateID    string    `json:"certificate_id,omitempty"`
	RecipientName    string    `json:"recipient_name"`
	RecipientAddress string    `json:"recipient_address"`
	Signer           string    `json:"signer"`
	Timestamp        time.Time `json:"ts"`
}
