package chain

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// DefaultContractAddress is the VeriChain deployment on Sepolia.
const DefaultContractAddress = "0xCd3F074104d3e9b09d04833F2Fb92ac92d8A1931"

// Contract entry points and events used by the relay.
const (
	MethodClaimCertificate      = "claimCertificate"
	MethodGetCertificateDetails = "getCertificateDetails"
	MethodGetEventDetails       = "getEventDetails"
	MethodDistributor           = "distributor"
	MethodOwner                 = "owner"
	MethodEventCounter          = "eventCounter"
	MethodCertificateCounter    = "certificateCounter"

	EventCertificateIssued = "CertificateIssued"
)

//go:embed verichain.abi.json
var verichainABIJSON string

var (
	abiOnce   sync.Once
	parsedABI abi.ABI
	abiErr    error
)

// ContractABI returns the parsed VeriChain interface description.
func ContractABI() (abi.ABI, error) {
	abiOnce.Do(func() {
		parsedABI, abiErr = abi.JSON(strings.NewReader(verichainABIJSON))
	})
	return parsedABI, abiErr
}

// ContractAddress parses a configured contract address, falling back to the
// default deployment when raw is empty.
func ContractAddress(raw string) (common.Address, error) {
	if raw == "" {
		raw = DefaultContractAddress
	}
	return ParseAddress(raw)
}
