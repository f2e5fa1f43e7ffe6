package chain

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// ParseUint256 converts a decimal or 0x-prefixed hex string into a uint256 value.
func ParseUint256(raw string) (*big.Int, error) {
	s := strings.TrimSpace(raw)
	base := 10
	if has0xPrefix(s) {
		s, base = s[2:], 16
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok || s == "" {
		return nil, fmt.Errorf("invalid uint256 value %q", raw)
	}
	if v.Sign() < 0 || v.Cmp(maxUint256) > 0 {
		return nil, fmt.Errorf("uint256 value out of range: %q", raw)
	}
	return v, nil
}

// ParseAddress accepts a 20-byte hex address. Mixed-case input must carry a
// valid EIP-55 checksum.
func ParseAddress(raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("invalid address %q", raw)
	}
	addr := common.HexToAddress(raw)
	body := raw
	if has0xPrefix(body) {
		body = body[2:]
	}
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && addr.Hex()[2:] != body {
		return common.Address{}, fmt.Errorf("bad address checksum %q", raw)
	}
	return addr, nil
}

// ParseSigningKey decodes a hex secp256k1 private key with or without 0x.
func ParseSigningKey(raw string) (*ecdsa.PrivateKey, error) {
	s := strings.TrimSpace(raw)
	if has0xPrefix(s) {
		s = s[2:]
	}
	key, err := crypto.HexToECDSA(s)
	if err != nil {
		return nil, fmt.Errorf("invalid signing key: %w", err)
	}
	return key, nil
}

// SignerAddress derives the account address for a signing key.
func SignerAddress(raw string) (common.Address, error) {
	key, err := ParseSigningKey(raw)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
