package chain

import "errors"

// ErrMissingCredentials is returned whenever the signing key or RPC endpoint is unset.
var ErrMissingCredentials = errors.New("Server configuration error: Required environment variables are not set.")

// Credentials are the secrets needed to sign and submit a transaction.
type Credentials struct {
	SigningKey string
	RPCURL     string
}

// Validate fails closed: both values must be present.
func (c Credentials) Validate() error {
	if c.SigningKey == "" || c.RPCURL == "" {
		return ErrMissingCredentials
	}
	return nil
}

// CredentialSource hands out credentials at request time.
type CredentialSource interface {
	Credentials() (Credentials, error)
}

// StaticCredentials serves a fixed credential pair.
type StaticCredentials Credentials

// Credentials implements CredentialSource.
func (s StaticCredentials) Credentials() (Credentials, error) {
	creds := Credentials(s)
	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}
