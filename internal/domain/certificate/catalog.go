package certificate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"verichain/internal/chain"
)

// ErrInvalidID indicates a record id that is not a uint256.
var ErrInvalidID = errors.New("invalid id")

// Cache stores JSON-encodable values with a TTL.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CacheTTLs configures how long each record type stays cached.
type CacheTTLs struct {
	Certificate time.Duration
	Event       time.Duration
}

// ContractStatus is ContractInfo plus the configured signer, if any.
type ContractStatus struct {
	chain.ContractInfo
	Signer              string `json:"signer,omitempty"`
	SignerIsDistributor bool   `json:"signerIsDistributor"`
}

// CatalogDeps enumerates what the catalog needs. Cache and Credentials are optional.
type CatalogDeps struct {
	RPCURL      string
	Connector   chain.Connector
	Credentials chain.CredentialSource
	Cache       Cache
	TTLs        CacheTTLs
	Logger      *zap.Logger
}

// Catalog serves the contract's read-only accessors through an optional cache.
type Catalog struct {
	rpcURL    string
	connector chain.Connector
	creds     chain.CredentialSource
	cache     Cache
	ttls      CacheTTLs
	log       *zap.Logger
}

// NewCatalog wires dependencies.
func NewCatalog(deps CatalogDeps) *Catalog {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{
		rpcURL:    deps.RPCURL,
		connector: deps.Connector,
		creds:     deps.Credentials,
		cache:     deps.Cache,
		ttls:      deps.TTLs,
		log:       log,
	}
}

// Certificate returns certificate id from the contract.
func (c *Catalog) Certificate(ctx context.Context, rawID string) (*chain.Certificate, error) {
	id, err := chain.ParseUint256(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	key := certificateKey(id.String())
	var cert chain.Certificate
	if c.cacheGet(ctx, key, &cert) {
		return &cert, nil
	}
	var out *chain.Certificate
	if err := c.read(ctx, func(r chain.Reader) error {
		out, err = r.Certificate(ctx, id)
		return err
	}); err != nil {
		return nil, err
	}
	c.cacheSet(ctx, key, out, c.ttls.Certificate)
	return out, nil
}

// Event returns event id from the contract.
func (c *Catalog) Event(ctx context.Context, rawID string) (*chain.Event, error) {
	id, err := chain.ParseUint256(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	key := eventKey(id.String())
	var ev chain.Event
	if c.cacheGet(ctx, key, &ev) {
		return &ev, nil
	}
	var out *chain.Event
	if err := c.read(ctx, func(r chain.Reader) error {
		out, err = r.Event(ctx, id)
		return err
	}); err != nil {
		return nil, err
	}
	c.cacheSet(ctx, key, out, c.ttls.Event)
	return out, nil
}

// Status returns the contract-wide accessors and whether the configured
// signing key is the contract's distributor.
func (c *Catalog) Status(ctx context.Context) (*ContractStatus, error) {
	var info chain.ContractInfo
	if !c.cacheGet(ctx, contractInfoKey, &info) {
		var out *chain.ContractInfo
		if err := c.read(ctx, func(r chain.Reader) (err error) {
			out, err = r.Info(ctx)
			return err
		}); err != nil {
			return nil, err
		}
		info = *out
		c.cacheSet(ctx, contractInfoKey, out, c.ttls.Event)
	}

	status := &ContractStatus{ContractInfo: info}
	if c.creds == nil {
		return status, nil
	}
	creds, err := c.creds.Credentials()
	if err != nil {
		return status, nil
	}
	signer, err := chain.SignerAddress(creds.SigningKey)
	if err != nil {
		c.log.Warn("configured signing key is not usable", zap.Error(err))
		return status, nil
	}
	status.Signer = signer.Hex()
	status.SignerIsDistributor = signer.Hex() == info.Distributor
	return status, nil
}

func (c *Catalog) read(ctx context.Context, fn func(chain.Reader) error) error {
	reader, err := c.connector.Dial(ctx, c.rpcURL)
	if err != nil {
		return err
	}
	defer reader.Close()
	return fn(reader)
}

func (c *Catalog) cacheGet(ctx context.Context, key string, dst interface{}) bool {
	if c.cache == nil {
		return false
	}
	hit, err := c.cache.GetJSON(ctx, key, dst)
	if err != nil {
		c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (c *Catalog) cacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c.cache == nil || ttl <= 0 {
		return
	}
	if err := c.cache.SetJSON(ctx, key, value, ttl); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

const contractInfoKey = "verichain:contract"

func certificateKey(id string) string {
	return fmt.Sprintf("verichain:certificate:%s", id)
}

func eventKey(id string) string {
	return fmt.Sprintf("verichain:event:%s", id)
}
