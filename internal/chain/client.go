package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"verichain/internal/observability/metrics"
)

//go:generate mockgen -destination=chainmock/mock_chain.go -package=chainmock verichain/internal/chain Connector,Session,Reader

// ErrNotFound is returned by read accessors for records the contract does not hold.
var ErrNotFound = errors.New("record not found")

// Reader exposes the contract's view accessors.
type Reader interface {
	Certificate(ctx context.Context, id *big.Int) (*Certificate, error)
	Event(ctx context.Context, id *big.Int) (*Event, error)
	Info(ctx context.Context) (*ContractInfo, error)
	Close()
}

// Session is a Reader bound to a signing identity.
type Session interface {
	Reader
	From() common.Address
	ClaimCertificate(ctx context.Context, eventID *big.Int, recipientName string, recipient common.Address) (*types.Transaction, error)
	WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// Connector opens per-request chain sessions.
type Connector interface {
	Connect(ctx context.Context, creds Credentials) (Session, error)
	Dial(ctx context.Context, rpcURL string) (Reader, error)
}

// Dialer connects to a JSON-RPC node and binds the VeriChain contract.
type Dialer struct {
	address common.Address
}

// NewDialer returns a Dialer for the contract deployed at address.
func NewDialer(address common.Address) *Dialer {
	return &Dialer{address: address}
}

// Address returns the bound contract address.
func (d *Dialer) Address() common.Address {
	return d.address
}

// Dial opens a read-only session.
func (d *Dialer) Dial(ctx context.Context, rpcURL string) (Reader, error) {
	return d.dial(ctx, rpcURL)
}

// Connect opens a session that signs with creds.SigningKey.
func (d *Dialer) Connect(ctx context.Context, creds Credentials) (Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	c, err := d.dial(ctx, creds.RPCURL)
	if err != nil {
		return nil, err
	}
	key, err := ParseSigningKey(creds.SigningKey)
	if err != nil {
		c.Close()
		return nil, err
	}
	start := time.Now()
	chainID, err := c.eth.ChainID(ctx)
	metrics.ObserveChainOperation("chain_id", start)
	if err != nil {
		c.Close()
		return nil, err
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.opts = opts
	c.from = crypto.PubkeyToAddress(key.PublicKey)
	return c, nil
}

func (d *Dialer) dial(ctx context.Context, rpcURL string) (*Client, error) {
	if rpcURL == "" {
		return nil, ErrMissingCredentials
	}
	parsed, err := ContractABI()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	eth, err := ethclient.DialContext(ctx, rpcURL)
	metrics.ObserveChainOperation("dial", start)
	if err != nil {
		return nil, err
	}
	return &Client{
		eth:      eth,
		address:  d.address,
		contract: bind.NewBoundContract(d.address, parsed, eth, eth, eth),
	}, nil
}

// Client is a single-use session against one node.
type Client struct {
	eth      *ethclient.Client
	address  common.Address
	contract *bind.BoundContract
	opts     *bind.TransactOpts
	from     common.Address
}

// From returns the signing address; zero for read-only sessions.
func (c *Client) From() common.Address {
	return c.from
}

// Close releases the RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// ClaimCertificate submits claimCertificate and returns the broadcast transaction.
func (c *Client) ClaimCertificate(ctx context.Context, eventID *big.Int, recipientName string, recipient common.Address) (*types.Transaction, error) {
	if c.opts == nil {
		return nil, errors.New("session has no signing identity")
	}
	start := time.Now()
	defer metrics.ObserveChainOperation("submit", start)
	opts := *c.opts
	opts.Context = ctx
	return c.contract.Transact(&opts, MethodClaimCertificate, eventID, recipientName, recipient)
}

// WaitConfirmed blocks until tx is mined or ctx is done.
func (c *Client) WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	start := time.Now()
	defer metrics.ObserveChainOperation("confirm", start)
	return bind.WaitMined(ctx, c.eth, tx)
}

// Certificate calls getCertificateDetails.
func (c *Client) Certificate(ctx context.Context, id *big.Int) (*Certificate, error) {
	out, err := c.call(ctx, MethodGetCertificateDetails, id)
	if err != nil {
		return nil, notFoundOnRevert(err)
	}
	tuple := *abi.ConvertType(out[0], new(certificateTuple)).(*certificateTuple)
	if isZero(tuple.Id) {
		return nil, ErrNotFound
	}
	return tuple.record(), nil
}

// Event calls getEventDetails.
func (c *Client) Event(ctx context.Context, id *big.Int) (*Event, error) {
	out, err := c.call(ctx, MethodGetEventDetails, id)
	if err != nil {
		return nil, notFoundOnRevert(err)
	}
	tuple := *abi.ConvertType(out[0], new(eventTuple)).(*eventTuple)
	if isZero(tuple.Id) {
		return nil, ErrNotFound
	}
	return tuple.record(), nil
}

// Info reads owner, distributor and both counters.
func (c *Client) Info(ctx context.Context) (*ContractInfo, error) {
	owner, err := c.callAddress(ctx, MethodOwner)
	if err != nil {
		return nil, err
	}
	distributor, err := c.callAddress(ctx, MethodDistributor)
	if err != nil {
		return nil, err
	}
	events, err := c.callUint(ctx, MethodEventCounter)
	if err != nil {
		return nil, err
	}
	certificates, err := c.callUint(ctx, MethodCertificateCounter)
	if err != nil {
		return nil, err
	}
	return &ContractInfo{
		Address:            c.address.Hex(),
		Owner:              owner.Hex(),
		Distributor:        distributor.Hex(),
		EventCounter:       events.String(),
		CertificateCounter: certificates.String(),
	}, nil
}

func (c *Client) call(ctx context.Context, method string, params ...interface{}) ([]interface{}, error) {
	start := time.Now()
	defer metrics.ObserveChainOperation("call", start)
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	return out, nil
}

func (c *Client) callAddress(ctx context.Context, method string) (common.Address, error) {
	out, err := c.call(ctx, method)
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (c *Client) callUint(ctx context.Context, method string) (*big.Int, error) {
	out, err := c.call(ctx, method)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// View accessors only revert on their own existence checks.
func notFoundOnRevert(err error) error {
	if strings.Contains(err.Error(), "execution reverted") {
		return ErrNotFound
	}
	return err
}
