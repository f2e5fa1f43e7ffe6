package router

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"verichain/internal/chain"
	"verichain/internal/chain/chainmock"
	"verichain/internal/domain/certificate"
)

const (
	testRPC       = "http://node"
	testRecipient = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
)

var (
	testContract = common.HexToAddress(chain.DefaultContractAddress)
	testCreds    = chain.StaticCredentials{SigningKey: "key", RPCURL: testRPC}
)

func init() {
	gin.SetMode(gin.TestMode)
}

type body struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash"`
	Message         string `json:"message"`
}

func newTestRouter(t *testing.T, creds chain.CredentialSource, connector chain.Connector) *gin.Engine {
	log := zaptest.NewLogger(t)
	return New(Dependencies{
		ClaimService: certificate.NewService(certificate.ServiceDeps{
			Credentials: creds,
			Connector:   connector,
			Contract:    testContract,
			Logger:      log,
		}),
		Catalog: certificate.NewCatalog(certificate.CatalogDeps{
			RPCURL:      testRPC,
			Connector:   connector,
			Credentials: creds,
			Logger:      log,
		}),
		Logger: log,
	})
}

func do(t *testing.T, r http.Handler, method, path, payload string) (*httptest.ResponseRecorder, body) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var got body
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	}
	return rec, got
}

func testTx() *types.Transaction {
	return types.NewTx(&types.LegacyTx{Nonce: 1, To: &testContract, Gas: 100000, GasPrice: big.NewInt(1)})
}

func validPayload() string {
	return `{"eventId":"1","recipientName":"Alice","recipientAddress":"` + testRecipient + `"}`
}

func TestClaimRejectsOtherMethods(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newTestRouter(t, testCreds, chainmock.NewMockConnector(ctrl))

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		rec, got := do(t, r, method, "/api/claim", validPayload())
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.False(t, got.Success)
		assert.Equal(t, MsgMethodNotAllowed, got.Message)
		assert.Empty(t, got.TransactionHash)
	}
}

func TestClaimRejectsMissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no Connect expectation: validation failures must not reach the chain
	r := newTestRouter(t, testCreds, chainmock.NewMockConnector(ctrl))

	payloads := map[string]string{
		"empty body":             ``,
		"empty object":           `{}`,
		"no eventId":             `{"recipientName":"Alice","recipientAddress":"` + testRecipient + `"}`,
		"null eventId":           `{"eventId":null,"recipientName":"Alice","recipientAddress":"` + testRecipient + `"}`,
		"zero eventId":           `{"eventId":0,"recipientName":"Alice","recipientAddress":"` + testRecipient + `"}`,
		"empty eventId":          `{"eventId":"","recipientName":"Alice","recipientAddress":"` + testRecipient + `"}`,
		"false recipientName":    `{"eventId":"1","recipientName":false,"recipientAddress":"` + testRecipient + `"}`,
		"empty recipientAddress": `{"eventId":"1","recipientName":"Alice","recipientAddress":""}`,
		"not an object":          `["1","Alice"]`,
	}
	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			rec, got := do(t, r, http.MethodPost, "/api/claim", payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, got.Success)
			assert.Equal(t, MsgMissingFields, got.Message)
		})
	}
}

func TestClaimRejectsMalformedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newTestRouter(t, testCreds, chainmock.NewMockConnector(ctrl))

	for _, payload := range []string{`{"eventId":`, `not json`, `{} {}`} {
		rec, got := do(t, r, http.MethodPost, "/api/claim", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		assert.Equal(t, MsgInvalidJSON, got.Message)
	}
}

func TestClaimMissingConfigurationMakesNoCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newTestRouter(t, chain.StaticCredentials{RPCURL: testRPC}, chainmock.NewMockConnector(ctrl))

	rec, got := do(t, r, http.MethodPost, "/api/claim", validPayload())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, got.Success)
	assert.Equal(t, "Server configuration error: Required environment variables are not set.", got.Message)
}

func TestClaimSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	connector := chainmock.NewMockConnector(ctrl)
	session := chainmock.NewMockSession(ctrl)
	tx := testTx()

	connector.EXPECT().Connect(gomock.Any(), chain.Credentials(testCreds)).Return(session, nil)
	session.EXPECT().ClaimCertificate(gomock.Any(), big.NewInt(1), "Alice", common.HexToAddress(testRecipient)).Return(tx, nil).Times(1)
	session.EXPECT().WaitConfirmed(gomock.Any(), tx).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(42)}, nil)
	session.EXPECT().Close()

	r := newTestRouter(t, testCreds, connector)
	rec, got := do(t, r, http.MethodPost, "/api/claim", validPayload())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, got.Success)
	assert.Equal(t, tx.Hash().Hex(), got.TransactionHash)
	assert.Empty(t, got.Message)
}

func TestClaimForwardsNumericEventID(t *testing.T) {
	tests := []struct {
		raw  string
		want *big.Int
	}{
		{raw: `7`, want: big.NewInt(7)},
		{raw: `1.0`, want: big.NewInt(1)},
		{raw: `1e3`, want: big.NewInt(1000)},
		{raw: `2.5E1`, want: big.NewInt(25)},
		{raw: `"0x10"`, want: big.NewInt(16)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			connector := chainmock.NewMockConnector(ctrl)
			session := chainmock.NewMockSession(ctrl)
			tx := testTx()

			connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(session, nil)
			session.EXPECT().ClaimCertificate(gomock.Any(), tt.want, "Bob", gomock.Any()).Return(tx, nil).Times(1)
			session.EXPECT().WaitConfirmed(gomock.Any(), tx).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}, nil)
			session.EXPECT().Close()

			r := newTestRouter(t, testCreds, connector)
			rec, got := do(t, r, http.MethodPost, "/api/claim", `{"eventId":`+tt.raw+`,"recipientName":"Bob","recipientAddress":"`+testRecipient+`"}`)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tx.Hash().Hex(), got.TransactionHash)
		})
	}
}

func TestClaimRejectsUnencodableArguments(t *testing.T) {
	payloads := map[string]string{
		"fractional eventId": `{"eventId":1.5,"recipientName":"Bob","recipientAddress":"` + testRecipient + `"}`,
		"negative eventId":   `{"eventId":-1,"recipientName":"Bob","recipientAddress":"` + testRecipient + `"}`,
		"boolean name":       `{"eventId":1,"recipientName":true,"recipientAddress":"` + testRecipient + `"}`,
		"numeric name":       `{"eventId":1,"recipientName":5,"recipientAddress":"` + testRecipient + `"}`,
		"object name":        `{"eventId":1,"recipientName":{},"recipientAddress":"` + testRecipient + `"}`,
		"numeric address":    `{"eventId":1,"recipientName":"Bob","recipientAddress":12}`,
	}
	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			connector := chainmock.NewMockConnector(ctrl)
			session := chainmock.NewMockSession(ctrl)
			// connected, but nothing is submitted
			connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(session, nil)
			session.EXPECT().Close()

			r := newTestRouter(t, testCreds, connector)
			rec, got := do(t, r, http.MethodPost, "/api/claim", payload)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.False(t, got.Success)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestClaimReportsChainErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*chainmock.MockConnector, *chainmock.MockSession)
		payload string
		wantMsg string
	}{
		{
			name: "connect fails",
			setup: func(c *chainmock.MockConnector, _ *chainmock.MockSession) {
				c.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))
			},
			payload: validPayload(),
			wantMsg: "dial tcp: connection refused",
		},
		{
			name: "contract rejects",
			setup: func(c *chainmock.MockConnector, s *chainmock.MockSession) {
				c.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(s, nil)
				s.EXPECT().ClaimCertificate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("execution reverted: Only distributor can call this function"))
				s.EXPECT().Close()
			},
			payload: validPayload(),
			wantMsg: "execution reverted: Only distributor can call this function",
		},
		{
			name: "malformed address",
			setup: func(c *chainmock.MockConnector, s *chainmock.MockSession) {
				c.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(s, nil)
				s.EXPECT().Close()
			},
			payload: `{"eventId":"1","recipientName":"Alice","recipientAddress":"bob"}`,
		},
		{
			name: "empty error text",
			setup: func(c *chainmock.MockConnector, _ *chainmock.MockSession) {
				c.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, errors.New(""))
			},
			payload: validPayload(),
			wantMsg: MsgInternalError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			connector := chainmock.NewMockConnector(ctrl)
			session := chainmock.NewMockSession(ctrl)
			tt.setup(connector, session)

			r := newTestRouter(t, testCreds, connector)
			rec, got := do(t, r, http.MethodPost, "/api/claim", tt.payload)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.False(t, got.Success)
			assert.NotEmpty(t, got.Message)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, got.Message)
			}
		})
	}
}

func TestGetCertificate(t *testing.T) {
	ctrl := gomock.NewController(t)
	connector := chainmock.NewMockConnector(ctrl)
	reader := chainmock.NewMockReader(ctrl)
	r := newTestRouter(t, testCreds, connector)

	rec, got := do(t, r, http.MethodGet, "/api/certificates/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, MsgInvalidID, got.Message)

	connector.EXPECT().Dial(gomock.Any(), testRPC).Return(reader, nil).Times(2)
	reader.EXPECT().Close().Times(2)
	reader.EXPECT().Certificate(gomock.Any(), big.NewInt(9)).Return(nil, chain.ErrNotFound)
	reader.EXPECT().Certificate(gomock.Any(), big.NewInt(3)).Return(&chain.Certificate{ID: "3", EventID: "1", RecipientName: "Alice"}, nil)

	rec, got = do(t, r, http.MethodGet, "/api/certificates/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, MsgCertificateMissing, got.Message)

	rec, _ = do(t, r, http.MethodGet, "/api/certificates/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Success     bool              `json:"success"`
		Certificate chain.Certificate `json:"certificate"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, "Alice", payload.Certificate.RecipientName)
}

func TestGetEventNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	connector := chainmock.NewMockConnector(ctrl)
	reader := chainmock.NewMockReader(ctrl)

	connector.EXPECT().Dial(gomock.Any(), testRPC).Return(reader, nil)
	reader.EXPECT().Event(gomock.Any(), big.NewInt(5)).Return(nil, chain.ErrNotFound)
	reader.EXPECT().Close()

	r := newTestRouter(t, testCreds, connector)
	rec, got := do(t, r, http.MethodGet, "/api/events/5", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, MsgEventMissing, got.Message)
}

func TestGetContractWithoutEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	connector := chainmock.NewMockConnector(ctrl)
	connector.EXPECT().Dial(gomock.Any(), testRPC).Return(nil, chain.ErrMissingCredentials)

	r := newTestRouter(t, testCreds, connector)
	rec, got := do(t, r, http.MethodGet, "/api/contract", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, chain.ErrMissingCredentials.Error(), got.Message)
}

func TestHealthzAndMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newTestRouter(t, testCreds, chainmock.NewMockConnector(ctrl))

	rec, _ := do(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec, _ = do(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_request_duration_seconds")
}

func TestResponsesCarryCorrelationID(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newTestRouter(t, testCreds, chainmock.NewMockConnector(ctrl))

	rec, _ := do(t, r, http.MethodGet, "/api/claim", "")
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestParseClaimBody(t *testing.T) {
	in, err := parseClaimBody([]byte(`{"eventId":12e0,"recipientName":"Alice","recipientAddress":"0xabc"}`))
	require.NoError(t, err)
	assert.Equal(t, certificate.ClaimInput{EventID: "12", RecipientName: "Alice", RecipientAddress: "0xabc"}, in)

	in, err = parseClaimBody([]byte(`{"eventId":1,"recipientName":true,"recipientAddress":"0xabc"}`))
	require.NoError(t, err)
	assert.EqualError(t, in.TypeErr, "invalid recipientName value true: expected a string")

	_, err = parseClaimBody([]byte(`{"eventId":0.0,"recipientName":"Alice","recipientAddress":"0xabc"}`))
	assert.ErrorIs(t, err, errMissingFields)
}
