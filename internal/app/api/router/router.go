package router

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"verichain/internal/chain"
	"verichain/internal/domain/certificate"
	"verichain/internal/middleware"
	"verichain/internal/observability/metrics"
)

// Response messages.
const (
	MsgMethodNotAllowed   = "Method Not Allowed"
	MsgMissingFields      = "Missing required fields."
	MsgInvalidJSON        = "Invalid JSON body."
	MsgInvalidID          = "Invalid id."
	MsgCertificateMissing = "Certificate not found."
	MsgEventMissing       = "Event not found."
	MsgInternalError      = "An internal server error occurred."
)

// Dependencies enumerates services required by API handlers.
type Dependencies struct {
	ClaimService *certificate.Service
	Catalog      *certificate.Catalog
	Logger       *zap.Logger
}

// New builds a gin.Engine with all routes registered.
func New(deps Dependencies) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	router := gin.New()
	router.Use(
		middleware.CorrelationID(),
		middleware.AccessLog(log),
		gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
			log.Error("panic serving request",
				zap.String("correlation_id", middleware.GetCorrelationID(c)),
				zap.Any("panic", recovered))
			c.AbortWithStatusJSON(http.StatusInternalServerError, failure(MsgInternalError))
		}),
		metrics.GinMiddleware(),
	)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &handler{claims: deps.ClaimService, catalog: deps.Catalog, log: log}
	api := router.Group("/api")
	api.Any("/claim", h.claimCertificate)
	api.GET("/certificates/:id", h.getCertificate)
	api.GET("/events/:id", h.getEvent)
	api.GET("/contract", h.getContract)

	return router
}

type handler struct {
	claims  *certificate.Service
	catalog *certificate.Catalog
	log     *zap.Logger
}

type claimResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash,omitempty"`
	Message         string `json:"message,omitempty"`
}

func failure(message string) claimResponse {
	return claimResponse{Success: false, Message: message}
}

func (h *handler) claimCertificate(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, failure(MsgMethodNotAllowed))
		return
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.internalError(c, err)
		return
	}
	in, err := parseClaimBody(body)
	if err != nil {
		if errors.Is(err, errInvalidJSON) {
			c.JSON(http.StatusBadRequest, failure(MsgInvalidJSON))
			return
		}
		c.JSON(http.StatusBadRequest, failure(MsgMissingFields))
		return
	}

	result, err := h.claims.Claim(c.Request.Context(), in)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, claimResponse{Success: true, TransactionHash: result.TxHash.Hex()})
}

func (h *handler) getCertificate(c *gin.Context) {
	cert, err := h.catalog.Certificate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.readError(c, err, MsgCertificateMissing)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "certificate": cert})
}

func (h *handler) getEvent(c *gin.Context) {
	ev, err := h.catalog.Event(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.readError(c, err, MsgEventMissing)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "event": ev})
}

func (h *handler) getContract(c *gin.Context) {
	status, err := h.catalog.Status(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contract": status})
}

func (h *handler) readError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, certificate.ErrInvalidID):
		c.JSON(http.StatusBadRequest, failure(MsgInvalidID))
	case errors.Is(err, chain.ErrNotFound):
		c.JSON(http.StatusNotFound, failure(notFound))
	default:
		h.internalError(c, err)
	}
}

// internalError reports every configuration, network and contract failure the
// same way: 500 with the underlying message.
func (h *handler) internalError(c *gin.Context, err error) {
	h.log.Error("API Error",
		zap.String("correlation_id", middleware.GetCorrelationID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	msg := err.Error()
	if msg == "" {
		msg = MsgInternalError
	}
	c.JSON(http.StatusInternalServerError, failure(msg))
}

var (
	errInvalidJSON   = errors.New("invalid json")
	errMissingFields = errors.New("missing required fields")
)

// parseClaimBody applies JavaScript truthiness to the three fields: absent,
// null, false, 0 and "" all count as missing. Present values are passed on
// without range or format checks. Numbers are forwarded by value, so 1.0 and
// 1e3 reach the contract as 1 and 1000. A name or address that is not a JSON
// string is carried through as a type error and fails the claim at argument
// encoding.
func parseClaimBody(body []byte) (certificate.ClaimInput, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return certificate.ClaimInput{}, errMissingFields
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var parsed interface{}
	if err := dec.Decode(&parsed); err != nil {
		return certificate.ClaimInput{}, errInvalidJSON
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return certificate.ClaimInput{}, errInvalidJSON
	}
	fields, ok := parsed.(map[string]interface{})
	if !ok {
		return certificate.ClaimInput{}, errMissingFields
	}
	eventID, ok1 := fieldText(fields["eventId"])
	name, ok2 := fieldText(fields["recipientName"])
	address, ok3 := fieldText(fields["recipientAddress"])
	if !ok1 || !ok2 || !ok3 {
		return certificate.ClaimInput{}, errMissingFields
	}
	in := certificate.ClaimInput{EventID: eventID, RecipientName: name, RecipientAddress: address}
	for _, key := range []string{"recipientName", "recipientAddress"} {
		if _, isString := fields[key].(string); !isString {
			in.TypeErr = fmt.Errorf("invalid %s value %s: expected a string", key, fieldJSON(fields[key]))
			break
		}
	}
	return in, nil
}

func fieldText(v interface{}) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case bool:
		return "true", t
	case string:
		return t, t != ""
	case json.Number:
		return numberText(t)
	default:
		return fieldJSON(t), true
	}
}

// numberText renders a JSON number the way it would be encoded as a uint256:
// whole values in decimal, anything else verbatim so encoding rejects it.
func numberText(n json.Number) (string, bool) {
	f, _, err := big.ParseFloat(n.String(), 10, 512, big.ToNearestEven)
	if err != nil {
		return n.String(), true
	}
	if f.Sign() == 0 {
		return "", false
	}
	// MantExp bounds |f| below 2^exp; larger values stay verbatim.
	if f.IsInt() && f.MantExp(nil) <= 256 {
		i, _ := f.Int(nil)
		return i.String(), true
	}
	return n.String(), true
}

func fieldJSON(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}
