package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"verichain/internal/app/api/config"
	"verichain/internal/app/api/router"
	"verichain/internal/chain"
	"verichain/internal/domain/certificate"
	"verichain/internal/kafka"
	"verichain/internal/messaging/claim"
	redispkg "verichain/internal/redis"
)

// Server wires infrastructure dependencies for the API service.
type Server struct {
	cfg        config.Config
	log        *zap.Logger
	httpServer *http.Server
	redis      *redispkg.Client
	producer   *kafka.Producer
}

// New constructs the server and its optional dependencies. Redis and Kafka are
// only dialed when configured; chain credentials are checked per request.
func New(cfg config.Config, log *zap.Logger) (*Server, error) {
	contract, err := chain.ContractAddress(cfg.ContractAddress)
	if err != nil {
		return nil, err
	}
	if cfg.SigningKey == "" || cfg.RPCURL == "" {
		log.Warn("chain credentials are not set; claims will fail until configured")
	}

	srv := &Server{cfg: cfg, log: log}
	catalogDeps := certificate.CatalogDeps{
		RPCURL:      cfg.RPCURL,
		Credentials: cfg,
		TTLs:        certificate.CacheTTLs{Certificate: cfg.CertificateTTL, Event: cfg.EventTTL},
		Logger:      log,
	}
	if cfg.RedisAddr != "" {
		redisClient, err := redispkg.New(cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		srv.redis = redisClient
		catalogDeps.Cache = redisClient
	}

	serviceDeps := certificate.ServiceDeps{
		Credentials:    cfg,
		Contract:       contract,
		ConfirmTimeout: cfg.ConfirmTimeout,
		Logger:         log,
	}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			srv.Close()
			return nil, err
		}
		srv.producer = producer
		serviceDeps.Publisher = claim.NewPublisher(producer)
	}

	dialer := chain.NewDialer(contract)
	serviceDeps.Connector = dialer
	catalogDeps.Connector = dialer

	ginRouter := router.New(router.Dependencies{
		ClaimService: certificate.NewService(serviceDeps),
		Catalog:      certificate.NewCatalog(catalogDeps),
		Logger:       log,
	})
	srv.httpServer = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv, nil
}

// Handler exposes the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run starts the HTTP server and blocks until ctx is canceled or fatal error occurs.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("api listening", zap.String("addr", s.httpServer.Addr), zap.String("contract", s.cfg.ContractAddress))

	select {
	case <-ctx.Done():
		// Claims still waiting after the grace period are abandoned; their
		// transactions may confirm on-chain without a response being sent.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace(s.cfg.ConfirmTimeout))
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

const defaultShutdownGrace = 30 * time.Second

// shutdownGrace covers a full confirmation wait when one is configured.
func shutdownGrace(confirmTimeout time.Duration) time.Duration {
	if confirmTimeout+5*time.Second > defaultShutdownGrace {
		return confirmTimeout + 5*time.Second
	}
	return defaultShutdownGrace
}

// Close releases infrastructure resources.
func (s *Server) Close() {
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.producer != nil {
		_ = s.producer.Close()
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
}
