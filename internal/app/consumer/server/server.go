package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	consumerconfig "verichain/internal/app/consumer/config"
	"verichain/internal/db"
	"verichain/internal/domain/certificate"
	"verichain/internal/messaging/claim"
)

// Server hosts the claim ledger consumer.
type Server struct {
	cfg      consumerconfig.Config
	log      *zap.Logger
	store    *db.Store
	consumer *claim.Consumer
	metrics  *http.Server
}

// New builds the consumer server and supporting dependencies.
func New(ctx context.Context, cfg consumerconfig.Config, log *zap.Logger) (*Server, error) {
	store, err := db.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}

	recorder := certificate.NewClaimRecorder(store, log)
	claimConsumer, err := claim.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroup, cfg.KafkaTopic, recorder, log)
	if err != nil {
		store.Close()
		return nil, err
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	metricsSrv := &http.Server{Addr: cfg.MetricsAddr, Handler: metricsMux, ReadHeaderTimeout: 5 * time.Second}

	return &Server{
		cfg:      cfg,
		log:      log,
		store:    store,
		consumer: claimConsumer,
		metrics:  metricsSrv,
	}, nil
}

// Run starts consuming claim events until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	if s.metrics != nil {
		go func() {
			if err := s.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.log.Error("consumer metrics server stopped", zap.Error(err))
			}
		}()
		s.log.Info("consumer metrics listening", zap.String("addr", s.cfg.MetricsAddr))
	}
	s.log.Info("consuming claim events",
		zap.String("topic", s.cfg.KafkaTopic),
		zap.String("group", s.cfg.KafkaGroup),
		zap.Strings("brokers", s.cfg.KafkaBrokers))
	return s.consumer.Start(ctx)
}

// Close releases resources.
func (s *Server) Close() {
	if s.metrics != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.metrics.Shutdown(shutdownCtx)
	}
	if s.consumer != nil {
		_ = s.consumer.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
}
