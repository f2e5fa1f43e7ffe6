package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verichain/internal/chain"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "STAGE", "DISTRIBUTOR_PRIVATE_KEY", "SEPOLIA_RPC_URL", "CONTRACT_ADDRESS",
		"CLAIM_CONFIRM_TIMEOUT", "REDIS_ADDR", "CACHE_CERTIFICATE_TTL", "CACHE_EVENT_TTL",
		"KAFKA_TOPIC", "KAFKA_BROKERS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Stage)
	assert.Equal(t, chain.DefaultContractAddress, cfg.ContractAddress)
	assert.Zero(t, cfg.ConfirmTimeout)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.CertificateTTL)
	assert.Equal(t, 30*time.Second, cfg.EventTTL)
	assert.Equal(t, "certificate_claims", cfg.KafkaTopic)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("CLAIM_CONFIRM_TIMEOUT", "2m")
	t.Setenv("CACHE_EVENT_TTL", "not-a-duration")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092,")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 2*time.Minute, cfg.ConfirmTimeout)
	assert.Equal(t, 30*time.Second, cfg.EventTTL)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
}

func TestCredentials(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "both set", cfg: Config{SigningKey: "k", RPCURL: "http://node"}},
		{name: "no key", cfg: Config{RPCURL: "http://node"}, wantErr: true},
		{name: "no endpoint", cfg: Config{SigningKey: "k"}, wantErr: true},
		{name: "neither", cfg: Config{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := tt.cfg.Credentials()
			if tt.wantErr {
				require.ErrorIs(t, err, chain.ErrMissingCredentials)
				assert.EqualError(t, err, "Server configuration error: Required environment variables are not set.")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, chain.Credentials{SigningKey: "k", RPCURL: "http://node"}, creds)
		})
	}
}
