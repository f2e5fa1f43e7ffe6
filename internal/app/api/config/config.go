package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"verichain/internal/chain"
	"verichain/internal/kafka"
)

// Config captures runtime configuration for the API service.
type Config struct {
	Port            string
	Stage           string
	SigningKey      string
	RPCURL          string
	ContractAddress string
	ConfirmTimeout  time.Duration
	RedisAddr       string
	CertificateTTL  time.Duration
	EventTTL        time.Duration
	KafkaTopic      string
	KafkaBrokers    []string
}

// Load reads environment variables with sensible defaults. A .env file in the
// working directory is honored when present. Missing chain credentials are not
// an error here; claims fail with a configuration error instead.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:            getEnv("PORT", "8080"),
		Stage:           getEnv("STAGE", "dev"),
		SigningKey:      os.Getenv("DISTRIBUTOR_PRIVATE_KEY"),
		RPCURL:          os.Getenv("SEPOLIA_RPC_URL"),
		ContractAddress: getEnv("CONTRACT_ADDRESS", chain.DefaultContractAddress),
		ConfirmTimeout:  getDuration("CLAIM_CONFIRM_TIMEOUT", 0),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		CertificateTTL:  getDuration("CACHE_CERTIFICATE_TTL", 24*time.Hour),
		EventTTL:        getDuration("CACHE_EVENT_TTL", 30*time.Second),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "certificate_claims"),
		KafkaBrokers:    kafka.ParseBrokers(os.Getenv("KAFKA_BROKERS")),
	}
}

// Credentials implements chain.CredentialSource.
func (c Config) Credentials() (chain.Credentials, error) {
	return chain.StaticCredentials{SigningKey: c.SigningKey, RPCURL: c.RPCURL}.Credentials()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
