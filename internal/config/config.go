package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey        = "API_PORT"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	jwtSecretEnvKey      = "JWT_SECRET"
	extractorURLEnvKey   = "EXTRACTOR_URL"
	redisAddrEnvKey      = "REDIS_ADDR"
	kafkaBrokersEnvKey   = "KAFKA_BROKERS"
	streamCacheTTLEnvKey = "STREAM_CACHE_TTL"
)

const (
	defaultRedisAddr      = "localhost:6379"
	defaultKafkaBrokers   = "localhost:9092"
	defaultStreamCacheTTL = 30 * time.Minute
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	ExtractorURL    string
	RedisAddr       string
	KafkaBrokers    []string
	StreamCacheTTL  time.Duration
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	extractorURL, ok := os.LookupEnv(extractorURLEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, extractorURLEnvKey)
	}

	ttl := defaultStreamCacheTTL
	if raw, ok := os.LookupEnv(streamCacheTTLEnvKey); ok {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", streamCacheTTLEnvKey, err)
		}
		ttl = parsed
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		ExtractorURL:    extractorURL,
		RedisAddr:       envOrDefault(redisAddrEnvKey, defaultRedisAddr),
		KafkaBrokers:    strings.Split(envOrDefault(kafkaBrokersEnvKey, defaultKafkaBrokers), ","),
		StreamCacheTTL:  ttl,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
