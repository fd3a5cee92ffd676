package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey     = "API_PORT"
	dbConnEnvKey      = "DB_CONNECTION_URL"
	jwtSecretEnvKey   = "JWT_SECRET"
	openAIKeyEnvKey   = "OPENAI_API_KEY"
	openAIModelEnvKey = "OPENAI_MODEL"

	mainnetURLEnvKey = "SUI_MAINNET_URL"
	testnetURLEnvKey = "SUI_TESTNET_URL"
	devnetURLEnvKey  = "SUI_DEVNET_URL"

	batchSizeEnvKey     = "BATCH_SIZE"
	maxConcurrentEnvKey = "MAX_CONCURRENT_REQUESTS"
	requestDelayEnvKey  = "REQUEST_DELAY_MS"
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string

	OpenAIKey   string
	OpenAIModel string

	// Fullnode endpoints keyed by network name.
	Endpoints map[string]string

	BatchSize     int
	MaxConcurrent int
	RequestDelay  time.Duration

	TransactionCacheTTL time.Duration
	TaxRatesCacheTTL    time.Duration
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

	// The AI key is optional: without it the analyzer falls back to the
	// deterministic classifier, rate table and advice templates.
	openAIKey := os.Getenv(openAIKeyEnvKey)
	openAIModel := os.Getenv(openAIModelEnvKey)
	if openAIModel == "" {
		openAIModel = "gpt-4o-mini"
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		OpenAIKey:       openAIKey,
		OpenAIModel:     openAIModel,
		Endpoints: map[string]string{
			"mainnet": envOrDefault(mainnetURLEnvKey, "https://fullnode.mainnet.sui.io:443"),
			"testnet": envOrDefault(testnetURLEnvKey, "https://fullnode.testnet.sui.io:443"),
			"devnet":  envOrDefault(devnetURLEnvKey, "https://fullnode.devnet.sui.io:443"),
		},
		BatchSize:           intOrDefault(batchSizeEnvKey, 50),
		MaxConcurrent:       intOrDefault(maxConcurrentEnvKey, 20),
		RequestDelay:        time.Duration(intOrDefault(requestDelayEnvKey, 100)) * time.Millisecond,
		TransactionCacheTTL: time.Hour,
		TaxRatesCacheTTL:    24 * time.Hour,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func intOrDefault(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
