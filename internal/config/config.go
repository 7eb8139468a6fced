package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/base-org/forcer/internal/alert"
	"github.com/base-org/forcer/internal/api/server"
	"github.com/base-org/forcer/internal/client"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/inbox"
	"github.com/base-org/forcer/internal/inclusion"
	"github.com/base-org/forcer/internal/logging"
	"github.com/base-org/forcer/internal/metrics"
	"github.com/base-org/forcer/internal/subsystem"
	"github.com/ethereum/go-ethereum/common"

	"github.com/joho/godotenv"
)

// TrueEnvVal ... Represents the encoded string value for true (ie. 1)
const trueEnvVal = "1"

const (
	defaultLogQueryRange   = 10_000
	defaultAttemptCapacity = 256
)

// Config ... Application level configuration defined by `FilePath` value
type Config struct {
	Environment core.Env
	Network     NetworkPreset

	// SignerKey is the hex encoded private key of the force inclusion sender
	SignerKey string
	// AttemptCapacity bounds the in-memory attempt history
	AttemptCapacity int

	ClientConfig    *client.Config
	InboxConfig     *inbox.Config
	SubmitterConfig *inclusion.SubmitterConfig
	AlertConfig     *alert.Config
	SystemConfig    *subsystem.Config
	ServerConfig    *server.Config
	MetricsConfig   *metrics.Config
	LoggerConfig    *logging.Config
}

// NewConfig ... Initializer
func NewConfig(fileName core.FilePath) *Config {
	if err := godotenv.Load(string(fileName)); err != nil {
		log.Fatalf("config file not found for file: %s", fileName)
	}

	network, err := PresetFor(getEnvStrWithDefault("NETWORK", Arb1))
	if err != nil {
		log.Fatalf("invalid network: %s", err.Error())
	}
	network.BridgeAddress = getEnvAddressWithDefault("BRIDGE_ADDRESS", network.BridgeAddress)
	network.SequencerInboxAddress = getEnvAddressWithDefault("SEQUENCER_INBOX_ADDRESS",
		network.SequencerInboxAddress)
	network.DeployBlock = getEnvUint64WithDefault("BRIDGE_DEPLOY_BLOCK", network.DeployBlock)

	config := &Config{
		Environment:     core.Env(getEnvStr("ENV")),
		Network:         network,
		SignerKey:       getEnvStrWithDefault("SIGNER_PRIVATE_KEY", ""),
		AttemptCapacity: getEnvIntWithDefault("ATTEMPT_HISTORY_CAPACITY", defaultAttemptCapacity),

		ClientConfig: &client.Config{
			L1RpcEndpoint: getEnvStr("L1_RPC_ENDPOINT"),
			L2RpcEndpoint: getEnvStr("L2_RPC_ENDPOINT"),
		},

		InboxConfig: &inbox.Config{
			BridgeAddress:         network.BridgeAddress,
			SequencerInboxAddress: network.SequencerInboxAddress,
			DeployBlock:           network.DeployBlock,
			LogQueryRange:         getEnvUint64WithDefault("LOG_QUERY_BLOCK_RANGE", defaultLogQueryRange),
			Threshold:             getThresholdOverride(),
		},

		SubmitterConfig: &inclusion.SubmitterConfig{
			SequencerInboxAddress: network.SequencerInboxAddress,
			GasBufferPercent:      getEnvUint64WithDefault("GAS_BUFFER_PERCENT", 20),
			DryRun:                getEnvBoolWithDefault("DRY_RUN", false),
			Confirmation: &core.RetryConfig{
				MaxAttempts:     getEnvUint64WithDefault("CONFIRMATION_MAX_ATTEMPTS", 12),
				InitialInterval: getEnvMillisWithDefault("CONFIRMATION_INITIAL_INTERVAL_MS", time.Second),
				MaxInterval:     getEnvMillisWithDefault("CONFIRMATION_MAX_INTERVAL_MS", 20*time.Second),
			},
		},

		AlertConfig: &alert.Config{
			SlackURL: getEnvStrWithDefault("SLACK_URL", ""),
			PagerDuty: &client.PagerDutyConfig{
				IntegrationKey: getEnvStrWithDefault("PAGERDUTY_INTEGRATION_KEY", ""),
				AlertEventsURL: getEnvStrWithDefault("PAGERDUTY_ALERT_EVENTS_URL", client.DefaultPagerDutyEventsURL),
			},
			SNS: &client.SNSConfig{
				TopicArn: getEnvStrWithDefault("SNS_TOPIC_ARN", ""),
				Endpoint: getEnvStrWithDefault("AWS_ENDPOINT", ""),
			},
			CoolDown: time.Duration(getEnvIntWithDefault("ALERT_COOLDOWN_SECONDS", 600)) * time.Second,
		},

		SystemConfig: &subsystem.Config{
			LoopInterval: time.Duration(getEnvIntWithDefault("LOOP_INTERVAL_SECONDS", 0)) * time.Second,
			Wait:         getEnvBoolWithDefault("LOOP_WAIT", true),
		},

		MetricsConfig: &metrics.Config{
			Host:              getEnvStr("METRICS_HOST"),
			Port:              getEnvInt("METRICS_PORT"),
			Enabled:           getEnvBool("ENABLE_METRICS"),
			ReadHeaderTimeout: getEnvInt("METRICS_READ_HEADER_TIMEOUT"),
		},

		ServerConfig: &server.Config{
			Host:            getEnvStr("SERVER_HOST"),
			Port:            getEnvInt("SERVER_PORT"),
			KeepAlive:       getEnvInt("SERVER_KEEP_ALIVE_TIME"),
			ReadTimeout:     getEnvInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:    getEnvInt("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: getEnvInt("SERVER_SHUTDOWN_TIME"),
		},

		LoggerConfig: &logging.Config{
			UseCustom:         getEnvBoolWithDefault("LOGGER_USE_CUSTOM", false),
			Level:             getEnvIntWithDefault("LOGGER_LEVEL", 0),
			DisableCaller:     getEnvBoolWithDefault("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBoolWithDefault("LOGGER_DISABLE_STACKTRACE", false),
			Encoding:          getEnvStrWithDefault("LOGGER_ENCODING", "json"),
			OutputPaths:       getEnvListWithDefault("LOGGER_OUTPUT_PATHS", []string{"stdout"}),
			ErrorOutputPaths:  getEnvListWithDefault("LOGGER_ERROR_OUTPUT_PATHS", []string{"stderr"}),
		},
	}

	return config
}

// Validate ... Ensures the configured deployment can be read and forced
func (cfg *Config) Validate() error {
	if cfg.Network.BridgeAddress == (common.Address{}) {
		return fmt.Errorf("bridge address is not set for network %s", cfg.Network.Name)
	}

	if cfg.Network.SequencerInboxAddress == (common.Address{}) {
		return fmt.Errorf("sequencer inbox address is not set for network %s", cfg.Network.Name)
	}

	if cfg.SignerKey == "" && !cfg.SubmitterConfig.DryRun {
		return fmt.Errorf("SIGNER_PRIVATE_KEY is required unless DRY_RUN is set")
	}

	return nil
}

// IsProduction ... Returns true if the env is production
func (cfg *Config) IsProduction() bool {
	return cfg.Environment == core.Production
}

// IsDevelopment ... Returns true if the env is development
func (cfg *Config) IsDevelopment() bool {
	return cfg.Environment == core.Development
}

// IsLocal ... Returns true if the env is local
func (cfg *Config) IsLocal() bool {
	return cfg.Environment == core.Local
}

// getThresholdOverride ... Returns a threshold when both delay bounds are configured,
// nil to read maxTimeVariation from the sequencer inbox
func getThresholdOverride() *core.InclusionThreshold {
	blocks := getEnvUint64WithDefault("MAX_DELAY_BLOCKS", 0)
	seconds := getEnvUint64WithDefault("MAX_DELAY_SECONDS", 0)

	if blocks == 0 && seconds == 0 {
		return nil
	}

	if blocks == 0 || seconds == 0 {
		log.Fatalf("MAX_DELAY_BLOCKS and MAX_DELAY_SECONDS must be set together")
	}

	return &core.InclusionThreshold{
		MaxBlockDelay: blocks,
		MaxTimeDelay:  seconds,
	}
}

// getEnvStr ... Reads env var from process environment, panics if not found
func getEnvStr(key string) string {
	envVar, ok := os.LookupEnv(key)

	// Not found
	if !ok {
		log.Fatalf("could not find env var given key: %s", key)
	}

	return envVar
}

// getEnvStrWithDefault ... Reads env var from process environment, returns default if not found
func getEnvStrWithDefault(key string, defaultValue string) string {
	envVar, ok := os.LookupEnv(key)

	// Not found
	if !ok || envVar == "" {
		return defaultValue
	}

	return envVar
}

// getEnvBool ... Reads env vars and converts to booleans
func getEnvBool(key string) bool {
	return getEnvStr(key) == trueEnvVal
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	envVar, ok := os.LookupEnv(key)
	if !ok || envVar == "" {
		return defaultValue
	}

	return envVar == trueEnvVal
}

// getEnvInt ... Reads env vars and converts to int
func getEnvInt(key string) int {
	val := getEnvStr(key)
	intRep, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("env val is not int; got: %s=%s; err: %s", key, val, err.Error())
	}
	return intRep
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if getEnvStrWithDefault(key, "") == "" {
		return defaultValue
	}

	return getEnvInt(key)
}

// getEnvUint64WithDefault ... Reads env vars and converts to uint64, returns default if not found
func getEnvUint64WithDefault(key string, defaultValue uint64) uint64 {
	val := getEnvStrWithDefault(key, "")
	if val == "" {
		return defaultValue
	}

	uintRep, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		log.Fatalf("env val is not uint64; got: %s=%s; err: %s", key, val, err.Error())
	}
	return uintRep
}

func getEnvMillisWithDefault(key string, defaultValue time.Duration) time.Duration {
	ms := getEnvUint64WithDefault(key, 0)
	if ms == 0 {
		return defaultValue
	}

	return time.Duration(ms) * time.Millisecond
}

func getEnvAddressWithDefault(key string, defaultValue common.Address) common.Address {
	val := getEnvStrWithDefault(key, "")
	if val == "" {
		return defaultValue
	}

	if !common.IsHexAddress(val) {
		log.Fatalf("env val is not an address; got: %s=%s", key, val)
	}
	return common.HexToAddress(val)
}

// getEnvListWithDefault ... Reads a comma separated list
func getEnvListWithDefault(key string, defaultValue []string) []string {
	val := getEnvStrWithDefault(key, "")
	if val == "" {
		return defaultValue
	}

	return strings.Split(val, ",")
}
