package config

import (
	"fmt"
	"strings"
	"time"
)

// ReadServerConfigFromEnv reads the health server host and port.
func ReadServerConfigFromEnv(defaultPort int) (ServerConfig, error) {
	serverPort, err := IntFromEnv("SERVER_PORT", defaultPort)
	if err != nil {
		return ServerConfig{}, fmt.Errorf("read SERVER_PORT failed: %w", err)
	}

	return ServerConfig{
		Host: StringFromEnv("SERVER_HOST", "0.0.0.0"),
		Port: serverPort,
	}, nil
}

// ReadServerTuningConfigFromEnv reads HTTP server timeouts and limits.
func ReadServerTuningConfigFromEnv() (ServerTuningConfig, error) {
	readHeaderTimeout, err := DurationSecondsFromEnv("SERVER_READ_HEADER_TIMEOUT_SECONDS", 5)
	if err != nil {
		return ServerTuningConfig{}, fmt.Errorf(
			"read SERVER_READ_HEADER_TIMEOUT_SECONDS failed: %w",
			err,
		)
	}

	idleTimeout, err := DurationSecondsFromEnv("SERVER_IDLE_TIMEOUT_SECONDS", 90)
	if err != nil {
		return ServerTuningConfig{}, fmt.Errorf("read SERVER_IDLE_TIMEOUT_SECONDS failed: %w", err)
	}

	maxHeaderBytes, err := IntFromEnv("SERVER_MAX_HEADER_BYTES", 1<<20) // 1MiB
	if err != nil {
		return ServerTuningConfig{}, fmt.Errorf("read SERVER_MAX_HEADER_BYTES failed: %w", err)
	}
	if maxHeaderBytes < 0 {
		return ServerTuningConfig{}, fmt.Errorf("invalid SERVER_MAX_HEADER_BYTES: %d", maxHeaderBytes)
	}

	return ServerTuningConfig{
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}, nil
}

// ReadRedisConfigFromEnv reads Redis/Valkey connection settings. Each field
// accepts several env keys and the first non-empty one wins. A socket path,
// when present, selects UDS over TCP.
func ReadRedisConfigFromEnv(
	hostKeys []string,
	portKeys []string,
	passwordKeys []string,
	socketPathKeys []string,
	defaultHost string,
	defaultPort int,
	defaultPassword string,
) (RedisConfig, error) {
	port, err := IntFromEnvFirstNonEmpty(portKeys, defaultPort)
	if err != nil {
		return RedisConfig{}, fmt.Errorf("read redis port failed: %w", err)
	}

	socketPath := StringFromEnvFirstNonEmpty(socketPathKeys, "")

	return RedisConfig{
		Host:       StringFromEnvFirstNonEmpty(hostKeys, defaultHost),
		Port:       port,
		Password:   StringFromEnvFirstNonEmpty(passwordKeys, defaultPassword),
		DB:         0,
		SocketPath: socketPath,

		DialTimeout:  10 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		PoolSize:     64,
		MinIdleConns: 10,
	}, nil
}

// ReadDatabaseConfigFromEnv reads Postgres connection settings.
func ReadDatabaseConfigFromEnv() (DatabaseConfig, error) {
	port, err := IntFromEnv("DB_PORT", 5432)
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("read DB_PORT failed: %w", err)
	}

	maxOpenConns, err := IntFromEnv("DB_MAX_OPEN_CONNS", 16)
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("read DB_MAX_OPEN_CONNS failed: %w", err)
	}

	maxIdleConns, err := IntFromEnv("DB_MAX_IDLE_CONNS", 4)
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("read DB_MAX_IDLE_CONNS failed: %w", err)
	}

	connMaxLifetime, err := DurationSecondsFromEnv("DB_CONN_MAX_LIFETIME_SECONDS", 1800)
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("read DB_CONN_MAX_LIFETIME_SECONDS failed: %w", err)
	}

	return DatabaseConfig{
		Host:     StringFromEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     StringFromEnv("DB_USER", "wordhush"),
		Password: StringFromEnv("DB_PASSWORD", ""),
		Name:     StringFromEnv("DB_NAME", "wordhush"),
		SSLMode:  StringFromEnv("DB_SSLMODE", "disable"),

		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
	}, nil
}

// DSN renders the config as a Postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// ReadGeminiConfigFromEnv reads Gemini API keys, model list and timeouts.
// Keys come from GEMINI_API_KEYS (comma separated) with GEMINI_API_KEY as a
// single-key fallback.
func ReadGeminiConfigFromEnv() (GeminiConfig, error) {
	apiKeys := StringListFromEnv("GEMINI_API_KEYS")
	if len(apiKeys) == 0 {
		if single := StringFromEnv("GEMINI_API_KEY", ""); single != "" {
			apiKeys = []string{single}
		}
	}

	models := StringListFromEnv("GEMINI_MODELS")
	if len(models) == 0 {
		models = []string{"gemini-2.0-flash", "gemini-2.5-flash-lite"}
	}

	timeout, err := DurationSecondsFromEnv("GEMINI_TIMEOUT_SECONDS", 30)
	if err != nil {
		return GeminiConfig{}, fmt.Errorf("read GEMINI_TIMEOUT_SECONDS failed: %w", err)
	}

	requestsPerMinute, err := IntFromEnv("GEMINI_REQUESTS_PER_MINUTE", 30)
	if err != nil {
		return GeminiConfig{}, fmt.Errorf("read GEMINI_REQUESTS_PER_MINUTE failed: %w", err)
	}

	return GeminiConfig{
		APIKeys:           apiKeys,
		Models:            models,
		Timeout:           timeout,
		RequestsPerMinute: requestsPerMinute,
	}, nil
}

// ReadLogConfigFromEnv reads log file output settings. An empty LOG_DIR
// disables file output entirely.
func ReadLogConfigFromEnv() (LogConfig, error) {
	dir := StringFromEnv("LOG_DIR", "")
	if strings.TrimSpace(dir) == "" {
		return LogConfig{Dir: ""}, nil
	}

	maxSizeMB, err := IntFromEnv("LOG_FILE_MAX_SIZE_MB", 1)
	if err != nil {
		return LogConfig{}, fmt.Errorf("read LOG_FILE_MAX_SIZE_MB failed: %w", err)
	}
	if maxSizeMB <= 0 {
		return LogConfig{}, fmt.Errorf("invalid LOG_FILE_MAX_SIZE_MB: %d", maxSizeMB)
	}

	maxBackups, err := IntFromEnv("LOG_FILE_MAX_BACKUPS", 30)
	if err != nil {
		return LogConfig{}, fmt.Errorf("read LOG_FILE_MAX_BACKUPS failed: %w", err)
	}
	if maxBackups <= 0 {
		return LogConfig{}, fmt.Errorf("invalid LOG_FILE_MAX_BACKUPS: %d", maxBackups)
	}

	maxAgeDays, err := IntFromEnv("LOG_FILE_MAX_AGE_DAYS", 7)
	if err != nil {
		return LogConfig{}, fmt.Errorf("read LOG_FILE_MAX_AGE_DAYS failed: %w", err)
	}
	if maxAgeDays <= 0 {
		return LogConfig{}, fmt.Errorf("invalid LOG_FILE_MAX_AGE_DAYS: %d", maxAgeDays)
	}

	compress, err := BoolFromEnv("LOG_FILE_COMPRESS", true)
	if err != nil {
		return LogConfig{}, fmt.Errorf("read LOG_FILE_COMPRESS failed: %w", err)
	}

	return LogConfig{
		Dir:        dir,
		MaxSizeMB:  maxSizeMB,
		MaxBackups: maxBackups,
		MaxAgeDays: maxAgeDays,
		Compress:   compress,
	}, nil
}

// ValkeyMQConfigEnvOptions lists the env keys and defaults used to read a
// ValkeyMQConfig.
type ValkeyMQConfigEnvOptions struct {
	HostKeys     []string
	PortKeys     []string
	PasswordKeys []string

	TimeoutMillisKeys []string
	PoolSizeKeys      []string
	MinIdleKeys       []string

	ConsumerGroupKeys               []string
	ConsumerNameKeys                []string
	ResetConsumerGroupOnStartupKeys []string
	StreamKeyKeys                   []string
	ReplyStreamKeyKeys              []string
	BatchSizeKeys                   []string
	BlockTimeoutMillisKeys          []string
	ConcurrencyKeys                 []string
	StreamMaxLenKeys                []string

	DefaultHost     string
	DefaultPort     int
	DefaultPassword string

	DefaultTimeoutMillis int64
	DefaultPoolSize      int
	DefaultMinIdle       int

	DefaultConsumerGroup               string
	DefaultConsumerName                string
	DefaultResetConsumerGroupOnStartup bool
	DefaultStreamKey                   string
	DefaultReplyStreamKey              string
	DefaultBatchSize                   int64
	DefaultBlockTimeoutMillis          int64
	DefaultConcurrency                 int
	DefaultStreamMaxLen                int64
}

type valkeyMQTuning struct {
	batchSize          int64
	blockTimeoutMillis int64
	concurrency        int
	streamMaxLen       int64
}

func readValkeyMQTuning(opts ValkeyMQConfigEnvOptions) (valkeyMQTuning, error) {
	batchSize, err := Int64FromEnvFirstNonEmpty(opts.BatchSizeKeys, opts.DefaultBatchSize)
	if err != nil {
		return valkeyMQTuning{}, fmt.Errorf("read valkey mq batch size failed: %w", err)
	}

	blockTimeoutMillis, err := Int64FromEnvFirstNonEmpty(
		opts.BlockTimeoutMillisKeys,
		opts.DefaultBlockTimeoutMillis,
	)
	if err != nil {
		return valkeyMQTuning{}, fmt.Errorf("read valkey mq block timeout failed: %w", err)
	}

	concurrency, err := IntFromEnvFirstNonEmpty(opts.ConcurrencyKeys, opts.DefaultConcurrency)
	if err != nil {
		return valkeyMQTuning{}, fmt.Errorf("read valkey mq concurrency failed: %w", err)
	}

	streamMaxLen, err := Int64FromEnvFirstNonEmpty(opts.StreamMaxLenKeys, opts.DefaultStreamMaxLen)
	if err != nil {
		return valkeyMQTuning{}, fmt.Errorf("read valkey mq stream max len failed: %w", err)
	}

	if batchSize <= 0 {
		batchSize = opts.DefaultBatchSize
	}
	if blockTimeoutMillis <= 0 {
		blockTimeoutMillis = opts.DefaultBlockTimeoutMillis
	}
	if concurrency <= 0 {
		concurrency = opts.DefaultConcurrency
	}
	if streamMaxLen <= 0 {
		streamMaxLen = opts.DefaultStreamMaxLen
	}

	return valkeyMQTuning{
		batchSize:          batchSize,
		blockTimeoutMillis: blockTimeoutMillis,
		concurrency:        concurrency,
		streamMaxLen:       streamMaxLen,
	}, nil
}

// ReadValkeyMQConfigFromEnv reads the Valkey Streams message queue settings:
// connection, consumer group, stream keys and tuning parameters.
func ReadValkeyMQConfigFromEnv(opts ValkeyMQConfigEnvOptions) (ValkeyMQConfig, error) {
	port, err := IntFromEnvFirstNonEmpty(opts.PortKeys, opts.DefaultPort)
	if err != nil {
		return ValkeyMQConfig{}, fmt.Errorf("read valkey mq port failed: %w", err)
	}

	timeoutMillis, err := Int64FromEnvFirstNonEmpty(
		opts.TimeoutMillisKeys,
		opts.DefaultTimeoutMillis,
	)
	if err != nil {
		return ValkeyMQConfig{}, fmt.Errorf("read valkey mq timeout failed: %w", err)
	}

	poolSize, err := IntFromEnvFirstNonEmpty(opts.PoolSizeKeys, opts.DefaultPoolSize)
	if err != nil {
		return ValkeyMQConfig{}, fmt.Errorf("read valkey mq pool size failed: %w", err)
	}

	minIdle, err := IntFromEnvFirstNonEmpty(opts.MinIdleKeys, opts.DefaultMinIdle)
	if err != nil {
		return ValkeyMQConfig{}, fmt.Errorf("read valkey mq min idle conns failed: %w", err)
	}

	tuning, err := readValkeyMQTuning(opts)
	if err != nil {
		return ValkeyMQConfig{}, err
	}

	resetGroupOnStartup, err := BoolFromEnvFirstNonEmpty(
		opts.ResetConsumerGroupOnStartupKeys,
		opts.DefaultResetConsumerGroupOnStartup,
	)
	if err != nil {
		return ValkeyMQConfig{}, fmt.Errorf("read valkey mq reset group on startup failed: %w", err)
	}

	timeout := time.Duration(timeoutMillis) * time.Millisecond
	blockTimeout := time.Duration(tuning.blockTimeoutMillis) * time.Millisecond

	return ValkeyMQConfig{
		Host:     StringFromEnvFirstNonEmpty(opts.HostKeys, opts.DefaultHost),
		Port:     port,
		Password: StringFromEnvFirstNonEmpty(opts.PasswordKeys, opts.DefaultPassword),
		DB:       0,

		Timeout:      timeout,
		DialTimeout:  timeout,
		PoolSize:     poolSize,
		MinIdleConns: minIdle,
		ConsumerGroup: StringFromEnvFirstNonEmpty(
			opts.ConsumerGroupKeys,
			opts.DefaultConsumerGroup,
		),
		ConsumerName: StringFromEnvFirstNonEmpty(
			opts.ConsumerNameKeys,
			opts.DefaultConsumerName,
		),
		ResetConsumerGroupOnStartup: resetGroupOnStartup,
		StreamKey: StringFromEnvFirstNonEmpty(
			opts.StreamKeyKeys,
			opts.DefaultStreamKey,
		),
		ReplyStreamKey: StringFromEnvFirstNonEmpty(
			opts.ReplyStreamKeyKeys,
			opts.DefaultReplyStreamKey,
		),
		BatchSize:    tuning.batchSize,
		BlockTimeout: blockTimeout,
		Concurrency:  tuning.concurrency,
		StreamMaxLen: tuning.streamMaxLen,
	}, nil
}

// AccessConfigEnvOptions lists the env prefix and defaults for access control.
type AccessConfigEnvOptions struct {
	EnvPrefix string

	DefaultEnabled     bool
	DefaultPassthrough bool

	DefaultAllowedChatIDs []string
}

// ReadAccessConfigFromEnv reads chat/user allow and block lists plus the
// passthrough flag.
func ReadAccessConfigFromEnv(opts AccessConfigEnvOptions) (AccessConfig, error) {
	prefix := opts.EnvPrefix

	enabled, err := BoolFromEnvFirstNonEmpty([]string{
		prefix + "ACCESS_ENABLED",
		"ACCESS_ENABLED",
	}, opts.DefaultEnabled)
	if err != nil {
		return AccessConfig{}, fmt.Errorf("read ACCESS_ENABLED failed: %w", err)
	}

	passthrough, err := BoolFromEnvFirstNonEmpty([]string{
		prefix + "ACCESS_PASSTHROUGH",
		"ACCESS_PASSTHROUGH",
	}, opts.DefaultPassthrough)
	if err != nil {
		return AccessConfig{}, fmt.Errorf("read ACCESS_PASSTHROUGH failed: %w", err)
	}

	allowedChatIDs := StringListFromEnvFirstNonEmpty([]string{
		prefix + "ALLOWED_CHAT_IDS",
		"ALLOWED_CHAT_IDS",
	}, opts.DefaultAllowedChatIDs)

	blockedChatIDs := StringListFromEnvFirstNonEmpty([]string{
		prefix + "BLOCKED_CHAT_IDS",
		"BLOCKED_CHAT_IDS",
	}, nil)

	blockedUserIDs := StringListFromEnvFirstNonEmpty([]string{
		prefix + "BLOCKED_USER_IDS",
		"BLOCKED_USER_IDS",
	}, nil)

	return AccessConfig{
		Enabled:        enabled,
		AllowedChatIDs: allowedChatIDs,
		BlockedChatIDs: blockedChatIDs,
		BlockedUserIDs: blockedUserIDs,
		Passthrough:    passthrough,
	}, nil
}
