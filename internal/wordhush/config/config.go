package config

import (
	"fmt"

	commonconfig "github.com/wordhush/wordhush-bot-go/internal/common/config"
)

// ServerConfig aliases the shared HTTP server settings.
type ServerConfig = commonconfig.ServerConfig

// ServerTuningConfig aliases the shared server tuning settings.
type ServerTuningConfig = commonconfig.ServerTuningConfig

// CommandsConfig aliases the shared command settings.
type CommandsConfig = commonconfig.CommandsConfig

// RedisConfig aliases the shared cache connection settings.
type RedisConfig = commonconfig.RedisConfig

// ValkeyMQConfig aliases the shared message queue settings.
type ValkeyMQConfig = commonconfig.ValkeyMQConfig

// DatabaseConfig aliases the shared Postgres settings.
type DatabaseConfig = commonconfig.DatabaseConfig

// GeminiConfig aliases the shared Gemini API settings.
type GeminiConfig = commonconfig.GeminiConfig

// AccessConfig aliases the shared access control settings.
type AccessConfig = commonconfig.AccessConfig

// LogConfig aliases the shared log rotation settings.
type LogConfig = commonconfig.LogConfig

// AdminConfig lists system administrator user ids.
type AdminConfig struct {
	UserIDs []string
}

// Config is the full bot configuration.
type Config struct {
	Server       ServerConfig
	ServerTuning ServerTuningConfig
	Commands     CommandsConfig
	Redis        RedisConfig
	Valkey       ValkeyMQConfig
	Database     DatabaseConfig
	Gemini       GeminiConfig
	Access       AccessConfig
	Admin        AdminConfig
	Log          LogConfig
}

// LoadFromEnv loads the full bot configuration from the environment.
func LoadFromEnv() (*Config, error) {
	server, err := commonconfig.ReadServerConfigFromEnv(40310)
	if err != nil {
		return nil, fmt.Errorf("read server config failed: %w", err)
	}

	serverTuning, err := commonconfig.ReadServerTuningConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("read server tuning config failed: %w", err)
	}

	commands := CommandsConfig{
		Prefix: commonconfig.StringFromEnvFirstNonEmpty(
			[]string{"WORDHUSH_COMMAND_PREFIX", "COMMAND_PREFIX"},
			"/",
		),
	}

	redisCfg, err := commonconfig.ReadRedisConfigFromEnv(
		[]string{"CACHE_HOST", "REDIS_HOST"},
		[]string{"CACHE_PORT", "REDIS_PORT"},
		[]string{"CACHE_PASSWORD", "REDIS_PASSWORD"},
		[]string{"CACHE_SOCKET_PATH", "REDIS_SOCKET_PATH"},
		"localhost",
		6379,
		"",
	)
	if err != nil {
		return nil, fmt.Errorf("read redis config failed: %w", err)
	}

	valkey, err := readValkeyMQConfig()
	if err != nil {
		return nil, fmt.Errorf("read valkey mq config failed: %w", err)
	}

	database, err := commonconfig.ReadDatabaseConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("read database config failed: %w", err)
	}

	gemini, err := commonconfig.ReadGeminiConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("read gemini config failed: %w", err)
	}

	access, err := commonconfig.ReadAccessConfigFromEnv(commonconfig.AccessConfigEnvOptions{
		EnvPrefix: "WORDHUSH_",
	})
	if err != nil {
		return nil, fmt.Errorf("read access config failed: %w", err)
	}

	admin := AdminConfig{
		UserIDs: commonconfig.StringListFromEnvFirstNonEmpty(
			[]string{"WORDHUSH_ADMIN_USERS", "ADMIN_USERS"},
			nil,
		),
	}

	logCfg, err := commonconfig.ReadLogConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("read log config failed: %w", err)
	}

	return &Config{
		Server:       server,
		ServerTuning: serverTuning,
		Commands:     commands,
		Redis:        redisCfg,
		Valkey:       valkey,
		Database:     database,
		Gemini:       gemini,
		Access:       access,
		Admin:        admin,
		Log:          logCfg,
	}, nil
}

func readValkeyMQConfig() (ValkeyMQConfig, error) {
	return commonconfig.ReadValkeyMQConfigFromEnv(commonconfig.ValkeyMQConfigEnvOptions{
		HostKeys:     []string{"MQ_HOST", "VALKEY_MQ_HOST"},
		PortKeys:     []string{"MQ_PORT", "VALKEY_MQ_PORT"},
		PasswordKeys: []string{"MQ_PASSWORD", "VALKEY_MQ_PASSWORD"},

		TimeoutMillisKeys: []string{"MQ_TIMEOUT", "VALKEY_MQ_TIMEOUT"},
		PoolSizeKeys:      []string{"MQ_CONNECTION_POOL_SIZE", "VALKEY_MQ_CONNECTION_POOL_SIZE"},
		MinIdleKeys:       []string{"MQ_CONNECTION_MIN_IDLE_SIZE", "VALKEY_MQ_CONNECTION_MIN_IDLE_SIZE"},

		ConsumerGroupKeys: []string{"MQ_CONSUMER_GROUP", "VALKEY_MQ_CONSUMER_GROUP"},
		ConsumerNameKeys:  []string{"MQ_CONSUMER_NAME", "VALKEY_MQ_CONSUMER_NAME"},
		ResetConsumerGroupOnStartupKeys: []string{
			"MQ_RESET_CONSUMER_GROUP_ON_STARTUP",
			"VALKEY_MQ_RESET_CONSUMER_GROUP_ON_STARTUP",
		},
		StreamKeyKeys:      []string{"MQ_STREAM_KEY", "VALKEY_MQ_STREAM_KEY"},
		ReplyStreamKeyKeys: []string{"MQ_REPLY_STREAM_KEY", "VALKEY_MQ_REPLY_STREAM_KEY"},
		BatchSizeKeys:      []string{"MQ_BATCH_SIZE", "VALKEY_MQ_BATCH_SIZE"},
		BlockTimeoutMillisKeys: []string{
			"MQ_READ_TIMEOUT_MS",
			"VALKEY_MQ_READ_TIMEOUT_MS",
		},
		ConcurrencyKeys:  []string{"MQ_CONCURRENCY", "VALKEY_MQ_CONCURRENCY"},
		StreamMaxLenKeys: []string{"MQ_STREAM_MAX_LEN", "VALKEY_MQ_STREAM_MAX_LEN"},

		DefaultHost:          "localhost",
		DefaultPort:          6379,
		DefaultPassword:      "",
		DefaultTimeoutMillis: 5000,
		DefaultPoolSize:      64,
		DefaultMinIdle:       10,

		DefaultConsumerGroup:               "wordhush-bot-group",
		DefaultConsumerName:                "consumer-1",
		DefaultResetConsumerGroupOnStartup: false,
		DefaultStreamKey:                   commonconfig.DefaultInboundStreamKey,
		DefaultReplyStreamKey:              commonconfig.DefaultOutboundStreamKey,
		DefaultBatchSize:                   commonconfig.MQBatchSize,
		DefaultBlockTimeoutMillis:          commonconfig.MQReadTimeoutMS,
		DefaultConcurrency:                 commonconfig.MQConsumerConcurrency,
		DefaultStreamMaxLen:                commonconfig.MQStreamMaxLen,
	})
}
