package config

import "time"

// ServerConfig holds the health/ops HTTP server bind address.
type ServerConfig struct {
	Host string
	Port int
}

// ServerTuningConfig holds HTTP server timeouts and limits.
type ServerTuningConfig struct {
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
}

// CommandsConfig holds bot command settings.
type CommandsConfig struct {
	Prefix string // command prefix (ex: "/word")
}

// RedisConfig holds Redis/Valkey cache connection settings.
type RedisConfig struct {
	Host       string
	Port       int
	Password   string
	DB         int
	SocketPath string // UDS path; TCP is used when empty

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	PoolSize     int
	MinIdleConns int
}

// ValkeyMQConfig holds the Valkey Streams message queue settings.
type ValkeyMQConfig struct {
	Host     string
	Port     int
	Password string
	DB       int

	Timeout                     time.Duration
	DialTimeout                 time.Duration
	PoolSize                    int
	MinIdleConns                int
	ConsumerGroup               string
	ConsumerName                string
	ResetConsumerGroupOnStartup bool
	StreamKey                   string // inbound chat events
	ReplyStreamKey              string // outbound reply intents

	BatchSize    int64         // messages per XREADGROUP
	BlockTimeout time.Duration // XREAD block timeout
	Concurrency  int           // concurrent handler workers
	StreamMaxLen int64         // MAXLEN trim threshold
}

// DatabaseConfig holds the relational store (Postgres) connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// GeminiConfig holds Gemini API settings for hint generation.
type GeminiConfig struct {
	APIKeys []string // rotated on auth/quota failures
	Models  []string // tried in order per attempt
	Timeout time.Duration

	RequestsPerMinute int // client-side rate ceiling, 0 disables
}

// AccessConfig holds chat/user allow and block lists.
type AccessConfig struct {
	Enabled        bool
	AllowedChatIDs []string
	BlockedChatIDs []string
	BlockedUserIDs []string
	Passthrough    bool
}

// LogConfig holds file log rotation settings.
type LogConfig struct {
	Dir string // empty disables file output

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}
