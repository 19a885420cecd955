package config

// Chat message constants.
const (
	// MessageMaxLength caps outbound chat message length.
	MessageMaxLength = 4000
)

// Shared MQ constants.
const (
	// MQBatchSize is the default message queue batch size.
	MQBatchSize = 5
	// MQReadTimeoutMS is the default queue read timeout in milliseconds.
	MQReadTimeoutMS = 5000
	// MQConsumerConcurrency is the default consumer worker count.
	MQConsumerConcurrency = 5
	// MQStreamMaxLen is the default stream MAXLEN trim threshold.
	MQStreamMaxLen = 1000
)

// Stream key constants.
const (
	// DefaultOutboundStreamKey is the bot reply stream key.
	DefaultOutboundStreamKey = "wordhush:bot:reply"
	// DefaultInboundStreamKey is the chat event stream key.
	DefaultInboundStreamKey = "wordhush:bot:events"
)
