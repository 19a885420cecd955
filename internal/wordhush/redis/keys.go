// Package redis defines the word game's Valkey key builders and stores.
package redis

import (
	"github.com/wordhush/wordhush-bot-go/internal/common/valkeyx"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
)

// gameKey builds the session slot key: wordhush:game:{chatID}
func gameKey(chatID string) string {
	return valkeyx.BuildKey(whconfig.RedisKeyGamePrefix, chatID)
}

// historyKey builds the used-word set key: wordhush:history:{chatID}
func historyKey(chatID string) string {
	return valkeyx.BuildKey(whconfig.RedisKeyHistoryPrefix, chatID)
}

// voteKey builds the termination vote key: wordhush:vote:{chatID}
func voteKey(chatID string) string {
	return valkeyx.BuildKey(whconfig.RedisKeyVotePrefix, chatID)
}

// latestMsgKey builds the last-seen-message key: wordhush:msg:{chatID}
func latestMsgKey(chatID string) string {
	return valkeyx.BuildKey(whconfig.RedisKeyLatestMsgPrefix, chatID)
}

// hintRateLimitKey builds the per-user attempt window key:
// wordhush:ratelimit:hint:{userID}
func hintRateLimitKey(userID string) string {
	return valkeyx.BuildKey(whconfig.RedisKeyHintRateLimit, userID)
}

// hintBlockedKey builds the per-user spam block key:
// wordhush:blocked:hint:{userID}
func hintBlockedKey(userID string) string {
	return valkeyx.BuildKey(whconfig.RedisKeyHintBlockedPrefix, userID)
}
