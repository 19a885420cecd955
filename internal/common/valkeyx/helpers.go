package valkeyx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"
)

// BuildKey joins a prefix and one id: {prefix}:{id}
func BuildKey(prefix, id string) string {
	return fmt.Sprintf("%s:%s", prefix, strings.TrimSpace(id))
}

// BuildKey2 joins a prefix and two ids: {prefix}:{id1}:{id2}
func BuildKey2(prefix, id1, id2 string) string {
	return fmt.Sprintf("%s:%s:%s", prefix, strings.TrimSpace(id1), strings.TrimSpace(id2))
}

// GetBytes reads a string key as raw bytes.
// The second return value is false when the key does not exist.
func GetBytes(ctx context.Context, client valkey.Client, key string) ([]byte, bool, error) {
	cmd := client.B().Get().Key(key).Build()
	raw, err := client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if IsNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

// GetString reads a string key.
// The second return value is false when the key does not exist.
func GetString(ctx context.Context, client valkey.Client, key string) (string, bool, error) {
	raw, ok, err := GetBytes(ctx, client, key)
	if err != nil || !ok {
		return "", ok, err
	}
	return string(raw), true, nil
}

// SetString writes a string value without expiry.
func SetString(ctx context.Context, client valkey.Client, key string, value string) error {
	cmd := client.B().Set().Key(key).Value(value).Build()
	return client.Do(ctx, cmd).Error()
}

// SetStringEX writes a string value with a TTL. A non-positive TTL stores
// the value without expiry.
func SetStringEX(ctx context.Context, client valkey.Client, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return SetString(ctx, client, key, value)
	}
	cmd := client.B().Set().Key(key).Value(value).Ex(ttl).Build()
	return client.Do(ctx, cmd).Error()
}

// DeleteKeys removes the given keys in a single DEL.
func DeleteKeys(ctx context.Context, client valkey.Client, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	cmd := client.B().Del().Key(keys...).Build()
	return client.Do(ctx, cmd).Error()
}

// IsBusyGroup reports whether err is the BUSYGROUP response from
// XGROUP CREATE on an existing group.
func IsBusyGroup(err error) bool {
	return err != nil && strings.Contains(err.Error(), "BUSYGROUP")
}

// Exists reports whether key is present.
func Exists(ctx context.Context, client valkey.Client, key string) (bool, error) {
	cmd := client.B().Exists().Key(key).Build()
	n, err := client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
