package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// StringFromEnv reads a string env var, falling back to defaultValue.
func StringFromEnv(key string, defaultValue string) string {
	rawValue, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	rawValue = strings.TrimSpace(rawValue)
	if rawValue == "" {
		return defaultValue
	}
	return rawValue
}

// StringFromEnvFirstNonEmpty returns the first non-empty value among keys.
func StringFromEnvFirstNonEmpty(keys []string, defaultValue string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return defaultValue
}

// IntFromEnv reads an integer env var.
func IntFromEnv(key string, defaultValue int) (int, error) {
	rawValue, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue, nil
	}

	rawValue = strings.TrimSpace(rawValue)
	if rawValue == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(rawValue)
	if err != nil {
		return 0, fmt.Errorf("invalid int env %s=%q: %w", key, rawValue, err)
	}

	return value, nil
}

// Int64FromEnv reads a 64-bit integer env var.
func Int64FromEnv(key string, defaultValue int64) (int64, error) {
	rawValue, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue, nil
	}

	rawValue = strings.TrimSpace(rawValue)
	if rawValue == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseInt(rawValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int64 env %s=%q: %w", key, rawValue, err)
	}

	return value, nil
}

// BoolFromEnv reads a boolean env var.
func BoolFromEnv(key string, defaultValue bool) (bool, error) {
	rawValue, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue, nil
	}

	rawValue = strings.TrimSpace(rawValue)
	if rawValue == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseBool(rawValue)
	if err != nil {
		return false, fmt.Errorf("invalid bool env %s=%q: %w", key, rawValue, err)
	}

	return value, nil
}

// DurationSecondsFromEnv reads a second count and converts it to a Duration.
func DurationSecondsFromEnv(key string, defaultSeconds int64) (time.Duration, error) {
	valueSeconds, err := Int64FromEnv(key, defaultSeconds)
	if err != nil {
		return 0, err
	}
	if valueSeconds < 0 {
		return 0, fmt.Errorf("invalid duration seconds env %s=%d", key, valueSeconds)
	}
	return time.Duration(valueSeconds) * time.Second, nil
}

// IntFromEnvFirstNonEmpty reads the first non-empty integer among keys.
func IntFromEnvFirstNonEmpty(keys []string, defaultValue int) (int, error) {
	for _, key := range keys {
		rawValue := strings.TrimSpace(os.Getenv(key))
		if rawValue == "" {
			continue
		}
		value, err := strconv.Atoi(rawValue)
		if err != nil {
			return 0, fmt.Errorf("invalid int env %s=%q: %w", key, rawValue, err)
		}
		return value, nil
	}
	return defaultValue, nil
}

// Int64FromEnvFirstNonEmpty reads the first non-empty 64-bit integer among keys.
func Int64FromEnvFirstNonEmpty(keys []string, defaultValue int64) (int64, error) {
	for _, key := range keys {
		rawValue := strings.TrimSpace(os.Getenv(key))
		if rawValue == "" {
			continue
		}
		value, err := strconv.ParseInt(rawValue, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid int64 env %s=%q: %w", key, rawValue, err)
		}
		return value, nil
	}
	return defaultValue, nil
}

// BoolFromEnvFirstNonEmpty reads the first non-empty boolean among keys.
func BoolFromEnvFirstNonEmpty(keys []string, defaultValue bool) (bool, error) {
	for _, key := range keys {
		rawValue := strings.TrimSpace(os.Getenv(key))
		if rawValue == "" {
			continue
		}
		value, err := strconv.ParseBool(rawValue)
		if err != nil {
			return false, fmt.Errorf("invalid bool env %s=%q: %w", key, rawValue, err)
		}
		return value, nil
	}
	return defaultValue, nil
}

// StringListFromEnv reads a comma-separated list, trimming blanks.
func StringListFromEnv(key string) []string {
	rawValue := strings.TrimSpace(os.Getenv(key))
	if rawValue == "" {
		return nil
	}

	parts := strings.Split(rawValue, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// StringListFromEnvFirstNonEmpty returns the first non-empty list among keys.
func StringListFromEnvFirstNonEmpty(keys []string, defaultValue []string) []string {
	for _, key := range keys {
		if list := StringListFromEnv(key); len(list) > 0 {
			return list
		}
	}
	return defaultValue
}
