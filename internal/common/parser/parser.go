// Package parser is the shared base for regex command parsers.
package parser

import (
	"regexp"
	"strings"
)

// BaseParser holds the command prefix and its regex-escaped form. Domain
// parsers embed it.
type BaseParser struct {
	Prefix        string
	EscapedPrefix string
}

// NewBaseParser creates a base parser, falling back to defaultPrefix when
// prefix is blank.
func NewBaseParser(prefix string, defaultPrefix string) BaseParser {
	p := strings.TrimSpace(prefix)
	if p == "" {
		p = defaultPrefix
	}
	return BaseParser{
		Prefix:        p,
		EscapedPrefix: regexp.QuoteMeta(p),
	}
}

// HasPrefix reports whether text starts with the command prefix.
func (b *BaseParser) HasPrefix(text string) bool {
	return strings.HasPrefix(text, b.Prefix)
}

// TrimMessage trims the message and returns it only when it carries the
// command prefix; otherwise returns "".
func (b *BaseParser) TrimMessage(message string) string {
	text := strings.TrimSpace(message)
	if text == "" {
		return ""
	}
	if !b.HasPrefix(text) {
		return ""
	}
	return text
}

// BuildPattern compiles an anchored pattern that starts with the prefix.
func (b *BaseParser) BuildPattern(pattern string) *regexp.Regexp {
	return regexp.MustCompile("^" + b.EscapedPrefix + pattern)
}

// BuildPatternCaseInsensitive compiles a case-insensitive anchored pattern.
func (b *BaseParser) BuildPatternCaseInsensitive(pattern string) *regexp.Regexp {
	return regexp.MustCompile("(?i)^" + b.EscapedPrefix + pattern)
}

// MatchSimple reports whether the pattern matches.
func MatchSimple(re *regexp.Regexp, text string) bool {
	return re.MatchString(text)
}

// ExtractFirstGroup returns the first capture group, "" when absent.
func ExtractFirstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
