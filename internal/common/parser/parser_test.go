package parser

import "testing"

func TestNewBaseParser_PrefixFallback(t *testing.T) {
	p := NewBaseParser("  ", "/")
	if p.Prefix != "/" {
		t.Errorf("Prefix = %q, want /", p.Prefix)
	}

	p = NewBaseParser("!bot", "/")
	if p.Prefix != "!bot" {
		t.Errorf("Prefix = %q, want !bot", p.Prefix)
	}
}

func TestTrimMessage(t *testing.T) {
	p := NewBaseParser("/", "/")

	tests := []struct {
		input string
		want  string
	}{
		{"  /help  ", "/help"},
		{"/help", "/help"},
		{"help", ""},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := p.TrimMessage(tt.input); got != tt.want {
			t.Errorf("TrimMessage(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildPattern_EscapesPrefix(t *testing.T) {
	// A prefix with regex metacharacters must match literally.
	p := NewBaseParser("$.", "/")
	re := p.BuildPattern(`help$`)
	if !re.MatchString("$.help") {
		t.Error("pattern should match the literal prefix")
	}
	if re.MatchString("xhelp") {
		t.Error("pattern matched without the prefix")
	}
}

func TestBuildPatternCaseInsensitive(t *testing.T) {
	p := NewBaseParser("/", "/")
	re := p.BuildPatternCaseInsensitive(`help\s*$`)
	for _, input := range []string{"/help", "/HELP", "/Help"} {
		if !MatchSimple(re, input) {
			t.Errorf("pattern should match %q", input)
		}
	}
}

func TestExtractFirstGroup(t *testing.T) {
	p := NewBaseParser("/", "/")
	re := p.BuildPatternCaseInsensitive(`new(?:\s+(\S+))?\s*$`)

	if got := ExtractFirstGroup(re, "/new easy"); got != "easy" {
		t.Errorf("ExtractFirstGroup = %q, want easy", got)
	}
	if got := ExtractFirstGroup(re, "/new"); got != "" {
		t.Errorf("ExtractFirstGroup = %q, want empty", got)
	}
}
