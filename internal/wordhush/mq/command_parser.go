package mq

import (
	"regexp"
	"strings"

	"github.com/wordhush/wordhush-bot-go/internal/common/parser"
)

// CommandParser extracts game commands from chat messages with regex
// patterns anchored to the configured prefix.
type CommandParser struct {
	parser.BaseParser

	newGameRe     *regexp.Regexp
	endGameRe     *regexp.Regexp
	helpRe        *regexp.Regexp
	leaderboardRe *regexp.Regexp
	scoreRe       *regexp.Regexp
}

// NewCommandParser creates a CommandParser for the prefix.
func NewCommandParser(prefix string) *CommandParser {
	base := parser.NewBaseParser(prefix, "/")
	p := &CommandParser{BaseParser: base}

	p.newGameRe = p.BuildPatternCaseInsensitive(`(?:newword|newhush)(?:\s+(\S+))?\s*$`)
	p.endGameRe = p.BuildPatternCaseInsensitive(`(?:endword|endhush)\s*$`)
	p.helpRe = p.BuildPatternCaseInsensitive(`help\s*$`)
	p.leaderboardRe = p.BuildPatternCaseInsensitive(`leaderboard\s*$`)
	p.scoreRe = p.BuildPatternCaseInsensitive(`score\s*$`)

	return p
}

// Parse resolves a command from the message. Returns nil for anything that
// is not a command for this bot, so plain chat can flow to guess handling.
func (p *CommandParser) Parse(message string) *Command {
	text := p.TrimMessage(message)
	if text == "" {
		return nil
	}

	if m := p.newGameRe.FindStringSubmatch(text); m != nil {
		levelArg := ""
		if len(m) >= 2 {
			levelArg = strings.TrimSpace(m[1])
		}
		return &Command{Kind: CommandNewGame, LevelArg: levelArg}
	}
	if parser.MatchSimple(p.endGameRe, text) {
		return &Command{Kind: CommandEndGame}
	}
	if parser.MatchSimple(p.helpRe, text) {
		return &Command{Kind: CommandHelp}
	}
	if parser.MatchSimple(p.leaderboardRe, text) {
		return &Command{Kind: CommandLeaderboard}
	}
	if parser.MatchSimple(p.scoreRe, text) {
		return &Command{Kind: CommandScore}
	}

	// Prefixed but unrecognized: stays a non-command so it is never scored
	// as a guess (guess handling skips slash-prefixed text) and never
	// answered, matching how unknown slash commands are ignored.
	return nil
}

// ParseCallback resolves an inline button payload.
func ParseCallback(data string) Callback {
	data = strings.TrimSpace(data)

	if level, ok := strings.CutPrefix(data, "difficulty_"); ok {
		return Callback{Kind: CallbackDifficulty, Arg: level}
	}
	if data == "reveal_hint" {
		return Callback{Kind: CallbackRevealHint}
	}
	if data == "reveal_letter" {
		return Callback{Kind: CallbackRevealLetter}
	}

	action, arg, _ := strings.Cut(data, " ")
	arg = strings.TrimSpace(arg)
	switch action {
	case "confirm_reveal":
		if arg != "" {
			return Callback{Kind: CallbackConfirmReveal, Arg: arg}
		}
	case "cancel_reveal":
		if arg != "" {
			return Callback{Kind: CallbackCancelReveal, Arg: arg}
		}
	case "vote_end":
		if arg != "" {
			return Callback{Kind: CallbackVoteEnd, Arg: arg}
		}
	}

	return Callback{Kind: CallbackUnknown}
}
