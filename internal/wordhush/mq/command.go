// Package mq routes inbound chat events through the game: it parses
// commands and button callbacks, serializes work per chat, runs the game
// service and publishes the resulting reply intents.
package mq

// CommandKind identifies a parsed chat command.
type CommandKind string

// Command kinds.
const (
	CommandNewGame     CommandKind = "new_game"
	CommandEndGame     CommandKind = "end_game"
	CommandHelp        CommandKind = "help"
	CommandLeaderboard CommandKind = "leaderboard"
	CommandScore       CommandKind = "score"
	CommandUnknown     CommandKind = "unknown"
)

// Command is a parsed chat command.
type Command struct {
	Kind CommandKind

	// LevelArg is the raw difficulty argument of a new-game command, empty
	// when the user wants the difficulty picker.
	LevelArg string
}

// CallbackKind identifies a parsed inline button press.
type CallbackKind string

// Callback kinds.
const (
	CallbackDifficulty    CallbackKind = "difficulty"
	CallbackRevealHint    CallbackKind = "reveal_hint"
	CallbackRevealLetter  CallbackKind = "reveal_letter"
	CallbackConfirmReveal CallbackKind = "confirm_reveal"
	CallbackCancelReveal  CallbackKind = "cancel_reveal"
	CallbackVoteEnd       CallbackKind = "vote_end"
	CallbackUnknown       CallbackKind = "unknown"
)

// Callback is a parsed inline button press. Arg carries the payload after
// the action name: a difficulty, a user id or a chat id.
type Callback struct {
	Kind CallbackKind
	Arg  string
}
