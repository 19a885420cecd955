// Package messages lists the message catalog keys for the word game.
package messages

// Game start keys.
const (
	StartWaiting           = "start.waiting"
	StartChooseDifficulty  = "start.choose_difficulty"
	StartInvalidDifficulty = "start.invalid_difficulty"
	StartAlreadyActive     = "start.already_active"
	StartStarted           = "start.started"
	StartFailed            = "start.failed"
	StartTopicNotAllowed   = "start.topic_not_allowed"
)

// Hint reveal keys.
const (
	HintHeader       = "hint.header"
	HintLetterLine   = "hint.letter_line"
	HintLine         = "hint.line"
	HintNoMore       = "hint.no_more"
	HintBlocked      = "hint.blocked"
	HintNewlyBlocked = "hint.newly_blocked"
	HintSpamNotice   = "hint.spam_notice"
)

// Letter reveal keys.
const (
	RevealConfirm      = "reveal.confirm"
	RevealConfirmYes   = "reveal.confirm_yes"
	RevealConfirmNo    = "reveal.confirm_no"
	RevealNotForYou    = "reveal.not_for_you"
	RevealInsufficient = "reveal.insufficient"
	RevealLimit        = "reveal.limit"
	RevealAllRevealed  = "reveal.all_revealed"
	RevealDone         = "reveal.done"
	RevealCancelled    = "reveal.cancelled"
)

// Guess evaluation keys.
const (
	GuessCorrect = "guess.correct"
	GuessClose   = "guess.close"
)

// Game end and vote keys.
const (
	EndSummary          = "end.summary"
	EndNoGame           = "end.no_game"
	EndBySystemAdmin    = "end.by_system_admin"
	EndByGroupAdmin     = "end.by_group_admin"
	EndByGameStarter    = "end.by_game_starter"
	EndByAuthorizedUser = "end.by_authorized_user"
	EndByVote           = "end.by_vote"

	VoteStarted    = "vote.started"
	VoteProgress   = "vote.progress"
	VoteInProgress = "vote.in_progress"
	VoteExpired    = "vote.expired"
	VoteAlready    = "vote.already"
	VoteWrongChat  = "vote.wrong_chat"
	VoteButton     = "vote.button"

	// Button labels for a fresh game keyboard.
	ButtonRevealHint   = "button.reveal_hint"
	ButtonRevealLetter = "button.reveal_letter"
	ButtonEasy         = "button.easy"
	ButtonMedium       = "button.medium"
	ButtonHard         = "button.hard"
	ButtonExtreme      = "button.extreme"
	ButtonRandom       = "button.random"
)

// Leaderboard and score keys.
const (
	LeaderboardHeader = "leaderboard.header"
	LeaderboardLine   = "leaderboard.line"
	LeaderboardEmpty  = "leaderboard.empty"

	ScoreSelf  = "score.self"
	ScoreEmpty = "score.empty"
)

// Help and generic error keys.
const (
	HelpMessage = "help.message"

	ErrorGeneric      = "error.generic"
	ErrorNoGame       = "error.no_game"
	ErrorRateLimited  = "error.rate_limited"
	ErrorUserBlocked  = "error.user_blocked"
	ErrorChatBlocked  = "error.chat_blocked"
	ErrorAccessDenied = "error.access_denied"
)
