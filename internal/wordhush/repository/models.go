package repository

import "time"

// User holds a player's identity and coin balance.
type User struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Username  *string   `gorm:"column:username"`
	Coins     int       `gorm:"column:coins;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// LeaderboardEntry is one recorded win.
// Composite index: idx_leaderboard_scores (chat_id, created_at)
type LeaderboardEntry struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string    `gorm:"column:user_id;not null;index"`
	ChatID    string    `gorm:"column:chat_id;not null;index:idx_leaderboard_scores,priority:1"`
	Level     string    `gorm:"column:level;not null"`
	Score     int       `gorm:"column:score;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime;index:idx_leaderboard_scores,priority:2"`
}

func (LeaderboardEntry) TableName() string { return "leaderboard" }

// WordHint is a cached AI-generated hint set for one word and level.
// RelatedWordsJSON and HintsJSON hold JSON string arrays.
type WordHint struct {
	ID               uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Word             string    `gorm:"column:word;not null;index:idx_word_hints_word_level,priority:1"`
	Level            string    `gorm:"column:level;not null;index:idx_word_hints_word_level,priority:2"`
	HintsJSON        string    `gorm:"column:hints;not null;type:jsonb"`
	RelatedWordsJSON string    `gorm:"column:related_words;not null;type:jsonb"`
	Sentence         string    `gorm:"column:sentence;not null"`
	CreatedAt        time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (WordHint) TableName() string { return "word_hints" }

// AuthorizedUser grants a non-admin the right to end games in a chat.
type AuthorizedUser struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string    `gorm:"column:user_id;not null;uniqueIndex:idx_authorized_users_chat_user,priority:2"`
	ChatID    string    `gorm:"column:chat_id;not null;uniqueIndex:idx_authorized_users_chat_user,priority:1"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (AuthorizedUser) TableName() string { return "authorized_users" }

// ChatGameTopic designates a forum topic where the game may be played.
// A chat with no rows allows play everywhere.
type ChatGameTopic struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	ChatID    string    `gorm:"column:chat_id;not null;uniqueIndex:idx_chat_game_topics_chat_topic,priority:1"`
	TopicID   string    `gorm:"column:topic_id;not null;uniqueIndex:idx_chat_game_topics_chat_topic,priority:2"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (ChatGameTopic) TableName() string { return "chat_game_topics" }
