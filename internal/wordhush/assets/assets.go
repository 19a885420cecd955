// Package assets embeds static resources for the word game.
package assets

import _ "embed"

// GameMessagesYAML is the word game message catalog.
//
//go:embed messages/game-messages.yml
var GameMessagesYAML string
