// Package security covers who may use the bot at all and who may end a
// running game without a vote.
package security

import (
	"context"
	"fmt"
	"slices"

	"github.com/wordhush/wordhush-bot-go/internal/common/mqmsg"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
	qmessages "github.com/wordhush/wordhush-bot-go/internal/wordhush/messages"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/repository"
)

// EndAuthority labels why a user may end the game directly.
type EndAuthority string

// Authority grades, strongest first.
const (
	AuthorityPrivateChat EndAuthority = "private_chat"
	AuthoritySystemAdmin EndAuthority = "system_admin"
	AuthorityGroupAdmin  EndAuthority = "group_admin"
	AuthorityGameStarter EndAuthority = "game_starter"
	AuthorityAuthorized  EndAuthority = "authorized_user"
	AuthorityNone        EndAuthority = ""
)

// AccessControl evaluates the chat/user allow and block lists plus end-game
// authority against the admin list and the per-chat authorization grants.
type AccessControl struct {
	access whconfig.AccessConfig
	admin  whconfig.AdminConfig
	repo   *repository.Repository
}

// NewAccessControl creates an AccessControl.
func NewAccessControl(access whconfig.AccessConfig, admin whconfig.AdminConfig, repo *repository.Repository) *AccessControl {
	return &AccessControl{access: access, admin: admin, repo: repo}
}

// DenialMessageKey returns the message key explaining why the user or chat
// may not use the bot, or empty when access is allowed. System admins always
// pass.
func (a *AccessControl) DenialMessageKey(userID, chatID string) string {
	if a.access.Passthrough || a.IsSystemAdmin(userID) {
		return ""
	}
	if slices.Contains(a.access.BlockedUserIDs, userID) {
		return qmessages.ErrorUserBlocked
	}
	if !a.access.Enabled {
		return ""
	}
	if slices.Contains(a.access.BlockedChatIDs, chatID) {
		return qmessages.ErrorChatBlocked
	}
	if len(a.access.AllowedChatIDs) == 0 || slices.Contains(a.access.AllowedChatIDs, chatID) {
		return ""
	}
	return qmessages.ErrorAccessDenied
}

// IsSystemAdmin reports whether the user id is on the configured admin list.
func (a *AccessControl) IsSystemAdmin(userID string) bool {
	return slices.Contains(a.admin.UserIDs, userID)
}

// ResolveEndAuthority returns the strongest authority the sender holds over
// the session, or AuthorityNone when they must go through the vote.
func (a *AccessControl) ResolveEndAuthority(ctx context.Context, msg mqmsg.InboundMessage, session *model.GameSession) (EndAuthority, error) {
	if msg.IsPrivate {
		return AuthorityPrivateChat, nil
	}
	if a.IsSystemAdmin(msg.UserID) || msg.Role == mqmsg.RoleSystemAdmin {
		return AuthoritySystemAdmin, nil
	}
	if msg.Role == mqmsg.RoleGroupAdmin {
		return AuthorityGroupAdmin, nil
	}
	if session != nil && session.StartedBy != "" && session.StartedBy == msg.UserID {
		return AuthorityGameStarter, nil
	}

	authorized, err := a.repo.IsUserAuthorized(ctx, msg.ChatID, msg.UserID)
	if err != nil {
		return AuthorityNone, fmt.Errorf("resolve end authority: %w", err)
	}
	if authorized {
		return AuthorityAuthorized, nil
	}
	return AuthorityNone, nil
}
