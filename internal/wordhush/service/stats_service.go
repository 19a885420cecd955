package service

import (
	"context"
	"time"

	"github.com/wordhush/wordhush-bot-go/internal/common/messageprovider"
	"github.com/wordhush/wordhush-bot-go/internal/common/mqmsg"
	qmessages "github.com/wordhush/wordhush-bot-go/internal/wordhush/messages"
)

const leaderboardLimit = 10

// Leaderboard renders the chat's top scorers.
func (s *GameService) Leaderboard(ctx context.Context, msg mqmsg.InboundMessage) ([]mqmsg.OutboundMessage, error) {
	rows, err := s.repo.TopScores(ctx, msg.ChatID, time.Time{}, leaderboardLimit)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []mqmsg.OutboundMessage{
			mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.LeaderboardEmpty), msg.ThreadID),
		}, nil
	}

	text := s.msgProvider.Get(qmessages.LeaderboardHeader)
	for i, row := range rows {
		name := row.Name
		if name == "" {
			name = row.UserID
		}
		text += "\n" + s.msgProvider.Get(qmessages.LeaderboardLine,
			messageprovider.P("rank", i+1),
			messageprovider.P("name", name),
			messageprovider.P("total", row.Total),
			messageprovider.P("wins", row.Wins),
		)
	}
	return []mqmsg.OutboundMessage{mqmsg.NewFinal(msg.ChatID, text, msg.ThreadID)}, nil
}

// Score renders the sender's score in this chat.
func (s *GameService) Score(ctx context.Context, msg mqmsg.InboundMessage) ([]mqmsg.OutboundMessage, error) {
	total, wins, err := s.repo.UserScore(ctx, msg.ChatID, msg.UserID)
	if err != nil {
		return nil, err
	}
	if wins == 0 {
		return []mqmsg.OutboundMessage{
			mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.ScoreEmpty), msg.ThreadID),
		}, nil
	}

	text := s.msgProvider.Get(qmessages.ScoreSelf,
		messageprovider.P("name", displayName(msg)),
		messageprovider.P("total", total),
		messageprovider.P("wins", wins),
	)
	return []mqmsg.OutboundMessage{mqmsg.NewFinal(msg.ChatID, text, msg.ThreadID)}, nil
}
