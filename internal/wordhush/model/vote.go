package model

import "time"

// EndVote tracks an open termination vote. Voters is append-only and
// duplicate-free; a vote once cast cannot be withdrawn.
type EndVote struct {
	Voters      []string `json:"voters"`
	InitiatedAt int64    `json:"initiatedAt"`
}

// NewEndVote opens a vote with the initiator already counted.
func NewEndVote(userID string, now time.Time) EndVote {
	return EndVote{
		Voters:      []string{userID},
		InitiatedAt: now.UnixMilli(),
	}
}

// HasVoted reports whether userID already voted.
func (v EndVote) HasVoted(userID string) bool {
	for _, voter := range v.Voters {
		if voter == userID {
			return true
		}
	}
	return false
}

// AddVoter counts userID once. The second return value is false when the
// user had already voted.
func (v EndVote) AddVoter(userID string) (EndVote, bool) {
	if v.HasVoted(userID) {
		return v, false
	}
	updated := v
	updated.Voters = append(append([]string(nil), v.Voters...), userID)
	return updated, true
}

// Count is the number of distinct voters.
func (v EndVote) Count() int {
	return len(v.Voters)
}

// Reaches reports whether the vote meets the termination threshold.
func (v EndVote) Reaches(threshold int) bool {
	return len(v.Voters) >= threshold
}
