package adminsdk

import (
	"context"
	"time"
)

const matchesBase = "/v1/matches"

// Match pairs two platform members.
type Match struct {
	ID          string    `json:"id,omitempty"`
	InitiatorID string    `json:"initiatorId"`
	PartnerID   string    `json:"partnerId"`
	Status      string    `json:"status,omitempty"`
	MatchedAt   time.Time `json:"matchedAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// MatchesService manages matches under /v1/matches.
type MatchesService struct {
	*Resource[Match]
}

func NewMatchesService(c *Client) *MatchesService {
	return &MatchesService{Resource: NewResource[Match](c, matchesBase)}
}

// ForUser lists the matches a given user participates in.
func (s *MatchesService) ForUser(ctx context.Context, userID string) (*ListEnvelope[Match], error) {
	return s.List(ctx, NewQuery().Set("userId", userID))
}
