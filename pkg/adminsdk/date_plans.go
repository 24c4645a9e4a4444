package adminsdk

import (
	"context"
	"time"
)

const datePlansBase = "/v1/date-plans"

// DatePlan is a scheduled date between two matched members, optionally held
// at a lounge and derived from a template.
type DatePlan struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	MatchID     string    `json:"matchId,omitempty"`
	LoungeID    string    `json:"loungeId,omitempty"`
	TemplateID  string    `json:"templateId,omitempty"`
	Status      string    `json:"status,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// DatePlansService manages scheduled dates under /v1/date-plans.
type DatePlansService struct {
	*Resource[DatePlan]
}

func NewDatePlansService(c *Client) *DatePlansService {
	return &DatePlansService{Resource: NewResource[DatePlan](c, datePlansBase)}
}

// ForMatch lists the date plans created for a match.
func (s *DatePlansService) ForMatch(ctx context.Context, matchID string) (*ListEnvelope[DatePlan], error) {
	return s.List(ctx, NewQuery().Set("matchId", matchID))
}

// Upcoming lists date plans scheduled from now onward.
func (s *DatePlansService) Upcoming(ctx context.Context) (*ListEnvelope[DatePlan], error) {
	return s.List(ctx, NewQuery().Set("upcoming", true))
}
