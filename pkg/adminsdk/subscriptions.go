package adminsdk

import (
	"context"
	"time"
)

const subscriptionsBase = "/v1/subscriptions"

// Subscription ties a user to a plan for a period of time.
type Subscription struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"userId"`
	PlanID    string    `json:"planId"`
	Status    string    `json:"status,omitempty"`
	AutoRenew bool      `json:"autoRenew"`
	StartsAt  time.Time `json:"startsAt,omitempty"`
	EndsAt    time.Time `json:"endsAt,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// SubscriptionsService exposes subscriptions under /v1/subscriptions.
type SubscriptionsService struct {
	*Resource[Subscription]
}

func NewSubscriptionsService(c *Client) *SubscriptionsService {
	return &SubscriptionsService{Resource: NewResource[Subscription](c, subscriptionsBase)}
}

// ForUser lists the subscriptions of a given user.
func (s *SubscriptionsService) ForUser(ctx context.Context, userID string) (*ListEnvelope[Subscription], error) {
	return s.List(ctx, NewQuery().Set("userId", userID))
}

// Active lists currently active subscriptions.
func (s *SubscriptionsService) Active(ctx context.Context) (*ListEnvelope[Subscription], error) {
	return s.List(ctx, NewQuery().Set("status", "active"))
}
