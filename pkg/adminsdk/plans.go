package adminsdk

import (
	"context"
	"time"
)

const plansBase = "/v1/plans"

// Plan is a subscription plan offered on the platform.
type Plan struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency,omitempty"`
	DurationDays int       `json:"durationDays"`
	Features     []string  `json:"features,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// PlansService manages subscription plans under /v1/plans.
type PlansService struct {
	*Resource[Plan]
}

func NewPlansService(c *Client) *PlansService {
	return &PlansService{Resource: NewResource[Plan](c, plansBase)}
}

// SetActive toggles a plan's active flag through the status endpoint.
func (s *PlansService) SetActive(ctx context.Context, id string, active bool) (*Envelope[Plan], error) {
	return s.UpdateStatus(ctx, id, map[string]bool{"isActive": active})
}

// UploadImage attaches or replaces a plan's promotional image. With an empty
// id the upload targets the plan base endpoint (creation with attachment);
// otherwise it targets the plan itself (update with attachment).
func (s *PlansService) UploadImage(ctx context.Context, id string, form *Form) error {
	endpoint := s.Base()
	if id != "" {
		endpoint += "/" + id
	}
	_, err := s.Upload(ctx, endpoint, form)
	return err
}
