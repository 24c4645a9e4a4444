package adminsdk

import (
	"context"
	"time"
)

const datePlanTemplatesBase = "/v1/date-plan-templates"

// DatePlanTemplate is a reusable outline admins instantiate into concrete
// date plans.
type DatePlanTemplate struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Steps       []string  `json:"steps,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// DatePlanTemplatesService manages templates under /v1/date-plan-templates.
// Listing uses the standard resource base path; the backend contract is the
// source of truth for the endpoint shape.
type DatePlanTemplatesService struct {
	*Resource[DatePlanTemplate]
}

func NewDatePlanTemplatesService(c *Client) *DatePlanTemplatesService {
	return &DatePlanTemplatesService{Resource: NewResource[DatePlanTemplate](c, datePlanTemplatesBase)}
}

// ByCategory lists templates in a category.
func (s *DatePlanTemplatesService) ByCategory(ctx context.Context, category string) (*ListEnvelope[DatePlanTemplate], error) {
	return s.List(ctx, NewQuery().Set("category", category))
}
