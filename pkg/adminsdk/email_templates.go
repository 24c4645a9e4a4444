package adminsdk

import (
	"context"
	"net/http"
	"time"
)

const emailTemplatesBase = "/v1/email-templates"

// EmailTemplate is a transactional email body with substitution variables.
type EmailTemplate struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Variables []string  `json:"variables,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// EmailTemplatesService manages templates under /v1/email-templates.
type EmailTemplatesService struct {
	*Resource[EmailTemplate]
}

func NewEmailTemplatesService(c *Client) *EmailTemplatesService {
	return &EmailTemplatesService{Resource: NewResource[EmailTemplate](c, emailTemplatesBase)}
}

// RenderedEmail is a template with its variables substituted.
type RenderedEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Preview renders the template server-side with the given variable values
// without sending anything.
func (s *EmailTemplatesService) Preview(ctx context.Context, id string, vars map[string]string) (*Envelope[RenderedEmail], error) {
	var env Envelope[RenderedEmail]
	err := s.Client().doJSON(ctx, http.MethodPost, s.Base()+"/"+id+"/preview", map[string]any{
		"variables": vars,
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env, nil
}

// SendTest asks the backend to render the template and deliver it to a
// single recipient so an admin can verify it before activating.
func (s *EmailTemplatesService) SendTest(ctx context.Context, id, recipient string) (*MessageEnvelope, error) {
	var env MessageEnvelope
	err := s.Client().doJSON(ctx, http.MethodPost, s.Base()+"/"+id+"/send-test", map[string]string{
		"recipient": recipient,
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env, nil
}
