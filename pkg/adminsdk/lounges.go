package adminsdk

import (
	"context"
	"net/http"
	"time"
)

const loungesBase = "/v1/lounges"

// Lounge is a physical venue where platform-organized dates take place.
type Lounge struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city,omitempty"`
	Address     string    `json:"address,omitempty"`
	Capacity    int       `json:"capacity,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// LoungesService manages venues under /v1/lounges.
type LoungesService struct {
	*Resource[Lounge]
}

func NewLoungesService(c *Client) *LoungesService {
	return &LoungesService{Resource: NewResource[Lounge](c, loungesBase)}
}

// Users lists the members assigned to a lounge via the nested
// /v1/lounges/:id/users endpoint.
func (s *LoungesService) Users(ctx context.Context, id string, q *Query) (*ListEnvelope[User], error) {
	path := s.Base() + "/" + id + "/users"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var env ListEnvelope[User]
	if err := s.Client().doJSON(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// SetActive toggles a lounge's active flag through the status endpoint.
func (s *LoungesService) SetActive(ctx context.Context, id string, active bool) (*Envelope[Lounge], error) {
	return s.UpdateStatus(ctx, id, map[string]bool{"isActive": active})
}

// UploadImage attaches or replaces a lounge's photo.
func (s *LoungesService) UploadImage(ctx context.Context, id string, form *Form) error {
	endpoint := s.Base()
	if id != "" {
		endpoint += "/" + id
	}
	_, err := s.Upload(ctx, endpoint, form)
	return err
}
