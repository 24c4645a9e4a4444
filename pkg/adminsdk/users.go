package adminsdk

import (
	"context"
	"time"
)

const usersBase = "/v1/users"

// User is a dating-platform member as seen by the admin dashboard.
type User struct {
	ID              string    `json:"id,omitempty"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Gender          string    `json:"gender,omitempty"`
	BirthDate       string    `json:"birthDate,omitempty"`
	City            string    `json:"city,omitempty"`
	ProfilePhotoURL string    `json:"profilePhotoUrl,omitempty"`
	IsVerified      bool      `json:"isVerified"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// UsersService manages platform members under /v1/users.
type UsersService struct {
	*Resource[User]
}

func NewUsersService(c *Client) *UsersService {
	return &UsersService{Resource: NewResource[User](c, usersBase)}
}

// SetActive toggles a user's active flag through the status endpoint,
// keeping activation changes separate from full profile updates.
func (s *UsersService) SetActive(ctx context.Context, id string, active bool) (*Envelope[User], error) {
	return s.UpdateStatus(ctx, id, map[string]bool{"isActive": active})
}

// Search lists users matching a free-text search with paging.
func (s *UsersService) Search(ctx context.Context, term string, page, limit int) (*ListEnvelope[User], error) {
	q := NewQuery().Set("search", term)
	if page > 0 {
		q.Set("page", page)
	}
	if limit > 0 {
		q.Set("limit", limit)
	}
	return s.List(ctx, q)
}
