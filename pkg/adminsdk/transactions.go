package adminsdk

import (
	"context"
	"time"
)

const transactionsBase = "/v1/transactions"

// Transaction is a payment recorded against a user, usually for a plan
// purchase or renewal.
type Transaction struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"userId"`
	PlanID    string    `json:"planId,omitempty"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency,omitempty"`
	Status    string    `json:"status,omitempty"`
	Provider  string    `json:"provider,omitempty"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// TransactionsService exposes payment records under /v1/transactions.
type TransactionsService struct {
	*Resource[Transaction]
}

func NewTransactionsService(c *Client) *TransactionsService {
	return &TransactionsService{Resource: NewResource[Transaction](c, transactionsBase)}
}

// ForUser lists the transactions of a given user.
func (s *TransactionsService) ForUser(ctx context.Context, userID string) (*ListEnvelope[Transaction], error) {
	return s.List(ctx, NewQuery().Set("userId", userID))
}

// ByStatus lists transactions in a given state, e.g. "completed" or
// "refunded".
func (s *TransactionsService) ByStatus(ctx context.Context, status string) (*ListEnvelope[Transaction], error) {
	return s.List(ctx, NewQuery().Set("status", status))
}
