// internal/api/types/response.go
package types

import (
	"github.com/google/uuid"

	"casinobuddy/internal/domain"
)

// CasinoListingReply is the response envelope for the casino listing.
type CasinoListingReply struct {
	Casinos []domain.Casino `json:"casinos"`
}

// UserReply is the response envelope for a user fetch: zero or one element.
type UserReply struct {
	Body []domain.User `json:"body"`
}

// TransactionsReply is the response envelope for a user's transactions.
type TransactionsReply struct {
	Body []domain.Transaction `json:"body"`
}

// UserIDReply carries the identifier generated by a user create.
type UserIDReply struct {
	ID uuid.UUID `json:"id"`
}
