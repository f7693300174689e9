// internal/domain/redemption.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Redemption records a payout request against a casino. Modeled and stored
// but not yet exposed by any endpoint.
type Redemption struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	UserID     uuid.UUID  `db:"user_id" json:"user_id"`
	CasinoID   uuid.UUID  `db:"casino_id" json:"casino_id"`
	Amount     Money      `db:"amount" json:"amount"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	ReceivedAt *time.Time `db:"received_at" json:"received_at"` // Set once the payout arrives
}
