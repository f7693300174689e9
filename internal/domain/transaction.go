// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction records a purchase of coins from a casino: what it cost and
// what was received in return. Immutable once created.
type Transaction struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	CasinoID  uuid.UUID `db:"casino_id" json:"casino_id"`
	Cost      Money     `db:"cost" json:"cost"`       // NUMERIC in DB, scale preserved
	Benefit   Money     `db:"benefit" json:"benefit"` // NUMERIC in DB, scale preserved
	Notes     *string   `db:"notes" json:"notes"`     // Optional free text
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
