// internal/domain/user.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the ledger. The simplest create path stores
// only the identifier and timestamps; email/username are accepted on the wire
// but not persisted.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
