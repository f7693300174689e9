// internal/domain/casino.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Casino is a venue transactions are recorded against. Read-only from the
// API's perspective; rows are seeded out of band.
type Casino struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	URL         string    `db:"url" json:"url"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
