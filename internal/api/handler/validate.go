// internal/api/handler/validate.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"casinobuddy/internal/apperr"
)

// maxBodyBytes caps request bodies before any decoding is attempted.
const maxBodyBytes = 16 << 10 // 16 KiB

// ParseID parses a wire identifier string. Anything that does not parse as a
// UUID is a bad request; the store is never consulted for malformed ids.
func ParseID(raw string) (uuid.UUID, *apperr.Error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Wrap(apperr.BadRequest, err)
	}
	return id, nil
}

// DecodeJSON decodes a JSON request body into dst, enforcing the body size
// ceiling first. A declared Content-Length over the ceiling is rejected
// before a single byte is read.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) *apperr.Error {
	if r.ContentLength > maxBodyBytes {
		return apperr.New(apperr.BadRequest)
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Wrap(apperr.BadRequest, err)
	}
	return nil
}
