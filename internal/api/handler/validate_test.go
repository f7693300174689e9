// internal/api/handler/validate_test.go
package handler

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casinobuddy/internal/apperr"
)

func TestParseID(t *testing.T) {
	id, appErr := ParseID("d61b6bba-61ba-4cab-b8b7-74a880968ec6")
	require.Nil(t, appErr)
	assert.Equal(t, "d61b6bba-61ba-4cab-b8b7-74a880968ec6", id.String())
}

func TestParseIDRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-valid-id", "d61b6bba", "d61b6bba-61ba-4cab-b8b7-74a880968ec6x"} {
		_, appErr := ParseID(raw)
		require.NotNil(t, appErr, "input %q", raw)
		assert.Equal(t, apperr.BadRequest, appErr.Kind)
	}
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/user", strings.NewReader(`{"email":"a@b.com","username":"abc"}`))
	w := httptest.NewRecorder()

	var body UserCreateRequest
	appErr := DecodeJSON(w, req, &body)
	require.Nil(t, appErr)
	assert.Equal(t, "a@b.com", body.Email)
	assert.Equal(t, "abc", body.Username)
}

func TestDecodeJSONMalformed(t *testing.T) {
	req := httptest.NewRequest("POST", "/user", strings.NewReader(`{"email":`))
	w := httptest.NewRecorder()

	var body UserCreateRequest
	appErr := DecodeJSON(w, req, &body)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.BadRequest, appErr.Kind)
}

// failingReader fails the test if anything tries to read it.
type failingReader struct {
	t *testing.T
}

func (r *failingReader) Read([]byte) (int, error) {
	r.t.Fatal("oversized body was read")
	return 0, nil
}

func TestDecodeJSONRejectsOversizedBodyUnread(t *testing.T) {
	// A declared Content-Length over the ceiling must be rejected before a
	// single byte is consumed.
	req := httptest.NewRequest("POST", "/user", &failingReader{t: t})
	req.ContentLength = maxBodyBytes + 1
	w := httptest.NewRecorder()

	var body UserCreateRequest
	appErr := DecodeJSON(w, req, &body)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.BadRequest, appErr.Kind)
}

func TestDecodeJSONRejectsOversizedChunkedBody(t *testing.T) {
	// No Content-Length declared; the reader cap has to catch it instead.
	payload := append([]byte(`{"email":"`), bytes.Repeat([]byte("a"), maxBodyBytes+1)...)
	payload = append(payload, []byte(`","username":"abc"}`)...)
	req := httptest.NewRequest("POST", "/user", bytes.NewReader(payload))
	req.ContentLength = -1
	w := httptest.NewRecorder()

	var body UserCreateRequest
	appErr := DecodeJSON(w, req, &body)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.BadRequest, appErr.Kind)
}
