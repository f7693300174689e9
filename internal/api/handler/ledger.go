// internal/api/handler/ledger.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"casinobuddy/internal/api/types"
	"casinobuddy/internal/apperr"
	"casinobuddy/internal/service"
)

// LedgerHandler handles HTTP requests for the ledger API. Handlers validate
// input, call exactly one service operation, and render the success body;
// typed failures are returned to the router's recovery stage, which owns all
// error rendering.
type LedgerHandler struct {
	service service.LedgerService
	logger  *slog.Logger
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(svc service.LedgerService, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		service: svc,
		logger:  logger,
	}
}

// respondWithJSON writes a success payload with the given status code. A
// marshal failure writes nothing and is returned as a typed error, so the
// recovery stage renders the one-field code envelope like any other failure.
func (h *LedgerHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) *apperr.Error {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		return apperr.Wrap(apperr.InternalServerError, err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
	return nil
}

// UserCreateRequest is the request body for creating a user. Both fields are
// required on the wire even though the simplest create path does not persist
// them.
type UserCreateRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// TransactionCreateRequest is the request body for recording a transaction.
// Cost and benefit are required; decimal accepts both quoted and bare JSON
// numbers and preserves scale.
type TransactionCreateRequest struct {
	Cost    *decimal.Decimal `json:"cost"`
	Benefit *decimal.Decimal `json:"benefit"`
	Notes   *string          `json:"notes"`
}

// GetUser handles GET /user/{id}. A zero-row lookup is an empty body list,
// never a 404.
func (h *LedgerHandler) GetUser(w http.ResponseWriter, r *http.Request) *apperr.Error {
	userID, appErr := ParseID(chi.URLParam(r, "id"))
	if appErr != nil {
		return appErr
	}

	users, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		return apperr.From(err)
	}

	return h.respondWithJSON(w, http.StatusOK, types.UserReply{Body: users})
}

// CreateUser handles POST /user.
func (h *LedgerHandler) CreateUser(w http.ResponseWriter, r *http.Request) *apperr.Error {
	var req UserCreateRequest
	if appErr := DecodeJSON(w, r, &req); appErr != nil {
		return appErr
	}
	if req.Email == "" || req.Username == "" {
		return apperr.New(apperr.BadRequest)
	}

	id, err := h.service.CreateUser(r.Context())
	if err != nil {
		return apperr.From(err)
	}

	return h.respondWithJSON(w, http.StatusCreated, types.UserIDReply{ID: id})
}

// ListCasinos handles GET /casino.
func (h *LedgerHandler) ListCasinos(w http.ResponseWriter, r *http.Request) *apperr.Error {
	casinos, err := h.service.ListCasinos(r.Context())
	if err != nil {
		return apperr.From(err)
	}

	return h.respondWithJSON(w, http.StatusOK, types.CasinoListingReply{Casinos: casinos})
}

// ListTransactions handles GET /transaction/{userID}. A user with no
// transactions gets an empty list, never a 404.
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *apperr.Error {
	userID, appErr := ParseID(chi.URLParam(r, "userID"))
	if appErr != nil {
		return appErr
	}

	transactions, err := h.service.GetTransactions(r.Context(), userID)
	if err != nil {
		return apperr.From(err)
	}

	return h.respondWithJSON(w, http.StatusOK, types.TransactionsReply{Body: transactions})
}

// CreateTransaction handles POST /transaction/{userID}/{casinoID}.
func (h *LedgerHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) *apperr.Error {
	userID, appErr := ParseID(chi.URLParam(r, "userID"))
	if appErr != nil {
		return appErr
	}
	casinoID, appErr := ParseID(chi.URLParam(r, "casinoID"))
	if appErr != nil {
		return appErr
	}

	var req TransactionCreateRequest
	if appErr := DecodeJSON(w, r, &req); appErr != nil {
		return appErr
	}
	if req.Cost == nil || req.Benefit == nil {
		return apperr.New(apperr.BadRequest)
	}

	transaction, err := h.service.CreateTransaction(r.Context(), userID, casinoID, *req.Cost, *req.Benefit, req.Notes)
	if err != nil {
		return apperr.From(err)
	}

	return h.respondWithJSON(w, http.StatusCreated, transaction)
}
