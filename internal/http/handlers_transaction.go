package http

import (
	"errors"
	"log/slog"
	"net/http"

	"spend/internal/core"
	applog "spend/internal/log"
	"spend/internal/services"
	"spend/internal/store"
)

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListTransactions(w, r)
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	case http.MethodPut:
		s.handleUpdateTransaction(w, r)
	case http.MethodDelete:
		s.handleDeleteTransaction(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, PUT, DELETE")
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.svc.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions",
			applog.FieldError, err,
			applog.FieldOperation, applog.OpList)
		respondError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if txs == nil {
		txs = []core.Transaction{}
	}
	respondJSON(w, http.StatusOK, txs)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	in, ok := s.parseTransactionInput(w, r)
	if !ok {
		return
	}

	id, err := s.svc.Create(r.Context(), in)
	if err != nil {
		s.writeTransactionError(w, r, err, applog.OpCreate)
		return
	}

	slog.InfoContext(r.Context(), "Transaction created",
		applog.FieldTxID, id,
		applog.FieldCategory, in.Category,
		applog.FieldOperation, applog.OpCreate)

	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Transaction added successfully",
		"id":      id,
	})
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := sanitizeInput(r.URL.Query().Get("id"))
	if id == "" {
		respondError(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}

	in, ok := s.parseTransactionInput(w, r)
	if !ok {
		return
	}

	if err := s.svc.Update(r.Context(), id, in); err != nil {
		s.writeTransactionError(w, r, err, applog.OpUpdate)
		return
	}

	slog.InfoContext(r.Context(), "Transaction updated",
		applog.FieldTxID, id,
		applog.FieldOperation, applog.OpUpdate)

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Transaction updated successfully",
	})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := sanitizeInput(r.URL.Query().Get("id"))
	if id == "" {
		respondError(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}

	if err := s.svc.Delete(r.Context(), id); err != nil {
		s.writeTransactionError(w, r, err, applog.OpDelete)
		return
	}

	slog.InfoContext(r.Context(), "Transaction deleted",
		applog.FieldTxID, id,
		applog.FieldOperation, applog.OpDelete)

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Transaction deleted successfully",
	})
}

// parseTransactionInput reads the request body and extracts the four
// transaction fields. A malformed body reports 400 and returns ok=false.
func (s *Server) parseTransactionInput(w http.ResponseWriter, r *http.Request) (services.TransactionInput, bool) {
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		slog.ErrorContext(r.Context(), "Failed to parse request body",
			applog.FieldError, err,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return services.TransactionInput{}, false
	}

	return services.TransactionInput{
		Description: parser.Get("description"),
		Amount:      parser.Get("amount"),
		Category:    parser.Get("category"),
		Date:        parser.Get("date"),
	}, true
}

// writeTransactionError maps service errors to HTTP status codes. Validation
// failures surface their message; store failures stay generic and are logged
// with detail.
func (s *Server) writeTransactionError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	switch {
	case errors.Is(err, core.ErrMissingFields),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrEmptyDescription),
		errors.Is(err, core.ErrEmptyCategory),
		errors.Is(err, store.ErrInvalidID):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "Transaction not found")
	default:
		slog.ErrorContext(r.Context(), "Transaction operation failed",
			applog.FieldError, err,
			applog.FieldOperation, operation)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
