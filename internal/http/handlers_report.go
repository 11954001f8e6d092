package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"spend/internal/core"
	applog "spend/internal/log"
	"spend/internal/report"
)

// recentLimit caps the dashboard's recent transaction list.
const recentLimit = 5

type dashboardResponse struct {
	TotalSpend         float64                `json:"totalSpend"`
	CategoryShare      []report.CategoryValue `json:"categoryShare"`
	BudgetComparison   []report.ComparisonRow `json:"budgetComparison"`
	Insights           []string               `json:"insights"`
	RecentTransactions []core.Transaction     `json:"recentTransactions"`
}

type dailyChartResponse struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Days  []report.DayAmount `json:"days"`
}

// handleDashboard computes the aggregate spending view from a fresh
// transaction snapshot. Nothing here is cached; every request recomputes.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	txs, err := s.svc.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions for dashboard",
			applog.FieldError, err,
			applog.FieldOperation, applog.OpReport)
		respondError(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	budgets, err := s.budgets.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load budgets for dashboard",
			applog.FieldError, err,
			applog.FieldOperation, applog.OpReport)
		respondError(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	comparison := report.BudgetComparison(txs, budgets)

	resp := dashboardResponse{
		TotalSpend:         report.TotalSpend(txs),
		CategoryShare:      report.CategoryShare(txs),
		BudgetComparison:   comparison,
		Insights:           report.GenerateInsights(comparison),
		RecentTransactions: txs,
	}
	if len(resp.RecentTransactions) > recentLimit {
		resp.RecentTransactions = resp.RecentTransactions[:recentLimit]
	}
	if resp.CategoryShare == nil {
		resp.CategoryShare = []report.CategoryValue{}
	}
	if resp.BudgetComparison == nil {
		resp.BudgetComparison = []report.ComparisonRow{}
	}
	if resp.Insights == nil {
		resp.Insights = []string{}
	}
	if resp.RecentTransactions == nil {
		resp.RecentTransactions = []core.Transaction{}
	}

	respondJSON(w, http.StatusOK, resp)
}

// handleDailyChart returns the dense per-day spend series for a month.
func (s *Server) handleDailyChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	year, month, err := parseYearMonth(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if month < 1 || month > 12 {
		respondError(w, http.StatusBadRequest, "Invalid month: must be between 1 and 12")
		return
	}

	txs, err := s.svc.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions for chart",
			applog.FieldError, err,
			applog.FieldYear, year,
			applog.FieldMonth, month)
		respondError(w, http.StatusInternalServerError, "Failed to build chart series")
		return
	}

	respondJSON(w, http.StatusOK, dailyChartResponse{
		Year:  year,
		Month: month,
		Days:  report.DailySeries(txs, year, month),
	})
}

func (s *Server) handleBudgets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGetBudgets(w, r)
	case http.MethodPut:
		s.handlePutBudgets(w, r)
	default:
		w.Header().Set("Allow", "GET, PUT")
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleGetBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.budgets.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load budgets", applog.FieldError, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch budgets")
		return
	}
	respondJSON(w, http.StatusOK, budgets)
}

// handlePutBudgets replaces the stored budget set wholesale.
func (s *Server) handlePutBudgets(w http.ResponseWriter, r *http.Request) {
	var budgets core.Budgets
	if err := json.NewDecoder(r.Body).Decode(&budgets); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := budgets.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.budgets.Save(r.Context(), budgets); err != nil {
		slog.ErrorContext(r.Context(), "Failed to save budgets", applog.FieldError, err)
		respondError(w, http.StatusInternalServerError, "Failed to save budgets")
		return
	}

	slog.InfoContext(r.Context(), "Budgets updated", "entries", len(budgets))
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Budgets updated successfully",
	})
}
