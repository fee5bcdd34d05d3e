// Package api is the thin HTTP adapter over the calendar planner. It owns
// input-shape validation, error classification and serialization; the core
// behind it assumes validated input.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jason-ezenwa/reddit-mastermind/internal/domain"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

// CalendarGenerator is the planner surface the adapter depends on.
type CalendarGenerator interface {
	Generate(ctx context.Context, input domain.PlanInput) (*domain.Calendar, error)
}

// errorResponse is the failure payload: a stable classification plus a
// human-readable message. Collaborator-internal payloads never leak beyond
// the message string.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code types.ErrorCode, message string) {
	writeJSON(w, status, errorResponse{Code: string(code), Message: message})
}

// handleGenerateCalendar serves POST /api/v1/calendar.
func (s *Server) handleGenerateCalendar(w http.ResponseWriter, r *http.Request) {
	var input domain.PlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, types.INPUT_PARSE_FAILED, "request body is not valid JSON")
		return
	}

	if err := input.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, types.INPUT_INVALID, err.Error())
		return
	}

	calendar, err := s.generator.Generate(r.Context(), input)
	if err != nil {
		s.logger.Error("calendar generation failed", "error", err)
		generationFailures.Inc()
		status, code := classifyError(err)
		writeError(w, status, code, errorMessage(err))
		return
	}

	calendarsGenerated.Inc()
	postsGenerated.Add(float64(len(calendar.Posts)))
	commentsGenerated.Add(float64(len(calendar.Comments)))

	writeJSON(w, http.StatusOK, calendar)
}

// handleHealthz serves GET /healthz.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"provider": s.providerName,
	})
}

// classifyError maps planner failures onto HTTP statuses: rule violations
// are unprocessable input, upstream generation failures are a bad gateway,
// cancellation maps to client-closed-request semantics.
func classifyError(err error) (int, types.ErrorCode) {
	code := types.CodeOf(err)
	switch code {
	case types.PLAN_RULES_VIOLATED, types.INPUT_INVALID:
		return http.StatusUnprocessableEntity, code
	case types.GEN_CANCELED:
		return http.StatusRequestTimeout, code
	case "":
		return http.StatusInternalServerError, types.PLAN_FAILED
	default:
		return http.StatusBadGateway, code
	}
}

// errorMessage extracts the structured message only, falling back to a
// generic one for unstructured errors. The wrapped cause chain stays in the
// server log; clients get the classification and the top-level message.
func errorMessage(err error) string {
	var e *types.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "calendar generation failed"
}
