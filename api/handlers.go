/*
handlers.go - HTTP API handlers for the subsidy calculator

PURPOSE:
  Exposes the subsidy calculator via REST API. Handles HTTP request/response,
  JSON serialization and input validation, and delegates to subsidy.Calculate.

ENDPOINTS:
  POST   /api/subsidies/sickness        Calculate a sickness subsidy
  GET    /api/subsidies/sickness/rules  Constants and percentage table
  GET    /healthz                       Liveness probe

REQUEST FLOW:
  1. Decode JSON body
  2. Convert to subsidy.Inputs and validate
  3. Calculate
  4. Serialize response with a fresh calculation ID

ERROR HANDLING:
  - 400: Malformed JSON, missing or invalid fields
  - 500: Anything unexpected

  Ineligibility is NOT an error: it is a 200 with "eligible": false.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/warp/subsidy-engine/subsidy"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; a calculation request is a few hundred bytes.
const maxBodyBytes = 64 << 10

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	logger *zap.Logger
	newID  func() string
}

// NewHandler creates a new handler. A nil logger disables logging.
func NewHandler(logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger: logger,
		newID:  func() string { return uuid.New().String() },
	}
}

// =============================================================================
// SUBSIDY HANDLERS
// =============================================================================

// CalculateSickness computes a sickness subsidy.
// POST /api/subsidies/sickness
func (h *Handler) CalculateSickness(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	in, err := req.toInputs()
	if err != nil {
		h.writeInputError(w, err)
		return
	}

	res := subsidy.Calculate(in)
	dto := NewCalculationDTO(h.newID(), res)

	fields := []zap.Field{
		zap.String("calculation_id", dto.CalculationID),
		zap.Bool("eligible", res.Eligible),
	}
	if res.Eligible {
		fields = append(fields,
			zap.String("illness_type", res.Breakdown.IllnessType.String()),
			zap.Int("payable_days", res.Breakdown.PayableDays),
			zap.Stringer("total", res.Breakdown.Total),
		)
	} else {
		fields = append(fields, zap.String("reason", string(res.Reason)))
	}
	h.logger.Debug("sickness subsidy calculated", fields...)

	writeJSON(w, http.StatusOK, dto)
}

// GetSicknessRules returns the rule set behind the calculator.
// GET /api/subsidies/sickness/rules
func (h *Handler) GetSicknessRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NewRulesDTO())
}

// Health reports liveness.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

type missingFieldError struct {
	field string
}

func (e *missingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.field)
}

func (h *Handler) writeInputError(w http.ResponseWriter, err error) {
	var missing *missingFieldError
	var invalid *subsidy.InputError
	switch {
	case errors.As(err, &missing):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Missing required field", Details: err.Error(), Field: missing.field})
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid input", Details: invalid.Err.Error(), Field: invalid.Field})
	default:
		h.logger.Error("unexpected input conversion failure", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal error", nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
