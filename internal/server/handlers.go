package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chart-interpreter/internal/chart"
	"chart-interpreter/internal/interpret"
	"chart-interpreter/internal/logging"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// Handlers serves the interpretation API.
type Handlers struct {
	interp       atomic.Pointer[interpret.Interpreter]
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewHandlers creates handlers backed by interp.
func NewHandlers(interp *interpret.Interpreter, maxBodyBytes int64) *Handlers {
	h := &Handlers{maxBodyBytes: maxBodyBytes, logger: logging.L()}
	h.interp.Store(interp)

	return h
}

// SetInterpreter swaps the interpreter used by subsequent requests.
// Requests already running finish with the previous one.
func (h *Handlers) SetInterpreter(interp *interpret.Interpreter) {
	h.interp.Store(interp)
}

// HandleInterpret handles POST /v1/interpretations.
//
// Request body: a chart document (JSON).
//
// Response:
//
//	200 OK: InterpretResponse
//	400 Bad Request: malformed document or InvalidInput
//	500 Internal Server Error: anything else
func (h *Handlers) HandleInterpret(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.logger.With("request_id", requestID, "handler", "HandleInterpret")

	in, ok := h.bindInput(c, logger)
	if !ok {
		return
	}

	out, err := h.interp.Load().InterpretInput(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, logger, err)
		return
	}

	logger.Info("chart interpreted", "yogas", len(out.Yogas), "diagnostics", out.Diagnostics.Len())

	c.JSON(http.StatusOK, InterpretResponse{RequestID: requestID, Interpretation: out})
}

// HandleCheck handles POST /v1/checks. It validates a chart document and
// returns the diagnostics without interpreting it.
//
// Response:
//
//	200 OK: CheckResponse
//	400 Bad Request: malformed document or InvalidInput
func (h *Handlers) HandleCheck(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.logger.With("request_id", requestID, "handler", "HandleCheck")

	in, ok := h.bindInput(c, logger)
	if !ok {
		return
	}

	_, diags, err := chart.FromInput(in)
	if err != nil {
		h.writeError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, CheckResponse{Valid: !diags.HasErrors(), Diagnostics: diags})
}

// HandleHealth handles GET /v1/health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: Version})
}

// bindInput reads the body as a chart document (JSON or YAML).
func (h *Handlers) bindInput(c *gin.Context, logger *slog.Logger) (*chart.Input, bool) {
	body := c.Request.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(c.Writer, body, h.maxBodyBytes)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		logger.Warn("unreadable request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body: " + err.Error(),
			Code:  CodeInvalidInput,
		})

		return nil, false
	}

	in, err := chart.Parse(data)
	if err != nil {
		h.writeError(c, logger, err)
		return nil, false
	}

	return in, true
}

func (h *Handlers) writeError(c *gin.Context, logger *slog.Logger, err error) {
	var inputErr *chart.InputError
	if errors.As(err, &inputErr) && chart.IsKind(err, chart.KindInvalidInput) {
		logger.Warn("invalid chart", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  CodeInvalidInput,
			Field: inputErr.Field,
		})

		return
	}

	logger.Error("interpretation failed", "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: err.Error(),
		Code:  CodeInterpretFailed,
	})
}

// getOrCreateRequestID gets or creates a request ID.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	c.Header("X-Request-ID", requestID)

	return requestID
}
