package httpx

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidBody     = "INVALID_BODY"
	CodeInvalidID       = "INVALID_ID"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL_ERROR"
	CodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
	CodeRateLimited     = "RATE_LIMIT_EXCEEDED"
)

type ErrorResponse struct {
	Message   string        `json:"message"`
	Code      string        `json:"code,omitempty"`
	Details   []ErrorDetail `json:"details,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CreatedResponse is the body returned after inserting a document.
type CreatedResponse struct {
	ID string `json:"id"`
}

func JSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func JSONSuccess(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

func JSONCreated(w http.ResponseWriter, id string) {
	JSON(w, http.StatusCreated, CreatedResponse{ID: id})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, code string, message string, details []ErrorDetail) {
	JSON(w, statusCode, ErrorResponse{
		Message:   message,
		Code:      code,
		Details:   details,
		RequestID: RequestIDFrom(r),
	})
}

// InternalError logs err against the request and writes a 500 whose
// details carry the cause, with connection-string credentials masked.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("internal error: method=%s path=%s request_id=%s error=%v", r.Method, r.URL.Path, RequestIDFrom(r), err)
	JSONError(w, r, http.StatusInternalServerError, CodeInternal, "Internal server error",
		[]ErrorDetail{{Field: "error", Message: redactCredentials(err.Error())}})
}

var credentialsPattern = regexp.MustCompile(`([a-z][a-z0-9+.-]*://)[^@/\s]+@`)

func redactCredentials(s string) string {
	return credentialsPattern.ReplaceAllString(s, "${1}***@")
}
