package author

import (
	"errors"
	"net/http"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /authors
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.List(r.Context())
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, authors)
}

// Get handles GET /authors/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, a)
}

// Create handles POST /authors
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	a, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, a.ID)
}

// Update handles PUT /authors/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), r.PathValue("id"), in); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// Delete handles DELETE /authors/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

func decodeInput(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.BadBody(w, r, err)
		return Input{}, false
	}
	if details := httpx.ValidateStruct(in); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeValidation, ValidationMessage, details)
		return Input{}, false
	}
	return in, true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeInvalidID, "Invalid author id", nil)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Author not found", nil)
	default:
		httpx.InternalError(w, r, err)
	}
}
