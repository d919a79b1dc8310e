package blackhole

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"blackhole/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type listParams struct {
	Limit  int `json:"limit" validate:"gte=1,lte=100"`
	Offset int `json:"offset" validate:"gte=0"`
}

func intParam(raw string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}

// List handles GET /api/v1/blackholes
// @Summary List black holes
// @Tags blackholes
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} BlackHole
// @Failure 422 {object} httpx.ErrorResponse
// @Router /api/v1/blackholes [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, okLimit := intParam(query.Get("limit"), DefaultLimit)
	offset, okOffset := intParam(query.Get("offset"), 0)
	var details []httpx.ErrorDetail
	if !okLimit {
		details = append(details, httpx.ErrorDetail{Field: "limit", Message: "limit must be an integer"})
	}
	if !okOffset {
		details = append(details, httpx.ErrorDetail{Field: "offset", Message: "offset must be an integer"})
	}
	if details == nil {
		details = httpx.ValidateStruct(listParams{Limit: limit, Offset: offset})
	}
	if details != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid query parameters", details)
		return
	}

	items, err := h.service.List(r.Context(), Query{Limit: limit, Offset: offset})
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list black holes")
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

// Get handles GET /api/v1/blackholes/{id}
// @Summary Get a black hole
// @Tags blackholes
// @Produce json
// @Param id path int true "Black hole id"
// @Success 200 {object} BlackHole
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/blackholes/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid path parameter",
			[]httpx.ErrorDetail{{Field: "id", Message: "id must be an integer"}})
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Black hole not found", nil)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("id", id).Msg("get black hole")
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Create handles POST /api/v1/blackholes
// @Summary Add a black hole
// @Tags blackholes
// @Accept json
// @Produce json
// @Param body body CreateInput true "New black hole"
// @Success 201 {object} BlackHole
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Router /api/v1/blackholes [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	in.Name = strings.TrimSpace(in.Name)
	if details := httpx.ValidateStruct(in); details != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	b, err := h.service.Create(r.Context(), in)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("create black hole")
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}
