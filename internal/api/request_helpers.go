package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
)

// getPathUUID extracts a UUID from the URL path parameters.
// A missing or malformed value yields a *domain.ValidationError.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil || !domain.IsUUID(pathParam) {
		return uuid.Nil, domain.NewValidationError(paramName, "must be a UUID", domain.ErrInvalidID)
	}

	return id, nil
}

// getPathTerm returns the trimmed path parameter.
func getPathTerm(r *http.Request, paramName string) (string, error) {
	term := strings.TrimSpace(chi.URLParam(r, paramName))
	if term == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}
	return term, nil
}

// parseListQuery reads limit, offset and search from the query string.
// Non-integer limit or offset values are validation errors.
func parseListQuery(r *http.Request) (ListProductsQuery, error) {
	values := r.URL.Query()
	q := ListProductsQuery{Search: values.Get("search")}

	var err error
	if q.Limit, err = optionalInt(values, "limit"); err != nil {
		return q, err
	}
	if q.Offset, err = optionalInt(values, "offset"); err != nil {
		return q, err
	}
	return q, nil
}

func optionalInt(values url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.NewValidationError(key, "must be an integer", domain.ErrValidation)
	}
	return &n, nil
}
