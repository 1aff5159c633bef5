package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/haripriyarao26/find-a-path/internal/analysis"
	"github.com/haripriyarao26/find-a-path/internal/embedding"
	"github.com/haripriyarao26/find-a-path/internal/extraction"
	"github.com/haripriyarao26/find-a-path/internal/vocabulary"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
//
// Timeouts are checked before provider errors: a provider failure caused by
// the request deadline is a timeout from the caller's point of view.
func HTTPStatus(err error) int {
	var validationErr *analysis.ValidationError
	var providerErr *embedding.ProviderError
	var unsupportedErr *extraction.UnsupportedTypeError
	var parseErr *extraction.ParseError
	var configErr *vocabulary.ConfigError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &validationErr), errors.As(err, &unsupportedErr), errors.As(err, &parseErr):
		return http.StatusBadRequest
	case errors.As(err, &providerErr):
		return http.StatusBadGateway
	case errors.As(err, &configErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
