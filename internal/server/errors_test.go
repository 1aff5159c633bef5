package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haripriyarao26/find-a-path/internal/analysis"
	"github.com/haripriyarao26/find-a-path/internal/embedding"
	"github.com/haripriyarao26/find-a-path/internal/extraction"
	"github.com/haripriyarao26/find-a-path/internal/vocabulary"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation error",
			err:  &analysis.ValidationError{Field: "skills", Message: "required"},
			want: http.StatusBadRequest,
		},
		{
			name: "unsupported file type",
			err:  &extraction.UnsupportedTypeError{Filename: "resume.png"},
			want: http.StatusBadRequest,
		},
		{
			name: "unreadable document",
			err:  &extraction.ParseError{Filename: "resume.pdf", Err: errors.New("invalid header")},
			want: http.StatusBadRequest,
		},
		{
			name: "provider error",
			err:  &embedding.ProviderError{Message: "upstream unavailable"},
			want: http.StatusBadGateway,
		},
		{
			name: "wrapped provider error",
			err:  fmt.Errorf("analysis failed: %w", &embedding.ProviderError{Message: "boom"}),
			want: http.StatusBadGateway,
		},
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: http.StatusGatewayTimeout,
		},
		{
			name: "deadline wins over provider wrapping",
			err:  fmt.Errorf("embed: %w", context.DeadlineExceeded),
			want: http.StatusGatewayTimeout,
		},
		{
			name: "vocabulary config error",
			err:  &vocabulary.ConfigError{Message: "no categories"},
			want: http.StatusInternalServerError,
		},
		{
			name: "unknown error",
			err:  errors.New("something else"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
