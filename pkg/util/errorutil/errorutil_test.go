package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeUpstream struct{ status int }

func (f fakeUpstream) Error() string       { return fmt.Sprintf("backend said %d", f.status) }
func (f fakeUpstream) UpstreamStatus() int { return f.status }

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"domain passthrough", NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{"wrapped domain", fmt.Errorf("ctx: %w", NewNotFound("ticket", nil)), "NOT_FOUND", http.StatusNotFound},
		{"fiber not found", fiber.ErrNotFound, "NOT_FOUND", http.StatusNotFound},
		{"upstream 500", fakeUpstream{status: 500}, "UPSTREAM_ERROR", http.StatusBadGateway},
		{"upstream network", fakeUpstream{status: 0}, "UPSTREAM_ERROR", http.StatusBadGateway},
		{"upstream 404", fakeUpstream{status: 404}, "NOT_FOUND", http.StatusNotFound},
		{"plain error", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de := ToDomainError(tt.err)
			assert.Equal(t, tt.wantCode, de.Code)
			assert.Equal(t, tt.wantStatus, de.HTTPStatus)
		})
	}
	assert.Nil(t, ToDomainError(nil))
}
