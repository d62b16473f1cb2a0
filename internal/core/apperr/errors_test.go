package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"validation", Validation("bad"), ErrValidation},
		{"validationf", Validationf("bad %d", 1), ErrValidation},
		{"not found", NotFound("missing"), ErrNotFound},
		{"conflict", Conflict("busy"), ErrConflict},
		{"conflictf", Conflictf("busy %s", "x"), ErrConflict},
		{"render", Render("pdf", errors.New("chrome")), ErrRender},
		{"repository", Repository("db", errors.New("down")), ErrRepository},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)

			wrapped := fmt.Errorf("service: failed: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.kind)

			for _, other := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrRender, ErrRepository} {
				if other != tt.kind {
					assert.NotErrorIs(t, tt.err, other)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Repository("failed to insert charge", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to insert charge: connection refused", err.Error())
	assert.Equal(t, "bad input", Validation("bad input").Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("x")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Render("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Repository("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Cliente no encontrado", Message(fmt.Errorf("wrap: %w", NotFound("Cliente no encontrado"))))
	assert.Equal(t, "Error al guardar", Message(Repository("Error al guardar", errors.New("pq: secret detail"))))
	assert.Equal(t, "Error interno del servidor", Message(errors.New("raw")))
}
