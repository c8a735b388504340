package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "stockledger/internal/errors"
)

func TestMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCategory string
	}{
		{"validation", apperror.NewValidationError("quantidade inválida"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", apperror.NewNotFoundError("produto 99"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", apperror.NewConflictError("versão"), http.StatusConflict, "CONFLICT"},
		{"insufficient stock", apperror.NewInsufficientStockError("P1", 41, 40), http.StatusConflict, "INSUFFICIENT_STOCK"},
		{"internal", apperror.NewInternalError("falha", errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"wrapped", fmt.Errorf("camada: %w", apperror.NewValidationError("x")), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"untyped", errors.New("qualquer"), http.StatusInternalServerError, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, category, _ := apperror.MapToHTTPStatus(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCategory, category)
		})
	}
}

func TestInsufficientStockError_Message(t *testing.T) {
	err := apperror.NewInsufficientStockError("P1", 41, 40)

	assert.Contains(t, err.Error(), "P1")
	assert.Contains(t, err.Error(), "41")
	assert.Contains(t, err.Error(), "40")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("context canceled")
	err := apperror.NewInternalError("Operação cancelada.", cause)

	assert.ErrorIs(t, err, cause)
}
