package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantStatus int
		wantCode   string
	}{
		{"validation", Validation("content is required"), http.StatusBadRequest, CodeValidation},
		{"not found", NotFound("conversation not found"), http.StatusNotFound, CodeNotFound},
		{"generation", Generation(errors.New("boom")), http.StatusBadGateway, CodeGeneration},
		{"upload rejected", UploadRejected("invalid file type"), http.StatusBadRequest, CodeUpload},
		{"upload io", UploadIO(errors.New("disk full")), http.StatusInternalServerError, CodeUploadIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status())
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAsThroughWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := fmt.Errorf("send message: %w", Generation(cause))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindGeneration, appErr.Kind)
	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, Is(wrapped, KindGeneration))
	assert.False(t, Is(wrapped, KindNotFound))
	assert.Equal(t, "failed to generate AI response: connection refused", appErr.Error())

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
