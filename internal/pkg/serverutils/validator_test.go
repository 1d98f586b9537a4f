package serverutils

import (
	"testing"

	"ai-study-tutor-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ConversationId string `json:"conversationId" validate:"required"`
	Content        string `json:"content" validate:"required_without=ImageUrl"`
	ImageUrl       string `json:"imageUrl"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     sampleRequest
		wantErr string
	}{
		{
			name: "valid text",
			req:  sampleRequest{ConversationId: "c1", Content: "Solve 2x+3=7"},
		},
		{
			name: "valid image only",
			req:  sampleRequest{ConversationId: "c1", ImageUrl: "/api/uploads/a.png"},
		},
		{
			name:    "missing conversation",
			req:     sampleRequest{Content: "hi"},
			wantErr: "conversationId is required",
		},
		{
			name:    "no content and no image",
			req:     sampleRequest{ConversationId: "c1"},
			wantErr: "content is required when imageUrl is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, apperror.KindValidation, appErr.Kind)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}
