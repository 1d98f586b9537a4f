package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-study-tutor-be/internal/constant"
	"ai-study-tutor-be/internal/pkg/apperror"
	"ai-study-tutor-be/internal/pkg/logger"
	"ai-study-tutor-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompletion(t *testing.T, provider *fakeProvider) (ICompletionService, *uploadService) {
	t.Helper()
	uploads, _ := newTestUploadService(t)
	return NewCompletionService(provider, uploads, 5*time.Second, logger.NewNopLogger()), uploads
}

func TestCompletionTextOnly(t *testing.T) {
	provider := &fakeProvider{reply: "Step 1: subtract 3 from both sides."}
	svc, _ := newTestCompletion(t, provider)

	reply, err := svc.Generate(context.Background(), "Solve 2x+3=7", "")
	require.NoError(t, err)
	assert.Equal(t, "Step 1: subtract 3 from both sides.", reply)

	require.Len(t, provider.calls, 1)
	history := provider.calls[0]
	require.Len(t, history, 2)
	assert.Equal(t, llm.RoleSystem, history[0].Role)
	assert.Equal(t, constant.TutorSystemPrompt, history[0].Content)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "Solve 2x+3=7"}, history[1])
	assert.True(t, provider.hadDeadline)
	assert.Equal(t, "fake", svc.ProviderName())
}

func TestCompletionImageOnlyExternalURL(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, _ := newTestCompletion(t, provider)

	_, err := svc.Generate(context.Background(), "", "https://example.com/problem.png")
	require.NoError(t, err)

	user := provider.calls[0][1]
	assert.Equal(t, constant.ImageOnlyPrompt, user.Content)
	assert.Equal(t, "https://example.com/problem.png", user.ImageURL)
}

func TestCompletionInlinesLocalImage(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, uploads := newTestCompletion(t, provider)

	content := pngOfSize(32)
	res, err := uploads.Save(context.Background(), newFileHeader(t, "p.png", "image/png", content))
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "What is x?", res.ImageUrl)
	require.NoError(t, err)

	user := provider.calls[0][1]
	assert.Equal(t, "What is x?", user.Content)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(content), user.ImageURL)
}

func TestCompletionLocalPdfGoesInText(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, uploads := newTestCompletion(t, provider)

	res, err := uploads.Save(context.Background(), newFileHeader(t, "w.pdf", "application/pdf", []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")))
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "Question 3 please", res.ImageUrl)
	require.NoError(t, err)

	user := provider.calls[0][1]
	assert.Empty(t, user.ImageURL)
	assert.True(t, strings.HasPrefix(user.Content, "Question 3 please"))
	assert.Contains(t, user.Content, strings.TrimPrefix(res.ImageUrl, constant.UploadURLPrefix))
}

func TestCompletionFailures(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		imageUrl string
		calls    int
	}{
		{name: "upstream error", provider: &fakeProvider{err: errors.New("503 from upstream")}, calls: 1},
		{name: "missing key", provider: &fakeProvider{err: llm.ErrMissingAPIKey}, calls: 1},
		{name: "unknown local upload", provider: &fakeProvider{reply: "unused"}, imageUrl: "/api/uploads/nope.png", calls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestCompletion(t, tt.provider)
			_, err := svc.Generate(context.Background(), "hi", tt.imageUrl)
			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.KindGeneration))
			assert.Equal(t, tt.calls, tt.provider.callCount())
		})
	}
}

func TestCompletionEmptyReplyFallsBack(t *testing.T) {
	svc, _ := newTestCompletion(t, &fakeProvider{reply: "  "})
	reply, err := svc.Generate(context.Background(), "hi", "")
	require.NoError(t, err)
	assert.Equal(t, constant.NoResponseReply, reply)
}
