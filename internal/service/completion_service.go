package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"ai-study-tutor-be/internal/constant"
	"ai-study-tutor-be/internal/pkg/apperror"
	"ai-study-tutor-be/internal/pkg/logger"
	"ai-study-tutor-be/pkg/llm"
)

type ICompletionService interface {
	// Generate returns the tutor's reply to content and an optional image
	// reference. Upstream faults come back as a GenerationError.
	Generate(ctx context.Context, content, imageUrl string) (string, error)
	ProviderName() string
}

type completionService struct {
	provider llm.LLMProvider
	uploads  IUploadService
	timeout  time.Duration
	logger   logger.ILogger
}

func NewCompletionService(
	provider llm.LLMProvider,
	uploads IUploadService,
	timeout time.Duration,
	log logger.ILogger,
) ICompletionService {
	return &completionService{
		provider: provider,
		uploads:  uploads,
		timeout:  timeout,
		logger:   log,
	}
}

func (s *completionService) ProviderName() string {
	return s.provider.Name()
}

func (s *completionService) Generate(ctx context.Context, content, imageUrl string) (string, error) {
	userTurn, err := s.userTurn(content, imageUrl)
	if err != nil {
		return "", apperror.Generation(err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	reply, err := s.provider.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: constant.TutorSystemPrompt},
		userTurn,
	})
	if err != nil {
		s.logger.Error("COMPLETION", "Chat completion failed", map[string]interface{}{
			"provider": s.provider.Name(),
			"error":    err,
		})
		return "", apperror.Generation(err)
	}

	s.logger.Debug("COMPLETION", "Chat completion finished", map[string]interface{}{
		"provider":    s.provider.Name(),
		"duration_ms": time.Since(started).Milliseconds(),
		"has_image":   userTurn.ImageURL != "",
	})

	if strings.TrimSpace(reply) == "" {
		return constant.NoResponseReply, nil
	}
	return reply, nil
}

func (s *completionService) userTurn(content, imageUrl string) (llm.Message, error) {
	turn := llm.Message{Role: llm.RoleUser, Content: content}
	if imageUrl == "" {
		return turn, nil
	}

	if content == "" {
		turn.Content = constant.ImageOnlyPrompt
	}

	if !strings.HasPrefix(imageUrl, constant.UploadURLPrefix) {
		turn.ImageURL = imageUrl
		return turn, nil
	}

	// Our own uploads are not reachable from the provider, inline them.
	file, err := s.uploads.Resolve(strings.TrimPrefix(imageUrl, constant.UploadURLPrefix))
	if err != nil {
		return turn, err
	}
	if !strings.HasPrefix(file.MimeType, "image/") {
		turn.Content = fmt.Sprintf("%s\n\nAttached document: %s", content, file.Name)
		if content == "" {
			turn.Content = fmt.Sprintf("Please help with the attached document: %s", file.Name)
		}
		return turn, nil
	}

	data, err := os.ReadFile(file.Path)
	if err != nil {
		return turn, err
	}
	turn.ImageURL = "data:" + file.MimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	return turn, nil
}
