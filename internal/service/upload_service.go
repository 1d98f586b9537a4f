package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"ai-study-tutor-be/internal/constant"
	"ai-study-tutor-be/internal/dto"
	"ai-study-tutor-be/internal/pkg/apperror"
	"ai-study-tutor-be/internal/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var allowedUploadTypes = []string{"image/jpeg", "image/png", "image/webp", "application/pdf"}

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

type IUploadService interface {
	Save(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error)
	// Resolve maps a stored name back to the file on disk. Names that are not
	// a plain file inside the upload directory are reported as not found.
	Resolve(name string) (*dto.StoredFile, error)
}

type uploadService struct {
	dir      string
	maxBytes int64
	now      func() time.Time
	logger   logger.ILogger
}

func NewUploadService(dir string, maxBytes int64, log logger.ILogger) (IUploadService, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &uploadService{
		dir:      dir,
		maxBytes: maxBytes,
		now:      time.Now,
		logger:   log,
	}, nil
}

func (s *uploadService) Save(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if file == nil {
		return nil, apperror.UploadRejected("No file uploaded")
	}

	// 1. Size
	if file.Size > s.maxBytes {
		return nil, apperror.UploadRejected(fmt.Sprintf("File too large. Maximum size is %d bytes.", s.maxBytes))
	}

	// 2. Declared type
	declared := strings.ToLower(strings.TrimSpace(strings.SplitN(file.Header.Get("Content-Type"), ";", 2)[0]))
	if !isAllowedUploadType(declared) {
		return nil, invalidTypeError()
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperror.UploadIO(err)
	}
	defer src.Close()

	// 3. Sniffed type
	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, apperror.UploadIO(err)
	}
	if !isAllowedMime(detected) {
		return nil, invalidTypeError()
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, apperror.UploadIO(err)
	}

	// 4. Store
	name := s.fileName(file.Filename, detected)
	dstPath := filepath.Join(s.dir, name)
	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, apperror.UploadIO(err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return nil, apperror.UploadIO(err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dstPath)
		return nil, apperror.UploadIO(err)
	}

	s.logger.Info("UPLOAD", "File stored", map[string]interface{}{
		"name":      name,
		"size":      file.Size,
		"mime_type": detected.String(),
	})

	return &dto.UploadResponse{ImageUrl: constant.UploadURLPrefix + name}, nil
}

func (s *uploadService) Resolve(name string) (*dto.StoredFile, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return nil, apperror.NotFound("File not found")
	}

	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, apperror.NotFound("File not found")
	}

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, apperror.UploadIO(err)
	}

	return &dto.StoredFile{Name: name, Path: path, MimeType: detected.String()}, nil
}

// fileName is <unix millis>-<random suffix><ext>. The client's extension is
// kept when it looks sane, otherwise the sniffed one is used.
func (s *uploadService) fileName(original string, detected *mimetype.MIME) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	if !extPattern.MatchString(ext) {
		ext = detected.Extension()
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), suffix, ext)
}

func isAllowedUploadType(contentType string) bool {
	for _, t := range allowedUploadTypes {
		if contentType == t {
			return true
		}
	}
	return false
}

func isAllowedMime(m *mimetype.MIME) bool {
	for _, t := range allowedUploadTypes {
		if m.Is(t) {
			return true
		}
	}
	return false
}

func invalidTypeError() error {
	return apperror.UploadRejected("Invalid file type. Only JPG, PNG, WebP, and PDF files are allowed.")
}
