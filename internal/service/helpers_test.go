package service

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"

	"ai-study-tutor-be/internal/constant"
	"ai-study-tutor-be/pkg/events"
	"ai-study-tutor-be/pkg/llm"

	"github.com/stretchr/testify/require"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

type fakeProvider struct {
	mu          sync.Mutex
	reply       string
	err         error
	calls       [][]llm.Message
	hadDeadline bool
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, history)
	_, f.hadDeadline = ctx.Deadline()
	return f.reply, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func (f *fakeProvider) Name() string {
	return "fake"
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type logEntry struct {
	Level   string
	Module  string
	Message string
	Details map[string]interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, module, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{Level: level, Module: module, Message: message, Details: details})
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {
	l.record("debug", module, message, details)
}

func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.record("info", module, message, details)
}

func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.record("warn", module, message, details)
}

func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {
	l.record("error", module, message, details)
}

func (l *recordingLogger) Sync() error { return nil }

func (l *recordingLogger) snapshot() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), l.entries...)
}

// newFileHeader builds the *multipart.FileHeader a handler would receive.
func newFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, constant.UploadFormField, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[constant.UploadFormField]
	require.Len(t, files, 1)
	return files[0]
}

func pngOfSize(n int) []byte {
	b := make([]byte, n)
	copy(b, pngSignature)
	return b
}
