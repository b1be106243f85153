package ocr

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

func TestNew_KnownServices(t *testing.T) {
	for _, name := range ServiceNames() {
		svc, err := New(name, Options{APIKey: "test-key"})
		require.NoError(t, err, name)
		assert.Equal(t, name, svc.Name())
	}
}

func TestNew_UnknownService(t *testing.T) {
	_, err := New("tesseract", Options{APIKey: "test-key"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestNew_MissingKeyFails(t *testing.T) {
	t.Setenv(EnvMistralKey, "")
	_, err := New(ServiceMistral, Options{})
	assert.Error(t, err)
}

func TestNew_KeyFromEnv(t *testing.T) {
	t.Setenv(EnvOpenAIKey, "env-key")
	svc, err := New(ServiceOpenAI, Options{})
	require.NoError(t, err)
	assert.Equal(t, "openai", svc.Name())
}

type fakeOCR struct {
	calls int
}

func (f *fakeOCR) Name() string { return "fake" }

func (f *fakeOCR) ExtractText(context.Context, string) (string, error) {
	f.calls++
	return "text", nil
}

func TestThrottled_Delegates(t *testing.T) {
	inner := &fakeOCR{}
	throttled := NewThrottled(inner, 600)

	text, err := throttled.ExtractText(context.Background(), "photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "text", text)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, "fake", throttled.Name())
}

func TestThrottled_RespectsCancellation(t *testing.T) {
	inner := &fakeOCR{}
	// One request per minute with the burst already spent: the second
	// call has to wait, so cancellation must release it.
	throttled := NewThrottled(inner, 1)

	_, err := throttled.ExtractText(context.Background(), "photo.jpg")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = throttled.ExtractText(ctx, "photo.jpg")
	assert.Error(t, err)
	assert.Equal(t, 1, inner.calls)
}
