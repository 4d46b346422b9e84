package provider_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translatekit/translatekit/pkg/provider"
)

// echo is a minimal provider used across the package tests: it "translates"
// by uppercasing and reports the char count of the input.
type echo struct {
	*provider.Base
}

func echoDriver(name string) provider.Driver {
	d := provider.Driver{Name: name}
	d.New = func(cfg provider.Config) (provider.Translator, error) {
		base, err := provider.NewBase(d, cfg)
		if err != nil {
			return nil, err
		}
		return &echo{Base: base}, nil
	}
	return d
}

func (e *echo) Translate(ctx context.Context, text, sourceLang, targetLang string) (provider.Response, error) {
	if err := e.Throttle(ctx); err != nil {
		return provider.Response{}, err
	}
	return e.NewResponse(strings.ToUpper(text), sourceLang, targetLang, len(text)), nil
}

func TestNewBase(t *testing.T) {
	t.Parallel()

	t.Run("valid construction", func(t *testing.T) {
		t.Parallel()
		d := echoDriver("echo")
		base, err := provider.NewBase(d, provider.Config{APIKey: "test-key"})
		require.NoError(t, err)

		assert.Equal(t, "echo", base.Name())
		assert.Equal(t, 30*time.Second, base.Config().Timeout)
		assert.Equal(t, provider.DefaultMaxChunkSize, base.Driver().ChunkSize())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		_, err := provider.NewBase(provider.Driver{}, provider.Config{APIKey: "test-key"})
		assert.ErrorIs(t, err, provider.ErrMissingName)
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()
		_, err := provider.NewBase(echoDriver("echo"), provider.Config{})
		assert.ErrorIs(t, err, provider.ErrInvalidConfig)
	})

	t.Run("missing region when required", func(t *testing.T) {
		t.Parallel()
		d := echoDriver("echo")
		d.RequiresRegion = true

		_, err := provider.NewBase(d, provider.Config{APIKey: "test-key"})
		assert.ErrorIs(t, err, provider.ErrInvalidConfig)

		_, err = provider.NewBase(d, provider.Config{APIKey: "test-key", Region: "westus2"})
		require.NoError(t, err)
	})

	t.Run("half-set user agent", func(t *testing.T) {
		t.Parallel()
		cfg := provider.Config{APIKey: "test-key", UserAgentVersion: "1.0.0"}
		_, err := provider.NewBase(echoDriver("echo"), cfg)
		assert.ErrorIs(t, err, provider.ErrInvalidConfig)
	})
}

func TestNewResponse(t *testing.T) {
	t.Parallel()

	base, err := provider.NewBase(echoDriver("echo"), provider.Config{APIKey: "test-key"})
	require.NoError(t, err)

	t.Run("success without error", func(t *testing.T) {
		t.Parallel()
		resp := base.NewResponse("bonjour", "en", "fr", 5)

		assert.Equal(t, provider.StatusSuccess, resp.Status)
		assert.True(t, resp.OK())
		assert.Empty(t, resp.Error)
		assert.Equal(t, "bonjour", resp.TranslatedText)
		assert.Equal(t, "echo", resp.Provider)
		assert.Equal(t, 5, resp.CharCount)
		assert.NotEmpty(t, resp.RequestID)
		assert.Equal(t, time.UTC, resp.Timestamp.Location())
		assert.WithinDuration(t, time.Now().UTC(), resp.Timestamp, time.Minute)
	})

	t.Run("failed with error", func(t *testing.T) {
		t.Parallel()
		resp := base.NewResponse("", "en", "fr", 5, provider.WithError("upstream unavailable"))

		assert.Equal(t, provider.StatusFailed, resp.Status)
		assert.False(t, resp.OK())
		assert.Equal(t, "upstream unavailable", resp.Error)
	})

	t.Run("metadata", func(t *testing.T) {
		t.Parallel()
		resp := base.NewResponse("ok", "en", "fr", 2,
			provider.WithMetadata(provider.Metadata{"model": "v3"}))
		assert.Equal(t, "v3", resp.Metadata["model"])
	})

	t.Run("request ids are unique", func(t *testing.T) {
		t.Parallel()
		a := base.NewResponse("x", "en", "fr", 1)
		b := base.NewResponse("x", "en", "fr", 1)
		assert.NotEqual(t, a.RequestID, b.RequestID)
	})
}

func TestThrottle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("enforces minimum spacing", func(t *testing.T) {
		t.Parallel()
		cfg := provider.Config{APIKey: "test-key", RateLimit: 2}
		base, err := provider.NewBase(echoDriver("echo"), cfg)
		require.NoError(t, err)

		start := time.Now()
		require.NoError(t, base.Throttle(ctx))
		require.NoError(t, base.Throttle(ctx))
		elapsed := time.Since(start)

		// 2 req/s means at least 500ms between calls, minus scheduler slack.
		assert.GreaterOrEqual(t, elapsed, 450*time.Millisecond)
	})

	t.Run("no-op without rate limit", func(t *testing.T) {
		t.Parallel()
		base, err := provider.NewBase(echoDriver("echo"), provider.Config{APIKey: "test-key"})
		require.NoError(t, err)

		start := time.Now()
		for i := 0; i < 10; i++ {
			require.NoError(t, base.Throttle(ctx))
		}
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()
		cfg := provider.Config{APIKey: "test-key", RateLimit: 1}
		base, err := provider.NewBase(echoDriver("echo"), cfg)
		require.NoError(t, err)

		require.NoError(t, base.Throttle(ctx))

		cancelled, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, base.Throttle(cancelled), context.DeadlineExceeded)
	})

	t.Run("safe under concurrent callers", func(t *testing.T) {
		t.Parallel()
		cfg := provider.Config{APIKey: "test-key", RateLimit: 100}
		base, err := provider.NewBase(echoDriver("echo"), cfg)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, base.Throttle(ctx))
			}()
		}
		wg.Wait()
	})
}
