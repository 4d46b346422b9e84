package provider

import (
	"context"
	"fmt"

	"github.com/translatekit/translatekit/pkg/async"
)

// TranslateAsync resolves the asynchronous translate path for a translator.
//
// Translators implementing AsyncTranslator are delegated to directly. A
// driver that declares async support without such an implementation is
// misconfigured and fails with ErrAsyncNotImplemented. Everything else falls
// back to running the synchronous Translate on its own goroutine, keeping the
// caller unblocked.
func TranslateAsync(ctx context.Context, d Driver, t Translator, text, sourceLang, targetLang string) (*async.Future[Response], error) {
	if at, ok := t.(AsyncTranslator); ok {
		return at.TranslateAsync(ctx, text, sourceLang, targetLang), nil
	}

	if d.SupportsAsync {
		return nil, fmt.Errorf("%w: provider %q", ErrAsyncNotImplemented, d.Name)
	}

	return async.Run(ctx, func(ctx context.Context) (Response, error) {
		return t.Translate(ctx, text, sourceLang, targetLang)
	}), nil
}

// BulkTranslate translates a batch of texts. Translators implementing
// BulkTranslator handle the batch themselves; otherwise each text is
// translated sequentially. Either way the result holds exactly one response
// per input, in input order. The first raised error aborts the batch.
func BulkTranslate(ctx context.Context, t Translator, texts []string, sourceLang, targetLang string) ([]Response, error) {
	if bt, ok := t.(BulkTranslator); ok {
		return bt.BulkTranslate(ctx, texts, sourceLang, targetLang)
	}

	responses := make([]Response, 0, len(texts))
	for _, text := range texts {
		resp, err := t.Translate(ctx, text, sourceLang, targetLang)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// BulkTranslateAsync fans a batch out through the async translate path and
// gathers the responses in input order. Instance-level rate limiting still
// applies inside each translate call, so fan-out width is bounded by the
// provider's own pacing.
func BulkTranslateAsync(ctx context.Context, d Driver, t Translator, texts []string, sourceLang, targetLang string) ([]Response, error) {
	futures := make([]*async.Future[Response], len(texts))
	for i, text := range texts {
		future, err := TranslateAsync(ctx, d, t, text, sourceLang, targetLang)
		if err != nil {
			return nil, err
		}
		futures[i] = future
	}
	return async.WaitAll(futures...)
}
