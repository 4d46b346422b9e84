// Package provider defines the contract translation backends implement and
// the shared plumbing they build on.
//
// # Contract
//
// A provider ships three things: a Driver describing its identity and
// capabilities, a Factory that builds instances from a Config, and a type
// satisfying Translator. The only mandatory operation is Translate; the
// optional AsyncTranslator and BulkTranslator interfaces upgrade a provider
// with native async or batch paths, the same way io.WriterTo upgrades an
// io.Reader. The package-level TranslateAsync and BulkTranslate functions
// resolve those upgrades and supply the default behavior when they are
// absent.
//
// # Failure channels
//
// Upstream business failures (bad credentials, quota exhausted, API errors)
// travel row-shaped: a Response with StatusFailed and a human-readable Error.
// The error return of Translate is reserved for raised failures. The
// registry's health check leans on this split: a failed response resolves
// the check immediately, a returned error is retried.
//
// # Implementing a provider
//
//	type acme struct {
//		*provider.Base
//	}
//
//	var Driver = provider.Driver{
//		Name:           "acme",
//		RequiresRegion: true,
//		New: func(cfg provider.Config) (provider.Translator, error) {
//			base, err := provider.NewBase(Driver, cfg)
//			if err != nil {
//				return nil, err
//			}
//			return &acme{Base: base}, nil
//		},
//	}
//
//	func (a *acme) Translate(ctx context.Context, text, src, tgt string) (provider.Response, error) {
//		if err := a.Throttle(ctx); err != nil {
//			return provider.Response{}, err
//		}
//		out, err := a.callUpstream(ctx, text, src, tgt)
//		if err != nil {
//			return a.NewResponse("", src, tgt, len(text), provider.WithError(err.Error())), nil
//		}
//		return a.NewResponse(out, src, tgt, len(text)), nil
//	}
//
// Base validates the configuration at construction (missing API key, missing
// region for region-bound drivers, half-set User-Agent override), builds
// standardized responses with fresh request IDs, and paces requests when
// Config.RateLimit is set.
package provider
