// Package integrations provides the shared HTTP layer for remote API clients.
//
// # Overview
//
// API-specific clients live in subpackages and embed [Client]:
//
//   - [met]: The Metropolitan Museum of Art Collection API
//
// # Client Pattern
//
//	client := met.NewClient(backend, met.Options{CacheTTL: 24 * time.Hour})
//	obj, err := client.Object(ctx, 436532, false)  // false = use cache
//
// [Client] handles:
//   - JSON GET requests with a per-request timeout
//   - Response caching through any [cache.Cache] backend
//   - Optional retries for transient failures ([cache.RetryableError])
//   - Optional client-side rate limiting (token bucket)
//
// # Errors
//
// Failures are reported through sentinel errors that callers can test with
// errors.Is: [ErrNotFound] for 404, [ErrRateLimited] for 429/403,
// [ErrNetwork] for transport failures and other non-200 statuses, and
// [ErrDecode] for bodies that are not the expected JSON.
//
// [met]: github.com/matzehuels/metgallery/pkg/integrations/met
package integrations
