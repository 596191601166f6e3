// Package secrets retrieves and caches the shared API key that authenticates
// first-party requests.
//
// # Sources
//
// The key is stored as a JSON document {"apiKey": "..."}:
//   - ObjectSource reads it from an object in an S3-compatible bucket (via core/storage).
//   - StaticSource serves a payload from configuration, for local development.
//
// # Cache
//
// Cache keeps the parsed key in memory for DefaultTTL (5 minutes). A fresh hit does no
// I/O; a miss fetches once even under concurrent callers. A failed fetch (missing
// configuration, unreachable store, malformed payload) returns no key and leaves the
// cache empty, so the next call tries again. Cache is an explicit object so callers and
// tests own its lifetime; Reset empties it.
//
// # Usage
//
//	src, _ := secrets.NewSource(cfg.Secrets, storageClient, cfg.Storage.Bucket)
//	cache := secrets.NewCache(src, logger)
//	key, ok := cache.Get(ctx)
package secrets
