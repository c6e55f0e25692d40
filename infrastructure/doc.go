// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on patrickmn/go-cache
// - cache/redis: Redis-based cache for multi-instance deployments
// - cache/sqlite: File-backed cache that survives restarts
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger built on sirupsen/logrus
//
// Infrastructure components are designed to be pluggable (easy to swap
// implementations), configurable, and production-ready with retries,
// timeouts and error handling built in.
//
// # Cache Example
//
//	cache := memory.NewMemoryCache(time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// # HTTP Client Example
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // handle error
//	}
//	defer resp.Body().Close()
package infrastructure
