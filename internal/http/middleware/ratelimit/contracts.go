package ratelimit

// Limiter decides whether a given key may proceed.
type Limiter interface {
	Allow(key string) bool
}
