package repository

// CacheRepository stores serialized projections by key.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
