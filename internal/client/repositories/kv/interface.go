package kv

import "context"

// Repository is the key-value contract shared by all slices.
type Repository interface {
	// Get returns ok=false (and no error) when key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete is idempotent.
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error

	// SetMany and DeleteMany apply all changes or none.
	SetMany(ctx context.Context, values map[string]string) error
	DeleteMany(ctx context.Context, keys ...string) error
}

// Well-known keys.
const (
	KeyAuthToken         = "auth_token"
	KeyAuthUser          = "auth_user"
	KeyFavorites         = "favorites"
	PrefixExercisesCache = "exercises_cache_"
)
