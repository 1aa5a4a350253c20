// Package exercises reads the third-party exercise catalog through a
// read-through cache kept in the local key-value store.
//
// Catalog.Fetch serves a cached copy when it is younger than the TTL,
// otherwise queries the upstream with the configured API key and stores the
// response under exercises_cache_<canonical query>. Expiry is lazy; nothing
// refreshes entries in the background and the cache is not size-bounded.
//
// Fallback returns a small bundled list for when the upstream is down.
package exercises
