// Package kv is the device-local key-value store.
//
// Values are strings; callers JSON-encode anything structured. Each caller
// owns a disjoint key prefix (auth_*, favorites, exercises_cache_*), which is
// a convention rather than something the store enforces.
//
// Two implementations exist: SQLiteRepository, the durable store, and
// MemoryRepository, the fallback used when the database cannot be opened.
// Callers must not assume a Set survived a restart.
package kv
