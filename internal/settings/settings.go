// Package settings persists flat UI preferences as a key=value properties file
// under the application home directory.
package settings

import (
	"maps"
	"slices"
)

// Settings is a flat string-keyed preference mapping. Values are untyped; callers
// parse booleans, numbers and paths themselves.
type Settings map[string]string

// New returns an empty mapping.
func New() Settings {
	return make(Settings)
}

// Get returns the value for key, or fallback when the key is absent.
func (s Settings) Get(key, fallback string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return fallback
}

// Set stores value under key.
func (s Settings) Set(key, value string) {
	s[key] = value
}

// Delete removes key and reports whether it was present.
func (s Settings) Delete(key string) bool {
	_, ok := s[key]
	delete(s, key)
	return ok
}

// Keys returns the keys in sorted order.
func (s Settings) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Clone returns an independent copy. A nil mapping clones to an empty one.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	maps.Copy(out, s)
	return out
}
