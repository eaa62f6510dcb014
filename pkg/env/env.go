// Package env reads single process-environment overrides that live outside
// the structured KENANGAN_ config, such as the platform-injected PORT.
package env

import "os"

// Get returns the named environment variable, or fallback when it is unset
// or empty.
func Get(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	return val
}
