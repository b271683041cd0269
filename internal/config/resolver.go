// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "os"

const (
	// APIURLKey is the configuration key holding the directory base address.
	APIURLKey = "API_URL"

	// DefaultAPIURL is used when APIURLKey is unset or empty.
	DefaultAPIURL = "https://api.example.com"
)

// Lookup reports the value of a configuration key and whether it is set.
// [os.LookupEnv] satisfies it.
type Lookup func(key string) (string, bool)

// EnvLookup is the production [Lookup] backed by the process environment.
func EnvLookup() Lookup {
	return os.LookupEnv
}

// ResolveBaseURL returns the directory base address.
//
// A present, non-empty APIURLKey value is returned verbatim, with no
// normalisation. Otherwise [DefaultAPIURL] is returned. A nil lookup behaves
// like an empty configuration. The function never fails.
func ResolveBaseURL(lookup Lookup) string {
	if lookup == nil {
		return DefaultAPIURL
	}

	if v, ok := lookup(APIURLKey); ok && v != "" {
		return v
	}

	return DefaultAPIURL
}

// MapLookup adapts a plain map to a [Lookup].
func MapLookup(values map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}
