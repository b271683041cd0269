// Package config provides configuration loading, merging, and validation
// facilities for the directory client and the fixture directory server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (an optional .env file is loaded first)
//  2. Command-line flags
//  3. JSON config file
//
// The directory base address is special: it is resolved by [ResolveBaseURL]
// from the API_URL key through an injectable [Lookup], falling back to
// [DefaultAPIURL]. [ClientConfig.Lookup] lets flag and JSON values take part
// in that resolution.
//
// The main entry points are [GetClientConfig] and [GetServerConfig].
package config
