// Package config loads and validates the application configuration.
//
// Values are collected from three sources — environment variables,
// command-line flags, and an optional JSON file — and merged with a builder
// so that the first non-zero value for a field wins. The merged result is
// validated once at startup; the rest of the application receives it as an
// immutable struct and never reads ambient configuration directly.
package config
