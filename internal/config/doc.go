// Package config provides environment-based configuration.
//
// Every setting has a sensible default, so the server starts with no
// environment at all. Numeric and boolean settings are validated on load.
package config
