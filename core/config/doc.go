// Package config assembles the application configuration from struct-tag
// defaults, an optional .env file, and environment variable overrides.
//
// Every tunable that used to be a process-wide literal in earlier versions
// of the pipeline (exchange rate, base path, top-day count) lives here so
// runs are reproducible with varied settings.
package config
