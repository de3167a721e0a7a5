// Package database manages the MySQL connection used by the catalog ingest
// sink. The connection is optional for the pipeline commands; only the
// ingest command requires it.
package database
