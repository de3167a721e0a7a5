// Package batch orchestrates the reconciliation pipeline over a set of
// independent input folders.
//
// Each folder under the configured base path is one complete batch holding
// an orders export (Parquet), a users table (CSV) and a book catalog (YAML).
// The orchestrator enriches the orders, runs identity resolution, catalog
// aggregation and temporal aggregation, and writes two tables back into the
// folder: daily_revenue.csv and summary.csv.
//
// # Failure Model
//
//   - A field that fails normalization degrades to nil inside the row.
//   - A row referencing unknown reference data keeps blank joined fields.
//   - A folder with missing or corrupt inputs is logged and skipped.
//   - Only an unreadable base path, or one with no folders, fails the run.
//
// Folders share no mutable state and run through a bounded worker pool.
package batch
