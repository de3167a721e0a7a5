// Package storage wraps the Minio/S3 client behind a small interface so the
// report publisher can be tested against mocks. Only the pipeline's
// publishing path talks to object storage; all batch inputs are read from
// the local filesystem.
package storage
