// Package orders defines the batch data model (orders, users, books) and the
// enrichment step that turns raw exported rows into normalized ones.
//
// Enrichment is the only stage that mutates orders; every aggregation stage
// downstream treats the enriched batch as read-only, which is what makes
// per-folder parallel processing safe without locking.
package orders
