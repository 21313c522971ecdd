// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The principal logic here is the pagination/clustering aggregator, which
// drives sequential page fetches against the remote API and merges cluster
// membership across pages with URL-based deduplication.
package services
