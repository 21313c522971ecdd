// Package domain defines the core business entities for local news search.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Article: A single news item returned by the remote API
//   - Cluster: Articles the remote API judged to cover the same story
//   - AggregatedResult: Clusters merged across fetched pages
//   - ClusterRepresentative: The chosen stand-in article for a cluster
//
// It also holds the pure decision logic that needs no collaborators:
// the cluster representative selector and the clustering heuristic.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
