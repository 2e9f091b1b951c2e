// Package dfs implements depth-first search over any implicit graph whose
// vertices are comparable values and whose edges come from a neighbour
// function.
//
// Key features:
//   - DFS(start, neighbors, opts...): recursive traversal from one root
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Reaches: early-exit reachability test for a target predicate
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable vertices, plus hook and filter costs.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrNilNeighbors           if no neighbour function is given.
//   - ErrNeighbors              if the neighbour function fails.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
