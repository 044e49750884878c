// Package slink computes an exact single-linkage hierarchical clustering
// of a finite set of points in Euclidean space, producing the canonical
// pointer representation of the resulting dendrogram (Sibson's SLINK
// algorithm): two arrays, Pi and Lambda, such that point i joins the
// cluster rooted at Pi[i] at distance level Lambda[i].
//
// 🚀 Why pointer representation?
//
//	(Pi, Lambda) encodes the whole dendrogram in O(n) space without ever
//	materializing a tree: sample i belongs to the same cluster as Pi[i]
//	from threshold Lambda[i] upward. This is the classic Sibson (1973)
//	output format, still the one most single-linkage implementations
//	converge on because it is O(n²) time, O(n) space, and update-in-place.
//
// ✨ Algorithm shape:
//
//	For n = 1 .. N-1, Cluster performs four stages per new sample:
//	  1. seed the new sample's own (Pi, Lambda) entry
//	  2. compute its distance to every earlier sample (parallelizable)
//	  3. apply Sibson's recurrence sequentially, updating the scratch row
//	  4. fix up ancestor pointers (parallelizable)
//	followed by an optional square-root post-pass when a squared-distance
//	kernel (kernel.SSEOptNoSqrt / kernel.AVXOptNoSqrt) was used.
//
// Concurrency: Cluster is a pure function over its inputs — it is not
// reentrant on a shared (Pi, Lambda, Points) tuple (a given tuple must not
// be operated on by two concurrent Cluster calls), but distinct calls over
// distinct tuples are independent. Cluster carries no internal mutex: it
// is a one-shot computation, not a long-lived mutable object, so there is
// no shared state for a lock to protect.
//
//	import (
//	    "github.com/slink-go/slink/data"
//	    "github.com/slink-go/slink/parallel"
//	    "github.com/slink-go/slink/slink"
//	)
//
//	points, _ := data.NewLinearized(buf, n, dim, dim)
//	cfg := parallel.NewConfig()
//	result, err := slink.ClusterPoints(points, cfg)
package slink
