// Package coordinator implements the Distributed Coordinator (component E):
// the scheduling infrastructure that lets a learning run be spread across P
// cooperating workers instead of a single goroutine. It provides the
// building blocks spec §5 names — contiguous block distribution, a
// segmented parallel prefix-scan argmin, set-union/intersection collectives,
// and weighted imbalance repair — plus a worker pool that applies them to
// fan a target list out across goroutines.
//
// A single-process run (P=1, or simply calling the learn package directly)
// is the degenerate case that omits every coordination step, exactly as
// spec §5 describes. Nothing here is MPI: "worker" means goroutine, and
// "collective" means a function over in-process sets, grounded on
// _examples/junjiewwang-perf-analysis/pkg/parallel/worker_pool.go's
// generic WorkerPool[T,R] shape and golang.org/x/sync/errgroup's
// fan-out/fan-in idiom rather than on any message-passing library.
package coordinator
