// Package rendergraph compiles a DAG of render passes into a per-queue
// command-list schedule and drives its per-frame submission.
//
// Passes are registered against two independent cohorts, precompute and
// main-frame, each backed by its own core.Graph so precede/succeed
// declarations stay cheap adjacency-set edges on the teacher's existing
// graph type. Compile topologically orders each cohort with kahnSort, an
// in-degree-queue Kahn's-algorithm sort written for this package, because
// the compile phase needs the in-degree bookkeeping and per-cohort queue
// discipline the spec's batch submission walk depends on, and because a
// cycle surfaces as a non-empty remainder after the queue drains rather
// than requiring a separate DFS back-edge pass.
package rendergraph
