// Package clusterpart implements balanced recursive graph bisection: the
// partitioner virtualgeometry uses to turn a triangle-adjacency or
// cluster-adjacency graph into contiguous parts of bounded size.
//
// No METIS-equivalent library exists anywhere in the retrieval pack this
// module was built from, so Bisect is a from-scratch implementation. It
// keeps the same black-box contract a real partitioner would expose:
// given an adjacency map and a part-size range, recursively split the node
// set, growing each side greedily to keep the cut edge weight low, until no
// part exceeds the maximum size (the minimum is not enforced), returning a
// node reordering that packs each part into a contiguous span.
package clusterpart
