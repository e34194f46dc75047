// Package seqwise provides lazy, composable sequence transformations for Go:
// lock-step combination of independent sources, structural flattening of
// tuple-like items, non-consuming projections, and normalization of
// heterogeneous sources into a single uniform iteration protocol.
// Nothing is materialized eagerly, non-trivial items are never copied
// behind the caller's back, and every composed view keeps track of whether
// it may be traversed more than once.
//
// # Views and promotion
//
// The central type is [View]: a lazily evaluated sequence of items. Any
// readable source with a computable end is promoted into a view by one of
// the constructors — [FromSlice] and [FromSliceRef] for in-memory storage,
// [FromChan] for channels, [FromSeq] for standard iterators, [FromNext]
// for bare cursor functions. Promotion changes only the protocol that
// describes the source, never the items it yields.
//
// # Single-pass and reentrant views
//
// Every view is classified, at the moment it is built, as either reentrant
// (multi-pass) or single-pass. Slices are reentrant; channels are
// single-pass; sources without structurally evident guarantees default to
// single-pass and can be upgraded with [Reentrant]. Adaptors propagate the
// classification: a composed view is reentrant exactly when all of its
// inputs are. Traversing an exhausted single-pass view is not an error —
// it simply observes no items.
//
// # Combining and transforming
//
// [Zip2], [Zip3], [Zip4] and [ZipSame] combine sources positionally into
// views of fixed-arity bundles, truncating at the shortest source.
// [Enumerate] pairs items with their positions. [Map] (alias [Visit])
// applies a pure projection at access time. [Flatten] expands nested
// bundles — any item implementing [Decomposable] — into single-level
// [Proxy] values, leaving atoms untouched.
//
// All adaptors are synchronous and pull-based: work happens only when the
// consumer advances the traversal, and abandoning a partially consumed
// view is always safe.
//
// # Consuming
//
// A finished chain is consumed either through the uniform iterator
// returned by [Common] (or [View.All]) — which plugs into range-over-func
// loops and stdlib helpers — or through the terminal operations [ToSlice],
// [ToMap], [ForEach], [Count] and [First]. Explicit materialization of
// bundles into plain [Tuple] values ([Materialize], [Proxy.Values]) is the
// only point at which item copies are made.
package seqwise
