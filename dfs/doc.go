// Package dfs implements depth‑first walks over a core.Node tree: pre‑order,
// in‑order and post‑order recording with hooks, plus a lazy iterator over
// root‑to‑leaf paths.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking,
//     always left subtree before right. Supports:
//   - Pre‑order, in‑order or post‑order recording (WithOrder)
//   - Pre‑order (OnVisit) and post‑order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - RootToLeafPaths: iter.Seq over every root‑to‑leaf path in pre‑order;
//     stops as soon as the consumer breaks.
//
// Why:
//   - Render expressions (post‑order), sorted dumps of search trees
//     (in‑order) and prefix listings (pre‑order) from one walker.
//   - Stream paths out of very wide trees without materializing all of them.
//
// Complexity:
//
//   - DFS:             Time O(n), Memory O(h) recursion + O(n) Order
//   - RootToLeafPaths: Time O(n + Σ|path|) when fully consumed, Memory O(h)
//
// Errors:
//
//   - ErrOptionViolation      invalid option value (bad order, MaxDepth < -1)
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
//
// A nil root is a valid empty tree: DFS returns an empty result and a nil error.
package dfs
