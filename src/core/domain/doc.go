// Package domain contains the core model for the vision board.
//
// This package defines:
//   - Entities: the four board content kinds (Image, Video, Theory, Wish)
//     plus the per-user Profile record
//   - The closed Category taxonomy used for filtering
//   - Pure state-transition functions over the entity collections
//   - The aggregation/filter view over all four collections
//   - Domain errors for validation, filtering, and store conflicts
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Collection operations never mutate their inputs; they return fresh
//     slices so callers can treat collections as immutable values
//   - The only non-pure dependencies (id generation, shuffle randomness)
//     are injected so tests can substitute deterministic sources
package domain
