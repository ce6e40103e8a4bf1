// Package massing turns target room areas into modular rectangular footprints.
//
// The package implements the two numeric stages of the massing pipeline:
//
//  1. Solve: per room, pick the width/depth pair that best matches the target
//     area among the room type's preferred proportions, snapped to the
//     construction module and respecting the type's minimum wall length.
//  2. Optimize: across the whole batch, nudge room dimensions onto a small
//     set of common wall lengths so that distinct rooms share identical wall
//     values and can be placed against each other with aligned walls.
//
// Solving is independent per room; optimization is a bounded greedy local
// search over the batch, never violating a room's aspect range, minimum wall
// length, module alignment, or the per-room area tolerance against its own
// target area. All lengths are centimeters, all areas square centimeters.
package massing
