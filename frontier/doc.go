// Package frontier provides the priority queue that orders pending search
// nodes for the astar and dijkstra solvers.
//
// Ordering:
//
//   - Entries are extracted by ascending Priority (g + h for A*, g for Dijkstra).
//   - Equal priorities are extracted in insertion order (FIFO). Degenerate
//     heuristics make ties common; breaking them by a sequence number keeps
//     routes reproducible across runs without depending on map iteration.
//
// The queue uses the "lazy decrease-key" strategy: a solver that finds a
// cheaper route to a queued state simply pushes it again and discards the
// stale entry when it is popped.
//
// Complexity:
//
//   - Push, Pop: O(log N), N = entries currently queued (duplicates included).
//   - Peek, Len: O(1).
//   - Space:     O(N).
package frontier
