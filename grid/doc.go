// Package grid models the 2D lattice a search runs over.
//
// What:
//
//   - Cell is a (Row, Col) value; its identity is its coordinate.
//   - Grid stores Free/Obstacle per cell plus one Start and one Goal marker.
//   - Neighbors yields up to four orthogonal, in-bounds, non-obstacle cells
//     in the fixed order up, right, down, left.
//   - Parse builds a Grid from ASCII rows ('.', '#', 'S', 'G').
//   - ScatterObstacles and PlaceRandomEndpoints build random layouts from a
//     caller-supplied *rand.Rand, so layouts are reproducible per seed.
//   - Components and Connected flood-fill the passable cells into regions.
//
// Lifecycle:
//
//	A Grid is mutated (Set, Reset, ScatterObstacles, ...) only while no search
//	is running over it. Searches treat it as read-only; Clone gives a frozen
//	snapshot for searches running on another goroutine.
//
// Complexity:
//
//   - Set, At, InBounds, Passable: O(1).
//   - Neighbors: O(1) per yielded cell.
//   - Parse, String, Clone, Reset, Components, Connected: O(W×H).
//
// Errors:
//
//   - ErrBadDimensions: rows or cols ≤ 0.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrMissingStart, ErrMissingGoal, ErrStartEqualsGoal: failed Validate.
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol, ErrDuplicateMarker: Parse.
//   - ErrBadDensity, ErrNotEnoughSpace: random layout helpers.
package grid
