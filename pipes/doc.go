// Package pipes walks the closed loop of connector tiles that passes
// through the start tile of a pipe maze.
//
// A maze is a rectangular grid of tiles:
//
//	| vertical pipe, entered from north or south
//	- horizontal pipe, entered from west or east
//	L elbow joining north and east
//	J elbow joining north and west
//	7 elbow joining south and west
//	F elbow joining south and east
//	. ground, no pipe
//	S start, a connector whose shape is not given
//
// Next moves one tile along the loop given the side of the current tile the
// walker came in through. LoopLength counts the steps needed to return to
// the start; the tile farthest from the start along the loop is half that.
// FarthestDistance computes the same distance independently with a
// breadth-first search over the loop tiles.
//
// Errors:
//
//   - ErrUnknownSymbol:  a tile symbol outside the table above.
//   - ErrNoStart:        no S tile.
//   - ErrNoConnection:   no neighbour of S accepts a pipe from S.
//   - ErrEmptyTile:      the walk reached a ground tile.
//   - ErrInvalidEntry:   the walk entered a connector through a closed side.
//   - ErrAmbiguousExit:  a connector offers zero or several exits.
//   - ErrOutOfBounds:    a connector leads off the grid.
//   - ErrNoLoop:         the walk did not return to S within W×H steps.
package pipes
