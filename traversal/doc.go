// Package traversal walks configurations through a core.Graph under the
// control of a cyclic instruction tape.
//
// What:
//
//   - Tape: a non-empty sequence of Left/Right symbols, read modulo its length.
//   - Traversal: one current node plus a step counter. Each Step reads the tape
//     at the current step count, follows that edge and increments the count,
//     until a caller-supplied StopFunc holds.
//   - Walk: the same loop for a group of configurations, dispatched through an
//     Arity strategy (Single or Lockstep).
//   - CycleLengths: one Single run per start node, the inputs of an LCM.
//   - Analyze: Brent cycle detection over (node, tape position) states,
//     reporting whether a walk's first terminal hit is also its period.
//
// Termination:
//
//	Run halts only if the predicate becomes reachable. On a graph with no
//	reachable terminal node it loops forever unless WithMaxSteps or a
//	cancellable context (WithContext) is supplied.
//
// Complexity:
//
//   - Step: O(1); Run: O(S) for S steps; Lockstep: O(S·k) for k configurations.
//   - Analyze: O(μ+λ) time, O(1) extra memory (μ lead-in, λ period).
//
// Errors:
//
//   - ErrEmptyTape, ErrBadInstruction: tape construction.
//   - ErrNilStart, ErrNilStop:          bad traversal arguments.
//   - ErrTerminal:                      Step called after the predicate holds.
//   - ErrStepLimit:                     WithMaxSteps budget exhausted.
//   - ErrArity:                         unknown Arity or Single with k != 1.
//   - ErrOptionViolation:               negative step limit.
package traversal
