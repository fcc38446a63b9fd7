// Package classify infers a cable's signaling capabilities from the set of
// pins observed active on the tester board.
//
// # Purpose
//
//   - Turn one immutable Observation (active logical pins, optional
//     occurrence counts, optional declared connector types) into one
//     Result: capability summary, lane statuses, ordered defects, and a
//     single best-fit Classification with its rationale.
//   - Stay total: no input, however contradictory, produces an error or a
//     panic. Inputs that fit no profile degrade to Unknown.
//
// # Scope
//
// Package classify performs no I/O, holds no state between calls, and does
// no formatting. Rendering lives in internal/report; translation from
// physical board labels to logical pins lives in internal/board and must
// happen before an Observation is built.
//
// # Determinism
//
// Result depends only on the Observation's value, never on map or set
// iteration order. Defects are emitted in a fixed order (lane pairs, USB 2.0
// pair, power, configuration channel), which is also the report order.
// The classification decision tree is evaluated top to bottom and encodes
// severity precedence: damage > connector mismatch > feature-complete >
// degraded > absent.
package classify
