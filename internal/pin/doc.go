// Package pin defines the logical USB signal taxonomy and the physical
// board geometry the checker operates on.
// Invariants:
//   - Lane1 and Lane2 are disjoint and their union is exactly SuperSpeed.
//   - Each physical row has 12 positions; GND and VBUS each appear twice
//     per row, every other label once.
//   - Every silkscreen label in a row parses as a canonical Pin; remapping
//     a label to a different logical signal is the board package's job,
//     never the layout's.
//   - Set iteration order is ascending Pin value, independent of how the
//     set was built.
package pin
