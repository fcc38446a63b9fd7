package pin

// Side selects one of the two connector rows on the checker board.
type Side uint8

const (
	// Left is pin row B.
	Left Side = iota
	// Right is pin row A.
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// RowName returns the board's display name for the side, as printed in the
// checked-pins echo of the report.
func (s Side) RowName() string {
	if s == Right {
		return "Right (Row A)"
	}
	return "Left (Row B)"
}

// ParseSide resolves "left"/"right" to a Side.
func ParseSide(text string) (Side, bool) {
	switch text {
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return Left, false
}

// PositionsPerSide is the number of physical pin positions in each row.
const PositionsPerSide = 12

// Silkscreen rows as printed on the board, position 1 first. The rows are
// mirrored: lane 2 sits at the top of the left row and lane 1 at its
// bottom, and vice versa on the right.
var (
	leftRow = [PositionsPerSide]string{
		"GND", "TX2+", "TX2-", "VBUS", "CC2", "D+",
		"D-", "SBU2", "VBUS", "RX1-", "RX1+", "GND",
	}
	rightRow = [PositionsPerSide]string{
		"GND", "RX2+", "RX2-", "VBUS", "SBU1", "D-",
		"D+", "CC1", "VBUS", "TX1-", "TX1+", "GND",
	}
)

// Position is one physical pin location in a row.
type Position struct {
	Index uint8  // 1-based position as silkscreened
	Label string // silkscreen label at that position
}

// Layout returns the ordered physical positions of a side. The slice is
// freshly allocated; callers may not see each other's mutations.
func Layout(s Side) []Position {
	row := &leftRow
	if s == Right {
		row = &rightRow
	}
	out := make([]Position, PositionsPerSide)
	for i, label := range row {
		out[i] = Position{Index: uint8(i + 1), Label: label}
	}
	return out
}

// LabelAt returns the silkscreen label at a 1-based position, or false when
// the position is out of range.
func LabelAt(s Side, index uint8) (string, bool) {
	if index < 1 || index > PositionsPerSide {
		return "", false
	}
	if s == Right {
		return rightRow[index-1], true
	}
	return leftRow[index-1], true
}
