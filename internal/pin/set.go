package pin

// Set is an immutable bitmask over the 16 logical pins. The zero value is
// the empty set. Bit i corresponds to Pin(i), so membership, union and
// intersection never depend on insertion order.
type Set uint16

// SetOf builds a Set from the given pins.
func SetOf(pins ...Pin) Set {
	var s Set
	for _, p := range pins {
		s = s.With(p)
	}
	return s
}

// With returns s plus p.
func (s Set) With(p Pin) Set {
	return s | 1<<p
}

// Without returns s minus p.
func (s Set) Without(p Pin) Set {
	return s &^ (1 << p)
}

// Has reports whether p is in the set.
func (s Set) Has(p Pin) bool {
	return s&(1<<p) != 0
}

// Union returns the union of s and other.
func (s Set) Union(other Set) Set {
	return s | other
}

// Intersect returns the intersection of s and other.
func (s Set) Intersect(other Set) Set {
	return s & other
}

// Count returns the number of pins in the set.
func (s Set) Count() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Empty reports whether the set holds no pins.
func (s Set) Empty() bool {
	return s == 0
}

// Pins returns the members in ascending Pin order.
func (s Set) Pins() []Pin {
	out := make([]Pin, 0, s.Count())
	for p := Pin(0); p < pinCount; p++ {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// String renders the members as a comma-separated label list.
func (s Set) String() string {
	if s.Empty() {
		return "{}"
	}
	text := "{"
	for i, p := range s.Pins() {
		if i > 0 {
			text += ", "
		}
		text += p.String()
	}
	return text + "}"
}
