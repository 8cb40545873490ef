package numid

// Unsigned is satisfied by every unsigned integer width this module uses for
// value ids, parameter ids, and location/bitmask words.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// DontCare returns the sentinel "don't care" value for T: its maximum
// representable value. A cell holding DontCare[T]() carries no concrete
// assignment yet.
func DontCare[T Unsigned]() T {
	return ^T(0)
}

// IsDontCare reports whether v is the don't-care sentinel for T.
func IsDontCare[T Unsigned](v T) bool {
	return v == DontCare[T]()
}

// Bit returns the single-bit mask for position p (bit p set, all others
// clear). Callers are responsible for p being within T's width.
func Bit[T Unsigned](p int) T {
	return T(1) << uint(p)
}

// MaskLow returns a mask with the low n bits set.
func MaskLow[T Unsigned](n int) T {
	if n <= 0 {
		return 0
	}
	full := ^T(0)
	bits := bitWidth[T]()
	if n >= bits {
		return full
	}
	return (T(1) << uint(n)) - 1
}

// MaskHigh returns a mask with the high n bits set (within T's width).
func MaskHigh[T Unsigned](n int) T {
	bits := bitWidth[T]()
	if n <= 0 {
		return 0
	}
	if n >= bits {
		return ^T(0)
	}
	return ^MaskLow[T](bits - n)
}

// CountOnes returns the number of set bits in v.
func CountOnes[T Unsigned](v T) int {
	count := 0
	for v != 0 {
		v &= v - 1
		count++
	}
	return count
}

// AsUsize converts v to an int. Used at the boundary between the generic
// numid layer and plain-int slice indexing elsewhere.
func AsUsize[T Unsigned](v T) int {
	return int(v)
}

// FromUsize converts a non-negative int into T. The caller must ensure i
// fits in T's width; this mirrors the original's unchecked narrowing casts,
// which the overflow checks at SUT construction time are responsible for
// preventing from ever truncating silently.
func FromUsize[T Unsigned](i int) T {
	return T(i)
}

func bitWidth[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		return 64
	}
}
