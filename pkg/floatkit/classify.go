package floatkit

// Category is the IEEE-754 class of a floating point value.
type Category int

const (
	Normal Category = iota
	Subnormal
	Zero
	Infinite
	NaNCategory
)

func (c Category) String() string {
	switch c {
	case Normal:
		return "normal"
	case Subnormal:
		return "subnormal"
	case Zero:
		return "zero"
	case Infinite:
		return "infinite"
	case NaNCategory:
		return "nan"
	default:
		return "unknown"
	}
}

// Classify returns the category of f, based on its exponent and mantissa bits.
func Classify[T Float](f T) Category {
	var (
		l    = layoutOf[T]()
		u    = ToBits(f)
		exp  = u & l.exponent
		mant = u & l.mantissa
	)
	switch {
	case exp == l.exponent && mant != 0:
		return NaNCategory
	case exp == l.exponent:
		return Infinite
	case exp == 0 && mant == 0:
		return Zero
	case exp == 0:
		return Subnormal
	default:
		return Normal
	}
}
