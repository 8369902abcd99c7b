package transform

// Bounds is an advisory estimate of how many items a sequence will yield.
// Upper is meaningful only when Bounded is true.
// Hints must never be relied upon for correctness.
type Bounds struct {
	Lower   int
	Upper   int
	Bounded bool
}

// Unknown is the hint that promises nothing.
var Unknown = Bounds{}

// Exactly returns the hint for a sequence of exactly n items.
func Exactly(n int) Bounds {
	return Bounds{Lower: n, Upper: n, Bounded: true}
}

// A SizeHinter is a sequence that can estimate its remaining length.
type SizeHinter interface {
	SizeHint() Bounds
}

// A Hinter is a transform that can estimate its output length given an
// estimate of its input length.
type Hinter interface {
	SizeHint(in Bounds) Bounds
}

// SeqHint returns the hint of s, or Unknown if s does not provide one.
func SeqHint[T any](s Seq[T]) Bounds {
	if h, ok := s.(SizeHinter); ok {
		return h.SizeHint()
	}
	return Unknown
}

// HintOf returns the hint of t applied to an input described by in,
// or Unknown if t does not provide one.
func HintOf(t any, in Bounds) Bounds {
	if h, ok := t.(Hinter); ok {
		return h.SizeHint(in)
	}
	return Unknown
}
