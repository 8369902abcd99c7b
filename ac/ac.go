// Package ac defines the fixed-point arithmetic and the interfaces the arithmetic coding algorithm requires.
// See its subpackages for the frequency model and for the encoder and decoder.
package ac

const (
	// CodeBits is the precision of the coding interval.
	// Together with FreqMax it is chosen so that width*frequency fits a uint32.
	CodeBits = 17

	CodeMax  uint32 = 1<<CodeBits - 1
	Half     uint32 = CodeMax/2 + 1
	FirstQtr uint32 = Half / 2
	ThirdQtr uint32 = FirstQtr * 3

	// FreqMax is the exclusive ceiling on the total of a frequency model.
	FreqMax uint32 = (1<<32 - 1) / (CodeMax + 1)
)

// A Model is a cumulative frequency model over the 256 byte symbols,
// as expected by the arithmetic coding algorithm.
type Model interface {
	// Total returns the sum of all symbol frequencies.
	Total() uint32

	// Range returns the cumulative frequencies below sym and up to and including sym.
	Range(sym byte) (low, high uint32)

	// Lookup returns the symbol whose range contains v.
	// ok is false if v is not below Total.
	Lookup(v uint32) (low, high uint32, sym byte, ok bool)
}

// A Region classifies an interval for renormalization.
type Region int

const (
	// Wide means the interval covers a quarter on each side of Half; a symbol can be coded.
	Wide Region = iota
	// Lower means the interval lies below Half; the next output bit is 0.
	Lower
	// Upper means the interval lies at or above Half; the next output bit is 1.
	Upper
	// Straddle means the interval is within the middle two quarters; the next bit is pending.
	Straddle
)

// An Interval is the current coding interval [Low, High] in CodeBits fixed point.
type Interval struct {
	Low  uint32
	High uint32
}

// NewInterval returns the full interval.
func NewInterval() Interval {
	return Interval{Low: 0, High: CodeMax}
}

// Region classifies iv.
func (iv Interval) Region() Region {
	switch {
	case iv.High < Half:
		return Lower
	case iv.Low >= Half:
		return Upper
	case iv.Low >= FirstQtr && iv.High < ThirdQtr:
		return Straddle
	}
	return Wide
}

// Double shifts the interval left by one bit, filling Low with 0 and High with 1.
// The bit shifted out of CodeBits is discarded.
func (iv *Interval) Double() {
	iv.Low = (iv.Low << 1) & CodeMax
	iv.High = (iv.High<<1 | 1) & CodeMax
}

// Recenter moves a Straddle interval down by a quarter, ahead of Double.
func (iv *Interval) Recenter() {
	iv.Low -= FirstQtr
	iv.High -= FirstQtr
}

// Width returns the number of code points in the interval.
func (iv Interval) Width() uint32 {
	return iv.High - iv.Low + 1
}

// Narrow restricts the interval to the cumulative range [low, high) out of total.
func (iv *Interval) Narrow(low, high, total uint32) {
	w := iv.Width()
	iv.High = iv.Low + w*high/total - 1
	iv.Low = iv.Low + w*low/total
}
