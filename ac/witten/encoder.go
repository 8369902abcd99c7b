package witten

import (
	"github.com/fumin/arith/ac"
	"github.com/fumin/arith/ac/freq"
	"github.com/fumin/arith/transform"
)

// An Encoder turns byte symbols into bits.
//
// After the last symbol the encoder flushes two or more bits that pin the
// final interval. Symbols whose frequency is zero cannot be encoded; the
// output for such a symbol is meaningless. An encoder over an empty model,
// such as the zero Table, produces no bits.
type Encoder struct {
	model  freq.Table
	policy freq.Policy
	iv     ac.Interval

	// pending counts the straddle expansions whose bits are not yet known.
	pending int

	// follow copies of followBit are owed to the output before anything else.
	follow    int
	followBit bool

	done bool
}

var _ transform.Transform[byte, bool] = (*Encoder)(nil)

// NewEncoder returns an Encoder that owns a copy of model.
// policy is applied to the model after every symbol; nil means freq.Static.
func NewEncoder(model freq.Table, policy freq.Policy) *Encoder {
	e := &Encoder{
		model:  model,
		policy: policyOrStatic(policy),
		iv:     ac.NewInterval(),
	}
	return e
}

// emit returns bit, and schedules the pending bits which take its opposite value.
func (e *Encoder) emit(bit bool) (bool, bool) {
	e.follow = e.pending
	e.followBit = !bit
	e.pending = 0
	return bit, true
}

// Next returns the next output bit, pulling symbols from src as needed.
func (e *Encoder) Next(src transform.Seq[byte]) (bool, bool) {
	for {
		if e.follow > 0 {
			e.follow--
			return e.followBit, true
		}
		if e.done {
			return false, false
		}

		switch e.iv.Region() {
		case ac.Lower:
			e.iv.Double()
			return e.emit(false)
		case ac.Upper:
			e.iv.Double()
			return e.emit(true)
		case ac.Straddle:
			e.pending++
			e.iv.Recenter()
			e.iv.Double()
			continue
		}

		if e.model.Total() == 0 {
			// An empty model can code nothing, not even the flush.
			e.done = true
			return false, false
		}
		sym, ok := src.Next()
		if !ok {
			// Flush with the upper half decision: a one followed by zeros.
			// Padded with zeros, this selects exactly ac.Half, which lies inside every Wide interval.
			e.done = true
			e.pending++
			return e.emit(true)
		}
		low, high := e.model.Range(sym)
		e.iv.Narrow(low, high, e.model.Total())
		e.policy.Adapt(&e.model, sym)
	}
}
