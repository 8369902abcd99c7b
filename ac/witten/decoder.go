package witten

import (
	"github.com/fumin/arith/ac"
	"github.com/fumin/arith/ac/freq"
	"github.com/fumin/arith/transform"
)

// A Decoder turns bits produced by an Encoder back into byte symbols.
//
// Past the end of its input the decoder supplies ac.CodeBits zero bits, enough
// to finish renormalizing for the final symbols, and then ends. It keeps
// producing symbols until then, so callers should take only as many symbols
// as were encoded. A decoder over an empty model produces nothing.
type Decoder struct {
	model  freq.Table
	policy freq.Policy
	iv     ac.Interval
	value  uint32

	// pending is the number of zero bits still to be supplied once src is exhausted.
	pending int

	started bool
	done    bool
}

var _ transform.Transform[bool, byte] = (*Decoder)(nil)

// NewDecoder returns a Decoder that owns a copy of model.
// model and policy must match those given to the Encoder.
func NewDecoder(model freq.Table, policy freq.Policy) *Decoder {
	d := &Decoder{
		model:  model,
		policy: policyOrStatic(policy),
		iv:     ac.NewInterval(),
	}
	return d
}

func (d *Decoder) nextBit(src transform.Seq[bool]) (uint32, bool) {
	if bit, ok := src.Next(); ok {
		if bit {
			return 1, true
		}
		return 0, true
	}
	if d.pending > 0 {
		d.pending--
		return 0, true
	}
	return 0, false
}

// fill reads the first ac.CodeBits bits into value, zero padding a short input.
func (d *Decoder) fill(src transform.Seq[bool]) {
	for i := ac.CodeBits - 1; i >= 0; i-- {
		bit, ok := src.Next()
		if !ok {
			break
		}
		if bit {
			d.value |= 1 << uint(i)
		}
	}
}

// shift doubles the interval and shifts the next bit into value.
func (d *Decoder) shift(src transform.Seq[bool]) bool {
	bit, ok := d.nextBit(src)
	if !ok {
		return false
	}
	d.iv.Double()
	d.value = (d.value<<1 | bit) & ac.CodeMax
	return true
}

// Next returns the next decoded symbol, pulling bits from src as needed.
func (d *Decoder) Next(src transform.Seq[bool]) (byte, bool) {
	if d.done {
		return 0, false
	}
	if d.model.Total() == 0 {
		d.done = true
		return 0, false
	}
	if !d.started {
		d.started = true
		d.pending = ac.CodeBits
		d.fill(src)
	}

renormalize:
	for {
		switch d.iv.Region() {
		case ac.Lower, ac.Upper:
		case ac.Straddle:
			d.iv.Recenter()
			d.value -= ac.FirstQtr
		default:
			break renormalize
		}
		if !d.shift(src) {
			d.done = true
			return 0, false
		}
	}

	total := d.model.Total()
	i := ((d.value-d.iv.Low+1)*total - 1) / d.iv.Width()
	low, high, sym, ok := d.model.Lookup(i)
	if !ok {
		// value always lies in the interval, so this only guards against a corrupt model.
		d.done = true
		return 0, false
	}
	d.iv.Narrow(low, high, total)
	d.policy.Adapt(&d.model, sym)
	return sym, true
}
